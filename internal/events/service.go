package events

import (
	"time"

	"github.com/aevon-lab/remindex/internal/reminder"
	"github.com/gin-gonic/gin"
)

type Service struct {
	store            *reminder.Store
	maxBodySizeBytes int
	nowFn            func() time.Time
}

func NewService(store *reminder.Store, maxBodySizeMB int) *Service {
	if store == nil {
		panic("events: store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		store:            store,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            time.Now,
	}
}

// RegisterRoutes registers the reminder API under /api/events.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api/events")

	g.GET("", s.ListHandler)
	g.POST("/add", s.AddHandler)
	g.POST("/complete", s.CompleteHandler)
	g.DELETE("/delete", s.DeleteHandler)
	g.GET("/search", s.SearchHandler)
	g.POST("/undo", s.UndoHandler)

	g.GET("/completed", s.CompletedHandler)
	g.GET("/range", s.RangeHandler)
	g.POST("/process", s.ProcessHandler)
	g.GET("/stats", s.StatsHandler)
	g.GET("/calendar.ics", s.CalendarHandler)
	g.GET("/history", s.HistoryHandler)
}
