package events

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"github.com/aevon-lab/remindex/internal/calendar"
	httperr "github.com/aevon-lab/remindex/internal/core/errors"
	"github.com/aevon-lab/remindex/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgEventAdded      = "Event added successfully"
	msgEventCompleted  = "Event completed"
	msgEventDeleted    = "Event deleted"
	msgEventNotFound   = "Event not found"
	msgEventRestored   = "Event restored successfully"
	msgNothingToUndo   = "Nothing to undo"
	msgJournalDisabled = "Mutation journal is disabled"

	defaultHistoryLimit = 50
)

// apiError carries the structured HTTP error shape from a helper back to the handler.
type apiError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *apiError) Error() string {
	return e.message
}

// ListHandler returns every event in primary order.
func (s *Service) ListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(s.store.Events()))
}

// AddHandler creates an event from {"title","description","date"}.
func (s *Service) AddHandler(c *gin.Context) {
	var req v1.AddEventRequest
	if err := s.bindBody(c, &req); err != nil {
		writeError(c, err)
		return
	}

	date, err := req.Validate()
	if err != nil {
		slog.Warn("Add request rejected", "error", err)
		writeError(c, &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpValidationError,
			message:    err.Error(),
		})
		return
	}

	s.store.Add(c.Request.Context(), req.Title, req.Description, date)
	c.JSON(http.StatusOK, v1.ActionResponse{Success: true, Message: msgEventAdded})
}

// CompleteHandler marks the event at the 1-based {"index"} as completed.
func (s *Service) CompleteHandler(c *gin.Context) {
	var req v1.CompleteEventRequest
	if err := s.bindBody(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if req.Index == nil {
		writeError(c, &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpValidationError,
			message:    "index is required",
		})
		return
	}

	if err := s.store.MarkCompleted(c.Request.Context(), *req.Index); err != nil {
		writeMutationFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.ActionResponse{Success: true, Message: msgEventCompleted})
}

// DeleteHandler removes the event at ?index=N (1-based).
func (s *Service) DeleteHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Query("index"))
	if err != nil {
		writeError(c, &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    "index must be an integer",
			details:    map[string]interface{}{"index": c.Query("index")},
		})
		return
	}

	if _, err := s.store.Remove(c.Request.Context(), index); err != nil {
		writeMutationFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.ActionResponse{Success: true, Message: msgEventDeleted})
}

// SearchHandler matches ?q= against titles and descriptions.
func (s *Service) SearchHandler(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(s.store.Search(c.Query("q"))))
}

// UndoHandler restores the most recently deleted event.
func (s *Service) UndoHandler(c *gin.Context) {
	if s.store.Undo(c.Request.Context()) {
		c.JSON(http.StatusOK, v1.ActionResponse{Success: true, Message: msgEventRestored})
		return
	}
	c.JSON(http.StatusOK, v1.ActionResponse{Success: false, Message: msgNothingToUndo})
}

// CompletedHandler lists completed events in primary order.
func (s *Service) CompletedHandler(c *gin.Context) {
	entries := s.store.Completed()
	out := make([]*v1.Event, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Event)
	}
	c.JSON(http.StatusOK, out)
}

// RangeHandler lists events with start <= date <= end in date order.
func (s *Service) RangeHandler(c *gin.Context) {
	start, err := v1.ParseDate(c.Query("start"))
	if err != nil {
		writeError(c, invalidQuery("start", err))
		return
	}
	end, err := v1.ParseDate(c.Query("end"))
	if err != nil {
		writeError(c, invalidQuery("end", err))
		return
	}
	if end.Before(start) {
		writeError(c, &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidQueryError,
			message:    "end must not be before start",
		})
		return
	}

	c.JSON(http.StatusOK, nonNil(s.store.ListByDateRange(start, end)))
}

// ProcessHandler dequeues the next event from the processing queue.
func (s *Service) ProcessHandler(c *gin.Context) {
	evt, ok := s.store.ProcessNext(c.Request.Context())
	c.JSON(http.StatusOK, v1.ProcessResponse{Success: ok, Event: evt})
}

type statsResponse struct {
	Sizes       interface{}                `json:"sizes"`
	Utilization map[string]decimal.Decimal `json:"utilization"`
}

// StatsHandler reports structure sizes and bounded-structure utilization.
func (s *Service) StatsHandler(c *gin.Context) {
	stats := s.store.Stats()
	c.JSON(http.StatusOK, statsResponse{
		Sizes:       stats,
		Utilization: stats.Utilization(),
	})
}

// CalendarHandler serves the primary store as an iCalendar feed.
func (s *Service) CalendarHandler(c *gin.Context) {
	body := calendar.Export(s.store.Events(), s.nowFn())
	c.Header("Content-Disposition", `attachment; filename="remindex.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// HistoryHandler returns the newest journal entries, ?limit= defaults to 50.
func (s *Service) HistoryHandler(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(c, &apiError{
				statusCode: http.StatusBadRequest,
				errorType:  httperr.HttpInvalidQueryError,
				message:    "limit must be a positive integer",
			})
			return
		}
		limit = n
	}

	entries, err := s.store.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, storage.ErrJournalDisabled) {
			writeError(c, &apiError{
				statusCode: http.StatusNotFound,
				errorType:  httperr.HttpJournalDisabledError,
				message:    msgJournalDisabled,
			})
			return
		}
		slog.Error("[Journal] Failed to read history", "error", err)
		writeError(c, &apiError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    "Failed to read journal",
		})
		return
	}
	if entries == nil {
		entries = []*storage.JournalEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// bindBody reads at most maxBodySizeBytes and decodes the JSON body into dst.
func (s *Service) bindBody(c *gin.Context, dst interface{}) *apiError {
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return &apiError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return &apiError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidJsonError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return &apiError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}
	return nil
}

// writeMutationFailure reports a rejected index as a 200 with success=false.
// The store has already logged the rejection.
func writeMutationFailure(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusOK, v1.ActionResponse{Success: false, Message: msgEventNotFound})
		return
	}
	slog.Error("Mutation failed", "error", err)
	writeError(c, &apiError{
		statusCode: http.StatusInternalServerError,
		errorType:  httperr.HttpInternalError,
		message:    err.Error(),
	})
}

func invalidQuery(param string, err error) *apiError {
	return &apiError{
		statusCode: http.StatusBadRequest,
		errorType:  httperr.HttpInvalidQueryError,
		message:    err.Error(),
		details:    map[string]interface{}{"param": param},
	}
}

func nonNil(events []*v1.Event) []*v1.Event {
	if events == nil {
		return []*v1.Event{}
	}
	return events
}

// writeError serializes an apiError as the JSON HTTP response.
func writeError(c *gin.Context, err *apiError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}

