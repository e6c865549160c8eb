// Package dispatch drains the processing queue on a cron schedule.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"github.com/robfig/cron/v3"
)

// Status classifies a dispatched event against the current day.
type Status string

const (
	StatusOverdue  Status = "overdue"
	StatusDue      Status = "due"
	StatusUpcoming Status = "upcoming"
)

// Processor hands out queued events one at a time.
type Processor interface {
	ProcessNext(ctx context.Context) (*v1.Event, bool)
}

// Dispatch is one event taken off the queue.
type Dispatch struct {
	Event     *v1.Event
	Status    Status
	DaysUntil int
}

// Scheduler drains up to batchSize events per tick. Each tick is
// independent: an empty queue ends the batch early.
type Scheduler struct {
	schedule  string
	batchSize int
	queue     Processor
	nowFn     func() time.Time
}

func NewScheduler(schedule string, batchSize int, queue Processor) *Scheduler {
	if queue == nil {
		panic("dispatch: processor must not be nil")
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Scheduler{
		schedule:  schedule,
		batchSize: batchSize,
		queue:     queue,
		nowFn:     time.Now,
	}
}

// Start runs the schedule until ctx is cancelled, then waits for a running
// tick to finish.
func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid dispatch schedule %q: %w", s.schedule, err)
	}

	slog.Info("[Dispatcher] Starting processing queue dispatcher",
		"schedule", s.schedule,
		"batch_size", s.batchSize)
	c.Start()

	<-ctx.Done()
	slog.Info("[Dispatcher] Stopping (context cancelled)")
	<-c.Stop().Done()
	return nil
}

// RunOnce drains one batch and returns what it took off the queue.
func (s *Scheduler) RunOnce(ctx context.Context) []Dispatch {
	today := v1.NormalizeDate(s.nowFn())
	var out []Dispatch

	for len(out) < s.batchSize {
		if ctx.Err() != nil {
			break
		}
		evt, ok := s.queue.ProcessNext(ctx)
		if !ok {
			break
		}

		d := classify(evt, today)
		out = append(out, d)

		slog.Info("[Dispatcher] Reminder dispatched",
			"title", evt.Title(),
			"date", evt.Date().Format(v1.DateLayout),
			"status", string(d.Status),
			"days_until", d.DaysUntil,
			"completed", evt.Completed())
	}

	if len(out) > 0 {
		slog.Info("[Dispatcher] Batch complete", "dispatched", len(out))
	}
	return out
}

func classify(evt *v1.Event, today time.Time) Dispatch {
	days := int(evt.Date().Sub(today).Hours() / 24)
	status := StatusUpcoming
	switch {
	case days < 0:
		status = StatusOverdue
	case days == 0:
		status = StatusDue
	}
	return Dispatch{Event: evt, Status: status, DaysUntil: days}
}
