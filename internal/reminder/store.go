package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	v1 "github.com/aevon-lab/remindex/internal/api/v1"
	"github.com/aevon-lab/remindex/internal/core/storage"
	"github.com/google/uuid"
)

// Observer is told about every store operation and whether it took effect.
type Observer interface {
	ObserveOperation(operation string, ok bool)
}

type nopObserver struct{}

func (nopObserver) ObserveOperation(string, bool) {}

// Store serializes all access to one Coordinator. It is the single entry
// point shared by the HTTP service, the console and the dispatcher.
// Index failures are logged and reported to the caller; they never panic.
type Store struct {
	mu       sync.Mutex
	coord    *Coordinator
	journal  storage.Journal
	observer Observer
	nowFn    func() time.Time
}

// NewStore wraps coord. A nil journal or observer disables that hook.
func NewStore(coord *Coordinator, journal storage.Journal, observer Observer) *Store {
	if coord == nil {
		panic("reminder: coordinator must not be nil")
	}
	if journal == nil {
		journal = storage.NopJournal{}
	}
	if observer == nil {
		observer = nopObserver{}
	}
	return &Store{
		coord:    coord,
		journal:  journal,
		observer: observer,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *Store) Add(ctx context.Context, title, description string, date time.Time) *v1.Event {
	s.mu.Lock()
	evt := s.coord.Add(title, description, date)
	pos := s.coord.Count()
	s.mu.Unlock()

	slog.Info("Event added", "title", evt.Title(), "date", evt.Date().Format(v1.DateLayout), "position", pos)
	s.record(ctx, storage.OpAdd, evt, pos)
	return evt
}

// MarkCompleted flips the completion flag at the 1-based pos.
func (s *Store) MarkCompleted(ctx context.Context, pos int) error {
	s.mu.Lock()
	err := s.coord.MarkCompleted(pos)
	var evt *v1.Event
	if err == nil {
		evt, _ = s.coord.Get(pos)
	}
	s.mu.Unlock()

	if err != nil {
		slog.Warn("Complete rejected", "position", pos, "error", err)
		s.observer.ObserveOperation(storage.OpComplete, false)
		return err
	}
	slog.Info("Event marked as completed", "title", evt.Title(), "position", pos)
	s.record(ctx, storage.OpComplete, evt, pos)
	return nil
}

// Remove detaches the event at the 1-based pos.
func (s *Store) Remove(ctx context.Context, pos int) (*v1.Event, error) {
	s.mu.Lock()
	evt, err := s.coord.Remove(pos)
	s.mu.Unlock()

	if err != nil {
		slog.Warn("Remove rejected", "position", pos, "error", err)
		s.observer.ObserveOperation(storage.OpRemove, false)
		return nil, err
	}
	slog.Info("Event removed", "title", evt.Title(), "position", pos)
	s.record(ctx, storage.OpRemove, evt, pos)
	return evt, nil
}

// Undo restores the most recently removed event. It reports whether
// anything was restored.
func (s *Store) Undo(ctx context.Context) bool {
	s.mu.Lock()
	evt, ok := s.coord.Undo()
	pos := s.coord.Count()
	s.mu.Unlock()

	if !ok {
		s.observer.ObserveOperation(storage.OpUndo, false)
		return false
	}
	slog.Info("Event restored", "title", evt.Title(), "position", pos)
	s.record(ctx, storage.OpUndo, evt, pos)
	return true
}

// ProcessNext pops the oldest event off the processing queue.
func (s *Store) ProcessNext(ctx context.Context) (*v1.Event, bool) {
	s.mu.Lock()
	evt, ok := s.coord.ProcessNext()
	s.mu.Unlock()

	if !ok {
		s.observer.ObserveOperation(storage.OpProcess, false)
		return nil, false
	}
	s.record(ctx, storage.OpProcess, evt, 0)
	return evt, true
}

func (s *Store) Events() []*v1.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.Events()
}

func (s *Store) Completed() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.Completed()
}

func (s *Store) Search(keyword string) []*v1.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.Search(keyword)
}

func (s *Store) ListByDateRange(start, end time.Time) []*v1.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.ListByDateRange(start, end)
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coord.Stats()
}

// History returns the most recent journal entries.
func (s *Store) History(ctx context.Context, limit int) ([]*storage.JournalEntry, error) {
	return s.journal.Recent(ctx, limit)
}

// Seed adds each seed in order.
func (s *Store) Seed(ctx context.Context, seeds []Seed) {
	for _, sd := range seeds {
		s.Add(ctx, sd.Title, sd.Description, sd.Date)
	}
}

// record reports the operation and journals it. Journal failures are
// logged only.
func (s *Store) record(ctx context.Context, op string, evt *v1.Event, pos int) {
	s.observer.ObserveOperation(op, true)

	entry := &storage.JournalEntry{
		ID:          uuid.NewString(),
		Operation:   op,
		Title:       evt.Title(),
		Description: evt.Description(),
		EventDate:   evt.Date(),
		Position:    pos,
		RecordedAt:  s.nowFn(),
	}
	if err := s.journal.Append(ctx, entry); err != nil {
		slog.Error("[Journal] Failed to append entry", "operation", op, "error", err)
	}
}
