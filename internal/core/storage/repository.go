package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned for an invalid 1-based position into the primary store.
	ErrNotFound = errors.New("event not found")

	// ErrOutOfRange is returned for an invalid index into an indexed structure.
	ErrOutOfRange = errors.New("index out of range")

	// ErrJournalDisabled is returned by NopJournal reads.
	ErrJournalDisabled = errors.New("journal is disabled")
)

// Operation names recorded in the journal.
const (
	OpAdd      = "add"
	OpComplete = "complete"
	OpRemove   = "remove"
	OpUndo     = "undo"
	OpProcess  = "process"
)

// JournalEntry is one recorded mutation.
type JournalEntry struct {
	ID          string    `json:"id"`
	Operation   string    `json:"operation"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	// Position is the 1-based primary store position the operation touched.
	Position   int       `json:"position"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Journal is an append-only record of store mutations.
// It is an audit trail only; the store is never rebuilt from it.
type Journal interface {
	Append(ctx context.Context, entry *JournalEntry) error
	Recent(ctx context.Context, limit int) ([]*JournalEntry, error)
}

// NopJournal discards writes. Used when no journal is configured.
type NopJournal struct{}

func (NopJournal) Append(context.Context, *JournalEntry) error { return nil }

func (NopJournal) Recent(context.Context, int) ([]*JournalEntry, error) {
	return nil, ErrJournalDisabled
}
