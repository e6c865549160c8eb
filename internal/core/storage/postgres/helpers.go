package postgres

import (
	"fmt"

	"github.com/aevon-lab/remindex/internal/core/storage"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEntryRow scans a database row into a JournalEntry.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEntryRow(row scanner) (*storage.JournalEntry, error) {
	var e storage.JournalEntry
	err := row.Scan(
		&e.ID,
		&e.Operation,
		&e.Title,
		&e.Description,
		&e.EventDate,
		&e.Position,
		&e.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal row: %w", err)
	}
	e.EventDate = e.EventDate.UTC()
	e.RecordedAt = e.RecordedAt.UTC()
	return &e, nil
}
