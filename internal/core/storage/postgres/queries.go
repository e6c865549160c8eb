package postgres

// SQL queries for the mutation journal.

const (
	// queryAppendEntry inserts one journal row. recorded_seq is assigned by
	// the database and gives a strict total order.
	queryAppendEntry = `
		INSERT INTO reminder_journal (
			id, operation, title, description,
			event_date, position, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	// queryRecentEntries returns the newest entries first.
	queryRecentEntries = `
		SELECT
			id, operation, title, description,
			event_date, position, recorded_at
		FROM reminder_journal
		ORDER BY recorded_seq DESC
		LIMIT $1
	`
)
