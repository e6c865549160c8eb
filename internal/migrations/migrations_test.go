package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFiles_PairedUpAndDown(t *testing.T) {
	names, err := fs.Glob(Files, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file %s", name)
		}
	}
	require.Equal(t, ups, downs)
}

func TestFiles_CreatesJournalTable(t *testing.T) {
	body, err := fs.ReadFile(Files, "000001_create_reminder_journal.up.sql")
	require.NoError(t, err)

	sql := string(body)
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS reminder_journal")
	for _, column := range []string{"recorded_seq", "id", "operation", "title", "description", "event_date", "position", "recorded_at"} {
		require.Contains(t, sql, column)
	}
}
