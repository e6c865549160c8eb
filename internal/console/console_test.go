package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aevon-lab/remindex/internal/reminder"
	"github.com/stretchr/testify/require"
)

func newStore() *reminder.Store {
	return reminder.NewStore(reminder.NewCoordinator(reminder.DefaultOptions()), nil, nil)
}

func run(t *testing.T, store *reminder.Store, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(store, strings.NewReader(input), &out)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestRun_AddListAndExit(t *testing.T) {
	store := newStore()
	out := run(t, store, strings.Join([]string{
		"1", "Team Meeting", "Weekly sync", "2026-10-19",
		"2",
		"8",
	}, "\n")+"\n")

	require.Contains(t, out, "Event added to the list of events!")
	require.Contains(t, out, "1. Team Meeting")
	require.Contains(t, out, "Weekly sync (2026-10-19)")
	require.Contains(t, out, "Thank you for using Event Reminder System!")
	require.Equal(t, 1, store.Stats().Primary)
}

func TestRun_InvalidInputKeepsLooping(t *testing.T) {
	store := newStore()
	out := run(t, store, strings.Join([]string{
		"abc",
		"42",
		"1", "Bad", "", "19/10/2026",
		"4", "xyz",
		"4", "9",
		"8",
	}, "\n")+"\n")

	require.Contains(t, out, `Invalid input: "abc" is not a number`)
	require.Contains(t, out, "Invalid choice! Please try again.")
	require.Contains(t, out, "Invalid input: invalid date")
	require.Contains(t, out, `Invalid input: "xyz" is not a number`)
	require.Contains(t, out, "Error: Event not found at index: 9")
	require.Contains(t, out, "There is no event to be listed!")
	require.Equal(t, 0, store.Stats().Primary)
}

func TestRun_RemoveUndoSearchStats(t *testing.T) {
	store := newStore()
	ctx := context.Background()
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	store.Add(ctx, "Team Meeting", "Weekly sync", day)
	store.Add(ctx, "Lunch", "bring meeting notes", day)
	store.Add(ctx, "Dentist", "Checkup", day)

	out := run(t, store, strings.Join([]string{
		"4", "1",
		"5",
		"5",
		"6", "MEETING",
		"6", "zzz",
		"7",
		"8",
	}, "\n")+"\n")

	require.Contains(t, out, "Event removed!")
	require.Contains(t, out, "Last deleted event restored!")
	require.Contains(t, out, "Nothing to undo.")
	require.Contains(t, out, "Found 2 event(s):\n1. Lunch\n2. Team Meeting\n")
	require.Contains(t, out, "No events found.")
	require.Contains(t, out, "Primary store size: 3")
	require.Contains(t, out, "Custom array size: 4/100")
	require.Contains(t, out, "Internal Binary Tree - Nodes: 4")
}

func TestRun_Completed(t *testing.T) {
	store := newStore()
	out := run(t, store, "3\n8\n")
	require.Contains(t, out, "No event in the list")

	ctx := context.Background()
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	store.Add(ctx, "A", "first", day)
	store.Add(ctx, "B", "second", day)

	out = run(t, store, "3\n8\n")
	require.Contains(t, out, "No completed events.")

	require.NoError(t, store.MarkCompleted(ctx, 2))
	out = run(t, store, "3\n8\n")
	require.Contains(t, out, "2. B\n   second\n")
	require.NotContains(t, out, "first")
}

func TestRun_EOFExits(t *testing.T) {
	store := newStore()
	out := run(t, store, "1\nHalf")
	require.Contains(t, out, "Thank you for using Event Reminder System!")
	require.Equal(t, 0, store.Stats().Primary)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	c := New(newStore(), blockingReader{}, &out)
	require.NoError(t, c.Run(ctx))
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}
