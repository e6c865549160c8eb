package reminder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aevon-lab/remindex/internal/core/storage"
	storagemocks "github.com/aevon-lab/remindex/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	mu     sync.Mutex
	counts map[string]int
}

func (o *countingObserver) ObserveOperation(op string, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.counts == nil {
		o.counts = make(map[string]int)
	}
	key := op + ":fail"
	if ok {
		key = op + ":ok"
	}
	o.counts[key]++
}

func TestStore_JournalsMutations(t *testing.T) {
	ctx := context.Background()
	journal := storagemocks.NewJournal(t)
	for _, op := range []string{storage.OpAdd, storage.OpComplete, storage.OpRemove, storage.OpUndo} {
		op := op
		journal.EXPECT().
			Append(mock.Anything, mock.MatchedBy(func(e *storage.JournalEntry) bool {
				return e.Operation == op && e.Title == "A" && e.Position == 1 && e.ID != ""
			})).
			Return(nil).
			Once()
	}
	journal.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(e *storage.JournalEntry) bool {
			return e.Operation == storage.OpProcess
		})).
		Return(nil).
		Once()

	obs := &countingObserver{}
	s := NewStore(newCoordinator(), journal, obs)

	s.Add(ctx, "A", "desc", day(1))
	require.NoError(t, s.MarkCompleted(ctx, 1))
	_, err := s.Remove(ctx, 1)
	require.NoError(t, err)
	require.True(t, s.Undo(ctx))
	_, ok := s.ProcessNext(ctx)
	require.True(t, ok)

	require.Equal(t, 1, obs.counts["add:ok"])
	require.Equal(t, 1, obs.counts["undo:ok"])
}

func TestStore_FailuresAreNoOps(t *testing.T) {
	ctx := context.Background()
	journal := storagemocks.NewJournal(t)
	obs := &countingObserver{}
	s := NewStore(newCoordinator(), journal, obs)

	require.ErrorIs(t, s.MarkCompleted(ctx, 1), storage.ErrNotFound)
	_, err := s.Remove(ctx, 3)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.False(t, s.Undo(ctx))
	_, ok := s.ProcessNext(ctx)
	require.False(t, ok)

	journal.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	require.Equal(t, 1, obs.counts["complete:fail"])
	require.Equal(t, 1, obs.counts["remove:fail"])
	require.Equal(t, 1, obs.counts["undo:fail"])
	require.Equal(t, 1, obs.counts["process:fail"])
}

func TestStore_JournalErrorDoesNotFailOperation(t *testing.T) {
	journal := storagemocks.NewJournal(t)
	journal.EXPECT().
		Append(mock.Anything, mock.Anything).
		Return(errors.New("db down")).
		Once()

	s := NewStore(newCoordinator(), journal, nil)
	evt := s.Add(context.Background(), "A", "", day(1))

	require.NotNil(t, evt)
	require.Len(t, s.Events(), 1)
}

func TestStore_HistoryWithoutJournal(t *testing.T) {
	s := NewStore(newCoordinator(), nil, nil)
	_, err := s.History(context.Background(), 10)
	require.ErrorIs(t, err, storage.ErrJournalDisabled)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := NewStore(newCoordinator(), nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(context.Background(), "e", "", day(i))
		}(i)
	}
	wg.Wait()

	stats := s.Stats()
	require.Equal(t, 50, stats.Primary)
	require.Equal(t, 50, stats.Tree)
	require.Len(t, s.ListByDateRange(day(0), day(49)), 50)
}

func TestStore_SeedDefaults(t *testing.T) {
	s := NewStore(newCoordinator(), nil, nil)
	s.Seed(context.Background(), DefaultSeeds(today))

	events := s.Events()
	require.Len(t, events, 3)
	require.Equal(t, "Team Meeting", events[0].Title())
	require.Equal(t, day(1), events[0].Date())
	require.Equal(t, day(7), events[1].Date())
	require.Equal(t, day(14), events[2].Date())
	require.Len(t, s.Search("meeting"), 1)
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "seeds.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
events:
  - title: "Standup"
    description: "Daily"
    date: 2026-11-02
  - title: "Review"
    date: "2026-11-05"
`), 0o644))

	seeds, err := LoadSeedFile(good)
	require.NoError(t, err)
	require.Len(t, seeds, 2)
	require.Equal(t, "Standup", seeds[0].Title)
	require.Equal(t, "2026-11-05", seeds[1].Date.Format("2006-01-02"))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
events:
  - title: "Broken"
    date: "02/11/2026"
`), 0o644))
	_, err = LoadSeedFile(bad)
	require.ErrorContains(t, err, "event 1")

	_, err = LoadSeedFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "failed to read seed file")
}

func TestStats_Utilization(t *testing.T) {
	u := Stats{Array: 3, ArrayCapacity: 100, Queue: 1, QueueCapacity: 3, Undo: 0, UndoCapacity: 50}.Utilization()
	require.Equal(t, "0.03", u["array"].String())
	require.Equal(t, "0.3333", u["queue"].String())
	require.Equal(t, "0", u["undo"].String())
}
