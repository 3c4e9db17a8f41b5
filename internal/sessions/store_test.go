package sessions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lk16/reversi/internal/othello"
)

func TestStore_Create(t *testing.T) {
	store := NewStore(time.Minute, 10)

	id, err := store.Create(Settings{Mode: othello.PlayerVsComputer, Difficulty: othello.Normal, Seed: 1})
	require.NoError(t, err)
	require.Len(t, id, 36)
	require.Equal(t, 1, store.Len())

	err = store.With(id, func(c *othello.Controller) error {
		require.Equal(t, othello.PlayerVsComputer, c.Mode())
		require.Equal(t, othello.Normal, c.Difficulty())
		require.Equal(t, othello.NewBoardStart(), c.Snapshot())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_Create_Full(t *testing.T) {
	store := NewStore(time.Minute, 2)

	for range 2 {
		_, err := store.Create(Settings{})
		require.NoError(t, err)
	}

	_, err := store.Create(Settings{})
	require.ErrorIs(t, err, ErrFull)
}

func TestStore_With(t *testing.T) {
	store := NewStore(time.Minute, 10)
	id, err := store.Create(Settings{Mode: othello.PlayerVsPlayer})
	require.NoError(t, err)

	err = store.With(id, func(c *othello.Controller) error {
		require.Equal(t, othello.Applied, c.AttemptMove(othello.Position{Col: 2, Row: 3}))
		return nil
	})
	require.NoError(t, err)

	// State is kept between calls.
	err = store.With(id, func(c *othello.Controller) error {
		require.Equal(t, othello.White, c.CurrentPlayer())
		return nil
	})
	require.NoError(t, err)

	// Errors of f are returned as is.
	errTest := errors.New("test")
	require.ErrorIs(t, store.With(id, func(*othello.Controller) error { return errTest }), errTest)
}

func TestStore_With_NotFound(t *testing.T) {
	store := NewStore(time.Minute, 10)

	called := false
	f := func(*othello.Controller) error {
		called = true
		return nil
	}

	require.ErrorIs(t, store.With("not-a-uuid", f), ErrNotFound)
	require.ErrorIs(t, store.With("6ba7b810-9dad-11d1-80b4-00c04fd430c8", f), ErrNotFound)
	require.False(t, called)
}

func TestStore_With_Concurrent(t *testing.T) {
	store := NewStore(time.Minute, 10)
	id, err := store.Create(Settings{Mode: othello.PlayerVsPlayer})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.With(id, func(c *othello.Controller) error {
				moves := c.LegalMovesFor(c.CurrentPlayer())
				if len(moves) > 0 {
					c.AttemptMove(moves[0])
				}
				return nil
			})
		}()
	}
	wg.Wait()

	err = store.With(id, func(c *othello.Controller) error {
		require.Greater(t, c.Snapshot().CountOccupied(), 4)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(time.Minute, 10)
	id, err := store.Create(Settings{})
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))
	require.ErrorIs(t, store.Delete(id), ErrNotFound)
	require.Equal(t, 0, store.Len())
}

func TestStore_Prune(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute, 10)
	store.now = func() time.Time { return now }

	oldID, err := store.Create(Settings{})
	require.NoError(t, err)

	now = now.Add(45 * time.Second)
	activeID, err := store.Create(Settings{})
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	require.Equal(t, 1, store.Prune())

	require.ErrorIs(t, store.With(oldID, func(*othello.Controller) error { return nil }), ErrNotFound)
	require.NoError(t, store.With(activeID, func(*othello.Controller) error { return nil }))
}

func TestStore_With_NotPrunedBeforeLock(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute, 10)
	store.now = func() time.Time { return now }

	id, err := store.Create(Settings{})
	require.NoError(t, err)

	// Idle long enough to be pruned, then used again.
	now = now.Add(2 * time.Minute)

	pruned := -1
	store.afterLookup = func() { pruned = store.Prune() }

	called := false
	err = store.With(id, func(c *othello.Controller) error {
		called = true
		require.Equal(t, othello.Applied, c.AttemptMove(othello.Position{Col: 2, Row: 3}))
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, 0, pruned)
	require.Equal(t, 1, store.Len())

	store.afterLookup = nil
	err = store.With(id, func(c *othello.Controller) error {
		require.Equal(t, othello.White, c.CurrentPlayer())
		return nil
	})
	require.NoError(t, err)
}

func TestStore_RunPruner(t *testing.T) {
	store := NewStore(time.Nanosecond, 10)
	_, err := store.Create(Settings{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunPruner(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, time.Millisecond)

	cancel()
	<-done
}
