package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepdoku/stepdoku/puzzle"
)

func cacheStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	s, err := Connect(context.Background(), "redis://"+m.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, m
}

func sampleBoard(t *testing.T) *puzzle.Board {
	t.Helper()
	b := puzzle.NewBoard()
	for col, d := range []int{4, 0, 0, 0, 0, 3, 5, 0, 2} {
		if d == 0 {
			continue
		}
		require.NoError(t, b.Assign(puzzle.Location{Col: col, Row: 0}, d))
	}
	require.NoError(t, b.RestrictCandidates(puzzle.Location{Col: 1, Row: 0}, puzzle.NewDigitSet(1, 6, 7)))
	return b
}

func TestCheckpointRoundTrip(t *testing.T) {
	s, _ := cacheStore(t)
	runID := uuid.New()
	b := sampleBoard(t)

	require.NoError(t, s.SaveCheckpoint(runID, b, 0))
	got, err := s.LoadCheckpoint(runID)
	require.NoError(t, err)
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			loc := puzzle.Location{Col: col, Row: row}
			assert.Equal(t, b.Value(loc), got.Value(loc), "value at %v", loc)
			assert.Equal(t, b.Candidates(loc), got.Candidates(loc), "candidates at %v", loc)
		}
	}
}

func TestCheckpointTTL(t *testing.T) {
	s, m := cacheStore(t)
	runID := uuid.New()

	require.NoError(t, s.SaveCheckpoint(runID, sampleBoard(t), time.Hour))
	assert.Equal(t, time.Hour, m.TTL(checkpointKey(runID)))

	// expiry makes the checkpoint unloadable
	m.FastForward(2 * time.Hour)
	_, err := s.LoadCheckpoint(runID)
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestLoadMissingCheckpoint(t *testing.T) {
	s, _ := cacheStore(t)
	_, err := s.LoadCheckpoint(uuid.New())
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestDeleteCheckpoint(t *testing.T) {
	s, _ := cacheStore(t)
	runID := uuid.New()

	require.NoError(t, s.SaveCheckpoint(runID, sampleBoard(t), 0))
	require.NoError(t, s.DeleteCheckpoint(runID))
	_, err := s.LoadCheckpoint(runID)
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestCacheReconnects(t *testing.T) {
	s, _ := cacheStore(t)
	runID := uuid.New()

	// kill the live connection behind the store's back; the next
	// operation must redial rather than fail
	s.mu.Lock()
	s.conn.Close()
	s.mu.Unlock()

	require.NoError(t, s.SaveCheckpoint(runID, sampleBoard(t), 0))
	_, err := s.LoadCheckpoint(runID)
	assert.NoError(t, err)
}

func TestDisabledTiers(t *testing.T) {
	s, err := Connect(context.Background(), "", "")
	require.NoError(t, err)
	defer s.Close()

	err = s.SaveCheckpoint(uuid.New(), sampleBoard(t), 0)
	assert.ErrorIs(t, err, ErrDisabled)
	err = s.ArchiveRun(context.Background(), &Run{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = s.ListRuns(context.Background(), 10)
	assert.ErrorIs(t, err, ErrDisabled)
}
