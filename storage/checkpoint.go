package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"

	"github.com/stepdoku/stepdoku/format"
	"github.com/stepdoku/stepdoku/puzzle"
)

/*

Checkpoint cache

A run in progress is checkpointed to Redis after every move, so
an interrupted solve can resume exactly where it left off.  The
value is the checkpoint file format, which preserves full
candidate fidelity; the key carries the run's UUID.  Checkpoints
expire on their own rather than requiring cleanup.

*/

// DefaultCheckpointTTL is how long an untouched checkpoint
// survives.
const DefaultCheckpointTTL = 24 * time.Hour

func checkpointKey(runID uuid.UUID) string {
	return "stepdoku:checkpoint:" + runID.String()
}

// ErrNoCheckpoint reports a checkpoint that is absent or expired.
var ErrNoCheckpoint = fmt.Errorf("no checkpoint for run")

// SaveCheckpoint stores the board under the run's key, resetting
// its TTL.
func (s *Store) SaveCheckpoint(runID uuid.UUID, b *puzzle.Board, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCheckpointTTL
	}
	var sb strings.Builder
	if err := format.WriteCheckpoint(&sb, b); err != nil {
		return err
	}
	return s.withCache(func(conn redis.Conn) error {
		_, err := conn.Do("SET", checkpointKey(runID), sb.String(),
			"EX", int(ttl/time.Second))
		return err
	})
}

// LoadCheckpoint reconstructs the board of a run in progress.
func (s *Store) LoadCheckpoint(runID uuid.UUID) (*puzzle.Board, error) {
	var text string
	err := s.withCache(func(conn redis.Conn) error {
		reply, err := redis.String(conn.Do("GET", checkpointKey(runID)))
		if err == redis.ErrNil {
			return ErrNoCheckpoint
		}
		if err != nil {
			return err
		}
		text = reply
		return nil
	})
	if err != nil {
		return nil, err
	}
	b, err := format.ParseCheckpoint(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("checkpoint for run %s is corrupt: %w", runID, err)
	}
	return b, nil
}

// DeleteCheckpoint drops a run's checkpoint, typically after the
// run is archived.
func (s *Store) DeleteCheckpoint(runID uuid.UUID) error {
	return s.withCache(func(conn redis.Conn) error {
		_, err := conn.Do("DEL", checkpointKey(runID))
		return err
	})
}
