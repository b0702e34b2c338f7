// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

// Package storage persists solver runs in two tiers: a Redis
// cache for the checkpoints of runs in progress, and a Postgres
// archive for finished runs.  The cache is disposable; the
// archive is the system of record.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5/pgxpool"
)

// A Store holds the two connections.  Either tier may be absent:
// an empty URL at Connect time disables it, and operations
// against a disabled tier return ErrDisabled.
type Store struct {
	// cache connection; Redis connections are not safe for
	// concurrent use, and can also drop without warning, so every
	// cache operation goes through withCache below
	mu       sync.Mutex
	conn     redis.Conn
	redisURL string

	// archive pool; pgxpool manages its own concurrency
	db *pgxpool.Pool
}

// ErrDisabled reports an operation against a tier that was not
// configured.
var ErrDisabled = fmt.Errorf("storage tier not configured")

// Connect dials the configured tiers.  The Postgres schema is
// migrated to the current version before the store is returned.
func Connect(ctx context.Context, redisURL, databaseURL string) (*Store, error) {
	s := &Store{redisURL: redisURL}
	if redisURL != "" {
		conn, err := redis.DialURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to cache at %q: %w", redisURL, err)
		}
		s.conn = conn
	}
	if databaseURL != "" {
		if err := migrateSchema(databaseURL); err != nil {
			s.Close()
			return nil, fmt.Errorf("preparing archive schema: %w", err)
		}
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("connecting to archive at %q: %w", databaseURL, err)
		}
		s.db = pool
	}
	return s, nil
}

// Close releases both tiers.  Safe on a partially connected
// store.
func (s *Store) Close() {
	s.mu.Lock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.mu.Unlock()
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
}

// withCache runs one cache operation under the connection mutex.
// The connection is pinged first and redialed if it has gone
// away, so a bounced Redis costs one retry rather than a failed
// run.
func (s *Store) withCache(body func(conn redis.Conn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return ErrDisabled
	}
	if _, err := s.conn.Do("PING"); err != nil {
		s.conn.Close()
		conn, err := redis.DialURL(s.redisURL)
		if err != nil {
			s.conn = nil
			return fmt.Errorf("reconnecting to cache at %q: %w", s.redisURL, err)
		}
		s.conn = conn
	}
	return body(s.conn)
}
