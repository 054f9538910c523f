// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tempdb stores temperature readings in an append-only SQLite table.
//
// Each row is timestamped by the store with second granularity and the
// timestamp is unique: two readings inserted within the same second conflict,
// and the second one fails with ErrConflict.
package tempdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// TimeLayout is how created_at is stored.
const TimeLayout = "2006-01-02 15:04:05"

// ErrConflict is returned when a reading already exists for the current
// second.
var ErrConflict = errors.New("tempdb: reading already recorded for this second")

// Reading is one persisted row.
type Reading struct {
	ID          int64
	Temperature float64
	CreatedAt   time.Time
}

// String renders the reading as a text table row.
func (r Reading) String() string {
	return fmt.Sprintf("|%s|%6.3f|", r.CreatedAt.Format(TimeLayout), r.Temperature)
}

// CSV renders the reading as "<unix seconds>,<temperature>".
func (r Reading) CSV() string {
	return strconv.FormatInt(r.CreatedAt.Unix(), 10) + "," + strconv.FormatFloat(r.Temperature, 'f', -1, 64)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is a SQLite database holding the temperatures table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and creates the table if
// needed.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tempdb: open %s: %w", path, err)
	}
	// WAL mode for concurrent readers, e.g. a dashboard.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("tempdb: set WAL mode: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("tempdb: create table: %w", err)
	}
	s := &Store{db: db, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS temperatures (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			temperature REAL NOT NULL,
			created_at  TEXT NOT NULL UNIQUE
		)
	`)
	return err
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert records celsius at the current second.
func (s *Store) Insert(ctx context.Context, celsius float64) (Reading, error) {
	r := Reading{Temperature: celsius, CreatedAt: s.now().UTC().Truncate(time.Second)}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO temperatures (temperature, created_at) VALUES (?, ?)",
		celsius, r.CreatedAt.Format(TimeLayout),
	)
	if err != nil {
		if isConflict(err) {
			return Reading{}, fmt.Errorf("%w (%s): %v", ErrConflict, r.CreatedAt.Format(TimeLayout), err)
		}
		return Reading{}, fmt.Errorf("tempdb: insert: %w", err)
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return Reading{}, fmt.Errorf("tempdb: insert: %w", err)
	}
	return r, nil
}

// Latest returns up to n readings, newest first.
func (s *Store) Latest(ctx context.Context, n int) ([]Reading, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, temperature, created_at FROM temperatures ORDER BY id DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, fmt.Errorf("tempdb: query: %w", err)
	}
	defer rows.Close()

	var out []Reading
	for rows.Next() {
		var r Reading
		var created string
		if err := rows.Scan(&r.ID, &r.Temperature, &created); err != nil {
			return nil, fmt.Errorf("tempdb: scan: %w", err)
		}
		if r.CreatedAt, err = time.ParseInLocation(TimeLayout, created, time.UTC); err != nil {
			return nil, fmt.Errorf("tempdb: row %d: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of readings.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM temperatures").Scan(&n); err != nil {
		return 0, fmt.Errorf("tempdb: count: %w", err)
	}
	return n, nil
}

func isConflict(err error) bool {
	var e *sqlite.Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
