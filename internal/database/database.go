// Package database owns the embedded SQLite handle shared by every
// repository and is responsible for creating the schema.
package database

import (
	"database/sql"
	"sync"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Store wraps the single storage connection. All repositories share
// one Store; mutations go through Write so that multi-statement writes
// (the cascade delete in particular) never interleave.
type Store struct {
	Bun *bun.DB

	writeMu sync.Mutex
}

// Open opens (and creates if absent) the SQLite database at path and
// verifies the connection. Use "file:<name>?mode=memory&cache=shared"
// for an in-memory store in tests.
func Open(path string) (*Store, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, err
	}
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, err
	}
	return &Store{Bun: bun.NewDB(sqldb, sqlitedialect.New())}, nil
}

// Write runs fn while holding the store's write lock. SQLite allows a
// single writer at a time; serializing here keeps partial writes from
// interleaving without relying on driver-level busy handling.
func (s *Store) Write(fn func() error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return fn()
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.Bun.Close()
}
