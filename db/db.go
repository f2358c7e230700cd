package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const dbDriver = "sqlite3"

// Store wraps the single SQLite connection shared by the whole process.
// database/sql serializes access, so store calls are safe from the multiple
// goroutines discordgo dispatches events on; multi-statement sequences that
// must not interleave (vote replacement, purge) run inside a transaction.
type Store struct {
	conn *sql.DB
}

// Open opens the SQLite database at path and creates tables if they don't
// exist. Use ":memory:" for an isolated throwaway store in tests.
func Open(path string) (*Store, error) {
	conn, err := sql.Open(dbDriver, path)
	if err != nil {
		return nil, err
	}

	s := &Store{conn: conn}
	if err := s.createTables(); err != nil {
		conn.Close()
		return nil, err
	}

	log.Info().Str("path", path).Msg("database connection initialized")
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}
