package scoreboard

import (
	"path/filepath"
	"strings"
	"time"
)

// Entry is one finished session
type Entry struct {
	Name  string
	Score int
	// Time is informational, only the SQLite store keeps it
	Time time.Time
}

// Store appends entries in arrival order; no validation, dedup or sorting
type Store interface {
	Append(e Entry) error
	// Entries returns everything stored, oldest first
	Entries() ([]Entry, error)
	Close() error
}

// Open picks SQLite for .db/.sqlite paths and the plain text scoreboard otherwise
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return NewTextStore(path), nil
	}
}
