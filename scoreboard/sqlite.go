package scoreboard

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const createScoresTable = `CREATE TABLE IF NOT EXISTS scores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	score INTEGER NOT NULL,
	played_at INTEGER NOT NULL
)`

// SQLiteStore keeps entries in a scores table, arrival order is the rowid
// played_at is unix seconds
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database and its table
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open scoreboard db %s: %w", path, err)
	}
	if _, err := db.Exec(createScoresTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create scores table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Append(e Entry) error {
	playedAt := e.Time
	if playedAt.IsZero() {
		playedAt = time.Now()
	}
	_, err := s.db.Exec(`INSERT INTO scores (name, score, played_at) VALUES (?, ?, ?)`,
		e.Name, e.Score, playedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Entries() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT name, score, played_at FROM scores ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			playedAt int64
		)
		if err := rows.Scan(&e.Name, &e.Score, &playedAt); err != nil {
			return entries, fmt.Errorf("scan score: %w", err)
		}
		e.Time = time.Unix(playedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
