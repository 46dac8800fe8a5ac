package scoreboard

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// TextStore appends "name score" lines to a plain text file
type TextStore struct {
	mu   sync.Mutex
	path string
}

// NewTextStore does not touch the file until the first Append
func NewTextStore(path string) *TextStore {
	return &TextStore{path: path}
}

// Append opens the file in append mode for each entry, the file is created on demand
func (s *TextStore) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open scoreboard %s: %w", s.path, err)
	}

	if _, err := fmt.Fprintf(f, "%s %d\n", e.Name, e.Score); err != nil {
		f.Close()
		return fmt.Errorf("write scoreboard %s: %w", s.path, err)
	}
	return f.Close()
}

// Entries parses the file; the score is the last field so names may contain spaces
// Lines without a trailing integer are skipped
func (s *TextStore) Entries() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open scoreboard %s: %w", s.path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.LastIndexByte(line, ' ')
		if idx < 0 {
			continue
		}
		score, err := strconv.Atoi(line[idx+1:])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: line[:idx], Score: score})
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read scoreboard %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *TextStore) Close() error { return nil }
