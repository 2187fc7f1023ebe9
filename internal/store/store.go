// Package store keeps a small local SQLite database of recently opened
// sessions and cached edit history. The cache is advisory: the server's
// history is always the source of truth, and the cached copy only feeds the
// session picker and offline context.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/yoursandeshshrestha/videoable/internal/editstate"
)

// Recent is one remembered session.
type Recent struct {
	SessionID     int
	ServerURL     string
	VideoFilename string
	LastOpenedAt  time.Time
}

// Store wraps the local SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database location under the user's config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "videoable.sqlite"
	}
	return filepath.Join(dir, "videoable", "videoable.sqlite")
}

const schema = `
	CREATE TABLE IF NOT EXISTS recents (
		sessionId INTEGER NOT NULL,
		serverUrl TEXT NOT NULL,
		videoFilename TEXT NOT NULL,
		lastOpenedAt REAL NOT NULL,
		PRIMARY KEY (sessionId, serverUrl)
	);

	CREATE TABLE IF NOT EXISTS history_cache (
		sessionId INTEGER NOT NULL,
		serverUrl TEXT NOT NULL,
		edits TEXT NOT NULL,
		fetchedAt REAL NOT NULL,
		PRIMARY KEY (sessionId, serverUrl)
	);
`

// Open opens (and if needed creates) the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordOpened upserts a session into the recents list.
func (s *Store) RecordOpened(sessionID int, serverURL, videoFilename string, now time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO recents (sessionId, serverUrl, videoFilename, lastOpenedAt)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (sessionId, serverUrl) DO UPDATE SET
			videoFilename = excluded.videoFilename,
			lastOpenedAt = excluded.lastOpenedAt
	`, sessionID, serverURL, videoFilename, unixFloat(now))
	if err != nil {
		return fmt.Errorf("record opened: %w", err)
	}
	return nil
}

// RecentSessions returns up to limit sessions, most recently opened first.
func (s *Store) RecentSessions(limit int) ([]Recent, error) {
	rows, err := s.db.Query(`
		SELECT sessionId, serverUrl, videoFilename, lastOpenedAt
		FROM recents
		ORDER BY lastOpenedAt DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recents: %w", err)
	}
	defer rows.Close()

	var recents []Recent
	for rows.Next() {
		var r Recent
		var openedAt float64
		if err := rows.Scan(&r.SessionID, &r.ServerURL, &r.VideoFilename, &openedAt); err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		r.LastOpenedAt = timeFromUnix(openedAt)
		recents = append(recents, r)
	}
	return recents, rows.Err()
}

// CacheHistory stores the fetched edit history for a session, replacing any
// previous copy.
func (s *Store) CacheHistory(sessionID int, serverURL string, edits []editstate.EditRecord, now time.Time) error {
	payload, err := json.Marshal(edits)
	if err != nil {
		return fmt.Errorf("cache history: marshal: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO history_cache (sessionId, serverUrl, edits, fetchedAt)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (sessionId, serverUrl) DO UPDATE SET
			edits = excluded.edits,
			fetchedAt = excluded.fetchedAt
	`, sessionID, serverURL, string(payload), unixFloat(now))
	if err != nil {
		return fmt.Errorf("cache history: %w", err)
	}
	return nil
}

// CachedHistory returns the cached edits for a session and when they were
// fetched. A missing cache entry returns nil edits and no error.
func (s *Store) CachedHistory(sessionID int, serverURL string) ([]editstate.EditRecord, time.Time, error) {
	row := s.db.QueryRow(`
		SELECT edits, fetchedAt
		FROM history_cache
		WHERE sessionId = ? AND serverUrl = ?
	`, sessionID, serverURL)

	var payload string
	var fetchedAt float64
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, fmt.Errorf("scan cached history: %w", err)
	}

	var edits []editstate.EditRecord
	if err := json.Unmarshal([]byte(payload), &edits); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode cached history: %w", err)
	}
	return edits, timeFromUnix(fetchedAt), nil
}

func unixFloat(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func timeFromUnix(ts float64) time.Time {
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
