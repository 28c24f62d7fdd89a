// internal/journal/journal.go
//
// Append-only event journal backed by SQLite.
//
// The journal implements game.Recorder so a Session can write to it without
// knowing about storage. Recording is best effort: a failed insert is logged
// and never reaches the game.

package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/game"
)

// writeTimeout bounds a single Record insert.
const writeTimeout = 2 * time.Second

// Entry is one journaled row.
type Entry struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"sessionId"`
	Kind        string    `json:"kind"`
	Word        string    `json:"word,omitempty"`
	Pattern     string    `json:"pattern,omitempty"`
	Remaining   int       `json:"remaining"`
	State       string    `json:"state"`
	Constraints string    `json:"constraints,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store wraps the journal database.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens the journal at dsn and applies migrations.
func Open(dsn string, log zerolog.Logger) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := migrate(db, migrations, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Append inserts an entry and returns its id.
func (s *Store) Append(ctx context.Context, e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO events
            (session_id, kind, word, pattern, remaining, state, constraints, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Kind, nullIfEmpty(e.Word), nullIfEmpty(e.Pattern),
		e.Remaining, e.State, nullIfEmpty(e.Constraints),
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("append event: %w", err)
	}
	return res.LastInsertId()
}

// Record implements game.Recorder.
func (s *Store) Record(ev game.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	_, err := s.Append(ctx, Entry{
		SessionID:   ev.SessionID,
		Kind:        string(ev.Kind),
		Word:        ev.Word,
		Pattern:     ev.Pattern,
		Remaining:   ev.Remaining,
		State:       string(ev.State),
		Constraints: ev.Constraints,
		CreatedAt:   ev.At,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("session", ev.SessionID).Str("kind", string(ev.Kind)).Msg("journal event")
	}
}

// Events returns the entries of one session in insertion order, or the most
// recent entries of all sessions when sessionID is empty. limit <= 0 means 100.
func (s *Store) Events(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 100
	}
	var (
		rows *sql.Rows
		err  error
	)
	const cols = `SELECT id, session_id, kind, COALESCE(word,''), COALESCE(pattern,''),
	                     remaining, state, COALESCE(constraints,''), created_at
	              FROM events`
	if sessionID != "" {
		rows, err = s.db.QueryContext(ctx, cols+` WHERE session_id=? ORDER BY id ASC LIMIT ?`, sessionID, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, `SELECT * FROM (`+cols+` ORDER BY id DESC LIMIT ?) ORDER BY id ASC`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e       Entry
			created string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &e.Word, &e.Pattern,
			&e.Remaining, &e.State, &e.Constraints, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
