package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by SessionByID for unknown IDs.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session is the summary of one finished board session.
type Session struct {
	ID        uuid.UUID
	GameID    string
	Seed      int64
	Score     int
	Moves     int
	Matches   int
	Cascades  int
	Shuffles  int
	Replays   int
	Cleared   int
	Duration  time.Duration
	CreatedAt time.Time
}

// SaveSession records a session summary. A zero ID is replaced with a
// fresh UUID; the stored ID is returned.
func (s *Store) SaveSession(sess Session) (uuid.UUID, error) {
	if sess.ID == uuid.Nil {
		sess.ID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (session_id, game_id, seed, score, moves, matches, cascades, shuffles, replays, cleared, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID.String(), sess.GameID, sess.Seed, sess.Score, sess.Moves, sess.Matches,
		sess.Cascades, sess.Shuffles, sess.Replays, sess.Cleared, sess.Duration.Milliseconds(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save session: %w", err)
	}
	return sess.ID, nil
}

const sessionColumns = `session_id, game_id, seed, score, moves, matches, cascades,
	shuffles, replays, cleared, duration_ms, created_at`

// SessionByID retrieves a single session.
func (s *Store) SessionByID(id uuid.UUID) (*Session, error) {
	row := s.db.QueryRow(
		"SELECT "+sessionColumns+" FROM sessions WHERE session_id = ?",
		id.String(),
	)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// RecentSessions returns the newest sessions first. An empty gameID matches
// every game; a non-positive limit means 10.
func (s *Store) RecentSessions(gameID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		"SELECT "+sessionColumns+` FROM sessions
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(r scanner) (*Session, error) {
	var (
		sess       Session
		id         string
		durationMS int64
		createdAt  any
	)
	err := r.Scan(&id, &sess.GameID, &sess.Seed, &sess.Score, &sess.Moves, &sess.Matches,
		&sess.Cascades, &sess.Shuffles, &sess.Replays, &sess.Cleared, &durationMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot scan session: %w", err)
	}

	sess.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("storage: bad session id %q: %w", id, err)
	}
	sess.Duration = time.Duration(durationMS) * time.Millisecond
	sess.CreatedAt = parseTime(createdAt)
	return &sess, nil
}
