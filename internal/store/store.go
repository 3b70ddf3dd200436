// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/typr/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the mistake ledger and session history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS mistakes (
			char TEXT PRIMARY KEY,
			count INTEGER NOT NULL,
			first_seen INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			target_len INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			corrected INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceMistakes overwrites the persisted ledger with the given entries.
// The slice order becomes the stored first-seen order.
func (s *Store) ReplaceMistakes(ctx context.Context, entries []model.MistakeCount) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM mistakes`); err != nil {
		return err
	}
	if len(entries) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO mistakes (char, count, first_seen) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, e := range entries {
			if _, err = stmt.ExecContext(ctx, string(e.Char), e.Count, i); err != nil {
				return err
			}
		}
	}
	err = tx.Commit()
	return err
}

// ListMistakes returns the persisted ledger entries in first-seen order.
func (s *Store) ListMistakes(ctx context.Context) ([]model.MistakeCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT char, count FROM mistakes ORDER BY first_seen ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.MistakeCount
	for rows.Next() {
		var char string
		var count int
		if err := rows.Scan(&char, &count); err != nil {
			return nil, err
		}
		runes := []rune(char)
		if len(runes) == 0 {
			continue
		}
		result = append(result, model.MistakeCount{Char: runes[0], Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearMistakes removes all persisted ledger entries.
func (s *Store) ClearMistakes(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM mistakes`)
	return err
}

// InsertSession stores a completed session record.
func (s *Store) InsertSession(ctx context.Context, rec model.SessionRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, mode, target_len, correct, corrected, incorrect, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Mode,
		rec.TargetLen,
		rec.Correct,
		rec.Corrected,
		rec.Incorrect,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns session records ordered by end time ascending,
// optionally limited to the most recent n.
func (s *Store) ListSessions(ctx context.Context, last int) ([]model.SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, ended_at, mode, target_len, correct, corrected, incorrect, duration_ms
		 FROM sessions
		 ORDER BY ended_at ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionRecord
	for rows.Next() {
		var rec model.SessionRecord
		var startedAt, endedAt string
		if err := rows.Scan(&rec.ID, &startedAt, &endedAt, &rec.Mode, &rec.TargetLen,
			&rec.Correct, &rec.Corrected, &rec.Incorrect, &rec.DurationMs); err != nil {
			return nil, err
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if rec.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if last > 0 && len(sessions) > last {
		sessions = sessions[len(sessions)-last:]
	}
	return sessions, nil
}
