package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps credentials in a sqlite file, so a session survives a
// restart of the presentation layer.
type SQLiteStore struct {
	db *sqlx.DB
}

func OpenSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS credentials(
  sid        TEXT PRIMARY KEY,
  token      TEXT NOT NULL,
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *SQLiteStore) Get(ctx context.Context, sid string) (string, error) {
	var token string
	err := s.db.GetContext(ctx, &token, `SELECT token FROM credentials WHERE sid = ?`, sid)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SQLiteStore) Set(ctx context.Context, sid, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials(sid, token, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(sid) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`, sid, token, time.Now().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) Clear(ctx context.Context, sid string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE sid = ?`, sid)
	return err
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
