package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

const sqliteFileName = "daylist.sqlite"

// sqliteKV stores values as JSON text in a single kv table.
type sqliteKV struct {
	db     *sql.DB
	logger *log.Logger
}

func openSQLiteKV(dir string, logger *log.Logger) (*sqliteKV, error) {
	ctx := context.Background()

	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, sqliteFileName))
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout helps avoid
	// "database is locked" flakiness when a CLI and TUI run side by side.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL,
		updated_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &sqliteKV{db: db, logger: logger}
	if err := s.importFilesOnce(ctx, dir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// importFilesOnce imports existing <key>.json files when the kv table is
// still empty, so switching backends preserves the user's data.
func (s *sqliteKV) importFilesOnce(ctx context.Context, dir string) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM kv`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	files := &fileKV{dir: dir, logger: s.logger}
	raw := files.rawValues()
	if len(raw) == 0 {
		return nil
	}
	s.logger.Info("importing file store into sqlite", "keys", len(raw))
	nowMs := time.Now().UTC().UnixMilli()
	for k, v := range raw {
		if _, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)`, k, string(v), nowMs); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteKV) Get(key string, v any) bool {
	var js string
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&js)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("store read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(js), v); err != nil {
		s.logger.Warn("ignoring corrupt store value", "key", key, "err", err)
		return false
	}
	return true
}

func (s *sqliteKV) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO kv(k, v, updated_at_unixms) VALUES(?, ?, ?)`,
		key, string(b), time.Now().UTC().UnixMilli())
	return err
}

func (s *sqliteKV) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE k = ?`, key)
	return err
}

func (s *sqliteKV) Close() error { return s.db.Close() }
