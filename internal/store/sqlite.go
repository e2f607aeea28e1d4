package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"prochide/internal/registry"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS hidelist (
	package_name TEXT NOT NULL,
	process TEXT NOT NULL,
	PRIMARY KEY(package_name, process)
);
CREATE TABLE IF NOT EXISTS settings (
	key TEXT NOT NULL PRIMARY KEY,
	value INT NOT NULL DEFAULT 0
);`

// SQLite keeps the hide list in the relational layout used by the device database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One connection: the daemon already serializes writers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Targets(ctx context.Context) ([]registry.Target, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT package_name, process FROM hidelist`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []registry.Target
	for rows.Next() {
		var t registry.Target
		if err := rows.Scan(&t.Package, &t.Process); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *SQLite) InsertTarget(ctx context.Context, t registry.Target) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO hidelist (package_name, process) VALUES (?, ?)`, t.Package, t.Process)
	return err
}

func (s *SQLite) DeleteTarget(ctx context.Context, pkg, proc string) error {
	var err error
	if proc == "" {
		_, err = s.db.ExecContext(ctx, `DELETE FROM hidelist WHERE package_name = ?`, pkg)
	} else {
		_, err = s.db.ExecContext(ctx,
			`DELETE FROM hidelist WHERE package_name = ? AND process = ?`, pkg, proc)
	}
	return err
}

func (s *SQLite) HideConfig(ctx context.Context) (bool, error) {
	var v int
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, HideConfigKey).Scan(&v)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (s *SQLite) SetHideConfig(ctx context.Context, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	_, err := s.db.ExecContext(ctx, `REPLACE INTO settings (key, value) VALUES (?, ?)`, HideConfigKey, v)
	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
