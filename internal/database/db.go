package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/seodesk/internal/config"
	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = config.DefaultDBTimeout

// Database wraps the sqlite handle holding SEO tags and site settings.
type Database struct {
	DB     *sql.DB
	dbFile string
	now    func() time.Time
}

// Open opens (creating if needed) the database at path and brings the schema
// up to date.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite allows one writer; a single connection avoids SQLITE_BUSY between
	// API goroutines.
	db.SetMaxOpenConns(1)

	d := &Database{DB: db, dbFile: path, now: time.Now}
	pingCtx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the database was opened from.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func withDBContext(d *Database, ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn in a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (d *Database) timestamp() time.Time {
	return d.now().UTC()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS seo_tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			page_id TEXT NOT NULL UNIQUE,
			page_path TEXT NOT NULL,
			page_name TEXT NOT NULL,
			page_title TEXT NOT NULL,
			meta_description TEXT NOT NULL,
			meta_keywords TEXT NOT NULL DEFAULT '',
			canonical_url TEXT NOT NULL DEFAULT '',
			robots_meta TEXT NOT NULL DEFAULT 'index, follow',
			og_title TEXT NOT NULL DEFAULT '',
			og_description TEXT NOT NULL DEFAULT '',
			og_type TEXT NOT NULL DEFAULT 'website',
			og_url TEXT NOT NULL DEFAULT '',
			og_image_url TEXT NOT NULL,
			og_image_alt TEXT NOT NULL DEFAULT '',
			twitter_card TEXT NOT NULL DEFAULT 'summary_large_image',
			twitter_title TEXT NOT NULL DEFAULT '',
			twitter_description TEXT NOT NULL DEFAULT '',
			twitter_image_url TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS advanced_seo (
			id INTEGER PRIMARY KEY,
			google_site_verification TEXT NOT NULL DEFAULT '',
			header_script TEXT NOT NULL DEFAULT '',
			footer_script TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			name TEXT PRIMARY KEY,
			applied_at DATETIME NOT NULL
		);`,
	}
	for _, query := range queries {
		if err := withDBContext(d, ctx, func(ctx context.Context) error {
			_, err := d.DB.ExecContext(ctx, query)
			return err
		}); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migration is a one-time schema change recorded in schema_migrations.
type migration struct {
	name string
	stmt string
}

var migrations = []migration{
	{name: "seo_tags_schema", stmt: "ALTER TABLE seo_tags ADD COLUMN schema_json TEXT"},
	{name: "seo_tags_created_by", stmt: "ALTER TABLE seo_tags ADD COLUMN created_by TEXT"},
	{name: "seo_tags_updated_by", stmt: "ALTER TABLE seo_tags ADD COLUMN updated_by TEXT"},
	{name: "advanced_created_by", stmt: "ALTER TABLE advanced_seo ADD COLUMN created_by TEXT"},
	{name: "advanced_updated_by", stmt: "ALTER TABLE advanced_seo ADD COLUMN updated_by TEXT"},
	{name: "seo_tags_updated_index", stmt: "CREATE INDEX IF NOT EXISTS idx_seo_tags_updated_at ON seo_tags(updated_at)"},
}

func (d *Database) migrate(ctx context.Context) error {
	for _, m := range migrations {
		applied, err := d.migrationApplied(ctx, m.name)
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
		if applied {
			continue
		}
		err = d.WithTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, m.stmt); err != nil && !isDuplicateColumn(err) {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)", m.name, d.timestamp())
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}

func (d *Database) migrationApplied(ctx context.Context, name string) (bool, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (bool, error) {
		var count int
		err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE name = ?", name).Scan(&count)
		return count > 0, err
	})
}

func isDuplicateColumn(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate column name")
}
