package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("not found")

// DB wraps the SQLite database connection and provides storage operations.
type DB struct {
	conn *sql.DB
}

// NewDB creates a new database connection and initializes the schema.
func NewDB(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Writes go through a single connection.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_usage (
		user_id INTEGER NOT NULL,
		topic TEXT NOT NULL,
		day TEXT NOT NULL,
		PRIMARY KEY (user_id, topic)
	);

	CREATE INDEX IF NOT EXISTS idx_daily_usage_day ON daily_usage(day);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// LastUsedDay returns the day (YYYY-MM-DD) a user last drew a card on a topic.
func (db *DB) LastUsedDay(ctx context.Context, userID int64, topic string) (string, error) {
	query := `SELECT day FROM daily_usage WHERE user_id = ? AND topic = ?`
	var day string
	err := db.conn.QueryRowContext(ctx, query, userID, topic).Scan(&day)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return day, err
}

// MarkUsed stores or overwrites the last-used day for a user and topic.
func (db *DB) MarkUsed(ctx context.Context, userID int64, topic, day string) error {
	query := `
	INSERT INTO daily_usage (user_id, topic, day) VALUES (?, ?, ?)
	ON CONFLICT(user_id, topic) DO UPDATE SET day = excluded.day
	`
	_, err := db.conn.ExecContext(ctx, query, userID, topic, day)
	return err
}

// ClaimDay records day for a user and topic unless it is already stored, in
// a single statement. It reports whether this call changed the record.
func (db *DB) ClaimDay(ctx context.Context, userID int64, topic, day string) (bool, error) {
	query := `
	INSERT INTO daily_usage (user_id, topic, day) VALUES (?, ?, ?)
	ON CONFLICT(user_id, topic) DO UPDATE SET day = excluded.day
	WHERE daily_usage.day <> excluded.day
	`
	res, err := db.conn.ExecContext(ctx, query, userID, topic, day)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// UsageOn returns the number of users per topic whose last draw was on day.
func (db *DB) UsageOn(ctx context.Context, day string) (map[string]int, error) {
	query := `SELECT topic, COUNT(*) FROM daily_usage WHERE day = ? GROUP BY topic`
	rows, err := db.conn.QueryContext(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make(map[string]int)
	for rows.Next() {
		var topic string
		var count int
		if err := rows.Scan(&topic, &count); err != nil {
			return nil, err
		}
		usage[topic] = count
	}
	return usage, rows.Err()
}

// CountRecords returns the total number of stored usage records.
func (db *DB) CountRecords(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM daily_usage`
	var count int
	err := db.conn.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
