package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/summit-coaching/assistant-api/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		session_id TEXT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		coach TEXT NOT NULL,
		message TEXT,
		scheduling_link TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_bookings_email ON bookings(email);

	CREATE TABLE IF NOT EXISTS contact_submissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		subject TEXT,
		message TEXT NOT NULL,
		preferred_contact TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contact_email_created ON contact_submissions(email, created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertBooking writes one booking request record.
func (s *SQLiteStore) InsertBooking(ctx context.Context, rec *domain.BookingRecord) error {
	query := `
		INSERT INTO bookings (id, session_id, name, email, coach, message, scheduling_link, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.SessionID, rec.Name, strings.ToLower(rec.Email),
		rec.Coach, rec.Message, rec.SchedulingLink, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// InsertContactSubmission writes one accepted contact submission.
func (s *SQLiteStore) InsertContactSubmission(ctx context.Context, rec *domain.ContactRecord) error {
	query := `
		INSERT INTO contact_submissions (id, name, email, phone, subject, message, preferred_contact, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Name, strings.ToLower(rec.Email), rec.Phone,
		rec.Subject, rec.Message, rec.PreferredContact, rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert contact submission: %w", err)
	}
	return nil
}

// CountContactSubmissionsSince reports submissions from an email at or
// after the cutoff.
func (s *SQLiteStore) CountContactSubmissionsSince(ctx context.Context, email string, sinceUnix int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM contact_submissions
		WHERE email = ? AND created_at >= ?`

	var count int64
	err := s.db.QueryRowContext(ctx, query, strings.ToLower(email), sinceUnix).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count contact submissions: %w", err)
	}
	return count, nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
