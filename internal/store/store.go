// Package store provides durable record keeping for bookings and
// contact submissions. Conversation state is deliberately not stored
// here; sessions live in memory for the process lifetime.
package store

import (
	"context"

	"github.com/summit-coaching/assistant-api/internal/domain"
)

// Repository is the interface for the audit record store.
type Repository interface {
	// InsertBooking writes one booking request record.
	InsertBooking(ctx context.Context, rec *domain.BookingRecord) error

	// InsertContactSubmission writes one accepted contact submission.
	InsertContactSubmission(ctx context.Context, rec *domain.ContactRecord) error

	// CountContactSubmissionsSince reports submissions from an email
	// address at or after the cutoff. Used for operational checks.
	CountContactSubmissionsSince(ctx context.Context, email string, sinceUnix int64) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
