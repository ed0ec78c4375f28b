// Package domain contains core domain types for the coaching assistant.
package domain

import (
	"time"
)

// Mood is the sentiment of the most recent user message in a session.
type Mood string

const (
	MoodPositive Mood = "positive"
	MoodNegative Mood = "negative"
	MoodNeutral  Mood = "neutral"
)

// Intent is the coarse purpose category of a user message.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentPricing       Intent = "pricing"
	IntentDuration      Intent = "duration"
	IntentBooking       Intent = "booking"
	IntentBackground    Intent = "background"
	IntentQualification Intent = "qualification"
	IntentGeneral       Intent = "general"
)

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DefaultUserName is used until the user tells us their name.
const DefaultUserName = "Guest"

// Session holds per-conversation state. One session per identifier,
// kept for the lifetime of the process.
type Session struct {
	ID           string
	UserName     string
	TurnCount    int
	Mood         Mood
	Interests    []string
	CreatedAt    time.Time
	LastActiveAt time.Time
	Booked       bool
	Booking      *BookingDetails
}

// BookingDetails records a meeting booked from within a session.
type BookingDetails struct {
	Name     string
	Email    string
	Coach    string
	BookedAt time.Time
}

// AddInterest appends a topic tag unless it is already present.
// Insertion order is preserved.
func (s *Session) AddInterest(tag string) {
	for _, t := range s.Interests {
		if t == tag {
			return
		}
	}
	s.Interests = append(s.Interests, tag)
}

// Turn is one message exchange unit stored in a session's history.
type Turn struct {
	Role Role
	Text string
	At   time.Time
}
