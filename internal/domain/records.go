package domain

import "time"

// BookingRecord is the durable audit row written for every booking request.
type BookingRecord struct {
	ID             string
	SessionID      string
	Name           string
	Email          string
	Coach          string
	Message        string
	SchedulingLink string
	CreatedAt      time.Time
}

// ContactRecord is the durable audit row written for every accepted
// contact-form submission.
type ContactRecord struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	Subject          string
	Message          string
	PreferredContact string
	CreatedAt        time.Time
}
