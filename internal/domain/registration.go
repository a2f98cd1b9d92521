package domain

import (
	"context"
	"time"
)

// Payment status derived at submission time for the backup record.
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentFree    = "free"
)

// TeamMember is one member of a team registration. All fields are required
// once the member is part of a submitted registration.
type TeamMember struct {
	Name   string `json:"name"`
	USN    string `json:"usn"`
	Branch string `json:"branch"`
}

// Registration is a participant's registration for an event. UTR is present
// only when the event charges a fee; free events never carry one.
// swagger:model Registration
type Registration struct {
	ID               string       `json:"id"`
	EventID          string       `json:"event_id"`
	Name             string       `json:"name"`
	USN              string       `json:"usn"`
	Branch           string       `json:"branch"`
	Phone            string       `json:"phone"`
	Email            string       `json:"email"`
	RegistrationType string       `json:"registration_type"`
	UTR              string       `json:"utr,omitempty"`
	TeamMembers      []TeamMember `json:"team_members,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// RegistrationBackup is the enriched copy written to object storage as an
// independent backup of each submission.
type RegistrationBackup struct {
	Registration
	EventName     string    `json:"event_name"`
	SubmittedAt   time.Time `json:"submitted_at"`
	PaymentStatus string    `json:"payment_status"`
}

// DerivePaymentStatus classifies a submission: paid if a UTR is present,
// pending if the event charges and no UTR was given, free otherwise.
func DerivePaymentStatus(fee int, utr string) string {
	switch {
	case utr != "":
		return PaymentPaid
	case fee > 0:
		return PaymentPending
	default:
		return PaymentFree
	}
}

// SubmissionResult reports the true outcome of a submission. The registration
// is always created; Stored and BackedUp report whether each remote write
// landed (failed writes are queued for retry).
type SubmissionResult struct {
	Registration *Registration `json:"registration"`
	Stored       bool          `json:"stored"`
	BackedUp     bool          `json:"backed_up"`
}

// RegistrationRepository defines relational storage for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Registration, int, error)
	List(ctx context.Context, params PaginationParams) ([]*Registration, int, error)
	// DeleteByEventID removes all registrations for an event and returns the
	// removed rows so callers can clean up their backup objects.
	DeleteByEventID(ctx context.Context, eventID string) ([]*Registration, error)
}

// RegistrationService defines the submission pipeline and admin listing.
type RegistrationService interface {
	// Submit validates the form data against the event, persists the
	// registration, and reports the per-sink outcome.
	Submit(ctx context.Context, eventID string, reg Registration) (*SubmissionResult, error)
	ListRegistrations(ctx context.Context, eventID string, params PaginationParams) ([]*Registration, int, error)
}
