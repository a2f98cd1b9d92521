package domain

import "context"

// Registration modes an event offers. RegistrationType is the authoritative
// signal for eligibility; TeamSize is descriptive only.
const (
	RegistrationSolo = "solo"
	RegistrationTeam = "team"
	RegistrationBoth = "both"
)

// Event represents a festival event in the catalog.
// swagger:model Event
type Event struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	DateTime         string   `json:"date_time"`
	Venue            string   `json:"venue"`
	Rules            string   `json:"rules"`
	TeamSize         int      `json:"team_size"`
	Fees             int      `json:"fees"`
	CashPrize        int      `json:"cash_prize"`
	RegistrationType string   `json:"registration_type"`
	Category         string   `json:"category,omitempty"`
	BackgroundImage  string   `json:"background_image,omitempty"`
	QRCodeSolo       string   `json:"qr_code_solo,omitempty"`
	QRCodeTeam       string   `json:"qr_code_team,omitempty"`
	TeamFees         *int     `json:"team_fees,omitempty"`
	Coordinators     []string `json:"coordinators,omitempty"`
}

// AllowsSolo reports whether the event accepts individual registrations.
func (e *Event) AllowsSolo() bool {
	return e.RegistrationType == RegistrationSolo || e.RegistrationType == RegistrationBoth || e.RegistrationType == ""
}

// AllowsTeam reports whether the event accepts team registrations.
func (e *Event) AllowsTeam() bool {
	return e.RegistrationType == RegistrationTeam || e.RegistrationType == RegistrationBoth
}

// FeeFor returns the fee owed for the given registration type. Team
// registrations use the team fee override when one is set.
func (e *Event) FeeFor(registrationType string) int {
	if registrationType == RegistrationTeam && e.TeamFees != nil {
		return *e.TeamFees
	}
	return e.Fees
}

// EventUpdate carries the optional fields of an admin edit. Nil fields are
// unchanged (shallow merge into the existing record).
type EventUpdate struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	DateTime         *string   `json:"date_time"`
	Venue            *string   `json:"venue"`
	Rules            *string   `json:"rules"`
	TeamSize         *int      `json:"team_size"`
	Fees             *int      `json:"fees"`
	CashPrize        *int      `json:"cash_prize"`
	RegistrationType *string   `json:"registration_type"`
	Category         *string   `json:"category"`
	BackgroundImage  *string   `json:"background_image"`
	QRCodeSolo       *string   `json:"qr_code_solo"`
	QRCodeTeam       *string   `json:"qr_code_team"`
	TeamFees         *int      `json:"team_fees"`
	Coordinators     *[]string `json:"coordinators"`
}

// ImageKind identifies which image slot of an event an upload targets.
type ImageKind string

const (
	ImageBackground ImageKind = "background"
	ImageQRSolo     ImageKind = "qr_solo"
	ImageQRTeam     ImageKind = "qr_team"
)

// EventService defines catalog reads and the admin mutation gateway for events.
// Every mutation rewrites the full catalog array and persists it.
type EventService interface {
	ListEvents(ctx context.Context) ([]Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	// CreateEvent assigns a new ID, appends, and persists. Returns the stored
	// event and whether the durable write succeeded.
	CreateEvent(ctx context.Context, event Event) (*Event, bool, error)
	// UpdateEvent shallow-merges upd into the matching record and persists.
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*Event, bool, error)
	// DeleteEvent removes the event and cascades: registrations for the event
	// are deleted from the relational store and their backups removed.
	DeleteEvent(ctx context.Context, id string) (bool, error)
	// AttachImage uploads the binary to object storage under a
	// collision-resistant name and merges the public URL into the event.
	AttachImage(ctx context.Context, id string, kind ImageKind, filename string, data []byte) (*Event, bool, error)
	// AttachImageURL merges a direct URL (sample/library image) into the event.
	AttachImageURL(ctx context.Context, id string, kind ImageKind, url string) (*Event, bool, error)
}
