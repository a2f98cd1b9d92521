package domain

import "context"

// Sponsor tiers, ranked highest first.
const (
	TierTitle    = "title"
	TierPlatinum = "platinum"
	TierGold     = "gold"
	TierSilver   = "silver"
)

// SponsorTiers lists the valid tiers in rank order.
var SponsorTiers = []string{TierTitle, TierPlatinum, TierGold, TierSilver}

// ValidTier reports whether tier is one of the four ranked levels.
func ValidTier(tier string) bool {
	for _, t := range SponsorTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Sponsor represents a festival sponsor.
// swagger:model Sponsor
type Sponsor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	Logo    string `json:"logo,omitempty"`
	Website string `json:"website,omitempty"`
}

// SponsorUpdate carries the optional fields of an admin edit. Nil fields are
// unchanged.
type SponsorUpdate struct {
	Name    *string `json:"name"`
	Tier    *string `json:"tier"`
	Logo    *string `json:"logo"`
	Website *string `json:"website"`
}

// SponsorService defines catalog reads and the admin mutation gateway for
// sponsors. Same whole-array persistence contract as EventService.
type SponsorService interface {
	ListSponsors(ctx context.Context) ([]Sponsor, error)
	CreateSponsor(ctx context.Context, sponsor Sponsor) (*Sponsor, bool, error)
	UpdateSponsor(ctx context.Context, id string, upd SponsorUpdate) (*Sponsor, bool, error)
	DeleteSponsor(ctx context.Context, id string) (bool, error)
}
