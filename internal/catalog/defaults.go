package catalog

import "techfest/internal/domain"

// Object names and cache keys for the two catalogs. Both durable copies live
// in the registrations bucket alongside the per-registration backups.
const (
	EventsObject     = "events.json"
	SponsorsObject   = "sponsors.json"
	EventsCacheKey   = "techfest-events"
	SponsorsCacheKey = "techfest-sponsors"
)

func intPtr(v int) *int { return &v }

// DefaultEvents seeds the event catalog when no durable copy exists yet.
func DefaultEvents() []domain.Event {
	return []domain.Event{
		{
			ID:               "code-clash",
			Name:             "Code Clash",
			Description:      "Competitive programming contest with three rounds of increasing difficulty.",
			DateTime:         "Day 1, 10:00 AM",
			Venue:            "CS Lab Block A",
			Rules:            "Individual participation. Any language allowed. Internet access restricted to documentation.",
			TeamSize:         1,
			Fees:             100,
			CashPrize:        5000,
			RegistrationType: domain.RegistrationSolo,
			Category:         "coding",
			Coordinators:     []string{"Ananya R", "Vikram S"},
		},
		{
			ID:               "hack-sprint",
			Name:             "Hack Sprint",
			Description:      "24-hour hackathon. Build a working prototype around the announced theme.",
			DateTime:         "Day 1, 9:00 AM onwards",
			Venue:            "Innovation Centre",
			Rules:            "Teams of 4. Bring your own hardware. Judging on novelty, execution, and demo.",
			TeamSize:         4,
			Fees:             150,
			TeamFees:         intPtr(400),
			CashPrize:        15000,
			RegistrationType: domain.RegistrationBoth,
			Category:         "coding",
			Coordinators:     []string{"Meghana K"},
		},
		{
			ID:               "robo-rumble",
			Name:             "Robo Rumble",
			Description:      "Line-follower and obstacle-course robotics challenge.",
			DateTime:         "Day 2, 11:00 AM",
			Venue:            "Mechanical Workshop",
			Rules:            "Teams of 4. Bots must fit within 30x30cm. Two attempts per team.",
			TeamSize:         4,
			Fees:             200,
			CashPrize:        8000,
			RegistrationType: domain.RegistrationTeam,
			Category:         "robotics",
		},
		{
			ID:               "tech-quiz",
			Name:             "Tech Quiz",
			Description:      "General technology and computing quiz, prelims plus on-stage final.",
			DateTime:         "Day 2, 2:00 PM",
			Venue:            "Main Auditorium",
			Rules:            "Individual participation. No electronic devices during rounds.",
			TeamSize:         1,
			Fees:             0,
			CashPrize:        3000,
			RegistrationType: domain.RegistrationSolo,
			Category:         "quiz",
		},
	}
}

// DefaultSponsors seeds the sponsor catalog when no durable copy exists yet.
func DefaultSponsors() []domain.Sponsor {
	return []domain.Sponsor{
		{ID: "nexgen-systems", Name: "NexGen Systems", Tier: domain.TierTitle, Website: "https://nexgen.example.com"},
		{ID: "cloudnine-labs", Name: "CloudNine Labs", Tier: domain.TierGold, Website: "https://cloudnine.example.com"},
		{ID: "campus-cafe", Name: "Campus Cafe", Tier: domain.TierSilver},
	}
}
