package form

import (
	"fmt"
	"strings"

	"techfest/internal/domain"
)

// Step identifies the registration form state.
type Step int

const (
	// StepDetails collects participant identity and team members.
	StepDetails Step = iota
	// StepPayment collects the UTR payment reference for paid events.
	StepPayment
)

// RequiredTeamSize is the fixed team size for team registrations.
const RequiredTeamSize = 4

// RegistrationForm is the two-step registration state machine. It starts at
// StepDetails and advances to StepPayment only when validation passes; Back
// returns unconditionally and preserves all entered data.
type RegistrationForm struct {
	Step             Step
	Name             string
	USN              string
	Branch           string
	Phone            string
	Email            string
	RegistrationType string
	TeamMembers      []domain.TeamMember
	UTR              string
}

// New returns a form at StepDetails in solo mode.
func New() *RegistrationForm {
	return &RegistrationForm{Step: StepDetails, RegistrationType: domain.RegistrationSolo}
}

// SetRegistrationType switches modes. Switching to solo clears the team list;
// switching to team resets it to exactly RequiredTeamSize blank entries.
// Prior partial entries are discarded, not merged.
func (f *RegistrationForm) SetRegistrationType(registrationType string) {
	if registrationType == f.RegistrationType {
		return
	}
	f.RegistrationType = registrationType
	switch registrationType {
	case domain.RegistrationTeam:
		f.TeamMembers = make([]domain.TeamMember, RequiredTeamSize)
	default:
		f.TeamMembers = nil
	}
}

// AddTeamMember appends a blank member. No-op once the team is full.
func (f *RegistrationForm) AddTeamMember() {
	if len(f.TeamMembers) >= RequiredTeamSize {
		return
	}
	f.TeamMembers = append(f.TeamMembers, domain.TeamMember{})
}

// RemoveTeamMember removes the member at i. No-op while the list is at or
// below the required size, which enforces the fixed team of four.
func (f *RegistrationForm) RemoveTeamMember(i int) {
	if len(f.TeamMembers) <= RequiredTeamSize {
		return
	}
	if i < 0 || i >= len(f.TeamMembers) {
		return
	}
	f.TeamMembers = append(f.TeamMembers[:i], f.TeamMembers[i+1:]...)
}

// Next validates the details step and advances to StepPayment on success.
// On failure the form stays at StepDetails and the messages are returned.
func (f *RegistrationForm) Next() []string {
	errs := f.validateDetails()
	if len(errs) > 0 {
		return errs
	}
	f.Step = StepPayment
	return nil
}

// Back returns to StepDetails unconditionally, preserving entered data.
func (f *RegistrationForm) Back() {
	f.Step = StepDetails
}

func (f *RegistrationForm) validateDetails() []string {
	var errs []string
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(f.USN) == "" {
		errs = append(errs, "usn is required")
	}
	if strings.TrimSpace(f.Branch) == "" {
		errs = append(errs, "branch is required")
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, "phone is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		errs = append(errs, "email is required")
	}
	if f.RegistrationType == domain.RegistrationTeam {
		errs = append(errs, ValidateTeamMembers(f.TeamMembers)...)
	}
	return errs
}

// ValidateTeamMembers checks the fixed-team-of-four requirement: exactly
// RequiredTeamSize members, each with non-empty name, usn, and branch.
func ValidateTeamMembers(members []domain.TeamMember) []string {
	if len(members) != RequiredTeamSize {
		return []string{"team registration requires exactly 4 members"}
	}
	var errs []string
	for i, m := range members {
		if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.USN) == "" || strings.TrimSpace(m.Branch) == "" {
			errs = append(errs, fmt.Sprintf("team member %d must have name, usn, and branch", i+1))
		}
	}
	return errs
}

// Registration snapshots the entered data as a Registration record. The ID and
// timestamps are assigned by the submission pipeline.
func (f *RegistrationForm) Registration() domain.Registration {
	reg := domain.Registration{
		Name:             strings.TrimSpace(f.Name),
		USN:              strings.TrimSpace(f.USN),
		Branch:           strings.TrimSpace(f.Branch),
		Phone:            strings.TrimSpace(f.Phone),
		Email:            strings.TrimSpace(f.Email),
		RegistrationType: f.RegistrationType,
		UTR:              strings.TrimSpace(f.UTR),
	}
	if f.RegistrationType == domain.RegistrationTeam {
		reg.TeamMembers = append([]domain.TeamMember(nil), f.TeamMembers...)
	}
	return reg
}
