package form

import (
	"testing"

	"techfest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() *RegistrationForm {
	f := New()
	f.Name = "Priya N"
	f.USN = "1AB21CS042"
	f.Branch = "CSE"
	f.Phone = "9876543210"
	f.Email = "priya@example.com"
	return f
}

func fillTeam(f *RegistrationForm) {
	for i := range f.TeamMembers {
		f.TeamMembers[i] = domain.TeamMember{
			Name:   "Member",
			USN:    "1AB21CS00" + string(rune('0'+i)),
			Branch: "ISE",
		}
	}
}

func TestForm_StartsAtDetailsSolo(t *testing.T) {
	f := New()
	assert.Equal(t, StepDetails, f.Step)
	assert.Equal(t, domain.RegistrationSolo, f.RegistrationType)
	assert.Empty(t, f.TeamMembers)
}

func TestForm_NextBlockedUntilDetailsComplete(t *testing.T) {
	f := New()
	errs := f.Next()
	require.NotEmpty(t, errs)
	assert.Equal(t, StepDetails, f.Step, "validation failure must not advance")
	assert.Contains(t, errs, "name is required")
	assert.Contains(t, errs, "usn is required")

	f = filledForm()
	require.Empty(t, f.Next())
	assert.Equal(t, StepPayment, f.Step)
}

func TestForm_BackPreservesData(t *testing.T) {
	f := filledForm()
	require.Empty(t, f.Next())
	f.UTR = "UTR123456"
	f.Back()
	assert.Equal(t, StepDetails, f.Step)
	assert.Equal(t, "Priya N", f.Name)
	assert.Equal(t, "UTR123456", f.UTR)
}

func TestForm_TypeSwitchResetsTeamList(t *testing.T) {
	f := filledForm()
	f.SetRegistrationType(domain.RegistrationTeam)
	require.Len(t, f.TeamMembers, RequiredTeamSize)

	fillTeam(f)
	f.SetRegistrationType(domain.RegistrationSolo)
	assert.Empty(t, f.TeamMembers)

	// Switching back yields exactly 4 blank members, not the old entries.
	f.SetRegistrationType(domain.RegistrationTeam)
	require.Len(t, f.TeamMembers, RequiredTeamSize)
	for _, m := range f.TeamMembers {
		assert.Equal(t, domain.TeamMember{}, m)
	}
}

func TestForm_SetSameTypeIsNoop(t *testing.T) {
	f := filledForm()
	f.SetRegistrationType(domain.RegistrationTeam)
	fillTeam(f)
	f.SetRegistrationType(domain.RegistrationTeam)
	assert.Equal(t, "Member", f.TeamMembers[0].Name, "same-type switch must not reset")
}

func TestForm_TeamListMutationsRespectFixedSize(t *testing.T) {
	f := filledForm()
	f.SetRegistrationType(domain.RegistrationTeam)
	require.Len(t, f.TeamMembers, RequiredTeamSize)

	f.AddTeamMember()
	assert.Len(t, f.TeamMembers, RequiredTeamSize, "add is a no-op at the cap")

	f.RemoveTeamMember(0)
	assert.Len(t, f.TeamMembers, RequiredTeamSize, "remove is a no-op at the floor")
}

func TestForm_TeamValidation(t *testing.T) {
	f := filledForm()
	f.SetRegistrationType(domain.RegistrationTeam)

	errs := f.Next()
	require.NotEmpty(t, errs, "blank team members must block")
	assert.Equal(t, StepDetails, f.Step)

	fillTeam(f)
	f.TeamMembers[2].Branch = ""
	errs = f.Next()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "team member 3 must have name, usn, and branch")

	f.TeamMembers[2].Branch = "ECE"
	require.Empty(t, f.Next())
	assert.Equal(t, StepPayment, f.Step)
}

func TestValidateTeamMembers_WrongCount(t *testing.T) {
	errs := ValidateTeamMembers([]domain.TeamMember{{Name: "a", USN: "b", Branch: "c"}})
	require.Len(t, errs, 1)
	assert.Equal(t, "team registration requires exactly 4 members", errs[0])
}

func TestForm_RegistrationSnapshot(t *testing.T) {
	f := filledForm()
	f.Name = "  Priya N  "
	f.UTR = " UTR42 "
	reg := f.Registration()
	assert.Equal(t, "Priya N", reg.Name)
	assert.Equal(t, "UTR42", reg.UTR)
	assert.Nil(t, reg.TeamMembers, "solo registration carries no team list")

	f.SetRegistrationType(domain.RegistrationTeam)
	fillTeam(f)
	reg = f.Registration()
	assert.Len(t, reg.TeamMembers, RequiredTeamSize)
}
