package seeker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelink/hirelink/recruitment/seeker"
)

func TestMissingSkills(t *testing.T) {
	s := &seeker.Seeker{Skills: []string{"Go", " react ", "SQL"}}

	missing := s.MissingSkills([]string{"GO", "Docker", "React", "Kubernetes"})

	assert.Equal(t, []string{"docker", "kubernetes"}, missing)
}

func TestMissingSkillsEmptyProfile(t *testing.T) {
	s := &seeker.Seeker{}

	assert.Equal(t, []string{"go", "sql"}, s.MissingSkills([]string{"Go", "SQL"}))
	assert.Empty(t, s.MissingSkills(nil))
}

func TestHasSkillIgnoresCaseAndPadding(t *testing.T) {
	s := &seeker.Seeker{Skills: []string{" Project Management "}}

	assert.True(t, s.HasSkill("project management"))
	assert.False(t, s.HasSkill("management"))
}

func TestCanPostJobs(t *testing.T) {
	assert.False(t, (&seeker.Seeker{Role: seeker.RoleJobSeeker}).CanPostJobs())
	assert.True(t, (&seeker.Seeker{Role: seeker.RoleRecruiter}).CanPostJobs())
	assert.True(t, (&seeker.Seeker{Role: seeker.RoleAdmin}).CanPostJobs())
}

func TestUpdateProfilePartial(t *testing.T) {
	s := &seeker.Seeker{FullName: "Asha Rao", Bio: "old bio", Skills: []string{"Go"}}

	newBio := "new bio"
	s.UpdateProfile(nil, &newBio, nil)

	assert.Equal(t, "Asha Rao", s.FullName)
	assert.Equal(t, "new bio", s.Bio)
	assert.Equal(t, []string{"Go"}, s.Skills)
	assert.False(t, s.UpdatedAt.IsZero())
}

func TestVerificationTransitions(t *testing.T) {
	s := &seeker.Seeker{Verification: seeker.VerificationPending}
	assert.False(t, s.IsVerified())

	s.Verify()
	assert.True(t, s.IsVerified())

	s.Reject()
	assert.False(t, s.IsVerified())
	assert.Equal(t, seeker.VerificationRejected, s.Verification)
}
