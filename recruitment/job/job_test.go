package job_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/job"
)

func TestTitleContains(t *testing.T) {
	j := &job.Job{Title: "Senior Software Engineer"}

	assert.True(t, j.TitleContains("software engineer"))
	assert.True(t, j.TitleContains("SENIOR"))
	assert.False(t, j.TitleContains("designer"))
}

func TestRequirementNames(t *testing.T) {
	j := &job.Job{Requirements: []kernel.JobRequirement{"Go", "PostgreSQL"}}

	assert.Equal(t, []string{"Go", "PostgreSQL"}, j.RequirementNames())
	assert.Empty(t, (&job.Job{}).RequirementNames())
}

func TestIsOwnedBy(t *testing.T) {
	j := &job.Job{PostedBy: "recruiter-1"}

	assert.True(t, j.IsOwnedBy("recruiter-1"))
	assert.False(t, j.IsOwnedBy("recruiter-2"))
}

func TestUpdateDetailsSkipsEmptyValues(t *testing.T) {
	j := &job.Job{Title: "Backend Developer", Description: "old", Location: "Pune"}

	j.UpdateDetails("", "new description", "")

	assert.Equal(t, kernel.JobTitle("Backend Developer"), j.Title)
	assert.Equal(t, "new description", j.Description)
	assert.Equal(t, "Pune", j.Location)
	assert.False(t, j.UpdatedAt.IsZero())
}
