package assistant_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/job"
)

func TestTurnFlagDefaultsReason(t *testing.T) {
	turn := &assistant.Turn{}

	turn.Flag("")

	assert.True(t, turn.Flagged)
	assert.Equal(t, assistant.DefaultFlagReason, turn.FlagReason)
}

func TestTurnFlagKeepsExplicitReason(t *testing.T) {
	turn := &assistant.Turn{}

	turn.Flag("inappropriate reply")

	assert.True(t, turn.Flagged)
	assert.Equal(t, "inappropriate reply", turn.FlagReason)
}

func TestNewJobSummaryDefaults(t *testing.T) {
	summary := assistant.NewJobSummary(&job.Job{ID: "j1"})

	assert.Equal(t, "No title", summary.Title)
	assert.Equal(t, "Unknown Company", summary.Company.Name)
	assert.Equal(t, "Not specified", summary.Location)
}

func TestNewJobSummaryCarriesPostingFields(t *testing.T) {
	posted := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	posting := &job.Job{
		ID:              "j1",
		Title:           "Backend Developer",
		SalaryLPA:       18,
		Location:        "Pune",
		JobType:         job.JobTypeFullTime,
		ExperienceLevel: 3,
		Positions:       2,
		Company:         job.Company{ID: "c1", Name: "Acme", Logo: "acme.png"},
		CreatedAt:       posted,
	}

	summary := assistant.NewJobSummary(posting)

	assert.Equal(t, "FULL_TIME", summary.JobType)
	assert.Equal(t, 3, summary.ExperienceLevel)
	assert.Equal(t, 2, summary.Positions)
	assert.Equal(t, kernel.CompanyID("c1"), summary.Company.ID)
	assert.Equal(t, "acme.png", summary.Company.Logo)
	assert.Equal(t, posted, summary.CreatedAt)
}

func TestNewJobSummaryTruncatesDescription(t *testing.T) {
	long := strings.Repeat("a", 200)

	summary := assistant.NewJobSummary(&job.Job{ID: "j1", Title: "Engineer", Description: long})

	assert.Len(t, summary.Description, 153)
	assert.Equal(t, "...", summary.Description[150:])
}

func TestNewJobSummaryTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 200)

	summary := assistant.NewJobSummary(&job.Job{ID: "j1", Title: "Engineer", Description: long})

	assert.True(t, utf8.ValidString(summary.Description))
	assert.Equal(t, 153, utf8.RuneCountInString(summary.Description))
	assert.True(t, strings.HasSuffix(summary.Description, "..."))
}

func TestNewApplicationSummaryTimestamps(t *testing.T) {
	applied := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	updated := applied.Add(48 * time.Hour)
	detailed := &application.Detailed{
		Application: application.Application{
			ID:        "a1",
			Status:    application.StatusShortlisted,
			CreatedAt: applied,
			UpdatedAt: updated,
		},
		Job: &job.Job{ID: "j1", Title: "Backend Developer", Company: job.Company{Name: "Acme"}},
	}

	summary := assistant.NewApplicationSummary(detailed, nil)

	assert.Equal(t, applied, summary.AppliedAt)
	assert.Equal(t, updated, summary.UpdatedAt)
	assert.Equal(t, "shortlisted", summary.Status)
}
