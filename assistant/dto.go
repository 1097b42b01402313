package assistant

import (
	"strings"
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/job"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// maxSummaryDescription bounds job descriptions embedded in replies
const maxSummaryDescription = 150

// HistoryMessage is one prior exchange the client sends back for AI
// context
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents an incoming assistant message
type ChatRequest struct {
	Message string           `json:"message"`
	History []HistoryMessage `json:"history,omitempty"`
	Context *Context         `json:"conversationContext,omitempty"`
}

// ChatResponse represents the assistant's reply
type ChatResponse struct {
	Reply        string               `json:"reply"`
	Jobs         []JobSummary         `json:"jobs,omitempty"`
	Applications []ApplicationSummary `json:"applications,omitempty"`
	Location     string               `json:"location,omitempty"`
	Mode         Mode                 `json:"mode"`
	Context      *Context             `json:"conversationContext,omitempty"`
}

// JobSummary is the trimmed job representation embedded in replies
type JobSummary struct {
	ID              kernel.JobID `json:"id"`
	Title           string       `json:"title"`
	Company         job.Company  `json:"company"`
	Location        string       `json:"location"`
	SalaryLPA       float64      `json:"salary_lpa"`
	JobType         string       `json:"job_type"`
	ExperienceLevel int          `json:"experience_level"`
	Positions       int          `json:"positions"`
	Description     string       `json:"description"`
	CreatedAt       time.Time    `json:"created_at"`
}

// NewJobSummary converts a posting into its reply representation,
// substituting placeholders for missing fields
func NewJobSummary(j *job.Job) JobSummary {
	summary := JobSummary{
		ID:              j.ID,
		Title:           j.Title.String(),
		Company:         j.Company,
		Location:        j.Location,
		SalaryLPA:       j.SalaryLPA,
		JobType:         string(j.JobType),
		ExperienceLevel: j.ExperienceLevel,
		Positions:       j.Positions,
		Description:     j.Description,
		CreatedAt:       j.CreatedAt,
	}

	if summary.Title == "" {
		summary.Title = "No title"
	}
	if summary.Company.Name == "" {
		summary.Company.Name = "Unknown Company"
	}
	if summary.Location == "" {
		summary.Location = "Not specified"
	}
	// Truncate on rune boundaries so multi-byte text stays valid
	if runes := []rune(summary.Description); len(runes) > maxSummaryDescription {
		summary.Description = string(runes[:maxSummaryDescription]) + "..."
	}

	return summary
}

// ApplicationSummary is the trimmed application representation
// embedded in replies
type ApplicationSummary struct {
	ID              kernel.ApplicationID `json:"id"`
	JobTitle        string               `json:"job_title"`
	Company         string               `json:"company"`
	Status          string               `json:"status"`
	Feedback        string               `json:"feedback,omitempty"`
	SuggestedSkills []string             `json:"suggested_skills,omitempty"`
	AppliedAt       time.Time            `json:"applied_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// NewApplicationSummary converts a detailed application into its reply
// representation. Skill suggestions come from the gap between the
// posting's requirements and the seeker's skills.
func NewApplicationSummary(d *application.Detailed, s *seeker.Seeker) ApplicationSummary {
	summary := ApplicationSummary{
		ID:        d.ID,
		JobTitle:  "No title",
		Company:   "Unknown Company",
		Status:    strings.ToLower(string(d.Status)),
		Feedback:  d.Feedback,
		AppliedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if d.Job != nil {
		if title := d.Job.Title.String(); title != "" {
			summary.JobTitle = title
		}
		if d.Job.Company.Name != "" {
			summary.Company = d.Job.Company.Name
		}
		if s != nil {
			summary.SuggestedSkills = s.MissingSkills(d.Job.RequirementNames())
		}
	}

	return summary
}

// SkillGapReport compares a seeker's skills against a posting
type SkillGapReport struct {
	JobTitle string   `json:"job_title"`
	Required []string `json:"required"`
	Have     []string `json:"have"`
	Missing  []string `json:"missing"`
}

// ProfileReport scores how complete a seeker's profile is
type ProfileReport struct {
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// CVReport compares profile keywords against a posting's description
type CVReport struct {
	JobTitle     string   `json:"job_title"`
	MatchPercent int      `json:"match_percent"`
	Missing      []string `json:"missing"`
}

// TurnFilter narrows the admin chat log listing
type TurnFilter struct {
	UserID  kernel.UserID
	Mode    Mode
	Flagged *bool
	From    *time.Time
	To      *time.Time
}

// FlagTurnRequest marks a turn for review
type FlagTurnRequest struct {
	Reason string `json:"reason"`
}

// PaginatedTurnsResponse is a page of persisted turns
type PaginatedTurnsResponse = kernel.Paginated[Turn]
