package job

import (
	"strings"
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// JobType represents the employment type of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeRemote     JobType = "REMOTE"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

// Company is the hiring company, denormalized onto the posting
type Company struct {
	ID   kernel.CompanyID `db:"company_id" json:"id"`
	Name string           `db:"company_name" json:"name"`
	Logo string           `db:"company_logo" json:"logo,omitempty"`
}

type Job struct {
	ID              kernel.JobID            `db:"id" json:"id"`
	Title           kernel.JobTitle         `db:"title" json:"title"`
	Description     string                  `db:"description" json:"description"`
	Requirements    []kernel.JobRequirement `db:"requirements" json:"requirements"`
	SalaryLPA       float64                 `db:"salary_lpa" json:"salary_lpa"`
	Location        string                  `db:"location" json:"location"`
	JobType         JobType                 `db:"job_type" json:"job_type"`
	ExperienceLevel int                     `db:"experience_level" json:"experience_level"`
	Positions       int                     `db:"positions" json:"positions"`
	Company         Company                 `json:"company"`
	PostedBy        kernel.UserID           `db:"posted_by" json:"posted_by"`
	CreatedAt       time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time               `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// TitleContains checks whether the posting title contains text, ignoring case
func (j *Job) TitleContains(text string) bool {
	return strings.Contains(
		strings.ToLower(j.Title.String()),
		strings.ToLower(text),
	)
}

// RequirementNames returns the requirement list as plain strings
func (j *Job) RequirementNames() []string {
	names := make([]string, 0, len(j.Requirements))
	for _, r := range j.Requirements {
		names = append(names, r.String())
	}
	return names
}

// IsOwnedBy checks if the posting was created by the given user
func (j *Job) IsOwnedBy(userID kernel.UserID) bool {
	return j.PostedBy == userID
}

// UpdateDetails updates mutable posting fields, skipping empty values
func (j *Job) UpdateDetails(title kernel.JobTitle, description, location string) {
	if title != "" {
		j.Title = title
	}
	if description != "" {
		j.Description = description
	}
	if location != "" {
		j.Location = location
	}
	j.UpdatedAt = time.Now()
}
