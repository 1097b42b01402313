package job

import (
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job posting
type CreateJobRequest struct {
	Title           kernel.JobTitle         `json:"title" validate:"required"`
	Description     string                  `json:"description" validate:"required"`
	Requirements    []kernel.JobRequirement `json:"requirements,omitempty"`
	SalaryLPA       float64                 `json:"salary_lpa" validate:"required"`
	Location        string                  `json:"location" validate:"required"`
	JobType         JobType                 `json:"job_type"`
	ExperienceLevel int                     `json:"experience_level"`
	Positions       int                     `json:"positions"`
	CompanyID       kernel.CompanyID        `json:"company_id"`
	CompanyName     string                  `json:"company_name"`
	CompanyLogo     string                  `json:"company_logo,omitempty"`
	PostedBy        kernel.UserID           `json:"-"`
}

// UpdateJobRequest - DTO for updating an existing posting
type UpdateJobRequest struct {
	Title           *kernel.JobTitle         `json:"title,omitempty"`
	Description     *string                  `json:"description,omitempty"`
	Requirements    *[]kernel.JobRequirement `json:"requirements,omitempty"`
	SalaryLPA       *float64                 `json:"salary_lpa,omitempty"`
	Location        *string                  `json:"location,omitempty"`
	JobType         *JobType                 `json:"job_type,omitempty"`
	ExperienceLevel *int                     `json:"experience_level,omitempty"`
	Positions       *int                     `json:"positions,omitempty"`
}

// SearchJobsRequest - DTO for the public search endpoint
type SearchJobsRequest struct {
	Keyword    string                   `json:"keyword,omitempty"`
	Location   string                   `json:"location,omitempty"`
	MinSalary  *float64                 `json:"min_salary,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID              kernel.JobID            `json:"id"`
	Title           kernel.JobTitle         `json:"title"`
	Description     string                  `json:"description"`
	Requirements    []kernel.JobRequirement `json:"requirements"`
	SalaryLPA       float64                 `json:"salary_lpa"`
	Location        string                  `json:"location"`
	JobType         JobType                 `json:"job_type"`
	ExperienceLevel int                     `json:"experience_level"`
	Positions       int                     `json:"positions"`
	Company         Company                 `json:"company"`
	PostedBy        kernel.UserID           `json:"posted_by"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// JobStatsResponse - Statistics for a posting
type JobStatsResponse struct {
	JobID             kernel.JobID    `json:"job_id"`
	Title             kernel.JobTitle `json:"title"`
	TotalApplications int64           `json:"total_applications"`
	DaysSincePosted   int             `json:"days_since_posted"`
	CreatedAt         time.Time       `json:"created_at"`
}
