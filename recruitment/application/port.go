package application

import (
	"context"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/job"
)

// Detailed pairs an application with its job posting. Job is nil when
// the posting has been removed.
type Detailed struct {
	Application
	Job *job.Job `json:"job,omitempty"`
}

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, application *Application) error

	// Update updates an existing application
	Update(ctx context.Context, id kernel.ApplicationID, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// Delete deletes an application by ID
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// ListBySeeker retrieves a seeker's applications with job details,
	// most recently updated first. A limit of zero or less returns all.
	ListBySeeker(ctx context.Context, seekerID kernel.UserID, limit int) ([]*Detailed, error)

	// ListByJob retrieves applications for a job posting with pagination
	ListByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ExistsByJobAndSeeker checks if a seeker already applied to a job
	ExistsByJobAndSeeker(ctx context.Context, jobID kernel.JobID, seekerID kernel.UserID) (bool, error)

	// CountBySeeker counts a seeker's applications
	CountBySeeker(ctx context.Context, seekerID kernel.UserID) (int64, error)
}
