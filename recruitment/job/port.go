package job

import (
	"context"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// SearchCriteria narrows a job search. Zero values mean "any".
type SearchCriteria struct {
	Title       string
	Location    string
	SalaryFloor *float64 // minimum salary in lakhs per annum, inclusive
}

// IsEmpty reports whether no criterion is set.
func (c SearchCriteria) IsEmpty() bool {
	return c.Title == "" && c.Location == "" && c.SalaryFloor == nil
}

type Repository interface {
	// Create creates a new job posting
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job posting
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves all jobs with pagination, newest first
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListByUserID retrieves jobs posted by a specific user
	ListByUserID(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Search retrieves up to limit jobs matching the criteria, newest
	// first. Title and location match as case-insensitive substrings,
	// the salary floor as an inclusive lower bound.
	Search(ctx context.Context, criteria SearchCriteria, limit int) ([]*Job, error)

	// FindNewestByTitle retrieves the most recently posted job whose
	// title contains the given text, ignoring case.
	FindNewestByTitle(ctx context.Context, title string) (*Job, error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// CountByUserID counts the number of jobs posted by a user
	CountByUserID(ctx context.Context, userID kernel.UserID) (int64, error)

	// CountApplications counts applications submitted for a job
	CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error)
}
