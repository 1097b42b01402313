package application

import (
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// CreateApplicationRequest - DTO for applying to a job
type CreateApplicationRequest struct {
	JobID    kernel.JobID  `json:"job_id" validate:"required"`
	SeekerID kernel.UserID `json:"-"`
}

// UpdateStatusRequest - DTO for a recruiter's status decision
type UpdateStatusRequest struct {
	Status   Status `json:"status" validate:"required"`
	Feedback string `json:"feedback,omitempty"`
}

// ApplicationResponse - DTO for returning application data
type ApplicationResponse struct {
	ID        kernel.ApplicationID `json:"id"`
	JobID     kernel.JobID         `json:"job_id"`
	SeekerID  kernel.UserID        `json:"seeker_id"`
	Status    Status               `json:"status"`
	Feedback  string               `json:"feedback,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Response type alias for paginated applications
type PaginatedApplicationsResponse = kernel.Paginated[ApplicationResponse]

// ToResponse converts an entity to its response DTO
func ToResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		SeekerID:  a.SeekerID,
		Status:    a.Status,
		Feedback:  a.Feedback,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
