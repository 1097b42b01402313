package application

import (
	"slices"
	"time"

	"github.com/hirelink/hirelink/pkg/kernel"
)

// Status represents the review state of an application
type Status string

const (
	StatusPending     Status = "PENDING"     // Submitted, awaiting review
	StatusShortlisted Status = "SHORTLISTED" // Passed initial review
	StatusAccepted    Status = "ACCEPTED"    // Offer extended
	StatusRejected    Status = "REJECTED"    // Turned down
)

type Application struct {
	ID        kernel.ApplicationID `db:"id" json:"id"`
	JobID     kernel.JobID         `db:"job_id" json:"job_id"`
	SeekerID  kernel.UserID        `db:"seeker_id" json:"seeker_id"`
	Status    Status               `db:"status" json:"status"`
	Feedback  string               `db:"feedback" json:"feedback,omitempty"`
	CreatedAt time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt time.Time            `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPending checks if the application is awaiting review
func (a *Application) IsPending() bool {
	return a.Status == StatusPending
}

// IsDecided checks if the application reached a terminal state
func (a *Application) IsDecided() bool {
	return a.Status == StatusAccepted || a.Status == StatusRejected
}

// CanTransitionTo checks whether a status change is allowed
func (a *Application) CanTransitionTo(newStatus Status) bool {
	validTransitions := map[Status][]Status{
		StatusPending: {
			StatusShortlisted,
			StatusAccepted,
			StatusRejected,
		},
		StatusShortlisted: {
			StatusAccepted,
			StatusRejected,
		},
	}

	allowed, ok := validTransitions[a.Status]
	if !ok {
		return false // terminal state
	}

	return slices.Contains(allowed, newStatus)
}

// UpdateStatus applies a status change with optional recruiter feedback
func (a *Application) UpdateStatus(newStatus Status, feedback string) error {
	if !a.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", a.Status).
			WithDetail("new_status", newStatus)
	}

	a.Status = newStatus
	if feedback != "" {
		a.Feedback = feedback
	}
	a.UpdatedAt = time.Now()
	return nil
}
