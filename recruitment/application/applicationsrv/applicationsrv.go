package applicationsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hirelink/hirelink/pkg/errx"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/job"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	jobRepo         job.Repository
	seekerRepo      seeker.Repository
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	jobRepo job.Repository,
	seekerRepo seeker.Repository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		seekerRepo:      seekerRepo,
	}
}

// Apply submits an application for a job posting
func (s *ApplicationService) Apply(ctx context.Context, req application.CreateApplicationRequest) (*application.Application, error) {
	if _, err := s.seekerRepo.FindByID(ctx, req.SeekerID); err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", req.SeekerID.String())
	}

	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	// One application per job per seeker
	exists, err := s.applicationRepo.ExistsByJobAndSeeker(ctx, req.JobID, req.SeekerID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check existing application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrApplicationAlreadyExists().WithDetail("job_id", req.JobID.String())
	}

	newApplication := &application.Application{
		ID:        kernel.NewApplicationID(uuid.NewString()),
		JobID:     req.JobID,
		SeekerID:  req.SeekerID,
		Status:    application.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	return newApplication, nil
}

// GetByID retrieves an application by ID
func (s *ApplicationService) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.ApplicationResponse, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	resp := application.ToResponse(app)
	return &resp, nil
}

// ListBySeeker retrieves a seeker's applications with job details,
// most recently updated first
func (s *ApplicationService) ListBySeeker(ctx context.Context, seekerID kernel.UserID, limit int) ([]*application.Detailed, error) {
	apps, err := s.applicationRepo.ListBySeeker(ctx, seekerID, limit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	return apps, nil
}

// ListByJob retrieves applications for a posting. Only the poster or
// an admin may view them.
func (s *ApplicationService) ListByJob(ctx context.Context, jobID kernel.JobID, viewerID kernel.UserID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	viewer, err := s.seekerRepo.FindByID(ctx, viewerID)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", viewerID.String())
	}

	if !jobEntity.IsOwnedBy(viewerID) && !viewer.IsAdmin() {
		return nil, application.ErrInsufficientPermissions().
			WithDetail("job_id", jobID.String()).
			WithDetail("user_id", viewerID.String())
	}

	apps, err := s.applicationRepo.ListByJob(ctx, jobID, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list job applications", errx.TypeInternal)
	}

	responses := make([]application.ApplicationResponse, 0, len(apps.Items))
	for i := range apps.Items {
		responses = append(responses, application.ToResponse(&apps.Items[i]))
	}

	return &kernel.Paginated[application.ApplicationResponse]{
		Items: responses,
		Page:  apps.Page,
		Empty: apps.Empty,
	}, nil
}

// UpdateStatus applies a recruiter's decision on an application
func (s *ApplicationService) UpdateStatus(ctx context.Context, id kernel.ApplicationID, req application.UpdateStatusRequest, updaterID kernel.UserID) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	jobEntity, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", app.JobID.String())
	}

	updater, err := s.seekerRepo.FindByID(ctx, updaterID)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", updaterID.String())
	}

	if !jobEntity.IsOwnedBy(updaterID) && !updater.IsAdmin() {
		return nil, application.ErrInsufficientPermissions().
			WithDetail("application_id", id.String()).
			WithDetail("user_id", updaterID.String())
	}

	if err := app.UpdateStatus(req.Status, req.Feedback); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, id, app); err != nil {
		return nil, errx.Wrap(err, "failed to update application", errx.TypeInternal)
	}

	return app, nil
}

// Withdraw removes an undecided application. Only the applicant may
// withdraw.
func (s *ApplicationService) Withdraw(ctx context.Context, id kernel.ApplicationID, seekerID kernel.UserID) error {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if app.SeekerID != seekerID {
		return application.ErrInsufficientPermissions().WithDetail("application_id", id.String())
	}

	if app.IsDecided() {
		return application.ErrInvalidStatusTransition().
			WithDetail("current_status", app.Status).
			WithDetail("reason", "application already decided")
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to withdraw application", errx.TypeInternal)
	}

	return nil
}

// CountBySeeker counts a seeker's applications
func (s *ApplicationService) CountBySeeker(ctx context.Context, seekerID kernel.UserID) (int64, error) {
	count, err := s.applicationRepo.CountBySeeker(ctx, seekerID)
	if err != nil {
		return 0, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	return count, nil
}
