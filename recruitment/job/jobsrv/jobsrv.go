package jobsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hirelink/hirelink/pkg/errx"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/job"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// JobService provides business operations for job postings
type JobService struct {
	jobRepo    job.Repository
	seekerRepo seeker.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(
	jobRepo job.Repository,
	seekerRepo seeker.Repository,
) *JobService {
	return &JobService{
		jobRepo:    jobRepo,
		seekerRepo: seekerRepo,
	}
}

// CreateJob creates a new job posting
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	// Validate that the user posting the job exists
	poster, err := s.seekerRepo.FindByID(ctx, req.PostedBy)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", req.PostedBy.String())
	}

	// Only recruiters and admins can post jobs
	if !poster.CanPostJobs() {
		return nil, job.ErrUnauthorizedUpdate().WithDetail("required_role", string(seeker.RoleRecruiter))
	}

	if req.Title == "" || req.Description == "" {
		return nil, job.ErrInvalidJob().WithDetail("reason", "title and description are required")
	}

	jobType := req.JobType
	if jobType == "" {
		jobType = job.JobTypeFullTime
	}

	positions := req.Positions
	if positions < 1 {
		positions = 1
	}

	newJob := &job.Job{
		ID:              kernel.NewJobID(uuid.NewString()),
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryLPA:       req.SalaryLPA,
		Location:        req.Location,
		JobType:         jobType,
		ExperienceLevel: req.ExperienceLevel,
		Positions:       positions,
		Company: job.Company{
			ID:   req.CompanyID,
			Name: req.CompanyName,
			Logo: req.CompanyLogo,
		},
		PostedBy:  req.PostedBy,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	resp := s.toJobResponse(jobEntity)
	return &resp, nil
}

// ListJobs retrieves all jobs with pagination
func (s *JobService) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for i := range jobs.Items {
		responses = append(responses, s.toJobResponse(&jobs.Items[i]))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}, nil
}

// GetJobsByUser retrieves all jobs posted by a specific user
func (s *JobService) GetJobsByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListByUserID(ctx, userID, pagination.Normalize())
	if err != nil {
		return nil, errx.Wrap(err, "failed to get jobs by user", errx.TypeInternal)
	}

	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for i := range jobs.Items {
		responses = append(responses, s.toJobResponse(&jobs.Items[i]))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items: responses,
		Page:  jobs.Page,
		Empty: jobs.Empty,
	}, nil
}

// SearchJobs searches jobs by keyword, location, and salary floor
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) ([]*job.JobResponse, error) {
	pagination := req.Pagination.Normalize()

	criteria := job.SearchCriteria{
		Title:       req.Keyword,
		Location:    req.Location,
		SalaryFloor: req.MinSalary,
	}

	jobs, err := s.jobRepo.Search(ctx, criteria, pagination.PageSize)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search jobs", errx.TypeInternal)
	}

	responses := make([]*job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp := s.toJobResponse(j)
		responses = append(responses, &resp)
	}

	return responses, nil
}

// UpdateJob updates an existing job posting
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest, updaterID kernel.UserID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	updater, err := s.seekerRepo.FindByID(ctx, updaterID)
	if err != nil {
		return nil, seeker.ErrSeekerNotFound().WithDetail("user_id", updaterID.String())
	}

	// Must be the poster or an admin
	if !jobEntity.IsOwnedBy(updaterID) && !updater.IsAdmin() {
		return nil, job.ErrUnauthorizedUpdate().
			WithDetail("job_id", jobID.String()).
			WithDetail("user_id", updaterID.String())
	}

	updated := false

	if req.Title != nil && *req.Title != jobEntity.Title {
		jobEntity.Title = *req.Title
		updated = true
	}

	if req.Description != nil && *req.Description != jobEntity.Description {
		jobEntity.Description = *req.Description
		updated = true
	}

	if req.Requirements != nil {
		jobEntity.Requirements = *req.Requirements
		updated = true
	}

	if req.SalaryLPA != nil {
		jobEntity.SalaryLPA = *req.SalaryLPA
		updated = true
	}

	if req.Location != nil && *req.Location != jobEntity.Location {
		jobEntity.Location = *req.Location
		updated = true
	}

	if req.JobType != nil {
		jobEntity.JobType = *req.JobType
		updated = true
	}

	if req.ExperienceLevel != nil {
		jobEntity.ExperienceLevel = *req.ExperienceLevel
		updated = true
	}

	if req.Positions != nil && *req.Positions > 0 {
		jobEntity.Positions = *req.Positions
		updated = true
	}

	if updated {
		jobEntity.UpdatedAt = time.Now()

		if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
			return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
		}
	}

	return jobEntity, nil
}

// DeleteJob deletes a job posting
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID, deleterID kernel.UserID) error {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	deleter, err := s.seekerRepo.FindByID(ctx, deleterID)
	if err != nil {
		return seeker.ErrSeekerNotFound().WithDetail("user_id", deleterID.String())
	}

	if !jobEntity.IsOwnedBy(deleterID) && !deleter.IsAdmin() {
		return job.ErrUnauthorizedUpdate().
			WithDetail("job_id", jobID.String()).
			WithDetail("user_id", deleterID.String())
	}

	// Business rule: postings with applications cannot be deleted
	applicationCount, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	if applicationCount > 0 {
		return job.ErrJobHasApplications().
			WithDetail("job_id", jobID.String()).
			WithDetail("application_count", applicationCount)
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	return nil
}

// GetJobStats retrieves statistics for a posting
func (s *JobService) GetJobStats(ctx context.Context, jobID kernel.JobID) (*job.JobStatsResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	applicationCount, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		applicationCount = 0
	}

	return &job.JobStatsResponse{
		JobID:             jobID,
		Title:             jobEntity.Title,
		TotalApplications: applicationCount,
		DaysSincePosted:   int(time.Since(jobEntity.CreatedAt).Hours() / 24),
		CreatedAt:         jobEntity.CreatedAt,
	}, nil
}

// CountUserJobs counts the number of jobs posted by a user
func (s *JobService) CountUserJobs(ctx context.Context, userID kernel.UserID) (int64, error) {
	count, err := s.jobRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, errx.Wrap(err, "failed to count user jobs", errx.TypeInternal)
	}

	return count, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// toJobResponse converts a Job entity to JobResponse DTO
func (s *JobService) toJobResponse(j *job.Job) job.JobResponse {
	return job.JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		SalaryLPA:       j.SalaryLPA,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Positions:       j.Positions,
		Company:         j.Company,
		PostedBy:        j.PostedBy,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}
