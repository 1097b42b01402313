package jobapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/job"
	"github.com/hirelink/hirelink/recruitment/job/jobsrv"
	"github.com/hirelink/hirelink/recruitment/seeker"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerauth"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	// The poster is always the authenticated user
	req.PostedBy = userID

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// GetJobByID retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// ListJobs retrieves all jobs with pagination
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListJobsByUser retrieves jobs posted by a specific user
// GET /api/jobs/by-user/:userId
func (h *Handlers) ListJobsByUser(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("user_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	jobs, err := h.service.GetJobsByUser(c.Context(), userID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// SearchJobs searches jobs by keyword, location, and salary floor
// POST /api/jobs/search
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	var req job.SearchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	jobs, err := h.service.SearchJobs(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// UpdateJob updates an existing job posting
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJob().WithDetail("parse_error", err.Error())
	}

	updatedJob, err := h.service.UpdateJob(c.Context(), jobID, req, userID)
	if err != nil {
		return err
	}

	return c.JSON(updatedJob)
}

// DeleteJob deletes a job posting
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), jobID, userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// GetJobStats retrieves statistics for a posting
// GET /api/jobs/:id/stats
func (h *Handlers) GetJobStats(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	stats, err := h.service.GetJobStats(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// CountUserJobs counts the number of jobs posted by a user
// GET /api/jobs/count/by-user/:userId
func (h *Handlers) CountUserJobs(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("userId"))
	if userID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("user_id", "missing or empty")
	}

	count, err := h.service.CountUserJobs(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user_id": userID,
		"count":   count,
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}.Normalize()
}

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *seekerauth.Middleware) {
	api := app.Group("/api/jobs")

	// Read routes are public
	api.Get("/", handlers.ListJobs)
	api.Get("/by-user/:userId", handlers.ListJobsByUser)
	api.Post("/search", handlers.SearchJobs)
	api.Get("/:id", handlers.GetJobByID)
	api.Get("/:id/stats", handlers.GetJobStats)
	api.Get("/count/by-user/:userId", handlers.CountUserJobs)

	// Write routes require an authenticated recruiter
	api.Post("/",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(seeker.RoleRecruiter, seeker.RoleAdmin),
		handlers.CreateJob,
	)

	api.Put("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(seeker.RoleRecruiter, seeker.RoleAdmin),
		handlers.UpdateJob,
	)

	api.Delete("/:id",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(seeker.RoleRecruiter, seeker.RoleAdmin),
		handlers.DeleteJob,
	)
}
