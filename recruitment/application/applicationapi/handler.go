package applicationapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/application"
	"github.com/hirelink/hirelink/recruitment/application/applicationsrv"
	"github.com/hirelink/hirelink/recruitment/seeker"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerauth"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Apply submits an application for a job posting
// POST /api/applications/:jobId
func (h *Handlers) Apply(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	newApplication, err := h.service.Apply(c.Context(), application.CreateApplicationRequest{
		JobID:    jobID,
		SeekerID: userID,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newApplication)
}

// GetMyApplications lists the authenticated seeker's applications
// GET /api/applications
func (h *Handlers) GetMyApplications(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	apps, err := h.service.ListBySeeker(c.Context(), userID, limit)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"applications": apps,
		"count":        len(apps),
	})
}

// GetApplicationByID retrieves an application by ID
// GET /api/applications/:id
func (h *Handlers) GetApplicationByID(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	app, err := h.service.GetByID(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(app)
}

// ListByJob lists applications for a posting, for its recruiter
// GET /api/applications/by-job/:jobId
func (h *Handlers) ListByJob(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	jobID := kernel.JobID(c.Params("jobId"))
	if jobID.IsEmpty() {
		return application.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	apps, err := h.service.ListByJob(c.Context(), jobID, userID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// UpdateStatus applies a recruiter's decision on an application
// PUT /api/applications/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateStatus(c.Context(), applicationID, req, userID)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Withdraw removes an undecided application
// DELETE /api/applications/:id
func (h *Handlers) Withdraw(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID.IsEmpty() {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.Withdraw(c.Context(), applicationID, userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *seekerauth.Middleware) {
	api := app.Group("/api/applications", authMiddleware.Authenticate())

	api.Get("/", handlers.GetMyApplications)
	api.Get("/by-job/:jobId",
		authMiddleware.RequireRole(seeker.RoleRecruiter, seeker.RoleAdmin),
		handlers.ListByJob,
	)
	api.Get("/:id", handlers.GetApplicationByID)
	api.Post("/:jobId", handlers.Apply)
	api.Put("/:id/status",
		authMiddleware.RequireRole(seeker.RoleRecruiter, seeker.RoleAdmin),
		handlers.UpdateStatus,
	)
	api.Delete("/:id", handlers.Withdraw)
}
