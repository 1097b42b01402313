package seekerapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/seeker"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerauth"
	"github.com/hirelink/hirelink/recruitment/seeker/seekersrv"
)

const maxUploadSize = 10 * 1024 * 1024

// Handlers provides HTTP handlers for profile operations
type Handlers struct {
	service *seekersrv.SeekerService
}

// NewHandlers creates a new profile handlers instance
func NewHandlers(service *seekersrv.SeekerService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetProfile retrieves the authenticated user's profile
// GET /api/profile
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	profile, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UpdateProfile updates the authenticated user's profile
// PUT /api/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	var req seeker.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return seeker.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UploadResume stores the authenticated user's resume
// POST /api/profile/resume
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	data, filename, contentType, err := readUpload(c, "resume")
	if err != nil {
		return err
	}

	if contentType != "application/pdf" {
		return seeker.ErrInvalidRequest().WithDetail("content_type", contentType)
	}

	resp, err := h.service.UploadResume(c.Context(), userID, data, filename, contentType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UploadPhoto stores the authenticated user's profile photo
// POST /api/profile/photo
func (h *Handlers) UploadPhoto(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	data, filename, contentType, err := readUpload(c, "photo")
	if err != nil {
		return err
	}

	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !validTypes[contentType] {
		return seeker.ErrInvalidRequest().WithDetail("content_type", contentType)
	}

	resp, err := h.service.UploadPhoto(c.Context(), userID, data, filename, contentType)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListSeekers lists accounts for admin review
// GET /api/admin/seekers
func (h *Handlers) ListSeekers(c *fiber.Ctx) error {
	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}

	accounts, err := h.service.ListSeekers(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(accounts)
}

// SetVerification updates an account's review state
// POST /api/admin/seekers/:id/verification
func (h *Handlers) SetVerification(c *fiber.Ctx) error {
	userID := kernel.UserID(c.Params("id"))
	if userID.IsEmpty() {
		return seeker.ErrSeekerNotFound().WithDetail("id", "missing or empty")
	}

	var req struct {
		Status seeker.VerificationStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return seeker.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.SetVerification(c.Context(), userID, req.Status); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Verification status updated",
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

func readUpload(c *fiber.Ctx, field string) ([]byte, string, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return nil, "", "", seeker.ErrInvalidRequest().WithDetail("field", field)
	}

	if file.Size > maxUploadSize {
		return nil, "", "", seeker.ErrInvalidRequest().WithDetail("reason", "file exceeds 10MB limit")
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", "", seeker.ErrUploadFailed().WithCause(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", "", seeker.ErrUploadFailed().WithCause(err)
	}

	return data, file.Filename, file.Header.Get("Content-Type"), nil
}

// RegisterRoutes registers profile and admin review routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *seekerauth.Middleware) {
	api := app.Group("/api/profile", authMiddleware.Authenticate())

	api.Get("/", handlers.GetProfile)
	api.Put("/", handlers.UpdateProfile)
	api.Post("/resume", handlers.UploadResume)
	api.Post("/photo", handlers.UploadPhoto)

	admin := app.Group("/api/admin/seekers",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(seeker.RoleAdmin),
	)

	admin.Get("/", handlers.ListSeekers)
	admin.Post("/:id/verification", handlers.SetVerification)
}
