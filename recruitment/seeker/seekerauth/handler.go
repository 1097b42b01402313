package seekerauth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink/recruitment/seeker"
)

type Handlers struct {
	authService *AuthService
}

func NewHandlers(authService *AuthService) *Handlers {
	return &Handlers{
		authService: authService,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req seeker.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return seeker.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.authService.Register(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login verifies credentials and returns a session token
// POST /api/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req seeker.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return seeker.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.authService.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers authentication routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/auth")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
}
