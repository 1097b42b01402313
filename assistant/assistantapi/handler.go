package assistantapi

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink/assistant"
	"github.com/hirelink/hirelink/assistant/assistantsrv"
	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/seeker"
	"github.com/hirelink/hirelink/recruitment/seeker/seekerauth"
)

// Handlers provides HTTP handlers for assistant operations
type Handlers struct {
	service *assistantsrv.Service
}

// NewHandlers creates a new assistant handlers instance
func NewHandlers(service *assistantsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Test reports whether the AI backend is configured
// GET /api/assistant/test
func (h *Handlers) Test(c *fiber.Ctx) error {
	configured := h.service.Configured()

	message := "AI assistant is NOT configured, using rule-based replies"
	if configured {
		message = "AI assistant is configured and ready!"
	}

	return c.JSON(fiber.Map{
		"configured": configured,
		"message":    message,
		"timestamp":  time.Now(),
	})
}

// Chat processes one assistant message
// POST /api/assistant/chat
func (h *Handlers) Chat(c *fiber.Ctx) error {
	userID, ok := seekerauth.GetUserID(c)
	if !ok {
		return seekerauth.ErrUnauthenticated()
	}

	var req assistant.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return assistant.ErrEmptyMessage().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Chat(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListChatLogs lists persisted turns for moderation
// GET /api/admin/chat-logs
func (h *Handlers) ListChatLogs(c *fiber.Ctx) error {
	filter := assistant.TurnFilter{
		UserID: kernel.UserID(c.Query("user")),
		Mode:   assistant.Mode(c.Query("mode")),
	}

	if raw := c.Query("flagged"); raw != "" {
		flagged, err := strconv.ParseBool(raw)
		if err == nil {
			filter.Flagged = &flagged
		}
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.To = &to
		}
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("limit", 50),
	}

	turns, err := h.service.ListTurns(c.Context(), filter, pagination)
	if err != nil {
		return err
	}

	return c.JSON(turns)
}

// FlagChatLog marks a turn for review
// POST /api/admin/chat-logs/:id/flag
func (h *Handlers) FlagChatLog(c *fiber.Ctx) error {
	turnID := kernel.TurnID(c.Params("id"))
	if turnID.IsEmpty() {
		return assistant.ErrTurnNotFound().WithDetail("id", "missing or empty")
	}

	// The reason is optional, an empty or absent body gets the default
	var req assistant.FlagTurnRequest
	_ = c.BodyParser(&req)

	turn, err := h.service.FlagTurn(c.Context(), turnID, req.Reason)
	if err != nil {
		return err
	}

	return c.JSON(turn)
}

// RegisterRoutes registers all assistant routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *seekerauth.Middleware) {
	api := app.Group("/api/assistant")

	api.Get("/test", handlers.Test)
	api.Post("/chat", authMiddleware.Authenticate(), handlers.Chat)

	admin := app.Group("/api/admin/chat-logs",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(seeker.RoleAdmin),
	)
	admin.Get("/", handlers.ListChatLogs)
	admin.Post("/:id/flag", handlers.FlagChatLog)
}
