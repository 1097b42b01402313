package seekerauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hirelink/hirelink/pkg/kernel"
	"github.com/hirelink/hirelink/recruitment/seeker"
)

// Middleware validates session tokens on protected routes
type Middleware struct {
	tokenService *TokenService
}

func NewMiddleware(tokenService *TokenService) *Middleware {
	return &Middleware{tokenService: tokenService}
}

// Authenticate requires a valid Bearer token and stores the identity
// in the request context
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrUnauthenticated().WithDetail("reason", "missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrUnauthenticated().WithDetail("reason", "invalid authorization format")
		}

		claims, err := m.tokenService.Validate(parts[1])
		if err != nil {
			return err
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}

// RequireRole restricts a route to the given roles. Must run after
// Authenticate.
func (m *Middleware) RequireRole(roles ...seeker.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := GetUserRole(c)
		if !ok {
			return ErrUnauthenticated()
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		return ErrForbidden().WithDetail("role", string(role))
	}
}

// GetUserID extracts the authenticated user ID from the request context
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	userID, ok := c.Locals("user_id").(kernel.UserID)
	return userID, ok
}

// GetUserRole extracts the authenticated role from the request context
func GetUserRole(c *fiber.Ctx) (seeker.Role, bool) {
	role, ok := c.Locals("user_role").(seeker.Role)
	return role, ok
}
