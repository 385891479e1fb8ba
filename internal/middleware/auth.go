package middleware

import (
	"fmt"

	"github.com/framekit/sitedb/internal/config"
	"github.com/framekit/sitedb/internal/services"
	"github.com/framekit/sitedb/internal/types"
	"github.com/gofiber/fiber/v2"
)

// AuthAdmin validates that the request has admin role authorization
func AuthAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, []string{"admin"}, "content.authorization.admin")
	}
}

// AuthUser validates that the request has user role authorization
func AuthUser(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authorize(c, cfg, []string{"user"}, "content.authorization.user")
	}
}

// authorize performs the authorization check and stores the session user in
// context for the handlers to resolve into the acting user.
func authorize(c *fiber.Ctx, cfg *config.Config, roles []string, errorType string) error {
	// Lazy client init on the first authenticated request
	if !services.IsAuthorizerInitialized() {
		if err := services.InitAuthorizer(cfg, c.Protocol(), string(c.Request().Host())); err != nil {
			return &types.CustomError{
				Code:    fiber.StatusServiceUnavailable,
				Message: fmt.Sprintf("Authorizer unavailable: %v", err),
				Type:    errorType,
			}
		}
	}

	// Get session cookie
	session := c.Cookies("cookie_session")
	if session == "" {
		return types.Forbidden("Authorizer cookie \"cookie_session\" not found", errorType)
	}

	// Validate session
	data, err := services.ValidateSession(session, roles)
	if err != nil {
		return types.Forbidden(fmt.Sprintf("Invalid session: %v", err), errorType)
	}

	// Set user data in context
	if user, ok := data["user"]; ok {
		c.Locals("user", user)
	}

	return c.Next()
}
