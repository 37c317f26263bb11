package middleware

import (
	"github.com/gofiber/fiber/v2"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/pkg/metrics"
	"qr-attendance/services"
)

// RequireRoles admits only principals whose role is in allowed. It must run after AuthMiddleware.
func RequireRoles(m *metrics.Metrics, allowed models.RoleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := CurrentPrincipal(c)
		if !ok {
			return unauthorized(c, m, "Not authenticated")
		}
		if err := services.Authorize(p, allowed); err != nil {
			m.RecordAuthFailure("forbidden")
			return c.Status(fiber.StatusForbidden).JSON(models.ForbiddenResponse{
				Msg:           apperror.PublicMessage(err),
				Success:       false,
				RequiredRoles: allowed.Strings(),
				UserRole:      string(p.Role),
			})
		}
		return c.Next()
	}
}
