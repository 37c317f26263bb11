package middleware

import (
	"context"
	"encoding/base64"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/pkg/metrics"
)

const principalKey = "principal"

// Authenticator resolves the caller from Basic credentials or a session token.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (models.Principal, error)
	VerifyToken(ctx context.Context, token string) (models.Principal, error)
}

func unauthorized(c *fiber.Ctx, m *metrics.Metrics, msg string) error {
	m.RecordAuthFailure("unauthorized")
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Msg: msg, Success: false})
}

// AuthMiddleware accepts "Basic base64(username:password)", checked against the staff
// collection on every request, or "Bearer <token>" issued by /auth/login.
func AuthMiddleware(auth Authenticator, m *metrics.Metrics, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		scheme, value, ok := strings.Cut(authHeader, " ")
		if !ok || value == "" {
			return unauthorized(c, m, "No authorization header or invalid format")
		}

		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()

		var (
			principal models.Principal
			err       error
		)
		switch strings.ToLower(scheme) {
		case "basic":
			raw, decodeErr := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
			if decodeErr != nil {
				return unauthorized(c, m, "No authorization header or invalid format")
			}
			username, password, found := strings.Cut(string(raw), ":")
			if !found {
				return unauthorized(c, m, "No authorization header or invalid format")
			}
			principal, err = auth.Authenticate(ctx, username, password)
		case "bearer":
			principal, err = auth.VerifyToken(ctx, strings.TrimSpace(value))
		default:
			return unauthorized(c, m, "No authorization header or invalid format")
		}

		if err != nil {
			switch apperror.KindOf(err) {
			case apperror.KindUnauthorized, apperror.KindNotFound:
				return unauthorized(c, m, apperror.PublicMessage(err))
			default:
				log.Printf("%s %s: authenticate: %v", c.Method(), c.Path(), err)
				return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Msg: "Server error", Success: false})
			}
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// CurrentPrincipal returns the principal stored by AuthMiddleware.
func CurrentPrincipal(c *fiber.Ctx) (models.Principal, bool) {
	p, ok := c.Locals(principalKey).(models.Principal)
	return p, ok
}
