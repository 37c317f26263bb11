package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"qr-attendance/config/middleware"
	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/pkg/metrics"
	util "qr-attendance/pkg/utils"
	"qr-attendance/services"
)

type AuthHandler struct {
	auth    *services.AuthService
	metrics *metrics.Metrics
	timeout time.Duration
}

func NewAuthHandler(auth *services.AuthService, m *metrics.Metrics, timeout time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, metrics: m, timeout: timeout}
}

// Login godoc
// @Summary Staff login
// @Description Verifies staff credentials and returns the principal plus a short-lived PASETO token usable as "Bearer <token>".
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginPayload true "Username and password"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 401 {object} models.ErrorResponse "Invalid credentials or account inactive"
// @Failure 500 {object} models.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}
	payload.Username = strings.TrimSpace(payload.Username)

	if errors := util.ValidateStruct(payload); errors != nil {
		return respondValidation(c, errors)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	p, token, exp, err := h.auth.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound, apperror.KindUnauthorized:
			h.metrics.RecordAuthFailure("unauthorized")
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Msg: apperror.PublicMessage(err), Success: false})
		}
		return respondError(c, err)
	}

	resp := models.LoginResponse{
		Success:    true,
		StaffID:    p.StaffID,
		Username:   p.Username,
		Role:       p.Role,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Department: p.Department,
		Token:      token,
	}
	if token != "" {
		resp.ExpiresAt = &exp
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Me godoc
// @Summary Current principal
// @Description Returns the staff identity resolved from the Authorization header.
// @Tags Auth
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Success 200 {object} models.Principal
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return respondError(c, apperror.Unauthorized("Not authenticated"))
	}
	return c.JSON(p)
}
