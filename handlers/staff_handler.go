package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"qr-attendance/models"
	util "qr-attendance/pkg/utils"
	"qr-attendance/services"
)

type StaffHandler struct {
	staff     *services.StaffService
	uploadDir string
	timeout   time.Duration
}

func NewStaffHandler(staff *services.StaffService, uploadDir string, timeout time.Duration) *StaffHandler {
	return &StaffHandler{staff: staff, uploadDir: uploadDir, timeout: timeout}
}

// RegisterStaff godoc
// @Summary Register staff
// @Description Creates an active admin, hr or operator account.
// @Tags Staff
// @Accept json,mpfd
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param department formData string true "Department"
// @Param role formData string true "admin, hr or operator"
// @Param username formData string true "Unique username"
// @Param password formData string true "Password, at least 6 characters"
// @Param profilePic formData file false "JPG, PNG, GIF or WEBP up to 5MB"
// @Success 201 {object} models.StaffResponse
// @Failure 400 {object} models.ValidationErrorResponse "Invalid payload or username taken"
// @Failure 403 {object} models.ForbiddenResponse
// @Router /users/staff/register [post]
func (h *StaffHandler) RegisterStaff(c *fiber.Ctx) error {
	var payload models.StaffRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return respondValidation(c, errors)
	}

	pic, err := saveProfilePic(c, h.uploadDir)
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	staff, err := h.staff.RegisterStaff(ctx, payload, pic)
	if err != nil {
		removeProfilePic(h.uploadDir, pic)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.StaffResponse{
		Success: true,
		Msg:     "Staff registered",
		Staff:   *staff,
	})
}

// GetAllStaff godoc
// @Summary List staff
// @Description Passwords are never returned.
// @Tags Staff
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Success 200 {object} models.StaffListResponse
// @Failure 403 {object} models.ForbiddenResponse
// @Router /users/staff [get]
func (h *StaffHandler) GetAllStaff(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	staff, err := h.staff.ListStaff(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.StaffListResponse{Success: true, Staff: staff, Total: len(staff)})
}

// DeactivateStaff godoc
// @Summary Deactivate staff
// @Description Deactivated accounts can no longer log in.
// @Tags Staff
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param staffId path int true "Staff id"
// @Success 200 {object} models.StaffResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/staff/{staffId}/deactivate [put]
func (h *StaffHandler) DeactivateStaff(c *fiber.Ctx) error {
	return h.setActive(c, false)
}

// ActivateStaff godoc
// @Summary Activate staff
// @Tags Staff
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param staffId path int true "Staff id"
// @Success 200 {object} models.StaffResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/staff/{staffId}/activate [put]
func (h *StaffHandler) ActivateStaff(c *fiber.Ctx) error {
	return h.setActive(c, true)
}

func (h *StaffHandler) setActive(c *fiber.Ctx, active bool) error {
	staffID, err := numericParam(c, "staffId")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	staff, err := h.staff.SetActive(ctx, staffID, active)
	if err != nil {
		return respondError(c, err)
	}
	msg := "Staff deactivated"
	if active {
		msg = "Staff activated"
	}
	return c.JSON(models.StaffResponse{Success: true, Msg: msg, Staff: *staff})
}
