package handlers

import (
	"context"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	util "qr-attendance/pkg/utils"
	"qr-attendance/services"
)

const (
	defaultQRSize = 256
	minQRSize     = 128
	maxQRSize     = 1024
)

// UserHandler manages employees, the people whose attendance is tracked.
type UserHandler struct {
	employees *services.EmployeeService
	uploadDir string
	timeout   time.Duration
}

func NewUserHandler(employees *services.EmployeeService, uploadDir string, timeout time.Duration) *UserHandler {
	return &UserHandler{employees: employees, uploadDir: uploadDir, timeout: timeout}
}

// RegisterUser godoc
// @Summary Register employee
// @Description Creates an employee checked OUT with an empty log. Accepts JSON or multipart with an optional profilePic.
// @Tags Users
// @Accept json,mpfd
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param firstName formData string true "First name"
// @Param lastName formData string true "Last name"
// @Param department formData string true "Department"
// @Param profilePic formData file false "JPG, PNG, GIF or WEBP up to 5MB"
// @Success 201 {object} models.EmployeeResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 403 {object} models.ForbiddenResponse
// @Router /users/register [post]
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var payload models.EmployeeRegisterPayload
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

	employee, err := h.employees.RegisterEmployee(ctx, payload, pic)
	if err != nil {
		removeProfilePic(h.uploadDir, pic)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.EmployeeResponse{
		Success: true,
		Msg:     "User registered",
		User:    *employee,
	})
}

// GetAllUsers godoc
// @Summary List employees
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Success 200 {object} models.EmployeeListResponse
// @Failure 403 {object} models.ForbiddenResponse
// @Router /users/users [get]
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	employees, err := h.employees.ListEmployees(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.EmployeeListResponse{Success: true, Users: employees, Total: len(employees)})
}

// GetUser godoc
// @Summary Get employee
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param userId path int true "Employee id"
// @Success 200 {object} models.EmployeeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/user/{userId} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := numericParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	employee, err := h.employees.GetEmployee(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.EmployeeResponse{Success: true, User: *employee})
}

// GetUserQR godoc
// @Summary Employee QR code
// @Description PNG QR code encoding the numeric employee id. format=base64 returns a data URL in JSON instead.
// @Tags Users
// @Produce png
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param userId path int true "Employee id"
// @Param size query int false "Image size in pixels (128-1024)"
// @Param format query string false "png (default) or base64"
// @Success 200 {object} models.QRCodeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/user/{userId}/qr [get]
func (h *UserHandler) GetUserQR(c *fiber.Ctx) error {
	userID, err := numericParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	if _, err := h.employees.GetEmployee(ctx, userID); err != nil {
		return respondError(c, err)
	}

	size := c.QueryInt("size", defaultQRSize)
	if size < minQRSize || size > maxQRSize {
		size = defaultQRSize
	}

	png, err := qrcode.Encode(strconv.FormatInt(userID, 10), qrcode.Medium, size)
	if err != nil {
		return respondError(c, apperror.Internal("encode qr code", err))
	}

	if c.Query("format") == "base64" {
		return c.JSON(models.QRCodeResponse{
			Success: true,
			UserID:  userID,
			QRCode:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, "inline; filename=\"user-"+strconv.FormatInt(userID, 10)+".png\"")
	return c.Send(png)
}

// SuspendUser godoc
// @Summary Suspend employee
// @Description Suspended employees cannot be marked.
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param userId path int true "Employee id"
// @Success 200 {object} models.EmployeeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/user/{userId}/suspend [put]
func (h *UserHandler) SuspendUser(c *fiber.Ctx) error {
	return h.setSuspended(c, true)
}

// UnsuspendUser godoc
// @Summary Unsuspend employee
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param userId path int true "Employee id"
// @Success 200 {object} models.EmployeeResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/user/{userId}/unsuspend [put]
func (h *UserHandler) UnsuspendUser(c *fiber.Ctx) error {
	return h.setSuspended(c, false)
}

func (h *UserHandler) setSuspended(c *fiber.Ctx, suspended bool) error {
	userID, err := numericParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	employee, err := h.employees.SetSuspended(ctx, userID, suspended)
	if err != nil {
		return respondError(c, err)
	}
	msg := "User unsuspended"
	if suspended {
		msg = "User suspended"
	}
	return c.JSON(models.EmployeeResponse{Success: true, Msg: msg, User: *employee})
}

// DeleteUser godoc
// @Summary Delete employee
// @Description Hard delete. The id is never issued again.
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param userId path int true "Employee id"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/user/{userId} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := numericParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	if err := h.employees.DeleteEmployee(ctx, userID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.MessageResponse{Success: true, Msg: "User removed"})
}
