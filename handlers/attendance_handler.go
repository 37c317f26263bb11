package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"qr-attendance/config/middleware"
	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/pkg/metrics"
	util "qr-attendance/pkg/utils"
	"qr-attendance/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
	metrics    *metrics.Metrics
	timeout    time.Duration
}

func NewAttendanceHandler(attendance *services.AttendanceService, m *metrics.Metrics, timeout time.Duration) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance, metrics: m, timeout: timeout}
}

// MarkAttendance godoc
// @Summary Toggle attendance
// @Description Flips the employee between IN and OUT and appends the event to their log. The caller cannot choose the status.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param payload body models.MarkAttendancePayload true "Scanned employee id"
// @Success 200 {object} models.MarkAttendanceResponse
// @Failure 400 {object} models.ErrorResponse "Invalid body or suspended employee"
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ForbiddenResponse
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Concurrent update, scan again"
// @Failure 500 {object} models.ErrorResponse
// @Router /attendance/mark [post]
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	var payload models.MarkAttendancePayload
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return respondValidation(c, errors)
	}

	p, ok := middleware.CurrentPrincipal(c)
	if !ok {
		return respondError(c, apperror.Unauthorized("Not authenticated"))
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	result, err := h.attendance.MarkAttendance(ctx, payload.UserID, p.MarkedBy())
	if err != nil {
		return respondError(c, err)
	}
	h.metrics.RecordMark(string(result.NewStatus))

	return c.Status(fiber.StatusOK).JSON(models.MarkAttendanceResponse{
		Success: true,
		Msg:     "Checked " + string(result.NewStatus),
		User: models.MarkedUser{
			UserID:        result.Employee.UserID,
			Name:          result.Employee.FullName(),
			Department:    result.Employee.Department,
			CurrentStatus: result.NewStatus,
			Timestamp:     result.Timestamp,
		},
	})
}

// GetUserForScan godoc
// @Summary Scan preview
// @Description Employee summary and last log entry, shown after a QR scan and before marking.
// @Tags Attendance
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param userId path int true "Employee id"
// @Success 200 {object} models.ScanPreviewResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendance/user/{userId} [get]
func (h *AttendanceHandler) GetUserForScan(c *fiber.Ctx) error {
	userID, err := numericParam(c, "userId")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	summary, err := h.attendance.GetEmployeeForScan(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.ScanPreviewResponse{Success: true, User: summary})
}

// GetLogs godoc
// @Summary Query attendance logs
// @Description Flattened log rows across employees, newest first. Name and department match case-insensitive substrings; date is a calendar day in the server time zone.
// @Tags Attendance
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param userId query int false "Exact employee id"
// @Param name query string false "Substring of first, last or full name"
// @Param department query string false "Substring of department"
// @Param date query string false "Day, YYYY-MM-DD"
// @Param from query string false "First day of a range, YYYY-MM-DD"
// @Param to query string false "Last day of a range, YYYY-MM-DD"
// @Param status query string false "IN or OUT"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Rows per page, 0 for all"
// @Success 200 {object} models.LogsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ForbiddenResponse
// @Router /attendance/logs [get]
func (h *AttendanceHandler) GetLogs(c *fiber.Ctx) error {
	filter, err := h.attendance.ParseLogQuery(services.LogQuery{
		UserID:     c.Query("userId"),
		Name:       c.Query("name"),
		Department: c.Query("department"),
		Date:       c.Query("date"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Status:     c.Query("status"),
		Page:       c.Query("page"),
		Limit:      c.Query("limit"),
	})
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	page, err := h.attendance.QueryLogs(ctx, filter)
	if err != nil {
		return respondError(c, err)
	}

	resp := models.LogsResponse{Success: true, Logs: page.Logs, Total: page.Total}
	if filter.Limit > 0 {
		resp.Page = filter.Page
		if resp.Page < 1 {
			resp.Page = 1
		}
		resp.Limit = filter.Limit
	}
	return c.JSON(resp)
}

// GetToday godoc
// @Summary Today's attendance
// @Description Employees with at least one event today, their events in order, and counts by current status.
// @Tags Attendance
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Success 200 {object} models.TodayResponse
// @Failure 403 {object} models.ForbiddenResponse
// @Router /attendance/today [get]
func (h *AttendanceHandler) GetToday(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	summary, err := h.attendance.TodaySummary(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.TodayResponse{
		Success:    true,
		Stats:      summary.Stats,
		Attendance: summary.Attendance,
	})
}

// GetReport godoc
// @Summary Presence report
// @Description Per employee, days with at least one IN and working days without one. Working days follow the configured recurrence rule.
// @Tags Attendance
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param from query string false "First day, YYYY-MM-DD (default: first of the month)"
// @Param to query string false "Last day, YYYY-MM-DD (default: today)"
// @Param userId query int false "Exact employee id"
// @Param name query string false "Substring of name"
// @Param department query string false "Substring of department"
// @Success 200 {object} models.ReportResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ForbiddenResponse
// @Router /attendance/report [get]
func (h *AttendanceHandler) GetReport(c *fiber.Ctx) error {
	filter, err := h.attendance.ParseLogQuery(services.LogQuery{
		UserID:     c.Query("userId"),
		Name:       c.Query("name"),
		Department: c.Query("department"),
	})
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	report, err := h.attendance.AttendanceReport(ctx, c.Query("from"), c.Query("to"), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.ReportResponse{
		Success:     true,
		From:        report.From,
		To:          report.To,
		WorkingDays: report.WorkingDays,
		Report:      report.Rows,
	})
}
