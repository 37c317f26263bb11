package router

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"qr-attendance/config"
	"qr-attendance/handlers"
	"qr-attendance/models"
	"qr-attendance/pkg/metrics"
	"qr-attendance/pkg/paseto"
	"qr-attendance/pkg/schedule"
	"qr-attendance/repository"
	"qr-attendance/services"
)

const testPassword = "secret123"

type testEnv struct {
	app       *fiber.App
	uploadDir string
	employees *services.EmployeeService
	staff     *services.StaffService
}

func newTestEnv(t *testing.T, checks map[string]handlers.HealthCheck, opts ...func(*config.AppConfig)) *testEnv {
	t.Helper()
	ctx := context.Background()

	employeeRepo := repository.NewMemoryEmployeeRepository()
	staffRepo := repository.NewMemoryStaffRepository()
	counters := repository.NewMemoryCounterRepository()

	tokens, err := paseto.NewPasetoMaker([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	require.NoError(t, err)
	calendar, err := schedule.NewCalendar("FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR", time.UTC)
	require.NoError(t, err)

	env := &testEnv{
		employees: services.NewEmployeeService(employeeRepo, counters, 20000),
		staff:     services.NewStaffService(staffRepo, counters, 10000, bcrypt.MinCost),
	}
	for _, s := range []struct{ username, role string }{
		{"admin1", "admin"}, {"hr1", "hr"}, {"op1", "operator"},
	} {
		_, err := env.staff.RegisterStaff(ctx, models.StaffRegisterPayload{
			FirstName: "Test", LastName: s.role, Department: "Office",
			Role: s.role, Username: s.username, Password: testPassword,
		}, "")
		require.NoError(t, err)
	}

	cfg := &config.AppConfig{
		UploadDir:      t.TempDir(),
		RequestTimeout: 5 * time.Second,
		Location:       time.UTC,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	env.uploadDir = cfg.UploadDir
	env.app = NewApp(Deps{
		Config:       cfg,
		Auth:         services.NewAuthService(staffRepo, tokens),
		Attendance:   services.NewAttendanceService(employeeRepo, calendar, time.UTC),
		Employees:    env.employees,
		Staff:        env.staff,
		Metrics:      metrics.New(),
		HealthChecks: checks,
		Quiet:        true,
	})
	return env
}

func basic(username string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+testPassword))
}

func (e *testEnv) do(t *testing.T, method, path, auth string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) registerEmployee(t *testing.T, first, last, dept string) int64 {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/users/register", basic("op1"), models.EmployeeRegisterPayload{
		FirstName: first, LastName: last, Department: dept,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[models.EmployeeResponse](t, resp).User.UserID
}

func TestAuthenticationRequired(t *testing.T) {
	env := newTestEnv(t, nil)

	tests := []struct {
		name string
		auth string
	}{
		{"missing header", ""},
		{"unknown scheme", "Digest abc"},
		{"not base64", "Basic %%%"},
		{"wrong password", "Basic " + base64.StdEncoding.EncodeToString([]byte("op1:nope"))},
		{"unknown user", basic("ghost")},
		{"bad token", "Bearer v2.local.nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.do(t, http.MethodGet, "/attendance/today", tt.auth, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body := decode[models.ErrorResponse](t, resp)
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Msg)
		})
	}
}

func TestRoleGate(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodGet, "/attendance/logs", basic("op1"), nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode[models.ForbiddenResponse](t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, []string{"hr", "admin"}, body.RequiredRoles)
	assert.Equal(t, "operator", body.UserRole)

	resp = env.do(t, http.MethodPost, "/attendance/mark", basic("hr1"), models.MarkAttendancePayload{UserID: 20001})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/users/staff", basic("hr1"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/users/staff", basic("admin1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[models.StaffListResponse](t, resp).Total)
}

func TestMarkAttendanceFlow(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.registerEmployee(t, "Jane", "Doe", "Engineering")
	assert.Equal(t, int64(20001), id)

	resp := env.do(t, http.MethodPost, "/attendance/mark", basic("op1"), models.MarkAttendancePayload{UserID: id})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	marked := decode[models.MarkAttendanceResponse](t, resp)
	assert.True(t, marked.Success)
	assert.Equal(t, "Checked IN", marked.Msg)
	assert.Equal(t, models.StatusIn, marked.User.CurrentStatus)
	assert.Equal(t, "Jane Doe", marked.User.Name)

	resp = env.do(t, http.MethodPost, "/attendance/mark", basic("admin1"), models.MarkAttendancePayload{UserID: id})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Checked OUT", decode[models.MarkAttendanceResponse](t, resp).Msg)

	resp = env.do(t, http.MethodGet, "/attendance/user/20001", basic("op1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	preview := decode[models.ScanPreviewResponse](t, resp)
	assert.Equal(t, models.StatusOut, preview.User.CurrentStatus)
	require.NotNil(t, preview.User.LastAttendance)
	assert.Equal(t, "admin1", preview.User.LastAttendance.MarkedBy)

	resp = env.do(t, http.MethodGet, "/attendance/logs?userId=20001", basic("hr1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs := decode[models.LogsResponse](t, resp)
	assert.Equal(t, int64(2), logs.Total)
	require.Len(t, logs.Logs, 2)
	assert.Equal(t, models.StatusOut, logs.Logs[0].Status)
	assert.Equal(t, "admin1", logs.Logs[0].MarkedBy)
	assert.Equal(t, "op1", logs.Logs[1].MarkedBy)

	resp = env.do(t, http.MethodGet, "/attendance/logs?limit=1&page=2", basic("hr1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs = decode[models.LogsResponse](t, resp)
	assert.Equal(t, int64(2), logs.Total)
	assert.Equal(t, int64(2), logs.Page)
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, models.StatusIn, logs.Logs[0].Status)

	resp = env.do(t, http.MethodGet, "/attendance/today", basic("op1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	today := decode[models.TodayResponse](t, resp)
	assert.Equal(t, 1, today.Stats.TotalPresent)
	assert.Equal(t, 1, today.Stats.CurrentlyOut)
}

func TestMarkAttendanceErrors(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.registerEmployee(t, "Jane", "Doe", "Engineering")

	resp := env.do(t, http.MethodPost, "/attendance/mark", basic("op1"), map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/attendance/mark", basic("op1"), models.MarkAttendancePayload{UserID: 29999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", decode[models.ErrorResponse](t, resp).Msg)

	resp = env.do(t, http.MethodPut, "/users/user/20001/suspend", basic("hr1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[models.EmployeeResponse](t, resp).User.IsSuspended)

	resp = env.do(t, http.MethodPost, "/attendance/mark", basic("op1"), models.MarkAttendancePayload{UserID: id})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User is suspended", decode[models.ErrorResponse](t, resp).Msg)

	resp = env.do(t, http.MethodGet, "/attendance/user/abc", basic("op1"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/attendance/logs?status=LATE", basic("hr1"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/attendance/logs?page=9223372036854775807&limit=1000", basic("hr1"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid page", decode[models.ErrorResponse](t, resp).Msg)
}

func TestBearerLogin(t *testing.T) {
	env := newTestEnv(t, nil)

	resp := env.do(t, http.MethodPost, "/auth/login", "", models.LoginPayload{Username: "hr1", Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[models.LoginResponse](t, resp)
	assert.Equal(t, models.RoleHR, login.Role)
	require.NotEmpty(t, login.Token)
	require.NotNil(t, login.ExpiresAt)

	resp = env.do(t, http.MethodGet, "/auth/me", "Bearer "+login.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[models.Principal](t, resp)
	assert.Equal(t, "hr1", me.Username)

	resp = env.do(t, http.MethodPost, "/auth/login", "", models.LoginPayload{Username: "hr1", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/auth/login", "", models.LoginPayload{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	staff, err := env.staff.FindByUsername(context.Background(), "hr1")
	require.NoError(t, err)
	_, err = env.staff.SetActive(context.Background(), staff.StaffID, false)
	require.NoError(t, err)

	resp = env.do(t, http.MethodGet, "/auth/me", "Bearer "+login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserManagement(t *testing.T) {
	env := newTestEnv(t, nil)
	env.registerEmployee(t, "Jane", "Doe", "Engineering")
	env.registerEmployee(t, "John", "Smith", "Finance")

	resp := env.do(t, http.MethodGet, "/users/users", basic("hr1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[models.EmployeeListResponse](t, resp).Total)

	resp = env.do(t, http.MethodGet, "/users/users", basic("op1"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/users/user/20002", basic("op1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Smith", decode[models.EmployeeResponse](t, resp).User.LastName)

	resp = env.do(t, http.MethodDelete, "/users/user/20002", basic("admin1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "User removed", decode[models.MessageResponse](t, resp).Msg)

	for _, path := range []string{"/users/user/20002", "/users/user/20002/qr"} {
		resp = env.do(t, http.MethodGet, path, basic("op1"), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
	resp = env.do(t, http.MethodDelete, "/users/user/20002", basic("admin1"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Equal(t, int64(20003), env.registerEmployee(t, "Amara", "Okafor", "Finance"))
}

func TestStaffManagement(t *testing.T) {
	env := newTestEnv(t, nil)

	payload := models.StaffRegisterPayload{
		FirstName: "New", LastName: "Operator", Department: "Gate",
		Role: "operator", Username: "op2", Password: testPassword,
	}
	resp := env.do(t, http.MethodPost, "/users/staff/register", basic("admin1"), payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.StaffResponse](t, resp)
	assert.Equal(t, int64(10004), created.Staff.StaffID)

	resp = env.do(t, http.MethodPost, "/users/staff/register", basic("admin1"), payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	payload.Username, payload.Role = "admin2", "Admin"
	resp = env.do(t, http.MethodPost, "/users/staff/register", basic("admin1"), payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.RoleAdmin, decode[models.StaffResponse](t, resp).Staff.Role)

	payload.Username, payload.Role = "op3", "owner"
	resp = env.do(t, http.MethodPost, "/users/staff/register", basic("admin1"), payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/attendance/today", basic("op2"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/users/staff/10004/deactivate", basic("admin1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[models.StaffResponse](t, resp).Staff.IsActive)

	resp = env.do(t, http.MethodGet, "/attendance/today", basic("op2"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/users/staff/10004/activate", basic("admin1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPut, "/users/staff/19999/activate", basic("admin1"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserQRCode(t *testing.T) {
	env := newTestEnv(t, nil)
	id := env.registerEmployee(t, "Jane", "Doe", "Engineering")
	require.Equal(t, int64(20001), id)

	resp := env.do(t, http.MethodGet, "/users/user/20001/qr", basic("op1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	png, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	resp = env.do(t, http.MethodGet, "/users/user/20001/qr?format=base64&size=128", basic("op1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	qr := decode[models.QRCodeResponse](t, resp)
	assert.Equal(t, id, qr.UserID)
	assert.True(t, strings.HasPrefix(qr.QRCode, "data:image/png;base64,"))
}

func TestReportEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	env.registerEmployee(t, "Jane", "Doe", "Engineering")

	resp := env.do(t, http.MethodGet, "/attendance/report", basic("hr1"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[models.ReportResponse](t, resp)
	assert.True(t, report.Success)
	assert.Len(t, report.Report, 1)

	resp = env.do(t, http.MethodGet, "/attendance/report?from=2024-05-10&to=2024-05-01", basic("hr1"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/attendance/report", basic("op1"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t, map[string]handlers.HealthCheck{
		"store": func(context.Context) error { return nil },
	})

	resp := env.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decode[models.HealthResponse](t, resp)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.Checks["store"])

	id := env.registerEmployee(t, "Jane", "Doe", "Engineering")
	resp = env.do(t, http.MethodPost, "/attendance/mark", basic("op1"), models.MarkAttendancePayload{UserID: id})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env.do(t, http.MethodGet, "/attendance/today", "", nil)

	resp = env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, `attendance_marks_total{status="IN"} 1`)
	assert.Contains(t, text, `auth_failures_total{reason="unauthorized"} 1`)
	assert.Contains(t, text, `http_requests_total`)
}

func TestHealthDegraded(t *testing.T) {
	env := newTestEnv(t, map[string]handlers.HealthCheck{
		"mongodb": func(context.Context) error { return errors.New("connection refused") },
	})

	resp := env.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	health := decode[models.HealthResponse](t, resp)
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "connection refused", health.Checks["mongodb"])
}

func TestRateLimit(t *testing.T) {
	env := newTestEnv(t, nil, func(c *config.AppConfig) { c.RateLimitPerMin = 2 })

	for i := 0; i < 2; i++ {
		resp := env.do(t, http.MethodGet, "/attendance/today", basic("op1"), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := env.do(t, http.MethodGet, "/attendance/today", basic("op1"), nil)
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Too many requests", decode[models.ErrorResponse](t, resp).Msg)

	resp = env.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// pngBytes is the smallest valid PNG: a 1x1 transparent pixel.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

func (e *testEnv) doMultipart(t *testing.T, path, auth string, fields map[string]string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="profilePic"; filename="avatar.png"`)
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, auth)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) storedPictures(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(e.uploadDir, "profile_pics"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestFailedRegistrationKeepsNoPicture(t *testing.T) {
	env := newTestEnv(t, nil)
	fields := map[string]string{
		"firstName": "Second", "lastName": "HR", "department": "Office",
		"role": "hr", "username": "hr1", "password": testPassword,
	}

	resp := env.doMultipart(t, "/users/staff/register", basic("admin1"), fields)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username already exists", decode[models.ErrorResponse](t, resp).Msg)
	assert.Empty(t, env.storedPictures(t))

	fields["username"] = "hr2"
	resp = env.doMultipart(t, "/users/staff/register", basic("admin1"), fields)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.StaffResponse](t, resp)

	stored := env.storedPictures(t)
	require.Len(t, stored, 1)
	assert.Equal(t, "/uploads/profile_pics/"+stored[0], created.Staff.ProfilePic)
}
