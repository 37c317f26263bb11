package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"qr-attendance/models"
	"qr-attendance/pkg/apperror"
	"qr-attendance/pkg/schedule"
	util "qr-attendance/pkg/utils"
	"qr-attendance/repository"
)

// MaxToggleAttempts bounds how often MarkAttendance re-reads an employee whose
// status moved underneath it before giving up with Conflict.
const MaxToggleAttempts = 8

const (
	dayLayout      = "2006-01-02"
	maxReportDays  = 366
	maxPageLimit   = 1000
	msgUserMissing = "User not found"
)

type AttendanceService struct {
	employees repository.EmployeeRepository
	calendar  *schedule.Calendar
	loc       *time.Location
	now       func() time.Time
}

func NewAttendanceService(employees repository.EmployeeRepository, calendar *schedule.Calendar, loc *time.Location) *AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceService{
		employees: employees,
		calendar:  calendar,
		loc:       loc,
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

func (s *AttendanceService) Location() *time.Location { return s.loc }

// MarkAttendance flips the employee between IN and OUT and appends the event to their log.
// The write is conditioned on the status read, so concurrent scans of one employee serialize.
func (s *AttendanceService) MarkAttendance(ctx context.Context, userID int64, markedBy string) (*models.MarkResult, error) {
	for attempt := 0; attempt < MaxToggleAttempts; attempt++ {
		employee, err := s.employees.FindByUserID(ctx, userID)
		if err != nil {
			return nil, wrap("load employee", err)
		}
		if employee == nil {
			return nil, apperror.NotFound(msgUserMissing)
		}
		if employee.IsSuspended {
			return nil, apperror.InvalidState("User is suspended")
		}

		current := employee.CurrentStatus
		if !current.Valid() {
			current = models.StatusOut
		}
		entry := models.LogEntry{
			Timestamp: s.now().UTC().Truncate(time.Millisecond),
			Status:    current.Toggled(),
			MarkedBy:  markedBy,
		}

		updated, err := s.employees.AppendIfStatus(ctx, userID, current, entry)
		if err != nil {
			return nil, wrap("append attendance", err)
		}
		if updated != nil {
			return &models.MarkResult{
				Employee:  *updated,
				NewStatus: entry.Status,
				Timestamp: entry.Timestamp,
			}, nil
		}
	}
	return nil, apperror.Conflict("Attendance was updated concurrently, please scan again")
}

// GetEmployeeForScan returns the preview shown after a QR scan, before marking.
func (s *AttendanceService) GetEmployeeForScan(ctx context.Context, userID int64) (models.EmployeeSummary, error) {
	employee, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		return models.EmployeeSummary{}, wrap("load employee", err)
	}
	if employee == nil {
		return models.EmployeeSummary{}, apperror.NotFound(msgUserMissing)
	}
	return employee.Summary(), nil
}

// LogQuery is the raw query string of GET /attendance/logs.
type LogQuery struct {
	UserID     string
	Name       string
	Department string
	Date       string
	From       string
	To         string
	Status     string
	Page       string
	Limit      string
}

// ParseLogQuery turns raw query values into a LogFilter. Dates are calendar days in the service location.
func (s *AttendanceService) ParseLogQuery(q LogQuery) (models.LogFilter, error) {
	var f models.LogFilter

	if v := strings.TrimSpace(q.UserID); v != "" {
		id, err := util.ParseNumericID(v)
		if err != nil {
			return f, apperror.Validation("Invalid userId")
		}
		f.UserID = id
	}
	f.Name = strings.TrimSpace(q.Name)
	f.Department = strings.TrimSpace(q.Department)

	if v := strings.TrimSpace(q.Status); v != "" {
		status := models.Status(strings.ToUpper(v))
		if !status.Valid() {
			return f, apperror.Validation("Invalid status, expected IN or OUT")
		}
		f.Status = status
	}

	if v := strings.TrimSpace(q.Date); v != "" {
		day, err := models.ParseDay(v, s.loc)
		if err != nil {
			return f, apperror.Validation("Invalid date, expected YYYY-MM-DD")
		}
		f.Narrow(day.UTC(), day.AddDate(0, 0, 1).UTC())
	}
	if v := strings.TrimSpace(q.From); v != "" {
		day, err := models.ParseDay(v, s.loc)
		if err != nil {
			return f, apperror.Validation("Invalid from, expected YYYY-MM-DD")
		}
		f.Narrow(day.UTC(), time.Time{})
	}
	if v := strings.TrimSpace(q.To); v != "" {
		day, err := models.ParseDay(v, s.loc)
		if err != nil {
			return f, apperror.Validation("Invalid to, expected YYYY-MM-DD")
		}
		f.Narrow(time.Time{}, day.AddDate(0, 0, 1).UTC())
	}

	page, err := parseNonNegative(q.Page, "page")
	if err != nil {
		return f, err
	}
	limit, err := parseNonNegative(q.Limit, "limit")
	if err != nil {
		return f, err
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if limit > 0 && page > 1 && page-1 > math.MaxInt64/limit {
		return f, apperror.Validation("Invalid page")
	}
	f.Page, f.Limit = page, limit
	return f, nil
}

func parseNonNegative(raw, field string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, apperror.Validation("Invalid " + field)
	}
	return n, nil
}

// QueryLogs returns flattened log rows newest first, plus the unpaginated total.
func (s *AttendanceService) QueryLogs(ctx context.Context, f models.LogFilter) (models.LogPage, error) {
	rows, total, err := s.employees.QueryLogs(ctx, f)
	if err != nil {
		return models.LogPage{}, wrap("query attendance logs", err)
	}
	return models.LogPage{Logs: rows, Total: total}, nil
}

// TodaySummary groups today's events per employee. CurrentlyIn and CurrentlyOut
// count the employees present today by their current status.
func (s *AttendanceService) TodaySummary(ctx context.Context) (models.TodaySummary, error) {
	start := models.StartOfDay(s.now(), s.loc)
	end := start.AddDate(0, 0, 1)

	rows, err := s.employees.EntriesBetween(ctx, start.UTC(), end.UTC())
	if err != nil {
		return models.TodaySummary{}, wrap("load today's attendance", err)
	}

	summary := models.TodaySummary{Attendance: rows}
	summary.Stats.TotalPresent = len(rows)
	for _, row := range rows {
		if row.CurrentStatus == models.StatusIn {
			summary.Stats.CurrentlyIn++
		} else {
			summary.Stats.CurrentlyOut++
		}
	}
	return summary, nil
}

// AttendanceReport counts, per employee matching f, the days with at least one IN entry
// and the working days without one. Working days before the employee existed or after
// today are not counted. An empty to means today, an empty from the first of to's month.
func (s *AttendanceService) AttendanceReport(ctx context.Context, from, to string, f models.LogFilter) (models.Report, error) {
	if s.calendar == nil {
		return models.Report{}, apperror.Internal("attendance report", errNoCalendar)
	}
	toDay := models.StartOfDay(s.now(), s.loc)
	if v := strings.TrimSpace(to); v != "" {
		day, err := models.ParseDay(v, s.loc)
		if err != nil {
			return models.Report{}, apperror.Validation("Invalid to, expected YYYY-MM-DD")
		}
		toDay = day
	}
	fromDay := time.Date(toDay.Year(), toDay.Month(), 1, 0, 0, 0, 0, s.loc)
	if v := strings.TrimSpace(from); v != "" {
		day, err := models.ParseDay(v, s.loc)
		if err != nil {
			return models.Report{}, apperror.Validation("Invalid from, expected YYYY-MM-DD")
		}
		fromDay = day
	}
	if toDay.Before(fromDay) {
		return models.Report{}, apperror.Validation("from must not be after to")
	}
	if toDay.Sub(fromDay) > maxReportDays*24*time.Hour {
		return models.Report{}, apperror.Validation("Report range is limited to 366 days")
	}

	workingDays, err := s.calendar.WorkingDays(fromDay, toDay)
	if err != nil {
		return models.Report{}, wrap("expand working days", err)
	}

	employees, err := s.employees.FindAll(ctx)
	if err != nil {
		return models.Report{}, wrap("list employees", err)
	}

	window := models.LogFilter{
		UserID:     f.UserID,
		Name:       f.Name,
		Department: f.Department,
		Status:     models.StatusIn,
		Since:      fromDay.UTC(),
		Until:      toDay.AddDate(0, 0, 1).UTC(),
	}
	rows, _, err := s.employees.QueryLogs(ctx, window)
	if err != nil {
		return models.Report{}, wrap("query attendance logs", err)
	}

	present := make(map[int64]map[string]bool)
	for _, row := range rows {
		days := present[row.UserID]
		if days == nil {
			days = make(map[string]bool)
			present[row.UserID] = days
		}
		days[row.Timestamp.In(s.loc).Format(dayLayout)] = true
	}

	today := models.StartOfDay(s.now(), s.loc)
	report := models.Report{
		From:        fromDay.Format(dayLayout),
		To:          toDay.Format(dayLayout),
		WorkingDays: len(workingDays),
		Rows:        []models.ReportRow{},
	}
	for i := range employees {
		e := &employees[i]
		if !window.MatchesEmployee(e) {
			continue
		}
		row := models.ReportRow{
			UserID:      e.UserID,
			Name:        e.FullName(),
			Department:  e.Department,
			DaysPresent: len(present[e.UserID]),
			AbsentDays:  []string{},
		}
		joined := time.Time{}
		if !e.CreatedAt.IsZero() {
			joined = models.StartOfDay(e.CreatedAt, s.loc)
		}
		for _, day := range workingDays {
			if day.Before(joined) || day.After(today) {
				continue
			}
			row.WorkingDays++
			key := day.Format(dayLayout)
			if !present[e.UserID][key] {
				row.AbsentDays = append(row.AbsentDays, key)
			}
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}
