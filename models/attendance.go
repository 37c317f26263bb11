package models

import (
	"math"
	"strings"
	"time"
)

type Status string

const (
	StatusIn  Status = "IN"
	StatusOut Status = "OUT"
)

func (s Status) Valid() bool {
	return s == StatusIn || s == StatusOut
}

// Toggled returns the opposite status. Anything that is not IN toggles to IN.
func (s Status) Toggled() Status {
	if s == StatusIn {
		return StatusOut
	}
	return StatusIn
}

// LogEntry is one append-only attendance event embedded in an employee document.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Status    Status    `json:"status" bson:"status"`
	MarkedBy  string    `json:"markedBy" bson:"markedBy"`
}

type MarkAttendancePayload struct {
	UserID int64 `json:"userId" form:"userId" validate:"required,gt=0"`
}

type MarkResult struct {
	Employee  Employee
	NewStatus Status
	Timestamp time.Time
}

// LogRow is one flattened log entry with the employee snapshot alongside it.
type LogRow struct {
	UserID     int64     `json:"userId" bson:"userId"`
	Name       string    `json:"name" bson:"name"`
	Department string    `json:"department" bson:"department"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	Status     Status    `json:"status" bson:"status"`
	MarkedBy   string    `json:"markedBy" bson:"markedBy"`
}

type LogPage struct {
	Logs  []LogRow `json:"logs"`
	Total int64    `json:"total"`
}

// LogFilter selects log rows. Zero values mean "no constraint".
// Since is inclusive and Until exclusive.
type LogFilter struct {
	UserID     int64
	Name       string
	Department string
	Status     Status
	Since      time.Time
	Until      time.Time
	Page       int64
	Limit      int64
}

// Narrow intersects the filter's time window with [since, until).
func (f *LogFilter) Narrow(since, until time.Time) {
	if f.Since.IsZero() || since.After(f.Since) {
		f.Since = since
	}
	if f.Until.IsZero() || (!until.IsZero() && until.Before(f.Until)) {
		f.Until = until
	}
}

// MatchesEmployee applies the identifier, name and department constraints.
func (f LogFilter) MatchesEmployee(e *Employee) bool {
	if f.UserID != 0 && e.UserID != f.UserID {
		return false
	}
	if f.Name != "" {
		needle := strings.ToLower(f.Name)
		if !strings.Contains(strings.ToLower(e.FirstName), needle) &&
			!strings.Contains(strings.ToLower(e.LastName), needle) &&
			!strings.Contains(strings.ToLower(e.FullName()), needle) {
			return false
		}
	}
	if f.Department != "" && !strings.Contains(strings.ToLower(e.Department), strings.ToLower(f.Department)) {
		return false
	}
	return true
}

// MatchesEntry applies the time window and status constraints.
func (f LogFilter) MatchesEntry(entry LogEntry) bool {
	if !f.Since.IsZero() && entry.Timestamp.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && !entry.Timestamp.Before(f.Until) {
		return false
	}
	if f.Status != "" && entry.Status != f.Status {
		return false
	}
	return true
}

// Paginate reports the skip and limit to apply; limit 0 returns everything.
// A skip past the largest int64 saturates, selecting nothing.
func (f LogFilter) Paginate() (skip, limit int64) {
	if f.Limit <= 0 {
		return 0, 0
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt64/f.Limit {
		return math.MaxInt64, f.Limit
	}
	return (page - 1) * f.Limit, f.Limit
}

type TodayStats struct {
	TotalPresent int `json:"totalPresent"`
	CurrentlyIn  int `json:"currentlyIn"`
	CurrentlyOut int `json:"currentlyOut"`
}

// TodayRow groups one employee's events inside today's window.
type TodayRow struct {
	UserID        int64      `json:"userId" bson:"userId"`
	Name          string     `json:"name" bson:"name"`
	Department    string     `json:"department" bson:"department"`
	CurrentStatus Status     `json:"currentStatus" bson:"currentStatus"`
	Events        []LogEntry `json:"events" bson:"events"`
}

type TodaySummary struct {
	Stats      TodayStats `json:"stats"`
	Attendance []TodayRow `json:"attendance"`
}

// ReportRow is one employee's presence over a date range.
type ReportRow struct {
	UserID      int64    `json:"userId"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	DaysPresent int      `json:"daysPresent"`
	WorkingDays int      `json:"workingDays"`
	AbsentDays  []string `json:"absentDays"`
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDay parses a YYYY-MM-DD calendar date as midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}

// Report is the per-employee presence summary over an inclusive date range.
type Report struct {
	From        string      `json:"from"`
	To          string      `json:"to"`
	WorkingDays int         `json:"workingDays"`
	Rows        []ReportRow `json:"report"`
}
