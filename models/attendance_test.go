package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusToggled(t *testing.T) {
	assert.Equal(t, StatusOut, StatusIn.Toggled())
	assert.Equal(t, StatusIn, StatusOut.Toggled())
	assert.Equal(t, StatusIn, Status("").Toggled(), "an unset status counts as OUT")

	for _, s := range []Status{StatusIn, StatusOut} {
		assert.Equal(t, s, s.Toggled().Toggled())
	}
}

func TestLogFilterMatchesEmployee(t *testing.T) {
	e := &Employee{UserID: 20001, FirstName: "Jane", LastName: "Doe", Department: "Engineering"}

	tests := []struct {
		name   string
		filter LogFilter
		want   bool
	}{
		{"empty filter", LogFilter{}, true},
		{"exact id", LogFilter{UserID: 20001}, true},
		{"other id", LogFilter{UserID: 20002}, false},
		{"first name substring", LogFilter{Name: "jan"}, true},
		{"last name any case", LogFilter{Name: "DOE"}, true},
		{"full name", LogFilter{Name: "jane d"}, true},
		{"unrelated name", LogFilter{Name: "smith"}, false},
		{"department substring", LogFilter{Department: "eng"}, true},
		{"other department", LogFilter{Department: "finance"}, false},
		{"all constraints", LogFilter{UserID: 20001, Name: "doe", Department: "Engineer"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.MatchesEmployee(e))
		})
	}
}

func TestLogFilterMatchesEntry(t *testing.T) {
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	f := LogFilter{Since: day, Until: day.AddDate(0, 0, 1)}

	assert.True(t, f.MatchesEntry(LogEntry{Timestamp: day, Status: StatusIn}), "since is inclusive")
	assert.True(t, f.MatchesEntry(LogEntry{Timestamp: day.Add(23*time.Hour + 59*time.Minute), Status: StatusOut}))
	assert.False(t, f.MatchesEntry(LogEntry{Timestamp: day.AddDate(0, 0, 1), Status: StatusIn}), "until is exclusive")
	assert.False(t, f.MatchesEntry(LogEntry{Timestamp: day.Add(-time.Millisecond), Status: StatusIn}))

	f.Status = StatusIn
	assert.True(t, f.MatchesEntry(LogEntry{Timestamp: day.Add(time.Hour), Status: StatusIn}))
	assert.False(t, f.MatchesEntry(LogEntry{Timestamp: day.Add(time.Hour), Status: StatusOut}))
}

func TestLogFilterNarrow(t *testing.T) {
	d1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	d5 := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	d10 := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	var f LogFilter
	f.Narrow(d1, time.Time{})
	assert.Equal(t, d1, f.Since)
	assert.True(t, f.Until.IsZero())

	f.Narrow(time.Time{}, d10)
	assert.Equal(t, d1, f.Since)
	assert.Equal(t, d10, f.Until)

	f.Narrow(d5, d5.AddDate(0, 0, 1))
	assert.Equal(t, d5, f.Since)
	assert.Equal(t, d5.AddDate(0, 0, 1), f.Until)

	f.Narrow(d1, d10)
	assert.Equal(t, d5, f.Since, "narrowing never widens")
	assert.Equal(t, d5.AddDate(0, 0, 1), f.Until)
}

func TestLogFilterPaginate(t *testing.T) {
	skip, limit := LogFilter{}.Paginate()
	assert.Zero(t, skip)
	assert.Zero(t, limit)

	skip, limit = LogFilter{Limit: 10}.Paginate()
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(10), limit)

	skip, limit = LogFilter{Page: 3, Limit: 10}.Paginate()
	assert.Equal(t, int64(20), skip)
	assert.Equal(t, int64(10), limit)

	skip, limit = LogFilter{Page: math.MaxInt64, Limit: 1000}.Paginate()
	assert.Equal(t, int64(math.MaxInt64), skip)
	assert.Equal(t, int64(1000), limit)
}

func TestEmployeeSummary(t *testing.T) {
	ts := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	e := Employee{
		UserID:        20001,
		FirstName:     "Jane",
		LastName:      "Doe",
		Department:    "Engineering",
		CurrentStatus: StatusIn,
		Attendance:    []LogEntry{{Timestamp: ts, Status: StatusIn, MarkedBy: "op1"}},
	}

	s := e.Summary()
	assert.Equal(t, "Jane Doe", s.Name)
	require.NotNil(t, s.LastAttendance)
	assert.Equal(t, StatusIn, s.LastAttendance.Status)

	e.Attendance = nil
	assert.Nil(t, e.Summary().LastAttendance)
}

func TestParseDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	day, err := ParseDay("2024-05-06", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, loc), day)
	assert.Equal(t, time.Date(2024, 5, 5, 17, 0, 0, 0, time.UTC), day.UTC())

	_, err = ParseDay("06/05/2024", loc)
	assert.Error(t, err)
}

func TestRoleSets(t *testing.T) {
	assert.True(t, MarkAttendanceRoles.Contains(RoleOperator))
	assert.True(t, MarkAttendanceRoles.Contains(RoleAdmin))
	assert.False(t, MarkAttendanceRoles.Contains(RoleHR))
	assert.False(t, ReadLogsRoles.Contains(RoleOperator))
	assert.True(t, AdminOnly.Contains(RoleAdmin))
	assert.False(t, AdminOnly.Contains(RoleHR))
	assert.Equal(t, []string{"hr", "admin"}, ReadLogsRoles.Strings())

	assert.False(t, Role("root").Valid())
}
