package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weekdays = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

func TestWorkingDaysWeekdays(t *testing.T) {
	cal, err := NewCalendar(weekdays, time.UTC)
	require.NoError(t, err)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	days, err := cal.WorkingDays(from, to)
	require.NoError(t, err)

	assert.Len(t, days, 23)
	assert.Equal(t, from, days[0])
	assert.Equal(t, to, days[len(days)-1])
	for _, d := range days {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
}

func TestWorkingDaysTruncatesToMidnight(t *testing.T) {
	cal, err := NewCalendar(weekdays, time.UTC)
	require.NoError(t, err)

	days, err := cal.WorkingDays(
		time.Date(2024, 5, 6, 15, 30, 0, 0, time.UTC),
		time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC),
	}, days)
}

func TestWorkingDaysEmptyRange(t *testing.T) {
	cal, err := NewCalendar(weekdays, time.UTC)
	require.NoError(t, err)

	days, err := cal.WorkingDays(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestWorkingDaysSingleDay(t *testing.T) {
	cal, err := NewCalendar(weekdays, time.UTC)
	require.NoError(t, err)

	friday := time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC)
	days, err := cal.WorkingDays(friday, friday)
	require.NoError(t, err)
	assert.Len(t, days, 1)

	saturday := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)
	days, err = cal.WorkingDays(saturday, saturday)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestNewCalendarRejectsBadRule(t *testing.T) {
	_, err := NewCalendar("FREQ=SOMETIMES", time.UTC)
	assert.Error(t, err)
}
