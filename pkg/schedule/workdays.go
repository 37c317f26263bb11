// Package schedule expands the configured working-day recurrence rule into calendar days.
package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Calendar answers which calendar days are working days.
type Calendar struct {
	option rrule.ROption
	loc    *time.Location
}

// NewCalendar parses an RRULE such as "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR".
func NewCalendar(rule string, loc *time.Location) (*Calendar, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid working-day rule %q: %w", rule, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Calendar{option: *opt, loc: loc}, nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WorkingDays returns the midnight of every working day in [from, to], both inclusive.
func (c *Calendar) WorkingDays(from, to time.Time) ([]time.Time, error) {
	from = startOfDay(from, c.loc)
	to = startOfDay(to, c.loc)
	if to.Before(from) {
		return nil, nil
	}

	opt := c.option
	opt.Dtstart = from
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("build working-day rule: %w", err)
	}

	days := r.Between(from, to, true)
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		out = append(out, startOfDay(d, c.loc))
	}
	return out, nil
}
