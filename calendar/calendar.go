package calendar

import (
	"errors"
	"fmt"
	"time"
)

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	// GBLO is the London banking calendar.
	GBLO CalendarID = "GBLO"
	// TARGET is the euro TARGET2 settlement calendar.
	TARGET CalendarID = "TARGET"
	// USD is the Federal Reserve settlement calendar (Sunday holidays roll to Monday).
	USD CalendarID = "USD"
	// SatSun treats only Saturdays and Sundays as holidays.
	SatSun CalendarID = "SAT_SUN"
	// NoHolidays treats every day as a business day.
	NoHolidays CalendarID = "NO_HOLIDAYS"
)

var (
	// ErrUnknownCalendar is returned when a calendar identifier has no holiday rules.
	ErrUnknownCalendar = errors.New("unknown holiday calendar")
	// ErrMissingCalendar is returned when an adjustment that needs a calendar has none.
	ErrMissingCalendar = errors.New("missing holiday calendar")
)

// Calendar answers business-day questions for one holiday calendar.
//
// The zero value is not usable; obtain a Calendar with Of.
type Calendar struct {
	id       CalendarID
	weekends bool
	holiday  func(t time.Time) bool
}

var rules = map[CalendarID]Calendar{
	GBLO:       {id: GBLO, weekends: true, holiday: isLondonHoliday},
	TARGET:     {id: TARGET, weekends: true, holiday: isTargetHoliday},
	USD:        {id: USD, weekends: true, holiday: isFedHoliday},
	SatSun:     {id: SatSun, weekends: true, holiday: func(time.Time) bool { return false }},
	NoHolidays: {id: NoHolidays, weekends: false, holiday: func(time.Time) bool { return false }},
}

// Of returns the calendar registered under id.
func Of(id CalendarID) (Calendar, error) {
	if id == "" {
		return Calendar{}, ErrMissingCalendar
	}
	c, ok := rules[id]
	if !ok {
		return Calendar{}, fmt.Errorf("%w: %q", ErrUnknownCalendar, id)
	}
	return c, nil
}

// IDs lists the known calendar identifiers.
func IDs() []CalendarID {
	return []CalendarID{GBLO, TARGET, USD, SatSun, NoHolidays}
}

// ID returns the calendar identifier.
func (c Calendar) ID() CalendarID {
	return c.id
}

// IsBusinessDay checks weekends and holiday rules.
func (c Calendar) IsBusinessDay(t time.Time) bool {
	if c.weekends && (t.Weekday() == time.Saturday || t.Weekday() == time.Sunday) {
		return false
	}
	return !c.holiday(t)
}

// Following returns t if it is a business day, otherwise the next business day.
func (c Calendar) Following(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// Preceding returns t if it is a business day, otherwise the previous business day.
func (c Calendar) Preceding(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// ModifiedFollowing applies Following unless that crosses into the next month.
func (c Calendar) ModifiedFollowing(t time.Time) time.Time {
	adj := c.Following(t)
	if adj.Month() != t.Month() {
		return c.Preceding(t)
	}
	return adj
}

// ModifiedPreceding applies Preceding unless that crosses into the previous month.
func (c Calendar) ModifiedPreceding(t time.Time) time.Time {
	adj := c.Preceding(t)
	if adj.Month() != t.Month() {
		return c.Following(t)
	}
	return adj
}

// AddBusinessDays advances n business days (n can be negative).
func (c Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}
