package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownConvention is returned for an empty or unrecognised business day convention.
var ErrUnknownConvention = errors.New("unknown business day convention")

// BusinessDayConvention rolls a non-business day onto a business day.
type BusinessDayConvention string

const (
	NoAdjust          BusinessDayConvention = "NO_ADJUST"
	Following         BusinessDayConvention = "FOLLOWING"
	ModifiedFollowing BusinessDayConvention = "MODIFIED_FOLLOWING"
	Preceding         BusinessDayConvention = "PRECEDING"
	ModifiedPreceding BusinessDayConvention = "MODIFIED_PRECEDING"
)

// IsValid reports whether bdc is one of the known conventions.
func (bdc BusinessDayConvention) IsValid() bool {
	switch bdc {
	case NoAdjust, Following, ModifiedFollowing, Preceding, ModifiedPreceding:
		return true
	}
	return false
}

// Apply rolls t under the convention on cal.
func (bdc BusinessDayConvention) Apply(cal Calendar, t time.Time) (time.Time, error) {
	switch bdc {
	case NoAdjust:
		return t, nil
	case Following:
		return cal.Following(t), nil
	case ModifiedFollowing:
		return cal.ModifiedFollowing(t), nil
	case Preceding:
		return cal.Preceding(t), nil
	case ModifiedPreceding:
		return cal.ModifiedPreceding(t), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownConvention, bdc)
	}
}

// BusinessDayAdjustment pairs a convention with the calendar it rolls against.
type BusinessDayAdjustment struct {
	Convention BusinessDayConvention
	Calendar   CalendarID
}

// NoAdjustment leaves every date unchanged.
var NoAdjustment = BusinessDayAdjustment{Convention: NoAdjust, Calendar: NoHolidays}

// Validate checks that the convention and calendar can be resolved.
func (a BusinessDayAdjustment) Validate() error {
	if a.Convention == NoAdjust {
		return nil
	}
	if !a.Convention.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownConvention, a.Convention)
	}
	_, err := Of(a.Calendar)
	return err
}

// Adjust rolls t onto a business day. NO_ADJUST never consults the calendar.
func (a BusinessDayAdjustment) Adjust(t time.Time) (time.Time, error) {
	if a.Convention == NoAdjust {
		return t, nil
	}
	cal, err := Of(a.Calendar)
	if err != nil {
		return time.Time{}, err
	}
	return a.Convention.Apply(cal, t)
}

// DaysAdjustment shifts a date by a signed number of business days and then
// optionally applies a business day adjustment.
//
// A zero Adjustment (empty convention) means no trailing adjustment.
type DaysAdjustment struct {
	Days       int
	Calendar   CalendarID
	Adjustment BusinessDayAdjustment
}

// OfBusinessDays builds a DaysAdjustment without a trailing adjustment.
func OfBusinessDays(days int, cal CalendarID) DaysAdjustment {
	return DaysAdjustment{Days: days, Calendar: cal}
}

// Validate checks that every calendar and convention referenced can be resolved.
func (a DaysAdjustment) Validate() error {
	if _, err := Of(a.Calendar); err != nil {
		return err
	}
	if a.Adjustment.Convention == "" {
		return nil
	}
	return a.Adjustment.Validate()
}

// Adjust shifts t by Days business days on Calendar.
func (a DaysAdjustment) Adjust(t time.Time) (time.Time, error) {
	cal, err := Of(a.Calendar)
	if err != nil {
		return time.Time{}, err
	}
	shifted := cal.AddBusinessDays(t, a.Days)
	if a.Adjustment.Convention == "" {
		return shifted, nil
	}
	return a.Adjustment.Adjust(shifted)
}
