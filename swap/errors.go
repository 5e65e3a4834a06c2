package swap

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by NewSwapLegDefinition and Expand matches
// exactly one of these with errors.Is.
var (
	// ErrSchedule covers malformed or indivisible date ranges and frequency ratios.
	ErrSchedule = errors.New("schedule error")
	// ErrRate covers missing or unusable fixing offsets on rate and FX-reset observations.
	ErrRate = errors.New("rate error")
	// ErrConfiguration covers structurally invalid definitions.
	ErrConfiguration = errors.New("configuration error")
)

// ScheduleError reports a date range or frequency that cannot be scheduled.
type ScheduleError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ScheduleError) Error() string { return format(e.Op, "schedule", e.Reason, e.Err) }

func (e *ScheduleError) Unwrap() []error { return unwrap(ErrSchedule, e.Err) }

// RateError reports a rate or FX-reset observation that cannot be dated.
type RateError struct {
	Op     string
	Reason string
	Err    error
}

func (e *RateError) Error() string { return format(e.Op, "rate", e.Reason, e.Err) }

func (e *RateError) Unwrap() []error { return unwrap(ErrRate, e.Err) }

// ConfigurationError reports a structurally invalid leg definition.
type ConfigurationError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string { return format(e.Op, "configuration", e.Reason, e.Err) }

func (e *ConfigurationError) Unwrap() []error { return unwrap(ErrConfiguration, e.Err) }

func format(op, kind, reason string, cause error) string {
	msg := fmt.Sprintf("%s: %s: %s", op, kind, reason)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return msg
}

func unwrap(kind, cause error) []error {
	if cause == nil {
		return []error{kind}
	}
	return []error{kind, cause}
}

func scheduleErr(op string, cause error, reason string, args ...any) error {
	return &ScheduleError{Op: op, Reason: fmt.Sprintf(reason, args...), Err: cause}
}

func rateErr(op string, cause error, reason string, args ...any) error {
	return &RateError{Op: op, Reason: fmt.Sprintf(reason, args...), Err: cause}
}

func configErr(op string, cause error, reason string, args ...any) error {
	return &ConfigurationError{Op: op, Reason: fmt.Sprintf(reason, args...), Err: cause}
}

// IsScheduleError reports whether err is a ScheduleError.
func IsScheduleError(err error) bool {
	return errors.Is(err, ErrSchedule)
}

// IsRateError reports whether err is a RateError.
func IsRateError(err error) bool {
	return errors.Is(err, ErrRate)
}

// IsConfigurationError reports whether err is a ConfigurationError.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
