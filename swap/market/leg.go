package market

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/swapleg/utils"
)

// Currency is an ISO-4217 code.
type Currency string

const (
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	USD Currency = "USD"
	JPY Currency = "JPY"
)

// CurrencyAmount is a signed amount in one currency.
type CurrencyAmount struct {
	Currency Currency
	Amount   decimal.Decimal
}

// PayReceive is the direction of a leg from the holder's perspective.
type PayReceive string

const (
	Pay     PayReceive = "PAY"
	Receive PayReceive = "RECEIVE"
)

// IsValid reports whether p is PAY or RECEIVE.
func (p PayReceive) IsValid() bool {
	return p == Pay || p == Receive
}

// Normalize applies the sign convention: PAY amounts are negative, RECEIVE positive.
func (p PayReceive) Normalize(amount decimal.Decimal) decimal.Decimal {
	if p == Pay {
		return amount.Abs().Neg()
	}
	return amount.Abs()
}

// Frequency enumerates periodic frequencies in months.
type Frequency int

const (
	FreqAnnual    Frequency = 12
	FreqSemi      Frequency = 6
	FreqQuarterly Frequency = 3
	FreqBimonthly Frequency = 2
	FreqMonthly   Frequency = 1
)

// Months returns the number of months per period.
func (f Frequency) Months() int {
	return int(f)
}

func (f Frequency) String() string {
	if f%12 == 0 && f > 0 {
		return fmt.Sprintf("P%dY", int(f)/12)
	}
	return fmt.Sprintf("P%dM", int(f))
}

// ParseFrequency converts tenor strings like "1M", "P3M", "1Y" to a Frequency.
func ParseFrequency(tenor string) (Frequency, error) {
	s := strings.TrimPrefix(strings.TrimSpace(strings.ToUpper(tenor)), "P")
	var mult int
	switch {
	case strings.HasSuffix(s, "M"):
		mult = 1
	case strings.HasSuffix(s, "Y"):
		mult = 12
	default:
		return 0, fmt.Errorf("ParseFrequency: unsupported tenor %q", tenor)
	}
	v, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("ParseFrequency: invalid tenor %q", tenor)
	}
	return Frequency(v * mult), nil
}

// DayCount enum.
type DayCount string

const (
	Act360     DayCount = "ACT/360"
	Act365F    DayCount = "ACT/365F"
	ActActISDA DayCount = "ACT/ACT ISDA"
	Dc30360    DayCount = "30/360"
	Dc30E360   DayCount = "30E/360"
)

// IsValid reports whether the convention has a year fraction formula.
func (dc DayCount) IsValid() bool {
	return utils.IsKnownDayCount(string(dc))
}

// YearFraction returns the accrual fraction between two adjusted dates.
func (dc DayCount) YearFraction(start, end time.Time) (float64, error) {
	return utils.YearFraction(start, end, string(dc))
}

// CompoundingMethod tags how accrual periods of one payment period are combined.
// The expansion engine copies it through and never compounds.
type CompoundingMethod string

const (
	CompoundingNone            CompoundingMethod = "NONE"
	CompoundingStraight        CompoundingMethod = "STRAIGHT"
	CompoundingFlat            CompoundingMethod = "FLAT"
	CompoundingSpreadExclusive CompoundingMethod = "SPREAD_EXCLUSIVE"
)

// IsValid reports whether m is a known compounding method.
func (m CompoundingMethod) IsValid() bool {
	switch m {
	case CompoundingNone, CompoundingStraight, CompoundingFlat, CompoundingSpreadExclusive:
		return true
	}
	return false
}

// StubConvention selects how a date range that is not a whole number of periods is handled.
type StubConvention string

const (
	// StubNone requires the range to divide exactly.
	StubNone StubConvention = "NONE"
	// StubShortFinal rolls forward from the start date; the last period is short.
	StubShortFinal StubConvention = "SHORT_FINAL"
	// StubShortInitial rolls backward from the end date; the first period is short.
	StubShortInitial StubConvention = "SHORT_INITIAL"
)

// RollConvention for month-end handling.
type RollConvention string

const (
	RollNone RollConvention = "NONE"
	// RollEOM keeps month-end anchors on the last day of every month.
	RollEOM RollConvention = "EOM"
)
