package swaps

import (
	"github.com/meenmo/swapleg/calendar"
	"github.com/meenmo/swapleg/swap/market"
)

// LegConvention holds the market-standard terms of one swap leg. A convention
// with an empty Index is a fixed leg.
type LegConvention struct {
	Name                  string
	Currency              market.Currency
	Index                 market.IborIndex
	DayCount              market.DayCount
	AccrualFrequency      market.Frequency
	PaymentFrequency      market.Frequency
	CompoundingMethod     market.CompoundingMethod
	FixingLagDays         int
	FixingCalendar        calendar.CalendarID
	PayDelayDays          int
	BusinessDayAdjustment calendar.BusinessDayConvention
	RollConvention        market.RollConvention
	StubConvention        market.StubConvention
	Calendar              calendar.CalendarID
}

// IsFixed reports whether the convention describes a fixed-rate leg.
func (c LegConvention) IsFixed() bool { return c.Index == "" }

// IRSPreset pairs a fixed leg with the floating leg it trades against.
type IRSPreset struct {
	FixedLeg LegConvention
	FloatLeg LegConvention
}

// BasisPreset pairs two floating legs in the same currency.
type BasisPreset struct {
	PayLeg LegConvention
	RecLeg LegConvention
}

// Floating leg conventions.
var (
	// GBP LIBOR fixes on the first day of the period in London.
	GBPLIBOR1MFloat = LegConvention{
		Name:                  "GBP-LIBOR-1M",
		Currency:              market.GBP,
		Index:                 market.GBPLIBOR1M,
		DayCount:              market.Act365F,
		AccrualFrequency:      market.FreqMonthly,
		PaymentFrequency:      market.FreqMonthly,
		CompoundingMethod:     market.CompoundingNone,
		FixingLagDays:         0,
		FixingCalendar:        calendar.GBLO,
		PayDelayDays:          0,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortFinal,
		Calendar:              calendar.GBLO,
	}

	GBPLIBOR3MFloat = LegConvention{
		Name:                  "GBP-LIBOR-3M",
		Currency:              market.GBP,
		Index:                 market.GBPLIBOR3M,
		DayCount:              market.Act365F,
		AccrualFrequency:      market.FreqQuarterly,
		PaymentFrequency:      market.FreqQuarterly,
		CompoundingMethod:     market.CompoundingNone,
		FixingCalendar:        calendar.GBLO,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortFinal,
		Calendar:              calendar.GBLO,
	}

	GBPLIBOR6MFloat = LegConvention{
		Name:                  "GBP-LIBOR-6M",
		Currency:              market.GBP,
		Index:                 market.GBPLIBOR6M,
		DayCount:              market.Act365F,
		AccrualFrequency:      market.FreqSemi,
		PaymentFrequency:      market.FreqSemi,
		CompoundingMethod:     market.CompoundingNone,
		FixingCalendar:        calendar.GBLO,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortFinal,
		Calendar:              calendar.GBLO,
	}

	EURIBOR3MFloat = LegConvention{
		Name:                  "EUR-EURIBOR-3M",
		Currency:              market.EUR,
		Index:                 market.EURIBOR3M,
		DayCount:              market.Act360,
		AccrualFrequency:      market.FreqQuarterly,
		PaymentFrequency:      market.FreqQuarterly,
		CompoundingMethod:     market.CompoundingNone,
		FixingLagDays:         2,
		FixingCalendar:        calendar.TARGET,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortInitial,
		Calendar:              calendar.TARGET,
	}

	EURIBOR6MFloat = LegConvention{
		Name:                  "EUR-EURIBOR-6M",
		Currency:              market.EUR,
		Index:                 market.EURIBOR6M,
		DayCount:              market.Act360,
		AccrualFrequency:      market.FreqSemi,
		PaymentFrequency:      market.FreqSemi,
		CompoundingMethod:     market.CompoundingNone,
		FixingLagDays:         2,
		FixingCalendar:        calendar.TARGET,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortInitial,
		Calendar:              calendar.TARGET,
	}

	// USD LIBOR fixes two London business days before a New York accrual start.
	USDLIBOR3MFloat = LegConvention{
		Name:                  "USD-LIBOR-3M",
		Currency:              market.USD,
		Index:                 market.USDLIBOR3M,
		DayCount:              market.Act360,
		AccrualFrequency:      market.FreqQuarterly,
		PaymentFrequency:      market.FreqQuarterly,
		CompoundingMethod:     market.CompoundingNone,
		FixingLagDays:         2,
		FixingCalendar:        calendar.GBLO,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortFinal,
		Calendar:              calendar.USD,
	}
)

// Fixed leg conventions.
var (
	GBPFixedAnnual = LegConvention{
		Name:                  "GBP-FIXED-1Y",
		Currency:              market.GBP,
		DayCount:              market.Act365F,
		AccrualFrequency:      market.FreqAnnual,
		PaymentFrequency:      market.FreqAnnual,
		CompoundingMethod:     market.CompoundingNone,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortFinal,
		Calendar:              calendar.GBLO,
	}

	// Pre-2020 EURIBOR swaps pay the fixed leg annually on 30/360.
	EURFixedAnnual = LegConvention{
		Name:                  "EUR-FIXED-1Y",
		Currency:              market.EUR,
		DayCount:              market.Dc30360,
		AccrualFrequency:      market.FreqAnnual,
		PaymentFrequency:      market.FreqAnnual,
		CompoundingMethod:     market.CompoundingNone,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortInitial,
		Calendar:              calendar.TARGET,
	}

	USDFixedSemi = LegConvention{
		Name:                  "USD-FIXED-6M",
		Currency:              market.USD,
		DayCount:              market.Dc30360,
		AccrualFrequency:      market.FreqSemi,
		PaymentFrequency:      market.FreqSemi,
		CompoundingMethod:     market.CompoundingNone,
		BusinessDayAdjustment: calendar.ModifiedFollowing,
		RollConvention:        market.RollEOM,
		StubConvention:        market.StubShortFinal,
		Calendar:              calendar.USD,
	}
)

// Preset swap structures.
var (
	IrsGBPLibor6M = IRSPreset{FixedLeg: GBPFixedAnnual, FloatLeg: GBPLIBOR6MFloat}
	IrsEuribor3M  = IRSPreset{FixedLeg: EURFixedAnnual, FloatLeg: EURIBOR3MFloat}
	IrsEuribor6M  = IRSPreset{FixedLeg: EURFixedAnnual, FloatLeg: EURIBOR6MFloat}
	IrsUSDLibor3M = IRSPreset{FixedLeg: USDFixedSemi, FloatLeg: USDLIBOR3MFloat}

	// Pay the longer tenor, receive the shorter one.
	BasisGBPLibor3M6M = BasisPreset{PayLeg: GBPLIBOR6MFloat, RecLeg: GBPLIBOR3MFloat}
	BasisEuribor3M6M  = BasisPreset{PayLeg: EURIBOR6MFloat, RecLeg: EURIBOR3MFloat}
)

var conventions = map[string]LegConvention{}

func init() {
	for _, c := range []LegConvention{
		GBPLIBOR1MFloat, GBPLIBOR3MFloat, GBPLIBOR6MFloat,
		EURIBOR3MFloat, EURIBOR6MFloat, USDLIBOR3MFloat,
		GBPFixedAnnual, EURFixedAnnual, USDFixedSemi,
	} {
		conventions[c.Name] = c
	}
}

// Lookup returns the convention registered under name.
func Lookup(name string) (LegConvention, bool) {
	c, ok := conventions[name]
	return c, ok
}
