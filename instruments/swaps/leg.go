package swaps

import (
	"fmt"
	"time"

	"github.com/meenmo/swapleg/calendar"
	"github.com/meenmo/swapleg/swap"
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/swap/value"
)

// LegTerms are the trade-specific inputs applied on top of a convention.
type LegTerms struct {
	PayReceive market.PayReceive
	StartDate  time.Time
	EndDate    time.Time
	Notional   value.Schedule
	// FixedRate is required for fixed legs and ignored for floating ones.
	FixedRate *value.Schedule

	InitialExchange      bool
	IntermediateExchange bool
	FinalExchange        bool
}

// Params builds the swap leg parameters for terms under the convention.
func (c LegConvention) Params(terms LegTerms) (swap.SwapLegParams, error) {
	adj := calendar.BusinessDayAdjustment{Convention: c.BusinessDayAdjustment, Calendar: c.Calendar}

	var calc swap.RateCalculation
	if c.IsFixed() {
		if terms.FixedRate == nil {
			return swap.SwapLegParams{}, fmt.Errorf("Params: %s: fixed rate is required", c.Name)
		}
		calc = swap.FixedRateCalculation{DayCount: c.DayCount, Rate: terms.FixedRate.Clone()}
	} else {
		calc = swap.IborRateCalculation{
			DayCount:     c.DayCount,
			Index:        c.Index,
			FixingOffset: calendar.OfBusinessDays(-c.FixingLagDays, c.FixingCalendar),
		}
	}

	return swap.SwapLegParams{
		PayReceive: terms.PayReceive,
		AccrualSchedule: swap.PeriodicSchedule{
			StartDate:             terms.StartDate,
			EndDate:               terms.EndDate,
			Frequency:             c.AccrualFrequency,
			BusinessDayAdjustment: adj,
			StubConvention:        c.StubConvention,
			RollConvention:        c.RollConvention,
		},
		PaymentSchedule: swap.PaymentSchedule{
			PaymentFrequency:  c.PaymentFrequency,
			PaymentOffset:     calendar.OfBusinessDays(c.PayDelayDays, c.Calendar),
			CompoundingMethod: c.CompoundingMethod,
		},
		NotionalSchedule: swap.NotionalSchedule{
			Currency:             c.Currency,
			Amount:               terms.Notional.Clone(),
			InitialExchange:      terms.InitialExchange,
			IntermediateExchange: terms.IntermediateExchange,
			FinalExchange:        terms.FinalExchange,
		},
		Calculation: calc,
	}, nil
}

// Legs builds both legs of an IRS. The fixed leg takes direction dir and the
// floating leg the opposite one.
func (p IRSPreset) Legs(dir market.PayReceive, start, end time.Time, notional, fixedRate value.Schedule) (fixed, float swap.SwapLegParams, err error) {
	fixed, err = p.FixedLeg.Params(LegTerms{
		PayReceive: dir,
		StartDate:  start,
		EndDate:    end,
		Notional:   notional,
		FixedRate:  &fixedRate,
	})
	if err != nil {
		return swap.SwapLegParams{}, swap.SwapLegParams{}, err
	}
	float, err = p.FloatLeg.Params(LegTerms{
		PayReceive: opposite(dir),
		StartDate:  start,
		EndDate:    end,
		Notional:   notional,
	})
	if err != nil {
		return swap.SwapLegParams{}, swap.SwapLegParams{}, err
	}
	return fixed, float, nil
}

// Legs builds the pay and receive legs of a basis swap.
func (p BasisPreset) Legs(start, end time.Time, notional value.Schedule) (pay, rec swap.SwapLegParams, err error) {
	terms := LegTerms{StartDate: start, EndDate: end, Notional: notional}
	terms.PayReceive = market.Pay
	if pay, err = p.PayLeg.Params(terms); err != nil {
		return swap.SwapLegParams{}, swap.SwapLegParams{}, err
	}
	terms.PayReceive = market.Receive
	if rec, err = p.RecLeg.Params(terms); err != nil {
		return swap.SwapLegParams{}, swap.SwapLegParams{}, err
	}
	return pay, rec, nil
}

func opposite(dir market.PayReceive) market.PayReceive {
	if dir == market.Pay {
		return market.Receive
	}
	return market.Pay
}
