package swap

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/swapleg/calendar"
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/swap/value"
)

// PaymentSchedule groups accrual periods into payment periods.
//
// PaymentFrequency must be a whole multiple of the accrual frequency.
// An empty CompoundingMethod means NONE.
type PaymentSchedule struct {
	PaymentFrequency  market.Frequency
	PaymentOffset     calendar.DaysAdjustment
	CompoundingMethod market.CompoundingMethod
}

// FxResetCalculation makes the notional a reference-currency amount that is
// converted on a fixing date for every payment period.
type FxResetCalculation struct {
	ReferenceCurrency market.Currency
	Index             market.FxIndex
	FixingOffset      calendar.DaysAdjustment
}

// NotionalSchedule is the (possibly stepped) principal of the leg.
type NotionalSchedule struct {
	Currency             market.Currency
	Amount               value.Schedule
	InitialExchange      bool
	IntermediateExchange bool
	FinalExchange        bool
	FxReset              *FxResetCalculation
}

// NotionalScheduleOf builds a constant notional with no exchanges.
func NotionalScheduleOf(ccy market.Currency, amount decimal.Decimal) NotionalSchedule {
	return NotionalSchedule{Currency: ccy, Amount: value.Constant(amount)}
}

func (n NotionalSchedule) clone() NotionalSchedule {
	out := n
	out.Amount = n.Amount.Clone()
	if n.FxReset != nil {
		fx := *n.FxReset
		out.FxReset = &fx
	}
	return out
}

// RateCalculation is FixedRateCalculation or IborRateCalculation.
type RateCalculation interface {
	rateCalculation()
}

// FixedRateCalculation pays a known, possibly stepped, rate.
type FixedRateCalculation struct {
	DayCount market.DayCount
	Rate     value.Schedule
}

// IborRateCalculation observes a term index, fixed relative to each accrual start.
type IborRateCalculation struct {
	DayCount     market.DayCount
	Index        market.IborIndex
	FixingOffset calendar.DaysAdjustment
}

func (FixedRateCalculation) rateCalculation() {}
func (IborRateCalculation) rateCalculation()  {}

func cloneCalculation(rc RateCalculation) RateCalculation {
	switch c := rc.(type) {
	case FixedRateCalculation:
		c.Rate = c.Rate.Clone()
		return c
	case *FixedRateCalculation:
		if c == nil {
			return nil
		}
		cp := *c
		cp.Rate = c.Rate.Clone()
		return cp
	case *IborRateCalculation:
		if c == nil {
			return nil
		}
		return *c
	default:
		return rc
	}
}

// SwapLegParams defines inputs to construct a leg definition.
type SwapLegParams struct {
	PayReceive       market.PayReceive
	AccrualSchedule  PeriodicSchedule
	PaymentSchedule  PaymentSchedule
	NotionalSchedule NotionalSchedule
	Calculation      RateCalculation
}

// SwapLegDefinition is a validated, immutable rate-calculation swap leg.
//
// Obtain one with NewSwapLegDefinition; the zero value fails to expand.
type SwapLegDefinition struct {
	payReceive       market.PayReceive
	accrualSchedule  PeriodicSchedule
	paymentSchedule  PaymentSchedule
	notionalSchedule NotionalSchedule
	calculation      RateCalculation
	startDate        time.Time
	endDate          time.Time
}

// NewSwapLegDefinition validates params and derives the effective dates.
//
// The definition owns copies of every schedule; later changes to params do not affect it.
func NewSwapLegDefinition(params SwapLegParams) (SwapLegDefinition, error) {
	p := params
	p.NotionalSchedule = params.NotionalSchedule.clone()
	p.Calculation = cloneCalculation(params.Calculation)
	if p.PaymentSchedule.CompoundingMethod == "" {
		p.PaymentSchedule.CompoundingMethod = market.CompoundingNone
	}
	if err := validateParams(p); err != nil {
		return SwapLegDefinition{}, err
	}

	start, err := p.AccrualSchedule.AdjustedStartDate()
	if err != nil {
		return SwapLegDefinition{}, err
	}
	end, err := p.AccrualSchedule.AdjustedEndDate()
	if err != nil {
		return SwapLegDefinition{}, err
	}

	return SwapLegDefinition{
		payReceive:       p.PayReceive,
		accrualSchedule:  p.AccrualSchedule,
		paymentSchedule:  p.PaymentSchedule,
		notionalSchedule: p.NotionalSchedule,
		calculation:      p.Calculation,
		startDate:        start,
		endDate:          end,
	}, nil
}

func (d SwapLegDefinition) PayReceive() market.PayReceive      { return d.payReceive }
func (d SwapLegDefinition) AccrualSchedule() PeriodicSchedule  { return d.accrualSchedule }
func (d SwapLegDefinition) PaymentSchedule() PaymentSchedule   { return d.paymentSchedule }
func (d SwapLegDefinition) NotionalSchedule() NotionalSchedule { return d.notionalSchedule.clone() }
func (d SwapLegDefinition) Calculation() RateCalculation       { return cloneCalculation(d.calculation) }

// StartDate returns the business-day adjusted start of the accrual schedule.
func (d SwapLegDefinition) StartDate() time.Time { return d.startDate }

// EndDate returns the business-day adjusted end of the accrual schedule.
func (d SwapLegDefinition) EndDate() time.Time { return d.endDate }

// Currency returns the settlement currency.
func (d SwapLegDefinition) Currency() market.Currency { return d.notionalSchedule.Currency }

func (d SwapLegDefinition) params() SwapLegParams {
	return SwapLegParams{
		PayReceive:       d.payReceive,
		AccrualSchedule:  d.accrualSchedule,
		PaymentSchedule:  d.paymentSchedule,
		NotionalSchedule: d.notionalSchedule,
		Calculation:      d.calculation,
	}
}

func validateParams(p SwapLegParams) error {
	const op = "NewSwapLegDefinition"
	if !p.PayReceive.IsValid() {
		return configErr(op, nil, "pay/receive must be PAY or RECEIVE, got %q", p.PayReceive)
	}
	if err := p.AccrualSchedule.Validate(); err != nil {
		return err
	}
	if err := validatePaymentSchedule(op, p.PaymentSchedule, p.AccrualSchedule.Frequency); err != nil {
		return err
	}
	if err := validateNotional(op, p.NotionalSchedule); err != nil {
		return err
	}
	return validateCalculation(op, p.Calculation)
}

func validatePaymentSchedule(op string, ps PaymentSchedule, accrual market.Frequency) error {
	if _, err := groupSize(ps.PaymentFrequency, accrual); err != nil {
		return err
	}
	if !ps.CompoundingMethod.IsValid() {
		return configErr(op, nil, "unknown compounding method %q", ps.CompoundingMethod)
	}
	if ps.PaymentOffset.Days < 0 {
		return configErr(op, nil, "payment offset %d business days is before the period end", ps.PaymentOffset.Days)
	}
	if err := ps.PaymentOffset.Validate(); err != nil {
		return scheduleErr(op, err, "invalid payment offset")
	}
	return nil
}

func validateNotional(op string, ns NotionalSchedule) error {
	if ns.Currency == "" {
		return configErr(op, nil, "notional currency is required")
	}
	if ns.Amount.Initial.IsZero() && len(ns.Amount.Steps) == 0 {
		return configErr(op, nil, "notional amount is required")
	}
	if err := ns.Amount.Validate(); err != nil {
		return configErr(op, err, "invalid notional schedule")
	}
	if ns.FxReset == nil {
		return nil
	}
	fx := ns.FxReset
	if fx.ReferenceCurrency == "" || fx.ReferenceCurrency == ns.Currency {
		return configErr(op, nil, "fx reset reference currency %q must differ from settlement currency %q",
			fx.ReferenceCurrency, ns.Currency)
	}
	if fx.Index == "" {
		return configErr(op, nil, "fx reset index is required")
	}
	if err := fx.FixingOffset.Validate(); err != nil {
		return rateErr(op, err, "invalid fx reset fixing offset")
	}
	return nil
}

func validateCalculation(op string, rc RateCalculation) error {
	switch c := rc.(type) {
	case FixedRateCalculation:
		if !c.DayCount.IsValid() {
			return configErr(op, nil, "unknown day count %q", c.DayCount)
		}
		if err := c.Rate.Validate(); err != nil {
			return configErr(op, err, "invalid fixed rate schedule")
		}
	case IborRateCalculation:
		if !c.DayCount.IsValid() {
			return configErr(op, nil, "unknown day count %q", c.DayCount)
		}
		if c.Index == "" {
			return configErr(op, nil, "ibor index is required")
		}
		if err := c.FixingOffset.Validate(); err != nil {
			return rateErr(op, err, "invalid fixing offset for %s", c.Index)
		}
	case nil:
		return configErr(op, nil, "rate calculation is required")
	default:
		return configErr(op, nil, "unsupported rate calculation %T", rc)
	}
	return nil
}
