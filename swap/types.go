package swap

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/swapleg/swap/market"
)

// RateObservation is the rate applying to one accrual period: FixedRate or IborRate.
type RateObservation interface {
	rateObservation()
}

// FixedRate is a known rate, as a decimal (0.025 == 2.5%).
type FixedRate struct {
	Rate decimal.Decimal
}

// IborRate is an unresolved observation of a term index on FixingDate.
type IborRate struct {
	Index      market.IborIndex
	FixingDate time.Time
}

func (FixedRate) rateObservation() {}
func (IborRate) rateObservation()  {}

// RateAccrualPeriod is one accrual period of a payment period.
//
// Unadjusted dates are zero when they equal the adjusted ones.
type RateAccrualPeriod struct {
	StartDate           time.Time
	EndDate             time.Time
	UnadjustedStartDate time.Time
	UnadjustedEndDate   time.Time
	YearFraction        float64
	Rate                RateObservation
}

// UnadjustedStart returns the unadjusted start date, falling back to StartDate.
func (p RateAccrualPeriod) UnadjustedStart() time.Time {
	if p.UnadjustedStartDate.IsZero() {
		return p.StartDate
	}
	return p.UnadjustedStartDate
}

// UnadjustedEnd returns the unadjusted end date, falling back to EndDate.
func (p RateAccrualPeriod) UnadjustedEnd() time.Time {
	if p.UnadjustedEndDate.IsZero() {
		return p.EndDate
	}
	return p.UnadjustedEndDate
}

// FxReset is the FX observation that converts a reference-currency notional
// into the settlement currency of a payment period.
type FxReset struct {
	Index             market.FxIndex
	ReferenceCurrency market.Currency
	FixingDate        time.Time
}

// RatePaymentPeriod groups contiguous accrual periods paid on one date.
//
// Notional is signed: negative when the leg pays.
type RatePaymentPeriod struct {
	PaymentDate       time.Time
	AccrualPeriods    []RateAccrualPeriod
	Currency          market.Currency
	Notional          decimal.Decimal
	CompoundingMethod market.CompoundingMethod
	FxReset           *FxReset
}

// StartDate returns the adjusted start of the first accrual period.
func (p RatePaymentPeriod) StartDate() time.Time {
	return p.AccrualPeriods[0].StartDate
}

// EndDate returns the adjusted end of the last accrual period.
func (p RatePaymentPeriod) EndDate() time.Time {
	return p.AccrualPeriods[len(p.AccrualPeriods)-1].EndDate
}

// NotionalExchange is a principal cashflow, separate from interest.
type NotionalExchange struct {
	PaymentDate time.Time
	Amount      market.CurrencyAmount
}

// ExpandedSwapLeg is the fully resolved form of a leg consumed by pricers.
type ExpandedSwapLeg struct {
	PaymentPeriods []RatePaymentPeriod
	PaymentEvents  []NotionalExchange
}

// StartDate returns the adjusted start of the first accrual period.
func (l ExpandedSwapLeg) StartDate() time.Time {
	return l.PaymentPeriods[0].StartDate()
}

// EndDate returns the adjusted end of the last accrual period.
func (l ExpandedSwapLeg) EndDate() time.Time {
	return l.PaymentPeriods[len(l.PaymentPeriods)-1].EndDate()
}

// Currency returns the settlement currency.
func (l ExpandedSwapLeg) Currency() market.Currency {
	return l.PaymentPeriods[0].Currency
}

// AccrualPeriods flattens the accrual periods of every payment period in order.
func (l ExpandedSwapLeg) AccrualPeriods() []RateAccrualPeriod {
	var out []RateAccrualPeriod
	for _, pp := range l.PaymentPeriods {
		out = append(out, pp.AccrualPeriods...)
	}
	return out
}
