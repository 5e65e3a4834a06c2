package swap

import (
	"github.com/meenmo/swapleg/utils"
)

// resolveNotionals sets the signed notional, currency and optional FX reset of
// every payment period. The notional in force is the one at the index of the
// period's first accrual period, even when the schedule steps inside the group.
func (d SwapLegDefinition) resolveNotionals(groups []paymentGroup) ([]RatePaymentPeriod, error) {
	const op = "resolveNotionals"
	ns := d.notionalSchedule

	periods := make([]RatePaymentPeriod, len(groups))
	for i, g := range groups {
		amount, err := ns.Amount.Resolve(g.firstIndex)
		if err != nil {
			return nil, configErr(op, err, "cannot resolve notional at accrual index %d", g.firstIndex)
		}
		pp := g.period
		pp.Currency = ns.Currency
		pp.Notional = d.payReceive.Normalize(amount)

		if fx := ns.FxReset; fx != nil {
			start := pp.StartDate()
			fixing, err := fx.FixingOffset.Adjust(start)
			if err != nil {
				return nil, rateErr(op, err, "cannot date %s fx fixing for period starting %s",
					fx.Index, start.Format(utils.DateLayout))
			}
			pp.FxReset = &FxReset{
				Index:             fx.Index,
				ReferenceCurrency: fx.ReferenceCurrency,
				FixingDate:        fixing,
			}
		}
		periods[i] = pp
	}
	return periods, nil
}
