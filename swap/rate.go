package swap

import (
	"github.com/meenmo/swapleg/utils"
)

// resolveRates sets the rate observation of every accrual period.
//
// Fixed rates come from the value schedule at the accrual period index. Ibor
// observations carry the index and a fixing date offset from the period start;
// the rate itself depends on market data and is not resolved here.
func resolveRates(periods []RateAccrualPeriod, rc RateCalculation) error {
	const op = "resolveRates"
	switch c := rc.(type) {
	case FixedRateCalculation:
		rates, err := c.Rate.ResolveAll(len(periods))
		if err != nil {
			return configErr(op, err, "cannot resolve fixed rate schedule")
		}
		for i := range periods {
			periods[i].Rate = FixedRate{Rate: rates[i]}
		}
	case IborRateCalculation:
		for i := range periods {
			fixing, err := c.FixingOffset.Adjust(periods[i].StartDate)
			if err != nil {
				return rateErr(op, err, "cannot date %s fixing for period starting %s",
					c.Index, periods[i].StartDate.Format(utils.DateLayout))
			}
			periods[i].Rate = IborRate{Index: c.Index, FixingDate: fixing}
		}
	default:
		return configErr(op, nil, "unsupported rate calculation %T", rc)
	}
	return nil
}
