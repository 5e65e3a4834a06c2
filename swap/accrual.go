package swap

import (
	"github.com/meenmo/swapleg/swap/market"
)

// buildAccrualPeriods annotates each schedule period with its year fraction.
// The rate observation is left for resolveRates.
func buildAccrualPeriods(periods []SchedulePeriod, dc market.DayCount) ([]RateAccrualPeriod, error) {
	out := make([]RateAccrualPeriod, 0, len(periods))
	for _, p := range periods {
		yf, err := dc.YearFraction(p.StartDate, p.EndDate)
		if err != nil {
			return nil, configErr("buildAccrualPeriods", err, "cannot compute year fraction")
		}
		ap := RateAccrualPeriod{
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
			YearFraction: yf,
		}
		if !p.UnadjustedStartDate.Equal(p.StartDate) {
			ap.UnadjustedStartDate = p.UnadjustedStartDate
		}
		if !p.UnadjustedEndDate.Equal(p.EndDate) {
			ap.UnadjustedEndDate = p.UnadjustedEndDate
		}
		out = append(out, ap)
	}
	return out, nil
}

func dayCountOf(rc RateCalculation) market.DayCount {
	switch c := rc.(type) {
	case FixedRateCalculation:
		return c.DayCount
	case IborRateCalculation:
		return c.DayCount
	}
	return ""
}
