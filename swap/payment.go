package swap

import (
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/utils"
)

// groupSize is the number of accrual periods per payment period.
func groupSize(payment, accrual market.Frequency) (int, error) {
	const op = "groupSize"
	if payment <= 0 || accrual <= 0 {
		return 0, scheduleErr(op, nil, "unsupported frequencies (payment=%d, accrual=%d)", payment, accrual)
	}
	if payment.Months()%accrual.Months() != 0 {
		return 0, scheduleErr(op, nil, "payment frequency %s is not a multiple of accrual frequency %s", payment, accrual)
	}
	return payment.Months() / accrual.Months(), nil
}

// paymentGroup is a payment period before its notional is resolved.
type paymentGroup struct {
	firstIndex int
	period     RatePaymentPeriod
}

// groupPaymentPeriods partitions accrual periods into consecutive groups of
// the frequency ratio; the last group takes whatever remains.
func groupPaymentPeriods(accruals []RateAccrualPeriod, ps PaymentSchedule, accrualFreq market.Frequency) ([]paymentGroup, error) {
	const op = "groupPaymentPeriods"
	size, err := groupSize(ps.PaymentFrequency, accrualFreq)
	if err != nil {
		return nil, err
	}

	groups := make([]paymentGroup, 0, (len(accruals)+size-1)/size)
	for first := 0; first < len(accruals); first += size {
		last := first + size
		if last > len(accruals) {
			last = len(accruals)
		}
		members := make([]RateAccrualPeriod, last-first)
		copy(members, accruals[first:last])

		end := members[len(members)-1].EndDate
		payDate, err := ps.PaymentOffset.Adjust(end)
		if err != nil {
			return nil, scheduleErr(op, err, "cannot date payment for period ending %s", end.Format(utils.DateLayout))
		}
		if payDate.Before(end) {
			return nil, scheduleErr(op, nil, "payment date %s before period end %s",
				payDate.Format(utils.DateLayout), end.Format(utils.DateLayout))
		}

		groups = append(groups, paymentGroup{
			firstIndex: first,
			period: RatePaymentPeriod{
				PaymentDate:       payDate,
				AccrualPeriods:    members,
				CompoundingMethod: ps.CompoundingMethod,
			},
		})
	}
	return groups, nil
}
