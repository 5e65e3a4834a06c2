package swap

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/meenmo/swapleg/swap/market"
)

// notionalExchanges derives the principal flows implied by the exchange flags.
//
// The initial exchange reverses the first notional at the leg start, each
// change in notional is settled on the payment date of the period before the
// change, and the final exchange returns the last notional. With all three
// enabled the amounts sum to zero.
func notionalExchanges(ns NotionalSchedule, periods []RatePaymentPeriod) []NotionalExchange {
	if len(periods) == 0 {
		return nil
	}
	exchange := func(p RatePaymentPeriod, amount market.CurrencyAmount) NotionalExchange {
		return NotionalExchange{PaymentDate: p.PaymentDate, Amount: amount}
	}
	amount := func(v decimal.Decimal) market.CurrencyAmount {
		return market.CurrencyAmount{Currency: ns.Currency, Amount: v}
	}

	var events []NotionalExchange
	first, last := periods[0], periods[len(periods)-1]
	if ns.InitialExchange {
		events = append(events, NotionalExchange{
			PaymentDate: first.StartDate(),
			Amount:      amount(first.Notional.Neg()),
		})
	}
	if ns.IntermediateExchange {
		for i := 1; i < len(periods); i++ {
			prev, cur := periods[i-1], periods[i]
			if prev.Notional.Equal(cur.Notional) {
				continue
			}
			events = append(events, exchange(prev, amount(prev.Notional.Sub(cur.Notional))))
		}
	}
	if ns.FinalExchange {
		events = append(events, exchange(last, amount(last.Notional)))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].PaymentDate.Before(events[j].PaymentDate)
	})
	return events
}
