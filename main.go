package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/swapleg/instruments/swaps"
	"github.com/meenmo/swapleg/swap"
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/swap/value"
)

func main() {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)

	// Amortising 10mm notional: 2mm off every year from the third period.
	notional := value.Of(decimal.NewFromInt(10_000_000),
		value.StepOf(2, value.OfDeltaAmount(decimal.NewFromInt(-2_000_000))),
		value.StepOf(4, value.OfDeltaAmount(decimal.NewFromInt(-2_000_000))),
		value.StepOf(6, value.OfDeltaAmount(decimal.NewFromInt(-2_000_000))),
	)

	params, err := swaps.EURIBOR6MFloat.Params(swaps.LegTerms{
		PayReceive:           market.Pay,
		StartDate:            start,
		EndDate:              end,
		Notional:             notional,
		InitialExchange:      true,
		IntermediateExchange: true,
		FinalExchange:        true,
	})
	if err != nil {
		panic(err)
	}
	def, err := swap.NewSwapLegDefinition(params)
	if err != nil {
		panic(err)
	}
	leg, err := swap.Expand(def)
	if err != nil {
		panic(err)
	}

	for _, pp := range leg.PaymentPeriods {
		obs := pp.AccrualPeriods[0].Rate.(swap.IborRate)
		fmt.Printf("%s -> %s  pay %s  fix %s  notional %s\n",
			pp.StartDate().Format("2006-01-02"), pp.EndDate().Format("2006-01-02"),
			pp.PaymentDate.Format("2006-01-02"), obs.FixingDate.Format("2006-01-02"), pp.Notional)
	}
	for _, ev := range leg.PaymentEvents {
		fmt.Printf("exchange %s  %s %s\n", ev.PaymentDate.Format("2006-01-02"), ev.Amount.Amount, ev.Amount.Currency)
	}
}
