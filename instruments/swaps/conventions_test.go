package swaps_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/swapleg/instruments/swaps"
	"github.com/meenmo/swapleg/swap"
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/swap/value"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestIRSPresetLegs(t *testing.T) {
	t.Parallel()

	notional := value.Constant(decimal.NewFromInt(10_000_000))
	rate := value.Constant(decimal.RequireFromString("0.0235"))
	fixedParams, floatParams, err := swaps.IrsEuribor6M.Legs(market.Pay, d(2025, 1, 15), d(2030, 1, 15), notional, rate)
	require.NoError(t, err)

	fixedDef, err := swap.NewSwapLegDefinition(fixedParams)
	require.NoError(t, err)
	fixed, err := fixedDef.Expand()
	require.NoError(t, err)
	require.Len(t, fixed.PaymentPeriods, 5)
	for _, pp := range fixed.PaymentPeriods {
		assert.True(t, pp.Notional.Equal(decimal.NewFromInt(-10_000_000)))
		assert.Equal(t, market.EUR, pp.Currency)
		_, ok := pp.AccrualPeriods[0].Rate.(swap.FixedRate)
		assert.True(t, ok)
	}

	floatDef, err := swap.NewSwapLegDefinition(floatParams)
	require.NoError(t, err)
	float, err := floatDef.Expand()
	require.NoError(t, err)
	require.Len(t, float.PaymentPeriods, 10)
	assert.True(t, float.PaymentPeriods[0].Notional.Equal(decimal.NewFromInt(10_000_000)))

	obs, ok := float.PaymentPeriods[0].AccrualPeriods[0].Rate.(swap.IborRate)
	require.True(t, ok)
	assert.Equal(t, market.EURIBOR6M, obs.Index)
	assert.Equal(t, d(2025, 1, 13), obs.FixingDate)
	assert.Equal(t, d(2025, 7, 15), float.PaymentPeriods[0].PaymentDate)
}

func TestGBPLiborFixesOnPeriodStart(t *testing.T) {
	t.Parallel()

	params, err := swaps.GBPLIBOR1MFloat.Params(swaps.LegTerms{
		PayReceive: market.Receive,
		StartDate:  d(2014, 1, 6),
		EndDate:    d(2014, 4, 6),
		Notional:   value.Constant(decimal.NewFromInt(1000)),
	})
	require.NoError(t, err)
	def, err := swap.NewSwapLegDefinition(params)
	require.NoError(t, err)
	leg, err := def.Expand()
	require.NoError(t, err)

	for _, ap := range leg.AccrualPeriods() {
		obs := ap.Rate.(swap.IborRate)
		assert.Equal(t, ap.StartDate, obs.FixingDate)
	}
	// 2014-04-06 is a Sunday.
	assert.Equal(t, d(2014, 4, 7), leg.EndDate())
}

func TestBasisPresetDirections(t *testing.T) {
	t.Parallel()

	pay, rec, err := swaps.BasisGBPLibor3M6M.Legs(d(2015, 3, 2), d(2017, 3, 2), value.Constant(decimal.NewFromInt(5)))
	require.NoError(t, err)
	assert.Equal(t, market.Pay, pay.PayReceive)
	assert.Equal(t, market.Receive, rec.PayReceive)
	assert.Equal(t, market.FreqSemi, pay.AccrualSchedule.Frequency)
	assert.Equal(t, market.FreqQuarterly, rec.AccrualSchedule.Frequency)
}

func TestFixedLegNeedsRate(t *testing.T) {
	t.Parallel()

	_, err := swaps.GBPFixedAnnual.Params(swaps.LegTerms{
		PayReceive: market.Pay,
		StartDate:  d(2015, 3, 2),
		EndDate:    d(2017, 3, 2),
		Notional:   value.Constant(decimal.NewFromInt(5)),
	})
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	c, ok := swaps.Lookup("USD-LIBOR-3M")
	require.True(t, ok)
	assert.Equal(t, market.USDLIBOR3M, c.Index)
	assert.False(t, c.IsFixed())

	c, ok = swaps.Lookup("EUR-FIXED-1Y")
	require.True(t, ok)
	assert.True(t, c.IsFixed())

	_, ok = swaps.Lookup("JPY-TIBOR-6M")
	assert.False(t, ok)
}
