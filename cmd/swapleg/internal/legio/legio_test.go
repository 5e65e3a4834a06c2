package legio

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/swapleg/calendar"
	"github.com/meenmo/swapleg/swap"
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/swap/value"
)

const fixedLegYAML = `
pay_receive: receive
accrual:
  start_date: "2014-01-05"
  end_date: "2014-04-05"
  frequency: P1M
  business_day_convention: modified_following
  calendar: gblo
payment:
  frequency: 3M
  offset_days: 2
  calendar: GBLO
notional:
  currency: gbp
  amount: "1000.50"
  steps:
    - {index: 2, type: delta_amount, value: -500}
calculation:
  type: fixed
  day_count: ACT/360
  rate: 0.0125
`

func TestDecodeAndParams_YAML(t *testing.T) {
	var in LegInput
	require.NoError(t, Decode([]byte(fixedLegYAML), "yaml", &in))

	p, err := in.Params()
	require.NoError(t, err)
	assert.Equal(t, market.Receive, p.PayReceive)
	assert.Equal(t, market.FreqMonthly, p.AccrualSchedule.Frequency)
	assert.Equal(t, calendar.ModifiedFollowing, p.AccrualSchedule.BusinessDayAdjustment.Convention)
	assert.Equal(t, calendar.GBLO, p.AccrualSchedule.BusinessDayAdjustment.Calendar)
	assert.Equal(t, time.Date(2014, 1, 5, 0, 0, 0, 0, time.UTC), p.AccrualSchedule.StartDate)
	assert.Equal(t, market.FreqQuarterly, p.PaymentSchedule.PaymentFrequency)
	assert.Equal(t, market.GBP, p.NotionalSchedule.Currency)
	assert.Equal(t, "1000.5", p.NotionalSchedule.Amount.Initial.String())
	require.Len(t, p.NotionalSchedule.Amount.Steps, 1)
	assert.Equal(t, value.DeltaAmount, p.NotionalSchedule.Amount.Steps[0].Adjustment.Type)

	calc, ok := p.Calculation.(swap.FixedRateCalculation)
	require.True(t, ok)
	assert.Equal(t, market.Act360, calc.DayCount)
	assert.Equal(t, "0.0125", calc.Rate.Initial.String())

	def, err := swap.NewSwapLegDefinition(p)
	require.NoError(t, err)
	leg, err := def.Expand()
	require.NoError(t, err)
	require.Len(t, leg.PaymentPeriods, 1)
	assert.Len(t, leg.PaymentPeriods[0].AccrualPeriods, 3)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	var in LegInput
	assert.Error(t, Decode([]byte(`{"pay_receive":"PAY","notionl":{}}`), "json", &in))
	assert.Error(t, Decode([]byte("pay_receive: PAY\nnotionl: {}\n"), "yaml", &in))
	assert.Error(t, Decode([]byte(`{}`), "toml", &in))
}

func TestParams_Errors(t *testing.T) {
	base := func() LegInput {
		var in LegInput
		require.NoError(t, Decode([]byte(fixedLegYAML), "yaml", &in))
		return in
	}

	in := base()
	in.Calculation.Type = "OIS"
	_, err := in.Params()
	assert.ErrorContains(t, err, "FIXED or IBOR")

	in = base()
	in.Calculation.Rate = nil
	_, err = in.Params()
	assert.ErrorContains(t, err, "calculation.rate")

	in = base()
	in.Accrual.StartDate = "05/01/2014"
	_, err = in.Params()
	assert.ErrorContains(t, err, "accrual.start_date")

	in = base()
	in.Payment.Frequency = "1W"
	_, err = in.Params()
	assert.ErrorContains(t, err, "payment.frequency")

	in = base()
	in.Convention = "JPY-TIBOR-6M"
	_, err = in.Params()
	assert.ErrorContains(t, err, "unknown convention")

	in = base()
	in.Notional.Amount = Amount{}
	in.Notional.Steps = nil
	p, err := in.Params()
	require.NoError(t, err)
	_, err = swap.NewSwapLegDefinition(p)
	assert.ErrorIs(t, err, swap.ErrConfiguration)
	assert.ErrorContains(t, err, "notional amount is required")
}

func TestParams_Convention(t *testing.T) {
	in := LegInput{
		Convention: "GBP-FIXED-1Y",
		PayReceive: "PAY",
		Accrual:    ScheduleInput{StartDate: "2015-03-02", EndDate: "2018-03-02"},
	}
	_, err := in.Params()
	assert.ErrorContains(t, err, "calculation.rate")

	rate := Amount{}
	require.NoError(t, rate.UnmarshalJSON([]byte(`"0.02"`)))
	in.Calculation.Rate = &rate
	in.Notional.FxReset = &FxResetInput{ReferenceCurrency: "usd", Index: "WM-GBP-USD", FixingDays: -2, Calendar: "gblo"}
	p, err := in.Params()
	require.NoError(t, err)
	assert.Equal(t, market.FreqAnnual, p.AccrualSchedule.Frequency)
	require.NotNil(t, p.NotionalSchedule.FxReset)
	assert.Equal(t, market.USD, p.NotionalSchedule.FxReset.ReferenceCurrency)
	assert.Equal(t, calendar.OfBusinessDays(-2, calendar.GBLO), p.NotionalSchedule.FxReset.FixingOffset)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "yaml", FormatFromPath("leg.YML", "json"))
	assert.Equal(t, "yaml", FormatFromPath("dir/leg.yaml", "json"))
	assert.Equal(t, "json", FormatFromPath("leg.json", "yaml"))
	assert.Equal(t, "json", FormatFromPath("", "json"))
}

func TestNewErrorOutput(t *testing.T) {
	assert.Equal(t, "schedule", NewErrorOutput(&swap.ScheduleError{Op: "x", Reason: "y"}).Kind)
	assert.Equal(t, "rate", NewErrorOutput(&swap.RateError{Op: "x", Reason: "y"}).Kind)
	assert.Equal(t, "configuration", NewErrorOutput(&swap.ConfigurationError{Op: "x", Reason: "y"}).Kind)
	out := NewErrorOutput(errors.New("bad json"))
	assert.Equal(t, ErrorOutput{Error: "bad json", Kind: "input"}, out)
}

func TestEncode(t *testing.T) {
	v := ExchangeOutput{PaymentDate: "2014-06-09", Currency: "GBP", Amount: "-1500"}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "json", v))
	assert.Equal(t, `{"payment_date":"2014-06-09","currency":"GBP","amount":"-1500"}`+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Encode(&buf, "yaml", v))
	assert.Contains(t, buf.String(), "payment_date:")
	assert.Contains(t, buf.String(), "2014-06-09")

	buf.Reset()
	require.NoError(t, Encode(&buf, "msgpack", v))
	assert.Contains(t, buf.String(), "payment_date")

	assert.Error(t, Encode(&buf, "xml", v))
}
