package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/swapleg/cmd/swapleg/internal/legio"
)

func quietEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SWAPLEG_LOG_LEVEL", "disabled")
	t.Setenv("SWAPLEG_LOG_PRETTY", "false")
	t.Setenv("SWAPLEG_MAX_PERIODS", "600")
	t.Setenv("SWAPLEG_OUTPUT_FORMAT", "json")
}

func TestRun_ExpandYAML(t *testing.T) {
	quietEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"expand", "-input", "testdata/stepped_ibor.yaml"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out legio.LegOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "2014-01-06", out.StartDate)
	assert.Equal(t, "2014-06-05", out.EndDate)
	require.Len(t, out.PaymentPeriods, 3)
	assert.Equal(t, "-1000", out.PaymentPeriods[0].Notional)
	assert.Equal(t, "-1500", out.PaymentPeriods[1].Notional)
	assert.Equal(t, "STRAIGHT", out.PaymentPeriods[0].CompoundingMethod)
	assert.Equal(t, "2014-01-02", out.PaymentPeriods[0].AccrualPeriods[0].FixingDate)
	assert.Equal(t, "2014-01-05", out.PaymentPeriods[0].AccrualPeriods[0].UnadjustedStartDate)

	require.Len(t, out.PaymentEvents, 3)
	assert.Equal(t, legio.ExchangeOutput{PaymentDate: "2014-03-07", Currency: "GBP", Amount: "500"}, out.PaymentEvents[1])
}

func TestRun_ExpandFxResetFromStdin(t *testing.T) {
	quietEnv(t)

	input, err := os.ReadFile("testdata/fixed_fx_reset.json")
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	code := run([]string{"expand", "-output-format", "yaml"}, bytes.NewReader(input), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out legio.LegOutput
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.PaymentPeriods, 3)
	for _, pp := range out.PaymentPeriods {
		require.NotNil(t, pp.FxReset)
		assert.Equal(t, "EUR", pp.FxReset.ReferenceCurrency)
		assert.Equal(t, "0.025", pp.AccrualPeriods[0].Rate)
	}
	assert.Equal(t, "2014-02-03", out.PaymentPeriods[1].FxReset.FixingDate)
	assert.Empty(t, out.PaymentEvents)
}

func TestRun_ExpandConventionMsgpack(t *testing.T) {
	quietEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"expand", "-input", "testdata/euribor_convention.json", "-output-format", "msgpack"},
		strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out map[string]any
	require.NoError(t, msgpack.Unmarshal(stdout.Bytes(), &out))
	periods, ok := out["payment_periods"].([]any)
	require.True(t, ok)
	assert.Len(t, periods, 4)
	assert.Equal(t, "EUR", out["currency"])
}

func TestRun_Schedule(t *testing.T) {
	quietEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"schedule", "-input", "testdata/schedule.yaml"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out legio.ScheduleOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Periods, 5)
	assert.Equal(t, legio.PeriodOutput{
		StartDate:           "2014-04-07",
		EndDate:             "2014-05-06",
		UnadjustedStartDate: "2014-04-05",
		UnadjustedEndDate:   "2014-05-05",
	}, out.Periods[3])
}

func TestRun_ErrorsAreClassified(t *testing.T) {
	quietEnv(t)

	input := `{"start_date":"2014-01-05","end_date":"2014-04-20","frequency":"1M",
		"business_day_convention":"FOLLOWING","calendar":"GBLO"}`
	var stdout, stderr bytes.Buffer
	code := run([]string{"schedule"}, strings.NewReader(input), &stdout, &stderr)
	assert.Equal(t, 1, code)

	var out legio.ErrorOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "schedule", out.Kind)

	stdout.Reset()
	code = run([]string{"expand"}, strings.NewReader(`{"pay_receive": `), &stdout, &stderr)
	assert.Equal(t, 1, code)
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "input", out.Kind)
}

func TestRun_MaxPeriodsFlag(t *testing.T) {
	quietEnv(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"schedule", "-input", "testdata/schedule.yaml", "-max-periods", "3"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)

	var out legio.ErrorOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "schedule", out.Kind)
	assert.Contains(t, out.Error, "more than 3 periods")
}

func TestRun_Usage(t *testing.T) {
	quietEnv(t)

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: swapleg")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"price"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "price"`)

	stdout.Reset()
	assert.Equal(t, 0, run([]string{"help"}, strings.NewReader(""), &stdout, &stderr))
	assert.Contains(t, stdout.String(), "expand")
}
