// Package legio converts between the CLI's JSON/YAML documents and swap types.
package legio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/swapleg/calendar"
	"github.com/meenmo/swapleg/instruments/swaps"
	"github.com/meenmo/swapleg/swap"
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/swap/value"
	"github.com/meenmo/swapleg/utils"
)

// Amount is a decimal accepted as a JSON/YAML number or string.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.Decimal.UnmarshalJSON(b)
}

func (a *Amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", n.Line)
	}
	v, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	a.Decimal = v
	return nil
}

// ScheduleInput is the accrual schedule document, also the input of `swapleg schedule`.
type ScheduleInput struct {
	StartDate             string `json:"start_date" yaml:"start_date"`
	EndDate               string `json:"end_date" yaml:"end_date"`
	Frequency             string `json:"frequency" yaml:"frequency"` // "1M", "3M", "1Y"
	BusinessDayConvention string `json:"business_day_convention" yaml:"business_day_convention"`
	Calendar              string `json:"calendar" yaml:"calendar"`
	Stub                  string `json:"stub,omitempty" yaml:"stub,omitempty"`
	Roll                  string `json:"roll,omitempty" yaml:"roll,omitempty"`
}

// PaymentInput describes payment grouping and the payment date offset.
type PaymentInput struct {
	Frequency   string `json:"frequency" yaml:"frequency"`
	OffsetDays  int    `json:"offset_days" yaml:"offset_days"`
	Calendar    string `json:"calendar" yaml:"calendar"`
	Compounding string `json:"compounding,omitempty" yaml:"compounding,omitempty"`
}

// StepInput is one step of a notional or rate schedule.
type StepInput struct {
	Index int    `json:"index" yaml:"index"`
	Type  string `json:"type" yaml:"type"` // REPLACE, DELTA_AMOUNT, DELTA_MULTIPLIER, MULTIPLIER
	Value Amount `json:"value" yaml:"value"`
}

// FxResetInput fixes the notional in a reference currency.
type FxResetInput struct {
	ReferenceCurrency string `json:"reference_currency" yaml:"reference_currency"`
	Index             string `json:"index" yaml:"index"`
	FixingDays        int    `json:"fixing_days" yaml:"fixing_days"`
	Calendar          string `json:"calendar" yaml:"calendar"`
}

// NotionalInput is the notional schedule and its exchange flags.
type NotionalInput struct {
	Currency             string        `json:"currency" yaml:"currency"`
	Amount               Amount        `json:"amount" yaml:"amount"`
	Steps                []StepInput   `json:"steps,omitempty" yaml:"steps,omitempty"`
	InitialExchange      bool          `json:"initial_exchange" yaml:"initial_exchange"`
	IntermediateExchange bool          `json:"intermediate_exchange" yaml:"intermediate_exchange"`
	FinalExchange        bool          `json:"final_exchange" yaml:"final_exchange"`
	FxReset              *FxResetInput `json:"fx_reset,omitempty" yaml:"fx_reset,omitempty"`
}

// CalculationInput selects a fixed or Ibor rate calculation.
type CalculationInput struct {
	Type           string      `json:"type" yaml:"type"` // FIXED or IBOR
	DayCount       string      `json:"day_count" yaml:"day_count"`
	Rate           *Amount     `json:"rate,omitempty" yaml:"rate,omitempty"`
	RateSteps      []StepInput `json:"rate_steps,omitempty" yaml:"rate_steps,omitempty"`
	Index          string      `json:"index,omitempty" yaml:"index,omitempty"`
	FixingDays     int         `json:"fixing_days" yaml:"fixing_days"`
	FixingCalendar string      `json:"fixing_calendar,omitempty" yaml:"fixing_calendar,omitempty"`
}

// LegInput defines the input schema of `swapleg expand`.
//
// When Convention names a preset, only the dates, direction, notional and
// fixed rate are read; every other term comes from the preset.
type LegInput struct {
	Convention  string           `json:"convention,omitempty" yaml:"convention,omitempty"`
	PayReceive  string           `json:"pay_receive" yaml:"pay_receive"`
	Accrual     ScheduleInput    `json:"accrual" yaml:"accrual"`
	Payment     PaymentInput     `json:"payment" yaml:"payment"`
	Notional    NotionalInput    `json:"notional" yaml:"notional"`
	Calculation CalculationInput `json:"calculation" yaml:"calculation"`
}

// FormatFromPath picks the input format from a file extension.
func FormatFromPath(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return fallback
}

// Decode parses data in the given format ("json" or "yaml") into v.
func Decode(data []byte, format string, v any) error {
	switch strings.ToLower(format) {
	case "json", "":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(v)
	default:
		return fmt.Errorf("unsupported input format %q", format)
	}
}

// Schedule converts the document into a PeriodicSchedule.
func (in ScheduleInput) Schedule() (swap.PeriodicSchedule, error) {
	start, err := utils.ParseDate(in.StartDate)
	if err != nil {
		return swap.PeriodicSchedule{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := utils.ParseDate(in.EndDate)
	if err != nil {
		return swap.PeriodicSchedule{}, fmt.Errorf("end_date: %w", err)
	}
	freq, err := market.ParseFrequency(in.Frequency)
	if err != nil {
		return swap.PeriodicSchedule{}, fmt.Errorf("frequency: %w", err)
	}
	return swap.PeriodicSchedule{
		StartDate: start,
		EndDate:   end,
		Frequency: freq,
		BusinessDayAdjustment: calendar.BusinessDayAdjustment{
			Convention: calendar.BusinessDayConvention(strings.ToUpper(in.BusinessDayConvention)),
			Calendar:   calendar.CalendarID(strings.ToUpper(in.Calendar)),
		},
		StubConvention: market.StubConvention(strings.ToUpper(in.Stub)),
		RollConvention: market.RollConvention(strings.ToUpper(in.Roll)),
	}, nil
}

func valueSchedule(initial decimal.Decimal, steps []StepInput) value.Schedule {
	out := make([]value.Step, 0, len(steps))
	for _, s := range steps {
		out = append(out, value.StepOf(s.Index, value.Adjustment{
			Type:      value.AdjustmentType(strings.ToUpper(s.Type)),
			Modifying: s.Value.Decimal,
		}))
	}
	return value.Of(initial, out...)
}

func (n NotionalInput) fxReset() *swap.FxResetCalculation {
	if n.FxReset == nil {
		return nil
	}
	return &swap.FxResetCalculation{
		ReferenceCurrency: market.Currency(strings.ToUpper(n.FxReset.ReferenceCurrency)),
		Index:             market.FxIndex(n.FxReset.Index),
		FixingOffset:      calendar.OfBusinessDays(n.FxReset.FixingDays, calendar.CalendarID(strings.ToUpper(n.FxReset.Calendar))),
	}
}

func (c CalculationInput) fixedRate() (*value.Schedule, error) {
	if c.Rate == nil {
		return nil, fmt.Errorf("calculation.rate is required for a fixed leg")
	}
	s := valueSchedule(c.Rate.Decimal, c.RateSteps)
	return &s, nil
}

// Params converts the document into swap leg parameters. Field-level
// validation is left to swap.NewSwapLegDefinition.
func (in LegInput) Params() (swap.SwapLegParams, error) {
	dir := market.PayReceive(strings.ToUpper(in.PayReceive))
	notional := valueSchedule(in.Notional.Amount.Decimal, in.Notional.Steps)

	if in.Convention != "" {
		return in.conventionParams(dir, notional)
	}

	accrual, err := in.Accrual.Schedule()
	if err != nil {
		return swap.SwapLegParams{}, fmt.Errorf("accrual.%w", err)
	}
	payFreq, err := market.ParseFrequency(in.Payment.Frequency)
	if err != nil {
		return swap.SwapLegParams{}, fmt.Errorf("payment.frequency: %w", err)
	}

	var calc swap.RateCalculation
	dc := market.DayCount(strings.ToUpper(in.Calculation.DayCount))
	switch strings.ToUpper(in.Calculation.Type) {
	case "FIXED":
		rate, err := in.Calculation.fixedRate()
		if err != nil {
			return swap.SwapLegParams{}, err
		}
		calc = swap.FixedRateCalculation{DayCount: dc, Rate: *rate}
	case "IBOR":
		calc = swap.IborRateCalculation{
			DayCount: dc,
			Index:    market.IborIndex(in.Calculation.Index),
			FixingOffset: calendar.OfBusinessDays(in.Calculation.FixingDays,
				calendar.CalendarID(strings.ToUpper(in.Calculation.FixingCalendar))),
		}
	default:
		return swap.SwapLegParams{}, fmt.Errorf("calculation.type must be FIXED or IBOR, got %q", in.Calculation.Type)
	}

	return swap.SwapLegParams{
		PayReceive:      dir,
		AccrualSchedule: accrual,
		PaymentSchedule: swap.PaymentSchedule{
			PaymentFrequency:  payFreq,
			PaymentOffset:     calendar.OfBusinessDays(in.Payment.OffsetDays, calendar.CalendarID(strings.ToUpper(in.Payment.Calendar))),
			CompoundingMethod: market.CompoundingMethod(strings.ToUpper(in.Payment.Compounding)),
		},
		NotionalSchedule: swap.NotionalSchedule{
			Currency:             market.Currency(strings.ToUpper(in.Notional.Currency)),
			Amount:               notional,
			InitialExchange:      in.Notional.InitialExchange,
			IntermediateExchange: in.Notional.IntermediateExchange,
			FinalExchange:        in.Notional.FinalExchange,
			FxReset:              in.Notional.fxReset(),
		},
		Calculation: calc,
	}, nil
}

func (in LegInput) conventionParams(dir market.PayReceive, notional value.Schedule) (swap.SwapLegParams, error) {
	conv, ok := swaps.Lookup(in.Convention)
	if !ok {
		return swap.SwapLegParams{}, fmt.Errorf("unknown convention %q", in.Convention)
	}
	start, err := utils.ParseDate(in.Accrual.StartDate)
	if err != nil {
		return swap.SwapLegParams{}, fmt.Errorf("accrual.start_date: %w", err)
	}
	end, err := utils.ParseDate(in.Accrual.EndDate)
	if err != nil {
		return swap.SwapLegParams{}, fmt.Errorf("accrual.end_date: %w", err)
	}

	terms := swaps.LegTerms{
		PayReceive:           dir,
		StartDate:            start,
		EndDate:              end,
		Notional:             notional,
		InitialExchange:      in.Notional.InitialExchange,
		IntermediateExchange: in.Notional.IntermediateExchange,
		FinalExchange:        in.Notional.FinalExchange,
	}
	if conv.IsFixed() {
		if terms.FixedRate, err = in.Calculation.fixedRate(); err != nil {
			return swap.SwapLegParams{}, err
		}
	}

	params, err := conv.Params(terms)
	if err != nil {
		return swap.SwapLegParams{}, err
	}
	params.NotionalSchedule.FxReset = in.Notional.fxReset()
	return params, nil
}
