package legio

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/meenmo/swapleg/cmd/swapleg/internal/config"
	"github.com/meenmo/swapleg/swap"
	"github.com/meenmo/swapleg/utils"
)

// AccrualPeriodOutput is one accrual period with its resolved rate.
type AccrualPeriodOutput struct {
	StartDate           string  `json:"start_date" yaml:"start_date"`
	EndDate             string  `json:"end_date" yaml:"end_date"`
	UnadjustedStartDate string  `json:"unadjusted_start_date,omitempty" yaml:"unadjusted_start_date,omitempty"`
	UnadjustedEndDate   string  `json:"unadjusted_end_date,omitempty" yaml:"unadjusted_end_date,omitempty"`
	YearFraction        float64 `json:"year_fraction" yaml:"year_fraction"`
	RateType            string  `json:"rate_type" yaml:"rate_type"`
	Rate                string  `json:"rate,omitempty" yaml:"rate,omitempty"`
	Index               string  `json:"index,omitempty" yaml:"index,omitempty"`
	FixingDate          string  `json:"fixing_date,omitempty" yaml:"fixing_date,omitempty"`
}

// FxResetOutput is the fx observation of a payment period.
type FxResetOutput struct {
	Index             string `json:"index" yaml:"index"`
	ReferenceCurrency string `json:"reference_currency" yaml:"reference_currency"`
	FixingDate        string `json:"fixing_date" yaml:"fixing_date"`
}

// PaymentPeriodOutput groups the accrual periods settled on one payment date.
type PaymentPeriodOutput struct {
	PaymentDate       string                `json:"payment_date" yaml:"payment_date"`
	StartDate         string                `json:"start_date" yaml:"start_date"`
	EndDate           string                `json:"end_date" yaml:"end_date"`
	Currency          string                `json:"currency" yaml:"currency"`
	Notional          string                `json:"notional" yaml:"notional"`
	CompoundingMethod string                `json:"compounding_method" yaml:"compounding_method"`
	FxReset           *FxResetOutput        `json:"fx_reset,omitempty" yaml:"fx_reset,omitempty"`
	AccrualPeriods    []AccrualPeriodOutput `json:"accrual_periods" yaml:"accrual_periods"`
}

// ExchangeOutput is a notional exchange; negative amounts are paid.
type ExchangeOutput struct {
	PaymentDate string `json:"payment_date" yaml:"payment_date"`
	Currency    string `json:"currency" yaml:"currency"`
	Amount      string `json:"amount" yaml:"amount"`
}

// LegOutput is the document written by `swapleg expand`.
type LegOutput struct {
	StartDate      string                `json:"start_date" yaml:"start_date"`
	EndDate        string                `json:"end_date" yaml:"end_date"`
	Currency       string                `json:"currency" yaml:"currency"`
	PaymentPeriods []PaymentPeriodOutput `json:"payment_periods" yaml:"payment_periods"`
	PaymentEvents  []ExchangeOutput      `json:"payment_events" yaml:"payment_events"`
}

// PeriodOutput is a generated schedule period.
type PeriodOutput struct {
	StartDate           string `json:"start_date" yaml:"start_date"`
	EndDate             string `json:"end_date" yaml:"end_date"`
	UnadjustedStartDate string `json:"unadjusted_start_date" yaml:"unadjusted_start_date"`
	UnadjustedEndDate   string `json:"unadjusted_end_date" yaml:"unadjusted_end_date"`
}

// ScheduleOutput is the document written by `swapleg schedule`.
type ScheduleOutput struct {
	Periods []PeriodOutput `json:"periods" yaml:"periods"`
}

// ErrorOutput reports a failed command; Kind is schedule, rate, configuration or input.
type ErrorOutput struct {
	Error string `json:"error" yaml:"error"`
	Kind  string `json:"kind" yaml:"kind"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(utils.DateLayout)
}

// NewLegOutput flattens an expanded leg into its output document.
func NewLegOutput(leg swap.ExpandedSwapLeg) LegOutput {
	out := LegOutput{
		StartDate:      formatDate(leg.StartDate()),
		EndDate:        formatDate(leg.EndDate()),
		Currency:       string(leg.Currency()),
		PaymentPeriods: make([]PaymentPeriodOutput, 0, len(leg.PaymentPeriods)),
		PaymentEvents:  make([]ExchangeOutput, 0, len(leg.PaymentEvents)),
	}
	for _, pp := range leg.PaymentPeriods {
		po := PaymentPeriodOutput{
			PaymentDate:       formatDate(pp.PaymentDate),
			StartDate:         formatDate(pp.StartDate()),
			EndDate:           formatDate(pp.EndDate()),
			Currency:          string(pp.Currency),
			Notional:          pp.Notional.String(),
			CompoundingMethod: string(pp.CompoundingMethod),
			AccrualPeriods:    make([]AccrualPeriodOutput, 0, len(pp.AccrualPeriods)),
		}
		if pp.FxReset != nil {
			po.FxReset = &FxResetOutput{
				Index:             string(pp.FxReset.Index),
				ReferenceCurrency: string(pp.FxReset.ReferenceCurrency),
				FixingDate:        formatDate(pp.FxReset.FixingDate),
			}
		}
		for _, ap := range pp.AccrualPeriods {
			ao := AccrualPeriodOutput{
				StartDate:           formatDate(ap.StartDate),
				EndDate:             formatDate(ap.EndDate),
				UnadjustedStartDate: formatDate(ap.UnadjustedStartDate),
				UnadjustedEndDate:   formatDate(ap.UnadjustedEndDate),
				YearFraction:        ap.YearFraction,
			}
			switch r := ap.Rate.(type) {
			case swap.FixedRate:
				ao.RateType = "FIXED"
				ao.Rate = r.Rate.String()
			case swap.IborRate:
				ao.RateType = "IBOR"
				ao.Index = string(r.Index)
				ao.FixingDate = formatDate(r.FixingDate)
			}
			po.AccrualPeriods = append(po.AccrualPeriods, ao)
		}
		out.PaymentPeriods = append(out.PaymentPeriods, po)
	}
	for _, ev := range leg.PaymentEvents {
		out.PaymentEvents = append(out.PaymentEvents, ExchangeOutput{
			PaymentDate: formatDate(ev.PaymentDate),
			Currency:    string(ev.Amount.Currency),
			Amount:      ev.Amount.Amount.String(),
		})
	}
	return out
}

// NewScheduleOutput lists generated periods with both date sets.
func NewScheduleOutput(periods []swap.SchedulePeriod) ScheduleOutput {
	out := ScheduleOutput{Periods: make([]PeriodOutput, 0, len(periods))}
	for _, p := range periods {
		out.Periods = append(out.Periods, PeriodOutput{
			StartDate:           formatDate(p.StartDate),
			EndDate:             formatDate(p.EndDate),
			UnadjustedStartDate: formatDate(p.UnadjustedStartDate),
			UnadjustedEndDate:   formatDate(p.UnadjustedEndDate),
		})
	}
	return out
}

// NewErrorOutput classifies err by its swap error kind.
func NewErrorOutput(err error) ErrorOutput {
	kind := "input"
	switch {
	case swap.IsScheduleError(err):
		kind = "schedule"
	case swap.IsRateError(err):
		kind = "rate"
	case swap.IsConfigurationError(err):
		kind = "configuration"
	}
	return ErrorOutput{Error: err.Error(), Kind: kind}
}

// Encode writes v to w in format.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatMsgpack:
		// msgpack output reuses the json tags.
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
