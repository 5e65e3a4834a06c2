// Package value models numbers that step over the life of a leg, such as an
// amortising notional or a stepped fixed rate.
//
// A Schedule is an initial value plus steps keyed by accrual period index.
// Resolving index i applies, in index order, every step whose index is <= i.
package value

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrInvalidStep is returned for a step that cannot be applied.
var ErrInvalidStep = errors.New("invalid value step")

// AdjustmentType selects how a step modifies the running value.
type AdjustmentType string

const (
	// Replace sets the value to an absolute amount.
	Replace AdjustmentType = "REPLACE"
	// DeltaAmount adds a relative amount.
	DeltaAmount AdjustmentType = "DELTA_AMOUNT"
	// DeltaMultiplier adds a fraction of the running value (0.1 adds 10%).
	DeltaMultiplier AdjustmentType = "DELTA_MULTIPLIER"
	// Multiplier scales the running value.
	Multiplier AdjustmentType = "MULTIPLIER"
)

// Adjustment is one modification of the running value.
type Adjustment struct {
	Type      AdjustmentType
	Modifying decimal.Decimal
}

// OfReplace sets the running value to v.
func OfReplace(v decimal.Decimal) Adjustment { return Adjustment{Type: Replace, Modifying: v} }

// OfDeltaAmount adds v to the running value.
func OfDeltaAmount(v decimal.Decimal) Adjustment { return Adjustment{Type: DeltaAmount, Modifying: v} }

// OfDeltaMultiplier scales the running value by (1 + v).
func OfDeltaMultiplier(v decimal.Decimal) Adjustment {
	return Adjustment{Type: DeltaMultiplier, Modifying: v}
}

// OfMultiplier scales the running value by v.
func OfMultiplier(v decimal.Decimal) Adjustment { return Adjustment{Type: Multiplier, Modifying: v} }

// Apply returns base modified by the adjustment.
func (a Adjustment) Apply(base decimal.Decimal) (decimal.Decimal, error) {
	switch a.Type {
	case Replace:
		return a.Modifying, nil
	case DeltaAmount:
		return base.Add(a.Modifying), nil
	case DeltaMultiplier:
		return base.Add(base.Mul(a.Modifying)), nil
	case Multiplier:
		return base.Mul(a.Modifying), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: adjustment type %q", ErrInvalidStep, a.Type)
	}
}

// Step applies an adjustment from the accrual period at PeriodIndex onwards.
type Step struct {
	PeriodIndex int
	Adjustment  Adjustment
}

// StepOf builds a Step.
func StepOf(periodIndex int, adj Adjustment) Step {
	return Step{PeriodIndex: periodIndex, Adjustment: adj}
}

// Schedule is an initial value with ordered steps.
type Schedule struct {
	Initial decimal.Decimal
	Steps   []Step
}

// Of builds a Schedule, copying and sorting the steps by period index.
func Of(initial decimal.Decimal, steps ...Step) Schedule {
	return Schedule{Initial: initial, Steps: sortedSteps(steps)}
}

// Constant builds a Schedule with no steps.
func Constant(v decimal.Decimal) Schedule {
	return Schedule{Initial: v}
}

func sortedSteps(steps []Step) []Step {
	if len(steps) == 0 {
		return nil
	}
	out := make([]Step, len(steps))
	copy(out, steps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PeriodIndex < out[j].PeriodIndex
	})
	return out
}

// Clone returns a copy that shares no step storage with s.
func (s Schedule) Clone() Schedule {
	return Schedule{Initial: s.Initial, Steps: sortedSteps(s.Steps)}
}

// Validate rejects negative or duplicate step indexes and unknown adjustment types.
func (s Schedule) Validate() error {
	seen := make(map[int]struct{}, len(s.Steps))
	for _, st := range s.Steps {
		if st.PeriodIndex < 0 {
			return fmt.Errorf("%w: negative period index %d", ErrInvalidStep, st.PeriodIndex)
		}
		if _, dup := seen[st.PeriodIndex]; dup {
			return fmt.Errorf("%w: duplicate period index %d", ErrInvalidStep, st.PeriodIndex)
		}
		seen[st.PeriodIndex] = struct{}{}
		if _, err := st.Adjustment.Apply(decimal.Zero); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the value in force for the accrual period at index.
func (s Schedule) Resolve(index int) (decimal.Decimal, error) {
	if index < 0 {
		return decimal.Decimal{}, fmt.Errorf("Resolve: negative index %d", index)
	}
	v := s.Initial
	for _, st := range sortedSteps(s.Steps) {
		if st.PeriodIndex > index {
			break
		}
		next, err := st.Adjustment.Apply(v)
		if err != nil {
			return decimal.Decimal{}, err
		}
		v = next
	}
	return v, nil
}

// ResolveAll returns the value for each of the first n accrual periods.
func (s Schedule) ResolveAll(n int) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, n)
	steps := sortedSteps(s.Steps)
	v := s.Initial
	next := 0
	for i := 0; i < n; i++ {
		for next < len(steps) && steps[next].PeriodIndex <= i {
			adj, err := steps[next].Adjustment.Apply(v)
			if err != nil {
				return nil, err
			}
			v = adj
			next++
		}
		out[i] = v
	}
	return out, nil
}
