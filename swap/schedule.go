package swap

import (
	"time"

	"github.com/meenmo/swapleg/calendar"
	"github.com/meenmo/swapleg/swap/config"
	"github.com/meenmo/swapleg/swap/market"
	"github.com/meenmo/swapleg/utils"
)

// PeriodicSchedule describes regular periods between two dates.
//
// StubConvention and RollConvention default to NONE when empty.
type PeriodicSchedule struct {
	StartDate             time.Time
	EndDate               time.Time
	Frequency             market.Frequency
	BusinessDayAdjustment calendar.BusinessDayAdjustment
	StubConvention        market.StubConvention
	RollConvention        market.RollConvention
}

// SchedulePeriod is one generated period. Both the unadjusted and the
// business-day adjusted boundaries are always populated.
type SchedulePeriod struct {
	StartDate           time.Time
	EndDate             time.Time
	UnadjustedStartDate time.Time
	UnadjustedEndDate   time.Time
}

func (s PeriodicSchedule) stub() market.StubConvention {
	if s.StubConvention == "" {
		return market.StubNone
	}
	return s.StubConvention
}

func (s PeriodicSchedule) roll() market.RollConvention {
	if s.RollConvention == "" {
		return market.RollNone
	}
	return s.RollConvention
}

// Validate checks the schedule definition without generating it.
func (s PeriodicSchedule) Validate() error {
	const op = "PeriodicSchedule.Validate"
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return configErr(op, nil, "start and end dates are required")
	}
	if !s.StartDate.Before(s.EndDate) {
		return configErr(op, nil, "start %s not before end %s",
			s.StartDate.Format(utils.DateLayout), s.EndDate.Format(utils.DateLayout))
	}
	if s.Frequency <= 0 {
		return scheduleErr(op, nil, "unsupported frequency %d", s.Frequency)
	}
	switch s.stub() {
	case market.StubNone, market.StubShortFinal, market.StubShortInitial:
	default:
		return configErr(op, nil, "unknown stub convention %q", s.StubConvention)
	}
	switch s.roll() {
	case market.RollNone, market.RollEOM:
	default:
		return configErr(op, nil, "unknown roll convention %q", s.RollConvention)
	}
	if err := s.BusinessDayAdjustment.Validate(); err != nil {
		return scheduleErr(op, err, "invalid business day adjustment")
	}
	return nil
}

// AdjustedStartDate returns the business-day adjusted start date.
func (s PeriodicSchedule) AdjustedStartDate() (time.Time, error) {
	t, err := s.BusinessDayAdjustment.Adjust(s.StartDate)
	if err != nil {
		return time.Time{}, scheduleErr("PeriodicSchedule.AdjustedStartDate", err, "cannot adjust start date")
	}
	return t, nil
}

// AdjustedEndDate returns the business-day adjusted end date.
func (s PeriodicSchedule) AdjustedEndDate() (time.Time, error) {
	t, err := s.BusinessDayAdjustment.Adjust(s.EndDate)
	if err != nil {
		return time.Time{}, scheduleErr("PeriodicSchedule.AdjustedEndDate", err, "cannot adjust end date")
	}
	return t, nil
}

// step returns the date n periods away from anchor. With RollEOM a month-end
// anchor stays on month-end; otherwise the EDATE rule clamps short months.
func (s PeriodicSchedule) step(anchor time.Time, n int) time.Time {
	d := utils.AddMonth(anchor, n*s.Frequency.Months())
	if s.roll() == market.RollEOM && utils.IsLastDayOfMonth(anchor) {
		return utils.LastDayOfMonth(d)
	}
	return d
}

// UnadjustedDates returns the ordered unadjusted period boundaries, start and end included.
func (s PeriodicSchedule) UnadjustedDates() ([]time.Time, error) {
	const op = "PeriodicSchedule.UnadjustedDates"
	if err := s.Validate(); err != nil {
		return nil, err
	}
	limit := config.GetConfig().MaxSchedulePeriods

	if s.stub() == market.StubShortInitial {
		// Roll backward from the end date; the first period absorbs the remainder.
		dates := []time.Time{s.EndDate}
		for i := 1; ; i++ {
			d := s.step(s.EndDate, -i)
			if !d.After(s.StartDate) {
				dates = append(dates, s.StartDate)
				break
			}
			dates = append(dates, d)
			if len(dates)-1 > limit {
				return nil, scheduleErr(op, nil, "more than %d periods", limit)
			}
		}
		for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
			dates[i], dates[j] = dates[j], dates[i]
		}
		return checkPeriodCount(op, dates, limit)
	}

	dates := []time.Time{s.StartDate}
	for i := 1; ; i++ {
		d := s.step(s.StartDate, i)
		if d.Equal(s.EndDate) {
			dates = append(dates, d)
			break
		}
		if d.After(s.EndDate) {
			if s.stub() == market.StubNone {
				return nil, scheduleErr(op, nil, "%s to %s is not a whole number of %s periods",
					s.StartDate.Format(utils.DateLayout), s.EndDate.Format(utils.DateLayout), s.Frequency)
			}
			dates = append(dates, s.EndDate)
			break
		}
		dates = append(dates, d)
		if len(dates)-1 > limit {
			return nil, scheduleErr(op, nil, "more than %d periods", limit)
		}
	}
	return checkPeriodCount(op, dates, limit)
}

func checkPeriodCount(op string, dates []time.Time, limit int) ([]time.Time, error) {
	if len(dates)-1 > limit {
		return nil, scheduleErr(op, nil, "more than %d periods", limit)
	}
	return dates, nil
}

// Generate builds the ordered, contiguous periods of the schedule.
func (s PeriodicSchedule) Generate() ([]SchedulePeriod, error) {
	const op = "PeriodicSchedule.Generate"
	unadjusted, err := s.UnadjustedDates()
	if err != nil {
		return nil, err
	}

	adjusted := make([]time.Time, len(unadjusted))
	for i, d := range unadjusted {
		adj, err := s.BusinessDayAdjustment.Adjust(d)
		if err != nil {
			return nil, scheduleErr(op, err, "cannot adjust %s", d.Format(utils.DateLayout))
		}
		if i > 0 && !adj.After(adjusted[i-1]) {
			return nil, scheduleErr(op, nil, "adjusted boundary %s does not follow %s",
				adj.Format(utils.DateLayout), adjusted[i-1].Format(utils.DateLayout))
		}
		adjusted[i] = adj
	}

	periods := make([]SchedulePeriod, 0, len(unadjusted)-1)
	for i := 0; i < len(unadjusted)-1; i++ {
		periods = append(periods, SchedulePeriod{
			StartDate:           adjusted[i],
			EndDate:             adjusted[i+1],
			UnadjustedStartDate: unadjusted[i],
			UnadjustedEndDate:   unadjusted[i+1],
		})
	}
	return periods, nil
}
