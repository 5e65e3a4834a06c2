package swap

// Expand resolves the definition into dated payment periods and notional exchanges.
//
// The result shares no storage with the definition. On error no partial leg
// is returned; the error matches ErrSchedule, ErrRate or ErrConfiguration.
func Expand(def SwapLegDefinition) (ExpandedSwapLeg, error) {
	// The zero value never went through NewSwapLegDefinition.
	if err := validateParams(def.params()); err != nil {
		return ExpandedSwapLeg{}, err
	}

	schedule, err := def.accrualSchedule.Generate()
	if err != nil {
		return ExpandedSwapLeg{}, err
	}
	accruals, err := buildAccrualPeriods(schedule, dayCountOf(def.calculation))
	if err != nil {
		return ExpandedSwapLeg{}, err
	}
	if err := resolveRates(accruals, def.calculation); err != nil {
		return ExpandedSwapLeg{}, err
	}
	groups, err := groupPaymentPeriods(accruals, def.paymentSchedule, def.accrualSchedule.Frequency)
	if err != nil {
		return ExpandedSwapLeg{}, err
	}
	periods, err := def.resolveNotionals(groups)
	if err != nil {
		return ExpandedSwapLeg{}, err
	}

	return ExpandedSwapLeg{
		PaymentPeriods: periods,
		PaymentEvents:  notionalExchanges(def.notionalSchedule, periods),
	}, nil
}

// Expand is shorthand for Expand(d).
func (d SwapLegDefinition) Expand() (ExpandedSwapLeg, error) {
	return Expand(d)
}
