package tax

import "github.com/warp/fiscal-rules/engine"

// PropertyTax computes a household's annual property tax.
//
// The tax is defined for a year but depends on the taxable floor area
// and occupancy status observed in the FIRST month of that year. This is
// a fixed evaluation-time policy of the rule, not a per-call choice.
//
// The amount is floor_area * rate, never below the configured minimal
// amount. It applies only to households that own or rent their main
// residency; every other occupancy category yields zero.
type PropertyTax struct{}

func (PropertyTax) Compute(household engine.Household, period engine.Period, params engine.Resolver) (engine.Amount, error) {
	if period.Granularity() != engine.GranularityYear {
		return engine.Amount{}, &engine.GranularityError{
			Variable: VariablePropertyTax,
			Want:     engine.GranularityYear,
			Got:      period.Granularity(),
		}
	}

	january := period.FirstMonth()

	floorArea, err := household.TaxableFloorArea(january)
	if err != nil {
		return engine.Amount{}, err
	}

	set := params.At(period)
	rate, err := set.Rate(ParamPropertyTaxRate)
	if err != nil {
		return engine.Amount{}, err
	}
	minimal, err := set.Rate(ParamPropertyTaxMinimalAmount)
	if err != nil {
		return engine.Amount{}, err
	}

	taxAmount := floorArea.Mul(rate).Max(minimal)

	occupancy, err := household.Occupancy(january)
	if err != nil {
		return engine.Amount{}, err
	}

	// Applicability is the SUM of two independent 0/1 indicators, not a
	// mutually-exclusive match. Under the intended domain a household is
	// never both owner and tenant; if the domain ever allowed a category
	// satisfying both, the tax would double-count. Preserved as-is.
	applicability := indicator(occupancy == engine.OccupancyOwner).
		Add(indicator(occupancy == engine.OccupancyTenant))

	return applicability.Mul(taxAmount), nil
}

func indicator(b bool) engine.Amount {
	if b {
		return engine.NewAmountFromInt(1)
	}
	return engine.ZeroAmount()
}
