package tax

import "github.com/warp/fiscal-rules/engine"

// IncomeTax computes an individual's monthly income tax: income times
// the flat rate parameter in force for the month. No clamping, no
// validation of sign or magnitude; parameter and attribute errors
// propagate unchanged.
type IncomeTax struct{}

func (IncomeTax) Compute(person engine.Person, period engine.Period, params engine.Resolver) (engine.Amount, error) {
	if period.Granularity() != engine.GranularityMonth {
		return engine.Amount{}, &engine.GranularityError{
			Variable: VariableIncomeTax,
			Want:     engine.GranularityMonth,
			Got:      period.Granularity(),
		}
	}

	income, err := person.Income(period)
	if err != nil {
		return engine.Amount{}, err
	}

	rate, err := params.At(period).Rate(ParamIncomeTaxRate)
	if err != nil {
		return engine.Amount{}, err
	}

	return income.Mul(rate), nil
}
