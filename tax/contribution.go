package tax

import "github.com/warp/fiscal-rules/engine"

// SocialSecurityContribution computes the progressive contribution paid
// on an individual's monthly income. The bracket arithmetic itself lives
// in engine.MarginalScale; this rule supplies the income and resolves
// the scale in force for the month.
type SocialSecurityContribution struct{}

func (SocialSecurityContribution) Compute(person engine.Person, period engine.Period, params engine.Resolver) (engine.Amount, error) {
	if period.Granularity() != engine.GranularityMonth {
		return engine.Amount{}, &engine.GranularityError{
			Variable: VariableSocialSecurityContribution,
			Want:     engine.GranularityMonth,
			Got:      period.Granularity(),
		}
	}

	income, err := person.Income(period)
	if err != nil {
		return engine.Amount{}, err
	}

	scale, err := params.At(period).Scale(ParamContributionScale)
	if err != nil {
		return engine.Amount{}, err
	}
	if err := scale.Validate(); err != nil {
		return engine.Amount{}, err
	}

	return scale.Calc(income), nil
}
