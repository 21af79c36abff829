package factory

import (
	"time"

	"github.com/warp/fiscal-rules/engine"
	"github.com/warp/fiscal-rules/tax"
)

// =============================================================================
// BASELINE PARAMETERS
// =============================================================================

// BaselineParameters returns the bundled legal parameter set as a ready
// tree. It mirrors testdata/parameters.yaml; hosts that load parameters
// from their own files do not need it.
//
// Versions:
//   - income tax rate: 15% from 2000, 20% from 2020
//   - social security contribution: two brackets from 2000, steeper
//     top bracket from 2017
//   - property tax: 1%/m2 with a 200 minimum from 2010
func BaselineParameters() *engine.Parameters {
	params := engine.NewParameters()

	params.SetRate(tax.ParamIncomeTaxRate, date(2000, time.January, 1), engine.NewAmount(0.15))
	params.SetRate(tax.ParamIncomeTaxRate, date(2020, time.January, 1), engine.NewAmount(0.20))

	params.SetScale(tax.ParamContributionScale, date(2000, time.January, 1), engine.NewMarginalScale(
		engine.Bracket{Threshold: engine.NewAmount(0), Rate: engine.NewAmount(0.1)},
		engine.Bracket{Threshold: engine.NewAmount(1000), Rate: engine.NewAmount(0.2)},
	))
	params.SetScale(tax.ParamContributionScale, date(2017, time.January, 1), engine.NewMarginalScale(
		engine.Bracket{Threshold: engine.NewAmount(0), Rate: engine.NewAmount(0.1)},
		engine.Bracket{Threshold: engine.NewAmount(1000), Rate: engine.NewAmount(0.25)},
	))

	params.SetRate(tax.ParamPropertyTaxRate, date(2010, time.January, 1), engine.NewAmount(0.01))
	params.SetRate(tax.ParamPropertyTaxMinimalAmount, date(2010, time.January, 1), engine.NewAmount(200))

	return params
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
