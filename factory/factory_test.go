package factory_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/fiscal-rules/engine"
	"github.com/warp/fiscal-rules/entity"
	"github.com/warp/fiscal-rules/factory"
	"github.com/warp/fiscal-rules/tax"
)

func personWithIncome(t *testing.T, income float64, period engine.Period) *entity.Individual {
	t.Helper()
	return entity.NewIndividual("p1").SetIncome(period, engine.NewAmount(income))
}

// =============================================================================
// TEST SETUP
// =============================================================================

func loadTestdata(t *testing.T) *engine.Parameters {
	data, err := os.ReadFile("testdata/parameters.yaml")
	require.NoError(t, err)

	params, err := factory.ParseParameters(data)
	require.NoError(t, err)
	return params
}

// assertSameResolution checks two trees resolve identically for the
// given paths over a spread of periods.
func assertSameResolution(t *testing.T, want, got *engine.Parameters) {
	t.Helper()
	periods := []engine.Period{
		engine.NewMonth(2005, time.June),
		engine.NewMonth(2018, time.March),
		engine.NewMonth(2025, time.April),
		engine.NewYear(2025),
	}
	ratePaths := []string{
		tax.ParamIncomeTaxRate,
		tax.ParamPropertyTaxRate,
		tax.ParamPropertyTaxMinimalAmount,
	}

	for _, period := range periods {
		for _, path := range ratePaths {
			wantRate, wantErr := want.At(period).Rate(path)
			gotRate, gotErr := got.At(period).Rate(path)
			require.Equal(t, wantErr == nil, gotErr == nil, "%s at %s", path, period)
			if wantErr == nil {
				assert.True(t, wantRate.Equal(gotRate), "%s at %s: %s vs %s", path, period, wantRate, gotRate)
			}
		}

		wantScale, wantErr := want.At(period).Scale(tax.ParamContributionScale)
		gotScale, gotErr := got.At(period).Scale(tax.ParamContributionScale)
		require.Equal(t, wantErr == nil, gotErr == nil, "scale at %s", period)
		if wantErr == nil {
			for _, income := range []float64{0, 500, 1000, 1500, 100000} {
				w := wantScale.Calc(engine.NewAmount(income))
				g := gotScale.Calc(engine.NewAmount(income))
				assert.True(t, w.Equal(g), "scale at %s for income %.0f: %s vs %s", period, income, w, g)
			}
		}
	}
}

// =============================================================================
// PARSING
// =============================================================================

func TestParseParameters_Testdata(t *testing.T) {
	params := loadTestdata(t)

	rate, err := params.At(engine.NewMonth(2025, time.April)).Rate(tax.ParamIncomeTaxRate)
	require.NoError(t, err)
	assert.True(t, rate.Equal(engine.NewAmount(0.20)), "got %s", rate)

	rate, err = params.At(engine.NewMonth(2010, time.June)).Rate(tax.ParamIncomeTaxRate)
	require.NoError(t, err)
	assert.True(t, rate.Equal(engine.NewAmount(0.15)), "got %s", rate)

	scale, err := params.At(engine.NewMonth(2010, time.June)).Scale(tax.ParamContributionScale)
	require.NoError(t, err)
	got := scale.Calc(engine.NewAmount(1500))
	assert.True(t, got.Equal(engine.NewAmount(200)), "got %s", got)

	// The 2017 version raises the top rate.
	scale, err = params.At(engine.NewMonth(2018, time.March)).Scale(tax.ParamContributionScale)
	require.NoError(t, err)
	got = scale.Calc(engine.NewAmount(1500))
	assert.True(t, got.Equal(engine.NewAmount(225)), "got %s", got)
}

func TestParseParameters_MatchesBaselinePreset(t *testing.T) {
	assertSameResolution(t, factory.BaselineParameters(), loadTestdata(t))
}

func TestParseParameters_RulesEvaluateAgainstParsedTree(t *testing.T) {
	params := loadTestdata(t)
	april := engine.NewMonth(2025, time.April)

	p := personWithIncome(t, 2000, april)
	gotTax, err := tax.IncomeTax{}.Compute(p, april, params)
	require.NoError(t, err)
	assert.True(t, gotTax.Equal(engine.NewAmount(400)), "got %s", gotTax)
}

// =============================================================================
// VALIDATION FAILURES
// =============================================================================

func TestParseParameters_Malformed(t *testing.T) {
	cases := map[string]string{
		"not yaml": "::\n  - {",
		"values and children mixed": `
taxes:
  rate:
    values:
      2000-01-01: 0.1
    nested:
      values:
        2000-01-01: 0.2
`,
		"bad date": `
taxes:
  rate:
    values:
      someday: 0.1
`,
		"unordered scale": `
taxes:
  scale:
    scales:
      2000-01-01:
        - {threshold: 1000, rate: 0.2}
        - {threshold: 0, rate: 0.1}
`,
		"empty leaf": `
taxes:
  rate: {}
`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := factory.ParseParameters([]byte(doc))
			assert.Error(t, err)
		})
	}
}

// =============================================================================
// ROUND-TRIP
// =============================================================================

func TestToYAML_RoundTrip(t *testing.T) {
	original := factory.BaselineParameters()

	data, err := factory.ToYAML(original)
	require.NoError(t, err)

	reparsed, err := factory.ParseParameters(data)
	require.NoError(t, err)

	assertSameResolution(t, original, reparsed)
}
