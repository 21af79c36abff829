// Package tax implements the bundled tax-rule definitions: income tax,
// social security contribution, and property tax. Each rule is a
// stateless pure function over the engine's host contract; the host
// engine decides batching, caching, and scheduling.
package tax

import "github.com/warp/fiscal-rules/engine"

// =============================================================================
// VARIABLE NAMES
// =============================================================================

const (
	VariableIncomeTax                  = "income_tax"
	VariableSocialSecurityContribution = "social_security_contribution"
	VariablePropertyTax                = "property_tax"
)

// =============================================================================
// PARAMETER PATHS
// =============================================================================

const (
	ParamIncomeTaxRate            = "taxes.income_tax_rate"
	ParamContributionScale        = "taxes.social_security_contribution"
	ParamPropertyTaxRate          = "taxes.property_tax.rate"
	ParamPropertyTaxMinimalAmount = "taxes.property_tax.minimal_amount"
)

// Register all bundled variables with the engine registry
func init() {
	engine.RegisterVariable(engine.Variable{
		Name:             VariableIncomeTax,
		ValueType:        engine.ValueReal,
		Entity:           engine.EntityPerson,
		DefinitionPeriod: engine.GranularityMonth,
		Label:            "Income tax",
		Reference:        "https://law.gov.example/income_tax",
		Inputs:           []engine.AttributeID{engine.AttrIncome},
		Parameters:       []string{ParamIncomeTaxRate},
	})
	engine.RegisterVariable(engine.Variable{
		Name:             VariableSocialSecurityContribution,
		ValueType:        engine.ValueReal,
		Entity:           engine.EntityPerson,
		DefinitionPeriod: engine.GranularityMonth,
		Label:            "Progressive contribution paid on salaries to finance social security",
		Reference:        "https://law.gov.example/social_security_contribution",
		Inputs:           []engine.AttributeID{engine.AttrIncome},
		Parameters:       []string{ParamContributionScale},
	})
	engine.RegisterVariable(engine.Variable{
		Name:             VariablePropertyTax,
		ValueType:        engine.ValueReal,
		Entity:           engine.EntityHousehold,
		DefinitionPeriod: engine.GranularityYear,
		Label:            "Tax paid by each household proportionally to the size of its accommodation",
		Reference:        "https://law.gov.example/property_tax",
		Inputs: []engine.AttributeID{
			engine.AttrTaxableFloorArea,
			engine.AttrOccupancyStatus,
		},
		Parameters: []string{ParamPropertyTaxRate, ParamPropertyTaxMinimalAmount},
	})
}
