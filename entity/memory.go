// Package entity provides an in-memory reference implementation of the
// typed entity accessors. Hosts with their own population model implement
// engine.Person and engine.Household directly; this package exists for
// tests, examples, and small standalone evaluations.
package entity

import (
	"github.com/warp/fiscal-rules/engine"
)

// =============================================================================
// INDIVIDUAL
// =============================================================================

// Individual holds a person's attributes as monthly observations.
type Individual struct {
	id     string
	income map[string]engine.Amount
}

var _ engine.Person = (*Individual)(nil)

func NewIndividual(id string) *Individual {
	return &Individual{id: id, income: make(map[string]engine.Amount)}
}

func (p *Individual) ID() string { return p.id }

// SetIncome records the individual's income for a month. A year period
// records the same income for each of its months.
func (p *Individual) SetIncome(period engine.Period, amount engine.Amount) *Individual {
	for _, month := range period.Months() {
		p.income[month.String()] = amount
	}
	return p
}

func (p *Individual) Income(period engine.Period) (engine.Amount, error) {
	amount, ok := p.income[period.String()]
	if !ok {
		return engine.Amount{}, &engine.AttributeNotFoundError{
			Entity:    p.id,
			Attribute: engine.AttrIncome,
			Period:    period,
		}
	}
	return amount, nil
}

// =============================================================================
// HOUSEHOLD
// =============================================================================

// HouseholdRecord holds a household's attributes as monthly observations
// plus its member individuals.
type HouseholdRecord struct {
	id        string
	members   []engine.Person
	floorArea map[string]engine.Amount
	occupancy map[string]engine.OccupancyStatus
}

var _ engine.Household = (*HouseholdRecord)(nil)

func NewHousehold(id string, members ...engine.Person) *HouseholdRecord {
	return &HouseholdRecord{
		id:        id,
		members:   members,
		floorArea: make(map[string]engine.Amount),
		occupancy: make(map[string]engine.OccupancyStatus),
	}
}

func (h *HouseholdRecord) ID() string               { return h.id }
func (h *HouseholdRecord) Members() []engine.Person { return h.members }

func (h *HouseholdRecord) AddMember(p engine.Person) {
	h.members = append(h.members, p)
}

// SetTaxableFloorArea records the household's taxable floor area for a
// month. A year period records it for each of its months.
func (h *HouseholdRecord) SetTaxableFloorArea(period engine.Period, area engine.Amount) *HouseholdRecord {
	for _, month := range period.Months() {
		h.floorArea[month.String()] = area
	}
	return h
}

// SetOccupancy records the household's occupancy status for a month. A
// year period records it for each of its months.
func (h *HouseholdRecord) SetOccupancy(period engine.Period, status engine.OccupancyStatus) *HouseholdRecord {
	for _, month := range period.Months() {
		h.occupancy[month.String()] = status
	}
	return h
}

func (h *HouseholdRecord) TaxableFloorArea(period engine.Period) (engine.Amount, error) {
	area, ok := h.floorArea[period.String()]
	if !ok {
		return engine.Amount{}, &engine.AttributeNotFoundError{
			Entity:    h.id,
			Attribute: engine.AttrTaxableFloorArea,
			Period:    period,
		}
	}
	return area, nil
}

func (h *HouseholdRecord) Occupancy(period engine.Period) (engine.OccupancyStatus, error) {
	status, ok := h.occupancy[period.String()]
	if !ok {
		return "", &engine.AttributeNotFoundError{
			Entity:    h.id,
			Attribute: engine.AttrOccupancyStatus,
			Period:    period,
		}
	}
	return status, nil
}
