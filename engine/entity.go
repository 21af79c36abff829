package engine

// =============================================================================
// ENTITY ACCESSORS - Typed attribute access per entity kind
// =============================================================================

// EntityKind identifies which entity a variable belongs to.
type EntityKind string

const (
	EntityPerson    EntityKind = "person"
	EntityHousehold EntityKind = "household"
)

// AttributeID names an entity attribute a variable declares as input.
// The set is closed: attribute access goes through the typed accessor
// interfaces below, never through runtime string lookup.
type AttributeID string

const (
	AttrIncome           AttributeID = "income"
	AttrTaxableFloorArea AttributeID = "taxable_floor_area"
	AttrOccupancyStatus  AttributeID = "occupancy_status"
)

// OccupancyStatus is the closed categorical domain describing a
// household's residency relationship. The domain is owned by the host
// model; formulas compare against members, they never enumerate it.
type OccupancyStatus string

const (
	OccupancyOwner      OccupancyStatus = "owner"
	OccupancyTenant     OccupancyStatus = "tenant"
	OccupancyFreeLodger OccupancyStatus = "free_lodger"
	OccupancyHomeless   OccupancyStatus = "homeless"
)

// ParseOccupancyStatus maps a label to a member of the closed domain.
// Unknown labels are an error at the data boundary; inside formulas an
// unrecognized category simply contributes zero.
func ParseOccupancyStatus(s string) (OccupancyStatus, error) {
	switch OccupancyStatus(s) {
	case OccupancyOwner, OccupancyTenant, OccupancyFreeLodger, OccupancyHomeless:
		return OccupancyStatus(s), nil
	default:
		return "", ErrUnknownOccupancy
	}
}

// Person is the accessor contract for an individual. Attributes are
// observed at month granularity.
type Person interface {
	// Income returns the individual's income for the given month.
	Income(period Period) (Amount, error)
}

// Household is the accessor contract for a household. Attributes are
// observed at month granularity even when the consuming variable is
// defined per year.
type Household interface {
	// TaxableFloorArea returns the household's taxable floor area for
	// the given month.
	TaxableFloorArea(period Period) (Amount, error)

	// Occupancy returns the household's occupancy status for the given
	// month.
	Occupancy(period Period) (OccupancyStatus, error)

	// Members returns the individuals belonging to the household. The
	// relationship is owned by the host model; the bundled rules do not
	// read it directly.
	Members() []Person
}
