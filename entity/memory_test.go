package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/fiscal-rules/engine"
	"github.com/warp/fiscal-rules/entity"
)

func TestIndividual_IncomePerMonth(t *testing.T) {
	april := engine.NewMonth(2025, time.April)
	may := engine.NewMonth(2025, time.May)

	p := entity.NewIndividual("p1")
	p.SetIncome(april, engine.NewAmount(2000))

	income, err := p.Income(april)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !income.Equal(engine.NewAmount(2000)) {
		t.Errorf("expected 2000, got %s", income)
	}

	if _, err := p.Income(may); !errors.Is(err, engine.ErrAttributeNotFound) {
		t.Errorf("unset month: expected ErrAttributeNotFound, got %v", err)
	}
}

func TestIndividual_SetIncomeForYearFillsMonths(t *testing.T) {
	p := entity.NewIndividual("p1").SetIncome(engine.NewYear(2025), engine.NewAmount(3000))

	for _, month := range engine.NewYear(2025).Months() {
		income, err := p.Income(month)
		if err != nil {
			t.Fatalf("%s: %v", month, err)
		}
		if !income.Equal(engine.NewAmount(3000)) {
			t.Errorf("%s: expected 3000, got %s", month, income)
		}
	}
}

func TestHousehold_AttributesAndMembers(t *testing.T) {
	january := engine.NewMonth(2025, time.January)
	p1 := entity.NewIndividual("p1")
	p2 := entity.NewIndividual("p2")

	h := entity.NewHousehold("h1", p1)
	h.AddMember(p2)
	h.SetTaxableFloorArea(january, engine.NewAmount(60))
	h.SetOccupancy(january, engine.OccupancyTenant)

	if len(h.Members()) != 2 {
		t.Errorf("expected 2 members, got %d", len(h.Members()))
	}

	area, err := h.TaxableFloorArea(january)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !area.Equal(engine.NewAmount(60)) {
		t.Errorf("expected 60, got %s", area)
	}

	status, err := h.Occupancy(january)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != engine.OccupancyTenant {
		t.Errorf("expected tenant, got %s", status)
	}

	february := engine.NewMonth(2025, time.February)
	if _, err := h.Occupancy(february); !errors.Is(err, engine.ErrAttributeNotFound) {
		t.Errorf("unset month: expected ErrAttributeNotFound, got %v", err)
	}

	var attrErr *engine.AttributeNotFoundError
	_, err = h.TaxableFloorArea(february)
	if !errors.As(err, &attrErr) || attrErr.Attribute != engine.AttrTaxableFloorArea {
		t.Errorf("expected structured attribute error, got %v", err)
	}
}

func TestParseOccupancyStatus(t *testing.T) {
	for _, label := range []string{"owner", "tenant", "free_lodger", "homeless"} {
		if _, err := engine.ParseOccupancyStatus(label); err != nil {
			t.Errorf("%s: unexpected error: %v", label, err)
		}
	}
	if _, err := engine.ParseOccupancyStatus("houseboat"); !errors.Is(err, engine.ErrUnknownOccupancy) {
		t.Errorf("expected ErrUnknownOccupancy, got %v", err)
	}
}
