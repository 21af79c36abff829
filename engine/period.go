package engine

import (
	"fmt"
	"time"
)

// =============================================================================
// PERIOD - The time slice a variable is evaluated for
// =============================================================================

// Granularity is the time resolution a variable is defined at.
type Granularity int

const (
	GranularityMonth Granularity = iota
	GranularityYear
)

func (g Granularity) String() string {
	switch g {
	case GranularityMonth:
		return "month"
	case GranularityYear:
		return "year"
	default:
		return "unknown"
	}
}

// Period identifies a calendar month or a calendar year.
// A Period is a value; all derivations return new Periods.
//
// Examples:
//   - April 2025: NewMonth(2025, time.April)
//   - Year 2025:  NewYear(2025)
type Period struct {
	granularity Granularity
	year        int
	month       time.Month
}

func NewMonth(year int, month time.Month) Period {
	return Period{granularity: GranularityMonth, year: year, month: month}
}

func NewYear(year int) Period {
	return Period{granularity: GranularityYear, year: year}
}

func (p Period) Granularity() Granularity { return p.granularity }
func (p Period) Year() int                { return p.year }

// Month returns the calendar month. Only meaningful for month periods.
func (p Period) Month() time.Month { return p.month }

// FirstMonth returns the first calendar month covered by the period.
// For a year this is January of that year; a month is its own first month.
func (p Period) FirstMonth() Period {
	if p.granularity == GranularityYear {
		return NewMonth(p.year, time.January)
	}
	return p
}

// Start returns the instant the period begins. Parameter versions are
// resolved against this instant.
func (p Period) Start() time.Time {
	month := time.January
	if p.granularity == GranularityMonth {
		month = p.month
	}
	return time.Date(p.year, month, 1, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether other falls inside p. A year contains its
// twelve months and itself; a month contains only itself.
func (p Period) Contains(other Period) bool {
	switch p.granularity {
	case GranularityYear:
		return other.year == p.year
	case GranularityMonth:
		return other.granularity == GranularityMonth && other.year == p.year && other.month == p.month
	default:
		return false
	}
}

// Months returns the month periods covered by p, in calendar order.
func (p Period) Months() []Period {
	if p.granularity == GranularityMonth {
		return []Period{p}
	}
	months := make([]Period, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, NewMonth(p.year, m))
	}
	return months
}

// Next returns the immediately following period at the same granularity.
func (p Period) Next() Period {
	if p.granularity == GranularityYear {
		return NewYear(p.year + 1)
	}
	if p.month == time.December {
		return NewMonth(p.year+1, time.January)
	}
	return NewMonth(p.year, p.month+1)
}

// monthLayout is the format month periods use in configuration and keys.
const monthLayout = "2006-01"

func (p Period) String() string {
	if p.granularity == GranularityYear {
		return fmt.Sprintf("%04d", p.year)
	}
	return p.Start().Format(monthLayout)
}

// ParsePeriod parses "2025" as a year period and "2025-04" as a month
// period.
func ParsePeriod(s string) (Period, error) {
	if t, err := time.Parse(monthLayout, s); err == nil {
		return NewMonth(t.Year(), t.Month()), nil
	}
	if t, err := time.Parse("2006", s); err == nil {
		return NewYear(t.Year()), nil
	}
	return Period{}, fmt.Errorf("parse period %q: want YYYY or YYYY-MM", s)
}
