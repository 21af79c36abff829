package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MARGINAL SCALE - Progressive bracket evaluation
// =============================================================================

// Bracket is one step of a marginal scale: everything above Threshold
// (up to the next bracket's threshold) is taxed at Rate.
type Bracket struct {
	Threshold Amount
	Rate      Amount
}

// MarginalScale is an ordered list of brackets. The last bracket is
// open-ended: its rate applies to the whole base above its threshold.
type MarginalScale struct {
	Brackets []Bracket
}

func NewMarginalScale(brackets ...Bracket) MarginalScale {
	return MarginalScale{Brackets: brackets}
}

// Validate checks the scale is usable: at least one bracket and strictly
// ascending thresholds. A scale that fails validation must not be
// evaluated; Calc assumes ordering.
func (s MarginalScale) Validate() error {
	if len(s.Brackets) == 0 {
		return ErrScaleEmpty
	}
	for i := 1; i < len(s.Brackets); i++ {
		if !s.Brackets[i].Threshold.GreaterThan(s.Brackets[i-1].Threshold) {
			return fmt.Errorf("bracket %d threshold %s not above bracket %d threshold %s: %w",
				i, s.Brackets[i].Threshold, i-1, s.Brackets[i-1].Threshold, ErrScaleUnordered)
		}
	}
	return nil
}

// Calc applies the scale to base: for each bracket, the slice of base
// falling between that bracket's threshold and the next is multiplied by
// the bracket's rate, and the slices are summed. Monotonically
// non-decreasing in base for a valid scale. A base at or below the first
// threshold yields zero.
func (s MarginalScale) Calc(base Amount) Amount {
	total := decimal.Zero
	for i, bracket := range s.Brackets {
		lower := bracket.Threshold
		if base.LessOrEqual(lower) {
			break
		}
		upper := base
		if i+1 < len(s.Brackets) && s.Brackets[i+1].Threshold.LessThan(base) {
			upper = s.Brackets[i+1].Threshold
		}
		total = total.Add(upper.Sub(lower).Mul(bracket.Rate).Value)
	}
	return Amount{Value: total}
}

func (s MarginalScale) String() string {
	out := "scale["
	for i, b := range s.Brackets {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s:%s", b.Threshold, b.Rate)
	}
	return out + "]"
}
