/*
parameters.go - Time-versioned parameter tree

PURPOSE:
  Legal constants (rates, thresholds, minimums) change over time and are
  organized hierarchically ("taxes.property_tax.rate"). The parameter
  tree stores every dated version of every parameter; a formula binds the
  tree to its evaluation period and reads the values in force.

KEY CONCEPTS:
  - Parameters: The mutable builder / root of the tree
  - ParameterSet: A read-only view bound to one period
  - Resolver: The interface formulas accept (At(period) -> ParameterSet)

VERSION RESOLUTION:
  Each leaf holds dated versions sorted by start date. Resolving a
  period picks the latest version whose start date is not after the
  period's first instant. A leaf with no version in force resolves to
  ErrParameterNotFound, never to a zero value.

USAGE:
  params := engine.NewParameters()
  params.SetRate("taxes.income_tax_rate", date(2000, 1, 1), engine.NewAmount(0.15))

  set := params.At(engine.NewMonth(2025, time.April))
  rate, err := set.Rate("taxes.income_tax_rate")

SEE ALSO:
  - scale.go: The scale values leaves can hold
  - factory/: YAML parameter files parsed into this tree
*/
package engine

import (
	"sort"
	"strings"
	"time"
)

// =============================================================================
// PARAMETER TREE
// =============================================================================

type scalarVersion struct {
	since time.Time
	value Amount
}

type scaleVersion struct {
	since time.Time
	scale MarginalScale
}

type parameterNode struct {
	children map[string]*parameterNode
	scalars  []scalarVersion
	scales   []scaleVersion
}

func newParameterNode() *parameterNode {
	return &parameterNode{children: make(map[string]*parameterNode)}
}

// Parameters is the root of a parameter tree. Build it once, then treat
// it as read-only: formulas only ever see the period-bound view.
type Parameters struct {
	root *parameterNode
}

func NewParameters() *Parameters {
	return &Parameters{root: newParameterNode()}
}

// SetRate records a scalar parameter version in force from since.
func (p *Parameters) SetRate(path string, since time.Time, value Amount) {
	node := p.node(path)
	node.scalars = append(node.scalars, scalarVersion{since: since, value: value})
	sort.Slice(node.scalars, func(i, j int) bool {
		return node.scalars[i].since.Before(node.scalars[j].since)
	})
}

// SetScale records a marginal-scale parameter version in force from since.
func (p *Parameters) SetScale(path string, since time.Time, scale MarginalScale) {
	node := p.node(path)
	node.scales = append(node.scales, scaleVersion{since: since, scale: scale})
	sort.Slice(node.scales, func(i, j int) bool {
		return node.scales[i].since.Before(node.scales[j].since)
	})
}

func (p *Parameters) node(path string) *parameterNode {
	node := p.root
	for _, part := range strings.Split(path, ".") {
		child, ok := node.children[part]
		if !ok {
			child = newParameterNode()
			node.children[part] = child
		}
		node = child
	}
	return node
}

func (p *Parameters) lookup(path string) *parameterNode {
	node := p.root
	for _, part := range strings.Split(path, ".") {
		child, ok := node.children[part]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// Walk visits every leaf in lexical path order. Used by exporters; the
// version slices must not be mutated.
func (p *Parameters) Walk(visit func(path string, scalars []ScalarValue, scales []ScaleValue)) {
	p.walk("", p.root, visit)
}

// ScalarValue is one dated version of a scalar parameter.
type ScalarValue struct {
	Since time.Time
	Value Amount
}

// ScaleValue is one dated version of a scale parameter.
type ScaleValue struct {
	Since time.Time
	Scale MarginalScale
}

func (p *Parameters) walk(prefix string, node *parameterNode, visit func(string, []ScalarValue, []ScaleValue)) {
	if len(node.scalars) > 0 || len(node.scales) > 0 {
		scalars := make([]ScalarValue, len(node.scalars))
		for i, v := range node.scalars {
			scalars[i] = ScalarValue{Since: v.since, Value: v.value}
		}
		scales := make([]ScaleValue, len(node.scales))
		for i, v := range node.scales {
			scales[i] = ScaleValue{Since: v.since, Scale: v.scale}
		}
		visit(prefix, scalars, scales)
	}
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		childPath := name
		if prefix != "" {
			childPath = prefix + "." + name
		}
		p.walk(childPath, node.children[name], visit)
	}
}

// =============================================================================
// PERIOD-BOUND VIEW
// =============================================================================

// Resolver binds a parameter tree to an evaluation period. Formulas
// accept this interface so the host engine can substitute its own
// parameter source.
type Resolver interface {
	At(period Period) ParameterSet
}

// At binds the tree to a period.
func (p *Parameters) At(period Period) ParameterSet {
	return ParameterSet{params: p, period: period}
}

var _ Resolver = (*Parameters)(nil)

// ParameterSet is a read-only view of the tree at one period.
type ParameterSet struct {
	params *Parameters
	period Period
}

func (s ParameterSet) Period() Period { return s.period }

// Rate resolves a scalar parameter in force at the set's period.
func (s ParameterSet) Rate(path string) (Amount, error) {
	node := s.params.lookup(path)
	if node == nil {
		return Amount{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "no such path"}
	}
	if len(node.scalars) == 0 {
		if len(node.scales) > 0 {
			return Amount{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "holds a scale, not a rate"}
		}
		return Amount{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "not a leaf"}
	}
	at := s.period.Start()
	for i := len(node.scalars) - 1; i >= 0; i-- {
		if !node.scalars[i].since.After(at) {
			return node.scalars[i].value, nil
		}
	}
	return Amount{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "no value in force"}
}

// Scale resolves a marginal-scale parameter in force at the set's period.
func (s ParameterSet) Scale(path string) (MarginalScale, error) {
	node := s.params.lookup(path)
	if node == nil {
		return MarginalScale{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "no such path"}
	}
	if len(node.scales) == 0 {
		if len(node.scalars) > 0 {
			return MarginalScale{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "holds a rate, not a scale"}
		}
		return MarginalScale{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "not a leaf"}
	}
	at := s.period.Start()
	for i := len(node.scales) - 1; i >= 0; i-- {
		if !node.scales[i].since.After(at) {
			return node.scales[i].scale, nil
		}
	}
	return MarginalScale{}, &ParameterNotFoundError{Path: path, Period: s.period, Detail: "no value in force"}
}
