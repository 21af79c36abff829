/*
Package factory converts YAML parameter definitions into the engine's
parameter tree.

PURPOSE:
  Legal parameters change by amendment, not by code change. Keeping them
  in YAML lets the rates, thresholds and minimums be edited, reviewed and
  versioned as data, then loaded into engine.Parameters at startup.

YAML SCHEMA:
  taxes:
    income_tax_rate:
      values:
        2000-01-01: 0.15
        2020-01-01: 0.20
    social_security_contribution:
      scales:
        2000-01-01:
          - {threshold: 0, rate: 0.1}
          - {threshold: 1000, rate: 0.2}
    property_tax:
      rate:
        values: {2010-01-01: 0.01}
      minimal_amount:
        values: {2010-01-01: 200}

  A mapping with a "values" key is a scalar leaf; one with a "scales"
  key is a marginal-scale leaf. Anything else is an inner node. Dates
  are the day a version comes into force.

KEY FEATURES:
  - Validates structure (a node is exactly one of: inner, scalar, scale)
  - Validates every scale version (ascending thresholds)
  - Round-trips: ToYAML exports a tree back to the same schema

USAGE:
  params, err := factory.ParseParameters(data)
  rate, err := params.At(period).Rate("taxes.income_tax_rate")

SEE ALSO:
  - engine/parameters.go: The tree this package populates
  - baseline.go: The bundled legal parameters as a Go preset
*/
package factory

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/warp/fiscal-rules/engine"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================

// nodeYAML is one node of the parameter file. Leaf payloads are the
// named fields; child nodes are collected by the inline map.
type nodeYAML struct {
	Values   map[string]float64       `yaml:"values,omitempty"`
	Scales   map[string][]bracketYAML `yaml:"scales,omitempty"`
	Children map[string]*nodeYAML     `yaml:",inline"`
}

type bracketYAML struct {
	Threshold float64 `yaml:"threshold"`
	Rate      float64 `yaml:"rate"`
}

const sinceLayout = "2006-01-02"

// =============================================================================
// PARSING
// =============================================================================

// ParseParameters parses a YAML parameter file into a parameter tree.
func ParseParameters(data []byte) (*engine.Parameters, error) {
	var root map[string]*nodeYAML
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse parameter YAML: %w", err)
	}

	params := engine.NewParameters()
	for name, node := range root {
		if err := buildNode(params, name, node); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func buildNode(params *engine.Parameters, path string, node *nodeYAML) error {
	if node == nil {
		return fmt.Errorf("parameter %q: empty node", path)
	}

	isScalar := len(node.Values) > 0
	isScale := len(node.Scales) > 0
	isInner := len(node.Children) > 0

	switch {
	case isScalar && (isScale || isInner), isScale && isInner:
		return fmt.Errorf("parameter %q: node must be exactly one of inner, values, scales", path)

	case isScalar:
		for since, value := range node.Values {
			at, err := time.Parse(sinceLayout, since)
			if err != nil {
				return fmt.Errorf("parameter %q: invalid date %q: %w", path, since, err)
			}
			params.SetRate(path, at, engine.NewAmount(value))
		}
		return nil

	case isScale:
		for since, brackets := range node.Scales {
			at, err := time.Parse(sinceLayout, since)
			if err != nil {
				return fmt.Errorf("parameter %q: invalid date %q: %w", path, since, err)
			}
			scale := toScale(brackets)
			if err := scale.Validate(); err != nil {
				return fmt.Errorf("parameter %q at %s: %w", path, since, err)
			}
			params.SetScale(path, at, scale)
		}
		return nil

	case isInner:
		for name, child := range node.Children {
			if err := buildNode(params, path+"."+name, child); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("parameter %q: empty node", path)
	}
}

func toScale(brackets []bracketYAML) engine.MarginalScale {
	out := make([]engine.Bracket, len(brackets))
	for i, b := range brackets {
		out[i] = engine.Bracket{
			Threshold: engine.NewAmount(b.Threshold),
			Rate:      engine.NewAmount(b.Rate),
		}
	}
	return engine.NewMarginalScale(out...)
}

// =============================================================================
// EXPORT
// =============================================================================

// ToYAML exports a parameter tree back to the file schema. Leaf order is
// lexical by path, version order by date.
func ToYAML(params *engine.Parameters) ([]byte, error) {
	root := make(map[string]*nodeYAML)

	params.Walk(func(path string, scalars []engine.ScalarValue, scales []engine.ScaleValue) {
		node := ensureNode(root, path)
		if len(scalars) > 0 {
			node.Values = make(map[string]float64, len(scalars))
			for _, v := range scalars {
				node.Values[v.Since.Format(sinceLayout)] = v.Value.Float64()
			}
		}
		if len(scales) > 0 {
			node.Scales = make(map[string][]bracketYAML, len(scales))
			for _, v := range scales {
				brackets := make([]bracketYAML, len(v.Scale.Brackets))
				for i, b := range v.Scale.Brackets {
					brackets[i] = bracketYAML{
						Threshold: b.Threshold.Float64(),
						Rate:      b.Rate.Float64(),
					}
				}
				node.Scales[v.Since.Format(sinceLayout)] = brackets
			}
		}
	})

	return yaml.Marshal(root)
}

func ensureNode(root map[string]*nodeYAML, path string) *nodeYAML {
	parts := splitPath(path)
	node, ok := root[parts[0]]
	if !ok {
		node = &nodeYAML{}
		root[parts[0]] = node
	}
	for _, part := range parts[1:] {
		if node.Children == nil {
			node.Children = make(map[string]*nodeYAML)
		}
		child, ok := node.Children[part]
		if !ok {
			child = &nodeYAML{}
			node.Children[part] = child
		}
		node = child
	}
	return node
}

func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}
	parts = append(parts, path[start:])
	return parts
}
