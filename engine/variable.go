/*
variable.go - Variable metadata registration and lookup

PURPOSE:
  Provides a registry for rule packages to register the variables they
  define. The host engine consumes this metadata for documentation and
  introspection; computation never reads it.

HOW IT WORKS:
  1. Rule packages describe each variable (entity, definition period,
     label, legal reference, declared inputs)
  2. Rule packages register them on init()
  3. Hosts and exporters look variables up by name

USAGE:
  // In tax/types.go
  func init() {
      engine.RegisterVariable(engine.Variable{Name: "income_tax", ...})
  }

  // In a host
  v, err := engine.LookupVariable("income_tax")

SEE ALSO:
  - entity.go: EntityKind and AttributeID used in metadata
  - tax/: The bundled rule definitions that register here
*/
package engine

import (
	"sort"
	"sync"
)

// =============================================================================
// VARIABLE METADATA
// =============================================================================

// ValueType is the type of a variable's result. Every bundled rule
// produces a real number.
type ValueType string

const ValueReal ValueType = "real"

// Variable is the declared metadata of one rule output.
type Variable struct {
	Name             string
	ValueType        ValueType
	Entity           EntityKind
	DefinitionPeriod Granularity
	Label            string
	Reference        string // source-of-truth URL for the legal basis

	// Inputs lists the entity attributes the formula reads. This is the
	// declared input list; the formula reads them through the typed
	// accessor interfaces.
	Inputs []AttributeID

	// Parameters lists the parameter-tree paths the formula resolves.
	Parameters []string
}

// =============================================================================
// VARIABLE REGISTRY
// =============================================================================

var (
	variableRegistry = make(map[string]Variable)
	registryMu       sync.RWMutex
)

// RegisterVariable adds a variable to the global registry. Call this
// from rule package init() functions. Re-registering a name replaces
// the previous entry.
func RegisterVariable(v Variable) {
	registryMu.Lock()
	defer registryMu.Unlock()
	variableRegistry[v.Name] = v
}

// LookupVariable finds a registered variable by name.
func LookupVariable(name string) (Variable, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	v, ok := variableRegistry[name]
	if !ok {
		return Variable{}, ErrVariableNotRegistered
	}
	return v, nil
}

// MustLookupVariable finds a registered variable or panics. Use in
// tests or when the rule package is known to be linked in.
func MustLookupVariable(name string) Variable {
	v, err := LookupVariable(name)
	if err != nil {
		panic("variable not registered: " + name)
	}
	return v
}

// ListVariables returns all registered variables sorted by name.
func ListVariables() []Variable {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Variable, 0, len(variableRegistry))
	for _, v := range variableRegistry {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListVariablesByEntity returns the variables defined for one entity kind.
func ListVariablesByEntity(kind EntityKind) []Variable {
	var out []Variable
	for _, v := range ListVariables() {
		if v.Entity == kind {
			out = append(out, v)
		}
	}
	return out
}
