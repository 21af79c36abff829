/*
errors.go - Centralized error types for the host contract

PURPOSE:
  All error types in one place for consistency and discoverability.
  Rule definitions do not define error kinds of their own: a formula
  propagates whatever the parameter tree or entity accessor returns,
  unchanged.

ERROR CATEGORIES:
  1. Parameter errors - Path or period cannot be resolved
  2. Attribute errors - Entity data missing for the requested month
  3. Scale errors - Malformed bracket definitions
  4. Granularity errors - Variable evaluated at the wrong period kind

USAGE:
  Callers match with errors.Is:

    if errors.Is(err, engine.ErrParameterNotFound) { ... }
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrParameterNotFound is returned when a parameter path does not
	// exist, has no value in force at the requested period, or holds a
	// different kind of value than requested.
	ErrParameterNotFound = errors.New("parameter not found")

	// ErrAttributeNotFound is returned by entity accessors when an
	// attribute has no recorded value for the requested month.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrScaleEmpty is returned when a marginal scale has no brackets.
	ErrScaleEmpty = errors.New("marginal scale has no brackets")

	// ErrScaleUnordered is returned when bracket thresholds are not
	// strictly ascending.
	ErrScaleUnordered = errors.New("marginal scale brackets not ascending")

	// ErrGranularityMismatch is returned when a variable is evaluated at
	// a period granularity other than its definition period.
	ErrGranularityMismatch = errors.New("period granularity mismatch")

	// ErrVariableNotRegistered is returned when looking up metadata for
	// an unknown variable name.
	ErrVariableNotRegistered = errors.New("variable not registered")

	// ErrUnknownOccupancy is returned when parsing an occupancy label
	// outside the closed categorical domain. Formulas never return this:
	// an unrecognized category contributes zero, it does not fail.
	ErrUnknownOccupancy = errors.New("unknown occupancy status")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ParameterNotFoundError reports which path and period failed to resolve.
type ParameterNotFoundError struct {
	Path   string
	Period Period
	Detail string
}

func (e *ParameterNotFoundError) Error() string {
	return fmt.Sprintf("parameter %q at %s: %s", e.Path, e.Period, e.Detail)
}

func (e *ParameterNotFoundError) Unwrap() error { return ErrParameterNotFound }

// AttributeNotFoundError reports which entity attribute was missing.
type AttributeNotFoundError struct {
	Entity    string
	Attribute AttributeID
	Period    Period
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("entity %s has no %s for %s", e.Entity, e.Attribute, e.Period)
}

func (e *AttributeNotFoundError) Unwrap() error { return ErrAttributeNotFound }

// GranularityError reports an evaluation at the wrong period kind.
type GranularityError struct {
	Variable string
	Want     Granularity
	Got      Granularity
}

func (e *GranularityError) Error() string {
	return fmt.Sprintf("%s is defined per %s, evaluated at a %s", e.Variable, e.Want, e.Got)
}

func (e *GranularityError) Unwrap() error { return ErrGranularityMismatch }
