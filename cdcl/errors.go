package cdcl

import "fmt"

// Input errors are caller-attributable and are always surfaced as return
// values from AddClause and the parameter setters, never as panics.
// Invariant violations, in contrast, are bugs in the solver itself and are
// reported by the debug-only checkers in checks.go, which panic.

// VariableOutOfRangeError is returned when a clause mentions a variable
// that was never created with NewVar/NewVars.
type VariableOutOfRangeError struct {
	Var Var
	Max Var
}

func (e *VariableOutOfRangeError) Error() string {
	return fmt.Sprintf("cdcl: variable %d out of range (max %d)", e.Var, e.Max)
}

// ParameterOutOfRangeError is returned by a parameter setter when the
// requested value is outside the documented range.
type ParameterOutOfRangeError struct {
	Name  string
	Value interface{}
}

func (e *ParameterOutOfRangeError) Error() string {
	return fmt.Sprintf("cdcl: parameter %s out of range: %v", e.Name, e.Value)
}

// InvalidStateError is returned when an API call is made while the solver
// is in a state that does not allow it, e.g. AddClause after Unsat.
type InvalidStateError struct {
	Op    string
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cdcl: %s: invalid in state %s", e.Op, e.State)
}
