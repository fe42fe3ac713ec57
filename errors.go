package symcalc

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when the arena's slot pool is exhausted.
	ErrOutOfMemory = errors.New("symcalc: arena capacity exhausted")

	// ErrInvalidIndex reports a handle that is out of range or addresses a
	// freed slot. Internal traversals treat this as a contract violation and
	// panic with it; the public Arena.At returns it.
	ErrInvalidIndex = errors.New("symcalc: invalid expression handle")

	// ErrUnsupported is the recoverable signal that the differentiator or
	// integrator has no applicable rule for an expression shape. Simplify
	// consumes it to keep a symbolic d/dx or ∫ node instead of failing.
	ErrUnsupported = errors.New("symcalc: no applicable rule")

	// ErrDivisionByZero is returned by Div for a zero numeric denominator.
	ErrDivisionByZero = errors.New("symcalc: division by zero")
)

// ParseError reports a malformed rational literal.
type ParseError struct {
	Literal string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("symcalc: invalid rational literal %q", e.Literal)
}

// FreeSymbolError reports that numeric evaluation reached a symbol with no
// bound value.
type FreeSymbolError struct {
	Name string
}

func (e *FreeSymbolError) Error() string {
	return fmt.Sprintf("symcalc: cannot evaluate expression with free symbol %q", e.Name)
}
