// Package ice defines internal-compiler-error values.
//
// An ICE signals an invariant violation by an earlier pass: an unknown
// variable identity, a malformed block, an unsupported variant reaching the
// printer, an unrepresentable source type during lowering. ICEs are never
// recoverable at this layer; they abort the current compilation carrying
// enough context (function, block, instruction) to locate the offending
// pass. Each ICE gets a unique incident id so a single occurrence can be
// referenced in a bug report.
package ice

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error is an internal compiler error with compilation context.
type Error struct {
	// ID uniquely identifies this incident.
	ID uuid.UUID

	// Message describes the violated invariant.
	Message string

	// Function names the function being compiled, if known.
	Function string

	// Block is the basic block number, or -1 if not applicable.
	Block int

	// Insn is the instruction index within the block, or -1.
	Insn int

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Errorf creates an Error with a formatted message and no location context.
func Errorf(format string, args ...any) *Error {
	return &Error{
		ID:      uuid.New(),
		Message: fmt.Sprintf(format, args...),
		Block:   -1,
		Insn:    -1,
	}
}

// Wrap creates an Error around an underlying error.
func Wrap(err error, format string, args ...any) *Error {
	e := Errorf(format, args...)
	e.Wrapped = err
	return e
}

// InFunction records the enclosing function name.
func (e *Error) InFunction(name string) *Error {
	e.Function = name
	return e
}

// InBlock records the basic block number.
func (e *Error) InBlock(no int) *Error {
	e.Block = no
	return e
}

// AtInsn records the instruction index within the block.
func (e *Error) AtInsn(i int) *Error {
	e.Insn = i
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("internal compiler error [%s]: %s", e.ID, e.Message)
	switch {
	case e.Function != "" && e.Block >= 0 && e.Insn >= 0:
		s += fmt.Sprintf(" (function=%s, block=%d, insn=%d)", e.Function, e.Block, e.Insn)
	case e.Function != "" && e.Block >= 0:
		s += fmt.Sprintf(" (function=%s, block=%d)", e.Function, e.Block)
	case e.Function != "":
		s += fmt.Sprintf(" (function=%s)", e.Function)
	case e.Block >= 0:
		s += fmt.Sprintf(" (block=%d)", e.Block)
	}
	if e.Wrapped != nil {
		s += ": " + e.Wrapped.Error()
	}
	return s
}

// Unwrap returns the underlying error, if any.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether err is (or wraps) an internal compiler error.
// Uses errors.As to handle wrapped errors.
func Is(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
