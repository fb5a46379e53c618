package symcalc

import (
	"strconv"
	"strings"
)

// NameError is an error from a lookup for a variable that is not bound in the
// environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// OperationError is an error indicating an operation name that is not in the
// operator registry, or a command such as simplify where a value is needed.
type OperationError struct {
	// Op is the operation name.
	Op string
}

func (err *OperationError) Error() string {
	if _, ok := ops[err.Op]; ok {
		return "operation " + strconv.Quote(err.Op) + " has no numeric value"
	}
	return "unknown operation " + strconv.Quote(err.Op)
}

// ArityError is an error indicating an operation with the wrong number of
// arguments.
type ArityError struct {
	// Op is the operator name.
	Op string
	// Len is the number of arguments the operation has.
	Len int
	// Want is the number of arguments the operator takes.
	Want int
}

func (err *ArityError) Error() string {
	return "cannot apply " + err.Op + " to " + strconv.Itoa(err.Len) + " operands (want " + strconv.Itoa(err.Want) + ")"
}

// RangeError is an error indicating a sampling range whose lower bound
// exceeds its upper bound, or which is not finite.
type RangeError struct {
	Min, Max float64
}

func (err *RangeError) Error() string {
	if err.Min > err.Max {
		return "empty range: min " + fmtnum(err.Min) + " > max " + fmtnum(err.Max)
	}
	return "range from " + fmtnum(err.Min) + " to " + fmtnum(err.Max) + " is not finite"
}

// DefinedError is an error indicating that a sampled variable is already
// bound in the environment.
type DefinedError struct {
	// Name is the variable that is already bound.
	Name string
}

func (err *DefinedError) Error() string {
	return "variable " + strconv.Quote(err.Name) + " is already defined"
}

// StepError is an error indicating a sampling step that is not positive and
// finite, or that is too small for the range it samples.
type StepError struct {
	Step float64
	// Span is the width of the range when the step is too small, otherwise 0.
	Span float64
}

func (err *StepError) Error() string {
	if err.Span == 0 {
		return "step " + fmtnum(err.Step) + " is not positive and finite"
	}
	return "step " + fmtnum(err.Step) + " is too small for a range of width " + fmtnum(err.Span)
}

// CycleError is an error indicating a variable whose binding refers back to
// itself, directly or through other variables.
type CycleError struct {
	// Names is the chain of variables forming the cycle. The first and last
	// names are the same.
	Names []string
}

func (err *CycleError) Error() string {
	return "cyclic binding: " + strings.Join(err.Names, " -> ")
}

// ArgError is an error indicating a command argument of the wrong kind, such
// as a plot whose variable argument is not a variable name.
type ArgError struct {
	// Op is the command name.
	Op string
	// Arg is the 1-based index of the argument.
	Arg int
	// Want describes what the argument must be.
	Want string
}

func (err *ArgError) Error() string {
	return err.Op + ": argument " + strconv.Itoa(err.Arg) + " must be " + err.Want
}

var (
	_ error = (*NameError)(nil)
	_ error = (*OperationError)(nil)
	_ error = (*ArityError)(nil)
	_ error = (*RangeError)(nil)
	_ error = (*DefinedError)(nil)
	_ error = (*StepError)(nil)
	_ error = (*CycleError)(nil)
	_ error = (*ArgError)(nil)
)
