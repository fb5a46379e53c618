package symcalc

import "strconv"

// InputError is an error caused by invalid expression text. Every error from
// Parse that is not an I/O error is an InputError.
type InputError interface {
	error
	// Pos is the rune position, counting from 1, at which the problem was
	// found.
	Pos() int
}

// LexError is a run of input that does not form a token.
type LexError struct {
	// Text is the invalid run, including the rune that made it invalid.
	Text string
	// Kind is "number" when the run began as a number and empty otherwise.
	Kind string
	// Col is the position just past the invalid run.
	Col int
}

func (err *LexError) Error() string {
	what := "token"
	if err.Kind != "" {
		what = err.Kind + " " + what
	}
	return at(err.Col, "invalid "+what+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }

// OperatorError is an operator used where it has no meaning, such as a
// leading *.
type OperatorError struct {
	Col      int
	Operator string
	// Unary is set when the operator appeared before an operand.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return at(err.Col, strconv.Quote(err.Operator)+" is not a unary operator")
	}
	return at(err.Col, strconv.Quote(err.Operator)+" is not a binary operator")
}

func (err *OperatorError) Pos() int { return err.Col }

// BracketError is an unclosed, unopened, or mismatched bracket. Left is empty
// for a close bracket with no open bracket, and Right is empty when the input
// ended before the group closed.
type BracketError struct {
	Col   int
	Left  string
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return at(err.Col, "unopened "+err.Right)
	case err.Right == "":
		return at(err.Col, "unclosed "+err.Left)
	default:
		return at(err.Col, err.Left+" closed by "+err.Right)
	}
}

func (err *BracketError) Pos() int { return err.Col }

// SeparatorError is a comma or semicolon outside an argument list.
type SeparatorError struct {
	Col int
	Sep string
}

func (err *SeparatorError) Error() string {
	return at(err.Col, "unexpected "+strconv.Quote(err.Sep)+" outside arguments")
}

func (err *SeparatorError) Pos() int { return err.Col }

// CallError is a call with a number of arguments its function does not take.
type CallError struct {
	// Col is the position of the token where the arguments begin.
	Col  int
	Func string
	Len  int
}

func (err *CallError) Error() string {
	return at(err.Col, err.Func+" does not take "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int { return err.Col }

// EmptyExpressionError is a missing operand or argument. End is the token
// found in its place, or empty at the end of input.
type EmptyExpressionError struct {
	Col int
	End string
}

func (err *EmptyExpressionError) Error() string {
	switch {
	case err.End != "":
		return at(err.Col, "expected expression before "+strconv.Quote(err.End))
	case err.Col <= 1:
		return at(err.Col, "empty expression")
	default:
		return at(err.Col, "unexpected end of expression")
	}
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

// AssignError is an assignment whose target is not a lone variable name. Text
// is what appeared as the target, if anything.
type AssignError struct {
	Col  int
	Text string
}

func (err *AssignError) Error() string {
	if err.Text == "" {
		return at(err.Col, "assignment has no target")
	}
	return at(err.Col, "cannot assign to "+strconv.Quote(err.Text))
}

func (err *AssignError) Pos() int { return err.Col }

func at(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
