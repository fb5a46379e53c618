package symcalc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Expr   = num | name | Call | '-' Expr | '+' Expr | Expr binop Expr | Expr Expr | Group
// Group  = '(' Expr ')' | '[' Expr ']' | '{' Expr '}'
// Call   = func [ '^' Expr ] [ Expr | '(' [ Expr { (',' | ';') Expr } ] ')' ]
// binop  = '+' | '-' | '*' | '×' | '/' | '÷' | '^'
//
// Juxtaposition multiplies. A call's argument list may use any bracket pair.

// Parse parses an expression into a tree. The given options are applied in
// order.
//
// Operators parse to operation nodes named "+", "-", "*", "/", and "^";
// unary minus parses to "negate", and unary plus disappears. A call of a
// function f parses to an operation node named f, except that constants such
// as pi parse directly to numbers.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Node, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks, funcs: parsefuncs(opts), groups: make(map[int]group)}
	n, err := p.expr(exprprec)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF || n == nil {
		return nil, unexpected(tok, "")
	}
	return n, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Node, error) {
	return Parse(strings.NewReader(src), opts...)
}

// binary creates a binary operation node without copying arguments.
func binary(op string, x, y *Node) *Node {
	return &Node{kind: KindOp, name: op, args: []*Node{x, y}}
}

type parser struct {
	toks  []lexToken
	at    int
	funcs map[string]Func
	// groups holds single-argument lists that a niladic call handed back to
	// be multiplied, keyed by the index of the open bracket.
	groups map[int]group
}

type group struct {
	n    *Node
	next int
}

func (p *parser) peek() lexToken {
	return p.toks[p.at]
}

// advance consumes a token. The final EOF token is never consumed.
func (p *parser) advance() lexToken {
	tok := p.toks[p.at]
	if tok.kind != tokenEOF {
		p.at++
	}
	return tok
}

// empty reports an empty subexpression ending at the next token.
func (p *parser) empty() error {
	tok := p.peek()
	return &EmptyExpressionError{Col: tok.pos, End: tok.text}
}

// expr parses a subexpression containing only operators that bind more
// tightly than until. If the subexpression begins at a close bracket or
// separator, the result is nil with no error, and the caller decides what is
// wrong.
func (p *parser) expr(until operator) (*Node, error) {
	n, err := p.primary(until)
	if err != nil || n == nil {
		return nil, err
	}
	return p.rest(until, n)
}

// rest applies binary operators and implicit multiplications to n.
func (p *parser) rest(until operator, n *Node) (*Node, error) {
	for {
		tok := p.peek()
		switch tok.kind {
		case tokenNum, tokenIdent, tokenOpen:
			// 2 x^y -> 2 * (x^y)
			if !termprec.moreBinding(until) {
				return n, nil
			}
			rhs, err := p.expr(termprec)
			if err != nil {
				return nil, err
			}
			n = binary("*", n, rhs)
		case tokenOp:
			op := binop(tok.text)
			if op.op == "" {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if !op.moreBinding(until) {
				return n, nil
			}
			p.advance()
			rhs, err := p.expr(op)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				return nil, p.empty()
			}
			n = binary(op.op, n, rhs)
		case tokenAssign:
			return nil, &AssignError{Col: tok.pos, Text: n.String()}
		default:
			return n, nil
		}
	}
}

// primary parses the first operand of a subexpression, including any unary
// operators applied to it.
func (p *parser) primary(until operator) (*Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenNum:
		p.advance()
		v, err := parsenum(tok)
		if err != nil {
			return nil, err
		}
		return Num(v), nil
	case tokenIdent:
		p.advance()
		fn := p.funcs[tok.text]
		if fn == nil {
			return Var(tok.text), nil
		}
		return p.call(tok.text, fn, until)
	case tokenOp:
		op := unop(tok.text)
		if op.op == "" {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		p.advance()
		if !op.moreBinding(until) {
			// x^-y -> x^(-y)
			op.prec, op.right = until.prec, until.right
		}
		arg, err := p.expr(op)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, p.empty()
		}
		if op.op == "+" {
			return arg, nil
		}
		return &Node{kind: KindOp, name: op.op, args: []*Node{arg}}, nil
	case tokenOpen:
		return p.group()
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	case tokenAssign:
		return nil, &AssignError{Col: tok.pos}
	default:
		return nil, nil
	}
}

// group parses a bracketed subexpression.
func (p *parser) group() (*Node, error) {
	if g, ok := p.groups[p.at]; ok {
		p.at = g.next
		return g.n, nil
	}
	left := p.advance()
	n, err := p.expr(exprprec)
	if err != nil {
		return nil, err
	}
	end := p.peek()
	if !closes(left, end) {
		return nil, unexpected(end, left.text)
	}
	if n == nil {
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	p.advance()
	return n, nil
}

// call parses the exponent and arguments of a call to fn, the name of which
// has already been consumed.
func (p *parser) call(name string, fn Func, until operator) (*Node, error) {
	var up *Node
	if tok := p.peek(); tok.kind == tokenOp && binop(tok.text).moreBinding(powprec) {
		// sin^2 x -> (sin x)^2
		p.advance()
		var err error
		up, err = p.expr(powprec)
		if err != nil {
			return nil, err
		}
		if up == nil {
			return nil, p.empty()
		}
	}
	args, err := p.args(name, fn, until)
	if err != nil {
		return nil, err
	}
	var n *Node
	if c, ok := fn.(constant); ok {
		n = Num(float64(c))
	} else {
		n = &Node{kind: KindOp, name: name, args: args}
	}
	if up != nil {
		n = binary("^", n, up)
	}
	return n, nil
}

// args parses the arguments of a call to fn.
func (p *parser) args(name string, fn Func, until operator) ([]*Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenOpen:
		open := p.at
		var args []*Node
		if g, ok := p.groups[open]; ok {
			p.at = g.next
			args = []*Node{g.n}
		} else {
			var err error
			if args, err = p.arglist(); err != nil {
				return nil, err
			}
		}
		if fn.CanCall(len(args)) {
			return args, nil
		}
		if len(args) == 1 && fn.CanCall(0) {
			// pi(x) -> pi * x
			p.groups[open] = group{args[0], p.at}
			p.at = open
			return nil, nil
		}
		return nil, &CallError{Col: tok.pos, Func: name, Len: len(args)}
	case tokenNum, tokenIdent, tokenOp:
		switch {
		case fn.CanCall(1):
			// sin x y -> sin(x y), sin x + y -> sin(x) + y
			if termprec.moreBinding(until) {
				until = termprec
			}
			arg, err := p.expr(until)
			if err != nil {
				return nil, err
			}
			if arg == nil {
				return nil, p.empty()
			}
			return []*Node{arg}, nil
		case fn.CanCall(0):
			return nil, nil
		default:
			return nil, &CallError{Col: tok.pos, Func: name, Len: 1}
		}
	case tokenAssign:
		return nil, &AssignError{Col: tok.pos, Text: name}
	default:
		if !fn.CanCall(0) {
			return nil, &CallError{Col: tok.pos, Func: name}
		}
		return nil, nil
	}
}

// arglist parses a bracketed list of zero or more arguments.
func (p *parser) arglist() ([]*Node, error) {
	left := p.advance()
	var args []*Node
	for {
		n, err := p.expr(exprprec)
		if err != nil {
			if ee, ok := err.(*EmptyExpressionError); ok && ee.End == "" {
				// Ran out of input inside the list.
				err = &BracketError{Col: ee.Col, Left: left.text}
			}
			return nil, err
		}
		end := p.advance()
		switch end.kind {
		case tokenSep:
			if n == nil {
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			args = append(args, n)
		case tokenClose:
			if !closes(left, end) {
				return nil, &BracketError{Col: end.pos, Left: left.text, Right: end.text}
			}
			if n == nil {
				// f() is a call with no arguments, but f(a,) is an error.
				if len(args) != 0 {
					return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
				}
				return nil, nil
			}
			return append(args, n), nil
		default:
			return nil, &BracketError{Col: end.pos, Left: left.text}
		}
	}
}

// parsenum converts a number token to its value. Values too large to
// represent become infinite.
func parsenum(tok lexToken) (float64, error) {
	if tok.text == "∞" {
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
	}
	return v, nil
}

// closes reports whether r is the close bracket matching l.
func closes(l, r lexToken) bool {
	return r.kind == tokenClose && strings.Index(OpenBrackets, l.text) == strings.Index(CloseBrackets, r.text)
}

// unexpected reports a token that ends a subexpression where it cannot. left
// is the unclosed open bracket, if any.
func unexpected(tok lexToken, left string) error {
	switch tok.kind {
	case tokenEOF:
		return &BracketError{Col: tok.pos, Left: left}
	case tokenSep:
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		return &BracketError{Col: tok.pos, Left: left, Right: tok.text}
	}
}

type operator struct {
	// prec is the precedence. Higher binds more tightly.
	prec int8
	// right marks right associativity.
	right bool
	// op names the node the operator produces.
	op string
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an empty op.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, "+"}
	case "-":
		return operator{1, false, "-"}
	case "*", "×":
		return operator{5, false, "*"}
	case "/", "÷":
		return operator{5, false, "/"}
	case "^":
		return operator{15, true, "^"}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an empty op.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, "+"}
	case "-":
		return operator{10, true, "negate"}
	default:
		return operator{}
	}
}

var (
	// termprec applies to juxtaposed terms. It matches multiplication but
	// groups to the right.
	termprec = operator{5, true, "*"}
	powprec  = binop("^")
	// exprprec is lower than every operator.
	exprprec = operator{-128, true, ""}
)
