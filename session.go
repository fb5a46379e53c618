package symcalc

import (
	"io"
	"strings"
)

// Session is an interpreter session: an environment of variable bindings
// that persists across statements and a sink that receives plots. It is not
// safe to use a Session concurrently.
type Session struct {
	env   Env
	sink  Sink
	parse []ParseOption
	funcs map[string]Func
}

// SessionOption is an option used when creating a session.
type SessionOption interface {
	sessionOption()
}

type (
	varopt struct {
		name string
		val  *Node
	}
	varsopt map[string]*Node
	sinkopt struct {
		sink Sink
	}
	envopt struct {
		env Env
	}
	parseopt []ParseOption
)

func (varopt) sessionOption()  {}
func (varsopt) sessionOption() {}
func (sinkopt) sessionOption() {}
func (envopt) sessionOption()  {}
func (parseopt) sessionOption() {}

// SetVar binds a variable in the session.
func SetVar(name string, val *Node) SessionOption {
	return varopt{name, val}
}

// SetVars binds any number of variables in the session.
func SetVars(vars map[string]*Node) SessionOption {
	return varsopt(vars)
}

// WithSink sets the sink that receives plots. Without a sink, plots are
// sampled and discarded.
func WithSink(sink Sink) SessionOption {
	return sinkopt{sink}
}

// WithEnv sets the environment the session uses. The default is a new, empty
// Bindings.
func WithEnv(env Env) SessionOption {
	return envopt{env}
}

// WithParseOptions sets options applied to every statement the session
// parses. Names that parse as functions under them cannot be assigned.
func WithParseOptions(opts ...ParseOption) SessionOption {
	return parseopt(opts)
}

// NewSession creates a new interpreter session.
func NewSession(opts ...SessionOption) *Session {
	s := Session{sink: discard{}}
	// The environment has to exist before any variables are set in it, so
	// look for it first. Loop backward so we apply the last one.
	for i := len(opts) - 1; i >= 0; i-- {
		if e, ok := opts[i].(envopt); ok {
			s.env = e.env
			break
		}
	}
	if s.env == nil {
		s.env = NewBindings()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			s.env.Put(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				s.env.Put(k, v)
			}
		case sinkopt:
			if opt.sink != nil {
				s.sink = opt.sink
			}
		case envopt:
			// Already done. Do nothing.
		case parseopt:
			s.parse = append(s.parse, opt...)
		default:
			panic("symcalc: unknown option type")
		}
	}
	s.funcs = parsefuncs(s.parse)
	return &s
}

// Env returns the session's environment.
func (s *Session) Env() Env {
	return s.env
}

// Assign binds name to n without evaluating it, so that later changes to the
// variables n refers to are reflected when name is used. The result is n.
func (s *Session) Assign(name string, n *Node) *Node {
	s.env.Put(name, n)
	return n
}

// Exec interprets a parsed statement. The commands plot, simplify, and
// toDouble at the top level of n are executed; any other expression is
// simplified.
//
// plot(expr, var, min, max, step) draws expr over the range of var to the
// session's sink and returns the simplified expr. simplify(expr) returns the
// simplified expr. toDouble(expr) returns the value of expr as a number.
func (s *Session) Exec(n *Node) (*Node, error) {
	if n.kind != KindOp {
		return Simplify(s.env, n)
	}
	switch n.name {
	case "plot":
		return s.plot(n)
	case "toDouble":
		v, err := Evaluate(s.env, n)
		if err != nil {
			return nil, err
		}
		return Num(v), nil
	default:
		return Simplify(s.env, n)
	}
}

func (s *Session) plot(n *Node) (*Node, error) {
	if len(n.args) != 5 {
		return nil, &ArityError{Op: n.name, Len: len(n.args), Want: 5}
	}
	v := n.args[1]
	if v.kind != KindVar {
		return nil, &ArgError{Op: n.name, Arg: 2, Want: "a variable name"}
	}
	var bounds [3]float64
	for i := range bounds {
		r, err := Evaluate(s.env, n.args[i+2])
		if err != nil {
			return nil, err
		}
		bounds[i] = r
	}
	return Plot(s.env, s.sink, n.args[0], v.name, bounds[0], bounds[1], bounds[2])
}

// Run parses and executes one statement. A statement is either an
// assignment "name := expr" or an expression to pass to Exec.
func (s *Session) Run(src string) (*Node, error) {
	name, rhs, err := s.splitassign(src)
	if err != nil {
		return nil, err
	}
	n, err := ParseString(rhs, s.parse...)
	if err != nil {
		if ie, ok := err.(InputError); ok && name != "" {
			err = shiftpos(ie, len([]rune(src))-len([]rune(rhs)))
		}
		return nil, err
	}
	if name != "" {
		return s.Assign(name, n), nil
	}
	return s.Exec(n)
}

// splitassign separates the target of an assignment from its expression. If
// src is not an assignment, name is empty and rhs is src.
func (s *Session) splitassign(src string) (name, rhs string, err error) {
	lhs, rhs, ok := strings.Cut(src, ":=")
	if !ok {
		return "", src, nil
	}
	toks, err := tokenize(strings.NewReader(lhs))
	if err != nil {
		return "", "", err
	}
	tok := toks[0]
	if tok.kind != tokenIdent || s.funcs[tok.text] != nil {
		return "", "", &AssignError{Col: tok.pos, Text: tok.text}
	}
	if end := toks[1]; end.kind != tokenEOF {
		return "", "", &AssignError{Col: end.pos, Text: end.text}
	}
	return tok.text, rhs, nil
}

// shiftpos moves the position of an error in the right side of an assignment
// so that it is relative to the whole statement.
func shiftpos(err InputError, by int) error {
	switch err := err.(type) {
	case *LexError:
		err.Col += by
	case *OperatorError:
		err.Col += by
	case *BracketError:
		err.Col += by
	case *SeparatorError:
		err.Col += by
	case *CallError:
		err.Col += by
	case *EmptyExpressionError:
		err.Col += by
	case *AssignError:
		err.Col += by
	}
	return err
}

// RunAll executes each statement read from src in order, stopping at the
// first error. Statements are separated by newlines. The results of all
// executed statements are returned.
func (s *Session) RunAll(src io.Reader) ([]*Node, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var r []*Node
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := s.Run(line)
		if err != nil {
			return r, err
		}
		r = append(r, n)
	}
	return r, nil
}

// discard is a Sink that ignores plots.
type discard struct{}

func (discard) DrawScatterPlot(title, xLabel, yLabel string, xs, ys []float64) error {
	return nil
}
