package symcalc_test

import (
	"strings"

	. "gopkg.in/check.v1"

	"github.com/zephyrtronium/symcalc"
)

type SessionSuite struct {
	out *strings.Builder
	s   *symcalc.Session
}

var _ = Suite(&SessionSuite{})

func (s *SessionSuite) SetUpTest(c *C) {
	s.out = new(strings.Builder)
	s.s = symcalc.NewSession(symcalc.WithSink(&symcalc.TableSink{W: s.out}))
}

func (s *SessionSuite) run(c *C, src string) *symcalc.Node {
	n, err := s.s.Run(src)
	c.Assert(err, IsNil, Commentf("running %q", src))
	return n
}

func (s *SessionSuite) TestAssign(c *C) {
	n := s.run(c, "x := 3")
	c.Check(n.Equal(symcalc.Num(3)), Equals, true)
	c.Check(s.s.Env().Contains("x"), Equals, true)
}

func (s *SessionSuite) TestAssignIsLazy(c *C) {
	s.run(c, "x := 1")
	n := s.run(c, "y := x + 1")
	c.Check(n.Equal(symcalc.Op("+", symcalc.Var("x"), symcalc.Num(1))), Equals, true)
	s.run(c, "x := 10")
	n = s.run(c, "toDouble(y)")
	c.Check(n.Equal(symcalc.Num(11)), Equals, true)
}

func (s *SessionSuite) TestSimplify(c *C) {
	s.run(c, "x := 2")
	n := s.run(c, "simplify(x^3 * w)")
	c.Check(n.Equal(symcalc.Op("*", symcalc.Num(8), symcalc.Var("w"))), Equals, true, Commentf("got %v", n))
	// Bare expressions are simplified too.
	m := s.run(c, "x^3 * w")
	c.Check(m.Equal(n), Equals, true, Commentf("got %v", m))
}

func (s *SessionSuite) TestToDouble(c *C) {
	n := s.run(c, "toDouble(sin(0) + 6 / 4)")
	c.Check(n.Equal(symcalc.Num(1.5)), Equals, true, Commentf("got %v", n))
	_, err := s.s.Run("toDouble(w)")
	c.Check(err, FitsTypeOf, &symcalc.NameError{})
	_, err = s.s.Run("toDouble(simplify(2))")
	c.Check(err, FitsTypeOf, &symcalc.OperationError{})
}

func (s *SessionSuite) TestPlot(c *C) {
	n := s.run(c, "plot(3 x, x, 2, 5, 0.5)")
	c.Check(n.Equal(symcalc.Op("*", symcalc.Num(3), symcalc.Var("x"))), Equals, true, Commentf("got %v", n))
	want := "# plot\n" +
		"x    output\n" +
		"2    6\n" +
		"2.5  7.5\n" +
		"3    9\n" +
		"3.5  10.5\n" +
		"4    12\n" +
		"4.5  13.5\n" +
		"5    15\n"
	c.Check(s.out.String(), Equals, want)
	c.Check(s.s.Env().Contains("x"), Equals, false)
}

func (s *SessionSuite) TestPlotBoundsAreExpressions(c *C) {
	s.run(c, "hi := 2")
	s.run(c, "k := 10")
	s.run(c, "plot(k t, t, hi - 2, hi, hi / 2)")
	c.Check(s.out.String(), Equals, "# plot\nt  output\n0  0\n1  10\n2  20\n")
}

func (s *SessionSuite) TestPlotErrors(c *C) {
	s.run(c, "x := 1")
	cases := []struct {
		src string
		err interface{}
	}{
		{"plot(t, 2, 0, 1, 1)", &symcalc.ArgError{}},
		{"plot(x, x, 0, 1, 1)", &symcalc.DefinedError{}},
		{"plot(t, t, 1, 0, 1)", &symcalc.RangeError{}},
		{"plot(t, t, 0, 1, 0)", &symcalc.StepError{}},
		{"plot(t, t, 0, inf, 1)", &symcalc.RangeError{}},
		{"plot(x, x, 0, inf, 1)", &symcalc.RangeError{}},
		{"plot(t, t, -inf, 0, 1)", &symcalc.RangeError{}},
		{"plot(t, t, 0, 1, 1e-300)", &symcalc.StepError{}},
		{"plot(t + u, t, 0, 1, 1)", &symcalc.NameError{}},
		{"plot(t, t, u, 1, 1)", &symcalc.NameError{}},
	}
	for _, t := range cases {
		_, err := s.s.Run(t.src)
		c.Check(err, FitsTypeOf, t.err, Commentf("running %q", t.src))
	}
	c.Check(s.out.String(), Equals, "")
	c.Check(s.s.Env().(*symcalc.Bindings).Names(), DeepEquals, []string{"x"})
}

func (s *SessionSuite) TestPlotArity(c *C) {
	_, err := s.s.Exec(symcalc.Op("plot", symcalc.Var("x")))
	c.Check(err, FitsTypeOf, &symcalc.ArityError{})
}

func (s *SessionSuite) TestAssignErrors(c *C) {
	cases := []struct {
		src string
		err interface{}
		pos int
	}{
		{"2 := 3", &symcalc.AssignError{}, 1},
		{"sin := 1", &symcalc.AssignError{}, 1},
		{"x y := 1", &symcalc.AssignError{}, 3},
		{" := 1", &symcalc.AssignError{}, 2},
		{"x := 1 +", &symcalc.EmptyExpressionError{}, 9},
		{"x := (1", &symcalc.BracketError{}, 8},
		{"x := 1 := 2", &symcalc.AssignError{}, 8},
	}
	for _, t := range cases {
		_, err := s.s.Run(t.src)
		c.Assert(err, FitsTypeOf, t.err, Commentf("running %q", t.src))
		c.Check(err.(symcalc.InputError).Pos(), Equals, t.pos, Commentf("running %q: %v", t.src, err))
	}
	c.Check(s.s.Env().Contains("x"), Equals, false)
}

func (s *SessionSuite) TestSelfReference(c *C) {
	s.run(c, "x := 1")
	s.run(c, "x := x + 1")
	_, err := s.s.Run("toDouble(x)")
	c.Check(err, FitsTypeOf, &symcalc.CycleError{})
}

func (s *SessionSuite) TestRunAll(c *C) {
	r, err := s.s.RunAll(strings.NewReader("a := 2\nb := a * 3\n\ntoDouble(b + 1)\n"))
	c.Assert(err, IsNil)
	c.Assert(r, HasLen, 3)
	c.Check(r[2].Equal(symcalc.Num(7)), Equals, true, Commentf("got %v", r[2]))
}

func (s *SessionSuite) TestRunAllStops(c *C) {
	r, err := s.s.RunAll(strings.NewReader("a := 1\n1 +\nb := 2\n"))
	c.Check(err, FitsTypeOf, &symcalc.EmptyExpressionError{})
	c.Check(r, HasLen, 1)
	c.Check(s.s.Env().Contains("b"), Equals, false)
}

func (s *SessionSuite) TestOptions(c *C) {
	env := symcalc.NewBindings()
	env.Put("a", symcalc.Num(1))
	var plots int
	sink := symcalc.SinkFunc(func(string, string, string, []float64, []float64) error {
		plots++
		return nil
	})
	sess := symcalc.NewSession(
		symcalc.SetVar("b", symcalc.Num(2)),
		symcalc.WithEnv(env),
		symcalc.SetVars(map[string]*symcalc.Node{"c": symcalc.Num(3)}),
		symcalc.WithSink(sink),
	)
	c.Check(sess.Env(), Equals, symcalc.Env(env))
	c.Check(env.Names(), DeepEquals, []string{"a", "b", "c"})
	n, err := sess.Run("toDouble(a + b + c)")
	c.Assert(err, IsNil)
	c.Check(n.Equal(symcalc.Num(6)), Equals, true)
	_, err = sess.Run("plot(t, t, 0, 1, 1)")
	c.Assert(err, IsNil)
	c.Check(plots, Equals, 1)
}

func (s *SessionSuite) TestDefaultSinkDiscards(c *C) {
	sess := symcalc.NewSession()
	n, err := sess.Run("plot(t^2, t, 0, 1, 0.25)")
	c.Assert(err, IsNil)
	c.Check(n.Equal(symcalc.Op("^", symcalc.Var("t"), symcalc.Num(2))), Equals, true)
}

func (s *SessionSuite) TestParseOptions(c *C) {
	sess := symcalc.NewSession(symcalc.WithParseOptions(
		symcalc.ParseFunc("g", symcalc.Constant(9.8)),
		symcalc.ParseFunc("e", nil),
	))
	n, err := sess.Run("toDouble(2 g)")
	c.Assert(err, IsNil)
	c.Check(n.Equal(symcalc.Num(19.6)), Equals, true, Commentf("got %v", n))
	// e is a plain variable here, so it can be assigned.
	_, err = sess.Run("e := 2")
	c.Assert(err, IsNil)
	n, err = sess.Run("toDouble(e g)")
	c.Assert(err, IsNil)
	c.Check(n.Equal(symcalc.Num(19.6)), Equals, true, Commentf("got %v", n))
	_, err = sess.Run("g := 1")
	c.Check(err, FitsTypeOf, &symcalc.AssignError{})
	// Other sessions keep the defaults.
	_, err = s.s.Run("e := 3")
	c.Check(err, FitsTypeOf, &symcalc.AssignError{})
}
