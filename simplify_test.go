package symcalc_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/zephyrtronium/symcalc"
)

func TestSimplify(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "3", "3"},
		{"fold", "1 + 2 * 3", "7"},
		{"fold-const-var", "x * 4", "8"},
		{"fold-chain", "y ^ 2", "9"},
		{"unbound", "w", "w"},
		{"keep-unbound", "w + 1", "w + 1"},
		{"partial", "w + x * 3", "w + 6"},
		{"substitute", "z + 1", "w * 2 + 1"},
		{"div", "4 / 2", "4 / 2"},
		{"div-folded-args", "(1 + 1) / (x + 1)", "2 / 3"},
		{"sin", "sin(2)", "sin(2)"},
		{"sin-folded-arg", "sin(x * 3)", "sin(6)"},
		{"abs", "abs(x - 5)", "3"},
		{"neg", "-x", "-2"},
		{"neg-unbound", "-w", "-w"},
		{"meta", "simplify(x + w + 1)", "2 + w + 1"},
		{"bound-div", "q + x", "1 / 2 + 2"},
	}
	env := classifyEnv()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := symcalc.ParseString(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			want, err := symcalc.ParseString(c.want)
			if err != nil {
				t.Fatal(c.want, "failed to parse:", err)
			}
			want, err = symcalc.Simplify(symcalc.NewBindings(), want)
			if err != nil {
				t.Fatal(err)
			}
			got, err := symcalc.Simplify(env, a)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("Simplify(%v):\n\twant %v\n\tgot  %v", a, want, got)
			}
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	srcs := []string{
		"1 + 2",
		"w + x * 3",
		"z / (y - 1)",
		"sin(w) + cos(x) + 2 x",
		"-(w * -y)",
		"r ^ w",
	}
	env := classifyEnv()
	for _, src := range srcs {
		a, err := symcalc.ParseString(src)
		if err != nil {
			t.Fatal(src, "failed to parse:", err)
		}
		once, err := symcalc.Simplify(env, a)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := symcalc.Simplify(env, once)
		if err != nil {
			t.Fatal(err)
		}
		if !once.Equal(twice) {
			t.Errorf("simplifying %q is not idempotent:\n\tonce  %v\n\ttwice %v", src, once, twice)
		}
	}
}

func TestSimplifyPreservesValue(t *testing.T) {
	srcs := []string{
		"1 + 2 * x",
		"x / 4 + y",
		"sin(x) * cos(y) + sqrt(16)",
		"exp(r) - abs(-x)",
	}
	env := classifyEnv()
	for _, src := range srcs {
		a, err := symcalc.ParseString(src)
		if err != nil {
			t.Fatal(src, "failed to parse:", err)
		}
		s, err := symcalc.Simplify(env, a)
		if err != nil {
			t.Fatal(err)
		}
		want, err := symcalc.Evaluate(env, a)
		if err != nil {
			t.Fatal(err)
		}
		got, err := symcalc.Evaluate(env, s)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q: simplified %v evaluates to %g, want %g", src, s, got, want)
		}
	}
}

func TestSimplifyDoesNotModify(t *testing.T) {
	env := classifyEnv()
	a, err := symcalc.ParseString("x + w * (y - 1)")
	if err != nil {
		t.Fatal(err)
	}
	before := a.String()
	if _, err := symcalc.Simplify(env, a); err != nil {
		t.Fatal(err)
	}
	if after := a.String(); after != before {
		t.Errorf("input changed from %s to %s", before, after)
	}
}

func TestSimplifyErrors(t *testing.T) {
	cases := []struct {
		name string
		n    *symcalc.Node
		err  interface{}
		msg  []string
	}{
		{
			name: "unknown",
			n:    symcalc.Op("tan", symcalc.Var("w")),
			err:  new(*symcalc.OperationError),
			msg:  []string{`"tan"`},
		},
		{
			name: "arity",
			n:    symcalc.Op("*", symcalc.Num(1), symcalc.Num(2), symcalc.Num(3)),
			err:  new(*symcalc.ArityError),
			msg:  []string{`\b3\b`},
		},
		{
			name: "arity-symbolic",
			n:    symcalc.Op("sin", symcalc.Var("w"), symcalc.Num(2)),
			err:  new(*symcalc.ArityError),
			msg:  []string{`\bsin\b`},
		},
		{
			name: "arity-meta",
			n:    symcalc.Op("simplify"),
			err:  new(*symcalc.ArityError),
			msg:  []string{`\bsimplify\b`},
		},
		{
			name: "nested",
			n:    symcalc.Op("+", symcalc.Var("w"), symcalc.Op("cos")),
			err:  new(*symcalc.ArityError),
			msg:  []string{`\bcos\b`},
		},
	}
	env := classifyEnv()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := symcalc.Simplify(env, c.n)
			if err == nil {
				t.Fatalf("%v simplified to %v without error", c.n, r)
			}
			if !errors.As(err, c.err) {
				t.Errorf("wrong error: want %T, got %#v", c.err, err)
			}
			for _, m := range c.msg {
				if !regexp.MustCompile(m).MatchString(err.Error()) {
					t.Errorf("error %q doesn't match %q", err.Error(), m)
				}
			}
		})
	}
}

func BenchmarkSimplify(b *testing.B) {
	a, err := symcalc.ParseString("w + x * 3 + sin(y) / z")
	if err != nil {
		b.Fatal(err)
	}
	env := classifyEnv()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		symcalc.Simplify(env, a)
	}
}
