package symcalc

import "math"

// MaxSamples is the most points Sample produces for one range.
const MaxSamples = 1 << 20

// Point is a sampled point of an expression.
type Point struct {
	X, Y float64
}

// Sample simplifies expr once, then evaluates it with the variable name bound
// to each of min, min+step, min+2*step, and so on up to max. The binding of
// name exists only while sampling; env is restored to its prior state before
// Sample returns, whether or not there is an error.
//
// Sample fails with a *RangeError if min > max or the range is not finite,
// with a *DefinedError if name is already bound in env, with a *StepError if
// step is not positive and finite or would need more than MaxSamples points,
// or with a *NameError if the simplified expression refers to any unbound
// variable other than name. These are checked before name is bound.
func Sample(env Env, expr *Node, name string, min, max, step float64) (*Node, []Point, error) {
	span := max - min
	if !(min <= max) || math.IsInf(span, 0) || math.IsNaN(span) {
		return nil, nil, &RangeError{Min: min, Max: max}
	}
	if env.Contains(name) {
		return nil, nil, &DefinedError{Name: name}
	}
	if !(step > 0) || math.IsInf(step, 1) {
		return nil, nil, &StepError{Step: step}
	}
	// The bound is inclusive, so max is sampled when span is a multiple of
	// step.
	count := span / step
	if count >= MaxSamples {
		return nil, nil, &StepError{Step: step, Span: span}
	}
	s, err := Simplify(env, expr)
	if err != nil {
		return nil, nil, err
	}
	for _, v := range s.Vars() {
		// Simplification substitutes every bound variable, so any other
		// name left over is unbound.
		if v != name {
			return nil, nil, &NameError{Name: v}
		}
	}

	b := bind(env, name)
	defer b.release()
	// x is computed from i, never accumulated.
	pts := make([]Point, 0, int(count)+1)
	for i := 0; float64(i) <= count; i++ {
		x := min + float64(i)*step
		b.set(Num(x))
		y, err := Evaluate(env, s)
		if err != nil {
			return nil, nil, err
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return s, pts, nil
}

// Plot samples expr as Sample does and draws the points to sink. The result
// is the simplified expression.
func Plot(env Env, sink Sink, expr *Node, name string, min, max, step float64) (*Node, error) {
	s, pts, err := Sample(env, expr, name, min, max, step)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	if err := sink.DrawScatterPlot("plot", name, "output", xs, ys); err != nil {
		return nil, err
	}
	return s, nil
}

// binding is a temporary variable binding.
type binding struct {
	env  Env
	name string
}

// bind prepares a temporary binding of name in env. The caller must ensure
// name is not already bound and must call release when done.
func bind(env Env, name string) binding {
	return binding{env: env, name: name}
}

func (b binding) set(n *Node) {
	b.env.Put(b.name, n)
}

func (b binding) release() {
	b.env.Remove(b.name)
}
