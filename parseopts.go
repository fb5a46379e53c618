package symcalc

// ParseOption is an option for parsing.
type ParseOption interface {
	apply(funcs map[string]Func)
}

type funcopt struct {
	name string
	fn   Func
}

// ParseFunc sets the function that name parses as, overriding any default.
// A nil fn makes name parse as a variable.
func ParseFunc(name string, fn Func) ParseOption {
	return funcopt{name, fn}
}

func (o funcopt) apply(funcs map[string]Func) {
	funcs[o.name] = o.fn
}

// parsefuncs resolves the functions in effect under opts. Without options it
// is globalfuncs itself, which is never modified.
func parsefuncs(opts []ParseOption) map[string]Func {
	if len(opts) == 0 {
		return globalfuncs
	}
	funcs := make(map[string]Func, len(globalfuncs)+len(opts))
	for k, v := range globalfuncs {
		funcs[k] = v
	}
	for _, opt := range opts {
		opt.apply(funcs)
	}
	return funcs
}
