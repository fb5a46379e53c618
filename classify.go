package symcalc

// IsExpression reports whether n must be kept in symbolic form rather than
// folded to a constant. That is the case if n refers to a variable which is
// not constant, or if it applies a symbolic operator (/, sin, or cos)
// anywhere. Numbers are never expressions. Operations are checked against the
// registry as they are reached, giving an *OperationError or *ArityError.
func IsExpression(env Env, n *Node) (bool, error) {
	w := walker{env: env}
	return w.isexpr(n)
}

// IsConstant reports whether the variable name is bound to a number or to an
// expression which is itself not an expression in the sense of IsExpression.
// Unbound variables are not constant.
func IsConstant(env Env, name string) (bool, error) {
	w := walker{env: env}
	return w.isconst(name)
}

func (w *walker) isexpr(n *Node) (bool, error) {
	switch n.kind {
	case KindNum:
		return false, nil
	case KindVar:
		c, err := w.isconst(n.name)
		return !c, err
	case KindOp:
		def, err := lookupop(n)
		if err != nil {
			return false, err
		}
		if def.symbolic {
			return true, nil
		}
		for _, a := range n.args {
			e, err := w.isexpr(a)
			if err != nil {
				return false, err
			}
			if e {
				return true, nil
			}
		}
		return false, nil
	default:
		panic("symcalc: invalid AST node " + n.kind.String())
	}
}

func (w *walker) isconst(name string) (bool, error) {
	v, ok, err := w.enter(name)
	if err != nil || !ok {
		return false, err
	}
	defer w.leave()
	if v.kind == KindNum {
		return true, nil
	}
	e, err := w.isexpr(v)
	return !e, err
}
