package symcalc

// Differentiate resolves d/d<variable> of h by structural recursion. It
// handles constants, symbols, sums, products, monomial powers
// (<variable>^number), and the chain rule for the supported functions.
// Every other shape — in particular a general power rule — reports
// ErrUnsupported so callers (the simplifier above all) can keep a deferred
// derivative node instead.
func (a *Arena) Differentiate(h Handle, variable string) (Handle, error) {
	n, err := a.At(h)
	if err != nil {
		return InvalidHandle, err
	}
	o := &ops{a: a}
	switch n.Kind {
	case KindNumber:
		return a.Int(0)

	case KindSymbol:
		if n.Name == variable {
			return a.Int(1)
		}
		return a.Int(0)

	case KindAdd:
		dl, err := a.Differentiate(n.Left, variable)
		if err != nil {
			return InvalidHandle, err
		}
		dr, err := a.Differentiate(n.Right, variable)
		if err != nil {
			return InvalidHandle, err
		}
		return a.Add(dl, dr)

	case KindMul:
		// (f*g)' = f'*g + f*g'
		df, err := a.Differentiate(n.Left, variable)
		if err != nil {
			return InvalidHandle, err
		}
		dg, err := a.Differentiate(n.Right, variable)
		if err != nil {
			return InvalidHandle, err
		}
		return o.done(o.add(o.mul(df, n.Right), o.mul(n.Left, dg)))

	case KindPow:
		base, exp := a.node(n.Left), a.node(n.Right)
		if exp.Kind == KindNumber && base.Kind == KindSymbol && base.Name == variable {
			// d/dx x^n = n * x^(n-1)
			coeff := o.number(exp.Value.Copy())
			newExp := o.number(exp.Value.Sub(RatInt(1)))
			return o.done(o.mul(coeff, o.pow(n.Left, newExp)))
		}
		return InvalidHandle, ErrUnsupported

	case KindCall:
		du, err := a.Differentiate(n.Left, variable)
		if err != nil {
			return InvalidHandle, err
		}
		switch n.Fn {
		case FuncSin:
			return o.done(o.mul(o.call(FuncCos, n.Left), du))
		case FuncCos:
			neg := o.mul(o.int64(-1), o.call(FuncSin, n.Left))
			return o.done(o.mul(neg, du))
		case FuncExp:
			return o.done(o.mul(o.call(FuncExp, n.Left), du))
		case FuncLog:
			return o.done(o.mul(o.pow(n.Left, o.int64(-1)), du))
		}
		return InvalidHandle, ErrUnsupported

	case KindDerivative, KindIntegral:
		// Nested deferred nodes are opaque to the rule table.
		return InvalidHandle, ErrUnsupported

	case KindFree:
		return InvalidHandle, ErrInvalidIndex
	}
	return InvalidHandle, ErrInvalidIndex
}
