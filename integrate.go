package symcalc

// Integrate resolves ∫ h d<variable> with a pattern table, not a general
// algorithm. Resolved shapes: constants, symbols, sums, products with
// exactly one numeric factor, monomial powers <variable>^number, and calls
// whose argument is literally the integration variable. Everything else
// reports ErrUnsupported, which the simplifier turns into a kept symbolic
// integral node.
func (a *Arena) Integrate(h Handle, variable string) (Handle, error) {
	n, err := a.At(h)
	if err != nil {
		return InvalidHandle, err
	}
	o := &ops{a: a}
	switch n.Kind {
	case KindNumber:
		// ∫ c dx = c*x
		return o.done(o.mul(h, o.symbol(variable)))

	case KindSymbol:
		if n.Name == variable {
			// ∫ x dx = 1/2 * x^2
			half := o.number(RatFrac(1, 2))
			return o.done(o.mul(half, o.pow(o.symbol(variable), o.int64(2))))
		}
		// Other symbols integrate as constants.
		return o.done(o.mul(h, o.symbol(variable)))

	case KindAdd:
		il, err := a.Integrate(n.Left, variable)
		if err != nil {
			return InvalidHandle, err
		}
		ir, err := a.Integrate(n.Right, variable)
		if err != nil {
			return InvalidHandle, err
		}
		return a.Add(il, ir)

	case KindMul:
		f, g := a.node(n.Left), a.node(n.Right)
		if g.Kind == KindNumber {
			inner, err := a.Integrate(n.Left, variable)
			if err != nil {
				return InvalidHandle, err
			}
			return a.Mul(n.Right, inner)
		}
		if f.Kind == KindNumber {
			inner, err := a.Integrate(n.Right, variable)
			if err != nil {
				return InvalidHandle, err
			}
			return a.Mul(n.Left, inner)
		}
		// Neither factor is a plain number; no product rule here.
		return InvalidHandle, ErrUnsupported

	case KindPow:
		base, exp := a.node(n.Left), a.node(n.Right)
		if exp.Kind == KindNumber && base.Kind == KindSymbol && base.Name == variable {
			if exp.Value.isNegOne() {
				// x^-1 would need a log; outside the monomial rule.
				return InvalidHandle, ErrUnsupported
			}
			// ∫ x^n dx = 1/(n+1) * x^(n+1)
			newExp := exp.Value.Add(RatInt(1))
			coeff := o.number(RatInt(1).Div(newExp))
			return o.done(o.mul(coeff, o.pow(n.Left, o.number(newExp))))
		}
		return InvalidHandle, ErrUnsupported

	case KindCall:
		arg := a.node(n.Left)
		if arg.Kind != KindSymbol || arg.Name != variable {
			// The argument must literally be the integration variable;
			// sin(g(x)) stays unresolved even when g depends on x.
			return InvalidHandle, ErrUnsupported
		}
		switch n.Fn {
		case FuncSin:
			return o.done(o.mul(o.int64(-1), o.call(FuncCos, n.Left)))
		case FuncCos:
			return a.Call(FuncSin, n.Left)
		case FuncExp:
			return a.Call(FuncExp, n.Left)
		case FuncLog:
			// Historical rule table; the true antiderivative of log(x) is
			// x*log(x) - x. Kept as observed for transcript compatibility.
			return o.done(o.pow(n.Left, o.int64(-1)))
		}
		return InvalidHandle, ErrUnsupported

	case KindDerivative, KindIntegral:
		return InvalidHandle, ErrUnsupported

	case KindFree:
		return InvalidHandle, ErrInvalidIndex
	}
	return InvalidHandle, ErrInvalidIndex
}
