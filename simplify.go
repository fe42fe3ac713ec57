package symcalc

import "errors"

// Simplify rewrites h bottom-up with a fixed, ordered rule table and returns
// the handle of the simplified expression. The order of the rules is
// load-bearing: later rules rely on earlier ones having fired. Deferred
// derivative and integral nodes are resolved through the differentiator and
// integrator; when those report ErrUnsupported the deferred node is kept,
// wrapping its simplified inner expression.
func (a *Arena) Simplify(h Handle) (Handle, error) {
	n, err := a.At(h)
	if err != nil {
		return InvalidHandle, err
	}
	switch n.Kind {
	case KindNumber, KindSymbol:
		return h, nil
	case KindAdd:
		return a.simplifyAdd(n.Left, n.Right)
	case KindMul:
		return a.simplifyMul(n.Left, n.Right)
	case KindPow:
		return a.simplifyPow(n.Left, n.Right)
	case KindCall:
		fn := n.Fn
		arg, err := a.Simplify(n.Left)
		if err != nil {
			return InvalidHandle, err
		}
		return a.Call(fn, arg)
	case KindDerivative:
		return a.simplifyDeferred(n.Left, n.Name, KindDerivative)
	case KindIntegral:
		return a.simplifyDeferred(n.Left, n.Name, KindIntegral)
	case KindFree:
		return InvalidHandle, ErrInvalidIndex
	}
	return InvalidHandle, ErrInvalidIndex
}

// isAtomTerm reports the kinds that rule 3 of Add and Mul swaps behind a
// numeric literal: plain terms that should sit right of their coefficient.
func isAtomTerm(k Kind) bool {
	return k == KindSymbol || k == KindCall || k == KindMul || k == KindAdd
}

func (a *Arena) simplifyAdd(left, right Handle) (Handle, error) {
	o := &ops{a: a}
	l := o.simplify(left)
	r := o.simplify(right)
	if o.err != nil {
		return InvalidHandle, o.err
	}
	ln, rn := a.node(l), a.node(r)

	// number + number folds exactly.
	if ln.Kind == KindNumber && rn.Kind == KindNumber {
		return o.done(o.number(ln.Value.Add(rn.Value)))
	}
	// 0 + e and e + 0.
	if ln.Kind == KindNumber && ln.Value.IsZero() {
		return r, nil
	}
	if rn.Kind == KindNumber && rn.Value.IsZero() {
		return l, nil
	}
	// e + number: keep a leading numeric literal on the left.
	if isAtomTerm(ln.Kind) && rn.Kind == KindNumber {
		return o.done(o.simplify(o.add(r, l)))
	}
	// c1*x + c2*x collects to (c1+c2)*x.
	if ln.Kind == KindMul && rn.Kind == KindMul && a.Equal(ln.Right, rn.Right) {
		sum := o.simplify(o.add(ln.Left, rn.Left))
		return o.done(o.mul(sum, ln.Right))
	}
	return o.done(o.add(l, r))
}

func (a *Arena) simplifyMul(left, right Handle) (Handle, error) {
	o := &ops{a: a}
	l := o.simplify(left)
	r := o.simplify(right)
	if o.err != nil {
		return InvalidHandle, o.err
	}
	ln, rn := a.node(l), a.node(r)

	// number * number folds exactly.
	if ln.Kind == KindNumber && rn.Kind == KindNumber {
		return o.done(o.number(ln.Value.Mul(rn.Value)))
	}
	// 1 * e and 0 * e.
	if ln.Kind == KindNumber {
		if ln.Value.IsOne() {
			return r, nil
		}
		if ln.Value.IsZero() {
			return o.done(o.int64(0))
		}
	}
	// e * number: move the coefficient left.
	if isAtomTerm(ln.Kind) && rn.Kind == KindNumber {
		return o.done(o.simplify(o.mul(r, l)))
	}
	// number * (a * b): merge the coefficient into the inner product.
	if ln.Kind == KindNumber && rn.Kind == KindMul {
		inner := a.node(rn.Left)
		var merged Handle
		if inner.Kind == KindNumber {
			merged = o.number(ln.Value.Mul(inner.Value))
		} else {
			merged = o.mul(l, rn.Left)
		}
		return o.done(o.simplify(o.mul(merged, rn.Right)))
	}
	// number * (a + b) distributes.
	if ln.Kind == KindNumber && rn.Kind == KindAdd {
		inner := a.node(rn.Left)
		var merged Handle
		if inner.Kind == KindNumber {
			merged = o.number(ln.Value.Mul(inner.Value))
		} else {
			merged = o.mul(l, rn.Left)
		}
		rest := o.mul(l, rn.Right)
		return o.done(o.simplify(o.add(merged, rest)))
	}
	// e * e squares.
	if a.Equal(l, r) {
		return o.done(o.simplify(o.pow(l, o.int64(2))))
	}
	// x^a * x^b joins exponents.
	if ln.Kind == KindPow && rn.Kind == KindPow && a.Equal(ln.Left, rn.Left) {
		sum := o.simplify(o.add(ln.Right, rn.Right))
		return o.done(o.pow(ln.Left, sum))
	}
	return o.done(o.mul(l, r))
}

func (a *Arena) simplifyPow(base, exponent Handle) (Handle, error) {
	o := &ops{a: a}
	b := o.simplify(base)
	e := o.simplify(exponent)
	if o.err != nil {
		return InvalidHandle, o.err
	}
	bn, en := a.node(b), a.node(e)

	// Exponent rules fire before base rules, so 0^0 is 1 here.
	if en.Kind == KindNumber && en.Value.IsZero() {
		return o.done(o.int64(1))
	}
	if en.Kind == KindNumber && en.Value.IsOne() {
		return b, nil
	}
	if bn.Kind == KindNumber && bn.Value.IsZero() {
		return o.done(o.int64(0))
	}
	if bn.Kind == KindNumber && bn.Value.IsOne() {
		return o.done(o.int64(1))
	}
	return o.done(o.pow(b, e))
}

// simplifyDeferred handles the symbolic d/dx and ∫ nodes: simplify the inner
// expression, attempt full resolution, and fall back to a deferred node
// wrapping the simplified inner expression when no rule applies. The
// fallback is designed behavior, not an error.
func (a *Arena) simplifyDeferred(inner Handle, variable string, kind Kind) (Handle, error) {
	si, err := a.Simplify(inner)
	if err != nil {
		return InvalidHandle, err
	}
	var resolved Handle
	if kind == KindDerivative {
		resolved, err = a.Differentiate(si, variable)
	} else {
		resolved, err = a.Integrate(si, variable)
	}
	if err == nil {
		return a.Simplify(resolved)
	}
	if !errors.Is(err, ErrUnsupported) {
		return InvalidHandle, err
	}
	if kind == KindDerivative {
		return a.Diff(si, variable)
	}
	return a.Integral(si, variable)
}
