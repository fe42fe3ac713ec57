package symcalc

// Equal reports whether x and y are structurally identical: same variant,
// same payload, children equal in order. Operator order matters — Add(x, y)
// and Add(y, x) are unequal — and no algebraic reasoning is applied.
// Handles to freed or out-of-range slots compare unequal to everything.
func (a *Arena) Equal(x, y Handle) bool {
	if x == y {
		return true
	}
	xn, err := a.At(x)
	if err != nil {
		return false
	}
	yn, err := a.At(y)
	if err != nil {
		return false
	}
	if xn.Kind != yn.Kind {
		return false
	}
	switch xn.Kind {
	case KindNumber:
		return xn.Value.Cmp(yn.Value) == 0
	case KindSymbol:
		return xn.Name == yn.Name
	case KindAdd, KindMul, KindPow:
		return a.Equal(xn.Left, yn.Left) && a.Equal(xn.Right, yn.Right)
	case KindCall:
		return xn.Fn == yn.Fn && a.Equal(xn.Left, yn.Left)
	case KindDerivative, KindIntegral:
		return xn.Name == yn.Name && a.Equal(xn.Left, yn.Left)
	case KindFree:
		return false
	}
	return false
}
