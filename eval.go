package symcalc

import "math"

// Substitute replaces every Symbol node named symbol with a fresh Number
// parsed from valueLit. It does not simplify. Subtrees without an occurrence
// of the symbol are shared with the input expression, which the DAG model
// permits.
func (a *Arena) Substitute(h Handle, symbol, valueLit string) (Handle, error) {
	v, err := ParseRational(valueLit)
	if err != nil {
		return InvalidHandle, err
	}
	return a.subst(h, symbol, v)
}

func (a *Arena) subst(h Handle, symbol string, v Rational) (Handle, error) {
	n, err := a.At(h)
	if err != nil {
		return InvalidHandle, err
	}
	switch n.Kind {
	case KindNumber:
		return h, nil
	case KindSymbol:
		if n.Name == symbol {
			return a.number(v.Copy())
		}
		return h, nil
	case KindAdd, KindMul, KindPow:
		kind := n.Kind
		l, err := a.subst(n.Left, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		r, err := a.subst(n.Right, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		if l == n.Left && r == n.Right {
			return h, nil
		}
		return a.alloc(Node{Kind: kind, Left: l, Right: r})
	case KindCall:
		fn := n.Fn
		arg, err := a.subst(n.Left, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		if arg == n.Left {
			return h, nil
		}
		return a.Call(fn, arg)
	case KindDerivative, KindIntegral:
		kind, name := n.Kind, n.Name
		inner, err := a.subst(n.Left, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		if inner == n.Left {
			return h, nil
		}
		return a.alloc(Node{Kind: kind, Name: name, Left: inner})
	case KindFree:
		return InvalidHandle, ErrInvalidIndex
	}
	return InvalidHandle, ErrInvalidIndex
}

// Eval substitutes symbol with valueLit and folds constants on the way back
// up: sums and products of two numbers fold exactly, and a call whose
// argument folded to a number is evaluated through float math into an
// approximate rational. Powers stay symbolic. This is the original engine's
// one-shot evaluate; use Substitute+Simplify for a purely exact pipeline.
func (a *Arena) Eval(h Handle, symbol, valueLit string) (Handle, error) {
	v, err := ParseRational(valueLit)
	if err != nil {
		return InvalidHandle, err
	}
	return a.evalFold(h, symbol, v)
}

func (a *Arena) evalFold(h Handle, symbol string, v Rational) (Handle, error) {
	n, err := a.At(h)
	if err != nil {
		return InvalidHandle, err
	}
	switch n.Kind {
	case KindNumber:
		return h, nil
	case KindSymbol:
		if n.Name == symbol {
			return a.number(v.Copy())
		}
		return h, nil
	case KindAdd, KindMul:
		kind := n.Kind
		l, err := a.evalFold(n.Left, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		r, err := a.evalFold(n.Right, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		ln, rn := a.node(l), a.node(r)
		if ln.Kind == KindNumber && rn.Kind == KindNumber {
			if kind == KindAdd {
				return a.number(ln.Value.Add(rn.Value))
			}
			return a.number(ln.Value.Mul(rn.Value))
		}
		return a.alloc(Node{Kind: kind, Left: l, Right: r})
	case KindPow:
		base, err := a.evalFold(n.Left, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		exp, err := a.evalFold(n.Right, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		return a.Pow(base, exp)
	case KindCall:
		fn := n.Fn
		arg, err := a.evalFold(n.Left, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		an := a.node(arg)
		if an.Kind == KindNumber {
			return a.number(ratFromFloat(applyFunc(fn, an.Value.Float64())))
		}
		return a.Call(fn, arg)
	case KindDerivative, KindIntegral:
		kind, name := n.Kind, n.Name
		inner, err := a.evalFold(n.Left, symbol, v)
		if err != nil {
			return InvalidHandle, err
		}
		return a.alloc(Node{Kind: kind, Name: name, Left: inner})
	case KindFree:
		return InvalidHandle, ErrInvalidIndex
	}
	return InvalidHandle, ErrInvalidIndex
}

// EvalNumeric reduces a fully ground expression to a float64. Reaching a
// symbol is a *FreeSymbolError; deferred derivative/integral nodes cannot be
// evaluated and report ErrUnsupported. This is the engine's only lossy path.
func (a *Arena) EvalNumeric(h Handle) (float64, error) {
	n, err := a.At(h)
	if err != nil {
		return 0, err
	}
	switch n.Kind {
	case KindNumber:
		return n.Value.Float64(), nil
	case KindSymbol:
		return 0, &FreeSymbolError{Name: n.Name}
	case KindAdd:
		l, err := a.EvalNumeric(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := a.EvalNumeric(n.Right)
		if err != nil {
			return 0, err
		}
		return l + r, nil
	case KindMul:
		l, err := a.EvalNumeric(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := a.EvalNumeric(n.Right)
		if err != nil {
			return 0, err
		}
		return l * r, nil
	case KindPow:
		base, err := a.EvalNumeric(n.Left)
		if err != nil {
			return 0, err
		}
		exp, err := a.EvalNumeric(n.Right)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	case KindCall:
		arg, err := a.EvalNumeric(n.Left)
		if err != nil {
			return 0, err
		}
		return applyFunc(n.Fn, arg), nil
	case KindDerivative, KindIntegral:
		return 0, ErrUnsupported
	case KindFree:
		return 0, ErrInvalidIndex
	}
	return 0, ErrInvalidIndex
}

func applyFunc(fn FuncKind, x float64) float64 {
	switch fn {
	case FuncSin:
		return math.Sin(x)
	case FuncCos:
		return math.Cos(x)
	case FuncExp:
		return math.Exp(x)
	case FuncLog:
		return math.Log(x)
	}
	return math.NaN()
}
