package symcalc

import "fmt"

// Kind discriminates the node variants.
type Kind uint8

const (
	KindFree Kind = iota // unoccupied slot
	KindNumber
	KindSymbol
	KindAdd
	KindMul
	KindPow
	KindCall
	KindDerivative // deferred d/dx node
	KindIntegral   // deferred ∫ node
)

func (k Kind) String() string {
	switch k {
	case KindFree:
		return "free"
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	case KindPow:
		return "pow"
	case KindCall:
		return "call"
	case KindDerivative:
		return "derivative"
	case KindIntegral:
		return "integral"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// FuncKind names the supported elementary functions.
type FuncKind uint8

const (
	FuncSin FuncKind = iota
	FuncCos
	FuncExp
	FuncLog
)

func (f FuncKind) String() string {
	switch f {
	case FuncSin:
		return "sin"
	case FuncCos:
		return "cos"
	case FuncExp:
		return "exp"
	case FuncLog:
		return "log"
	}
	return "unknown_func"
}

func parseFuncKind(s string) (FuncKind, bool) {
	switch s {
	case "sin":
		return FuncSin, true
	case "cos":
		return FuncCos, true
	case "exp":
		return FuncExp, true
	case "log":
		return FuncLog, true
	}
	return 0, false
}

// Node is one tagged-variant expression node. Which fields are meaningful
// depends on Kind:
//
//	Number              Value
//	Symbol              Name
//	Add, Mul, Pow       Left, Right
//	Call                Fn, Left (argument)
//	Derivative/Integral Name (variable), Left (inner expression)
//
// Nodes are immutable once constructed.
type Node struct {
	Kind  Kind
	Value Rational
	Name  string
	Fn    FuncKind
	Left  Handle
	Right Handle
}

// ------------------------------------------------------------
// Raw constructors. None of these simplify; they build exactly the
// tree they are told to.
// ------------------------------------------------------------

// Number parses a decimal integer or "numerator/denominator" literal into a
// canonical rational and stores it in a fresh node.
func (a *Arena) Number(lit string) (Handle, error) {
	v, err := ParseRational(lit)
	if err != nil {
		return InvalidHandle, err
	}
	return a.alloc(Node{Kind: KindNumber, Value: v})
}

// Int is a convenience for small integer constants.
func (a *Arena) Int(n int64) (Handle, error) {
	return a.alloc(Node{Kind: KindNumber, Value: RatInt(n)})
}

// number stores an already-built rational value.
func (a *Arena) number(v Rational) (Handle, error) {
	return a.alloc(Node{Kind: KindNumber, Value: v})
}

// Symbol stores a copy of name. Symbols are not interned: two calls with the
// same name yield distinct handles that compare structurally equal.
func (a *Arena) Symbol(name string) (Handle, error) {
	return a.alloc(Node{Kind: KindSymbol, Name: name})
}

func (a *Arena) Add(l, r Handle) (Handle, error) {
	return a.alloc(Node{Kind: KindAdd, Left: l, Right: r})
}

func (a *Arena) Mul(l, r Handle) (Handle, error) {
	return a.alloc(Node{Kind: KindMul, Left: l, Right: r})
}

func (a *Arena) Pow(base, exponent Handle) (Handle, error) {
	return a.alloc(Node{Kind: KindPow, Left: base, Right: exponent})
}

// Call applies one of the supported functions to arg.
func (a *Arena) Call(fn FuncKind, arg Handle) (Handle, error) {
	switch fn {
	case FuncSin, FuncCos, FuncExp, FuncLog:
	default:
		return InvalidHandle, fmt.Errorf("symcalc: unknown function kind %d", uint8(fn))
	}
	return a.alloc(Node{Kind: KindCall, Fn: fn, Left: arg})
}

// Diff builds a deferred derivative node d/d<variable>(inner). Simplify
// resolves it through the differentiator where the rule table allows.
func (a *Arena) Diff(inner Handle, variable string) (Handle, error) {
	return a.alloc(Node{Kind: KindDerivative, Name: variable, Left: inner})
}

// Integral builds a deferred integral node ∫ inner d<variable>.
func (a *Arena) Integral(inner Handle, variable string) (Handle, error) {
	return a.alloc(Node{Kind: KindIntegral, Name: variable, Left: inner})
}

// ------------------------------------------------------------
// Derived builders. Unlike the raw constructors these simplify
// their result.
// ------------------------------------------------------------

// Neg returns -e: exact negation for numbers, simplify(-1 * e) otherwise.
func (a *Arena) Neg(e Handle) (Handle, error) {
	n, err := a.At(e)
	if err != nil {
		return InvalidHandle, err
	}
	if n.Kind == KindNumber {
		return a.number(n.Value.Neg())
	}
	minusOne, err := a.Int(-1)
	if err != nil {
		return InvalidHandle, err
	}
	m, err := a.Mul(minusOne, e)
	if err != nil {
		return InvalidHandle, err
	}
	return a.Simplify(m)
}

// Sub returns simplify(x + (-y)).
func (a *Arena) Sub(x, y Handle) (Handle, error) {
	ny, err := a.Neg(y)
	if err != nil {
		return InvalidHandle, err
	}
	s, err := a.Add(x, ny)
	if err != nil {
		return InvalidHandle, err
	}
	return a.Simplify(s)
}

// Div returns x/y with the special cases the engine knows exactly:
// x/1 = x, 0/y = 0, x/x = 1, number/number folds, and otherwise
// simplify(x * y^-1). A zero numeric denominator is ErrDivisionByZero.
func (a *Arena) Div(x, y Handle) (Handle, error) {
	xn, err := a.At(x)
	if err != nil {
		return InvalidHandle, err
	}
	yn, err := a.At(y)
	if err != nil {
		return InvalidHandle, err
	}
	if yn.Kind == KindNumber && yn.Value.IsZero() {
		return InvalidHandle, ErrDivisionByZero
	}
	if yn.Kind == KindNumber && yn.Value.IsOne() {
		return x, nil
	}
	if xn.Kind == KindNumber && xn.Value.IsZero() {
		return a.Int(0)
	}
	if a.Equal(x, y) {
		return a.Int(1)
	}
	if xn.Kind == KindNumber && yn.Kind == KindNumber {
		return a.number(xn.Value.Div(yn.Value))
	}
	minusOne, err := a.Int(-1)
	if err != nil {
		return InvalidHandle, err
	}
	inv, err := a.Pow(y, minusOne)
	if err != nil {
		return InvalidHandle, err
	}
	m, err := a.Mul(x, inv)
	if err != nil {
		return InvalidHandle, err
	}
	return a.Simplify(m)
}
