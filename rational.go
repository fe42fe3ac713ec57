package symcalc

import (
	"math/big"
)

// Rational is an exact fraction, always held in canonical reduced form with
// the sign on the numerator. The zero value is not usable; construct values
// with ParseRational, RatInt, or the arithmetic methods.
type Rational struct{ *big.Rat }

func RatInt(n int64) Rational { return Rational{big.NewRat(n, 1)} }

// RatFrac panics on q == 0, matching big.NewRat.
func RatFrac(p, q int64) Rational { return Rational{big.NewRat(p, q)} }

// ParseRational parses a decimal integer "n" or a fraction "n/d", with an
// optional leading sign on the numerator. Anything else (floats, exponents,
// spaces, a zero denominator) is a *ParseError.
func ParseRational(lit string) (Rational, error) {
	num, den, ok := splitRatLit(lit)
	if !ok {
		return Rational{}, &ParseError{Literal: lit}
	}
	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return Rational{}, &ParseError{Literal: lit}
	}
	d := big.NewInt(1)
	if den != "" {
		d, ok = new(big.Int).SetString(den, 10)
		if !ok || d.Sign() == 0 {
			return Rational{}, &ParseError{Literal: lit}
		}
	}
	return Rational{new(big.Rat).SetFrac(n, d)}, nil
}

// splitRatLit validates the literal shape and splits it at the slash.
func splitRatLit(lit string) (num, den string, ok bool) {
	s := lit
	neg := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[:1]
		s = s[1:]
	}
	if s == "" {
		return "", "", false
	}
	slash := -1
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] == '/' && slash < 0 && i > 0 && i < len(s)-1:
			slash = i
		default:
			return "", "", false
		}
	}
	if slash < 0 {
		return neg + s, "", true
	}
	return neg + s[:slash], s[slash+1:], true
}

func ratFromFloat(f float64) Rational {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		// NaN/Inf cannot be represented; callers fold through float math
		// and only reach here with finite inputs.
		r = new(big.Rat)
	}
	return Rational{r}
}

func (r Rational) Add(o Rational) Rational { return Rational{new(big.Rat).Add(r.Rat, o.Rat)} }
func (r Rational) Sub(o Rational) Rational { return Rational{new(big.Rat).Sub(r.Rat, o.Rat)} }
func (r Rational) Mul(o Rational) Rational { return Rational{new(big.Rat).Mul(r.Rat, o.Rat)} }
func (r Rational) Neg() Rational           { return Rational{new(big.Rat).Neg(r.Rat)} }

// Div panics if o is zero; Arena.Div guards the public path.
func (r Rational) Div(o Rational) Rational { return Rational{new(big.Rat).Quo(r.Rat, o.Rat)} }

func (r Rational) Cmp(o Rational) int { return r.Rat.Cmp(o.Rat) }
func (r Rational) IsZero() bool       { return r.Sign() == 0 }
func (r Rational) IsOne() bool        { return r.Rat.Cmp(ratOne) == 0 }
func (r Rational) Copy() Rational     { return Rational{new(big.Rat).Set(r.Rat)} }

func (r Rational) Float64() float64 {
	f, _ := r.Rat.Float64()
	return f
}

// String renders "n" for integers and "n/d" otherwise, matching the
// canonical mpq text form.
func (r Rational) String() string { return r.Rat.RatString() }

var (
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)

func (r Rational) isNegOne() bool { return r.Rat.Cmp(ratNegOne) == 0 }
