package decimal

import (
	"errors"
	"strings"
)

type form byte

const (
	nan form = iota
	finite
	inf
)

// Number is a Finite value or one of the sentinels +Inf, -Inf and NaN.
//
// Operations never fail: a Finite overflow becomes the infinity of the
// matching sign and undefined operations become NaN. The zero value is NaN.
type Number struct {
	form   form
	neg    bool // infinities only
	finite Finite
}

// NewNumber returns f as a Number.
func NewNumber(f Finite) Number {
	return Number{form: finite, finite: f}
}

// Inf returns the infinity signed s.
func Inf(s Sign) Number {
	return Number{form: inf, neg: s == Negative}
}

// NaN returns not-a-number.
func NaN() Number {
	return Number{}
}

// ParseNumber is like Parse but also accepts the sentinels "inf", "+inf",
// "-inf" and "nan" in any case.
func (c Context) ParseNumber(s string) (Number, error) {
	switch strings.ToLower(s) {
	case "inf", "+inf":
		return Inf(Positive), nil
	case "-inf":
		return Inf(Negative), nil
	case "nan":
		return NaN(), nil
	}

	f, err := c.Parse(s)
	if err != nil {
		return Number{}, err
	}

	return NewNumber(f), nil
}

// IsNaN reports whether n is NaN.
func (n Number) IsNaN() bool {
	return n.form == nan
}

// IsInf reports whether n is an infinity.
func (n Number) IsInf() bool {
	return n.form == inf
}

// IsFinite reports whether n is neither an infinity nor NaN.
func (n Number) IsFinite() bool {
	return n.form == finite
}

// Finite returns the finite value of n and whether n is finite.
func (n Number) Finite() (Finite, bool) {
	return n.finite, n.form == finite
}

// Sign returns the sign of n. NaN is Positive.
func (n Number) Sign() Sign {
	switch n.form {
	case finite:
		return n.finite.sign
	case inf:
		if n.neg {
			return Negative
		}
	}

	return Positive
}

// fromResult escalates an overflow to the infinity of its sign and an
// undefined operation to NaN.
func fromResult(f Finite, err error) Number {
	if err == nil {
		return NewNumber(f)
	}

	var oe *OverflowError
	if errors.As(err, &oe) {
		return Inf(oe.Sign)
	}

	return NaN()
}

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.form {
	case finite:
		return NewNumber(n.finite.Neg())
	case inf:
		n.neg = !n.neg
	}

	return n
}

// Add returns n + o.
func (n Number) Add(o Number) Number {
	switch {
	case n.form == nan || o.form == nan:
		return NaN()
	case n.form == inf && o.form == inf:
		if n.neg != o.neg {
			return NaN()
		}

		return n
	case n.form == inf:
		return n
	case o.form == inf:
		return o
	}

	return fromResult(n.finite.Add(o.finite))
}

// Sub returns n - o.
func (n Number) Sub(o Number) Number {
	return n.Add(o.Neg())
}

// Mul returns n * o. An infinity times any finite value, zero included, is an
// infinity signed by the product of the signs.
func (n Number) Mul(o Number) Number {
	switch {
	case n.form == nan || o.form == nan:
		return NaN()
	case n.form == inf || o.form == inf:
		return Inf(n.Sign().Combine(o.Sign()))
	}

	return fromResult(n.finite.Mul(o.finite))
}

// Div returns n / o.
//
// Infinity divided by infinity and zero divided by zero are NaN. A non zero
// value divided by zero is the infinity signed by the quotient and a finite
// value divided by an infinity is zero.
func (n Number) Div(o Number) Number {
	switch {
	case n.form == nan || o.form == nan:
		return NaN()
	case n.form == inf && o.form == inf:
		return NaN()
	case n.form == inf:
		return Inf(n.Sign().Combine(o.Sign()))
	case o.form == inf:
		return NewNumber(n.finite.ctx.Zero())
	}

	return fromResult(n.finite.Div(o.finite))
}

// Cmp compares n and o. ok is false if either is NaN, which is unordered.
func (n Number) Cmp(o Number) (c int, ok bool) {
	if n.form == nan || o.form == nan {
		return 0, false
	}

	if n.form == finite && o.form == finite {
		return n.finite.Cmp(o.finite), true
	}

	switch d := n.rank() - o.rank(); {
	case d < 0:
		return -1, true
	case d > 0:
		return 1, true
	}

	return 0, true
}

// rank orders infinities around the finite values.
func (n Number) rank() int {
	switch {
	case n.form == finite:
		return 0
	case n.neg:
		return -1
	default:
		return 1
	}
}

// Equal reports whether n and o are ordered and equal. NaN is not equal to
// anything, itself included.
func (n Number) Equal(o Number) bool {
	c, ok := n.Cmp(o)

	return ok && c == 0
}

// Less reports whether n and o are ordered and n < o.
func (n Number) Less(o Number) bool {
	c, ok := n.Cmp(o)

	return ok && c < 0
}

func (n Number) String() string {
	switch n.form {
	case finite:
		return n.finite.String()
	case inf:
		if n.neg {
			return "-inf"
		}

		return "inf"
	}

	return "NaN"
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
