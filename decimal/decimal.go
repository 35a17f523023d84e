package decimal

// Finite is a signed fixed point number of its context's radix.
//
// The digits are stored most significant first. exp is the place value of the
// last stored digit, so digits [1 2 3 4] with exp -3 is 1.234 and digits [1]
// with exp 2 is 100. Values are normalized: no leading or trailing zero digit
// is stored and zero is the single digit 0 with exp 0 and a Positive sign.
//
// Finite values are immutable. Use the Context methods to create them.
type Finite struct {
	ctx    Context
	digits []uint32
	exp    int
	sign   Sign
}

// Context returns the context of f.
func (f Finite) Context() Context {
	return f.ctx
}

// Digits returns a copy of the stored digits, most significant first.
func (f Finite) Digits() []uint32 {
	return append([]uint32(nil), f.digits...)
}

// Exponent returns the place value of the least significant stored digit.
func (f Finite) Exponent() int {
	return f.exp
}

// Sign returns the sign of f.
func (f Finite) Sign() Sign {
	return f.sign
}

// IsNeg reports whether f is less than zero.
func (f Finite) IsNeg() bool {
	return f.sign == Negative
}

// IsPos reports whether f is greater than or equal to zero.
func (f Finite) IsPos() bool {
	return f.sign == Positive
}

// IsZero reports whether f is zero.
func (f Finite) IsZero() bool {
	return len(f.digits) == 1 && f.digits[0] == 0
}

// IsOne reports whether the magnitude of f is one.
func (f Finite) IsOne() bool {
	return len(f.digits) == 1 && f.digits[0] == 1 && f.exp == 0
}

// Neg returns -f. Zero stays positive.
func (f Finite) Neg() Finite {
	if f.IsZero() {
		return f
	}

	f.sign = f.sign.Negate()

	return f
}

// Abs returns the magnitude of f.
func (f Finite) Abs() Finite {
	f.sign = Positive

	return f
}

func (f Finite) withSign(s Sign) Finite {
	f.sign = s
	if f.IsZero() {
		f.sign = Positive
	}

	return f
}

// trim drops leading zeros, then trailing zeros moving them into the
// exponent.
func (f Finite) trim() Finite {
	d := f.digits

	for len(d) > 1 && d[0] == 0 {
		d = d[1:]
	}

	for len(d) > 1 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
		f.exp++
	}

	if len(d) == 0 {
		d = []uint32{0}
	}

	f.digits = d

	if f.IsZero() {
		f.exp = 0
		f.sign = Positive
	}

	return f
}

// overflows reports whether f leaves no room for a carry within the
// precision.
func (f Finite) overflows() bool {
	return f.Len()+1 > f.ctx.Precision
}

func (f Finite) overflow(s Sign) error {
	if f.overflows() {
		return &OverflowError{Sign: s}
	}

	return nil
}
