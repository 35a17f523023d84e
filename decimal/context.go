package decimal

// MaxPrecision is the largest precision a Context may have. It is also the
// longest numeral Parse accepts.
const MaxPrecision = 100

// Context is the radix and precision shared by a family of values.
//
// Precision is the total number of digit places a value may span, including
// one place kept free for the carry of the next operation.
type Context struct {
	Radix     uint32
	Precision int
}

// Base10 is a decimal context with twenty places of precision.
var Base10 = Context{Radix: 10, Precision: 20}

// Validate returns ErrInvalidRadix or ErrInvalidPrecision if the context
// cannot hold values.
func (c Context) Validate() error {
	if c.Radix < 2 || c.Radix > 36 {
		return ErrInvalidRadix
	}

	if c.Precision <= 0 || c.Precision > MaxPrecision {
		return ErrInvalidPrecision
	}

	return nil
}

// Zero returns the canonical zero.
func (c Context) Zero() Finite {
	return Finite{ctx: c, digits: []uint32{0}}
}

// One returns one.
func (c Context) One() Finite {
	return Finite{ctx: c, digits: []uint32{1}}
}

// FromUint64 returns v in the context. An OverflowError is returned if v has
// more digits than the precision allows.
func (c Context) FromUint64(v uint64) (f Finite, err error) {
	err = c.Validate()
	if err != nil {
		return Finite{}, err
	}

	if v == 0 {
		return c.Zero(), nil
	}

	var digits []uint32
	for r := uint64(c.Radix); v != 0; v /= r {
		digits = append(digits, uint32(v%r))
	}

	for l, h := 0, len(digits)-1; l < h; l, h = l+1, h-1 {
		digits[l], digits[h] = digits[h], digits[l]
	}

	f = Finite{ctx: c, digits: digits}.trim()
	if f.overflows() {
		return Finite{}, &OverflowError{Sign: Positive}
	}

	return f, nil
}

func (c Context) mustMatch(o Context) {
	if c != o {
		panic("decimal: mismatched contexts")
	}
}
