package decimal

import (
	"github.com/calebcase/oops"

	"github.com/calebcase/decnum/integer"
)

// Encoded form bytes.
const (
	wireNaN byte = iota
	wireFinite
	wirePosInf
	wireNegInf
)

// MarshalBinary implements encoding.BinaryMarshaler. See the package
// documentation for the layout.
func (n Number) MarshalBinary() (data []byte, err error) {
	switch n.form {
	case nan:
		return []byte{wireNaN}, nil
	case inf:
		if n.neg {
			return []byte{wireNegInf}, nil
		}

		return []byte{wirePosInf}, nil
	}

	f := n.finite

	err = f.ctx.Validate()
	if err != nil {
		return nil, err
	}

	exp, err := integer.FromInt64(int64(f.exp)).MarshalBinary()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	coef, err := integer.FromDigits(f.digits, f.ctx.Radix, f.sign == Negative).MarshalBinary()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	data = make([]byte, 0, 4+len(exp)+len(coef))
	data = append(data, wireFinite, byte(f.ctx.Radix), byte(f.ctx.Precision), byte(len(exp)))
	data = append(data, exp...)
	data = append(data, coef...)

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return oops.Trace(ErrInvalidEncoding)
	}

	switch data[0] {
	case wireNaN, wirePosInf, wireNegInf:
		if len(data) != 1 {
			return oops.Trace(ErrInvalidEncoding)
		}

		switch data[0] {
		case wireNaN:
			*n = NaN()
		case wirePosInf:
			*n = Inf(Positive)
		default:
			*n = Inf(Negative)
		}

		return nil
	case wireFinite:
	default:
		return oops.Trace(ErrInvalidEncoding)
	}

	if len(data) < 4 {
		return oops.Trace(ErrInvalidEncoding)
	}

	ctx := Context{
		Radix:     uint32(data[1]),
		Precision: int(data[2]),
	}

	err = ctx.Validate()
	if err != nil {
		return err
	}

	size := int(data[3])
	data = data[4:]

	if size == 0 || len(data) <= size {
		return oops.Trace(ErrInvalidEncoding)
	}

	expBlk := &integer.Block{}
	err = expBlk.UnmarshalBinary(data[:size])
	if err != nil {
		return err
	}

	exp, err := expBlk.Int64()
	if err != nil {
		return err
	}

	if exp < -MaxPrecision || exp > MaxPrecision {
		return oops.Trace(ErrInvalidEncoding)
	}

	coefBlk := &integer.Block{}
	err = coefBlk.UnmarshalBinary(data[size:])
	if err != nil {
		return err
	}

	sign := Positive
	if coefBlk.Negative {
		sign = Negative
	}

	f := Finite{
		ctx:    ctx,
		digits: coefBlk.Digits(ctx.Radix),
		exp:    int(exp),
	}
	f = f.trim().withSign(sign)

	if f.overflows() {
		return oops.Trace(ErrInvalidEncoding)
	}

	*n = NewNumber(f)

	return nil
}
