package decimal

// Every operation works on magnitudes first (uadd, usub, umulDigit) and
// applies the sign afterwards. Results are always built in fresh storage.

// uadd returns |x| + |y|.
func uadd(x, y Finite) Finite {
	z := x.ctx.Zero()
	radix := x.ctx.Radix
	start, end := MergeBounds(x, y)

	var carry uint32
	for pos := start; pos < end; pos++ {
		sum := carry + x.digitOr0(pos) + y.digitOr0(pos)

		z.setDigit(sum%radix, pos)
		carry = sum / radix
	}

	if carry != 0 {
		z.setDigit(carry, end)
	}

	return z.trim()
}

// usub returns |x| - |y|. It panics if |x| < |y|.
func usub(x, y Finite) Finite {
	z := x.ctx.Zero()
	radix := x.ctx.Radix
	start, end := MergeBounds(x, y)

	var borrow uint32
	for pos := start; pos < end; pos++ {
		xd, yd := x.digitOr0(pos), y.digitOr0(pos)

		if xd < yd+borrow {
			z.setDigit(radix+xd-yd-borrow, pos)
			borrow = 1
		} else {
			z.setDigit(xd-yd-borrow, pos)
			borrow = 0
		}
	}

	if borrow != 0 {
		panic("decimal: subtrahend larger than minuend")
	}

	return z.trim()
}

// umulDigit returns |x| * digit.
func umulDigit(x Finite, digit uint32) Finite {
	z := x.ctx.Zero()
	radix := x.ctx.Radix
	start, end := x.StartBound(), x.EndBound()

	var carry uint32
	for pos := start; pos < end; pos++ {
		p := x.digitOr0(pos)*digit + carry

		z.setDigit(p%radix, pos)
		carry = p / radix
	}

	if carry != 0 {
		z.setDigit(carry, end)
	}

	return z.trim()
}

// unit returns one shifted to pos.
func (c Context) unit(pos int) Finite {
	return c.One().shiftPoint(pos)
}

// Add returns f + o. An OverflowError is returned if the sum does not fit
// the precision.
func (f Finite) Add(o Finite) (Finite, error) {
	f.ctx.mustMatch(o.ctx)

	hi, lo := f, o
	if ucmp(f, o) < 0 {
		hi, lo = o, f
	}

	var z Finite
	switch {
	case hi.sign == lo.sign:
		z = uadd(hi, lo)
	case ucmp(hi, lo) == 0:
		return f.ctx.Zero(), nil
	default:
		z = usub(hi, lo)
	}

	z = z.withSign(hi.sign)

	err := z.overflow(z.sign)
	if err != nil {
		return Finite{}, err
	}

	return z, nil
}

// Sub returns f - o.
func (f Finite) Sub(o Finite) (Finite, error) {
	return f.Add(o.Neg())
}

// Mul returns f * o. An OverflowError is returned if the product does not
// fit the precision.
func (f Finite) Mul(o Finite) (Finite, error) {
	f.ctx.mustMatch(o.ctx)

	sign := f.sign.Combine(o.sign)

	switch {
	case f.IsZero() || o.IsZero():
		return f.ctx.Zero(), nil
	case f.IsOne():
		return o.withSign(sign), nil
	case o.IsOne():
		return f.withSign(sign), nil
	}

	// Walk the digits of the shorter operand from the least significant
	// one, so the accumulator never needs more places than the product.
	x, y := f, o
	if len(y.digits) > len(x.digits) {
		x, y = y, x
	}

	acc := f.ctx.Zero()

	for i := len(y.digits) - 1; i >= 0; i-- {
		digit := y.digits[i]
		if digit == 0 {
			continue
		}

		if x.overflows() {
			return Finite{}, &OverflowError{Sign: sign}
		}

		pos := y.exp + len(y.digits) - 1 - i
		acc = uadd(acc, umulDigit(x, digit).shiftPoint(pos))

		if acc.overflows() {
			return Finite{}, &OverflowError{Sign: sign}
		}
	}

	return acc.withSign(sign), nil
}

// Div returns f / o truncated to the precision.
//
// Division by zero returns an OverflowError signed as the quotient, unless f
// is zero as well, which returns ErrUndefined. An OverflowError is also
// returned if the integer part of the quotient does not fit the precision.
// Fractional digits that do not fit are dropped: the quotient is truncated,
// not rounded.
func (f Finite) Div(o Finite) (Finite, error) {
	f.ctx.mustMatch(o.ctx)

	sign := f.sign.Combine(o.sign)

	switch {
	case o.IsZero() && f.IsZero():
		return Finite{}, ErrUndefined
	case o.IsZero():
		return Finite{}, &OverflowError{Sign: sign}
	case f.IsZero():
		return f.ctx.Zero(), nil
	case o.IsOne():
		return f.withSign(sign), nil
	}

	rem := f.Abs()
	divisor := o.Abs()
	quo := f.ctx.Zero()

	for !rem.IsZero() {
		// divisor shifted to delta is always above rem, so at most two
		// steps down one shifted divisor fits into rem.
		delta := rem.msd() - divisor.msd() + 1

		shifted := divisor.shiftPoint(delta)
		for ucmp(shifted, rem) > 0 {
			delta--
			shifted = divisor.shiftPoint(delta)
		}

		next := uadd(quo, f.ctx.unit(delta))
		if next.overflows() {
			if delta >= 0 {
				return Finite{}, &OverflowError{Sign: sign}
			}

			break
		}

		rem = usub(rem, shifted)
		quo = next
	}

	return quo.withSign(sign), nil
}
