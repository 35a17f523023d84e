package decimal

// ucmp compares the magnitudes of x and y.
func ucmp(x, y Finite) int {
	xl, yl := x.IntLen(), y.IntLen()

	switch {
	case xl < yl:
		return -1
	case xl > yl:
		return 1
	}

	start, end := MergeBounds(x, y)

	for pos := end - 1; pos >= start; pos-- {
		xd, yd := x.digitOr0(pos), y.digitOr0(pos)

		switch {
		case xd < yd:
			return -1
		case xd > yd:
			return 1
		}
	}

	return 0
}

// Cmp compares f and o and returns:
//
//  -1 if f <  o
//   0 if f == o
//  +1 if f >  o
func (f Finite) Cmp(o Finite) int {
	f.ctx.mustMatch(o.ctx)

	if f.IsZero() && o.IsZero() {
		return 0
	}

	if c := f.sign.Cmp(o.sign); c != 0 {
		return c
	}

	if f.sign == Negative {
		return -ucmp(f, o)
	}

	return ucmp(f, o)
}

// Equal reports whether f and o are the same value.
func (f Finite) Equal(o Finite) bool {
	return f.Cmp(o) == 0
}
