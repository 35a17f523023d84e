package decimal

// Digits are addressed by position, the place value of the digit: 0 is the
// units digit, 1 the radix place, -1 the first fractional digit. A position
// maps to an index of the stored digits through their length and the
// exponent:
//
//  index = len(digits) + exp - pos - 1
//
// For example, 1.25 is stored as digits [1 2 5] with exp -2:
//
//  | pos   |  0  |  -1 |  -2 |
//  | index |  0  |  1  |  2  |
//  | digit |  1  |  2  |  5  |
//
// Digits [3 3 2 9] with exp -8 (0.00003329):
//
//  | pos   |  0  |  -1 |  -2 |  -3 |  -4 |  -5 |  -6 |  -7 |  -8 |
//  | index | -5  |  -4 |  -3 |  -2 |  -1 |  0  |  1  |  2  |  3  |
//  | digit | (0) | (0) | (0) | (0) | (0) |  3  |  3  |  2  |  9  |
//
// Digits [6 0 3] with exp 2 (60300):
//
//  | pos   |  4  |  3  |  2  |  1  |  0  |
//  | index |  0  |  1  |  2  |  3  |  4  |
//  | digit |  6  |  0  |  3  | (0) | (0) |
//
// Places in parentheses are not stored. Positions below the stored digits
// are zeros of the value; positions above them are not part of the value and
// only read as zero when walking a range of positions.

// index maps a position to an index into the stored digits.
func (f Finite) index(pos int) int {
	return len(f.digits) + f.exp - pos - 1
}

// Digit returns the digit at pos. Positions below the stored digits return
// (0, true); positions above them return (0, false).
func (f Finite) Digit(pos int) (digit uint32, ok bool) {
	i := f.index(pos)

	switch {
	case i < 0:
		return 0, false
	case i >= len(f.digits):
		return 0, true
	}

	return f.digits[i], true
}

func (f Finite) digitOr0(pos int) uint32 {
	d, _ := f.Digit(pos)

	return d
}

// setDigit writes digit at pos, growing the stored digits with zeros on
// either end as needed. It must only be used on values under construction.
func (f *Finite) setDigit(digit uint32, pos int) {
	if digit >= f.ctx.Radix {
		panic("decimal: digit out of radix")
	}

	if pos < f.exp {
		f.digits = append(f.digits, make([]uint32, f.exp-pos)...)
		f.exp = pos
	}

	i := f.index(pos)
	if i < 0 {
		grown := make([]uint32, len(f.digits)-i)
		copy(grown[-i:], f.digits)
		f.digits = grown
		i = 0
	}

	f.digits[i] = digit
}

// StartBound returns the lowest position of f, never above 0.
func (f Finite) StartBound() int {
	if f.exp < 0 {
		return f.exp
	}

	return 0
}

// EndBound returns one past the highest position of f, never below 1. It is
// the position a final carry is written to.
func (f Finite) EndBound() int {
	end := len(f.digits) + f.exp
	if end <= 0 {
		return 1
	}

	return end
}

// IntLen returns the number of integer places of f.
func (f Finite) IntLen() int {
	return f.EndBound()
}

// FracLen returns the number of fractional places of f.
func (f Finite) FracLen() int {
	return -f.StartBound()
}

// Len returns the number of places of f. This is what is held against the
// precision.
func (f Finite) Len() int {
	return f.EndBound() - f.StartBound()
}

// MergeBounds returns the range of positions [start, end) covering both a and
// b.
func MergeBounds(a, b Finite) (start, end int) {
	start, end = a.StartBound(), a.EndBound()

	if s := b.StartBound(); s < start {
		start = s
	}

	if e := b.EndBound(); e > end {
		end = e
	}

	return start, end
}

// shiftPoint moves the point of f by offset places. Positive offsets
// multiply by a power of the radix.
func (f Finite) shiftPoint(offset int) Finite {
	f.exp += offset

	return f
}

// msd returns the position of the most significant digit of a non zero f.
func (f Finite) msd() int {
	return len(f.digits) + f.exp - 1
}
