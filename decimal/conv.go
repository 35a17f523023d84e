package decimal

import (
	"strings"
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// Parse returns the value of the numeral s:
//
//  ['+'|'-'] digits ['.' digits]
//
// Digits are drawn from the first Radix characters of 0-9 then a-z, in
// either case. The normalized value must fit the precision or ErrTooLong is
// returned.
func (c Context) Parse(s string) (f Finite, err error) {
	err = c.Validate()
	if err != nil {
		return Finite{}, err
	}

	if s == "" {
		return Finite{}, ErrEmpty
	}

	if len(s) > MaxPrecision {
		return Finite{}, ErrTooLong
	}

	sign := Positive
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = Negative
		s = s[1:]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return Finite{}, ErrSeveralPoints
	}

	if parts[0] == "" {
		return Finite{}, ErrEmpty
	}

	digits, err := c.parseDigits(parts[0], nil)
	if err != nil {
		return Finite{}, err
	}

	f = Finite{ctx: c}

	if len(parts) == 2 {
		if parts[1] == "" {
			return Finite{}, ErrPointWithoutFracPart
		}

		digits, err = c.parseDigits(parts[1], digits)
		if err != nil {
			return Finite{}, err
		}

		f.exp = -len(parts[1])
	}

	f.digits = digits
	f = f.trim().withSign(sign)

	if f.overflows() {
		return Finite{}, ErrTooLong
	}

	return f, nil
}

// MustParse is like Parse but panics if s cannot be parsed.
func (c Context) MustParse(s string) Finite {
	f, err := c.Parse(s)
	if err != nil {
		panic(err)
	}

	return f
}

func (c Context) parseDigits(s string, digits []uint32) ([]uint32, error) {
	for i := 0; i < len(s); i++ {
		d := strings.IndexByte(digitChars, lower(s[i]))
		if d < 0 || uint32(d) >= c.Radix {
			return nil, ErrInvalidDigit
		}

		digits = append(digits, uint32(d))
	}

	return digits, nil
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}

	return b
}

// String returns f as a numeral, the exact inverse of Parse.
func (f Finite) String() string {
	sb := &strings.Builder{}

	if f.sign == Negative {
		sb.WriteByte('-')
	}

	start := f.StartBound()

	for pos := f.EndBound() - 1; pos >= start; pos-- {
		sb.WriteByte(digitChars[f.digitOr0(pos)])

		if pos == 0 && start < 0 {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (f Finite) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
