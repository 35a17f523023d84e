package decimal

// Sign is the sign of a value. The zero value is Positive.
type Sign uint8

const (
	Positive Sign = iota
	Negative
)

// Combine returns the sign of a product or quotient of values signed s and o.
func (s Sign) Combine(o Sign) Sign {
	if s == o {
		return Positive
	}

	return Negative
}

// Negate returns the other sign.
func (s Sign) Negate() Sign {
	if s == Positive {
		return Negative
	}

	return Positive
}

// Cmp orders Positive after Negative.
func (s Sign) Cmp(o Sign) int {
	switch {
	case s == o:
		return 0
	case s == Positive:
		return 1
	default:
		return -1
	}
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}

	return "+"
}
