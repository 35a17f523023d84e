package decimal

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("decimal")

// Parse errors.
var (
	ErrEmpty                = Error.New("empty numeral")
	ErrTooLong              = Error.New("numeral too long")
	ErrInvalidRadix         = Error.New("invalid radix")
	ErrInvalidDigit         = Error.New("invalid digit")
	ErrInvalidPrecision     = Error.New("invalid precision")
	ErrSeveralPoints        = Error.New("several points")
	ErrPointWithoutFracPart = Error.New("point without fractional part")
)

var (
	// ErrUndefined is returned by Finite.Div when both operands are zero.
	ErrUndefined = Error.New("undefined operation")

	ErrInvalidEncoding = Error.New("invalid encoding")
)

// OverflowError is returned when the result of an operation does not fit the
// precision of its context. Sign is the sign the exact result would have.
type OverflowError struct {
	Sign Sign
}

func (e *OverflowError) Error() string {
	if e.Sign == Negative {
		return "decimal: negative overflow"
	}

	return "decimal: positive overflow"
}
