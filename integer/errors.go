package integer

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("integer")

var (
	ErrEmpty = Error.New("empty data")
	ErrRange = Error.New("value out of range")
)
