package decimal

import "github.com/zeebo/errs"

// The decimal core reports exactly three kinds of failures.
// Every error returned by this package belongs to one of the classes
// below; use Class.Has to classify an error.
var (
	// ErrInvalidType reports a malformed (precision, scale, width)
	// combination at descriptor construction.
	ErrInvalidType = errs.Class("invalid decimal type")

	// ErrOverflow reports a conversion whose result would exceed the
	// destination's representable range, or a NaN/infinite float source.
	// Overflow is never clamped or wrapped.
	ErrOverflow = errs.Class("decimal overflow")

	// ErrParse reports a literal that fails the decimal grammar or
	// needs more significant digits than the declared precision.
	ErrParse = errs.Class("cannot parse decimal")
)
