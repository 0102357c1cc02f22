package decimal

import "fmt"

// FamilyName is the common name of every decimal type regardless of
// width, precision, or scale.
const FamilyName = "Decimal"

// Type describes a decimal column type: a precision, a scale, and the
// width of the backing integer. Implements Decimal(P, S), where P is
// precision and S is scale.
//
// A Type is an immutable value: it is created once at schema resolution
// time, compared by value, and may be shared by any number of readers
// without synchronization.
type Type struct {
	width     Width
	precision int
	scale     int
}

// NewType validates and returns a decimal type descriptor.
//
// NewType returns an error if:
//   - precision is 0;
//   - precision exceeds the width's maximum (9, 18, 38, or 76);
//   - scale is negative or greater than precision.
func NewType(width Width, precision, scale int) (Type, error) {
	switch {
	case precision == 0:
		return Type{}, ErrInvalidType.New("%s(%d, %d): precision must not be zero", FamilyName, precision, scale)
	case precision < 0 || precision > width.MaxPrecision():
		return Type{}, ErrInvalidType.New("%s(%d, %d): precision %d is out of range [1, %d] for %v", FamilyName, precision, scale, precision, width.MaxPrecision(), width)
	case scale < 0 || scale > precision:
		return Type{}, ErrInvalidType.New("%s(%d, %d): scale %d is out of range [0, %d]", FamilyName, precision, scale, scale, precision)
	}
	return Type{width: width, precision: precision, scale: scale}, nil
}

// Width returns the bit-width of the backing integer.
func (t Type) Width() Width {
	return t.width
}

// Precision returns the total number of significant decimal digits.
func (t Type) Precision() int {
	return t.precision
}

// Scale returns the number of digits after the decimal point.
func (t Type) Scale() int {
	return t.scale
}

// Name returns the canonical type name, e.g. "Decimal(18, 4)".
// The name doubles as the schema-equality key: two decimal types with
// the same name and width are interchangeable.
func (t Type) Name() string {
	return fmt.Sprintf("%s(%d, %d)", FamilyName, t.precision, t.scale)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (t Type) String() string {
	return t.Name()
}

// TypeID identifies the storage variant of a decimal type for fast
// dispatch without re-deriving equality.
type TypeID uint8

const (
	TypeDecimal32 TypeID = iota + 1
	TypeDecimal64
	TypeDecimal128
	TypeDecimal256
)

// TypeID returns the width-tagged identifier of t.
func (t Type) TypeID() TypeID {
	return TypeDecimal32 + TypeID(t.width)
}

// Equal reports whether t and o describe the same type.
// Two descriptors are equal iff width, precision, and scale all match;
// differing scale or width compares unequal even with equal precision.
func (t Type) Equal(o Type) bool {
	return t == o
}

// CanBePromoted reports whether t has a promotion rule.
// It is always true for the decimal family.
func (t Type) CanBePromoted() bool {
	return true
}

// Promote widens t to the next larger storage width, preserving scale.
// The precision becomes the wider width's maximum, giving headroom
// before operations likely to overflow the current width.
//
// Promote returns an error if t is already 256 bits wide.
func (t Type) Promote() (Type, error) {
	w, ok := t.width.wider()
	if !ok {
		return Type{}, ErrInvalidType.New("%v cannot be promoted: no wider storage", t)
	}
	return NewType(w, w.MaxPrecision(), t.scale)
}

// ScaleOf returns the scale of t.
// It exists for callers that dispatch on type descriptors generically.
func ScaleOf(t Type) int {
	return t.scale
}

// PrecisionOf returns the precision of t.
func PrecisionOf(t Type) int {
	return t.precision
}
