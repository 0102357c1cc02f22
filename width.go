package decimal

// Width is the bit-size of the integer backing a decimal value.
// It is a closed set: every descriptor and raw value carries exactly
// one of the four widths.
type Width uint8

const (
	Width32 Width = iota
	Width64
	Width128
	Width256
)

// Bits returns the number of bits in the backing integer.
func (w Width) Bits() int {
	return 32 << w
}

// Bytes returns the number of bytes in the backing integer.
func (w Width) Bytes() int {
	return 4 << w
}

// MaxPrecision returns the largest decimal precision representable at
// width w: 9, 18, 38, or 76.
func (w Width) MaxPrecision() int {
	switch w {
	case Width32:
		return 9
	case Width64:
		return 18
	case Width128:
		return 38
	default:
		return 76
	}
}

// String returns the name of the storage variant, e.g. "Decimal64".
func (w Width) String() string {
	switch w {
	case Width32:
		return "Decimal32"
	case Width64:
		return "Decimal64"
	case Width128:
		return "Decimal128"
	default:
		return "Decimal256"
	}
}

// wider returns the next larger width.
// It reports false at Width256, which has no wider storage.
func (w Width) wider() (Width, bool) {
	if w == Width256 {
		return w, false
	}
	return w + 1, true
}
