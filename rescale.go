package decimal

import "github.com/tabulardb/decimal/internal/i256"

// Rescale converts a raw value from one decimal type to another,
// possibly changing both scale and width. It is the single source of
// truth for overflow and truncation in this package.
//
// When the destination scale is larger, the value is multiplied by the
// corresponding power of ten using checked arithmetic; overflow of the
// destination width fails with [ErrOverflow]. When the destination
// scale is smaller or equal, the value is divided with truncation
// toward zero — the fractional remainder is discarded, never rounded.
// Any rounding must be performed by the caller before invoking Rescale.
//
// Rescale returns an error if v is not tagged with from's width.
func Rescale(v Value, from, to Type) (Value, error) {
	if v.width != from.width {
		return Value{}, ErrInvalidType.New("value stored as %v cannot be read as %v", v.width, from.width)
	}
	if from.width <= Width64 && to.width <= Width64 {
		return rescaleFast(v, from, to)
	}
	return rescaleSlow(v, from, to)
}

// rescaleFast handles pairs of native widths with int64 arithmetic.
// Scales at these widths never exceed 18, so every multiplier fits in
// the pow10 table.
func rescaleFast(v Value, from, to Type) (Value, error) {
	x := v.mag.Int64()

	if to.scale > from.scale {
		z, ok := mulPow10Int64(x, to.scale-from.scale)
		if !ok {
			return Value{}, ErrOverflow.New("%v convert overflow", to)
		}
		x = z
	} else {
		x = x / int64(pow10[from.scale-to.scale])
	}

	if to.width == Width32 && (x < minInt32 || x > maxInt32) {
		return Value{}, ErrOverflow.New("%v convert overflow", to)
	}
	return Value{width: to.width, mag: i256.FromInt64(x)}, nil
}

// rescaleSlow handles the 128- and 256-bit widths through a pooled
// big.Int accumulator.
func rescaleSlow(v Value, from, to Type) (Value, error) {
	b := i256.GetBig()
	defer i256.PutBig(b)
	v.mag.Big(b)

	if to.scale > from.scale {
		b.Mul(b, i256.Pow10(to.scale-from.scale))
	} else {
		b.Quo(b, i256.Pow10(from.scale-to.scale)) // big.Quo truncates toward zero
	}

	m, ok := i256.FromBig(b)
	if !ok || !fitsWidth(m, to.width) {
		return Value{}, ErrOverflow.New("%v convert overflow", to)
	}
	return Value{width: to.width, mag: m}, nil
}
