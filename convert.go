package decimal

import (
	"math"
	"math/big"

	"github.com/tabulardb/decimal/internal/i256"
)

// Float images of the native range edges. Ordinary comparisons against
// numeric_limits-style constants cannot represent the wide edges
// exactly, so the checks below use exact powers of two: the nearest
// float64 at or beyond each boundary. Values at or beyond the image are
// rejected (exclusive bounds).
const (
	floatBound64  = 0x1p63  // 9.223372036854776e+18
	floatBound128 = 0x1p127 // 1.7014118346046923e+38
	floatBound256 = 0x1p255 // 5.789604461865810e+76
)

// ToFloat64 converts a raw value at type t to the nearest float64:
// raw / 10^scale computed at the best available precision.
// There is no error path in this direction.
func ToFloat64(v Value, t Type) float64 {
	if v.width <= Width64 {
		return float64(v.mag.Int64()) / float64(pow10[t.scale])
	}
	b := i256.GetBig()
	defer i256.PutBig(b)
	f, _ := new(big.Float).SetInt(v.mag.Big(b)).Float64()
	m, _ := new(big.Float).SetInt(i256.Pow10(t.scale)).Float64()
	return f / m
}

// ToInt64 converts a raw value at type t to an integer, truncating the
// fractional part toward zero. It reports false only when the integer
// part of a wide value does not fit an int64; a value converted to the
// matching native width always fits.
func ToInt64(v Value, t Type) (int64, bool) {
	if v.width <= Width64 {
		return v.mag.Int64() / int64(pow10[t.scale]), true
	}
	b := i256.GetBig()
	defer i256.PutBig(b)
	v.mag.Big(b)
	b.Quo(b, i256.Pow10(t.scale))
	m, _ := i256.FromBig(b)
	if !m.FitsInt64() {
		return 0, false
	}
	return m.Int64(), true
}

// ToBigInt converts a raw value at type t to its integer part,
// truncated toward zero, as a new *big.Int.
func ToBigInt(v Value, t Type) *big.Int {
	z := v.BigInt()
	return z.Quo(z, i256.Pow10(t.scale))
}

// FromFloat64 converts a float to a raw value at type t.
//
// It fails with [ErrOverflow] if f is NaN or infinite, or if
// f * 10^scale falls at or beyond the edge of t's native range.
// The scaled value is truncated toward zero, never rounded.
func FromFloat64(f float64, t Type) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, ErrOverflow.New("%v convert overflow: cannot convert infinity or NaN to decimal", t)
	}

	out := f * scaleMultiplierFloat(t.scale)

	var lo, hi float64
	switch t.width {
	case Width32:
		lo, hi = math.MinInt32, math.MaxInt32 // exact in float64
	case Width64:
		lo, hi = -floatBound64, floatBound64
	case Width128:
		lo, hi = -floatBound128, floatBound128
	default:
		lo, hi = -floatBound256, floatBound256
	}
	if out <= lo || out >= hi {
		return Value{}, ErrOverflow.New("%v convert overflow: float is out of decimal range", t)
	}

	if t.width <= Width64 {
		return Value{width: t.width, mag: i256.FromInt64(int64(out))}, nil
	}
	z, _ := new(big.Float).SetFloat64(out).Int(nil) // truncates toward zero
	m, _ := i256.FromBig(z)
	return Value{width: t.width, mag: m}, nil
}

// scaleMultiplierFloat returns the float64 image of 10^scale.
func scaleMultiplierFloat(scale int) float64 {
	if scale < len(pow10) {
		return float64(pow10[scale])
	}
	f, _ := new(big.Float).SetInt(i256.Pow10(scale)).Float64()
	return f
}

// FromInt64 converts a native integer to a raw value at type t.
// The source is treated as a decimal with scale 0 at Width64 and handed
// to [Rescale], reusing the single overflow/truncation source of truth.
func FromInt64(x int64, t Type) (Value, error) {
	from := Type{width: Width64, precision: Width64.MaxPrecision(), scale: 0}
	return Rescale(ValueFromInt64(x), from, t)
}

// FromUint64 converts an unsigned integer to a raw value at type t.
// The source is staged at Width128, the smallest width that holds every
// uint64 losslessly.
func FromUint64(x uint64, t Type) (Value, error) {
	from := Type{width: Width128, precision: Width128.MaxPrecision(), scale: 0}
	v := Value{width: Width128, mag: i256.FromUint64(x)}
	return Rescale(v, from, t)
}

// FromBigInt converts an oversized integer to a raw value at type t,
// staging it at Width256. It fails with [ErrOverflow] if x exceeds the
// 256-bit range.
func FromBigInt(x *big.Int, t Type) (Value, error) {
	v, err := ValueFromBigInt(Width256, x)
	if err != nil {
		return Value{}, err
	}
	from := Type{width: Width256, precision: Width256.MaxPrecision(), scale: 0}
	return Rescale(v, from, t)
}
