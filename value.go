package decimal

import (
	"math/big"

	"github.com/tabulardb/decimal/internal/i256"
)

// Value is a raw decimal value: a signed integer tagged with the width
// it is stored at. The semantic value is raw / 10^scale, where the
// scale is carried by the column's [Type], not by the value itself.
//
// The integer is held sign-extended in a 256-bit accumulator and is
// guaranteed to fit the tagged width.
type Value struct {
	width Width
	mag   i256.Int
}

// newValue tags m with width w, range-checking m against w.
func newValue(w Width, m i256.Int) (Value, error) {
	if !fitsWidth(m, w) {
		return Value{}, ErrOverflow.New("value %v is out of %v range", m, w)
	}
	return Value{width: w, mag: m}, nil
}

func fitsWidth(m i256.Int, w Width) bool {
	switch w {
	case Width32:
		return m.FitsInt32()
	case Width64:
		return m.FitsInt64()
	case Width128:
		return m.FitsInt128()
	default:
		return true
	}
}

// ValueFromInt32 returns x as a raw value at Width32.
func ValueFromInt32(x int32) Value {
	return Value{width: Width32, mag: i256.FromInt64(int64(x))}
}

// ValueFromInt64 returns x as a raw value at Width64.
func ValueFromInt64(x int64) Value {
	return Value{width: Width64, mag: i256.FromInt64(x)}
}

// ValueFromBigInt returns b as a raw value at width w.
// It returns an error if b does not fit w.
func ValueFromBigInt(w Width, b *big.Int) (Value, error) {
	m, ok := i256.FromBig(b)
	if !ok {
		return Value{}, ErrOverflow.New("value %v is out of %v range", b, w)
	}
	return newValue(w, m)
}

// Width returns the storage width the value is tagged with.
func (v Value) Width() Width {
	return v.width
}

// Sign returns -1, 0, or +1 depending on the sign of the raw integer.
func (v Value) Sign() int {
	return v.mag.Sign()
}

// IsZero returns true if the raw integer is 0.
func (v Value) IsZero() bool {
	return v.mag.IsZero()
}

// Int32 returns the raw integer as an int32.
// It reports false if the value does not fit, which can only happen for
// values tagged with a wider width.
func (v Value) Int32() (int32, bool) {
	if !v.mag.FitsInt32() {
		return 0, false
	}
	return int32(v.mag.Int64()), true
}

// Int64 returns the raw integer as an int64.
// It reports false if the value does not fit.
func (v Value) Int64() (int64, bool) {
	if !v.mag.FitsInt64() {
		return 0, false
	}
	return v.mag.Int64(), true
}

// BigInt returns the raw integer as a new *big.Int.
func (v Value) BigInt() *big.Int {
	return v.mag.Big(new(big.Int))
}

// String returns the raw integer in decimal notation, without applying
// any scale. Use [FormatValue] to render the semantic value.
func (v Value) String() string {
	return v.mag.String()
}

// AppendBinary appends the column-wire representation of v: the raw
// integer as a fixed-width little-endian two's-complement of exactly
// v.Width().Bytes() bytes. Precision and scale are carried once per
// column and must be supplied out of band when decoding.
func (v Value) AppendBinary(dst []byte) []byte {
	return v.mag.AppendLE(dst, v.width.Bytes())
}

// DecodeValue reads one fixed-width raw value from the front of b and
// returns it together with the number of bytes consumed.
// It returns an error if b is shorter than the width requires.
func DecodeValue(w Width, b []byte) (Value, int, error) {
	n := w.Bytes()
	if len(b) < n {
		return Value{}, 0, ErrParse.New("%v value needs %d bytes, have %d", w, n, len(b))
	}
	return Value{width: w, mag: i256.FromLE(b[:n])}, n, nil
}
