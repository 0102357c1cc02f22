// Package i256 implements fixed-width 256-bit signed integers in two's
// complement, wide enough to hold the raw value of any decimal width.
//
// The layout follows the classic hi/lo limb representation: four 64-bit
// limbs in little-endian order. Values narrower than 256 bits are stored
// sign-extended. Arithmetic that can exceed 64 bits is routed through
// math/big; Int itself only provides representation, comparison, and
// range classification.
package i256

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"
	"sync"
)

// Int is a signed 256-bit integer in two's complement.
// The zero value is ready to use and equal to 0.
type Int struct {
	l [4]uint64 // little-endian limbs
}

// FromInt64 returns x sign-extended to 256 bits.
func FromInt64(x int64) Int {
	s := uint64(x >> 63)
	return Int{l: [4]uint64{uint64(x), s, s, s}}
}

// FromUint64 returns x zero-extended to 256 bits.
func FromUint64(x uint64) Int {
	return Int{l: [4]uint64{x, 0, 0, 0}}
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.l[3]>>63 == 1
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.l == [4]uint64{}
}

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x Int) Sign() int {
	switch {
	case x.IsNeg():
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// Neg returns -x. Negating the minimum value wraps around, as in any
// two's-complement arithmetic; callers only negate values whose magnitude
// is representable.
func (x Int) Neg() Int {
	var z Int
	c := uint64(1)
	for i := 0; i < 4; i++ {
		z.l[i], c = bits.Add64(^x.l[i], 0, c)
	}
	return z
}

// Cmp compares x and y and returns -1, 0, or +1.
func (x Int) Cmp(y Int) int {
	xn, yn := x.IsNeg(), y.IsNeg()
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}
	for i := 3; i >= 0; i-- {
		switch {
		case x.l[i] < y.l[i]:
			return -1
		case x.l[i] > y.l[i]:
			return 1
		}
	}
	return 0
}

// FitsInt32 returns true if x is within [math.MinInt32, math.MaxInt32].
func (x Int) FitsInt32() bool {
	if !x.FitsInt64() {
		return false
	}
	v := int64(x.l[0])
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// FitsInt64 returns true if x is within [math.MinInt64, math.MaxInt64].
func (x Int) FitsInt64() bool {
	ext := uint64(int64(x.l[0]) >> 63)
	return x.l[1] == ext && x.l[2] == ext && x.l[3] == ext
}

// FitsInt128 returns true if x is within the signed 128-bit range.
func (x Int) FitsInt128() bool {
	ext := uint64(int64(x.l[1]) >> 63)
	return x.l[2] == ext && x.l[3] == ext
}

// Int64 returns the low 64 bits of x as a signed integer.
// The result is meaningful only if x.FitsInt64() is true.
func (x Int) Int64() int64 {
	return int64(x.l[0])
}

// Big sets z to the value of x and returns z.
func (x Int) Big(z *big.Int) *big.Int {
	m := x
	neg := x.IsNeg()
	if neg {
		m = x.Neg()
	}
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[0:8], m.l[3])
	binary.BigEndian.PutUint64(buf[8:16], m.l[2])
	binary.BigEndian.PutUint64(buf[16:24], m.l[1])
	binary.BigEndian.PutUint64(buf[24:32], m.l[0])
	z.SetBytes(buf[:])
	if neg {
		z.Neg(z)
	}
	return z
}

// FromBig converts b to an Int.
// It reports false if b is outside the signed 256-bit range.
func FromBig(b *big.Int) (Int, bool) {
	if b.Cmp(minInt256) < 0 || b.Cmp(maxInt256) > 0 {
		return Int{}, false
	}
	var buf [32]byte
	abs := GetBig()
	defer PutBig(abs)
	abs.Abs(b)
	abs.FillBytes(buf[:])
	z := Int{l: [4]uint64{
		binary.BigEndian.Uint64(buf[24:32]),
		binary.BigEndian.Uint64(buf[16:24]),
		binary.BigEndian.Uint64(buf[8:16]),
		binary.BigEndian.Uint64(buf[0:8]),
	}}
	if b.Sign() < 0 {
		z = z.Neg()
	}
	return z, true
}

// AppendLE appends the low size bytes of x in little-endian order.
// size must be 4, 8, 16, or 32; the value is assumed to fit, higher
// bytes are dropped.
func (x Int) AppendLE(dst []byte, size int) []byte {
	for i := 0; i < size; i++ {
		dst = append(dst, byte(x.l[i/8]>>(8*(i%8))))
	}
	return dst
}

// FromLE reads a little-endian two's-complement integer of len(b) bytes
// and sign-extends it to 256 bits. len(b) must be 4, 8, 16, or 32.
func FromLE(b []byte) Int {
	var z Int
	for i, c := range b {
		z.l[i/8] |= uint64(c) << (8 * (i % 8))
	}
	if b[len(b)-1]>>7 == 1 {
		for i := len(b); i < 32; i++ {
			z.l[i/8] |= 0xff << (8 * (i % 8))
		}
	}
	return z
}

// String returns the decimal representation of x.
func (x Int) String() string {
	b := GetBig()
	defer PutBig(b)
	return x.Big(b).String()
}

// MaxPow10 is the largest supported power of ten, 10^76.
// It is also the smallest power of ten exceeding every representable
// decimal magnitude.
const MaxPow10 = 76

var pow10 [MaxPow10 + 1]*big.Int

var (
	minInt256 *big.Int // -2^255
	maxInt256 *big.Int // 2^255 - 1
)

func init() {
	ten := big.NewInt(10)
	pow10[0] = big.NewInt(1)
	for i := 1; i <= MaxPow10; i++ {
		pow10[i] = new(big.Int).Mul(pow10[i-1], ten)
	}
	maxInt256 = new(big.Int).Lsh(big.NewInt(1), 255)
	minInt256 = new(big.Int).Neg(maxInt256)
	maxInt256.Sub(maxInt256, big.NewInt(1))
	for i := range small {
		small[i] = big.NewInt(int64(i))
	}
}

// Pow10 returns 10^k as a shared *big.Int.
// The result is read-only and must not be modified.
// Pow10 panics if k is negative or greater than [MaxPow10].
func Pow10(k int) *big.Int {
	return pow10[k]
}

// Wide is an unsigned magnitude accumulator backed by a pooled big.Int,
// used when a decimal literal outgrows a uint64 coefficient. Callers
// bound the number of accumulated digits; Wide performs no overflow
// checks of its own.
type Wide struct {
	b *big.Int
}

// NewWide returns an accumulator seeded with x.
// Release must be called when the accumulator is no longer needed.
func NewWide(x uint64) *Wide {
	w := &Wide{b: GetBig()}
	w.b.SetUint64(x)
	return w
}

// PushDigit appends one decimal digit: w = w*10 + d.
func (w *Wide) PushDigit(d byte) {
	w.b.Mul(w.b, pow10[1])
	w.b.Add(w.b, small[d])
}

// Shift multiplies the accumulator by 10^k.
func (w *Wide) Shift(k int) {
	w.b.Mul(w.b, pow10[k])
}

// Int converts the accumulated magnitude to an Int.
// It reports false if the magnitude is not below 10^precision.
func (w *Wide) Int(precision int) (Int, bool) {
	if w.b.Cmp(pow10[precision]) >= 0 {
		return Int{}, false
	}
	z, _ := FromBig(w.b) // below 10^76 always fits
	return z, true
}

// Release returns the backing big.Int to the pool.
func (w *Wide) Release() {
	PutBig(w.b)
	w.b = nil
}

// small caches the ten digit values as big.Ints for PushDigit.
var small [10]*big.Int

var pool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// GetBig obtains a scratch *big.Int from the pool.
func GetBig() *big.Int {
	return pool.Get().(*big.Int)
}

// PutBig returns a scratch *big.Int to the pool.
func PutBig(b *big.Int) {
	pool.Put(b)
}
