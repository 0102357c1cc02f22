package decimal

import (
	"io"
	"strconv"
	"strings"

	"github.com/tabulardb/decimal/internal/i256"
)

// ParseValue converts literal text to a raw value at type t.
// The input must be fully consumed by the literal:
//
//	[sign] digits ['.' digits]
//
// ParseValue fails with [ErrParse] on a malformed literal or when the
// literal needs more significant digits than t's precision allows.
// Fractional digits beyond t's scale are truncated toward zero, never
// rounded; a missing fraction is zero-padded to the scale.
func ParseValue(t Type, s string) (Value, error) {
	return readText(t, strings.NewReader(s), false)
}

// ReadText reads a decimal literal directly from a streamed source.
// In CSV mode, parsing stops at a field terminator (',', '\t', '\r',
// '\n') or end-of-input instead of requiring full consumption; the
// terminator is unread. Validation is the same as [ParseValue].
func ReadText(t Type, r io.ByteScanner, csv bool) (Value, error) {
	return readText(t, r, csv)
}

// TryReadText is a non-erroring probe variant of [ReadText] for callers
// that want to attempt-and-fallback cheaply. On failure the reader
// position is left unresolved.
func TryReadText(t Type, r io.ByteScanner) (Value, bool) {
	v, err := readText(t, r, false)
	return v, err == nil
}

func isCSVDelimiter(c byte) bool {
	return c == ',' || c == '\t' || c == '\r' || c == '\n'
}

func readText(t Type, r io.ByteScanner, csv bool) (Value, error) {
	var (
		neg      bool
		coef     uint64
		wide     *i256.Wide
		intDigs  int
		fracDigs int
		hasDigit bool
		sawPoint bool
	)

	// Sign
	c, err := r.ReadByte()
	switch {
	case err == io.EOF:
		return Value{}, ErrParse.New("unexpected end of %s literal", FamilyName)
	case err != nil:
		return Value{}, ErrParse.Wrap(err)
	case c == '-':
		neg = true
	case c == '+':
		// skip
	default:
		if err := r.UnreadByte(); err != nil {
			return Value{}, ErrParse.Wrap(err)
		}
	}

	// The digit counters bound the accumulated magnitude, so the wide
	// accumulator never needs its own overflow checks.
	accumulate := func(d byte) {
		if wide == nil {
			if coef <= (maxUint64-uint64(d))/10 {
				coef = coef*10 + uint64(d)
				return
			}
			wide = i256.NewWide(coef)
		}
		wide.PushDigit(d)
	}
	defer func() {
		if wide != nil {
			wide.Release()
		}
	}()

	// Digits
scan:
	for {
		c, err := r.ReadByte()
		switch {
		case err == io.EOF:
			break scan
		case err != nil:
			return Value{}, ErrParse.Wrap(err)
		}
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
			switch {
			case !sawPoint:
				if c == '0' && intDigs == 0 {
					continue // leading zero, not significant
				}
				intDigs++
				if intDigs > t.precision {
					return Value{}, ErrParse.New("too many digits for %v", t)
				}
				accumulate(c - '0')
			case fracDigs < t.scale:
				fracDigs++
				accumulate(c - '0')
			default:
				// Excess fractional digit: truncated toward zero.
			}
		case c == '.' && !sawPoint:
			sawPoint = true
		default:
			if csv && isCSVDelimiter(c) {
				if err := r.UnreadByte(); err != nil {
					return Value{}, ErrParse.Wrap(err)
				}
				break scan
			}
			return Value{}, ErrParse.New("invalid character %q in %s literal", c, FamilyName)
		}
	}

	if !hasDigit {
		return Value{}, ErrParse.New("no digits in %s literal", FamilyName)
	}

	// Zero-pad the fraction up to the declared scale.
	if shift := t.scale - fracDigs; shift > 0 {
		if wide == nil && shift < len(pow10) && coef <= (maxUint64/pow10[shift]) {
			coef *= pow10[shift]
		} else {
			if wide == nil {
				wide = i256.NewWide(coef)
			}
			wide.Shift(shift)
		}
	}

	// A value of Decimal(P, S) must stay below 10^P in magnitude.
	var m i256.Int
	if wide == nil {
		if t.precision < len(pow10) && coef >= pow10[t.precision] {
			return Value{}, ErrParse.New("too many digits for %v", t)
		}
		m = i256.FromUint64(coef)
	} else {
		var ok bool
		m, ok = wide.Int(t.precision)
		if !ok {
			return Value{}, ErrParse.New("too many digits for %v", t)
		}
	}
	if neg {
		m = m.Neg()
	}
	return Value{width: t.width, mag: m}, nil
}

// AppendText appends the canonical literal of a raw value at type t:
// exactly t's scale digits after the decimal point, zero-padded, with
// the point omitted entirely when the scale is 0. The output parses
// back to the identical raw value at the same type.
func AppendText(dst []byte, v Value, t Type) []byte {
	var digits string
	if v.width <= Width64 {
		x := v.mag.Int64()
		u := uint64(x)
		if x < 0 {
			u = -u
		}
		digits = strconv.FormatUint(u, 10)
	} else {
		b := i256.GetBig()
		v.mag.Big(b)
		digits = b.Abs(b).String()
		i256.PutBig(b)
	}

	if v.Sign() < 0 {
		dst = append(dst, '-')
	}
	if t.scale == 0 {
		return append(dst, digits...)
	}
	if len(digits) <= t.scale {
		dst = append(dst, '0', '.')
		for i := len(digits); i < t.scale; i++ {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	}
	dst = append(dst, digits[:len(digits)-t.scale]...)
	dst = append(dst, '.')
	return append(dst, digits[len(digits)-t.scale:]...)
}

// FormatValue returns the canonical literal of a raw value at type t.
// Also see [AppendText].
func FormatValue(v Value, t Type) string {
	return string(AppendText(nil, v, t))
}

const maxUint64 = 1<<64 - 1
