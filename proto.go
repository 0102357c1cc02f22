package decimal

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/tabulardb/decimal/internal/i256"
)

// AppendProtobuf appends the protocol-buffer scalar representation of a
// raw value: a zigzag varint for the 32- and 64-bit widths, and a
// length-delimited little-endian two's-complement blob for the wide
// widths. Field tags and message framing are the caller's
// responsibility.
func AppendProtobuf(dst []byte, v Value) []byte {
	switch v.width {
	case Width32, Width64:
		return protowire.AppendVarint(dst, protowire.EncodeZigZag(v.mag.Int64()))
	default:
		return protowire.AppendBytes(dst, v.AppendBinary(nil))
	}
}

// ConsumeProtobuf parses one raw value of width w from the front of b
// and returns it together with the number of bytes consumed.
// It fails with [ErrParse] on malformed wire data and with
// [ErrOverflow] when a varint scalar does not fit the width.
func ConsumeProtobuf(b []byte, w Width) (Value, int, error) {
	switch w {
	case Width32, Width64:
		u, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return Value{}, 0, ErrParse.Wrap(protowire.ParseError(n))
		}
		x := protowire.DecodeZigZag(u)
		m := i256.FromInt64(x)
		if !fitsWidth(m, w) {
			return Value{}, 0, ErrOverflow.New("%v convert overflow", w)
		}
		return Value{width: w, mag: m}, n, nil
	default:
		raw, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return Value{}, 0, ErrParse.Wrap(protowire.ParseError(n))
		}
		if len(raw) != w.Bytes() {
			return Value{}, 0, ErrParse.New("%v value needs %d bytes, have %d", w, w.Bytes(), len(raw))
		}
		return Value{width: w, mag: i256.FromLE(raw)}, n, nil
	}
}
