/*
Package decimal implements the fixed-point decimal type core of a
columnar analytical database: exact Decimal(P, S) values backed by a
signed integer of 32, 64, 128, or 256 bits.

# Representation

A decimal column type is described by a [Type] with three parameters:

  - Width: the bit-size of the backing integer.
  - Precision: the total number of significant decimal digits,
    at most 9, 18, 38, or 76 depending on the width.
  - Scale: the number of digits after the decimal point,
    between 0 and the precision.

A [Value] is the raw backing integer tagged with its width; the
semantic value is raw / 10^scale. Precision and scale are carried by
the column's type, once per column, never per value.

# Conversion policy

Every conversion in this package is exact or fails loudly:

  - Scaling a value up multiplies by a power of ten with checked
    arithmetic and fails with [ErrOverflow] rather than wrapping.
  - Scaling a value down divides with truncation toward zero and never
    rounds; any rounding must be an explicit, caller-chosen step before
    the conversion.
  - NaN and infinities are rejected with [ErrOverflow].

The central entry points are [Rescale] for decimal-to-decimal
conversion, [FromFloat64], [FromInt64], and friends for native-to-
decimal, [ToFloat64] and [ToInt64] for decimal-to-native, and
[ResultType] for the type of a mixed-width binary operation.

# Text

[ParseValue] and [FormatValue] convert between raw values and decimal
literals of the form [sign] digits ['.' digits]. [ReadText] reads the
same grammar from a streamed source, optionally stopping at a CSV field
terminator.

# Concurrency

Types and values are immutable after construction. Every function in
this package is a pure computation over its arguments and is safe for
concurrent use without synchronization.
*/
package decimal
