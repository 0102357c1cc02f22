package decimal

// pow10 is a cache of powers of 10 that fit in a uint64, where
// pow10[x] = 10^x. Larger multipliers, needed by the 128- and 256-bit
// widths, come from i256.Pow10.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// mulPow10Int64 calculates x * 10^shift and checks overflow.
// shift must be within the pow10 table.
func mulPow10Int64(x int64, shift int) (z int64, ok bool) {
	if shift == 0 {
		return x, true
	}
	m := int64(pow10[shift])
	if x > maxInt64/m || x < minInt64/m {
		return 0, false
	}
	return x * m, true
}

const (
	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63
	maxInt32 = 1<<31 - 1
	minInt32 = -1 << 31
)
