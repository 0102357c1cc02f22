package decimal

// ResultType computes the descriptor of the result of a binary
// operation over two decimal operands.
//
// The result precision is one of the buckets 9, 18, 38, or 76 — the
// maximum precision of the wider operand width — and the result scale
// is the larger of the two operand scales. The result never narrows
// width and always keeps at least the larger operand's fractional
// resolution.
func ResultType(a, b Type) Type {
	w := a.width
	if b.width > w {
		w = b.width
	}
	s := a.scale
	if b.scale > s {
		s = b.scale
	}
	return Type{width: w, precision: w.MaxPrecision(), scale: s}
}
