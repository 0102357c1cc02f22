package decimal

// Column is an ordered sequence of raw values sharing exactly one type
// descriptor for its lifetime.
type Column struct {
	typ  Type
	vals []Value
}

// NewColumn returns an empty column of type t.
func NewColumn(t Type) *Column {
	return &Column{typ: t}
}

// Type returns the column's descriptor.
func (c *Column) Type() Type {
	return c.typ
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	return len(c.vals)
}

// At returns the i-th raw value.
func (c *Column) At(i int) Value {
	return c.vals[i]
}

// Append adds a raw value to the column.
// It returns an error if v is not stored at the column's width.
func (c *Column) Append(v Value) error {
	if v.width != c.typ.width {
		return ErrInvalidType.New("value stored as %v cannot be appended to a %v column", v.width, c.typ)
	}
	c.vals = append(c.vals, v)
	return nil
}

// AppendBinary appends the column-wire representation of every value:
// a dense run of fixed-width little-endian integers. The descriptor is
// carried once per column, out of band.
func (c *Column) AppendBinary(dst []byte) []byte {
	for _, v := range c.vals {
		dst = v.AppendBinary(dst)
	}
	return dst
}

// DecodeColumn reads n fixed-width raw values of type t from b.
// It returns an error if b does not hold exactly n values.
func DecodeColumn(t Type, b []byte, n int) (*Column, error) {
	if len(b) != n*t.width.Bytes() {
		return nil, ErrParse.New("%v column of %d values needs %d bytes, have %d", t, n, n*t.width.Bytes(), len(b))
	}
	c := &Column{typ: t, vals: make([]Value, 0, n)}
	for i := 0; i < n; i++ {
		v, size, err := DecodeValue(t.width, b)
		if err != nil {
			return nil, err
		}
		c.vals = append(c.vals, v)
		b = b[size:]
	}
	return c, nil
}
