package decimal

import "fmt"

// MustType is like [NewType] but panics if the descriptor is invalid.
// It simplifies safe initialization of global variables holding types.
func MustType(width Width, precision, scale int) Type {
	t, err := NewType(width, precision, scale)
	if err != nil {
		panic(fmt.Sprintf("MustType(%v, %v, %v) failed: %v", width, precision, scale, err))
	}
	return t
}

// MustParse is like [ParseValue] but panics if the literal cannot be
// parsed.
func MustParse(t Type, s string) Value {
	v, err := ParseValue(t, s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%v, %q) failed: %v", t, s, err))
	}
	return v
}
