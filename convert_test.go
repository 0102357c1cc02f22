package decimal

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float64
			typ  Type
			want int64
		}{
			{0, MustType(Width32, 9, 2), 0},
			{1.5, MustType(Width32, 9, 2), 150},
			{-1.5, MustType(Width32, 9, 2), -150},
			{1.999, MustType(Width64, 18, 2), 199}, // truncated, not rounded
			{-1.999, MustType(Width64, 18, 2), -199},
			{0.125, MustType(Width64, 18, 3), 125},
			{12345.625, MustType(Width128, 38, 3), 12345625},
			{1e18, MustType(Width256, 76, 0), 1_000_000_000_000_000_000},
		}
		for _, tt := range tests {
			v, err := FromFloat64(tt.f, tt.typ)
			require.NoError(t, err, "FromFloat64(%v, %v)", tt.f, tt.typ)
			got, ok := v.Int64()
			require.True(t, ok)
			assert.Equal(t, tt.want, got, "FromFloat64(%v, %v)", tt.f, tt.typ)
			assert.Equal(t, tt.typ.Width(), v.Width())
		}
	})

	t.Run("special values", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			for _, typ := range []Type{
				MustType(Width32, 9, 0),
				MustType(Width64, 18, 4),
				MustType(Width128, 38, 10),
				MustType(Width256, 76, 0),
			} {
				_, err := FromFloat64(f, typ)
				require.Error(t, err, "FromFloat64(%v, %v)", f, typ)
				assert.True(t, ErrOverflow.Has(err), "FromFloat64(%v, %v) error %v", f, typ, err)
			}
		}
	})

	t.Run("range", func(t *testing.T) {
		tests := []struct {
			f   float64
			typ Type
			ok  bool
		}{
			{2147483647, MustType(Width32, 9, 0), false}, // at the exclusive edge
			{2147483646, MustType(Width32, 9, 0), true},
			{-2147483648, MustType(Width32, 9, 0), false},
			{1e18, MustType(Width64, 18, 0), true},
			{1e19, MustType(Width64, 18, 0), false},
			{1.7e38, MustType(Width128, 38, 0), true},  // just inside 2^127
			{1.8e38, MustType(Width128, 38, 0), false}, // beyond 2^127
			{0x1p127, MustType(Width128, 38, 0), false},
			{5.7e76, MustType(Width256, 76, 0), true},
			{5.8e76, MustType(Width256, 76, 0), false},
			{math.MaxFloat64, MustType(Width256, 76, 0), false},
		}
		for _, tt := range tests {
			_, err := FromFloat64(tt.f, tt.typ)
			if tt.ok {
				assert.NoError(t, err, "FromFloat64(%v, %v)", tt.f, tt.typ)
			} else {
				require.Error(t, err, "FromFloat64(%v, %v)", tt.f, tt.typ)
				assert.True(t, ErrOverflow.Has(err), "FromFloat64(%v, %v) error %v", tt.f, tt.typ, err)
			}
		}
	})
}

func TestFromInt64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    int64
			typ  Type
			want int64
		}{
			{0, MustType(Width32, 9, 2), 0},
			{5, MustType(Width32, 9, 2), 500},
			{-5, MustType(Width32, 9, 2), -500},
			{42, MustType(Width64, 18, 0), 42},
		}
		for _, tt := range tests {
			v, err := FromInt64(tt.x, tt.typ)
			require.NoError(t, err, "FromInt64(%v, %v)", tt.x, tt.typ)
			assert.Equal(t, tt.typ.Width(), v.Width())
			got, ok := v.Int64()
			require.True(t, ok)
			assert.Equal(t, tt.want, got, "FromInt64(%v, %v)", tt.x, tt.typ)
		}

		v, err := FromInt64(math.MaxInt64, MustType(Width128, 38, 10))
		require.NoError(t, err)
		assert.Equal(t, "92233720368547758070000000000", v.BigInt().String())
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := FromInt64(math.MaxInt64, MustType(Width32, 9, 0))
		require.Error(t, err)
		assert.True(t, ErrOverflow.Has(err))

		_, err = FromInt64(10_000_000_000, MustType(Width32, 9, 0))
		require.Error(t, err, "10^10 does not fit an int32")
		assert.True(t, ErrOverflow.Has(err), "error %v is not ErrOverflow", err)
	})
}

func TestFromUint64(t *testing.T) {
	typ := MustType(Width128, 38, 0)
	v, err := FromUint64(math.MaxUint64, typ)
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", v.BigInt().String())

	_, err = FromUint64(math.MaxUint64, MustType(Width64, 18, 0))
	require.Error(t, err, "MaxUint64 does not fit a 64-bit decimal")
	assert.True(t, ErrOverflow.Has(err))
}

func TestFromBigInt(t *testing.T) {
	x := new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)

	typ := MustType(Width256, 76, 10)
	v, err := FromBigInt(x, typ)
	require.NoError(t, err)
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(50), nil)
	assert.Zero(t, v.BigInt().Cmp(want))

	_, err = FromBigInt(x, MustType(Width64, 18, 0))
	require.Error(t, err)
	assert.True(t, ErrOverflow.Has(err))

	tooBig := new(big.Int).Lsh(big.NewInt(1), 300)
	_, err = FromBigInt(tooBig, typ)
	require.Error(t, err)
	assert.True(t, ErrOverflow.Has(err))
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		raw  int64
		typ  Type
		want float64
	}{
		{150, MustType(Width32, 9, 2), 1.5},
		{-150, MustType(Width32, 9, 2), -1.5},
		{12345, MustType(Width64, 18, 3), 12.345},
		{125, MustType(Width64, 18, 3), 0.125},
	}
	for _, tt := range tests {
		var v Value
		switch tt.typ.Width() {
		case Width32:
			v = ValueFromInt32(int32(tt.raw))
		default:
			v = ValueFromInt64(tt.raw)
		}
		got := ToFloat64(v, tt.typ)
		assert.InEpsilon(t, tt.want, got, 1e-12, "ToFloat64(%v, %v)", tt.raw, tt.typ)
	}
	assert.Zero(t, ToFloat64(ValueFromInt32(0), MustType(Width32, 9, 2)))
}

func TestToFloat64_Wide(t *testing.T) {
	typ := MustType(Width256, 76, 2)
	x := new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)
	v, err := ValueFromBigInt(Width256, x)
	require.NoError(t, err)
	got := ToFloat64(v, typ)
	assert.InEpsilon(t, 1e38, got, 1e-12)
}

func TestToInt64(t *testing.T) {
	tests := []struct {
		raw  int64
		typ  Type
		want int64
	}{
		{199, MustType(Width64, 18, 2), 1},
		{-199, MustType(Width64, 18, 2), -1},
		{12345, MustType(Width64, 18, 3), 12},
		{42, MustType(Width64, 18, 0), 42},
	}
	for _, tt := range tests {
		got, ok := ToInt64(ValueFromInt64(tt.raw), tt.typ)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "ToInt64(%v, %v)", tt.raw, tt.typ)
	}
}

func TestToInt64_Wide(t *testing.T) {
	typ := MustType(Width256, 76, 0)
	x := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)
	v, err := ValueFromBigInt(Width256, x)
	require.NoError(t, err)

	_, ok := ToInt64(v, typ)
	assert.False(t, ok, "10^30 must not fit an int64")

	got := ToBigInt(v, typ)
	assert.Zero(t, got.Cmp(x))
}

func TestToBigInt_Truncates(t *testing.T) {
	typ := MustType(Width128, 38, 3)
	v, err := FromFloat64(-12.345, typ)
	require.NoError(t, err)
	got := ToBigInt(v, typ)
	assert.Equal(t, "-12", got.String())
}
