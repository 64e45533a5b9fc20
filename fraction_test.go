package ajisai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Fraction_construct(t *testing.T) {
	half, err := NewFraction(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), half.Num())
	assert.Equal(t, int64(2), half.Den())

	same, err := NewFraction(1, 2)
	require.NoError(t, err)
	assert.Equal(t, same, half, "equal values share one representation")

	negA, err := NewFraction(2, -4)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), negA.Num(), "sign lives on the numerator")
	assert.Equal(t, int64(2), negA.Den())

	negB, err := NewFraction(-2, -4)
	require.NoError(t, err)
	assert.Equal(t, half, negB)

	whole, err := NewFraction(6, 3)
	require.NoError(t, err)
	assert.Equal(t, FromInt(2), whole, "whole results match FromInt")

	_, err = NewFraction(1, 0)
	assert.Equal(t, ErrDivisionByZero, err)

	var zero Fraction
	assert.True(t, zero.IsZero())
	assert.Equal(t, int64(0), zero.Num())
	assert.Equal(t, int64(1), zero.Den())
	assert.Equal(t, "0", zero.String())
}

func Test_Fraction_arith(t *testing.T) {
	frac := func(num, den int64) Fraction {
		f, err := NewFraction(num, den)
		require.NoError(t, err)
		return f
	}

	assert.Equal(t, frac(2, 3), frac(1, 3).Add(frac(1, 3)))
	assert.Equal(t, FromInt(1), frac(1, 3).Add(frac(2, 3)), "sums reduce to whole numbers")
	assert.Equal(t, frac(1, 6), frac(1, 2).Sub(frac(1, 3)))
	assert.Equal(t, frac(1, 2), frac(2, 3).Mul(frac(3, 4)))
	assert.Equal(t, frac(3, 10), frac(1, 10).Add(frac(1, 5)), "decimals stay exact")

	q, err := frac(1, 2).Div(frac(1, 4))
	require.NoError(t, err)
	assert.Equal(t, FromInt(2), q)

	_, err = FromInt(1).Div(Fraction{})
	assert.Equal(t, ErrDivisionByZero, err)

	assert.Equal(t, frac(-3, 2), frac(3, 2).Neg())
	assert.Equal(t, FromInt(5), FromInt(-5).Neg())
	assert.True(t, Fraction{}.Neg().IsZero())

	assert.Equal(t, FromInt(7), FromInt(7).Add(Fraction{}), "zero value is additive identity")
}

func Test_Fraction_compare(t *testing.T) {
	frac := func(num, den int64) Fraction {
		f, err := NewFraction(num, den)
		require.NoError(t, err)
		return f
	}

	assert.Equal(t, -1, frac(1, 3).Cmp(frac(1, 2)))
	assert.Equal(t, 1, frac(1, 2).Cmp(frac(1, 3)))
	assert.Equal(t, 0, frac(2, 4).Cmp(frac(1, 2)))
	assert.Equal(t, -1, frac(-1, 2).Cmp(frac(-1, 3)), "negatives order away from zero")
	assert.Equal(t, 0, Fraction{}.Cmp(FromInt(0)))
}

func Test_Fraction_Int(t *testing.T) {
	n, ok := FromInt(42).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	f, err := NewFraction(3, 2)
	require.NoError(t, err)
	_, ok = f.Int()
	assert.False(t, ok)

	n, ok = Fraction{}.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(0), n)
}

func Test_Fraction_String(t *testing.T) {
	for _, tc := range []struct {
		f    Fraction
		want string
	}{
		{FromInt(3), "3"},
		{FromInt(-3), "-3"},
		{makeFrac(3, 2), "3/2"},
		{makeFrac(-3, 2), "-3/2"},
		{makeFrac(10, 4), "5/2"},
		{Fraction{}, "0"},
	} {
		assert.Equal(t, tc.want, tc.f.String())
	}
}
