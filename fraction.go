package ajisai

import "fmt"

// Fraction is an exact rational number: an int64 numerator over a positive
// int64 denominator, always kept in lowest terms. The zero Fraction is 0.
type Fraction struct {
	num int64
	den int64 // 0 reads as 1 so that the zero value is usable
}

// FromInt builds the fraction n/1.
func FromInt(n int64) Fraction { return Fraction{num: n} }

// NewFraction builds num/den in lowest terms, failing on a zero
// denominator.
func NewFraction(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return makeFrac(num, den), nil
}

func makeFrac(num, den int64) Fraction {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Fraction{}
	}
	if g := gcd(num, den); g > 1 {
		num, den = num/g, den/g
	}
	if den == 1 {
		den = 0 // canonical whole-number form, same as FromInt
	}
	return Fraction{num: num, den: den}
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Num returns the numerator, which carries the sign.
func (f Fraction) Num() int64 { return f.num }

// Den returns the denominator, always positive.
func (f Fraction) Den() int64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	return makeFrac(f.num*g.Den()+g.num*f.Den(), f.Den()*g.Den())
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	return makeFrac(f.num*g.Den()-g.num*f.Den(), f.Den()*g.Den())
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	return makeFrac(f.num*g.num, f.Den()*g.Den())
}

// Div returns f / g, failing when g is zero.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return makeFrac(f.num*g.Den(), f.Den()*g.num), nil
}

// Neg returns -f.
func (f Fraction) Neg() Fraction { return Fraction{num: -f.num, den: f.den} }

// Cmp compares f against g by cross multiplication, returning -1, 0, or 1.
func (f Fraction) Cmp(g Fraction) int {
	l, r := f.num*g.Den(), g.num*f.Den()
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// IsZero reports whether f is 0.
func (f Fraction) IsZero() bool { return f.num == 0 }

// Int returns the numerator and true when f is a whole number.
func (f Fraction) Int() (int64, bool) {
	if f.Den() != 1 {
		return 0, false
	}
	return f.num, true
}

func (f Fraction) String() string {
	if f.Den() == 1 {
		return fmt.Sprintf("%v", f.num)
	}
	return fmt.Sprintf("%v/%v", f.num, f.Den())
}
