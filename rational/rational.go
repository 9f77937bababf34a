// Package rational implements the exact fraction type used by TIFF
// RATIONAL and SRATIONAL fields.
package rational

import (
	"encoding/binary"
	"errors"
	"strconv"
)

var errShortBuf = errors.New("buffer too short")

// R is an exact fraction. The zero value is the degenerate 0/0, which is
// tolerated: TIFF files in the wild carry zero denominators and decoding
// must not panic on them.
type R struct {
	num int64
	den int64
}

// New returns the fraction num/den. A zero denominator is accepted.
func New(num, den int64) R {
	return R{num: num, den: den}
}

// Fraction returns the numerator and denominator exactly as stored.
func (r R) Fraction() (numerator, denominator int64) {
	return r.num, r.den
}

// Float returns the fraction as a float64. Division by zero follows IEEE
// semantics: 0/0 is NaN, n/0 is ±Inf.
func (r R) Float() float64 {
	return float64(r.num) / float64(r.den)
}

// Long returns the truncated integer quotient, or 0 when the denominator
// is zero.
func (r R) Long() int64 {
	if r.den == 0 {
		return 0
	}
	return r.num / r.den
}

// IsZeroDenominator reports whether the fraction is degenerate.
func (r R) IsZeroDenominator() bool { return r.den == 0 }

// Average returns the normalized average of a and b:
// (a.num*b.den + b.num*a.den) / (2*a.den*b.den), reduced by gcd.
// Used when a tag legally supplies a pair of values that must be merged
// into one field. Degenerate inputs yield the degenerate zero fraction.
func Average(a, b R) R {
	if a.den == 0 || b.den == 0 {
		return R{}
	}
	num := a.num*b.den + b.num*a.den
	den := 2 * a.den * b.den
	g := gcd(num, den)
	if g > 1 {
		num /= g
		den /= g
	}
	if den < 0 {
		num, den = -num, -den
	}
	return R{num: num, den: den}
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
	if a == 0 {
		return 1
	}
	return a
}

// DecodeUnsigned decodes a TIFF RATIONAL: two consecutive unsigned 32-bit
// integers, numerator first.
func DecodeUnsigned(order binary.ByteOrder, b []byte) (R, error) {
	if len(b) < 8 {
		return R{}, errShortBuf
	}
	return R{
		num: int64(order.Uint32(b)),
		den: int64(order.Uint32(b[4:])),
	}, nil
}

// DecodeSigned decodes a TIFF SRATIONAL: two consecutive signed 32-bit
// integers, numerator first.
func DecodeSigned(order binary.ByteOrder, b []byte) (R, error) {
	if len(b) < 8 {
		return R{}, errShortBuf
	}
	return R{
		num: int64(int32(order.Uint32(b))),
		den: int64(int32(order.Uint32(b[4:]))),
	}, nil
}

func (r R) String() string {
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}
