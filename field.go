package tiffdir

import (
	"fmt"
	"strings"

	"github.com/hmelik/tiffdir/rational"
)

// Field is one populated directory entry: the tag number, the declared
// type and count, and the decoded values.
type Field struct {
	Tag   uint16
	Type  Type
	Count uint32

	ints   []int64
	floats []float64
	rats   []rational.R
	str    string
	raw    []byte
}

// Int returns the ith integer value. It is valid for any of the TIFF
// integer types; BYTE, SHORT and LONG are already promoted to int64.
func (f Field) Int(i int) int64 { return f.ints[i] }

// Ints returns all integer values.
func (f Field) Ints() []int64 { return f.ints }

// Float returns the ith FLOAT or DOUBLE value.
func (f Field) Float(i int) float64 { return f.floats[i] }

// Floats returns all floating point values.
func (f Field) Floats() []float64 { return f.floats }

// Rat returns the ith RATIONAL or SRATIONAL value with the numerator and
// denominator preserved exactly as read.
func (f Field) Rat(i int) rational.R { return f.rats[i] }

// Rats returns all rational values.
func (f Field) Rats() []rational.R { return f.rats }

// ASCII returns the decoded string of an ASCII field.
func (f Field) ASCII() string { return f.str }

// Undefined returns the raw bytes of an UNDEFINED field.
func (f Field) Undefined() []byte { return f.raw }

// Value returns the decoded value. A single value is returned bare and
// arrays as slices; ASCII yields string, UNDEFINED yields []byte.
func (f Field) Value() any {
	switch {
	case f.Type == ASCII:
		return f.str
	case f.Type == UNDEFINED:
		return f.raw
	case f.Type.IsInteger():
		if f.Count == 1 {
			return f.ints[0]
		}
		return f.ints
	case f.Type.IsRational():
		if f.Count == 1 {
			return f.rats[0]
		}
		return f.rats
	case f.Type.IsFloat():
		if f.Count == 1 {
			return f.floats[0]
		}
		return f.floats
	}
	return nil
}

// anyRationals normalizes a field that may legally arrive as SHORT, LONG,
// RATIONAL or SRATIONAL into the canonical rational representation.
// Integers become n/1 fractions.
func (f Field) anyRationals() []rational.R {
	if f.Type.IsRational() {
		return f.rats
	}
	out := make([]rational.R, len(f.ints))
	for i, v := range f.ints {
		out[i] = rational.New(v, 1)
	}
	return out
}

func (f Field) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %s(%d):", f.Tag, f.Type.Name(), f.Count)
	switch {
	case f.Type == ASCII:
		fmt.Fprintf(&sb, " %q", f.str)
	case f.Type == UNDEFINED:
		fmt.Fprintf(&sb, " %X", f.raw)
	case f.Type.IsInteger():
		for _, v := range f.ints {
			fmt.Fprintf(&sb, " %d", v)
		}
	case f.Type.IsRational():
		for _, v := range f.rats {
			fmt.Fprintf(&sb, " %s", v)
		}
	case f.Type.IsFloat():
		for _, v := range f.floats {
			fmt.Fprintf(&sb, " %g", v)
		}
	}
	return sb.String()
}
