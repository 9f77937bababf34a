// Package tiffdir parses the TIFF Image File Directory structure: the
// binary tag directories of TIFF and embedded Exif, GPS, Interoperability
// and GlobalParameters IFDs, including the TIFF/EP, TIFF/IT, TIFF-FX,
// GeoTIFF and DNG tag extensions. It validates each tag against the format
// rules, converts raw bytes into typed values and builds a derived image
// metadata record, staying permissive on malformed input while recording
// what was malformed.
package tiffdir

// Type is a TIFF field type code (uppercase as in the TIFF standard).
type Type uint16

const (
	BYTE      Type = 1
	ASCII     Type = 2
	SHORT     Type = 3
	LONG      Type = 4
	RATIONAL  Type = 5
	SBYTE     Type = 6
	UNDEFINED Type = 7
	SSHORT    Type = 8
	SLONG     Type = 9
	SRATIONAL Type = 10
	FLOAT     Type = 11
	DOUBLE    Type = 12
	IFD       Type = 13 // Supplement 1
)

var typeNames = map[Type]string{
	BYTE:      "Byte",
	ASCII:     "ASCII",
	SHORT:     "Short",
	LONG:      "Long",
	RATIONAL:  "Rational",
	SBYTE:     "SByte",
	UNDEFINED: "Undefined",
	SSHORT:    "SShort",
	SLONG:     "SLong",
	SRATIONAL: "SRational",
	FLOAT:     "Float",
	DOUBLE:    "Double",
	IFD:       "IFD",
}

// Name returns the name of the TIFF type, or "Unknown" for codes outside
// the valid 1..13 range.
func (t Type) Name() string {
	name, found := typeNames[t]
	if found {
		return name
	}
	return "Unknown"
}

var typeSizes = map[Type]uint32{
	BYTE:      1,
	ASCII:     1,
	SHORT:     2,
	LONG:      4,
	RATIONAL:  8,
	SBYTE:     1,
	UNDEFINED: 1,
	SSHORT:    2,
	SLONG:     4,
	SRATIONAL: 8,
	FLOAT:     4,
	DOUBLE:    8,
	IFD:       4,
}

// Size returns the byte size of a single value of the type, or 0 for an
// invalid type code.
func (t Type) Size() uint32 {
	size, found := typeSizes[t]
	if found {
		return size
	}
	return 0
}

// Valid reports whether the type code is one of the thirteen defined TIFF
// types.
func (t Type) Valid() bool { return t >= BYTE && t <= IFD }

// IsInteger reports whether the type is one of the TIFF integer types.
func (t Type) IsInteger() bool {
	return t == BYTE || t == SHORT || t == LONG || t == SBYTE ||
		t == SSHORT || t == SLONG || t == IFD
}

// IsUnsignedInt reports whether the type is one of the three unsigned
// integer widths that TIFF readers must accept interchangeably.
func (t Type) IsUnsignedInt() bool {
	return t == BYTE || t == SHORT || t == LONG
}

// IsRational reports whether the type is RATIONAL or SRATIONAL.
func (t Type) IsRational() bool { return t == RATIONAL || t == SRATIONAL }

// IsFloat reports whether the type is FLOAT or DOUBLE.
func (t Type) IsFloat() bool { return t == FLOAT || t == DOUBLE }

// Kind identifies which tag table a directory is parsed with.
type Kind uint8

const (
	KindTIFF Kind = iota
	KindExif
	KindGPS
	KindInterop
	KindGlobalParameters
)

func (k Kind) String() string {
	switch k {
	case KindTIFF:
		return "TIFF"
	case KindExif:
		return "Exif"
	case KindGPS:
		return "GPS"
	case KindInterop:
		return "Interop"
	case KindGlobalParameters:
		return "GlobalParameters"
	}
	return "<unknown directory kind>"
}
