package tiffdir

import (
	"fmt"

	"github.com/hmelik/tiffdir/rational"
	"github.com/hmelik/tiffdir/tagid"
)

// fieldSpec describes the contract of one tag within a tag table: the
// acceptable declared types, the arity rule, the minimum TIFF revision the
// tag implies, and the action storing the decoded value.
type fieldSpec struct {
	name  string
	types []Type // acceptable declared types; nil accepts any valid type
	min   uint32 // minimum count; 0 skips the check
	exact bool   // count must equal min exactly
	ver   int    // dialect version the tag ratchets to; 0 leaves it alone
	set   func(d *Directory, f Field) error
}

// tagTable maps tag number to its contract. One table per directory kind,
// built once at package init.
type tagTable map[uint16]fieldSpec

func (d *Directory) table() tagTable {
	switch d.Kind {
	case KindExif:
		return exifTable
	case KindGPS:
		return gpsTable
	case KindInterop:
		return interopTable
	case KindGlobalParameters:
		return globalParametersTable
	}
	return tiffTable
}

// checkType validates the declared type against the allowed set. The three
// unsigned integer widths are interchangeable: a tag expecting SHORT must
// also accept BYTE and LONG.
func (s fieldSpec) checkType(tag uint16, t Type) error {
	if s.types == nil {
		return nil
	}
	wantsUnsigned := false
	for _, w := range s.types {
		if t == w {
			return nil
		}
		if w.IsUnsignedInt() {
			wantsUnsigned = true
		}
	}
	if wantsUnsigned && t.IsUnsignedInt() {
		return nil
	}
	return typeMismatch(tag, t, s.types...)
}

func (s fieldSpec) checkCount(tag uint16, count uint32) error {
	if s.min == 0 {
		return nil
	}
	if s.exact && count != s.min {
		return countMismatch(tag, count, s.min, true)
	}
	if count < s.min {
		return countMismatch(tag, count, s.min, false)
	}
	return nil
}

// dispatch validates and stores one entry. Tag-local violations are
// recorded and swallowed; only read failures against the byte source
// escape, and those abort the directory.
func (d *Directory) dispatch(tag uint16, t Type, count uint32, valueOff int64) error {
	spec, known := d.table()[tag]
	if !known {
		f, err := d.src.readField(tag, t, count, valueOff)
		if err != nil {
			return err
		}
		d.Fields = append(d.Fields, f)
		d.infof("unknown tag %d (%#x), type %s, count %d%s",
			tag, tag, t.Name(), count, homeSpace(d.space(), tag))
		return nil
	}
	if err := spec.checkType(tag, t); err != nil {
		d.errorf("%s: %v", spec.name, err)
		return nil
	}
	if err := spec.checkCount(tag, count); err != nil {
		d.errorf("%s: %v", spec.name, err)
		return nil
	}
	f, err := d.src.readField(tag, t, count, valueOff)
	if err != nil {
		return err
	}
	if spec.ver > 0 {
		d.ratchet(spec.ver)
	}
	if spec.set != nil {
		if err := spec.set(d, f); err != nil {
			d.errorf("%s: %v", spec.name, err)
			return nil
		}
	}
	d.Fields = append(d.Fields, f)
	return nil
}

// homeSpace notes when an unhandled tag number belongs to another tag
// space, which usually means a writer flattened a private IFD into its
// parent instead of linking it.
func homeSpace(space tagid.Space, tag uint16) string {
	for _, sp := range []tagid.Space{tagid.TIFF, tagid.Exif, tagid.GPS} {
		if sp != space && tagid.Known(sp, tag) {
			return fmt.Sprintf(" (%s tag %s)", sp, tagid.Name(sp, tag))
		}
	}
	return ""
}

func (d *Directory) errorf(format string, args ...any) {
	d.Errs = append(d.Errs, fmt.Sprintf(format, args...))
}

func (d *Directory) infof(format string, args ...any) {
	d.Info = append(d.Info, fmt.Sprintf(format, args...))
}

// ratchet raises the dialect version implied by the tags seen so far.
// It never lowers it.
func (d *Directory) ratchet(v int) {
	if v > d.Version {
		d.Version = v
	}
}

// Setter helpers shared by the tag tables. The tables are package
// globals, so a setter resolves its destination from the Directory at
// dispatch time rather than closing over one instance.

func setInt(dst func(*Directory) *int64) func(*Directory, Field) error {
	return func(d *Directory, f Field) error {
		*dst(d) = f.Int(0)
		return nil
	}
}

func setInts(dst func(*Directory) *[]int64) func(*Directory, Field) error {
	return func(d *Directory, f Field) error {
		*dst(d) = f.Ints()
		return nil
	}
}

func setString(dst func(*Directory) *string) func(*Directory, Field) error {
	return func(d *Directory, f Field) error {
		*dst(d) = f.ASCII()
		return nil
	}
}

func setRat(dst func(*Directory) **rational.R) func(*Directory, Field) error {
	return func(d *Directory, f Field) error {
		r := f.Rat(0)
		*dst(d) = &r
		return nil
	}
}

func setRats(dst func(*Directory) *[]rational.R) func(*Directory, Field) error {
	return func(d *Directory, f Field) error {
		*dst(d) = f.Rats()
		return nil
	}
}

// setAnyRats normalizes a field that may arrive as unsigned integer or
// rational into the canonical rational representation.
func setAnyRats(dst func(*Directory) *[]rational.R) func(*Directory, Field) error {
	return func(d *Directory, f Field) error {
		*dst(d) = f.anyRationals()
		return nil
	}
}
