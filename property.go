package tiffdir

import (
	"fmt"
	"io"
	"strings"

	"github.com/hmelik/tiffdir/tagid"
)

// Property is one line of the tag report: a display name and a rendered
// value.
type Property struct {
	Tag   uint16
	Name  string
	Value string
}

// Properties renders every parsed field of the directory, in file order.
// With interpreted set, enumeration values are replaced by their names
// and rationals are reduced to decimal; otherwise values appear exactly
// as stored.
func (d *Directory) Properties(interpreted bool) []Property {
	out := make([]Property, 0, len(d.Fields))
	space := d.space()
	for _, f := range d.Fields {
		out = append(out, Property{
			Tag:   f.Tag,
			Name:  tagid.Name(space, f.Tag),
			Value: formatValue(space, f, interpreted),
		})
	}
	return out
}

func formatValue(space tagid.Space, f Field, interpreted bool) string {
	switch {
	case f.Type == ASCII:
		return fmt.Sprintf("%q", f.ASCII())
	case f.Type == UNDEFINED:
		raw := f.Undefined()
		if interpreted && printableASCII(raw) {
			return fmt.Sprintf("%q", raw)
		}
		if len(raw) > 32 {
			return fmt.Sprintf("%X... (%d bytes)", raw[:32], len(raw))
		}
		return fmt.Sprintf("%X", raw)
	case f.Type.IsInteger():
		if interpreted && f.Count == 1 {
			if name := label(space, f.Tag, f.Int(0)); name != "" {
				return name
			}
		}
		return joinInts(f.Ints())
	case f.Type.IsRational():
		parts := make([]string, len(f.Rats()))
		for i, r := range f.Rats() {
			if interpreted {
				parts[i] = fmt.Sprintf("%g", r.Float())
			} else {
				parts[i] = r.String()
			}
		}
		return strings.Join(parts, " ")
	case f.Type.IsFloat():
		parts := make([]string, len(f.Floats()))
		for i, v := range f.Floats() {
			parts[i] = fmt.Sprintf("%g", v)
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func joinInts(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

func printableASCII(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// Report writes a human-readable dump of the directory and every attached
// sub-IFD to w.
func (d *Directory) Report(w io.Writer, interpreted bool) error {
	return d.report(w, interpreted, "")
}

func (d *Directory) report(w io.Writer, interpreted bool, indent string) error {
	role := ""
	switch {
	case d.IsThumbnail:
		role = " (thumbnail)"
	case d.IsFirst:
		role = " (primary)"
	}
	if _, err := fmt.Fprintf(w, "%s%s IFD at offset %#x, %d entries, TIFF %d.0%s\n",
		indent, d.Kind, d.Offset, len(d.Fields), d.Version, role); err != nil {
		return err
	}
	for _, p := range d.Properties(interpreted) {
		if _, err := fmt.Fprintf(w, "%s  %-28s %s\n", indent, p.Name, p.Value); err != nil {
			return err
		}
	}
	for _, msg := range d.Errs {
		if _, err := fmt.Fprintf(w, "%s  error: %s\n", indent, msg); err != nil {
			return err
		}
	}
	for _, msg := range d.Info {
		if _, err := fmt.Fprintf(w, "%s  note: %s\n", indent, msg); err != nil {
			return err
		}
	}
	children := []*Directory{d.Exif, d.GPS, d.Interop, d.GlobalParameters}
	children = append(children, d.SubIFDs...)
	for _, sub := range children {
		if sub == nil {
			continue
		}
		if err := sub.report(w, interpreted, indent+"  "); err != nil {
			return err
		}
	}
	return nil
}
