package tiffdir

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DetectHeader reads the 8-byte TIFF header at the start of r and returns
// the byte order and the offset of the first IFD.
func DetectHeader(r io.ReaderAt) (order binary.ByteOrder, first int64, err error) {
	var hdr [8]byte
	if _, err := io.ReadFull(io.NewSectionReader(r, 0, 8), hdr[:]); err != nil {
		return nil, 0, &ReadError{Offset: 0, Err: err}
	}
	switch {
	case hdr[0] == 'I' && hdr[1] == 'I':
		order = binary.LittleEndian
	case hdr[0] == 'M' && hdr[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, 0, fmt.Errorf("tiffdir: bad byte order mark %q", hdr[:2])
	}
	if magic := order.Uint16(hdr[2:4]); magic != 42 {
		return nil, 0, fmt.Errorf("tiffdir: bad magic %d", magic)
	}
	first = int64(order.Uint32(hdr[4:8]))
	if first < 8 {
		return nil, 0, fmt.Errorf("tiffdir: first IFD offset %d inside header", first)
	}
	return order, first, nil
}

// ParseTree walks the IFD chain starting at offset and every reachable
// private sub-IFD: Exif (with its nested Interoperability IFD), GPS Info,
// GlobalParameters, and the SubIFDs child chains. Each visited offset is
// remembered; revisiting one yields ErrLoop so cyclic files cannot hang
// the walk. The first directory of the chain is flagged IsFirst and every
// later chain member IsThumbnail.
//
// A fatal error inside a main-chain directory stops the walk unless
// opts.Lenient is set, in which case the error is recorded on the broken
// directory and the chain ends there. Sub-IFD failures are always
// recorded rather than propagated: a corrupt Exif block should not take
// the primary image's metadata down with it.
func ParseTree(r io.ReaderAt, order binary.ByteOrder, offset int64, opts ParseOptions) ([]*Directory, error) {
	w := &treeWalker{
		r:       r,
		order:   order,
		opts:    opts.withDefaults(),
		visited: make(map[int64]bool),
	}
	var chain []*Directory
	for offset != 0 {
		if w.visited[offset] {
			return chain, ErrLoop
		}
		w.visited[offset] = true
		d := New(r, order, offset, KindTIFF)
		d.IsFirst = len(chain) == 0
		d.IsThumbnail = len(chain) > 0
		next, err := d.Parse(w.opts)
		if err != nil {
			if !w.opts.Lenient {
				return chain, err
			}
			d.errorf("directory aborted: %v", err)
			chain = append(chain, d)
			break
		}
		w.descend(d)
		chain = append(chain, d)
		offset = next
	}
	return chain, nil
}

// ParseFile detects the header of r and walks the whole tree.
func ParseFile(r io.ReaderAt, opts ParseOptions) ([]*Directory, error) {
	order, first, err := DetectHeader(r)
	if err != nil {
		return nil, err
	}
	return ParseTree(r, order, first, opts)
}

type treeWalker struct {
	r       io.ReaderAt
	order   binary.ByteOrder
	opts    ParseOptions
	visited map[int64]bool
}

// descend parses the private sub-IFDs a directory points at and attaches
// the results. Runs after the parent's own parse so all pointer tags are
// settled.
func (w *treeWalker) descend(parent *Directory) {
	if parent.ExifOffset != 0 {
		if sub := w.child(parent, "Exif", parent.ExifOffset, KindExif); sub != nil {
			parent.AttachExif(sub)
			if sub.InteropOffset != 0 {
				if in := w.child(sub, "Interoperability", sub.InteropOffset, KindInterop); in != nil {
					sub.AttachInterop(in)
				}
			}
		}
	}
	if parent.GPSOffset != 0 {
		if sub := w.child(parent, "GPS", parent.GPSOffset, KindGPS); sub != nil {
			parent.AttachGPS(sub)
		}
	}
	if parent.GlobalParametersOffset != 0 {
		if sub := w.child(parent, "GlobalParameters", parent.GlobalParametersOffset, KindGlobalParameters); sub != nil {
			parent.AttachGlobalParameters(sub)
		}
	}
	for _, off := range parent.SubIFDOffsets {
		if sub := w.child(parent, "SubIFD", off, KindTIFF); sub != nil {
			w.descend(sub)
			parent.AttachSubIFD(sub)
		}
	}
}

// child parses one nested directory. Failures are recorded on the parent
// and yield nil; the partly parsed child is still attached when at least
// one of its fields survived.
func (w *treeWalker) child(parent *Directory, label string, offset int64, kind Kind) *Directory {
	if w.visited[offset] {
		parent.errorf("%s IFD at offset %#x: %v", label, offset, ErrLoop)
		return nil
	}
	w.visited[offset] = true
	sub := New(w.r, w.order, offset, kind)
	if _, err := sub.Parse(w.opts); err != nil {
		parent.errorf("%s IFD at offset %#x: %v", label, offset, err)
		if len(sub.Fields) == 0 {
			return nil
		}
	}
	return sub
}
