package tiffdir

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/hmelik/tiffdir/rational"
	"github.com/hmelik/tiffdir/tagid"
)

// ParseOptions configures one Parse call. The zero value is the strict
// default; the hardening caps are filled in by Parse.
type ParseOptions struct {
	// AllowOddOffsets tolerates out-of-line value offsets that are not
	// word aligned. Strict TIFF requires even offsets.
	AllowOddOffsets bool
	// NoOrderCheck disables the ascending-tag-order check.
	NoOrderCheck bool
	// Lenient downgrades a broken link while walking an IFD chain to an
	// informational message, keeping what was already parsed.
	Lenient bool
	// MaxEntries rejects directories claiming an implausible entry
	// count. The count field is attacker controlled, so it must be
	// sanity-capped before allocation. Zero means the 4096 default.
	MaxEntries int
	// MaxValueBytes caps a single tag's value-block allocation.
	// Zero means the 16 MiB default.
	MaxValueBytes int64
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.MaxEntries == 0 {
		o.MaxEntries = 4096
	}
	if o.MaxValueBytes == 0 {
		o.MaxValueBytes = 16 << 20
	}
	return o
}

// Directory is one parsed Image File Directory. Construct with New, call
// Parse exactly once, then read fields, metadata and the property report.
type Directory struct {
	Kind   Kind
	Offset int64

	// Fields holds the populated tag values in entry order.
	Fields []Field
	// NextOffset is the position of the next IFD in this chain, 0 if
	// this directory is terminal.
	NextOffset int64

	IsFirst     bool
	IsThumbnail bool

	// Version is the minimum TIFF revision implied by the tags and
	// types actually encountered. Starts at 4 and only ratchets upward.
	Version int

	// Errs records non-fatal violations (wrong type, wrong count, out of
	// sequence). Info records expected oddities such as unknown private
	// tags. Neither affects control flow.
	Errs []string
	Info []string

	// Meta is the shared image-metadata aggregator, exclusively owned
	// by this directory.
	Meta *Metadata

	// Offsets of nested directories discovered during the walk. The
	// caller constructs and parses the nested directory and attaches it
	// back with the Attach setters; see ParseTree.
	ExifOffset             int64
	GPSOffset              int64
	InteropOffset          int64
	GlobalParametersOffset int64
	SubIFDOffsets          []int64

	Exif             *Directory
	GPS              *Directory
	Interop          *Directory
	GlobalParameters *Directory
	SubIFDs          []*Directory

	// Kind-specific derived records.
	DNG      *DNGMeta  // non-nil once a DNG or CFA tag is seen
	ExifMeta *ExifMeta // non-nil for KindExif directories
	GPSMeta  *GPSMeta  // non-nil for KindGPS directories

	src    source
	opts   ParseOptions
	parsed bool
}

// ExifMeta carries the Exif-private fields whose defaults apply at
// construction time rather than through an explicit tag.
type ExifMeta struct {
	Version         string // "0220" unless an ExifVersion tag overrides it
	FlashpixVersion string
	ColorSpace      int64
	PixelXDimension int64
	PixelYDimension int64
	GainControl     int64
}

// GPSMeta carries the GPS-private fields with construction-time defaults
// and the coordinate triplets normalized to rationals.
type GPSMeta struct {
	VersionID    []int64 // 2.2.0.0 unless a GPSVersionID tag overrides it
	LatitudeRef  string
	Latitude     []rational.R // degrees, minutes, seconds
	LongitudeRef string
	Longitude    []rational.R
	AltitudeRef  int64
	Altitude     *rational.R
	TimeStamp    []rational.R
}

// New constructs an unparsed directory over r at offset, using the byte
// order fixed for the file. Kind selects the tag table.
func New(r io.ReaderAt, order binary.ByteOrder, offset int64, kind Kind) *Directory {
	d := &Directory{
		Kind:    kind,
		Offset:  offset,
		Version: 4,
		Meta:    newMetadata(),
		src:     source{r: r, order: order},
	}
	switch kind {
	case KindExif:
		d.ExifMeta = &ExifMeta{
			Version:         "0220",
			FlashpixVersion: "0100",
			ColorSpace:      Unset,
			PixelXDimension: Unset,
			PixelYDimension: Unset,
			GainControl:     Unset,
		}
	case KindGPS:
		d.GPSMeta = &GPSMeta{
			VersionID:   []int64{2, 2, 0, 0},
			AltitudeRef: Unset,
		}
	}
	return d
}

// Parse walks the directory once: entry count, 12-byte entries, trailing
// next-IFD offset. Per-tag violations are recorded and skipped; a
// malformed read or a misaligned out-of-line offset aborts the directory,
// leaving earlier fields populated. Returns the next IFD's offset (0 when
// the chain ends). A second call returns ErrAlreadyParsed.
func (d *Directory) Parse(opts ParseOptions) (next int64, err error) {
	if d.parsed {
		return 0, ErrAlreadyParsed
	}
	d.parsed = true
	d.opts = opts.withDefaults()

	hdr, err := d.src.bytesAt(d.Offset, 2)
	if err != nil {
		return 0, err
	}
	count := int(d.src.order.Uint16(hdr))
	if count > d.opts.MaxEntries {
		return 0, &DirectoryError{Offset: d.Offset, Msg: "implausible entry count " + strconv.Itoa(count)}
	}
	entries, err := d.src.bytesAt(d.Offset+2, 12*count)
	if err != nil {
		return 0, err
	}
	tail, err := d.src.bytesAt(d.Offset+2+int64(12*count), 4)
	if err != nil {
		return 0, err
	}
	d.NextOffset = int64(d.src.order.Uint32(tail))

	prevTag := int64(-1)
	for i := 0; i < count; i++ {
		entry := entries[i*12 : i*12+12]
		entryPos := d.Offset + 2 + int64(i*12)
		tag := d.src.order.Uint16(entry)
		typ := Type(d.src.order.Uint16(entry[2:]))
		valCount := d.src.order.Uint32(entry[4:])

		if !typ.Valid() {
			d.errorf("%s: unknown data type %d for tag %d", tagid.Name(d.space(), tag), uint16(typ), tag)
			prevTag = int64(tag)
			continue
		}
		if typ >= SBYTE {
			// SBYTE and above were introduced by TIFF 6.0.
			d.ratchet(6)
		}
		if int64(tag) < prevTag && !d.opts.NoOrderCheck {
			d.errorf("tag %d out of sequence", tag)
		}
		prevTag = int64(tag)

		size := int64(typ.Size()) * int64(valCount)
		if size > d.opts.MaxValueBytes {
			d.errorf("%s: value block of %d bytes exceeds limit", tagid.Name(d.space(), tag), size)
			continue
		}
		valueOff := entryPos + 8
		if size > 4 {
			off := int64(d.src.order.Uint32(entry[8:]))
			if off%2 != 0 && !d.opts.AllowOddOffsets {
				return 0, &DirectoryError{Offset: entryPos + 8, Msg: "value offset " + strconv.Itoa(int(off)) + " for tag " + strconv.Itoa(int(tag)) + " not word-aligned"}
			}
			valueOff = off
		}
		if err := d.dispatch(tag, typ, valCount, valueOff); err != nil {
			return 0, err
		}
	}

	d.postParse()
	return d.NextOffset, nil
}

// postParse is the defaulting hook that runs after all entries are
// consumed: baseline TIFF defaults, then the DNG pass, which needs the
// driving fields (dimensions, samples per pixel, bits per sample) already
// settled.
func (d *Directory) postParse() {
	if d.Kind != KindTIFF {
		return
	}
	d.Meta.finalize()
	if d.DNG != nil {
		d.applyDNGDefaults()
	}
}

func (d *Directory) space() tagid.Space {
	switch d.Kind {
	case KindExif:
		return tagid.Exif
	case KindGPS:
		return tagid.GPS
	case KindInterop:
		return tagid.Interop
	case KindGlobalParameters:
		return tagid.GlobalParameters
	}
	return tagid.TIFF
}

// Field returns the populated field for a tag, if present.
func (d *Directory) Field(tag uint16) (Field, bool) {
	for _, f := range d.Fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

// AttachExif links a parsed Exif sub-IFD onto this directory.
func (d *Directory) AttachExif(sub *Directory) { d.Exif = sub }

// AttachGPS links a parsed GPS Info sub-IFD onto this directory.
func (d *Directory) AttachGPS(sub *Directory) { d.GPS = sub }

// AttachInterop links a parsed Interoperability sub-IFD.
func (d *Directory) AttachInterop(sub *Directory) { d.Interop = sub }

// AttachGlobalParameters links a parsed GlobalParameters sub-IFD.
func (d *Directory) AttachGlobalParameters(sub *Directory) { d.GlobalParameters = sub }

// AttachSubIFD appends a parsed child IFD from the SubIFDs tag.
func (d *Directory) AttachSubIFD(sub *Directory) { d.SubIFDs = append(d.SubIFDs, sub) }

