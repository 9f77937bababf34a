package tiffdir

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/hmelik/tiffdir/rational"
	"github.com/hmelik/tiffdir/tagid"
)

func TestParseBaseline(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 640),
		shortEntry(le, tagid.ImageLength, 480),
		shortEntry(le, tagid.BitsPerSample, 8, 8, 8),
		shortEntry(le, tagid.Compression, 1),
		shortEntry(le, tagid.PhotometricInterpretation, 2),
		asciiEntry(tagid.Make, "Acme"),
		longEntry(le, tagid.StripOffsets, 1000),
		shortEntry(le, tagid.SamplesPerPixel, 3),
		shortEntry(le, tagid.RowsPerStrip, 480),
		longEntry(le, tagid.StripByteCounts, 921600),
		ratEntry(le, tagid.XResolution, 72, 1),
		ratEntry(le, tagid.YResolution, 72, 1),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	next, err := d.Parse(ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if next != 0 {
		t.Errorf("next = %d, want 0", next)
	}
	if len(d.Errs) != 0 {
		t.Errorf("unexpected violations: %v", d.Errs)
	}
	m := d.Meta
	if m.Width != 640 || m.Length != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", m.Width, m.Length)
	}
	if want := []int64{8, 8, 8}; !equalInts(m.BitsPerSample, want) {
		t.Errorf("BitsPerSample = %v, want %v", m.BitsPerSample, want)
	}
	if m.Make != "Acme" {
		t.Errorf("Make = %q", m.Make)
	}
	if m.XResolution == nil || m.XResolution.Float() != 72 {
		t.Errorf("XResolution = %v, want 72/1", m.XResolution)
	}
	if d.Version != 4 {
		t.Errorf("dialect version = %d, want 4", d.Version)
	}
}

func TestParseDefaults(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 4),
		shortEntry(le, tagid.ImageLength, 4),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	m := d.Meta
	checks := []struct {
		name string
		got  int64
		want int64
	}{
		{"SamplesPerPixel", m.SamplesPerPixel, 1},
		{"Compression", m.Compression, 1},
		{"RowsPerStrip", m.RowsPerStrip, RowsPerStripInfinite},
		{"ResolutionUnit", m.ResolutionUnit, 2},
		{"Orientation", m.Orientation, 1},
		{"PlanarConfiguration", m.PlanarConfiguration, 1},
		{"FillOrder", m.FillOrder, 1},
		{"Threshholding", m.Threshholding, 1},
		{"GrayResponseUnit", m.GrayResponseUnit, 2},
		{"NewSubfileType", m.NewSubfileType, 0},
		{"Predictor", m.Predictor, 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if want := []int64{1}; !equalInts(m.BitsPerSample, want) {
		t.Errorf("BitsPerSample = %v, want %v", m.BitsPerSample, want)
	}
	if want := []int64{1}; !equalInts(m.SampleFormat, want) {
		t.Errorf("SampleFormat = %v, want %v", m.SampleFormat, want)
	}
	if want := []int64{1}; !equalInts(m.MaxSampleValue, want) {
		t.Errorf("MaxSampleValue = %v, want %v", m.MaxSampleValue, want)
	}
}

func TestYCbCrDefaults(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.PhotometricInterpretation, 6),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	m := d.Meta
	if want := []int64{2, 2}; !equalInts(m.YCbCrSubSampling, want) {
		t.Errorf("YCbCrSubSampling = %v, want %v", m.YCbCrSubSampling, want)
	}
	if m.YCbCrPositioning != 1 {
		t.Errorf("YCbCrPositioning = %d, want 1", m.YCbCrPositioning)
	}
	if len(m.YCbCrCoefficients) != 3 || m.YCbCrCoefficients[1] != rational.New(587, 1000) {
		t.Errorf("YCbCrCoefficients = %v", m.YCbCrCoefficients)
	}
	if d.Version != 6 {
		t.Errorf("dialect version = %d, want 6 for YCbCr", d.Version)
	}
}

func TestOutOfSequenceTags(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageLength, 480),
		shortEntry(le, tagid.ImageWidth, 640), // lower tag after higher
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if !containsSubstring(d.Errs, "out of sequence") {
		t.Errorf("want out-of-sequence violation, got %v", d.Errs)
	}
	// Both values must still land.
	if d.Meta.Width != 640 || d.Meta.Length != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", d.Meta.Width, d.Meta.Length)
	}
}

func TestUnknownTagRecorded(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, 0xDEAD, 7),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if !containsSubstring(d.Info, "unknown tag") {
		t.Errorf("want unknown-tag note, got %v", d.Info)
	}
	f, ok := d.Field(0xDEAD)
	if !ok {
		t.Fatal("unknown tag not stored")
	}
	if f.Int(0) != 7 {
		t.Errorf("value = %d, want 7", f.Int(0))
	}
}

func TestUnknownTagNamesForeignSpace(t *testing.T) {
	// An Exif tag dumped straight into a TIFF IFD is unhandled there,
	// but the note identifies the space it came from.
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ColorSpace, 1),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if !containsSubstring(d.Info, "Exif tag ColorSpace") {
		t.Errorf("want foreign-space note, got %v", d.Info)
	}
	if _, ok := d.Field(tagid.ColorSpace); !ok {
		t.Error("unhandled tag not stored")
	}
}

func TestTypeMismatchSkipsTag(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		asciiEntry(tagid.ImageWidth, "640"),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if !containsSubstring(d.Errs, "ImageWidth") {
		t.Errorf("want recorded type violation, got %v", d.Errs)
	}
	if d.Meta.Width != Unset {
		t.Errorf("Width = %d, want unset", d.Meta.Width)
	}
	if _, ok := d.Field(tagid.ImageWidth); ok {
		t.Error("invalid field must not be stored")
	}
}

func TestUnsignedWidthInterchange(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	// RowsPerStrip wants SHORT or LONG; a BYTE value must be accepted
	// since the unsigned widths are interchangeable.
	off := b.addIFD([]entry{
		byteEntry(tagid.RowsPerStrip, 16),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if len(d.Errs) != 0 {
		t.Fatalf("unexpected violations: %v", d.Errs)
	}
	if d.Meta.RowsPerStrip != 16 {
		t.Errorf("RowsPerStrip = %d, want 16", d.Meta.RowsPerStrip)
	}
}

func TestCountMismatchSkipsTag(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		ratEntry(le, tagid.XResolution, 72, 1, 96, 1), // count 2, must be 1
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if !containsSubstring(d.Errs, "XResolution") {
		t.Errorf("want recorded count violation, got %v", d.Errs)
	}
	if d.Meta.XResolution != nil {
		t.Errorf("XResolution = %v, want nil", d.Meta.XResolution)
	}
}

func TestTruncatedEntryBlock(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 640),
		shortEntry(le, tagid.ImageLength, 480),
	}, 0)

	trunc := bytes.NewReader(b.buf[:int(off)+7]) // mid-entry
	d := New(trunc, le, int64(off), KindTIFF)
	_, err := d.Parse(ParseOptions{})
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want ReadError", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want wrapped unexpected EOF", err)
	}
}

func TestValueReadFailureAborts(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 640),
		ratEntry(le, tagid.XResolution, 72, 1),
	}, 0)
	// Repoint XResolution's out-of-line value far past the end of file.
	pos := int(off) + 2 + 12*1 + 8
	le.PutUint32(b.buf[pos:], 1<<20)

	d := New(b.reader(), le, int64(off), KindTIFF)
	_, err := d.Parse(ParseOptions{})
	var re *ReadError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want ReadError", err)
	}
	// The earlier field survives the abort.
	if d.Meta.Width != 640 {
		t.Errorf("Width = %d, want 640 despite abort", d.Meta.Width)
	}
}

func TestOddValueOffset(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		ratEntry(le, tagid.XResolution, 72, 1),
	}, 0)
	pos := int(off) + 2 + 8
	valOff := le.Uint32(b.buf[pos:])
	// Shift the payload one byte so the pointer lands on an odd offset.
	b.buf = append(b.buf, 0)
	copy(b.buf[valOff+1:], b.buf[valOff:len(b.buf)-1])
	le.PutUint32(b.buf[pos:], valOff+1)

	d := New(b.reader(), le, int64(off), KindTIFF)
	_, err := d.Parse(ParseOptions{})
	var de *DirectoryError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DirectoryError", err)
	}

	d = New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{AllowOddOffsets: true}); err != nil {
		t.Fatalf("AllowOddOffsets: %v", err)
	}
	if d.Meta.XResolution == nil || d.Meta.XResolution.Float() != 72 {
		t.Errorf("XResolution = %v, want 72/1", d.Meta.XResolution)
	}
}

func TestParseTwice(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{shortEntry(le, tagid.ImageWidth, 1)}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Parse(ParseOptions{}); !errors.Is(err, ErrAlreadyParsed) {
		t.Errorf("second parse err = %v, want ErrAlreadyParsed", err)
	}
}

func TestImplausibleEntryCount(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{shortEntry(le, tagid.ImageWidth, 1)}, 0)
	le.PutUint16(b.buf[off:], 0xFFFF)

	d := New(b.reader(), le, int64(off), KindTIFF)
	_, err := d.Parse(ParseOptions{})
	var de *DirectoryError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DirectoryError", err)
	}
}

func TestVersionRatchet(t *testing.T) {
	le := binary.LittleEndian
	t.Run("signed type", func(t *testing.T) {
		b := newFileBuilder(le)
		off := b.addIFD([]entry{
			{tag: 0xDEAD, typ: SLONG, count: 1, data: longs(le, 12)},
		}, 0)
		d := New(b.reader(), le, int64(off), KindTIFF)
		if _, err := d.Parse(ParseOptions{}); err != nil {
			t.Fatal(err)
		}
		if d.Version != 6 {
			t.Errorf("version = %d, want 6 for signed field type", d.Version)
		}
	})
	t.Run("lzw", func(t *testing.T) {
		b := newFileBuilder(le)
		off := b.addIFD([]entry{
			shortEntry(le, tagid.Compression, 5),
		}, 0)
		d := New(b.reader(), le, int64(off), KindTIFF)
		if _, err := d.Parse(ParseOptions{}); err != nil {
			t.Fatal(err)
		}
		if d.Version != 5 {
			t.Errorf("version = %d, want 5 for LZW", d.Version)
		}
	})
	t.Run("tiff6 tag", func(t *testing.T) {
		b := newFileBuilder(le)
		off := b.addIFD([]entry{
			shortEntry(le, tagid.TileWidth, 64),
		}, 0)
		d := New(b.reader(), le, int64(off), KindTIFF)
		if _, err := d.Parse(ParseOptions{}); err != nil {
			t.Fatal(err)
		}
		if d.Version != 6 {
			t.Errorf("version = %d, want 6 for TileWidth", d.Version)
		}
	})
}

func TestASCIIEscaping(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		{tag: tagid.Make, typ: ASCII, count: 7, data: []byte{'A', 0x01, 'B', '\n', 'C', 0, 0}},
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	got := d.Meta.Make
	if strings.ContainsRune(got, 0x01) || strings.ContainsRune(got, 0) {
		t.Errorf("Make = %q, control bytes must be escaped", got)
	}
	if !strings.Contains(got, "A") || !strings.Contains(got, "B") {
		t.Errorf("Make = %q, printable bytes must survive", got)
	}
}

func equalInts(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsSubstring(msgs []string, sub string) bool {
	for _, m := range msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}
