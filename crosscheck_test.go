package tiffdir

import (
	"bytes"
	"encoding/binary"
	"testing"

	goexif "github.com/rwcarlsen/goexif/exif"
	xtiff "golang.org/x/image/tiff"

	"github.com/hmelik/tiffdir/tagid"
)

// grayTIFF builds a complete 2x2 8-bit grayscale file with pixel data, so
// full TIFF decoders accept it as an image rather than bare metadata.
func grayTIFF(order binary.ByteOrder) *fileBuilder {
	b := newFileBuilder(order)
	strip := b.append([]byte{0x00, 0x40, 0x80, 0xFF})
	ifd := b.addIFD([]entry{
		shortEntry(order, tagid.ImageWidth, 2),
		shortEntry(order, tagid.ImageLength, 2),
		shortEntry(order, tagid.BitsPerSample, 8),
		shortEntry(order, tagid.Compression, 1),
		shortEntry(order, tagid.PhotometricInterpretation, 1),
		asciiEntry(tagid.Make, "Acme"),
		asciiEntry(tagid.Model, "Speckler 9000"),
		longEntry(order, tagid.StripOffsets, strip),
		shortEntry(order, tagid.Orientation, 1),
		shortEntry(order, tagid.SamplesPerPixel, 1),
		shortEntry(order, tagid.RowsPerStrip, 2),
		longEntry(order, tagid.StripByteCounts, 4),
		ratEntry(order, tagid.XResolution, 72, 1),
		ratEntry(order, tagid.YResolution, 72, 1),
		shortEntry(order, tagid.ResolutionUnit, 2),
	}, 0)
	b.setFirstIFD(ifd)
	return b
}

// TestAgainstStdImageTIFF decodes the same bytes with x/image/tiff and
// checks both decoders agree on the image geometry.
func TestAgainstStdImageTIFF(t *testing.T) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			b := grayTIFF(order)
			dirs, err := ParseFile(b.reader(), ParseOptions{})
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := xtiff.DecodeConfig(b.reader())
			if err != nil {
				t.Fatal(err)
			}
			m := dirs[0].Meta
			if int64(cfg.Width) != m.Width || int64(cfg.Height) != m.Length {
				t.Errorf("geometry disagreement: x/image says %dx%d, got %dx%d",
					cfg.Width, cfg.Height, m.Width, m.Length)
			}
			img, err := xtiff.Decode(b.reader())
			if err != nil {
				t.Fatalf("x/image rejects the synthesized file: %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
				t.Errorf("decoded bounds = %v", img.Bounds())
			}
		})
	}
}

// TestAgainstGoexif reads the same bytes with rwcarlsen/goexif and checks
// the string tags agree.
func TestAgainstGoexif(t *testing.T) {
	b := grayTIFF(binary.LittleEndian)
	dirs, err := ParseFile(b.reader(), ParseOptions{})
	if err != nil {
		t.Fatal(err)
	}
	x, err := goexif.Decode(bytes.NewReader(b.buf))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		field goexif.FieldName
		want  string
	}{
		{goexif.Make, dirs[0].Meta.Make},
		{goexif.Model, dirs[0].Meta.Model},
	} {
		tag, err := x.Get(tc.field)
		if err != nil {
			t.Fatalf("%s: %v", tc.field, err)
		}
		got, err := tag.StringVal()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s: goexif says %q, got %q", tc.field, got, tc.want)
		}
	}
	orient, err := x.Get(goexif.Orientation)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := orient.Int(0); int64(v) != dirs[0].Meta.Orientation {
		t.Errorf("Orientation: goexif says %d, got %d", v, dirs[0].Meta.Orientation)
	}
}
