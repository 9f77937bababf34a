package tiffdir

import (
	"encoding/binary"
	"testing"

	"github.com/hmelik/tiffdir/rational"
	"github.com/hmelik/tiffdir/tagid"
)

func TestDNGDefaultsCFA(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	// A CFA raw IFD with DNGVersion but none of the defaultable tags.
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 4000),
		shortEntry(le, tagid.ImageLength, 3000),
		shortEntry(le, tagid.BitsPerSample, 16),
		shortEntry(le, tagid.PhotometricInterpretation, PhotometricCFA),
		shortEntry(le, tagid.SamplesPerPixel, 1),
		byteEntry(tagid.DNGVersion, 1, 4, 0, 0),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	g := d.DNG
	if g == nil {
		t.Fatal("DNG record missing")
	}
	if want := []int64{1, 4, 0, 0}; !equalInts(g.Version, want) {
		t.Fatalf("DNGVersion = %v, want %v", g.Version, want)
	}
	if want := []int64{1, 4, 0, 0}; !equalInts(g.BackwardVersion, want) {
		t.Errorf("DNGBackwardVersion = %v, want %v", g.BackwardVersion, want)
	}
	if want := []int64{1, 1}; !equalInts(g.BlackLevelRepeatDim, want) {
		t.Errorf("BlackLevelRepeatDim = %v, want %v", g.BlackLevelRepeatDim, want)
	}
	if len(g.BlackLevel) != 1 || g.BlackLevel[0].Long() != 0 {
		t.Errorf("BlackLevel = %v, want one zero", g.BlackLevel)
	}
	if want := []int64{65535}; !equalInts(g.WhiteLevel, want) {
		t.Errorf("WhiteLevel = %v, want %v", g.WhiteLevel, want)
	}
	if g.CFALayout != 1 {
		t.Errorf("CFALayout = %d, want 1", g.CFALayout)
	}
	if want := []int64{0, 1, 2}; !equalInts(g.CFAPlaneColor, want) {
		t.Errorf("CFAPlaneColor = %v, want %v", g.CFAPlaneColor, want)
	}
	if want := []int64{0, 0, 3000, 4000}; !equalInts(g.ActiveArea, want) {
		t.Errorf("ActiveArea = %v, want %v", g.ActiveArea, want)
	}
	// Identity 3x3 because the CFA has three plane colors.
	if len(g.CameraCalibration1) != 9 {
		t.Fatalf("CameraCalibration1 has %d entries, want 9", len(g.CameraCalibration1))
	}
	for i, r := range g.CameraCalibration1 {
		want := int64(0)
		if i%4 == 0 {
			want = 1
		}
		if r.Long() != want {
			t.Errorf("CameraCalibration1[%d] = %v, want %d", i, r, want)
		}
	}
	if len(g.DefaultCropSize) != 2 || g.DefaultCropSize[0].Long() != 4000 {
		t.Errorf("DefaultCropSize = %v", g.DefaultCropSize)
	}
	if len(g.AsShotNeutral) != 3 || g.AsShotNeutral[0].Long() != 1 {
		t.Errorf("AsShotNeutral = %v, want ones", g.AsShotNeutral)
	}
}

func TestDNGExplicitBlackLevel(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 8),
		shortEntry(le, tagid.ImageLength, 8),
		shortEntry(le, tagid.BitsPerSample, 12),
		shortEntry(le, tagid.PhotometricInterpretation, PhotometricCFA),
		byteEntry(tagid.DNGVersion, 1, 2, 0, 0),
		shortEntry(le, tagid.BlackLevel, 128),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	g := d.DNG
	if len(g.BlackLevel) != 1 || g.BlackLevel[0] != rational.New(128, 1) {
		t.Errorf("BlackLevel = %v, want 128/1 (SHORT normalized to rational)", g.BlackLevel)
	}
	if want := []int64{4095}; !equalInts(g.WhiteLevel, want) {
		t.Errorf("WhiteLevel = %v, want %v for 12-bit data", g.WhiteLevel, want)
	}
}

func TestDNGRepeatDimSizesBlackLevel(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 8),
		shortEntry(le, tagid.ImageLength, 8),
		shortEntry(le, tagid.BitsPerSample, 16),
		shortEntry(le, tagid.PhotometricInterpretation, PhotometricCFA),
		shortEntry(le, tagid.SamplesPerPixel, 1),
		byteEntry(tagid.DNGVersion, 1, 4, 0, 0),
		shortEntry(le, tagid.BlackLevelRepeatDim, 2, 2),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := len(d.DNG.BlackLevel); got != 4 {
		t.Errorf("BlackLevel has %d entries, want 4 (2x2x1)", got)
	}
}

func TestNoDNGDefaultsWithoutVersion(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	// TIFF/EP CFA tags without DNGVersion: record them, run no DNG pass.
	off := b.addIFD([]entry{
		shortEntry(le, tagid.ImageWidth, 8),
		shortEntry(le, tagid.ImageLength, 8),
		shortEntry(le, tagid.PhotometricInterpretation, PhotometricCFA),
		shortEntry(le, tagid.CFARepeatPatternDim, 2, 2),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	g := d.DNG
	if g == nil {
		t.Fatal("CFA tags must create the record")
	}
	if want := []int64{2, 2}; !equalInts(g.CFARepeatPatternDim, want) {
		t.Errorf("CFARepeatPatternDim = %v, want %v", g.CFARepeatPatternDim, want)
	}
	if g.BlackLevel != nil || g.WhiteLevel != nil {
		t.Error("defaults must not run without DNGVersion")
	}
}

func TestDNGDefaultsBoundedByDimensions(t *testing.T) {
	le := binary.LittleEndian
	b := newFileBuilder(le)
	// A tiny file declaring a gigantic image. The defaulting pass must
	// not turn the claimed dimensions into allocations.
	off := b.addIFD([]entry{
		longEntry(le, tagid.ImageWidth, 1_000_000),
		longEntry(le, tagid.ImageLength, 1_000_000),
		shortEntry(le, tagid.BitsPerSample, 16),
		shortEntry(le, tagid.PhotometricInterpretation, PhotometricCFA),
		shortEntry(le, tagid.SamplesPerPixel, 1),
		byteEntry(tagid.DNGVersion, 1, 4, 0, 0),
		shortEntry(le, tagid.BlackLevelRepeatDim, 0x7fff, 0x7fff),
	}, 0)

	d := New(b.reader(), le, int64(off), KindTIFF)
	if _, err := d.Parse(ParseOptions{}); err != nil {
		t.Fatal(err)
	}
	g := d.DNG
	if g.BlackLevelDeltaH != nil || g.BlackLevelDeltaV != nil {
		t.Errorf("BlackLevelDelta defaults materialized: H=%d V=%d elements",
			len(g.BlackLevelDeltaH), len(g.BlackLevelDeltaV))
	}
	if g.BlackLevel != nil {
		t.Errorf("BlackLevel default materialized with %d elements from a 0x7fff x 0x7fff repeat pattern",
			len(g.BlackLevel))
	}
	// Fixed-size defaults are untouched by the caps.
	if want := []int64{0, 0, 1_000_000, 1_000_000}; !equalInts(g.ActiveArea, want) {
		t.Errorf("ActiveArea = %v, want %v", g.ActiveArea, want)
	}
}
