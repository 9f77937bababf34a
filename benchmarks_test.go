package tiffdir

import (
	"encoding/binary"
	"testing"

	dsoprea "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

func BenchmarkThisPackage(b *testing.B) {
	built := grayTIFF(binary.LittleEndian)
	r := built.reader()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dirs, err := ParseFile(r, ParseOptions{})
		if err != nil {
			b.Fatal(err)
		}
		if len(dirs) == 0 {
			b.Fatal("no directories")
		}
	}
}

func BenchmarkDsoprea(b *testing.B) {
	built := grayTIFF(binary.LittleEndian)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rawExif, err := dsoprea.SearchAndExtractExif(built.buf)
		if err != nil {
			b.Fatal(err)
		}
		mapping, _ := exifcommon.NewIfdMappingWithStandard()
		ti := dsoprea.NewTagIndex()
		_, index, err := dsoprea.Collect(mapping, ti, rawExif)
		if err != nil {
			b.Fatal(err)
		}
		err = index.RootIfd.EnumerateTagsRecursively(func(i *dsoprea.Ifd, ite *dsoprea.IfdTagEntry) error {
			return nil
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}
