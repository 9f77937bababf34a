// Command tiffdirdump prints the IFD tree of a TIFF file: every tag of
// every directory along with the violations and notes recorded while
// parsing.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hmelik/tiffdir"
)

func main() {
	log.SetFlags(0)
	interpreted := flag.Bool("interpreted", false, "render enumerations and rationals in human form")
	lenient := flag.Bool("lenient", false, "keep walking the IFD chain past a broken directory")
	oddOffsets := flag.Bool("odd-offsets", false, "tolerate value offsets that are not word-aligned")
	base := flag.Int64("offset", 0, "byte offset of an embedded TIFF structure within the file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.tif\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	fp, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer fp.Close()

	var src io.ReaderAt = fp
	if *base > 0 {
		src = tiffdir.NewOffsetReader(fp, *base, nil)
	}
	dirs, err := tiffdir.ParseFile(src, tiffdir.ParseOptions{
		Lenient:         *lenient,
		AllowOddOffsets: *oddOffsets,
	})
	for _, d := range dirs {
		if rerr := d.Report(os.Stdout, *interpreted); rerr != nil {
			log.Fatal(rerr)
		}
	}
	if err != nil {
		log.Fatal(err)
	}
}
