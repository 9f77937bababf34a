package tiffdir

import "github.com/hmelik/tiffdir/rational"

// Unset marks integer metadata fields no tag has populated. It is distinct
// from zero, which several tags can legally carry.
const Unset int64 = -1

// RowsPerStripInfinite is the TIFF default for RowsPerStrip: the whole
// image is one strip.
const RowsPerStripInfinite int64 = 0xFFFFFFFF

// Photometric interpretation values referenced by defaulting rules.
const (
	PhotometricYCbCr     = 6
	PhotometricCFA       = 32803 // DNG
	PhotometricLinearRaw = 34892 // DNG
)

// Metadata is the flat record of generic image properties that multiple
// tag handlers populate during a parse. Each Directory owns exactly one
// instance; nested IFDs hold their own.
type Metadata struct {
	Width  int64
	Length int64

	BitsPerSample   []int64
	Compression     int64
	Photometric     int64
	Threshholding   int64
	FillOrder       int64
	SamplesPerPixel int64
	ExtraSamples    []int64
	SampleFormat    []int64
	MinSampleValue  []int64
	MaxSampleValue  []int64

	PlanarConfiguration int64
	RowsPerStrip        int64
	StripOffsets        []int64
	StripByteCounts     []int64
	TileWidth           int64
	TileLength          int64
	TileOffsets         []int64
	TileByteCounts      []int64

	XResolution    *rational.R
	YResolution    *rational.R
	XPosition      *rational.R
	YPosition      *rational.R
	ResolutionUnit int64
	Orientation    int64

	ColorMap              []int64
	GrayResponseUnit      int64
	GrayResponseCurve     []int64
	WhitePoint            []rational.R
	PrimaryChromaticities []rational.R
	TransferFunction      []int64
	Predictor             int64
	YCbCrCoefficients     []rational.R
	YCbCrSubSampling      []int64
	YCbCrPositioning      int64
	ReferenceBlackWhite   []rational.R

	NewSubfileType int64
	SubfileType    int64

	Make             string
	Model            string
	Software         string
	DateTime         string
	Artist           string
	HostComputer     string
	ImageDescription string
	DocumentName     string
	PageName         string
	Copyright        string
}

func newMetadata() *Metadata {
	return &Metadata{
		Width:               Unset,
		Length:              Unset,
		Compression:         Unset,
		Photometric:         Unset,
		Threshholding:       Unset,
		FillOrder:           Unset,
		SamplesPerPixel:     Unset,
		PlanarConfiguration: Unset,
		RowsPerStrip:        Unset,
		TileWidth:           Unset,
		TileLength:          Unset,
		ResolutionUnit:      Unset,
		Orientation:         Unset,
		GrayResponseUnit:    Unset,
		Predictor:           Unset,
		YCbCrPositioning:    Unset,
		NewSubfileType:      Unset,
		SubfileType:         Unset,
	}
}

// finalize applies the TIFF-defined defaults to every field that no tag
// set explicitly. Runs once, after the directory walk.
func (m *Metadata) finalize() {
	if m.SamplesPerPixel == Unset {
		m.SamplesPerPixel = 1
	}
	spp := int(m.SamplesPerPixel)
	if m.BitsPerSample == nil {
		m.BitsPerSample = make([]int64, spp)
		for i := range m.BitsPerSample {
			m.BitsPerSample[i] = 1
		}
	}
	if m.Compression == Unset {
		m.Compression = 1
	}
	if m.RowsPerStrip == Unset {
		m.RowsPerStrip = RowsPerStripInfinite
	}
	if m.ResolutionUnit == Unset {
		m.ResolutionUnit = 2
	}
	if m.Orientation == Unset {
		m.Orientation = 1
	}
	if m.PlanarConfiguration == Unset {
		m.PlanarConfiguration = 1
	}
	if m.FillOrder == Unset {
		m.FillOrder = 1
	}
	if m.Threshholding == Unset {
		m.Threshholding = 1
	}
	if m.GrayResponseUnit == Unset {
		m.GrayResponseUnit = 2
	}
	if m.NewSubfileType == Unset {
		m.NewSubfileType = 0
	}
	if m.SampleFormat == nil {
		m.SampleFormat = make([]int64, spp)
		for i := range m.SampleFormat {
			m.SampleFormat[i] = 1
		}
	}
	if m.MinSampleValue == nil {
		m.MinSampleValue = make([]int64, spp)
	}
	if m.MaxSampleValue == nil && len(m.BitsPerSample) > 0 {
		m.MaxSampleValue = make([]int64, spp)
		for i := range m.MaxSampleValue {
			bits := m.BitsPerSample[0]
			if i < len(m.BitsPerSample) {
				bits = m.BitsPerSample[i]
			}
			if bits > 0 && bits < 63 {
				m.MaxSampleValue[i] = 1<<uint(bits) - 1
			}
		}
	}
	// Seeing LZW or a predictor-capable compression without a Predictor
	// tag means the no-differencing default.
	if m.Predictor == Unset {
		m.Predictor = 1
	}
	if m.Photometric == PhotometricYCbCr {
		if m.YCbCrCoefficients == nil {
			m.YCbCrCoefficients = []rational.R{
				rational.New(299, 1000),
				rational.New(587, 1000),
				rational.New(114, 1000),
			}
		}
		if m.YCbCrSubSampling == nil {
			m.YCbCrSubSampling = []int64{2, 2}
		}
		if m.YCbCrPositioning == Unset {
			m.YCbCrPositioning = 1
		}
	}
}
