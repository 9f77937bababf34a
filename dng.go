package tiffdir

import "github.com/hmelik/tiffdir/rational"

// DNGMeta collects the DNG (and TIFF/EP CFA) tag values of a directory.
// It exists as soon as any DNG-namespace tag is seen, but the defaulting
// pass only runs when a DNGVersion tag marks the directory as DNG.
type DNGMeta struct {
	Version          []int64
	BackwardVersion  []int64
	UniqueCameraModel string

	CFARepeatPatternDim []int64
	CFAPattern          []int64
	CFAPlaneColor       []int64
	CFALayout           int64

	LinearizationTable  []int64
	BlackLevelRepeatDim []int64
	BlackLevel          []rational.R
	BlackLevelDeltaH    []rational.R // nil reads as all zeroes
	BlackLevelDeltaV    []rational.R // nil reads as all zeroes
	WhiteLevel          []int64
	ActiveArea          []int64
	MaskedAreas         []int64

	DefaultScale      []rational.R
	DefaultCropOrigin []rational.R
	DefaultCropSize   []rational.R
	BestQualityScale  *rational.R

	ColorMatrix1       []rational.R
	ColorMatrix2       []rational.R
	CameraCalibration1 []rational.R
	CameraCalibration2 []rational.R
	ReductionMatrix1   []rational.R
	ReductionMatrix2   []rational.R
	AnalogBalance      []rational.R
	AsShotNeutral      []rational.R
	AsShotWhiteXY      []rational.R

	BaselineExposure       *rational.R
	CalibrationIlluminant1 int64
	CalibrationIlluminant2 int64
}

func newDNGMeta() *DNGMeta {
	return &DNGMeta{
		CFALayout:              Unset,
		CalibrationIlluminant1: Unset,
		CalibrationIlluminant2: Unset,
	}
}

// dng returns the directory's DNG record, creating it on first use.
func (d *Directory) dng() *DNGMeta {
	if d.DNG == nil {
		d.DNG = newDNGMeta()
	}
	return d.DNG
}

// maxDefaultElems bounds slices the defaulting pass synthesizes from
// field-driven sizes, mirroring the value-block cap of the parser. Sizes
// beyond it leave the field nil.
const maxDefaultElems = 1 << 20

// applyDNGDefaults back-fills the DNG-defined defaults. It must run after
// the main dispatch loop and after Metadata.finalize, because the defaults
// are sized by the driving fields (image dimensions, samples per pixel,
// bits per sample) of this same directory. DNG documents that keep the
// driving fields in a different sub-IFD than the defaulted fields are not
// supported; such directories get the degenerate defaults of whatever
// fields they do carry.
func (d *Directory) applyDNGDefaults() {
	g := d.DNG
	if g.Version == nil {
		return
	}
	m := d.Meta
	spp := int(m.SamplesPerPixel)
	if spp < 1 {
		spp = 1
	}
	planes := spp
	if g.CFAPlaneColor != nil {
		planes = len(g.CFAPlaneColor)
	} else if d.isCFA() {
		planes = 3
	}

	if g.BackwardVersion == nil {
		// Defaults to Version with the last two digits zeroed.
		g.BackwardVersion = []int64{g.Version[0], g.Version[1], 0, 0}
	}
	if g.CameraCalibration1 == nil {
		g.CameraCalibration1 = identityRats(planes, planes)
	}
	if g.CameraCalibration2 == nil {
		g.CameraCalibration2 = identityRats(planes, planes)
	}
	if g.AnalogBalance == nil {
		g.AnalogBalance = onesRats(planes)
	}
	if g.DefaultScale == nil {
		g.DefaultScale = onesRats(2)
	}
	if g.DefaultCropOrigin == nil {
		g.DefaultCropOrigin = zeroRats(2)
	}
	if g.DefaultCropSize == nil && m.Width != Unset && m.Length != Unset {
		g.DefaultCropSize = []rational.R{
			rational.New(m.Width, 1),
			rational.New(m.Length, 1),
		}
	}

	if !d.isCFA() && m.Photometric != PhotometricLinearRaw {
		return
	}

	// Raw-IFD defaults.
	if g.CFALayout == Unset {
		g.CFALayout = 1
	}
	if g.CFAPlaneColor == nil && d.isCFA() {
		g.CFAPlaneColor = []int64{0, 1, 2}
	}
	if g.BlackLevelRepeatDim == nil {
		g.BlackLevelRepeatDim = []int64{1, 1}
	}
	if g.BlackLevel == nil {
		n := g.BlackLevelRepeatDim[0] * g.BlackLevelRepeatDim[1] * int64(spp)
		if n > 0 && n <= maxDefaultElems {
			g.BlackLevel = zeroRats(int(n))
		}
	}
	// BlackLevelDeltaH and BlackLevelDeltaV default to all zeroes. Their
	// lengths are the image dimensions, which the file sets freely, so the
	// pass never materializes them; nil carries the same meaning.
	if g.WhiteLevel == nil {
		g.WhiteLevel = make([]int64, spp)
		for i := range g.WhiteLevel {
			bits := int64(0)
			if i < len(m.BitsPerSample) {
				bits = m.BitsPerSample[i]
			} else if len(m.BitsPerSample) > 0 {
				bits = m.BitsPerSample[0]
			}
			if bits > 0 && bits < 63 {
				g.WhiteLevel[i] = 1<<uint(bits) - 1
			}
		}
	}
	if g.ActiveArea == nil && m.Width != Unset && m.Length != Unset {
		g.ActiveArea = []int64{0, 0, m.Length, m.Width}
	}
	if g.AsShotNeutral == nil && g.AsShotWhiteXY == nil && d.isCFA() {
		g.AsShotNeutral = onesRats(planes)
	}
}

func (d *Directory) isCFA() bool {
	return d.Meta.Photometric == PhotometricCFA
}

func identityRats(rows, cols int) []rational.R {
	out := make([]rational.R, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == c {
				out[r*cols+c] = rational.New(1, 1)
			} else {
				out[r*cols+c] = rational.New(0, 1)
			}
		}
	}
	return out
}

func onesRats(n int) []rational.R {
	out := make([]rational.R, n)
	for i := range out {
		out[i] = rational.New(1, 1)
	}
	return out
}

func zeroRats(n int) []rational.R {
	out := make([]rational.R, n)
	for i := range out {
		out[i] = rational.New(0, 1)
	}
	return out
}
