package tiffdir

import "github.com/hmelik/tiffdir/tagid"

// Enumeration labels for the interpreted property report. Only tags whose
// values are genuine enumerations get a map; bitmask and free-form tags
// stay numeric.

var compressionLabels = map[int64]string{
	1:     "Uncompressed",
	2:     "CCITT Group 3 1-Dimensional",
	3:     "CCITT T.4",
	4:     "CCITT T.6",
	5:     "LZW",
	6:     "JPEG (old-style)",
	7:     "JPEG",
	8:     "Deflate",
	32773: "PackBits",
	34892: "Lossy JPEG (DNG)",
}

var photometricLabels = map[int64]string{
	0:     "WhiteIsZero",
	1:     "BlackIsZero",
	2:     "RGB",
	3:     "Palette color",
	4:     "Transparency mask",
	5:     "Separated",
	6:     "YCbCr",
	8:     "CIELab",
	32803: "Color filter array",
	34892: "Linear raw",
}

var orientationLabels = map[int64]string{
	1: "Row 0 top, column 0 left",
	2: "Row 0 top, column 0 right",
	3: "Row 0 bottom, column 0 right",
	4: "Row 0 bottom, column 0 left",
	5: "Row 0 left, column 0 top",
	6: "Row 0 right, column 0 top",
	7: "Row 0 right, column 0 bottom",
	8: "Row 0 left, column 0 bottom",
}

var resolutionUnitLabels = map[int64]string{
	1: "None",
	2: "Inch",
	3: "Centimeter",
}

var planarConfigLabels = map[int64]string{
	1: "Chunky",
	2: "Planar",
}

var fillOrderLabels = map[int64]string{
	1: "Most significant bit first",
	2: "Least significant bit first",
}

var predictorLabels = map[int64]string{
	1: "None",
	2: "Horizontal differencing",
	3: "Floating point differencing",
}

var sampleFormatLabels = map[int64]string{
	1: "Unsigned integer",
	2: "Signed integer",
	3: "IEEE floating point",
	4: "Undefined",
}

var extraSamplesLabels = map[int64]string{
	0: "Unspecified",
	1: "Associated alpha",
	2: "Unassociated alpha",
}

var thresholdingLabels = map[int64]string{
	1: "No dithering",
	2: "Ordered dither",
	3: "Randomized dither",
}

var inkSetLabels = map[int64]string{
	1: "CMYK",
	2: "Not CMYK",
}

var ycbcrPositioningLabels = map[int64]string{
	1: "Centered",
	2: "Cosited",
}

var grayResponseUnitLabels = map[int64]string{
	1: "Tenths",
	2: "Hundredths",
	3: "Thousandths",
	4: "Ten-thousandths",
	5: "Hundred-thousandths",
}

var subfileTypeLabels = map[int64]string{
	1: "Full-resolution image",
	2: "Reduced-resolution image",
	3: "Page of a multi-page image",
}

var exposureProgramLabels = map[int64]string{
	0: "Not defined",
	1: "Manual",
	2: "Normal program",
	3: "Aperture priority",
	4: "Shutter priority",
	5: "Creative program",
	6: "Action program",
	7: "Portrait mode",
	8: "Landscape mode",
}

var meteringModeLabels = map[int64]string{
	0:   "Unknown",
	1:   "Average",
	2:   "Center weighted average",
	3:   "Spot",
	4:   "MultiSpot",
	5:   "Pattern",
	6:   "Partial",
	255: "Other",
}

var lightSourceLabels = map[int64]string{
	0:   "Unknown",
	1:   "Daylight",
	2:   "Fluorescent",
	3:   "Tungsten",
	4:   "Flash",
	9:   "Fine weather",
	10:  "Cloudy weather",
	11:  "Shade",
	12:  "Daylight fluorescent",
	13:  "Day white fluorescent",
	14:  "Cool white fluorescent",
	15:  "White fluorescent",
	17:  "Standard light A",
	18:  "Standard light B",
	19:  "Standard light C",
	20:  "D55",
	21:  "D65",
	22:  "D75",
	23:  "D50",
	24:  "ISO studio tungsten",
	255: "Other",
}

var colorSpaceLabels = map[int64]string{
	1:      "sRGB",
	0xFFFF: "Uncalibrated",
}

var sensingMethodLabels = map[int64]string{
	1: "Not defined",
	2: "One-chip color area",
	3: "Two-chip color area",
	4: "Three-chip color area",
	5: "Color sequential area",
	7: "Trilinear",
	8: "Color sequential linear",
}

var onOffLabels = map[int64]string{
	0: "Normal",
	1: "Custom",
}

var exposureModeLabels = map[int64]string{
	0: "Auto",
	1: "Manual",
	2: "Auto bracket",
}

var whiteBalanceLabels = map[int64]string{
	0: "Auto",
	1: "Manual",
}

var sceneCaptureTypeLabels = map[int64]string{
	0: "Standard",
	1: "Landscape",
	2: "Portrait",
	3: "Night scene",
}

var gainControlLabels = map[int64]string{
	0: "None",
	1: "Low gain up",
	2: "High gain up",
	3: "Low gain down",
	4: "High gain down",
}

var softHardLabels = map[int64]string{
	0: "Normal",
	1: "Soft",
	2: "Hard",
}

var lowHighLabels = map[int64]string{
	0: "Normal",
	1: "Low saturation",
	2: "High saturation",
}

var subjectDistanceRangeLabels = map[int64]string{
	0: "Unknown",
	1: "Macro",
	2: "Close view",
	3: "Distant view",
}

var gpsAltitudeRefLabels = map[int64]string{
	0: "Above sea level",
	1: "Below sea level",
}

var gpsDifferentialLabels = map[int64]string{
	0: "No differential correction",
	1: "Differential correction applied",
}

var cfaLayoutLabels = map[int64]string{
	1: "Rectangular",
	2: "Staggered A",
	3: "Staggered B",
	4: "Staggered C",
	5: "Staggered D",
}

var faxProfileLabels = map[int64]string{
	0: "Unknown",
	1: "Minimal B&W lossless (S)",
	2: "Extended B&W lossless (F)",
	3: "Lossless JBIG B&W (J)",
	4: "Lossy color and grayscale (C)",
	5: "Lossless color and grayscale (L)",
	6: "Mixed raster content (M)",
}

// tiffLabelTables maps main-IFD enumeration tags to their label table.
var tiffLabelTables = map[uint16]map[int64]string{
	tagid.SubfileType:               subfileTypeLabels,
	tagid.Compression:               compressionLabels,
	tagid.PhotometricInterpretation: photometricLabels,
	tagid.Threshholding:             thresholdingLabels,
	tagid.FillOrder:                 fillOrderLabels,
	tagid.Orientation:               orientationLabels,
	tagid.PlanarConfiguration:       planarConfigLabels,
	tagid.GrayResponseUnit:          grayResponseUnitLabels,
	tagid.ResolutionUnit:            resolutionUnitLabels,
	tagid.Predictor:                 predictorLabels,
	tagid.InkSet:                    inkSetLabels,
	tagid.ExtraSamples:              extraSamplesLabels,
	tagid.SampleFormat:              sampleFormatLabels,
	tagid.YCbCrPositioning:          ycbcrPositioningLabels,
	tagid.MeteringMode:              meteringModeLabels,
	tagid.LightSource:               lightSourceLabels,
	tagid.SensingMethod:             sensingMethodLabels,
	tagid.CFALayout:                 cfaLayoutLabels,
	tagid.CalibrationIlluminant1:    lightSourceLabels,
	tagid.CalibrationIlluminant2:    lightSourceLabels,
}

var exifLabelTables = map[uint16]map[int64]string{
	tagid.ExposureProgram:              exposureProgramLabels,
	tagid.MeteringMode:                 meteringModeLabels,
	tagid.LightSource:                  lightSourceLabels,
	tagid.ColorSpace:                   colorSpaceLabels,
	tagid.ExifFocalPlaneResolutionUnit: resolutionUnitLabels,
	tagid.ExifSensingMethod:            sensingMethodLabels,
	tagid.CustomRendered:               onOffLabels,
	tagid.ExposureMode:                 exposureModeLabels,
	tagid.WhiteBalance:                 whiteBalanceLabels,
	tagid.SceneCaptureType:             sceneCaptureTypeLabels,
	tagid.GainControl:                  gainControlLabels,
	tagid.Contrast:                     softHardLabels,
	tagid.Saturation:                   lowHighLabels,
	tagid.Sharpness:                    softHardLabels,
	tagid.SubjectDistanceRange:         subjectDistanceRangeLabels,
	tagid.Orientation:                  orientationLabels,
	tagid.ResolutionUnit:               resolutionUnitLabels,
}

var gpsLabelTables = map[uint16]map[int64]string{
	tagid.GPSAltitudeRef:  gpsAltitudeRefLabels,
	tagid.GPSDifferential: gpsDifferentialLabels,
}

var globalParametersLabelTables = map[uint16]map[int64]string{
	tagid.FaxProfile: faxProfileLabels,
}

// label returns the display name of an enumeration value, or "" when the
// tag is not an enumeration in the given space or the value has no name.
func label(space tagid.Space, tag uint16, v int64) string {
	var tables map[uint16]map[int64]string
	switch space {
	case tagid.Exif:
		tables = exifLabelTables
	case tagid.GPS:
		tables = gpsLabelTables
	case tagid.GlobalParameters:
		tables = globalParametersLabelTables
	default:
		tables = tiffLabelTables
	}
	if m, ok := tables[tag]; ok {
		return m[v]
	}
	return ""
}
