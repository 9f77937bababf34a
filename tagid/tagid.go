// Package tagid holds the TIFF tag-number vocabulary: baseline TIFF 6.0,
// the TIFF supplements, TIFF/EP, TIFF/IT, TIFF-FX, GeoTIFF, DNG, and the
// Exif, GPS, Interoperability and GlobalParameters private spaces.
// Tags are uppercase as in the TIFF standard.
package tagid

import "strconv"

// Space identifies the tag namespace a directory uses. Private IFDs (Exif,
// GPS) reuse tag numbers, so a tag is only meaningful together with its
// space.
type Space uint8

const (
	TIFF Space = iota
	Exif
	GPS
	Interop
	GlobalParameters
)

func (s Space) String() string {
	switch s {
	case TIFF:
		return "TIFF"
	case Exif:
		return "Exif"
	case GPS:
		return "GPS"
	case Interop:
		return "Interop"
	case GlobalParameters:
		return "GlobalParameters"
	}
	return "Unknown"
}

// Tags found in TIFF main IFDs. Tags are from TIFF 6.0 unless otherwise
// noted.
const (
	NewSubfileType              uint16 = 0x0FE
	SubfileType                 uint16 = 0x0FF
	ImageWidth                  uint16 = 0x100
	ImageLength                 uint16 = 0x101
	BitsPerSample               uint16 = 0x102
	Compression                 uint16 = 0x103
	PhotometricInterpretation   uint16 = 0x106
	Threshholding               uint16 = 0x107
	CellWidth                   uint16 = 0x108
	CellLength                  uint16 = 0x109
	FillOrder                   uint16 = 0x10A
	DocumentName                uint16 = 0x10D
	ImageDescription            uint16 = 0x10E
	Make                        uint16 = 0x10F
	Model                       uint16 = 0x110
	StripOffsets                uint16 = 0x111
	Orientation                 uint16 = 0x112
	SamplesPerPixel             uint16 = 0x115
	RowsPerStrip                uint16 = 0x116
	StripByteCounts             uint16 = 0x117
	MinSampleValue              uint16 = 0x118
	MaxSampleValue              uint16 = 0x119
	XResolution                 uint16 = 0x11A
	YResolution                 uint16 = 0x11B
	PlanarConfiguration         uint16 = 0x11C
	PageName                    uint16 = 0x11D
	XPosition                   uint16 = 0x11E
	YPosition                   uint16 = 0x11F
	FreeOffsets                 uint16 = 0x120
	FreeByteCounts              uint16 = 0x121
	GrayResponseUnit            uint16 = 0x122
	GrayResponseCurve           uint16 = 0x123
	T4Options                   uint16 = 0x124
	T6Options                   uint16 = 0x125
	ResolutionUnit              uint16 = 0x128
	PageNumber                  uint16 = 0x129
	TransferFunction            uint16 = 0x12D
	Software                    uint16 = 0x131
	DateTime                    uint16 = 0x132
	Artist                      uint16 = 0x13B
	HostComputer                uint16 = 0x13C
	Predictor                   uint16 = 0x13D
	WhitePoint                  uint16 = 0x13E
	PrimaryChromaticities       uint16 = 0x13F
	ColorMap                    uint16 = 0x140
	HalftoneHints               uint16 = 0x141
	TileWidth                   uint16 = 0x142
	TileLength                  uint16 = 0x143
	TileOffsets                 uint16 = 0x144
	TileByteCounts              uint16 = 0x145
	BadFaxLines                 uint16 = 0x146 // TIFF F (RFC 2306)
	CleanFaxData                uint16 = 0x147 // TIFF F (RFC 2306)
	ConsecutiveBadFaxLines      uint16 = 0x148 // TIFF F (RFC 2306)
	SubIFDs                     uint16 = 0x14A // Supplement 1
	InkSet                      uint16 = 0x14C
	InkNames                    uint16 = 0x14D
	NumberOfInks                uint16 = 0x14E
	DotRange                    uint16 = 0x150
	TargetPrinter               uint16 = 0x151
	ExtraSamples                uint16 = 0x152
	SampleFormat                uint16 = 0x153
	SMinSampleValue             uint16 = 0x154
	SMaxSampleValue             uint16 = 0x155
	TransferRange               uint16 = 0x156
	ClipPath                    uint16 = 0x157 // Supplement 1
	XClipPathUnits              uint16 = 0x158 // Supplement 1
	YClipPathUnits              uint16 = 0x159 // Supplement 1
	Indexed                     uint16 = 0x15A // Supplement 1
	JPEGTables                  uint16 = 0x15B // Supplement 2
	OPIProxy                    uint16 = 0x15F // Supplement 1
	GlobalParametersIFD         uint16 = 0x190 // TIFF-FX (RFC 2301)
	ProfileType                 uint16 = 0x191 // TIFF-FX
	FaxProfile                  uint16 = 0x192 // TIFF-FX
	CodingMethods               uint16 = 0x193 // TIFF-FX
	VersionYear                 uint16 = 0x194 // TIFF-FX
	ModeNumber                  uint16 = 0x195 // TIFF-FX
	Decode                      uint16 = 0x1B1 // TIFF-FX
	DefaultImageColor           uint16 = 0x1B2 // TIFF-FX
	JPEGProc                    uint16 = 0x200
	JPEGInterchangeFormat       uint16 = 0x201
	JPEGInterchangeFormatLength uint16 = 0x202
	JPEGRestartInterval         uint16 = 0x203
	JPEGLosslessPredictors      uint16 = 0x205
	JPEGPointTransforms         uint16 = 0x206
	JPEGQTables                 uint16 = 0x207
	JPEGDCTables                uint16 = 0x208
	JPEGACTables                uint16 = 0x209
	YCbCrCoefficients           uint16 = 0x211
	YCbCrSubSampling            uint16 = 0x212
	YCbCrPositioning            uint16 = 0x213
	ReferenceBlackWhite         uint16 = 0x214
	StripRowCounts              uint16 = 0x22F // TIFF-FX
	XMP                         uint16 = 0x2BC // XMP part 3
	ImageID                     uint16 = 0x800 // Supplement 1
	Copyright                   uint16 = 0x8298
	ModelPixelScaleTag          uint16 = 0x830E // GeoTIFF
	IPTC                        uint16 = 0x83BB // Mentioned in XMP part 3
	ModelTiepointTag            uint16 = 0x8482 // GeoTIFF
	ModelTransformationTag      uint16 = 0x85D8 // GeoTIFF
	PSIR                        uint16 = 0x8649 // Photoshop Image Resources
	ExifIFD                     uint16 = 0x8769 // Exif 2.3
	ICCProfile                  uint16 = 0x8773 // ICC.1:2003-09
	ImageLayer                  uint16 = 0x87AC // TIFF-FX
	GeoKeyDirectoryTag          uint16 = 0x87AF // GeoTIFF
	GeoDoubleParamsTag          uint16 = 0x87B0 // GeoTIFF
	GeoAsciiParamsTag           uint16 = 0x87B1 // GeoTIFF
	GPSIFD                      uint16 = 0x8825 // Exif 2.3
	ImageSourceData             uint16 = 0x935C // Supplement 2

	// TIFF/EP (ISO 12234-2) tags also used by DNG.
	CFARepeatPatternDim      uint16 = 0x828D
	CFAPattern               uint16 = 0x828E
	BatteryLevel             uint16 = 0x828F
	ExposureTime             uint16 = 0x829A
	FNumber                  uint16 = 0x829D
	ISOSpeedRatings          uint16 = 0x8827
	Interlace                uint16 = 0x8829
	TimeZoneOffset           uint16 = 0x882A
	SelfTimerMode            uint16 = 0x882B
	DateTimeOriginal         uint16 = 0x9003
	CompressedBitsPerPixel   uint16 = 0x9102
	ShutterSpeedValue        uint16 = 0x9201
	ApertureValue            uint16 = 0x9202
	BrightnessValue          uint16 = 0x9203
	ExposureBiasValue        uint16 = 0x9204
	MaxApertureValue         uint16 = 0x9205
	SubjectDistance          uint16 = 0x9206
	MeteringMode             uint16 = 0x9207
	LightSource              uint16 = 0x9208
	Flash                    uint16 = 0x9209
	FocalLength              uint16 = 0x920A
	FlashEnergy              uint16 = 0x920B
	SpatialFrequencyResponse uint16 = 0x920C
	Noise                    uint16 = 0x920D
	FocalPlaneXResolution    uint16 = 0x920E
	FocalPlaneYResolution    uint16 = 0x920F
	FocalPlaneResolutionUnit uint16 = 0x9210
	ImageNumber              uint16 = 0x9211
	SecurityClassification   uint16 = 0x9212
	ImageHistory             uint16 = 0x9213
	SubjectLocation          uint16 = 0x9214
	ExposureIndex            uint16 = 0x9215
	TIFFEPStandardID         uint16 = 0x9216
	SensingMethod            uint16 = 0x9217

	// TIFF/IT (ISO 12639) tags.
	Site                     uint16 = 0x84E0
	ColorSequence            uint16 = 0x84E1
	IT8Header                uint16 = 0x84E2
	RasterPadding            uint16 = 0x84E3
	BitsPerRunLength         uint16 = 0x84E4
	BitsPerExtendedRunLength uint16 = 0x84E5
	ColorTable               uint16 = 0x84E6
	ImageColorIndicator      uint16 = 0x84E7
	BackgroundColorIndicator uint16 = 0x84E8
	ImageColorValue          uint16 = 0x84E9
	BackgroundColorValue     uint16 = 0x84EA
	PixelIntensityRange      uint16 = 0x84EB
	TransparencyIndicator    uint16 = 0x84EC
	ColorCharacterization    uint16 = 0x84ED
	HCUsage                  uint16 = 0x84EE

	// DNG 1.x tags.
	DNGVersion              uint16 = 0xC612
	DNGBackwardVersion      uint16 = 0xC613
	UniqueCameraModel       uint16 = 0xC614
	LocalizedCameraModel    uint16 = 0xC615
	CFAPlaneColor           uint16 = 0xC616
	CFALayout               uint16 = 0xC617
	LinearizationTable      uint16 = 0xC618
	BlackLevelRepeatDim     uint16 = 0xC619
	BlackLevel              uint16 = 0xC61A
	BlackLevelDeltaH        uint16 = 0xC61B
	BlackLevelDeltaV        uint16 = 0xC61C
	WhiteLevel              uint16 = 0xC61D
	DefaultScale            uint16 = 0xC61E
	DefaultCropOrigin       uint16 = 0xC61F
	DefaultCropSize         uint16 = 0xC620
	ColorMatrix1            uint16 = 0xC621
	ColorMatrix2            uint16 = 0xC622
	CameraCalibration1      uint16 = 0xC623
	CameraCalibration2      uint16 = 0xC624
	ReductionMatrix1        uint16 = 0xC625
	ReductionMatrix2        uint16 = 0xC626
	AnalogBalance           uint16 = 0xC627
	AsShotNeutral           uint16 = 0xC628
	AsShotWhiteXY           uint16 = 0xC629
	BaselineExposure        uint16 = 0xC62A
	BaselineNoise           uint16 = 0xC62B
	BaselineSharpness       uint16 = 0xC62C
	BayerGreenSplit         uint16 = 0xC62D
	LinearResponseLimit     uint16 = 0xC62E
	CameraSerialNumber      uint16 = 0xC62F
	LensInfo                uint16 = 0xC630
	ChromaBlurRadius        uint16 = 0xC631
	AntiAliasStrength       uint16 = 0xC632
	ShadowScale             uint16 = 0xC633
	DNGPrivateData          uint16 = 0xC634
	MakerNoteSafety         uint16 = 0xC635
	CalibrationIlluminant1  uint16 = 0xC65A
	CalibrationIlluminant2  uint16 = 0xC65B
	BestQualityScale        uint16 = 0xC65C
	RawDataUniqueID         uint16 = 0xC65D
	OriginalRawFileName     uint16 = 0xC68B
	OriginalRawFileData     uint16 = 0xC68C
	ActiveArea              uint16 = 0xC68D
	MaskedAreas             uint16 = 0xC68E
	AsShotICCProfile        uint16 = 0xC68F
	AsShotPreProfileMatrix  uint16 = 0xC690
	CurrentICCProfile       uint16 = 0xC691
	CurrentPreProfileMatrix uint16 = 0xC692
)

// Exif IFD tags (tags shared with TIFF/EP keep the constants above).
const (
	ExposureProgram              uint16 = 0x8822
	SpectralSensitivity          uint16 = 0x8824
	OECF                         uint16 = 0x8828
	ExifVersion                  uint16 = 0x9000
	DateTimeDigitized            uint16 = 0x9004
	ComponentsConfiguration      uint16 = 0x9101
	SubjectArea                  uint16 = 0x9214
	MakerNote                    uint16 = 0x927C
	UserComment                  uint16 = 0x9286
	SubsecTime                   uint16 = 0x9290
	SubsecTimeOriginal           uint16 = 0x9291
	SubsecTimeDigitized          uint16 = 0x9292
	FlashpixVersion              uint16 = 0xA000
	ColorSpace                   uint16 = 0xA001
	PixelXDimension              uint16 = 0xA002
	PixelYDimension              uint16 = 0xA003
	RelatedSoundFile             uint16 = 0xA004
	InteroperabilityIFD          uint16 = 0xA005
	ExifFlashEnergy              uint16 = 0xA20B
	ExifSpatialFrequencyResponse uint16 = 0xA20C
	ExifFocalPlaneXResolution    uint16 = 0xA20E
	ExifFocalPlaneYResolution    uint16 = 0xA20F
	ExifFocalPlaneResolutionUnit uint16 = 0xA210
	ExifSubjectLocation          uint16 = 0xA214
	ExifExposureIndex            uint16 = 0xA215
	ExifSensingMethod            uint16 = 0xA217
	FileSource                   uint16 = 0xA300
	SceneType                    uint16 = 0xA301
	ExifCFAPattern               uint16 = 0xA302
	CustomRendered               uint16 = 0xA401
	ExposureMode                 uint16 = 0xA402
	WhiteBalance                 uint16 = 0xA403
	DigitalZoomRatio             uint16 = 0xA404
	FocalLengthIn35mmFilm        uint16 = 0xA405
	SceneCaptureType             uint16 = 0xA406
	GainControl                  uint16 = 0xA407
	Contrast                     uint16 = 0xA408
	Saturation                   uint16 = 0xA409
	Sharpness                    uint16 = 0xA40A
	DeviceSettingDescription     uint16 = 0xA40B
	SubjectDistanceRange         uint16 = 0xA40C
	ImageUniqueID                uint16 = 0xA420
)

// GPS Info IFD tags.
const (
	GPSVersionID        uint16 = 0x00
	GPSLatitudeRef      uint16 = 0x01
	GPSLatitude         uint16 = 0x02
	GPSLongitudeRef     uint16 = 0x03
	GPSLongitude        uint16 = 0x04
	GPSAltitudeRef      uint16 = 0x05
	GPSAltitude         uint16 = 0x06
	GPSTimeStamp        uint16 = 0x07
	GPSSatellites       uint16 = 0x08
	GPSStatus           uint16 = 0x09
	GPSMeasureMode      uint16 = 0x0A
	GPSDOP              uint16 = 0x0B
	GPSSpeedRef         uint16 = 0x0C
	GPSSpeed            uint16 = 0x0D
	GPSTrackRef         uint16 = 0x0E
	GPSTrack            uint16 = 0x0F
	GPSImgDirectionRef  uint16 = 0x10
	GPSImgDirection     uint16 = 0x11
	GPSMapDatum         uint16 = 0x12
	GPSDestLatitudeRef  uint16 = 0x13
	GPSDestLatitude     uint16 = 0x14
	GPSDestLongitudeRef uint16 = 0x15
	GPSDestLongitude    uint16 = 0x16
	GPSDestBearingRef   uint16 = 0x17
	GPSDestBearing      uint16 = 0x18
	GPSDestDistanceRef  uint16 = 0x19
	GPSDestDistance     uint16 = 0x1A
	GPSProcessingMethod uint16 = 0x1B
	GPSAreaInformation  uint16 = 0x1C
	GPSDateStamp        uint16 = 0x1D
	GPSDifferential     uint16 = 0x1E
)

// Interoperability IFD tags.
const (
	InteroperabilityIndex   uint16 = 0x01
	InteroperabilityVersion uint16 = 0x02
	RelatedImageFileFormat  uint16 = 0x1000
	RelatedImageWidth       uint16 = 0x1001
	RelatedImageLength      uint16 = 0x1002
)

// Name returns the display name of a tag in the given space, falling back
// to the decimal tag number when the tag is unrecognized.
func Name(space Space, tag uint16) string {
	var name string
	var ok bool
	switch space {
	case Exif:
		name, ok = exifNames[tag]
	case GPS:
		name, ok = gpsNames[tag]
	case Interop:
		name, ok = interopNames[tag]
	case GlobalParameters:
		name, ok = globalParametersNames[tag]
	}
	if !ok {
		name, ok = tiffNames[tag]
	}
	if !ok {
		return strconv.Itoa(int(tag))
	}
	return name
}

// Known reports whether the tag has a name in the given space.
func Known(space Space, tag uint16) bool {
	switch space {
	case Exif:
		if _, ok := exifNames[tag]; ok {
			return true
		}
	case GPS:
		_, ok := gpsNames[tag]
		return ok
	case Interop:
		_, ok := interopNames[tag]
		return ok
	case GlobalParameters:
		if _, ok := globalParametersNames[tag]; ok {
			return true
		}
	}
	_, ok := tiffNames[tag]
	return ok
}
