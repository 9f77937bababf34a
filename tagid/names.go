package tagid

// Display names for the tags listed in tagid.go.
var tiffNames = map[uint16]string{
	NewSubfileType:              "NewSubfileType",
	SubfileType:                 "SubfileType",
	ImageWidth:                  "ImageWidth",
	ImageLength:                 "ImageLength",
	BitsPerSample:               "BitsPerSample",
	Compression:                 "Compression",
	PhotometricInterpretation:   "PhotometricInterpretation",
	Threshholding:               "Threshholding",
	CellWidth:                   "CellWidth",
	CellLength:                  "CellLength",
	FillOrder:                   "FillOrder",
	DocumentName:                "DocumentName",
	ImageDescription:            "ImageDescription",
	Make:                        "Make",
	Model:                       "Model",
	StripOffsets:                "StripOffsets",
	Orientation:                 "Orientation",
	SamplesPerPixel:             "SamplesPerPixel",
	RowsPerStrip:                "RowsPerStrip",
	StripByteCounts:             "StripByteCounts",
	MinSampleValue:              "MinSampleValue",
	MaxSampleValue:              "MaxSampleValue",
	XResolution:                 "XResolution",
	YResolution:                 "YResolution",
	PlanarConfiguration:         "PlanarConfiguration",
	PageName:                    "PageName",
	XPosition:                   "XPosition",
	YPosition:                   "YPosition",
	FreeOffsets:                 "FreeOffsets",
	FreeByteCounts:              "FreeByteCounts",
	GrayResponseUnit:            "GrayResponseUnit",
	GrayResponseCurve:           "GrayResponseCurve",
	T4Options:                   "T4Options",
	T6Options:                   "T6Options",
	ResolutionUnit:              "ResolutionUnit",
	PageNumber:                  "PageNumber",
	TransferFunction:            "TransferFunction",
	Software:                    "Software",
	DateTime:                    "DateTime",
	Artist:                      "Artist",
	HostComputer:                "HostComputer",
	Predictor:                   "Predictor",
	WhitePoint:                  "WhitePoint",
	PrimaryChromaticities:       "PrimaryChromaticities",
	ColorMap:                    "ColorMap",
	HalftoneHints:               "HalftoneHints",
	TileWidth:                   "TileWidth",
	TileLength:                  "TileLength",
	TileOffsets:                 "TileOffsets",
	TileByteCounts:              "TileByteCounts",
	BadFaxLines:                 "BadFaxLines",
	CleanFaxData:                "CleanFaxData",
	ConsecutiveBadFaxLines:      "ConsecutiveBadFaxLines",
	SubIFDs:                     "SubIFDs",
	InkSet:                      "InkSet",
	InkNames:                    "InkNames",
	NumberOfInks:                "NumberOfInks",
	DotRange:                    "DotRange",
	TargetPrinter:               "TargetPrinter",
	ExtraSamples:                "ExtraSamples",
	SampleFormat:                "SampleFormat",
	SMinSampleValue:             "SMinSampleValue",
	SMaxSampleValue:             "SMaxSampleValue",
	TransferRange:               "TransferRange",
	ClipPath:                    "ClipPath",
	XClipPathUnits:              "XClipPathUnits",
	YClipPathUnits:              "YClipPathUnits",
	Indexed:                     "Indexed",
	JPEGTables:                  "JPEGTables",
	OPIProxy:                    "OPIProxy",
	GlobalParametersIFD:         "GlobalParametersIFD",
	ProfileType:                 "ProfileType",
	FaxProfile:                  "FaxProfile",
	CodingMethods:               "CodingMethods",
	VersionYear:                 "VersionYear",
	ModeNumber:                  "ModeNumber",
	Decode:                      "Decode",
	DefaultImageColor:           "DefaultImageColor",
	JPEGProc:                    "JPEGProc",
	JPEGInterchangeFormat:       "JPEGInterchangeFormat",
	JPEGInterchangeFormatLength: "JPEGInterchangeFormatLength",
	JPEGRestartInterval:         "JPEGRestartInterval",
	JPEGLosslessPredictors:      "JPEGLosslessPredictors",
	JPEGPointTransforms:         "JPEGPointTransforms",
	JPEGQTables:                 "JPEGQTables",
	JPEGDCTables:                "JPEGDCTables",
	JPEGACTables:                "JPEGACTables",
	YCbCrCoefficients:           "YCbCrCoefficients",
	YCbCrSubSampling:            "YCbCrSubSampling",
	YCbCrPositioning:            "YCbCrPositioning",
	ReferenceBlackWhite:         "ReferenceBlackWhite",
	StripRowCounts:              "StripRowCounts",
	XMP:                         "XMP",
	ImageID:                     "ImageID",
	Copyright:                   "Copyright",
	ModelPixelScaleTag:          "ModelPixelScaleTag",
	IPTC:                        "IPTC",
	ModelTiepointTag:            "ModelTiepointTag",
	ModelTransformationTag:      "ModelTransformationTag",
	PSIR:                        "PSIR",
	ExifIFD:                     "ExifIFD",
	ICCProfile:                  "ICCProfile",
	ImageLayer:                  "ImageLayer",
	GeoKeyDirectoryTag:          "GeoKeyDirectoryTag",
	GeoDoubleParamsTag:          "GeoDoubleParamsTag",
	GeoAsciiParamsTag:           "GeoAsciiParamsTag",
	GPSIFD:                      "GPSIFD",
	ImageSourceData:             "ImageSourceData",

	CFARepeatPatternDim:      "CFARepeatPatternDim",
	CFAPattern:               "CFAPattern",
	BatteryLevel:             "BatteryLevel",
	ExposureTime:             "ExposureTime",
	FNumber:                  "FNumber",
	ISOSpeedRatings:          "ISOSpeedRatings",
	Interlace:                "Interlace",
	TimeZoneOffset:           "TimeZoneOffset",
	SelfTimerMode:            "SelfTimerMode",
	DateTimeOriginal:         "DateTimeOriginal",
	CompressedBitsPerPixel:   "CompressedBitsPerPixel",
	ShutterSpeedValue:        "ShutterSpeedValue",
	ApertureValue:            "ApertureValue",
	BrightnessValue:          "BrightnessValue",
	ExposureBiasValue:        "ExposureBiasValue",
	MaxApertureValue:         "MaxApertureValue",
	SubjectDistance:          "SubjectDistance",
	MeteringMode:             "MeteringMode",
	LightSource:              "LightSource",
	Flash:                    "Flash",
	FocalLength:              "FocalLength",
	FlashEnergy:              "FlashEnergy",
	SpatialFrequencyResponse: "SpatialFrequencyResponse",
	Noise:                    "Noise",
	FocalPlaneXResolution:    "FocalPlaneXResolution",
	FocalPlaneYResolution:    "FocalPlaneYResolution",
	FocalPlaneResolutionUnit: "FocalPlaneResolutionUnit",
	ImageNumber:              "ImageNumber",
	SecurityClassification:   "SecurityClassification",
	ImageHistory:             "ImageHistory",
	SubjectLocation:          "SubjectLocation",
	ExposureIndex:            "ExposureIndex",
	TIFFEPStandardID:         "TIFFEPStandardID",
	SensingMethod:            "SensingMethod",

	Site:                     "Site",
	ColorSequence:            "ColorSequence",
	IT8Header:                "IT8Header",
	RasterPadding:            "RasterPadding",
	BitsPerRunLength:         "BitsPerRunLength",
	BitsPerExtendedRunLength: "BitsPerExtendedRunLength",
	ColorTable:               "ColorTable",
	ImageColorIndicator:      "ImageColorIndicator",
	BackgroundColorIndicator: "BackgroundColorIndicator",
	ImageColorValue:          "ImageColorValue",
	BackgroundColorValue:     "BackgroundColorValue",
	PixelIntensityRange:      "PixelIntensityRange",
	TransparencyIndicator:    "TransparencyIndicator",
	ColorCharacterization:    "ColorCharacterization",
	HCUsage:                  "HCUsage",

	DNGVersion:              "DNGVersion",
	DNGBackwardVersion:      "DNGBackwardVersion",
	UniqueCameraModel:       "UniqueCameraModel",
	LocalizedCameraModel:    "LocalizedCameraModel",
	CFAPlaneColor:           "CFAPlaneColor",
	CFALayout:               "CFALayout",
	LinearizationTable:      "LinearizationTable",
	BlackLevelRepeatDim:     "BlackLevelRepeatDim",
	BlackLevel:              "BlackLevel",
	BlackLevelDeltaH:        "BlackLevelDeltaH",
	BlackLevelDeltaV:        "BlackLevelDeltaV",
	WhiteLevel:              "WhiteLevel",
	DefaultScale:            "DefaultScale",
	DefaultCropOrigin:       "DefaultCropOrigin",
	DefaultCropSize:         "DefaultCropSize",
	ColorMatrix1:            "ColorMatrix1",
	ColorMatrix2:            "ColorMatrix2",
	CameraCalibration1:      "CameraCalibration1",
	CameraCalibration2:      "CameraCalibration2",
	ReductionMatrix1:        "ReductionMatrix1",
	ReductionMatrix2:        "ReductionMatrix2",
	AnalogBalance:           "AnalogBalance",
	AsShotNeutral:           "AsShotNeutral",
	AsShotWhiteXY:           "AsShotWhiteXY",
	BaselineExposure:        "BaselineExposure",
	BaselineNoise:           "BaselineNoise",
	BaselineSharpness:       "BaselineSharpness",
	BayerGreenSplit:         "BayerGreenSplit",
	LinearResponseLimit:     "LinearResponseLimit",
	CameraSerialNumber:      "CameraSerialNumber",
	LensInfo:                "LensInfo",
	ChromaBlurRadius:        "ChromaBlurRadius",
	AntiAliasStrength:       "AntiAliasStrength",
	ShadowScale:             "ShadowScale",
	DNGPrivateData:          "DNGPrivateData",
	MakerNoteSafety:         "MakerNoteSafety",
	CalibrationIlluminant1:  "CalibrationIlluminant1",
	CalibrationIlluminant2:  "CalibrationIlluminant2",
	BestQualityScale:        "BestQualityScale",
	RawDataUniqueID:         "RawDataUniqueID",
	OriginalRawFileName:     "OriginalRawFileName",
	OriginalRawFileData:     "OriginalRawFileData",
	ActiveArea:              "ActiveArea",
	MaskedAreas:             "MaskedAreas",
	AsShotICCProfile:        "AsShotICCProfile",
	AsShotPreProfileMatrix:  "AsShotPreProfileMatrix",
	CurrentICCProfile:       "CurrentICCProfile",
	CurrentPreProfileMatrix: "CurrentPreProfileMatrix",
}

var exifNames = map[uint16]string{
	ExposureTime:                 "ExposureTime",
	FNumber:                      "FNumber",
	ExposureProgram:              "ExposureProgram",
	SpectralSensitivity:          "SpectralSensitivity",
	ISOSpeedRatings:              "ISOSpeedRatings",
	OECF:                         "OECF",
	ExifVersion:                  "ExifVersion",
	DateTimeOriginal:             "DateTimeOriginal",
	DateTimeDigitized:            "DateTimeDigitized",
	ComponentsConfiguration:      "ComponentsConfiguration",
	CompressedBitsPerPixel:       "CompressedBitsPerPixel",
	ShutterSpeedValue:            "ShutterSpeedValue",
	ApertureValue:                "ApertureValue",
	BrightnessValue:              "BrightnessValue",
	ExposureBiasValue:            "ExposureBiasValue",
	MaxApertureValue:             "MaxApertureValue",
	SubjectDistance:              "SubjectDistance",
	MeteringMode:                 "MeteringMode",
	LightSource:                  "LightSource",
	Flash:                        "Flash",
	FocalLength:                  "FocalLength",
	SubjectArea:                  "SubjectArea",
	MakerNote:                    "MakerNote",
	UserComment:                  "UserComment",
	SubsecTime:                   "SubsecTime",
	SubsecTimeOriginal:           "SubsecTimeOriginal",
	SubsecTimeDigitized:          "SubsecTimeDigitized",
	FlashpixVersion:              "FlashpixVersion",
	ColorSpace:                   "ColorSpace",
	PixelXDimension:              "PixelXDimension",
	PixelYDimension:              "PixelYDimension",
	RelatedSoundFile:             "RelatedSoundFile",
	InteroperabilityIFD:          "InteroperabilityIFD",
	ExifFlashEnergy:              "FlashEnergy",
	ExifSpatialFrequencyResponse: "SpatialFrequencyResponse",
	ExifFocalPlaneXResolution:    "FocalPlaneXResolution",
	ExifFocalPlaneYResolution:    "FocalPlaneYResolution",
	ExifFocalPlaneResolutionUnit: "FocalPlaneResolutionUnit",
	ExifSubjectLocation:          "SubjectLocation",
	ExifExposureIndex:            "ExposureIndex",
	ExifSensingMethod:            "SensingMethod",
	FileSource:                   "FileSource",
	SceneType:                    "SceneType",
	ExifCFAPattern:               "CFAPattern",
	CustomRendered:               "CustomRendered",
	ExposureMode:                 "ExposureMode",
	WhiteBalance:                 "WhiteBalance",
	DigitalZoomRatio:             "DigitalZoomRatio",
	FocalLengthIn35mmFilm:        "FocalLengthIn35mmFilm",
	SceneCaptureType:             "SceneCaptureType",
	GainControl:                  "GainControl",
	Contrast:                     "Contrast",
	Saturation:                   "Saturation",
	Sharpness:                    "Sharpness",
	DeviceSettingDescription:     "DeviceSettingDescription",
	SubjectDistanceRange:         "SubjectDistanceRange",
	ImageUniqueID:                "ImageUniqueID",
}

var gpsNames = map[uint16]string{
	GPSVersionID:        "GPSVersionID",
	GPSLatitudeRef:      "GPSLatitudeRef",
	GPSLatitude:         "GPSLatitude",
	GPSLongitudeRef:     "GPSLongitudeRef",
	GPSLongitude:        "GPSLongitude",
	GPSAltitudeRef:      "GPSAltitudeRef",
	GPSAltitude:         "GPSAltitude",
	GPSTimeStamp:        "GPSTimeStamp",
	GPSSatellites:       "GPSSatellites",
	GPSStatus:           "GPSStatus",
	GPSMeasureMode:      "GPSMeasureMode",
	GPSDOP:              "GPSDOP",
	GPSSpeedRef:         "GPSSpeedRef",
	GPSSpeed:            "GPSSpeed",
	GPSTrackRef:         "GPSTrackRef",
	GPSTrack:            "GPSTrack",
	GPSImgDirectionRef:  "GPSImgDirectionRef",
	GPSImgDirection:     "GPSImgDirection",
	GPSMapDatum:         "GPSMapDatum",
	GPSDestLatitudeRef:  "GPSDestLatitudeRef",
	GPSDestLatitude:     "GPSDestLatitude",
	GPSDestLongitudeRef: "GPSDestLongitudeRef",
	GPSDestLongitude:    "GPSDestLongitude",
	GPSDestBearingRef:   "GPSDestBearingRef",
	GPSDestBearing:      "GPSDestBearing",
	GPSDestDistanceRef:  "GPSDestDistanceRef",
	GPSDestDistance:     "GPSDestDistance",
	GPSProcessingMethod: "GPSProcessingMethod",
	GPSAreaInformation:  "GPSAreaInformation",
	GPSDateStamp:        "GPSDateStamp",
	GPSDifferential:     "GPSDifferential",
}

var interopNames = map[uint16]string{
	InteroperabilityIndex:   "InteroperabilityIndex",
	InteroperabilityVersion: "InteroperabilityVersion",
	RelatedImageFileFormat:  "RelatedImageFileFormat",
	RelatedImageWidth:       "RelatedImageWidth",
	RelatedImageLength:      "RelatedImageLength",
}

var globalParametersNames = map[uint16]string{
	ProfileType:       "ProfileType",
	FaxProfile:        "FaxProfile",
	CodingMethods:     "CodingMethods",
	VersionYear:       "VersionYear",
	ModeNumber:        "ModeNumber",
	Decode:            "Decode",
	DefaultImageColor: "DefaultImageColor",
}
