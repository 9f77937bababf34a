package tiffdir

import (
	"github.com/hmelik/tiffdir/rational"
	"github.com/hmelik/tiffdir/tagid"
)

// tiffTable is the contract for main-IFD tags: baseline TIFF 6.0, the
// Adobe supplements, TIFF-FX, TIFF/IT, TIFF/EP, GeoTIFF and DNG. This is
// the largest table; the private IFD tables in the sibling files follow
// the same shape.
var tiffTable = tagTable{
	tagid.NewSubfileType: {name: "NewSubfileType", types: []Type{LONG}, min: 1, ver: 5,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.NewSubfileType })},
	tagid.SubfileType: {name: "SubfileType", types: []Type{SHORT}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.SubfileType })},
	tagid.ImageWidth: {name: "ImageWidth", types: []Type{SHORT, LONG}, min: 1,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.Width })},
	tagid.ImageLength: {name: "ImageLength", types: []Type{SHORT, LONG}, min: 1,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.Length })},
	tagid.BitsPerSample: {name: "BitsPerSample", types: []Type{SHORT}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.BitsPerSample })},
	tagid.Compression: {name: "Compression", types: []Type{SHORT}, min: 1, exact: true,
		set: setCompression},
	tagid.PhotometricInterpretation: {name: "PhotometricInterpretation", types: []Type{SHORT}, min: 1, exact: true,
		set: setPhotometric},
	tagid.Threshholding: {name: "Threshholding", types: []Type{SHORT}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.Threshholding })},
	tagid.CellWidth:  {name: "CellWidth", types: []Type{SHORT}, min: 1, exact: true},
	tagid.CellLength: {name: "CellLength", types: []Type{SHORT}, min: 1, exact: true},
	tagid.FillOrder: {name: "FillOrder", types: []Type{SHORT}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.FillOrder })},
	tagid.DocumentName: {name: "DocumentName", types: []Type{ASCII},
		set: setString(func(d *Directory) *string { return &d.Meta.DocumentName })},
	tagid.ImageDescription: {name: "ImageDescription", types: []Type{ASCII},
		set: setString(func(d *Directory) *string { return &d.Meta.ImageDescription })},
	tagid.Make: {name: "Make", types: []Type{ASCII},
		set: setString(func(d *Directory) *string { return &d.Meta.Make })},
	tagid.Model: {name: "Model", types: []Type{ASCII},
		set: setString(func(d *Directory) *string { return &d.Meta.Model })},
	tagid.StripOffsets: {name: "StripOffsets", types: []Type{SHORT, LONG}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.StripOffsets })},
	tagid.Orientation: {name: "Orientation", types: []Type{SHORT}, min: 1, exact: true, ver: 5,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.Orientation })},
	tagid.SamplesPerPixel: {name: "SamplesPerPixel", types: []Type{SHORT}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.SamplesPerPixel })},
	tagid.RowsPerStrip: {name: "RowsPerStrip", types: []Type{SHORT, LONG}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.RowsPerStrip })},
	tagid.StripByteCounts: {name: "StripByteCounts", types: []Type{SHORT, LONG}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.StripByteCounts })},
	tagid.MinSampleValue: {name: "MinSampleValue", types: []Type{SHORT}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.MinSampleValue })},
	tagid.MaxSampleValue: {name: "MaxSampleValue", types: []Type{SHORT}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.MaxSampleValue })},
	tagid.XResolution: {name: "XResolution", types: []Type{RATIONAL}, min: 1, exact: true,
		set: setRat(func(d *Directory) **rational.R { return &d.Meta.XResolution })},
	tagid.YResolution: {name: "YResolution", types: []Type{RATIONAL}, min: 1, exact: true,
		set: setRat(func(d *Directory) **rational.R { return &d.Meta.YResolution })},
	tagid.PlanarConfiguration: {name: "PlanarConfiguration", types: []Type{SHORT}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.PlanarConfiguration })},
	tagid.PageName: {name: "PageName", types: []Type{ASCII},
		set: setString(func(d *Directory) *string { return &d.Meta.PageName })},
	tagid.XPosition: {name: "XPosition", types: []Type{RATIONAL}, min: 1, exact: true,
		set: setRat(func(d *Directory) **rational.R { return &d.Meta.XPosition })},
	tagid.YPosition: {name: "YPosition", types: []Type{RATIONAL}, min: 1, exact: true,
		set: setRat(func(d *Directory) **rational.R { return &d.Meta.YPosition })},
	tagid.FreeOffsets:    {name: "FreeOffsets", types: []Type{LONG}, min: 1},
	tagid.FreeByteCounts: {name: "FreeByteCounts", types: []Type{LONG}, min: 1},
	tagid.GrayResponseUnit: {name: "GrayResponseUnit", types: []Type{SHORT}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.GrayResponseUnit })},
	tagid.GrayResponseCurve: {name: "GrayResponseCurve", types: []Type{SHORT}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.GrayResponseCurve })},
	tagid.T4Options:      {name: "T4Options", types: []Type{LONG}, min: 1, exact: true},
	tagid.T6Options:      {name: "T6Options", types: []Type{LONG}, min: 1, exact: true},
	tagid.ResolutionUnit: {name: "ResolutionUnit", types: []Type{SHORT}, min: 1, exact: true,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.ResolutionUnit })},
	tagid.PageNumber: {name: "PageNumber", types: []Type{SHORT}, min: 2, exact: true},
	tagid.TransferFunction: {name: "TransferFunction", types: []Type{SHORT}, min: 1, ver: 6,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.TransferFunction })},
	tagid.Software: {name: "Software", types: []Type{ASCII},
		set: setString(func(d *Directory) *string { return &d.Meta.Software })},
	tagid.DateTime: {name: "DateTime", types: []Type{ASCII},
		set: setString(func(d *Directory) *string { return &d.Meta.DateTime })},
	tagid.Artist: {name: "Artist", types: []Type{ASCII}, ver: 5,
		set: setString(func(d *Directory) *string { return &d.Meta.Artist })},
	tagid.HostComputer: {name: "HostComputer", types: []Type{ASCII}, ver: 5,
		set: setString(func(d *Directory) *string { return &d.Meta.HostComputer })},
	tagid.Predictor: {name: "Predictor", types: []Type{SHORT}, min: 1, exact: true, ver: 5,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.Predictor })},
	tagid.WhitePoint: {name: "WhitePoint", types: []Type{RATIONAL}, min: 2, exact: true, ver: 5,
		set: setRats(func(d *Directory) *[]rational.R { return &d.Meta.WhitePoint })},
	tagid.PrimaryChromaticities: {name: "PrimaryChromaticities", types: []Type{RATIONAL}, min: 6, exact: true, ver: 5,
		set: setRats(func(d *Directory) *[]rational.R { return &d.Meta.PrimaryChromaticities })},
	tagid.ColorMap: {name: "ColorMap", types: []Type{SHORT}, min: 1, ver: 5,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.ColorMap })},
	tagid.HalftoneHints: {name: "HalftoneHints", types: []Type{SHORT}, min: 2, exact: true, ver: 6},
	tagid.TileWidth: {name: "TileWidth", types: []Type{SHORT, LONG}, min: 1, exact: true, ver: 6,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.TileWidth })},
	tagid.TileLength: {name: "TileLength", types: []Type{SHORT, LONG}, min: 1, exact: true, ver: 6,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.TileLength })},
	tagid.TileOffsets: {name: "TileOffsets", types: []Type{LONG}, min: 1, ver: 6,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.TileOffsets })},
	tagid.TileByteCounts: {name: "TileByteCounts", types: []Type{SHORT, LONG}, min: 1, ver: 6,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.TileByteCounts })},
	tagid.BadFaxLines:            {name: "BadFaxLines", types: []Type{SHORT, LONG}, min: 1, exact: true},
	tagid.CleanFaxData:           {name: "CleanFaxData", types: []Type{SHORT}, min: 1, exact: true},
	tagid.ConsecutiveBadFaxLines: {name: "ConsecutiveBadFaxLines", types: []Type{SHORT, LONG}, min: 1, exact: true},
	tagid.SubIFDs: {name: "SubIFDs", types: []Type{LONG, IFD}, min: 1,
		set: func(d *Directory, f Field) error {
			d.SubIFDOffsets = f.Ints()
			return nil
		}},
	tagid.InkSet:       {name: "InkSet", types: []Type{SHORT}, min: 1, exact: true, ver: 6},
	tagid.InkNames:     {name: "InkNames", types: []Type{ASCII}, ver: 6},
	tagid.NumberOfInks: {name: "NumberOfInks", types: []Type{SHORT}, min: 1, exact: true, ver: 6},
	tagid.DotRange:     {name: "DotRange", types: []Type{BYTE, SHORT}, min: 2, ver: 6},
	tagid.TargetPrinter: {name: "TargetPrinter", types: []Type{ASCII}, ver: 6},
	tagid.ExtraSamples: {name: "ExtraSamples", types: []Type{SHORT}, min: 1, ver: 6,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.ExtraSamples })},
	tagid.SampleFormat: {name: "SampleFormat", types: []Type{SHORT}, min: 1, ver: 6,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.SampleFormat })},
	tagid.SMinSampleValue: {name: "SMinSampleValue", min: 1, ver: 6},
	tagid.SMaxSampleValue: {name: "SMaxSampleValue", min: 1, ver: 6},
	tagid.TransferRange:   {name: "TransferRange", types: []Type{SHORT}, min: 6, exact: true, ver: 6},
	tagid.ClipPath:        {name: "ClipPath", types: []Type{BYTE}, min: 1},
	tagid.XClipPathUnits:  {name: "XClipPathUnits", types: []Type{LONG, SLONG}, min: 1, exact: true},
	tagid.YClipPathUnits:  {name: "YClipPathUnits", types: []Type{LONG, SLONG}, min: 1, exact: true},
	tagid.Indexed:         {name: "Indexed", types: []Type{SHORT}, min: 1, exact: true},
	tagid.JPEGTables:      {name: "JPEGTables", types: []Type{UNDEFINED}, min: 1},
	tagid.OPIProxy:        {name: "OPIProxy", types: []Type{SHORT}, min: 1, exact: true},
	tagid.GlobalParametersIFD: {name: "GlobalParametersIFD", types: []Type{LONG, IFD}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.GlobalParametersOffset = f.Int(0)
			return nil
		}},
	tagid.Decode:            {name: "Decode", types: []Type{SRATIONAL}, min: 1},
	tagid.DefaultImageColor: {name: "DefaultImageColor", types: []Type{SHORT}, min: 1},
	tagid.JPEGProc: {name: "JPEGProc", types: []Type{SHORT}, min: 1, exact: true, ver: 6,
		set: func(d *Directory, f Field) error {
			d.infof("JPEGProc: deprecated JPEG-in-TIFF encoding")
			return nil
		}},
	tagid.JPEGInterchangeFormat:       {name: "JPEGInterchangeFormat", types: []Type{LONG}, min: 1, exact: true, ver: 6},
	tagid.JPEGInterchangeFormatLength: {name: "JPEGInterchangeFormatLength", types: []Type{LONG}, min: 1, exact: true, ver: 6},
	tagid.JPEGRestartInterval:         {name: "JPEGRestartInterval", types: []Type{SHORT}, min: 1, exact: true, ver: 6},
	tagid.JPEGLosslessPredictors:      {name: "JPEGLosslessPredictors", types: []Type{SHORT}, min: 1, ver: 6},
	tagid.JPEGPointTransforms:         {name: "JPEGPointTransforms", types: []Type{SHORT}, min: 1, ver: 6},
	tagid.JPEGQTables:                 {name: "JPEGQTables", types: []Type{LONG}, min: 1, ver: 6},
	tagid.JPEGDCTables:                {name: "JPEGDCTables", types: []Type{LONG}, min: 1, ver: 6},
	tagid.JPEGACTables:                {name: "JPEGACTables", types: []Type{LONG}, min: 1, ver: 6},
	tagid.YCbCrCoefficients: {name: "YCbCrCoefficients", types: []Type{RATIONAL}, min: 3, exact: true, ver: 6,
		set: setRats(func(d *Directory) *[]rational.R { return &d.Meta.YCbCrCoefficients })},
	tagid.YCbCrSubSampling: {name: "YCbCrSubSampling", types: []Type{SHORT}, min: 2, exact: true, ver: 6,
		set: setInts(func(d *Directory) *[]int64 { return &d.Meta.YCbCrSubSampling })},
	tagid.YCbCrPositioning: {name: "YCbCrPositioning", types: []Type{SHORT}, min: 1, exact: true, ver: 6,
		set: setInt(func(d *Directory) *int64 { return &d.Meta.YCbCrPositioning })},
	tagid.ReferenceBlackWhite: {name: "ReferenceBlackWhite", types: []Type{RATIONAL}, min: 6, exact: true, ver: 6,
		set: setRats(func(d *Directory) *[]rational.R { return &d.Meta.ReferenceBlackWhite })},
	tagid.StripRowCounts: {name: "StripRowCounts", types: []Type{LONG}, min: 1},
	tagid.ImageLayer:     {name: "ImageLayer", types: []Type{SHORT, LONG}, min: 2, exact: true},
	tagid.XMP:            {name: "XMP", types: []Type{BYTE, UNDEFINED}, min: 1},
	tagid.ImageID:        {name: "ImageID", types: []Type{ASCII}},
	tagid.Copyright: {name: "Copyright", types: []Type{ASCII}, ver: 6,
		set: setString(func(d *Directory) *string { return &d.Meta.Copyright })},

	// GeoTIFF.
	tagid.ModelPixelScaleTag:     {name: "ModelPixelScaleTag", types: []Type{DOUBLE}, min: 3, exact: true},
	tagid.ModelTiepointTag:       {name: "ModelTiepointTag", types: []Type{DOUBLE}, min: 6},
	tagid.ModelTransformationTag: {name: "ModelTransformationTag", types: []Type{DOUBLE}, min: 16, exact: true},
	tagid.GeoKeyDirectoryTag:     {name: "GeoKeyDirectoryTag", types: []Type{SHORT}, min: 4},
	tagid.GeoDoubleParamsTag:     {name: "GeoDoubleParamsTag", types: []Type{DOUBLE}, min: 1},
	tagid.GeoAsciiParamsTag:      {name: "GeoAsciiParamsTag", types: []Type{ASCII}},

	// Embedded metadata blobs.
	tagid.IPTC:            {name: "IPTC", min: 1},
	tagid.PSIR:            {name: "PSIR", types: []Type{BYTE, UNDEFINED}, min: 1},
	tagid.ICCProfile:      {name: "ICCProfile", types: []Type{UNDEFINED}, min: 1},
	tagid.ImageSourceData: {name: "ImageSourceData", types: []Type{UNDEFINED}, min: 1},

	// Private IFD pointers.
	tagid.ExifIFD: {name: "ExifIFD", types: []Type{LONG, IFD}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.ExifOffset = f.Int(0)
			return nil
		}},
	tagid.GPSIFD: {name: "GPSIFD", types: []Type{LONG, IFD}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSOffset = f.Int(0)
			return nil
		}},

	// TIFF/EP camera tags in the main IFD. The CFA pair feeds the DNG
	// record; the rest are validated and stored.
	tagid.CFARepeatPatternDim: {name: "CFARepeatPatternDim", types: []Type{SHORT}, min: 2, exact: true,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().CFARepeatPatternDim })},
	tagid.CFAPattern: {name: "CFAPattern", types: []Type{BYTE}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().CFAPattern })},
	tagid.BatteryLevel:             {name: "BatteryLevel", min: 1},
	tagid.ExposureTime:             {name: "ExposureTime", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.FNumber:                  {name: "FNumber", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ISOSpeedRatings:          {name: "ISOSpeedRatings", types: []Type{SHORT}, min: 1},
	tagid.Interlace:                {name: "Interlace", types: []Type{SHORT}, min: 1, exact: true},
	tagid.TimeZoneOffset:           {name: "TimeZoneOffset", types: []Type{SSHORT}, min: 1},
	tagid.SelfTimerMode:            {name: "SelfTimerMode", types: []Type{SHORT}, min: 1, exact: true},
	tagid.DateTimeOriginal:         {name: "DateTimeOriginal", types: []Type{ASCII}},
	tagid.CompressedBitsPerPixel:   {name: "CompressedBitsPerPixel", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ShutterSpeedValue:        {name: "ShutterSpeedValue", types: []Type{SRATIONAL}, min: 1, exact: true},
	tagid.ApertureValue:            {name: "ApertureValue", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.BrightnessValue:          {name: "BrightnessValue", types: []Type{SRATIONAL}, min: 1},
	tagid.ExposureBiasValue:        {name: "ExposureBiasValue", types: []Type{SRATIONAL}, min: 1},
	tagid.MaxApertureValue:         {name: "MaxApertureValue", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.SubjectDistance:          {name: "SubjectDistance", types: []Type{RATIONAL, SRATIONAL}, min: 1},
	tagid.MeteringMode:             {name: "MeteringMode", types: []Type{SHORT}, min: 1, exact: true},
	tagid.LightSource:              {name: "LightSource", types: []Type{SHORT}, min: 1, exact: true},
	tagid.Flash:                    {name: "Flash", types: []Type{SHORT}, min: 1, exact: true},
	tagid.FocalLength:              {name: "FocalLength", types: []Type{RATIONAL}, min: 1},
	tagid.FlashEnergy:              {name: "FlashEnergy", types: []Type{RATIONAL}, min: 1},
	tagid.SpatialFrequencyResponse: {name: "SpatialFrequencyResponse", types: []Type{UNDEFINED}, min: 1},
	tagid.Noise:                    {name: "Noise", types: []Type{UNDEFINED}, min: 1},
	tagid.FocalPlaneXResolution:    {name: "FocalPlaneXResolution", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.FocalPlaneYResolution:    {name: "FocalPlaneYResolution", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.FocalPlaneResolutionUnit: {name: "FocalPlaneResolutionUnit", types: []Type{SHORT}, min: 1, exact: true},
	tagid.ImageNumber:              {name: "ImageNumber", types: []Type{LONG}, min: 1, exact: true},
	tagid.SecurityClassification:   {name: "SecurityClassification", types: []Type{ASCII}},
	tagid.ImageHistory:             {name: "ImageHistory", types: []Type{ASCII}},
	tagid.SubjectLocation:          {name: "SubjectLocation", types: []Type{SHORT}, min: 2},
	tagid.ExposureIndex:            {name: "ExposureIndex", types: []Type{RATIONAL}, min: 1},
	tagid.TIFFEPStandardID:         {name: "TIFFEPStandardID", types: []Type{BYTE}, min: 4, exact: true},
	tagid.SensingMethod:            {name: "SensingMethod", types: []Type{SHORT}, min: 1, exact: true},

	// TIFF/IT prepress tags.
	tagid.Site:                     {name: "Site", types: []Type{ASCII}},
	tagid.ColorSequence:            {name: "ColorSequence", types: []Type{ASCII}},
	tagid.IT8Header:                {name: "IT8Header", types: []Type{ASCII}},
	tagid.RasterPadding:            {name: "RasterPadding", types: []Type{SHORT}, min: 1, exact: true},
	tagid.BitsPerRunLength:         {name: "BitsPerRunLength", types: []Type{SHORT}, min: 1, exact: true},
	tagid.BitsPerExtendedRunLength: {name: "BitsPerExtendedRunLength", types: []Type{SHORT}, min: 1, exact: true},
	tagid.ColorTable:               {name: "ColorTable", types: []Type{BYTE}, min: 1},
	tagid.ImageColorIndicator:      {name: "ImageColorIndicator", types: []Type{BYTE}, min: 1, exact: true},
	tagid.BackgroundColorIndicator: {name: "BackgroundColorIndicator", types: []Type{BYTE}, min: 1, exact: true},
	tagid.ImageColorValue:          {name: "ImageColorValue", types: []Type{BYTE}, min: 1, exact: true},
	tagid.BackgroundColorValue:     {name: "BackgroundColorValue", types: []Type{BYTE}, min: 1, exact: true},
	tagid.PixelIntensityRange:      {name: "PixelIntensityRange", types: []Type{BYTE}, min: 2, exact: true},
	tagid.TransparencyIndicator:    {name: "TransparencyIndicator", types: []Type{BYTE}, min: 1, exact: true},
	tagid.ColorCharacterization:    {name: "ColorCharacterization", types: []Type{ASCII}},
	tagid.HCUsage:                  {name: "HCUsage", types: []Type{LONG}, min: 1, exact: true},

	// DNG.
	tagid.DNGVersion: {name: "DNGVersion", types: []Type{BYTE}, min: 4, exact: true,
		set: func(d *Directory, f Field) error {
			d.dng().Version = f.Ints()
			return nil
		}},
	tagid.DNGBackwardVersion: {name: "DNGBackwardVersion", types: []Type{BYTE}, min: 4, exact: true,
		set: func(d *Directory, f Field) error {
			d.dng().BackwardVersion = f.Ints()
			return nil
		}},
	tagid.UniqueCameraModel: {name: "UniqueCameraModel", types: []Type{ASCII},
		set: func(d *Directory, f Field) error {
			d.dng().UniqueCameraModel = f.ASCII()
			return nil
		}},
	tagid.LocalizedCameraModel: {name: "LocalizedCameraModel", types: []Type{ASCII, BYTE}},
	tagid.CFAPlaneColor: {name: "CFAPlaneColor", types: []Type{BYTE}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().CFAPlaneColor })},
	tagid.CFALayout: {name: "CFALayout", types: []Type{SHORT}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.dng().CFALayout = f.Int(0)
			return nil
		}},
	tagid.LinearizationTable: {name: "LinearizationTable", types: []Type{SHORT}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().LinearizationTable })},
	tagid.BlackLevelRepeatDim: {name: "BlackLevelRepeatDim", types: []Type{SHORT}, min: 2, exact: true,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().BlackLevelRepeatDim })},
	tagid.BlackLevel: {name: "BlackLevel", types: []Type{SHORT, LONG, RATIONAL}, min: 1,
		set: setAnyRats(func(d *Directory) *[]rational.R { return &d.dng().BlackLevel })},
	tagid.BlackLevelDeltaH: {name: "BlackLevelDeltaH", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().BlackLevelDeltaH })},
	tagid.BlackLevelDeltaV: {name: "BlackLevelDeltaV", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().BlackLevelDeltaV })},
	tagid.WhiteLevel: {name: "WhiteLevel", types: []Type{SHORT, LONG}, min: 1,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().WhiteLevel })},
	tagid.DefaultScale: {name: "DefaultScale", types: []Type{RATIONAL}, min: 2, exact: true,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().DefaultScale })},
	tagid.DefaultCropOrigin: {name: "DefaultCropOrigin", types: []Type{SHORT, LONG, RATIONAL}, min: 2, exact: true,
		set: setAnyRats(func(d *Directory) *[]rational.R { return &d.dng().DefaultCropOrigin })},
	tagid.DefaultCropSize: {name: "DefaultCropSize", types: []Type{SHORT, LONG, RATIONAL}, min: 2, exact: true,
		set: setAnyRats(func(d *Directory) *[]rational.R { return &d.dng().DefaultCropSize })},
	tagid.ColorMatrix1: {name: "ColorMatrix1", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().ColorMatrix1 })},
	tagid.ColorMatrix2: {name: "ColorMatrix2", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().ColorMatrix2 })},
	tagid.CameraCalibration1: {name: "CameraCalibration1", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().CameraCalibration1 })},
	tagid.CameraCalibration2: {name: "CameraCalibration2", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().CameraCalibration2 })},
	tagid.ReductionMatrix1: {name: "ReductionMatrix1", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().ReductionMatrix1 })},
	tagid.ReductionMatrix2: {name: "ReductionMatrix2", types: []Type{SRATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().ReductionMatrix2 })},
	tagid.AnalogBalance: {name: "AnalogBalance", types: []Type{RATIONAL}, min: 1,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().AnalogBalance })},
	tagid.AsShotNeutral: {name: "AsShotNeutral", types: []Type{SHORT, RATIONAL}, min: 1,
		set: setAnyRats(func(d *Directory) *[]rational.R { return &d.dng().AsShotNeutral })},
	tagid.AsShotWhiteXY: {name: "AsShotWhiteXY", types: []Type{RATIONAL}, min: 2, exact: true,
		set: setRats(func(d *Directory) *[]rational.R { return &d.dng().AsShotWhiteXY })},
	tagid.BaselineExposure: {name: "BaselineExposure", types: []Type{SRATIONAL}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			r := f.Rat(0)
			d.dng().BaselineExposure = &r
			return nil
		}},
	tagid.BaselineNoise:       {name: "BaselineNoise", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.BaselineSharpness:   {name: "BaselineSharpness", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.BayerGreenSplit:     {name: "BayerGreenSplit", types: []Type{LONG}, min: 1, exact: true},
	tagid.LinearResponseLimit: {name: "LinearResponseLimit", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.CameraSerialNumber:  {name: "CameraSerialNumber", types: []Type{ASCII}},
	tagid.LensInfo:            {name: "LensInfo", types: []Type{RATIONAL}, min: 4, exact: true},
	tagid.ChromaBlurRadius:    {name: "ChromaBlurRadius", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.AntiAliasStrength:   {name: "AntiAliasStrength", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ShadowScale:         {name: "ShadowScale", types: []Type{RATIONAL, SRATIONAL}, min: 1, exact: true},
	tagid.DNGPrivateData:      {name: "DNGPrivateData", types: []Type{BYTE}, min: 1},
	tagid.MakerNoteSafety:     {name: "MakerNoteSafety", types: []Type{SHORT}, min: 1, exact: true},
	tagid.CalibrationIlluminant1: {name: "CalibrationIlluminant1", types: []Type{SHORT}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.dng().CalibrationIlluminant1 = f.Int(0)
			return nil
		}},
	tagid.CalibrationIlluminant2: {name: "CalibrationIlluminant2", types: []Type{SHORT}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.dng().CalibrationIlluminant2 = f.Int(0)
			return nil
		}},
	tagid.BestQualityScale: {name: "BestQualityScale", types: []Type{RATIONAL}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			r := f.Rat(0)
			d.dng().BestQualityScale = &r
			return nil
		}},
	tagid.RawDataUniqueID:     {name: "RawDataUniqueID", types: []Type{BYTE}, min: 16, exact: true},
	tagid.OriginalRawFileName: {name: "OriginalRawFileName", types: []Type{ASCII, BYTE}},
	tagid.OriginalRawFileData: {name: "OriginalRawFileData", types: []Type{UNDEFINED}, min: 1},
	tagid.ActiveArea: {name: "ActiveArea", types: []Type{SHORT, LONG}, min: 4, exact: true,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().ActiveArea })},
	tagid.MaskedAreas: {name: "MaskedAreas", types: []Type{SHORT, LONG}, min: 4,
		set: setInts(func(d *Directory) *[]int64 { return &d.dng().MaskedAreas })},
	tagid.AsShotICCProfile:        {name: "AsShotICCProfile", types: []Type{UNDEFINED}, min: 1},
	tagid.AsShotPreProfileMatrix:  {name: "AsShotPreProfileMatrix", types: []Type{SRATIONAL}, min: 1},
	tagid.CurrentICCProfile:       {name: "CurrentICCProfile", types: []Type{UNDEFINED}, min: 1},
	tagid.CurrentPreProfileMatrix: {name: "CurrentPreProfileMatrix", types: []Type{SRATIONAL}, min: 1},
}

// Compression values with dialect or deprecation consequences.
const (
	compressionLZW     = 5
	compressionOldJPEG = 6
)

func setCompression(d *Directory, f Field) error {
	v := f.Int(0)
	d.Meta.Compression = v
	switch v {
	case compressionLZW:
		d.ratchet(5)
	case compressionOldJPEG:
		d.ratchet(6)
		d.infof("Compression: deprecated JPEG-in-TIFF encoding")
	}
	return nil
}

func setPhotometric(d *Directory, f Field) error {
	v := f.Int(0)
	d.Meta.Photometric = v
	switch v {
	case 3: // palette color
		d.ratchet(5)
	case 4, 5, 6, 8: // mask, separated, YCbCr, CIELAB
		d.ratchet(6)
	}
	return nil
}
