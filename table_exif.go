package tiffdir

import "github.com/hmelik/tiffdir/tagid"

// exifTable covers the Exif private IFD. A handful of baseline tags that
// cameras misplace into the Exif IFD reuse the main-table contracts, so
// they land in this directory's own Metadata record.
var exifTable = tagTable{
	tagid.ExposureTime:        {name: "ExposureTime", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.FNumber:             {name: "FNumber", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ExposureProgram:     {name: "ExposureProgram", types: []Type{SHORT}, min: 1, exact: true},
	tagid.SpectralSensitivity: {name: "SpectralSensitivity", types: []Type{ASCII}},
	tagid.ISOSpeedRatings:     {name: "ISOSpeedRatings", types: []Type{SHORT}, min: 1},
	tagid.OECF:                {name: "OECF", types: []Type{UNDEFINED}, min: 1},
	tagid.ExifVersion: {name: "ExifVersion", types: []Type{UNDEFINED}, min: 4, exact: true,
		set: func(d *Directory, f Field) error {
			d.ExifMeta.Version = string(f.Undefined())
			return nil
		}},
	tagid.DateTimeOriginal:        {name: "DateTimeOriginal", types: []Type{ASCII}},
	tagid.DateTimeDigitized:       {name: "DateTimeDigitized", types: []Type{ASCII}},
	tagid.ComponentsConfiguration: {name: "ComponentsConfiguration", types: []Type{UNDEFINED}, min: 4, exact: true},
	tagid.CompressedBitsPerPixel:  {name: "CompressedBitsPerPixel", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ShutterSpeedValue:       {name: "ShutterSpeedValue", types: []Type{SRATIONAL}, min: 1, exact: true},
	tagid.ApertureValue:           {name: "ApertureValue", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.BrightnessValue:         {name: "BrightnessValue", types: []Type{SRATIONAL}, min: 1, exact: true},
	tagid.ExposureBiasValue:       {name: "ExposureBiasValue", types: []Type{SRATIONAL}, min: 1, exact: true},
	tagid.MaxApertureValue:        {name: "MaxApertureValue", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.SubjectDistance:         {name: "SubjectDistance", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.MeteringMode:            {name: "MeteringMode", types: []Type{SHORT}, min: 1, exact: true},
	tagid.LightSource:             {name: "LightSource", types: []Type{SHORT}, min: 1, exact: true},
	tagid.Flash:                   {name: "Flash", types: []Type{SHORT}, min: 1, exact: true},
	tagid.FocalLength:             {name: "FocalLength", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.SubjectArea:             {name: "SubjectArea", types: []Type{SHORT}, min: 2},
	tagid.MakerNote:               {name: "MakerNote", types: []Type{UNDEFINED}, min: 1},
	tagid.UserComment:             {name: "UserComment", types: []Type{UNDEFINED}, min: 8},
	tagid.SubsecTime:              {name: "SubsecTime", types: []Type{ASCII}},
	tagid.SubsecTimeOriginal:      {name: "SubsecTimeOriginal", types: []Type{ASCII}},
	tagid.SubsecTimeDigitized:     {name: "SubsecTimeDigitized", types: []Type{ASCII}},
	tagid.FlashpixVersion: {name: "FlashpixVersion", types: []Type{UNDEFINED}, min: 4, exact: true,
		set: func(d *Directory, f Field) error {
			d.ExifMeta.FlashpixVersion = string(f.Undefined())
			return nil
		}},
	tagid.ColorSpace: {name: "ColorSpace", types: []Type{SHORT}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.ExifMeta.ColorSpace = f.Int(0)
			return nil
		}},
	tagid.PixelXDimension: {name: "PixelXDimension", types: []Type{SHORT, LONG}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.ExifMeta.PixelXDimension = f.Int(0)
			return nil
		}},
	tagid.PixelYDimension: {name: "PixelYDimension", types: []Type{SHORT, LONG}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.ExifMeta.PixelYDimension = f.Int(0)
			return nil
		}},
	tagid.RelatedSoundFile: {name: "RelatedSoundFile", types: []Type{ASCII}},
	tagid.InteroperabilityIFD: {name: "InteroperabilityIFD", types: []Type{LONG, IFD}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.InteropOffset = f.Int(0)
			return nil
		}},
	tagid.ExifFlashEnergy:              {name: "FlashEnergy", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ExifSpatialFrequencyResponse: {name: "SpatialFrequencyResponse", types: []Type{UNDEFINED}, min: 1},
	tagid.ExifFocalPlaneXResolution:    {name: "FocalPlaneXResolution", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ExifFocalPlaneYResolution:    {name: "FocalPlaneYResolution", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ExifFocalPlaneResolutionUnit: {name: "FocalPlaneResolutionUnit", types: []Type{SHORT}, min: 1, exact: true},
	tagid.ExifSubjectLocation:          {name: "SubjectLocation", types: []Type{SHORT}, min: 2, exact: true},
	tagid.ExifExposureIndex:            {name: "ExposureIndex", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.ExifSensingMethod:            {name: "SensingMethod", types: []Type{SHORT}, min: 1, exact: true},
	tagid.FileSource:                   {name: "FileSource", types: []Type{UNDEFINED}, min: 1, exact: true},
	tagid.SceneType:                    {name: "SceneType", types: []Type{UNDEFINED}, min: 1, exact: true},
	tagid.ExifCFAPattern:               {name: "CFAPattern", types: []Type{UNDEFINED}, min: 1},
	tagid.CustomRendered:               {name: "CustomRendered", types: []Type{SHORT}, min: 1, exact: true},
	tagid.ExposureMode:                 {name: "ExposureMode", types: []Type{SHORT}, min: 1, exact: true},
	tagid.WhiteBalance:                 {name: "WhiteBalance", types: []Type{SHORT}, min: 1, exact: true},
	tagid.DigitalZoomRatio:             {name: "DigitalZoomRatio", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.FocalLengthIn35mmFilm:        {name: "FocalLengthIn35mmFilm", types: []Type{SHORT}, min: 1, exact: true},
	tagid.SceneCaptureType:             {name: "SceneCaptureType", types: []Type{SHORT}, min: 1, exact: true},
	tagid.GainControl: {name: "GainControl", types: []Type{SHORT}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.ExifMeta.GainControl = f.Int(0)
			return nil
		}},
	tagid.Contrast:                 {name: "Contrast", types: []Type{SHORT}, min: 1, exact: true},
	tagid.Saturation:               {name: "Saturation", types: []Type{SHORT}, min: 1, exact: true},
	tagid.Sharpness:                {name: "Sharpness", types: []Type{SHORT}, min: 1, exact: true},
	tagid.DeviceSettingDescription: {name: "DeviceSettingDescription", types: []Type{UNDEFINED}, min: 1},
	tagid.SubjectDistanceRange:     {name: "SubjectDistanceRange", types: []Type{SHORT}, min: 1, exact: true},
	tagid.ImageUniqueID:            {name: "ImageUniqueID", types: []Type{ASCII}},

	// Baseline tags misplaced into the Exif IFD by some writers.
	tagid.Make:             tiffTable[tagid.Make],
	tagid.Model:            tiffTable[tagid.Model],
	tagid.Orientation:      tiffTable[tagid.Orientation],
	tagid.XResolution:      tiffTable[tagid.XResolution],
	tagid.YResolution:      tiffTable[tagid.YResolution],
	tagid.ResolutionUnit:   tiffTable[tagid.ResolutionUnit],
	tagid.Software:         tiffTable[tagid.Software],
	tagid.DateTime:         tiffTable[tagid.DateTime],
	tagid.Artist:           tiffTable[tagid.Artist],
	tagid.Copyright:        tiffTable[tagid.Copyright],
	tagid.ImageDescription: tiffTable[tagid.ImageDescription],
}
