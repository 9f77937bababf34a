package tiffdir

import "github.com/hmelik/tiffdir/tagid"

// gpsTable covers the GPS Info private IFD. Coordinates are the
// degrees/minutes/seconds triplets the standard fixes at exactly three
// rationals.
var gpsTable = tagTable{
	tagid.GPSVersionID: {name: "GPSVersionID", types: []Type{BYTE}, min: 4, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSMeta.VersionID = f.Ints()
			return nil
		}},
	tagid.GPSLatitudeRef: {name: "GPSLatitudeRef", types: []Type{ASCII}, min: 2, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSMeta.LatitudeRef = f.ASCII()
			return nil
		}},
	tagid.GPSLatitude: {name: "GPSLatitude", types: []Type{RATIONAL}, min: 3, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSMeta.Latitude = f.Rats()
			return nil
		}},
	tagid.GPSLongitudeRef: {name: "GPSLongitudeRef", types: []Type{ASCII}, min: 2, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSMeta.LongitudeRef = f.ASCII()
			return nil
		}},
	tagid.GPSLongitude: {name: "GPSLongitude", types: []Type{RATIONAL}, min: 3, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSMeta.Longitude = f.Rats()
			return nil
		}},
	tagid.GPSAltitudeRef: {name: "GPSAltitudeRef", types: []Type{BYTE}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSMeta.AltitudeRef = f.Int(0)
			return nil
		}},
	tagid.GPSAltitude: {name: "GPSAltitude", types: []Type{RATIONAL}, min: 1, exact: true,
		set: func(d *Directory, f Field) error {
			r := f.Rat(0)
			d.GPSMeta.Altitude = &r
			return nil
		}},
	tagid.GPSTimeStamp: {name: "GPSTimeStamp", types: []Type{RATIONAL}, min: 3, exact: true,
		set: func(d *Directory, f Field) error {
			d.GPSMeta.TimeStamp = f.Rats()
			return nil
		}},
	tagid.GPSSatellites:       {name: "GPSSatellites", types: []Type{ASCII}},
	tagid.GPSStatus:           {name: "GPSStatus", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSMeasureMode:      {name: "GPSMeasureMode", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSDOP:              {name: "GPSDOP", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.GPSSpeedRef:         {name: "GPSSpeedRef", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSSpeed:            {name: "GPSSpeed", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.GPSTrackRef:         {name: "GPSTrackRef", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSTrack:            {name: "GPSTrack", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.GPSImgDirectionRef:  {name: "GPSImgDirectionRef", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSImgDirection:     {name: "GPSImgDirection", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.GPSMapDatum:         {name: "GPSMapDatum", types: []Type{ASCII}},
	tagid.GPSDestLatitudeRef:  {name: "GPSDestLatitudeRef", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSDestLatitude:     {name: "GPSDestLatitude", types: []Type{RATIONAL}, min: 3, exact: true},
	tagid.GPSDestLongitudeRef: {name: "GPSDestLongitudeRef", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSDestLongitude:    {name: "GPSDestLongitude", types: []Type{RATIONAL}, min: 3, exact: true},
	tagid.GPSDestBearingRef:   {name: "GPSDestBearingRef", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSDestBearing:      {name: "GPSDestBearing", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.GPSDestDistanceRef:  {name: "GPSDestDistanceRef", types: []Type{ASCII}, min: 2, exact: true},
	tagid.GPSDestDistance:     {name: "GPSDestDistance", types: []Type{RATIONAL}, min: 1, exact: true},
	tagid.GPSProcessingMethod: {name: "GPSProcessingMethod", types: []Type{UNDEFINED}, min: 1},
	tagid.GPSAreaInformation:  {name: "GPSAreaInformation", types: []Type{UNDEFINED}, min: 1},
	tagid.GPSDateStamp:        {name: "GPSDateStamp", types: []Type{ASCII}, min: 11, exact: true},
	tagid.GPSDifferential:     {name: "GPSDifferential", types: []Type{SHORT}, min: 1, exact: true},
}
