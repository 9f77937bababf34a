package tiffdir

import "github.com/hmelik/tiffdir/tagid"

// interopTable covers the tiny Exif Interoperability IFD.
var interopTable = tagTable{
	tagid.InteroperabilityIndex:   {name: "InteroperabilityIndex", types: []Type{ASCII}},
	tagid.InteroperabilityVersion: {name: "InteroperabilityVersion", types: []Type{UNDEFINED}, min: 4, exact: true},
	tagid.RelatedImageFileFormat:  {name: "RelatedImageFileFormat", types: []Type{ASCII}},
	tagid.RelatedImageWidth:       {name: "RelatedImageWidth", types: []Type{SHORT, LONG}, min: 1, exact: true},
	tagid.RelatedImageLength:      {name: "RelatedImageLength", types: []Type{SHORT, LONG}, min: 1, exact: true},
}

// globalParametersTable covers the TIFF-FX GlobalParameters IFD. The fax
// profile tags live here; the per-page FX tags stay in the main table.
var globalParametersTable = tagTable{
	tagid.ProfileType:   {name: "ProfileType", types: []Type{LONG}, min: 1, exact: true},
	tagid.FaxProfile:    {name: "FaxProfile", types: []Type{BYTE}, min: 1, exact: true},
	tagid.CodingMethods: {name: "CodingMethods", types: []Type{LONG}, min: 1, exact: true},
	tagid.VersionYear:   {name: "VersionYear", types: []Type{BYTE}, min: 4, exact: true},
	tagid.ModeNumber:    {name: "ModeNumber", types: []Type{BYTE}, min: 1, exact: true},
}
