/*
Package st0102 supplies the MISB ST 0102 Security Metadata Local Set
tag table, nested under ST 0601 tag 0x30. It registers itself
both as a standalone SetDef and as tag 48 of the st0601 UAS Local Set,
so that klv.DecodeLocalSet recurses into it automatically whenever a
decoded UAS packet carries a Security Local Set child.
*/
package st0102

import (
	"github.com/mpare/goklv"
	"github.com/mpare/goklv/st0601"
)

// SecurityLocalSet is the ST 0102 Security Metadata Local Set
// definition, identified by the local tag 0x30 it carries when nested
// under the ST 0601 UAS Datalink Local Set.
var SecurityLocalSet = klv.NewSetDef([]byte{0x30}, "Security Local Metadata Set")

var classificationNames = map[int]string{
	1: "UNCLASSIFIED",
	2: "RESTRICTED",
	3: "CONFIDENTIAL",
	4: "SECRET",
	5: "TOP SECRET",
}

// classifyingCountryCoding and objectCountryCoding mirror the two
// country-coding-method enumerations the original klvdata source
// carries  — small declarative tables with
// no Non-goal excluding them.
var classifyingCountryCoding = map[int]string{
	1: "ISO-3166 Two Letter", 2: "ISO-3166 Three Letter",
	3: "FIPS 10-4 Two Letter", 4: "FIPS 10-4 Four Letter",
	5: "ISO-3166 Numeric", 6: "1059 Two Letter", 7: "1059 Three Letter",
	10: "FIPS 10-4 Mixed", 11: "ISO 3166 Mixed", 12: "STANAG 1059 Mixed",
	13: "GENC Two Letter", 14: "GENC Three Letter", 15: "GENC Numeric", 16: "GENC Mixed",
}

var objectCountryCoding = map[int]string{
	1: "ISO-3166 Two Letter", 2: "ISO-3166 Three Letter", 3: "ISO-3166 Numeric",
	4: "FIPS 10-4 Two Letter", 5: "FIPS 10-4 Four Letter",
	6: "1059 Two Letter", 7: "1059 Three Letter",
	13: "GENC Two Letter", 14: "GENC Three Letter", 15: "GENC Numeric", 64: "GENC AdminSub",
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func init() {
	must(SecurityLocalSet.Register(klv.TagDef{
		Tag: 1, StandardName: "Security Classification",
		Parse: klv.EnumParser(1, classificationNames),
	}))
	must(SecurityLocalSet.Register(klv.TagDef{
		Tag: 2, StandardName: "Classifying Country and Releasing Instructions Country Coding Method",
		Parse: klv.EnumParser(1, classifyingCountryCoding),
	}))
	must(SecurityLocalSet.Register(klv.TagDef{
		Tag: 3, StandardName: "Classifying Country",
		Parse: klv.DecodeStringValue,
	}))
	must(SecurityLocalSet.Register(klv.TagDef{
		Tag: 12, StandardName: "Object Country Coding Method",
		Parse: klv.EnumParser(1, objectCountryCoding),
	}))
	must(SecurityLocalSet.Register(klv.TagDef{
		Tag: 13, StandardName: "Object Country Codes",
		Parse: klv.DecodeStringValue,
	}))
	must(SecurityLocalSet.Register(klv.TagDef{
		Tag: 20, StandardName: "Security Metadata Version",
		Parse: klv.IntegerParser(1, false),
	}))

	must(st0601.UASLocalSet.Register(klv.TagDef{
		Tag: 48, StandardName: "Security Local Set",
		Parse: klv.SetParser(SecurityLocalSet),
	}))
}
