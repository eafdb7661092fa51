/*
Package st0601 supplies the concrete MISB ST 0601 UAS Datalink Local
Set tag table: the data half of the codec, the klv package's generic
machinery knowing nothing about any specific tag. It registers its
SetDef into klv.DefaultRegistry at init time and has no decode logic
of its own beyond what the table declares.

Tags 1-21 and the extended tags through 105 follow the published
ST 0601 domain/range/units conversions; where the source table this
package was grounded on carried inconsistent signedness for an
extended tag, the domain's own sign was used to derive signedness
(a domain whose lower endpoint is negative is a signed field), matching
MappedDomain.Signed's own derivation rule. A negative range alone does
not make a field signed (e.g. tag 15 is unsigned over -900..19000).
*/
package st0601

import "github.com/mpare/goklv"

// UASLocalSet is the ST 0601 UAS Datalink Local Set definition,
// registered under its Universal Label at init.
var UASLocalSet = klv.NewSetDef(klv.UASLocalSetKey, "UAS Datalink Local Set")

func mapped(tag byte, std, a, b string, x1, x2, y1, y2 float64, width int) {
	def := klv.TagDef{
		Tag:          tag,
		StandardName: std,
		NameA:        a,
		NameB:        b,
		Parse: klv.MappedParser(
			klv.MappedDomain{X1: x1, X2: x2, Width: width},
			klv.MappedRange{Y1: y1, Y2: y2},
		),
	}
	must(UASLocalSet.Register(def))
}

func str(tag byte, std, a, b string) {
	must(UASLocalSet.Register(klv.TagDef{
		Tag: tag, StandardName: std, NameA: a, NameB: b,
		Parse: klv.DecodeStringValue,
	}))
}

func bytesTag(tag byte, std, a, b string) {
	must(UASLocalSet.Register(klv.TagDef{
		Tag: tag, StandardName: std, NameA: a, NameB: b,
		Parse: klv.DecodeBytesValue,
	}))
}

func integer(tag byte, std, a, b string, width int, signed bool) {
	must(UASLocalSet.Register(klv.TagDef{
		Tag: tag, StandardName: std, NameA: a, NameB: b,
		Parse: klv.IntegerParser(width, signed),
	}))
}

func enumTag(tag byte, std, a, b string, width int, names map[int]string) {
	must(UASLocalSet.Register(klv.TagDef{
		Tag: tag, StandardName: std, NameA: a, NameB: b,
		Parse: klv.EnumParser(width, names),
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func init() {
	must(UASLocalSet.Register(klv.TagDef{
		Tag: 1, StandardName: "Checksum", Parse: klv.DecodeBytesValue,
	}))
	must(UASLocalSet.Register(klv.TagDef{
		Tag: 2, StandardName: "Precision Time Stamp", NameB: "User Defined Time Stamp",
		Parse: klv.DecodeDateTimeValue,
	}))
	str(3, "Mission ID", "Mission Number", "Episode Number")
	str(4, "Platform Tail Number", "Platform Tail Number", "")
	mapped(5, "Platform Heading Angle", "UAV Heading (INS)", "Platform Heading Angle", 0, 65535, 0, 360, 2)
	mapped(6, "Platform Pitch Angle", "UAV Pitch (INS)", "Platform Pitch Angle", -32767, 32767, -20, 20, 2)
	mapped(7, "Platform Roll Angle", "UAV Roll (INS)", "Platform Roll Angle", -32767, 32767, -50, 50, 2)
	mapped(8, "Platform True Airspeed", "True Airspeed", "", 0, 255, 0, 255, 1)
	mapped(9, "Platform Indicated Airspeed", "Indicated Airspeed", "", 0, 255, 0, 255, 1)
	str(10, "Platform Designation", "Project ID Code", "Device Designation")
	str(11, "Image Source Sensor", "Sensor Name", "Image Source Device")
	str(12, "Image Coordinate System", "Image Coordinate System", "Image Coordinate System")
	mapped(13, "Sensor Latitude", "Sensor Latitude", "Device Latitude", -2147483647, 2147483647, -90, 90, 4)
	mapped(14, "Sensor Longitude", "Sensor Longitude", "Device Longitude", -2147483647, 2147483647, -180, 180, 4)
	mapped(15, "Sensor True Altitude", "Sensor Altitude", "Device Altitude", 0, 65535, -900, 19000, 2)
	mapped(16, "Sensor Horizontal Field of View", "Field of View", "Field of View (FOVHorizontal)", 0, 65535, 0, 180, 2)
	mapped(17, "Sensor Vertical Field of View", "Vertical Field of View", "", 0, 65535, 0, 180, 2)
	mapped(18, "Sensor Relative Azimuth Angle", "Sensor Relative Azimuth Angle", "", 0, 4294967295, 0, 360, 4)
	mapped(19, "Sensor Relative Elevation Angle", "Sensor Relative Elevation Angle", "", -2147483647, 2147483647, -180, 180, 4)
	mapped(20, "Sensor Relative Roll Angle", "Sensor Relative Roll Angle", "", 0, 4294967295, 0, 360, 4)
	mapped(21, "Slant Range", "Slant Range", "Slant Range", 0, 4294967295, 0, 5e6, 4)

	mapped(22, "Target Width", "Target Width", "Target Width", 0, 65535, 0, 10e3, 2)
	mapped(23, "Frame Center Latitude", "Target Latitude", "Frame Center Latitude", -2147483647, 2147483647, -90, 90, 4)
	mapped(24, "Frame Center Longitude", "Target Longitude", "Frame Center Longitude", -2147483647, 2147483647, -180, 180, 4)
	mapped(25, "Frame Center Elevation", "Frame Center Elevation", "", 0, 65535, -900, 19000, 2)
	mapped(26, "Offset Corner Latitude Point 1", "SAR Latitude 4", "Corner Latitude Point 1", -32767, 32767, -0.075, 0.075, 2)
	mapped(27, "Offset Corner Longitude Point 1", "SAR Longitude 4", "Corner Longitude Point 1", -32767, 32767, -0.075, 0.075, 2)
	mapped(28, "Offset Corner Latitude Point 2", "SAR Latitude 1", "Corner Latitude Point 2", -32767, 32767, -0.075, 0.075, 2)
	mapped(29, "Offset Corner Longitude Point 2", "SAR Longitude 1", "Corner Longitude Point 2", -32767, 32767, -0.075, 0.075, 2)
	mapped(30, "Offset Corner Latitude Point 3", "SAR Latitude 2", "Corner Latitude Point 3", -32767, 32767, -0.075, 0.075, 2)
	mapped(31, "Offset Corner Longitude Point 3", "SAR Longitude 2", "Corner Longitude Point 3", -32767, 32767, -0.075, 0.075, 2)
	mapped(32, "Offset Corner Latitude Point 4", "SAR Latitude 3", "Corner Latitude Point 4", -32767, 32767, -0.075, 0.075, 2)
	mapped(33, "Offset Corner Longitude Point 4", "SAR Longitude 3", "Corner Longitude Point 4", -32767, 32767, -0.075, 0.075, 2)
	str(34, "Icing Detected", "Icing Detected", "")
	mapped(35, "Wind Direction", "Wind Direction", "", 0, 65535, 0, 360, 2)
	mapped(36, "Wind Speed", "Wind Speed", "", 0, 255, 0, 100, 1)
	mapped(37, "Static Pressure", "Static Pressure", "", 0, 65535, 0, 5000, 2)
	mapped(38, "Density Altitude", "Density Altitude", "", 0, 65535, -900, 19e3, 2)
	integer(39, "Outside Air Temperature", "Air Temperature", "", 1, true)
	mapped(40, "Target Location Latitude", "", "", -2147483647, 2147483647, -90, 90, 4)
	mapped(41, "Target Location Longitude", "", "", -2147483647, 2147483647, -180, 180, 4)
	mapped(42, "Target Location Elevation", "", "", 0, 65535, -900, 19000, 2)
	mapped(43, "Target Track Gate Width", "", "", 0, 255, 0, 510, 1)
	mapped(44, "Target Track Gate Height", "", "", 0, 255, 0, 510, 1)
	mapped(45, "Target Error Estimate - CE90", "", "", 0, 65535, 0, 4095, 2)
	mapped(46, "Target Error Estimate - LE90", "", "", 0, 65535, 0, 4095, 2)
	str(47, "Generic Flag Data 01", "", "")
	// Tag 48, Security Local Set, is registered by the sibling st0102
	// package (klv "Nested Security Local Set"); this package
	// never references st0102 to keep the core's tag->parser
	// dependency direction one-way.

	mapped(49, "Differential Pressure", "", "", 0, 65535, 0, 5000, 2)
	mapped(50, "Platform Angle of Attack", "", "", -32767, 32767, -20, 20, 2)
	mapped(51, "Platform Vertical Speed", "", "", -32767, 32767, -180, 180, 2)
	mapped(52, "Platform Sideslip Angle", "", "", -32767, 32767, -20, 20, 2)
	mapped(53, "Airfield Barometric Pressure", "", "", 0, 65535, 0, 5000, 2)
	mapped(54, "Airfield Elevation", "", "", 0, 65535, -900, 19000, 2)
	mapped(55, "Relative Humidity", "", "", 0, 255, 0, 100, 1)
	mapped(56, "Platform Ground Speed", "Platform Ground Speed", "", 0, 255, 0, 255, 1)
	mapped(57, "Ground Range", "Ground Range", "", 0, 4294967295, 0, 5000000, 4)
	mapped(58, "Platform Fuel Remaining", "Platform Fuel Remaining", "", 0, 65535, 0, 10000, 2)
	str(59, "Platform Call Sign", "Platform Call Sign", "")
	bytesTag(60, "Weapon Load", "Weapon Load", "")
	integer(61, "Weapon Fired", "Weapon Fired", "", 1, false)
	integer(62, "Laser PRF Code", "Laser PRF Code", "", 2, false)
	enumTag(63, "Sensor Field of View Name", "Sensor Field of View Name", "", 1, map[int]string{
		0: "Ultranarrow", 1: "Narrow", 2: "Medium", 3: "Wide",
		4: "Ultrawide", 5: "Narrow Medium", 6: "2x Ultranarrow", 7: "4x Ultranarrow",
	})
	mapped(64, "Platform Magnetic Heading", "Platform Magnetic Heading", "", 0, 65535, 0, 360, 2)

	mapped(67, "Alternate Platform Latitude", "", "", -2147483647, 2147483647, -90, 90, 4)
	mapped(68, "Alternate Platform Longitude", "", "", -2147483647, 2147483647, -180, 180, 4)
	mapped(69, "Alternate Platform Altitude", "", "", 0, 65535, -900, 19000, 2)
	str(70, "Alternate Platform Name", "", "")
	mapped(71, "Alternate Platform Heading", "", "", 0, 65535, 0, 360, 2)
	must(UASLocalSet.Register(klv.TagDef{
		Tag: 72, StandardName: "Event Start Time - UTC",
		NameA: "Mission Start Time, Date, and Date of Collection",
		NameB: "Event Start Date Time - UTC",
		Parse: klv.DecodeDateTimeValue,
	}))
	bytesTag(73, "RVT Local Data Set", "", "Remote Video Terminal Local Set")
	bytesTag(74, "VMTI Local Set", "", "Video Moving Target Indicator Local Set")
	mapped(75, "Sensor Ellipsoid Height", "", "", 0, 65535, -900, 19000, 2)
	mapped(76, "Alternate Platform Ellipsoid Height", "", "", 0, 65535, -900, 19000, 2)
	str(77, "Operational Mode", "", "")
	mapped(78, "Frame Center Height Above Ellipsoid", "", "", 0, 65535, -900, 19000, 2)
	mapped(79, "Sensor North Velocity", "", "", -32767, 32767, -327, 327, 2)
	mapped(80, "Sensor East Velocity", "", "", -32767, 32767, -327, 327, 2)

	mapped(82, "Corner Latitude Point 1 (Full)", "SAR Latitude 4", "Corner Latitude Point 1 (Decimal Degrees)", -2147483647, 2147483647, -90, 90, 4)
	mapped(83, "Corner Longitude Point 1 (Full)", "SAR Longitude 4", "Corner Longitude Point 1 (Decimal Degrees)", -2147483647, 2147483647, -180, 180, 4)
	mapped(84, "Corner Latitude Point 2 (Full)", "SAR Latitude 1", "Corner Latitude Point 2 (Decimal Degrees)", -2147483647, 2147483647, -90, 90, 4)
	mapped(85, "Corner Longitude Point 2 (Full)", "SAR Longitude 1", "Corner Longitude Point 2 (Decimal Degrees)", -2147483647, 2147483647, -180, 180, 4)
	mapped(86, "Corner Latitude Point 3 (Full)", "SAR Latitude 2", "Corner Latitude Point 3 (Decimal Degrees)", -2147483647, 2147483647, -90, 90, 4)
	mapped(87, "Corner Longitude Point 3 (Full)", "SAR Longitude 2", "Corner Longitude Point 3 (Decimal Degrees)", -2147483647, 2147483647, -180, 180, 4)
	mapped(88, "Corner Latitude Point 4 (Full)", "SAR Latitude 3", "Corner Latitude Point 4 (Decimal Degrees)", -2147483647, 2147483647, -90, 90, 4)
	mapped(89, "Corner Longitude Point 4 (Full)", "SAR Longitude 3", "Corner Longitude Point 4 (Decimal Degrees)", -2147483647, 2147483647, -180, 180, 4)
	mapped(90, "Platform Pitch Angle (Full)", "UAV Pitch (INS)", "Platform Pitch Angle", -2147483647, 2147483647, -90, 90, 4)
	mapped(91, "Platform Roll Angle (Full)", "UAV Roll (INS)", "Platform Roll Angle", -2147483647, 2147483647, -90, 90, 4)
	mapped(92, "Platform Angle of Attack (Full)", "", "", -2147483647, 2147483647, -90, 90, 4)
	mapped(93, "Platform Sideslip Angle (Full)", "", "", -2147483647, 2147483647, -90, 90, 4)

	mapped(96, "Target Width Extended", "Target Width", "Target Width", 0, 4294967295, 0, 500000, 4)
	mapped(103, "Density Altitude Extended", "Density Altitude", "", 0, 4294967295, -900, 19000, 4)
	mapped(104, "Sensor Ellipsoid Height Extended", "", "", 0, 4294967295, -900, 19000, 4)
	mapped(105, "Alternate Platform Ellipsoid Height Extended", "", "", 0, 4294967295, -900, 19000, 4)

	must(klv.DefaultRegistry.RegisterUL(klv.UASLocalSetKey, UASLocalSet))
}
