package klv

/*
values.go implements decode-side constructors for each TypedValue
variant. Each constructor accepts raw wire bytes and normalizes
them to the internal TypedValue form, preserving enough of the raw
bytes that re-encoding is a pure function of the TypedValue, never of
anything outside it (Constructor inputs... normalize to the internal
form so bytes(Element(user_value)) yields the canonical encoding).
*/

import (
	"time"
)

// DecodeBytesValue wraps raw as an opaque BytesValue.
func DecodeBytesValue(raw []byte) (TypedValue, error) {
	return TypedValue{Kind: KindBytes, Raw: append([]byte(nil), raw...)}, nil
}

/*
DecodeStringValue decodes raw as UTF-8. Invalid UTF-8 does not
error: the bytes are kept unchanged in Str (and Raw) and re-emitted
unchanged on encode, so the element still round-trips.
*/
func DecodeStringValue(raw []byte) (TypedValue, error) {
	// string(raw) is a direct byte copy; even non-UTF-8 input round-trips
	// exactly through Str without needing a distinct failure path.
	return TypedValue{Kind: KindString, Str: string(raw), Raw: append([]byte(nil), raw...)}, nil
}

// NewStringValue builds a String TypedValue from a native Go string
// (the user-construction path).
func NewStringValue(s string) TypedValue {
	return TypedValue{Kind: KindString, Str: s, Raw: []byte(s)}
}

// DecodeDateTimeValue decodes an 8-byte Precision Time Stamp field.
func DecodeDateTimeValue(raw []byte) (TypedValue, error) {
	t, err := DecodeDateTime(raw)
	if err != nil {
		return TypedValue{}, err
	}
	return TypedValue{Kind: KindDateTime, Time: t, Raw: append([]byte(nil), raw...)}, nil
}

// NewDateTimeValue builds a DateTime TypedValue from a native time.Time.
func NewDateTimeValue(t time.Time) TypedValue {
	return TypedValue{Kind: KindDateTime, Time: t, Raw: EncodeDateTime(t)}
}

/*
IntegerParser returns a ParserFn decoding a fixed-width, optionally
signed big-endian integer field.
*/
func IntegerParser(width int, signed bool) ParserFn {
	return func(raw []byte) (TypedValue, error) {
		if len(raw) != width {
			return TypedValue{}, mkerrf("klv: IntegerValue: want ", width, " bytes, got ", len(raw))
		}
		v, err := decodeBigEndianInt(raw, signed)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: KindInteger, Int: v, Signed: signed, Raw: append([]byte(nil), raw...)}, nil
	}
}

// NewIntegerValue builds an Integer TypedValue from a native int64.
func NewIntegerValue(v int64, width int, signed bool) TypedValue {
	return TypedValue{Kind: KindInteger, Int: v, Signed: signed, Raw: encodeBigEndianInt(v, width, signed)}
}

/*
MappedParser returns a ParserFn for an ST 0601 Mapped field on the
declared domain/range.
*/
func MappedParser(d MappedDomain, r MappedRange) ParserFn {
	return func(raw []byte) (TypedValue, error) {
		val, sentinel, ok, err := DecodeMapped(raw, d, r)
		if err != nil {
			return TypedValue{}, err
		}
		tv := TypedValue{Kind: KindMapped, Raw: append([]byte(nil), raw...)}
		if ok {
			tv.Real = val
		} else {
			tv.Sentinel = sentinel
		}
		return tv, nil
	}
}

// NewMappedValue builds a Mapped TypedValue from a native real, per
// the declared domain/range.
func NewMappedValue(y float64, d MappedDomain, r MappedRange) (TypedValue, error) {
	raw, err := EncodeMapped(y, d, r)
	if err != nil {
		return TypedValue{}, err
	}
	return TypedValue{Kind: KindMapped, Real: y, Raw: raw}, nil
}

/*
EnumParser returns a ParserFn for an enumerated integer field: the raw
index is looked up in names; unregistered indices render as the
integer itself.
*/
func EnumParser(width int, names map[int]string) ParserFn {
	return func(raw []byte) (TypedValue, error) {
		if len(raw) != width {
			return TypedValue{}, mkerrf("klv: EnumValue: want ", width, " bytes, got ", len(raw))
		}
		idx64, _ := decodeBigEndianInt(raw, false)
		idx := int(idx64)
		text := names[idx]
		return TypedValue{Kind: KindEnum, EnumIdx: idx, EnumText: text, Raw: append([]byte(nil), raw...)}, nil
	}
}

// NewEnumValue builds an Enum TypedValue from a native index.
func NewEnumValue(idx, width int, names map[int]string) TypedValue {
	return TypedValue{Kind: KindEnum, EnumIdx: idx, EnumText: names[idx], Raw: encodeBigEndianInt(int64(idx), width, false)}
}

/*
IMAPBParser returns a ParserFn for an ST 1201 IMAPB field over the
given real range and wire byte length.
*/
func IMAPBParser(d IMAPBDomain) ParserFn {
	return func(raw []byte) (TypedValue, error) {
		v, err := DecodeIMAPB(raw, d)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: KindIMAPB, Real: v, Raw: append([]byte(nil), raw...)}, nil
	}
}

// NewIMAPBValue builds an IMAPB TypedValue from a native real.
func NewIMAPBValue(v float64, d IMAPBDomain) (TypedValue, error) {
	raw, err := EncodeIMAPB(v, d)
	if err != nil {
		return TypedValue{}, err
	}
	return TypedValue{Kind: KindIMAPB, Real: v, Raw: raw}, nil
}

// Location byte widths and domains: latitude 4B [-90,90],
// longitude 4B [-180,180], altitude 2B [-900,19000].
var (
	locationLatDomain = IMAPBDomain{Min: -90, Max: 90, Width: 4}
	locationLonDomain = IMAPBDomain{Min: -180, Max: 180, Width: 4}
	locationAltDomain = IMAPBDomain{Min: -900, Max: 19000, Width: 2}
)

const locationByteLength = 4 + 4 + 2

/*
DecodeLocationValue decodes a 10-byte Location triple (latitude,
longitude, altitude IMAPB fields concatenated in that order).
*/
func DecodeLocationValue(raw []byte) (TypedValue, error) {
	if len(raw) != locationByteLength {
		return TypedValue{}, mkerrf("klv: LocationValue: want ", locationByteLength, " bytes, got ", len(raw))
	}
	lat, err := DecodeIMAPB(raw[0:4], locationLatDomain)
	if err != nil {
		return TypedValue{}, err
	}
	lon, err := DecodeIMAPB(raw[4:8], locationLonDomain)
	if err != nil {
		return TypedValue{}, err
	}
	alt, err := DecodeIMAPB(raw[8:10], locationAltDomain)
	if err != nil {
		return TypedValue{}, err
	}
	return TypedValue{Kind: KindLocation, Loc: Location{Latitude: lat, Longitude: lon, Altitude: alt}, Raw: append([]byte(nil), raw...)}, nil
}

// NewLocationValue builds a Location TypedValue from native lat/lon/alt.
func NewLocationValue(loc Location) (TypedValue, error) {
	latB, err := EncodeIMAPB(loc.Latitude, locationLatDomain)
	if err != nil {
		return TypedValue{}, err
	}
	lonB, err := EncodeIMAPB(loc.Longitude, locationLonDomain)
	if err != nil {
		return TypedValue{}, err
	}
	altB, err := EncodeIMAPB(loc.Altitude, locationAltDomain)
	if err != nil {
		return TypedValue{}, err
	}
	raw := make([]byte, 0, locationByteLength)
	raw = append(raw, latB...)
	raw = append(raw, lonB...)
	raw = append(raw, altB...)
	return TypedValue{Kind: KindLocation, Loc: loc, Raw: raw}, nil
}
