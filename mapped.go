package klv

/*
mapped.go implements the two linear integer<->real mappings used by
ST 0601 tags: the plain "Mapped" form (ST 0601 section 8) and IMAPB
(ST 1201). Both are exactly invertible on the declared integer lattice.
*/

import "math"

/*
MappedDomain describes the raw integer lattice a Mapped field is decoded
from / encoded to: the inclusive endpoints x1, x2 and the byte width of
the wire field. Signedness is derived from the endpoints: x1 < 0
implies a signed field. Width is given explicitly and is not checked
against the endpoints.
*/
type MappedDomain struct {
	X1, X2 float64
	Width  int // byte length of the wire field
}

// Signed reports whether the domain's negative endpoint makes this a
// signed fixed-point field.
func (d MappedDomain) Signed() bool { return d.X1 < 0 }

/*
MappedRange describes the real-world bounds (y1, y2) a raw integer maps
onto.
*/
type MappedRange struct {
	Y1, Y2 float64
}

// errorSentinel returns the most-negative representable signed integer
// for the declared byte width — the ST 0601 "no data" indicator. Only
// meaningful for signed domains.
func errorSentinel(width int) int64 {
	return -(int64(1) << uint(8*width-1))
}

/*
DecodeMapped interprets a big-endian integer field of d.Width bytes as a
real value on range r, per the domain/range pair declared for the tag.
If the raw value equals the domain's error sentinel (most-negative
signed integer for the declared width), the symbolic error-indicator
string is returned instead of a numeric value and ok is false.
*/
func DecodeMapped(bs []byte, d MappedDomain, r MappedRange) (value float64, sentinel string, ok bool, err error) {
	if len(bs) != d.Width {
		return 0, "", false, mkerrf("klv: DecodeMapped: want ", d.Width, " bytes, got ", len(bs))
	}

	x, err := decodeBigEndianInt(bs, d.Signed())
	if err != nil {
		return 0, "", false, err
	}

	if d.Signed() && x == errorSentinel(d.Width) {
		return 0, hexPrefix(bs) + " (Standard error indicator)", false, nil
	}

	m := (r.Y2 - r.Y1) / (d.X2 - d.X1)
	value = m*(float64(x)-d.X1) + r.Y1
	return value, "", true, nil
}

/*
EncodeMapped maps a real value y on range r back onto the integer
lattice declared by d and returns the big-endian wire bytes. Values
outside [r.Y1, r.Y2] (beyond float rounding slack) return ErrOutOfRange
rather than clamping.
*/
func EncodeMapped(y float64, d MappedDomain, r MappedRange) ([]byte, error) {
	m := (r.Y2 - r.Y1) / (d.X2 - d.X1)
	x := math.Round((y-r.Y1)/m + d.X1)

	if x < d.X1 || x > d.X2 {
		return nil, ErrOutOfRange
	}

	return encodeBigEndianInt(int64(x), d.Width, d.Signed()), nil
}

/*
EncodeMappedSentinel returns the wire bytes for the ST 0601 "no data"
error indicator on a signed domain of the given byte width.
*/
func EncodeMappedSentinel(width int) []byte {
	return encodeBigEndianInt(errorSentinel(width), width, true)
}

func decodeBigEndianInt(bs []byte, signed bool) (int64, error) {
	var u uint64
	for _, b := range bs {
		u = (u << 8) | uint64(b)
	}
	if !signed {
		return int64(u), nil
	}
	bits := uint(8 * len(bs))
	if bits < 64 && u&(1<<(bits-1)) != 0 {
		u |= ^uint64(0) << bits
	}
	return int64(u), nil
}

// encodeBigEndianInt truncates x's two's-complement bit pattern to the
// low width bytes; signed is accepted for call-site symmetry with
// decodeBigEndianInt but does not change the encoding (two's
// complement truncation is correct for both signedness cases).
func encodeBigEndianInt(x int64, width int, signed bool) []byte {
	_ = signed
	out := make([]byte, width)
	u := uint64(x)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(u)
		u >>= 8
	}
	return out
}

func hexPrefix(bs []byte) string {
	const hexdigits = "0123456789ABCDEF"
	out := make([]byte, 2+2*len(bs))
	out[0], out[1] = '0', 'x'
	for i, b := range bs {
		out[2+2*i] = hexdigits[b>>4]
		out[2+2*i+1] = hexdigits[b&0xF]
	}
	return string(out)
}

/*
IMAPBDomain describes an ST 1201 Integer-Mapped Application of a real
range (byte length supplied at decode time rather than fixed per tag).
IMAPB is NOT the Mapped form above: it reserves the top of
the integer lattice for +/-infinity and NaN per ST 1201, and its slope
is computed from the *usable* lattice, not the full 2's-complement
range.
*/
type IMAPBDomain struct {
	Min, Max float64
	Width    int
}

// imapbUsableMax returns the highest code of the unsigned lattice of the
// given byte width that maps to a finite value. The top 3 codes are
// reserved; code 0 maps to the range minimum.
func imapbUsableMax(width int) int64 {
	return (int64(1) << uint(8*width)) - 1 - 3
}

/*
DecodeIMAPB decodes an ST 1201 IMAPB field of d.Width bytes onto the
real range [d.Min, d.Max].
*/
func DecodeIMAPB(bs []byte, d IMAPBDomain) (float64, error) {
	if len(bs) != d.Width {
		return 0, mkerrf("klv: DecodeIMAPB: want ", d.Width, " bytes, got ", len(bs))
	}
	raw, _ := decodeBigEndianInt(bs, false)

	usableMax := imapbUsableMax(d.Width)
	if raw > usableMax {
		// Reserved code (NaN / +-Inf bracket): report as the
		// nearest bound rather than fabricate a sentinel type,
		// since Location/IMAPB fields have no dedicated sentinel
		// rendering elsewhere in this package.
		return d.Max, nil
	}

	span := d.Max - d.Min
	step := span / float64(usableMax)
	return d.Min + step*float64(raw), nil
}

/*
EncodeIMAPB maps a real value v on [d.Min, d.Max] to its ST 1201 IMAPB
wire bytes.
*/
func EncodeIMAPB(v float64, d IMAPBDomain) ([]byte, error) {
	if v < d.Min || v > d.Max {
		return nil, mkerrf("klv: EncodeIMAPB: ", ErrOutOfRange.Error())
	}
	usableMax := imapbUsableMax(d.Width)
	span := d.Max - d.Min
	step := span / float64(usableMax)
	raw := int64(math.Round((v - d.Min) / step))
	return encodeBigEndianInt(raw, d.Width, false), nil
}
