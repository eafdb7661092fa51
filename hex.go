package klv

/*
hex.go provides a whitespace- and dash-tolerant hex fixture decoder,
useful for the test vectors this package is verified against: those
are often written as e.g. "06 0E 2B 34 - 02 0B 01 01 – 0E 01 03 01 - 01
00 00 00", mixing spaces, hyphens, and en-dashes as visual grouping.
*/

/*
HexToBytes decodes s, a hex string that may contain spaces, hyphens,
en-dashes, and em-dashes as ignorable separators, into raw bytes. It
panics on a malformed hex digit, since it is a test/fixture helper, not
a wire-format decoder.
*/
func HexToBytes(s string) []byte {
	var digits []byte
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '–', '—':
			continue
		default:
			digits = append(digits, byte(r))
		}
	}
	if len(digits)%2 != 0 {
		panic("klv: HexToBytes: odd number of hex digits")
	}
	out := make([]byte, len(digits)/2)
	for i := 0; i < len(out); i++ {
		hi := hexNibble(digits[2*i])
		lo := hexNibble(digits[2*i+1])
		out[i] = hi<<4 | lo
	}
	return out
}

func hexNibble(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		panic("klv: HexToBytes: invalid hex digit")
	}
}
