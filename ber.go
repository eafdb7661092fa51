package klv

/*
ber.go implements the ISO/IEC 8825 BER length octet codec used by every
KLV triple, per SMPTE ST 336. Encoding is always canonical: the fewest
octets necessary, never an indefinite form (KLV has no indefinite
length).
*/

/*
EncodeBERLength returns the canonical BER encoding of n, a non-negative
content length. Values below 128 use the short form (a single byte);
larger values use the long form (a length-of-length byte 0x80|k
followed by k big-endian octets).
*/
func EncodeBERLength(n int) []byte {
	if n < 0 {
		panic("klv: EncodeBERLength: negative length")
	}
	if n < 128 {
		return []byte{byte(n)}
	}

	k := byteWidth(n)
	out := make([]byte, 0, 1+k)
	out = append(out, 0x80|byte(k))
	for i := k - 1; i >= 0; i-- {
		out = append(out, byte(n>>(8*uint(i))))
	}
	return out
}

/*
AppendBERLength appends the canonical BER encoding of n to dst, returning
the grown slice. Used on the set/element encode hot path to avoid an
intermediate allocation per child.
*/
func AppendBERLength(dst []byte, n int) []byte {
	if n < 0 {
		panic("klv: AppendBERLength: negative length")
	}
	if n < 128 {
		return append(dst, byte(n))
	}
	k := byteWidth(n)
	dst = append(dst, 0x80|byte(k))
	for i := k - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(8*uint(i))))
	}
	return dst
}

// byteWidth returns the minimum number of base-256 octets needed to
// represent n (n >= 128, so this is always >= 1).
func byteWidth(n int) int {
	k := 0
	for v := n; v > 0; v >>= 8 {
		k++
	}
	if k == 0 {
		k = 1
	}
	return k
}

/*
DecodeBERLength decodes a canonical BER length field from the front of
bs, returning the content length and the number of octets the length
field itself occupied. bs must contain at least the length field; any
trailing bytes beyond the length field are ignored by this function (the
caller is expected to have already isolated the length octets, e.g. via
the Framer, but this also tolerates a longer slice for convenience).

DecodeBERLength rejects non-canonical encodings: a long form used where
the short form would suffice, a declared length-of-length of zero, or a
length field truncated before its declared octet count.
*/
func DecodeBERLength(bs []byte) (length int, consumed int, err error) {
	if len(bs) == 0 {
		return 0, 0, mkerrf("klv: ", ErrMalformedLength.Error(), ": empty length field")
	}

	first := bs[0]
	if first < 128 {
		return int(first), 1, nil
	}

	k := int(first &^ 0x80)
	if k == 0 {
		return 0, 0, mkerrf("klv: ", ErrMalformedLength.Error(), ": declared length-of-length is zero")
	}
	if len(bs) < 1+k {
		return 0, 0, mkerrf("klv: ", ErrMalformedLength.Error(), ": truncated long-form length")
	}

	length = 0
	for i := 1; i <= k; i++ {
		length = (length << 8) | int(bs[i])
	}

	if length < 128 {
		return 0, 0, mkerrf("klv: ", ErrMalformedLength.Error(), ": non-minimal long form for value < 128")
	}
	if byteWidth(length) != k {
		return 0, 0, mkerrf("klv: ", ErrMalformedLength.Error(), ": non-minimal long-form octet count")
	}

	return length, 1 + k, nil
}
