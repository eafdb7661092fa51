package klv

/*
err.go contains error constructors and sentinel values used throughout
the package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

var (
	// ErrMalformedLength indicates a BER length field could not be
	// decoded: non-minimal long form, truncated length-of-length, or
	// a declared length-of-length of zero.
	ErrMalformedLength error = mkerr("klv: malformed BER length")

	// ErrTruncatedValue indicates EOF was reached before a declared
	// value length could be fully read.
	ErrTruncatedValue error = mkerr("klv: truncated value")

	// ErrTruncatedKey indicates EOF was reached mid-key.
	ErrTruncatedKey error = mkerr("klv: truncated key")

	// ErrOutOfRange indicates an encode-time real value fell outside
	// the declared range of a Mapped or IMAPB field.
	ErrOutOfRange error = mkerr("klv: value out of declared range")

	// ErrWrongByteLength indicates a caller supplied a value whose
	// encoded form does not fit the tag's declared byte length.
	ErrWrongByteLength error = mkerr("klv: value does not fit declared byte length")

	// ErrNoParser indicates SetDef.Register was handed a TagDef with a
	// nil parser function.
	ErrNoParser error = mkerr("klv: nil parser function")

	// ErrNilSource indicates a Framer was constructed over a nil
	// byte source.
	ErrNilSource error = mkerr("klv: nil byte source")
)

var errCache sync.Map

/*
mkerrf builds an error from the concatenation of parts (string or int),
caching the result so repeated malformed-input errors with the same
message share one error value. The message string itself is still
built on every call.
*/
func mkerrf(parts ...any) error {
	b := make([]byte, 0, 64)
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b = append(b, v...)
		case int:
			b = append(b, itoa(v)...)
		default:
			b = append(b, "<?>"...)
		}
	}
	msg := string(b)

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
