package klv

/*
timecodec.go implements the MISB ST 0601/ST 0603 Precision Time Stamp
codec: 8 bytes, big-endian unsigned microseconds since the UNIX
epoch, UTC, no leap seconds.
*/

import (
	"encoding/binary"
	"time"
)

// dateTimeByteLength is the fixed wire width of a DateTime value.
const dateTimeByteLength = 8

/*
DecodeDateTime interprets an 8-byte big-endian unsigned microsecond
count as a UTC instant. The input must be exactly 8 bytes.
*/
func DecodeDateTime(bs []byte) (time.Time, error) {
	if len(bs) != dateTimeByteLength {
		return time.Time{}, mkerrf("klv: DecodeDateTime: want ", dateTimeByteLength, " bytes, got ", len(bs))
	}
	micros := binary.BigEndian.Uint64(bs)
	sec := int64(micros / 1_000_000)
	usec := int64(micros % 1_000_000)
	return time.Unix(sec, usec*1000).UTC(), nil
}

/*
EncodeDateTime renders t as 8 big-endian bytes of microseconds since the
UNIX epoch. Sub-microsecond precision is truncated, matching the wire
format's intrinsic resolution.
*/
func EncodeDateTime(t time.Time) []byte {
	micros := t.Unix()*1_000_000 + int64(t.Nanosecond())/1000
	out := make([]byte, dateTimeByteLength)
	binary.BigEndian.PutUint64(out, uint64(micros))
	return out
}
