package klv

/*
framer.go implements the pull-based KLV tokenizer: given a byte
source and a key length (16 at top level, 1 inside a local set), it
yields successive (key, value) pairs. It is a lazy finite sequence
driven entirely by the caller's calls to Next; it holds no goroutines
and is restartable only by wrapping a fresh Source.
*/

import "io"

/*
Source is any synchronous readable byte stream able to report a clean
EOF only at a triple boundary. It is satisfied by *bytes.Reader,
*os.File, *bufio.Reader, or any other io.Reader.
*/
type Source interface {
	io.Reader
}

/*
Framer is a pull-based tokenizer over a Source, parameterized by the
fixed key length of the KLV stream it reads.
*/
type Framer struct {
	src    Source
	keyLen int
	lenBuf [5]byte // longest BER length field this codec supports (1 + 4 octets)
	keyBuf []byte
}

/*
NewFramer returns a Framer that reads key_length-byte keys followed by
a BER length and a value, from src. keyLength is typically 16 (top
level, Universal Label) or 1 (inside a local set).
*/
func NewFramer(src Source, keyLength int) (*Framer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if keyLength <= 0 {
		return nil, mkerrf("klv: NewFramer: invalid key length ", keyLength)
	}
	return &Framer{src: src, keyLen: keyLength, keyBuf: make([]byte, keyLength)}, nil
}

/*
Next reads one KLV triple from the underlying source. A clean EOF
encountered while reading the key signals the end of the stream: Next
returns io.EOF and key/value are nil. Any other EOF (mid-length,
mid-value) is reported as a malformed-packet error, not a
clean end-of-stream.
*/
func (f *Framer) Next() (key []byte, value []byte, err error) {
	if _, err = io.ReadFull(f.src, f.keyBuf); err != nil {
		if err == io.EOF {
			return nil, nil, io.EOF
		}
		return nil, nil, mkerrf("klv: Framer.Next: ", ErrTruncatedKey.Error(), ": ", err.Error())
	}
	key = append([]byte(nil), f.keyBuf...)

	length, err := f.readLength()
	if err != nil {
		return nil, nil, err
	}

	if length == 0 {
		return key, []byte{}, nil
	}

	value = make([]byte, length)
	if _, err = io.ReadFull(f.src, value); err != nil {
		return nil, nil, mkerrf("klv: Framer.Next: ", ErrTruncatedValue.Error(), ": ", err.Error())
	}
	return key, value, nil
}

// readLength reads a BER length field one octet at a time (the long
// form's octet count is only known after the first byte).
func (f *Framer) readLength() (int, error) {
	if _, err := io.ReadFull(f.src, f.lenBuf[:1]); err != nil {
		return 0, mkerrf("klv: Framer.readLength: ", ErrMalformedLength.Error(), ": ", err.Error())
	}
	if f.lenBuf[0] < 128 {
		return int(f.lenBuf[0]), nil
	}

	k := int(f.lenBuf[0] &^ 0x80)
	if k == 0 || k > 4 {
		return 0, mkerrf("klv: Framer.readLength: ", ErrMalformedLength.Error(), ": bad length-of-length ", k)
	}
	if _, err := io.ReadFull(f.src, f.lenBuf[1:1+k]); err != nil {
		return 0, mkerrf("klv: Framer.readLength: ", ErrMalformedLength.Error(), ": ", err.Error())
	}

	length, _, err := DecodeBERLength(f.lenBuf[:1+k])
	if err != nil {
		return 0, err
	}
	return length, nil
}
