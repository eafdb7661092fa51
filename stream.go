package klv

/*
stream.go implements the top-level driver: a lazy
pull loop over a 16-byte-keyed byte source, dispatching each decoded
Universal Label to its registered SetDef, verifying the ST 0601
checksum, and yielding a Packet per registered top-level KLV triple.
*/

import "io"

const ulKeyLength = 16

// UASLocalSetKey is the ST 0601 UAS Datalink Local Set Universal
// Label.
var UASLocalSetKey = []byte{
	0x06, 0x0E, 0x2B, 0x34, 0x02, 0x0B, 0x01, 0x01,
	0x0E, 0x01, 0x03, 0x01, 0x01, 0x00, 0x00, 0x00,
}

/*
Registry maps top-level Universal Label keys to the SetDef used to
decode their value. It is populated once at init via RegisterUL and
treated as immutable by readers thereafter; runtime mutation after the
first decode is undefined.
*/
type Registry struct {
	defs map[string]*SetDef
}

// NewRegistry allocates an empty top-level UL registry.
func NewRegistry() *Registry { return &Registry{defs: make(map[string]*SetDef)} }

// RegisterUL associates a 16-byte Universal Label with the SetDef used
// to decode it. Registration is idempotent for the same def pointer.
func (r *Registry) RegisterUL(ul []byte, def *SetDef) error {
	if len(ul) != ulKeyLength {
		return mkerrf("klv: RegisterUL: key must be ", ulKeyLength, " bytes")
	}
	k := string(ul)
	if existing, ok := r.defs[k]; ok && existing != def {
		return mkerrf("klv: RegisterUL: UL already registered to a different SetDef")
	}
	r.defs[k] = def
	return nil
}

func (r *Registry) lookup(ul []byte) (*SetDef, bool) {
	d, ok := r.defs[string(ul)]
	return d, ok
}

// DefaultRegistry is the process-wide default top-level registry, for
// callers who don't need an isolated registry of their own.
var DefaultRegistry = NewRegistry()

/*
Packet is one decoded top-level KLV triple: the Universal Label key,
the decoded set tree, and the outcome of checksum verification.
A checksum mismatch is recorded but never prevents the packet from
being yielded.
*/
type Packet struct {
	UL  []byte
	Set *LocalSet

	ChecksumStored   uint16
	ChecksumComputed uint16
	ChecksumOK       bool

	// PlacementWarning is non-empty when the set has children and the
	// last one is not tag 1 (the checksum element); the length of a
	// final tag-1 child is not checked.
	PlacementWarning string
}

/*
Bytes re-encodes the packet, recomputing and overwriting the checksum
element. It requires the set's last child to be the checksum element
(tag 1); if it is not, the packet is encoded as-is and no checksum is
recomputed. That happens for a user-constructed set with no checksum
child, and for a decoded set whose checksum was not the final child.
*/
func (p *Packet) Bytes() ([]byte, error) {
	n := len(p.Set.Children)
	if n == 0 || p.Set.Children[n-1].Tag() != 1 {
		value, err := p.Set.Bytes()
		if err != nil {
			return nil, err
		}
		out := append([]byte(nil), p.UL...)
		out = AppendBERLength(out, len(value))
		return append(out, value...), nil
	}

	var exceptChecksum []byte
	for _, c := range p.Set.Children[:n-1] {
		fb, err := c.FullBytes()
		if err != nil {
			return nil, err
		}
		exceptChecksum = append(exceptChecksum, fb...)
	}

	value := RecomputePacketChecksum(p.UL, exceptChecksum)
	out := append([]byte(nil), p.UL...)
	out = AppendBERLength(out, len(value))
	return append(out, value...), nil
}

/*
StreamParser is the pull-based top-level driver. It reads
16-byte-keyed KLV triples from src, looks the key up in reg, and
decodes recognized payloads into Packets.
*/
type StreamParser struct {
	fr  *Framer
	reg *Registry
}

// NewStreamParser returns a StreamParser reading from src and
// dispatching through reg.
func NewStreamParser(src Source, reg *Registry) (*StreamParser, error) {
	fr, err := NewFramer(src, ulKeyLength)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		reg = DefaultRegistry
	}
	return &StreamParser{fr: fr, reg: reg}, nil
}

/*
Next reads and decodes one top-level packet. It returns io.EOF when
the source is exhausted at a packet boundary. A key that is not
registered in reg is skipped with a warning logged via the package
logger; Next then continues to the following packet rather than
returning a zero Packet.
*/
func (s *StreamParser) Next() (*Packet, error) {
	for {
		key, value, err := s.fr.Next()
		if err != nil {
			return nil, err
		}

		def, ok := s.reg.lookup(key)
		if !ok {
			logWarn("klv: unrecognized top-level Universal Label, skipping packet")
			continue
		}

		set, err := DecodeLocalSet(def, value)
		if err != nil {
			return nil, err
		}

		pkt := &Packet{UL: key, Set: set}
		n := len(set.Children)
		if n > 0 {
			last := set.Children[n-1]
			if last.Tag() == 1 {
				lengthBytes := EncodeBERLength(len(value))
				stored, computed, match := VerifyPacketChecksum(key, lengthBytes, value)
				pkt.ChecksumStored = stored
				pkt.ChecksumComputed = computed
				pkt.ChecksumOK = match
				if !match {
					logWarn("klv: checksum mismatch on decoded packet")
				}
			} else {
				pkt.PlacementWarning = "checksum element is not the final child"
				logWarn(pkt.PlacementWarning)
			}
		}

		return pkt, nil
	}
}

/*
ParseStream decodes every top-level packet from src against reg (or
DefaultRegistry if nil), returning them in source order once the
stream is exhausted. Use StreamParser directly for true pull-based
incremental decoding.
*/
func ParseStream(src Source, reg *Registry) ([]*Packet, error) {
	sp, err := NewStreamParser(src, reg)
	if err != nil {
		return nil, err
	}
	var out []*Packet
	for {
		pkt, err := sp.Next()
		if err != nil {
			if err == io.EOF {
				return out, nil
			}
			return out, err
		}
		out = append(out, pkt)
	}
}
