package klv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func syntheticUL() []byte {
	return []byte{
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00, 0x11,
		0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99,
	}
}

func syntheticSetDef() *SetDef {
	def := NewSetDef([]byte{0x01}, "Synthetic Set")
	_ = def.Register(TagDef{Tag: 3, StandardName: "Mission ID", Parse: DecodeStringValue})
	_ = def.Register(TagDef{Tag: 1, StandardName: "Checksum", Parse: DecodeBytesValue})
	return def
}

// buildPacket assembles a top-level packet by hand: a Mission ID child
// followed by a checksum child whose value is computed over the
// preceding bytes, mirroring RecomputePacketChecksum's own algorithm so
// the round trip is self-consistent without depending on any concrete
// tag table package.
func buildPacket(t *testing.T, ul []byte) []byte {
	t.Helper()
	missionID := HexToBytes("03 0A 4D 69 73 73 69 6F 6E 20 31 32")
	value := RecomputePacketChecksum(ul, missionID)

	var out bytes.Buffer
	out.Write(ul)
	out.Write(EncodeBERLength(len(value)))
	out.Write(value)
	return out.Bytes()
}

func TestStreamParserDecodesRegisteredPacket(t *testing.T) {
	ul := syntheticUL()
	reg := NewRegistry()
	require.NoError(t, reg.RegisterUL(ul, syntheticSetDef()))

	packet := buildPacket(t, ul)
	sp, err := NewStreamParser(bytes.NewReader(packet), reg)
	require.NoError(t, err)

	pkt, err := sp.Next()
	require.NoError(t, err)
	require.Equal(t, ul, pkt.UL)
	require.True(t, pkt.ChecksumOK)
	require.Equal(t, pkt.ChecksumStored, pkt.ChecksumComputed)

	e, ok := pkt.Set.Get(3)
	require.True(t, ok)
	require.Equal(t, "Mission 12", e.Value.Str)

	reEncoded, err := pkt.Bytes()
	require.NoError(t, err)
	require.Equal(t, packet, reEncoded)
}

func TestStreamParserSkipsUnregisteredUL(t *testing.T) {
	ul := syntheticUL()
	reg := NewRegistry()
	require.NoError(t, reg.RegisterUL(ul, syntheticSetDef()))

	unknownUL := make([]byte, 16)
	copy(unknownUL, []byte("0123456789abcdef"))
	unknownPacket := buildPacket(t, unknownUL)
	registeredPacket := buildPacket(t, ul)

	var stream bytes.Buffer
	stream.Write(unknownPacket)
	stream.Write(registeredPacket)

	sp, err := NewStreamParser(bytes.NewReader(stream.Bytes()), reg)
	require.NoError(t, err)

	pkt, err := sp.Next()
	require.NoError(t, err)
	require.Equal(t, ul, pkt.UL)
}

func TestStreamParserChecksumMismatchIsNotFatal(t *testing.T) {
	ul := syntheticUL()
	reg := NewRegistry()
	require.NoError(t, reg.RegisterUL(ul, syntheticSetDef()))

	packet := buildPacket(t, ul)
	// corrupt the last checksum byte
	packet[len(packet)-1] ^= 0xFF

	sp, err := NewStreamParser(bytes.NewReader(packet), reg)
	require.NoError(t, err)

	pkt, err := sp.Next()
	require.NoError(t, err)
	require.False(t, pkt.ChecksumOK)
}

func TestStreamParserPlacementWarningWhenChecksumNotLast(t *testing.T) {
	ul := syntheticUL()
	def := NewSetDef([]byte{0x01}, "Synthetic Set")
	_ = def.Register(TagDef{Tag: 1, StandardName: "Checksum", Parse: DecodeBytesValue})
	_ = def.Register(TagDef{Tag: 3, StandardName: "Mission ID", Parse: DecodeStringValue})

	reg := NewRegistry()
	require.NoError(t, reg.RegisterUL(ul, def))

	// checksum element first, Mission ID last: violates the
	// placement invariant even though each child decodes fine.
	value := append(HexToBytes("01 02 00 00"), HexToBytes("03 0A 4D 69 73 73 69 6F 6E 20 31 32")...)

	var stream bytes.Buffer
	stream.Write(ul)
	stream.Write(EncodeBERLength(len(value)))
	stream.Write(value)

	sp, err := NewStreamParser(bytes.NewReader(stream.Bytes()), reg)
	require.NoError(t, err)

	pkt, err := sp.Next()
	require.NoError(t, err)
	require.NotEmpty(t, pkt.PlacementWarning)
}

func TestParseStreamMultiplePackets(t *testing.T) {
	ul := syntheticUL()
	reg := NewRegistry()
	require.NoError(t, reg.RegisterUL(ul, syntheticSetDef()))

	var stream bytes.Buffer
	stream.Write(buildPacket(t, ul))
	stream.Write(buildPacket(t, ul))

	pkts, err := ParseStream(bytes.NewReader(stream.Bytes()), reg)
	require.NoError(t, err)
	require.Len(t, pkts, 2)
}
