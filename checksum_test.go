package klv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum16EvenLength(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x02}
	require.Equal(t, uint16(3), Checksum16(data))
}

func TestChecksum16OddTrailingByte(t *testing.T) {
	// trailing odd byte is shifted left 8 before summing
	data := []byte{0x00, 0x01, 0xAB}
	want := uint16(1) + uint16(0xAB)<<8
	require.Equal(t, want, Checksum16(data))
}

func TestChecksum16Wraparound(t *testing.T) {
	data := make([]byte, 0, 512)
	for i := 0; i < 256; i++ {
		data = append(data, 0xFF, 0xFF)
	}
	require.Equal(t, uint16(0xFF00), Checksum16(data))
}

func TestVerifyPacketChecksumRoundTrip(t *testing.T) {
	key := []byte{0xAA}
	valueExceptChecksum := []byte{0x03, 0x04, 'T', 'E', 'S', 'T'}

	full := RecomputePacketChecksum(key, valueExceptChecksum)
	lengthBytes := EncodeBERLength(len(full))

	stored, computed, ok := VerifyPacketChecksum(key, lengthBytes, full)
	require.True(t, ok)
	require.Equal(t, stored, computed)
}

func TestVerifyPacketChecksumMismatchNotFatal(t *testing.T) {
	key := []byte{0xAA}
	full := []byte{0x03, 0x04, 'T', 'E', 'S', 'T', 0x01, 0x02, 0xDE, 0xAD}
	lengthBytes := EncodeBERLength(len(full))

	stored, computed, ok := VerifyPacketChecksum(key, lengthBytes, full)
	require.False(t, ok)
	require.NotEqual(t, stored, computed)
}

func TestVerifyPacketChecksumTooShort(t *testing.T) {
	_, _, ok := VerifyPacketChecksum([]byte{0xAA}, []byte{0x02}, []byte{0x01})
	require.False(t, ok)
}
