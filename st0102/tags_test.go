package st0102

import (
	"testing"

	"github.com/mpare/goklv"
	"github.com/mpare/goklv/st0601"
	"github.com/stretchr/testify/require"
)

func TestSecurityClassificationEnum(t *testing.T) {
	td, ok := SecurityLocalSet.Lookup(1)
	require.True(t, ok)
	tv, err := td.Parse([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, "UNCLASSIFIED", tv.EnumText)
}

func TestClassifyingCountryCodingMethodEnum(t *testing.T) {
	td, ok := SecurityLocalSet.Lookup(2)
	require.True(t, ok)
	tv, err := td.Parse([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, "ISO-3166 Two Letter", tv.EnumText)
}

func TestClassifyingCountryString(t *testing.T) {
	td, ok := SecurityLocalSet.Lookup(3)
	require.True(t, ok)
	tv, err := td.Parse([]byte("US"))
	require.NoError(t, err)
	require.Equal(t, "US", tv.Str)
}

func TestSecurityLocalSetRegisteredAsUASLocalSetTag48(t *testing.T) {
	td, ok := st0601.UASLocalSet.Lookup(48)
	require.True(t, ok)
	require.Equal(t, "Security Local Set", td.StandardName)

	nested := klv.HexToBytes("01 01 01 03 02 55 53") // classification=1, country="US"
	tv, err := td.Parse(nested)
	require.NoError(t, err)
	require.Equal(t, klv.KindSet, tv.Kind)
	require.Len(t, tv.Set.Children, 2)

	e, ok := tv.Set.Get(1)
	require.True(t, ok)
	require.Equal(t, "UNCLASSIFIED", e.Value.EnumText)
}

func TestSecurityLocalSetNestedInsideUASPacketRoundTrips(t *testing.T) {
	securityValue := klv.HexToBytes("01 01 04") // classification = SECRET
	var nestedField []byte
	nestedField = append(nestedField, 0x30)
	nestedField = append(nestedField, klv.EncodeBERLength(len(securityValue))...)
	nestedField = append(nestedField, securityValue...)

	value := append([]byte(nil), nestedField...)
	ls, err := klv.DecodeLocalSet(st0601.UASLocalSet, value)
	require.NoError(t, err)
	require.Len(t, ls.Children, 1)

	rows := ls.MetadataList()
	require.Len(t, rows, 2)
	require.Equal(t, "Security Local Set", rows[0].StandardName)
	require.Equal(t, "Security Classification", rows[1].StandardName)
	require.Equal(t, "SECRET", rows[1].Rendered)

	out, err := ls.Bytes()
	require.NoError(t, err)
	require.Equal(t, value, out)
}
