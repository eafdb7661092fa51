package klv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testSetDef() *SetDef {
	def := NewSetDef([]byte{0x01}, "Test Set")
	_ = def.Register(TagDef{Tag: 1, StandardName: "Mission ID", Parse: DecodeStringValue})
	_ = def.Register(TagDef{Tag: 2, StandardName: "Count", Parse: IntegerParser(1, false)})
	return def
}

func TestDecodeLocalSetKnownTags(t *testing.T) {
	def := testSetDef()
	value := HexToBytes("01 04 54 45 53 54 02 01 05")

	ls, err := DecodeLocalSet(def, value)
	require.NoError(t, err)
	require.Len(t, ls.Children, 2)

	e, ok := ls.Get(1)
	require.True(t, ok)
	require.Equal(t, "TEST", e.Value.Str)
	require.Equal(t, "Mission ID", e.StandardName)

	e2, ok := ls.Get(2)
	require.True(t, ok)
	require.Equal(t, int64(5), e2.Value.Int)
}

func TestDecodeLocalSetUnknownTagPreservesBytes(t *testing.T) {
	def := testSetDef()
	value := HexToBytes("09 02 AB CD")

	ls, err := DecodeLocalSet(def, value)
	require.NoError(t, err)
	require.Len(t, ls.Children, 1)

	e := ls.Children[0]
	require.Equal(t, KindUnknown, e.Value.Kind)
	require.Equal(t, []byte{0xAB, 0xCD}, e.Value.Raw)

	out, err := ls.Bytes()
	require.NoError(t, err)
	require.Equal(t, value, out)
}

func TestDecodeLocalSetDegradesFailedParse(t *testing.T) {
	def := NewSetDef([]byte{0x01}, "Test Set")
	_ = def.Register(TagDef{Tag: 1, StandardName: "Count", Parse: IntegerParser(2, false)})

	// declares 1 byte for a tag registered as a 2-byte integer: the
	// parser errors and the element must degrade to KindUnknown.
	value := []byte{0x01, 0x01, 0xFF}
	ls, err := DecodeLocalSet(def, value)
	require.NoError(t, err)
	require.Len(t, ls.Children, 1)
	require.Equal(t, KindUnknown, ls.Children[0].Value.Kind)
	require.Equal(t, []byte{0xFF}, ls.Children[0].Value.Raw)
}

func TestLocalSetZeroLengthStringElement(t *testing.T) {
	def := testSetDef()
	value := []byte{0x01, 0x00}
	ls, err := DecodeLocalSet(def, value)
	require.NoError(t, err)
	e, ok := ls.Get(1)
	require.True(t, ok)
	require.Empty(t, e.Value.Str)

	out, err := ls.Bytes()
	require.NoError(t, err)
	require.Equal(t, value, out)
}

func TestSetDefRegisterConflictErrors(t *testing.T) {
	def := NewSetDef([]byte{0x01}, "Test Set")
	require.NoError(t, def.Register(TagDef{Tag: 1, StandardName: "A", Parse: DecodeStringValue}))
	err := def.Register(TagDef{Tag: 1, StandardName: "B", Parse: DecodeStringValue})
	require.Error(t, err)
}

func TestSetDefRegisterIdempotent(t *testing.T) {
	def := NewSetDef([]byte{0x01}, "Test Set")
	tg := TagDef{Tag: 1, StandardName: "A", Parse: DecodeStringValue}
	require.NoError(t, def.Register(tg))
	require.NoError(t, def.Register(tg))
}

func TestMetadataListRecursesIntoNestedSets(t *testing.T) {
	inner := NewSetDef([]byte{0x30}, "Inner")
	_ = inner.Register(TagDef{Tag: 1, StandardName: "Inner Field", Parse: DecodeStringValue})

	outer := NewSetDef([]byte{0x01}, "Outer")
	_ = outer.Register(TagDef{Tag: 1, StandardName: "Outer Field", Parse: DecodeStringValue})
	_ = outer.Register(TagDef{Tag: 48, StandardName: "Nested Set", Parse: SetParser(inner)})

	value := append([]byte{0x01, 0x02, 'h', 'i'}, HexToBytes("30 03 01 01 78")...)
	ls, err := DecodeLocalSet(outer, value)
	require.NoError(t, err)

	rows := ls.MetadataList()
	require.Len(t, rows, 3)
	require.Equal(t, "Outer Field", rows[0].StandardName)
	require.Equal(t, "Nested Set", rows[1].StandardName)
	require.Equal(t, "Inner Field", rows[2].StandardName)
	require.Equal(t, "x", rows[2].Rendered)
}
