package klv

/*
set.go implements the local-set parser described in a composite
element whose value is itself a 1-byte-keyed KLV stream, decoded
against a SetDef's tag table, with unregistered tags preserved as
UnknownElement and degraded ValueConstructionError preserved the same
way.
*/

import (
	"bytes"
	"io"
)

/*
LocalSet is a decoded (or user-constructed) instance of a SetDef: an
ordered sequence of child Elements. Insertion order mirrors decode
order and is what Bytes reproduces on encode.
*/
type LocalSet struct {
	Def      *SetDef
	Children []Element
}

/*
DecodeLocalSet decodes value (the set's content bytes, not including
its own key/length) against def's tag table. Each child tag is looked
up in def; on a hit the registered parser constructs a typed value, on
a miss (or a parser error) the child degrades to an UnknownElement
holding its original bytes.
*/
func DecodeLocalSet(def *SetDef, value []byte) (*LocalSet, error) {
	fr, err := NewFramer(bytes.NewReader(value), 1)
	if err != nil {
		return nil, err
	}

	ls := &LocalSet{Def: def}
	for {
		key, raw, err := fr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return ls, err
		}
		if len(key) == 0 {
			break
		}

		tag := key[0]
		elem := Element{Key: append([]byte(nil), key...)}

		if def != nil {
			if td, ok := def.Lookup(tag); ok {
				tv, perr := td.Parse(raw)
				if perr == nil {
					elem.Value = tv
					elem.StandardName = td.StandardName
					elem.NameA = td.NameA
					elem.NameB = td.NameB
					ls.Children = append(ls.Children, elem)
					continue
				}
				// ValueConstructionError: degrade to UnknownElement,
				// preserving round-trip bytes.
			}
		}

		elem.Value = TypedValue{Kind: KindUnknown, Raw: append([]byte(nil), raw...)}
		ls.Children = append(ls.Children, elem)
	}

	return ls, nil
}

/*
Bytes concatenates bytes(child) for every child in insertion order.
This is the set's *value* bytes; wrapping in key || BER(len(value)) ||
value is the caller's responsibility (done by Element.FullBytes for a
nested set, or by Packet.Bytes for the top-level UAS local set, which
also recomputes the checksum).
*/
func (s *LocalSet) Bytes() ([]byte, error) {
	var out []byte
	for _, c := range s.Children {
		fb, err := c.FullBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, fb...)
	}
	return out, nil
}

// Get returns the first child with the given local tag, if any.
func (s *LocalSet) Get(tag byte) (Element, bool) {
	for _, c := range s.Children {
		if len(c.Key) == 1 && c.Key[0] == tag {
			return c, true
		}
	}
	return Element{}, false
}

// Append adds a child element, preserving insertion order.
func (s *LocalSet) Append(e Element) { s.Children = append(s.Children, e) }

/*
MetadataRow is one row of a MetadataList projection: the
standard name plus its two source-table variant names, and the
rendered display value.
*/
type MetadataRow struct {
	Tag          int
	StandardName string
	NameA        string
	NameB        string
	Rendered     string
}

/*
MetadataList walks the set tree recursively (depth-first, encounter
order) and emits a MetadataRow for every element that declares
descriptor names, including elements nested inside child sets (e.g.
ST 0102 under ST 0601 tag 0x30).
*/
func (s *LocalSet) MetadataList() []MetadataRow {
	var rows []MetadataRow
	s.walkMetadata(&rows)
	return rows
}

func (s *LocalSet) walkMetadata(rows *[]MetadataRow) {
	for _, c := range s.Children {
		if c.StandardName != "" {
			*rows = append(*rows, MetadataRow{
				Tag:          c.Tag(),
				StandardName: c.StandardName,
				NameA:        c.NameA,
				NameB:        c.NameB,
				Rendered:     c.Value.String(),
			})
		}
		if c.Value.Kind == KindSet && c.Value.Set != nil {
			c.Value.Set.walkMetadata(rows)
		}
	}
}

/*
Structure renders a debug tree dump of the set, one line per child,
indented by nesting depth. It is diagnostic only; it is never used to
reconstruct bytes.
*/
func (s *LocalSet) Structure() string {
	var b []byte
	s.appendStructure(&b, 0)
	return string(b)
}

func (s *LocalSet) appendStructure(b *[]byte, depth int) {
	for _, c := range s.Children {
		for i := 0; i < depth; i++ {
			*b = append(*b, ' ', ' ')
		}
		name := c.StandardName
		if name == "" {
			name = "tag " + itoa(c.Tag())
		}
		*b = append(*b, name...)
		*b = append(*b, ": "...)
		*b = append(*b, c.Value.String()...)
		*b = append(*b, '\n')
		if c.Value.Kind == KindSet && c.Value.Set != nil {
			c.Value.Set.appendStructure(b, depth+1)
		}
	}
}

/*
SetParser returns a ParserFn that decodes a nested LocalSet (e.g. ST
0102 Security Local Set nested under ST 0601 tag 0x30), wrapping
the result as a KindSet TypedValue. A construction error inside the
nested set still yields degraded UnknownElement children internally;
DecodeLocalSet itself only errors on a malformed framer read.
*/
func SetParser(def *SetDef) ParserFn {
	return func(raw []byte) (TypedValue, error) {
		nested, err := DecodeLocalSet(def, raw)
		if err != nil {
			return TypedValue{}, err
		}
		return TypedValue{Kind: KindSet, Set: nested, Raw: append([]byte(nil), raw...)}, nil
	}
}
