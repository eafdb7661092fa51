/*
Package klv implements a bit-exact codec for MISB ST 0601 UAS Datalink
Local Metadata Sets (and the ST 0102 Security Local Set nested inside),
encoded with SMPTE ST 336 Key-Length-Value framing.

The package covers exactly the codec machinery: BER length octets,
fixed-point and IMAPB mapping, the ST 0601 microsecond time codec, a
pull-based KLV framer, a tagged-union element model, a local-set
parser with a tag->parser registry, the top-level stream parser, and
the ST 0601 16-bit checksum. The concrete ST 0601/ST 0102 tag tables
are data, supplied by the sibling st0601 and st0102 packages, which
register themselves into this package's registries at init time; this
package has no knowledge of any concrete tag.
*/
package klv
