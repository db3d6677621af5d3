package asn1

// Well-known object identifiers for the three encoding rules
// themselves (joint-iso-itu-t(2) asn1(1) basic-encoding(1) /
// ber-derived(2) canonical-encoding(0) / distinguished-encoding(1)),
// published so a caller can tag which rule produced an encoded value
// without hand-assembling the arcs.
var (
	OIDBasicEncodingRules        = ObjectIdentifier{Arcs: []uint64{2, 1, 1}}
	OIDCanonicalEncodingRules    = ObjectIdentifier{Arcs: []uint64{2, 1, 2, 0}}
	OIDDistinguishedEncodingRules = ObjectIdentifier{Arcs: []uint64{2, 1, 2, 1}}
)
