package asn1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDERRejectsIndefiniteLength(t *testing.T) {
	buf := []byte{0x30, 0x80, 0x00, 0x00}
	_, err := DERFromBytes(buf)
	require.Error(t, err)
}

func TestDERRejectsNonMinimalInteger(t *testing.T) {
	buf := []byte{0x02, 0x02, 0x00, 0x01} // redundant leading zero
	_, err := DERFromBytes(buf)
	// the element decodes structurally fine; the padding violation only
	// surfaces when the typed accessor is used, per the layered design
	// (structural decode vs semantic validation).
	require.NoError(t, err)
	e, _ := DERFromBytes(buf)
	_, accessorErr := e.GetInt64()
	require.Error(t, accessorErr)
}

func TestDERRejectsOutOfOrderSet(t *testing.T) {
	small := Element{rule: DER}
	small.SetInt64(1)
	big := Element{rule: DER}
	big.SetInt64(1000)

	set := Element{Class: ClassUniversal, TagNumber: TagSet, rule: DER}
	// Build the wire form directly with children in the wrong order,
	// bypassing SetChildren's own canonicalization-on-encode path so
	// the decode-side rejection can be exercised in isolation.
	set.Construction = Constructed
	set.children = []Element{big, small}
	buf := encodeElement(nil, &set, BER) // BER encode preserves the given order verbatim

	_, err := DERFromBytes(buf)
	require.Error(t, err)
}

func TestDERElementBuildAndEncode(t *testing.T) {
	e := NewDERElement()
	e.Class = ClassUniversal
	e.TagNumber = TagBoolean
	e.SetBoolean(true)
	require.Equal(t, []byte{0x01, 0x01, 0xFF}, e.ToBytes())
}

func TestDERSetCanonicalOrderAccepted(t *testing.T) {
	small := Element{rule: DER}
	small.SetInt64(1)
	big := Element{rule: DER}
	big.SetInt64(1000)
	set := Element{Class: ClassUniversal, TagNumber: TagSet, rule: DER}
	set.SetChildren([]Element{big, small})

	buf := encodeElement(nil, &set, DER) // canonicalizes order during encode
	_, err := DERFromBytes(buf)
	require.NoError(t, err)
}
