package asn1

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCEROctetStringSegmentation(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 2500)
	e := NewCERElement()
	e.Class = ClassUniversal
	e.TagNumber = TagOctetString
	e.SetOctetString(payload)

	require.True(t, e.IsConstructed())
	require.Len(t, e.Children(), 3) // 1000 + 1000 + 500

	enc := e.ToBytes()
	got, err := CERFromBytes(enc)
	require.NoError(t, err)
	back, err := got.GetOctetString()
	require.NoError(t, err)
	require.Equal(t, payload, back)
}

func TestCEROctetStringUnderThresholdStaysPrimitive(t *testing.T) {
	e := NewCERElement()
	e.Class = ClassUniversal
	e.TagNumber = TagOctetString
	e.SetOctetString([]byte("short"))
	require.False(t, e.IsConstructed())
}

func TestCERBitStringSegmentation(t *testing.T) {
	bits := make([]byte, 1500)
	for i := range bits {
		bits[i] = byte(i)
	}
	b := BitString{Bytes: bits, Length: len(bits) * 8}

	e := NewCERElement()
	e.Class = ClassUniversal
	e.TagNumber = TagBitString
	e.SetBitString(b)
	require.True(t, e.IsConstructed())

	enc := e.ToBytes()
	got, err := CERFromBytes(enc)
	require.NoError(t, err)
	back, err := got.GetBitString()
	require.NoError(t, err)
	require.Equal(t, b.Length, back.Length)
	require.Equal(t, b.Bytes, back.Bytes)
}

func TestCERConstructedRequiresIndefiniteLength(t *testing.T) {
	// A constructed element under CER using a definite length is malformed.
	buf := []byte{0x30, 0x02, 0x01, 0x00}
	_, err := CERFromBytes(buf)
	require.Error(t, err)
}

func TestCERSetOrderedByTagBytes(t *testing.T) {
	highTag := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 5, rule: CER}
	highTag.SetNull()
	lowTag := Element{Class: ClassUniversal, Construction: Primitive, TagNumber: TagInteger, rule: CER}
	lowTag.SetInt64(1)

	set := Element{Class: ClassUniversal, TagNumber: TagSet, rule: CER}
	set.SetChildren([]Element{highTag, lowTag})

	enc := encodeElement(nil, &set, CER)
	got, _, err := decodeElement(enc, 0, CER, 0, DecodeOptions{})
	require.NoError(t, err)
	require.True(t, got.Children()[0].Tag().IsUniversal(TagInteger))
}
