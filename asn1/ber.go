package asn1

// BERElement is an ASN.1 element decoded or built for encoding under
// Basic Encoding Rules. BER accepts every legal wire form (definite
// or indefinite length, any padded-but-valid INTEGER encoding, any
// SET/SET OF child order); it is the permissive end of the three
// rules and the one most decoders must tolerate on input.
type BERElement struct {
	Element
}

// NewBERElement returns an empty BERElement holding the default
// END-OF-CONTENT placeholder tag, ready for a Set* call to give it a
// real type and value.
func NewBERElement() *BERElement {
	return &BERElement{Element: newElement(BER)}
}

// BERFromBytes decodes a single top-level BER element from buf,
// failing if any bytes remain afterward.
func BERFromBytes(buf []byte, opts ...DecodeOptions) (*BERElement, error) {
	e, n, err := BERFromBytesWithCursor(buf, 0, opts...)
	if err != nil {
		return nil, err
	}
	if n != len(buf) {
		return nil, newErr(KindLengthMismatch, BER, n, e.Tag(), "trailing bytes after top-level element")
	}
	return e, nil
}

// BERFromBytesWithCursor decodes a single BER element starting at
// buf[cursor] and returns the cursor position immediately past it,
// for decoding a run of sibling top-level elements sharing one
// buffer.
func BERFromBytesWithCursor(buf []byte, cursor int, opts ...DecodeOptions) (*BERElement, int, error) {
	o := resolveOptions(opts)
	el, n, err := decodeElement(buf, cursor, BER, 0, o)
	if err != nil {
		return nil, 0, err
	}
	return &BERElement{Element: el}, cursor + n, nil
}

// ToBytes serializes e under Basic Encoding Rules.
func (e *BERElement) ToBytes() []byte {
	return encodeElement(nil, &e.Element, BER)
}

// collectStringSegments walks children, which BER permits to be either
// primitive segments or further nested constructed elements of
// arbitrary depth (X.690 §8.6.3/§8.7), flattening into the ordered list
// of primitive segments' raw content. Every segment, at any depth, must
// carry the same universal tag number as the enclosing element.
func collectStringSegments(children []Element, tagNumber uint32) ([][]byte, error) {
	var segs [][]byte
	for i := range children {
		c := &children[i]
		if c.Class != ClassUniversal || c.TagNumber != tagNumber {
			return nil, newErr(KindConstructionMismatch, BER, 0, c.Tag(), "ber constructed string segment tag mismatch")
		}
		if c.Construction == Primitive {
			segs = append(segs, c.Value)
			continue
		}
		nested, err := collectStringSegments(c.children, tagNumber)
		if err != nil {
			return nil, err
		}
		segs = append(segs, nested...)
	}
	return segs, nil
}

// GetOctetString decodes e as an OCTET STRING, reassembling a BER
// constructed (segmented, arbitrarily nested) encoding when present.
func (e *BERElement) GetOctetString() ([]byte, error) {
	if e.Construction == Primitive {
		return e.Element.GetOctetString()
	}
	segs, err := collectStringSegments(e.children, TagOctetString)
	if err != nil {
		return nil, err
	}
	var out []byte
	for _, s := range segs {
		out = append(out, s...)
	}
	return out, nil
}

// GetBitString decodes e as a BIT STRING, reassembling a BER
// constructed (segmented, arbitrarily nested) encoding when present.
// BER is tolerant here: unlike CER it does not require that only the
// final segment carry unused bits.
func (e *BERElement) GetBitString() (BitString, error) {
	if e.Construction == Primitive {
		return e.Element.GetBitString()
	}
	segs, err := collectStringSegments(e.children, TagBitString)
	if err != nil {
		return BitString{}, err
	}
	var bytes []byte
	length := 0
	for _, s := range segs {
		seg, err := decodeBitStringPrimitive(s, BER)
		if err != nil {
			return BitString{}, err
		}
		bytes = append(bytes, seg.Bytes...)
		length += seg.Length
	}
	return BitString{Bytes: bytes, Length: length}, nil
}

// GetRestrictedString decodes e's content as the given restricted
// character-string kind, reassembling a BER constructed (segmented,
// arbitrarily nested) encoding when present.
func (e *BERElement) GetRestrictedString(kind StringKind) (string, error) {
	if e.Construction == Primitive {
		return e.Element.GetRestrictedString(kind)
	}
	segs, err := collectStringSegments(e.children, segmentTag(kind))
	if err != nil {
		return "", err
	}
	var raw []byte
	for _, s := range segs {
		raw = append(raw, s...)
	}
	if err := ValidateRestrictedString(raw, kind); err != nil {
		return "", err
	}
	switch kind {
	case KindUniversalString:
		return decodeUniversalString(raw)
	case KindBMPString:
		return decodeBMPString(raw)
	default:
		return string(raw), nil
	}
}
