package asn1

// TLV is the raw (tag, length, value) tuple a low-level peek returns,
// before it is wrapped into a rule-specific Element. Grounded on
// JesseCoretta/go-asn1plus's TLV type.
type TLV struct {
	Tag     Tag
	Length  Length
	Content []byte
	Rule    Rule
}

// Eq reports whether t and other carry the same tag (class,
// construction, number) and the same Rule and, when compareContent is
// true, identical content bytes. Length is not compared.
func (t TLV) Eq(other TLV, compareContent bool) bool {
	if t.Tag != other.Tag || t.Rule != other.Rule {
		return false
	}
	if !compareContent {
		return true
	}
	if len(t.Content) != len(other.Content) {
		return false
	}
	for i := range t.Content {
		if t.Content[i] != other.Content[i] {
			return false
		}
	}
	return true
}

func (t TLV) String() string {
	return t.Rule.String() + " TLV " + t.Tag.String()
}

// peekTLV parses exactly one TLV starting at buf[pos]: a tag, a
// length, and (for definite lengths) that many content octets. For
// the indefinite length form, Content is left empty and Length is
// LengthIndefinite; the caller (element decode) is responsible for
// scanning children up to the end-of-content marker.
func peekTLV(buf []byte, pos int, rule Rule, depth, maxDepth int) (TLV, int, error) {
	tag, tn, err := decodeTag(buf, pos)
	if err != nil {
		return TLV{}, 0, err
	}
	length, ln, err := decodeLength(buf, pos+tn, rule, depth, maxDepth)
	if err != nil {
		return TLV{}, 0, err
	}
	consumed := tn + ln

	if !length.Definite() {
		if tag.Construction != Constructed {
			return TLV{}, 0, newErr(KindMalformedLength, rule, pos, tag, "indefinite length on primitive element")
		}
		return TLV{Tag: tag, Length: length, Rule: rule}, consumed, nil
	}

	start := pos + consumed
	end := start + length.N
	if end > len(buf) {
		return TLV{}, 0, newErr(KindTruncated, rule, pos, tag, "buffer ends before declared content length")
	}
	return TLV{Tag: tag, Length: length, Content: buf[start:end], Rule: rule}, consumed + length.N, nil
}
