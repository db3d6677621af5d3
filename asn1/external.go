package asn1

// This file implements the three context-switching record types:
// EXTERNAL, EMBEDDED PDV and CHARACTER STRING. All three share an
// identification CHOICE (which syntax or presentation context the
// embedded data-value was encoded under) followed by the data-value
// itself; EXTERNAL additionally carries an optional object descriptor
// and a three-way encoding CHOICE instead of a bare octet string.
//
// This package assigns context tags 0-5 to the identification
// CHOICE's alternatives, in the order below, and uses the same
// numbering for all three types; every alternative is accepted by
// all three (CER/DER restrictions aside):
//
//	[0] syntaxes                SEQUENCE { abstract OID, transfer OID }
//	[1] syntax                  OBJECT IDENTIFIER
//	[2] presentation-context-id INTEGER
//	[3] context-negotiation     SEQUENCE { presentation-context-id [0] INTEGER, transfer-syntax [1] OID }
//	[4] transfer-syntax         OBJECT IDENTIFIER
//	[5] fixed                   NULL

// IdentificationKind selects which alternative of the identification
// CHOICE an Identification value holds.
type IdentificationKind int

const (
	IdentSyntaxes IdentificationKind = iota + 1
	IdentSyntax
	IdentPresentationContextID
	IdentContextNegotiation
	IdentTransferSyntax
	IdentFixed
)

// SyntaxPair is the "syntaxes" identification alternative: an abstract
// syntax paired with the transfer syntax used to encode it.
type SyntaxPair struct {
	Abstract ObjectIdentifier
	Transfer ObjectIdentifier
}

// ContextNegotiation is the "context-negotiation" identification
// alternative: a presentation context identifier paired with the
// transfer syntax negotiated for it.
type ContextNegotiation struct {
	PresentationContextID int64
	TransferSyntax        ObjectIdentifier
}

// Identification is the shared identification CHOICE of EXTERNAL,
// EMBEDDED PDV and CHARACTER STRING. Exactly the field matching Kind
// is meaningful.
type Identification struct {
	Kind                  IdentificationKind
	Syntaxes              SyntaxPair
	Syntax                ObjectIdentifier
	PresentationContextID int64
	ContextNegotiation    ContextNegotiation
}

// forbiddenUnderCanonical reports whether kind is one of the
// identification alternatives CER/DER forbid. EXTERNAL additionally
// forbids presentation-context-id and context-negotiation; that
// narrower restriction is applied by the caller (DecodeExternal),
// not here.
func forbiddenUnderCanonical(kind IdentificationKind) bool {
	return kind == IdentSyntaxes || kind == IdentFixed
}

func decodeIdentification(child *Element, rule Rule) (Identification, error) {
	if child.Class != ClassContextSpecific {
		return Identification{}, newErr(KindMalformedTag, rule, 0, child.Tag(), "identification choice requires a context-specific tag")
	}
	kind := IdentificationKind(child.TagNumber + 1)
	if (rule == CER || rule == DER) && forbiddenUnderCanonical(kind) {
		return Identification{}, newErr(KindConstructionMismatch, rule, 0, child.Tag(), "identification alternative forbidden under cer/der")
	}
	switch kind {
	case IdentSyntaxes:
		if len(child.children) != 2 {
			return Identification{}, newErr(KindValueSize, rule, 0, child.Tag(), "syntaxes requires exactly two object identifiers")
		}
		abs, err := child.children[0].GetOID()
		if err != nil {
			return Identification{}, err
		}
		tr, err := child.children[1].GetOID()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: kind, Syntaxes: SyntaxPair{Abstract: abs, Transfer: tr}}, nil
	case IdentSyntax, IdentTransferSyntax:
		oid, err := child.GetOID()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: kind, Syntax: oid}, nil
	case IdentPresentationContextID:
		v, err := child.GetInt64()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: kind, PresentationContextID: v}, nil
	case IdentContextNegotiation:
		if len(child.children) != 2 {
			return Identification{}, newErr(KindValueSize, rule, 0, child.Tag(), "context-negotiation requires two components")
		}
		id, err := child.children[0].GetInt64()
		if err != nil {
			return Identification{}, err
		}
		ts, err := child.children[1].GetOID()
		if err != nil {
			return Identification{}, err
		}
		return Identification{Kind: kind, ContextNegotiation: ContextNegotiation{PresentationContextID: id, TransferSyntax: ts}}, nil
	case IdentFixed:
		if err := child.GetNull(); err != nil {
			return Identification{}, err
		}
		return Identification{Kind: kind}, nil
	default:
		return Identification{}, newErr(KindMalformedTag, rule, 0, child.Tag(), "unknown identification alternative")
	}
}

func encodeIdentification(id Identification, rule Rule) Element {
	ctx := func(number uint32) Element {
		return Element{Class: ClassContextSpecific, Construction: Constructed, TagNumber: number, rule: rule}
	}
	switch id.Kind {
	case IdentSyntaxes:
		e := ctx(0)
		abs := Element{Class: ClassUniversal, TagNumber: TagObjectIdentifier, rule: rule}
		abs.SetOID(id.Syntaxes.Abstract)
		tr := Element{Class: ClassUniversal, TagNumber: TagObjectIdentifier, rule: rule}
		tr.SetOID(id.Syntaxes.Transfer)
		e.children = []Element{abs, tr}
		return e
	case IdentSyntax:
		e := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 1, rule: rule}
		e.SetOID(id.Syntax)
		return e
	case IdentPresentationContextID:
		e := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 2, rule: rule}
		e.SetInt64(id.PresentationContextID)
		return e
	case IdentContextNegotiation:
		e := ctx(3)
		pcid := Element{Class: ClassContextSpecific, Construction: Primitive, rule: rule}
		pcid.SetInt64(id.ContextNegotiation.PresentationContextID)
		ts := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 1, rule: rule}
		ts.SetOID(id.ContextNegotiation.TransferSyntax)
		e.children = []Element{pcid, ts}
		return e
	case IdentTransferSyntax:
		e := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 4, rule: rule}
		e.SetOID(id.Syntax)
		return e
	default: // IdentFixed
		e := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 5, rule: rule}
		e.SetNull()
		return e
	}
}

// ExternalEncodingKind selects EXTERNAL's data-value encoding CHOICE.
type ExternalEncodingKind int

const (
	EncodingSingleASN1Type ExternalEncodingKind = iota + 1
	EncodingOctetAligned
	EncodingArbitraryBits
)

// External is the decoded form of an X.690 EXTERNAL value.
type External struct {
	Identification      Identification
	DataValueDescriptor string
	HasDescriptor       bool
	Encoding            ExternalEncodingKind
	SingleType          *Element
	OctetAligned        []byte
	ArbitraryBits       BitString
}

// DecodeExternal interprets the already-decoded constructed element e
// (UNIVERSAL 8, EXTERNAL) as an External value. e's children must be
// [identification, data-value-descriptor?, encoding].
func DecodeExternal(e *Element) (External, error) {
	if !e.Tag().IsUniversal(TagExternal) || e.Construction != Constructed {
		return External{}, newErr(KindConstructionMismatch, e.rule, 0, e.Tag(), "external requires a constructed universal-8 element")
	}
	children := e.children
	if len(children) < 2 {
		return External{}, newErr(KindValueSize, e.rule, 0, e.Tag(), "external requires at least identification and encoding components")
	}
	id, err := decodeIdentification(&children[0], e.rule)
	if err != nil {
		return External{}, err
	}
	if (e.rule == CER || e.rule == DER) && (id.Kind == IdentPresentationContextID || id.Kind == IdentContextNegotiation) {
		return External{}, newErr(KindConstructionMismatch, e.rule, 0, e.Tag(), "external forbids presentation-context-id/context-negotiation under cer/der")
	}

	idx := 1
	ext := External{Identification: id}
	if idx < len(children) && children[idx].Tag().IsUniversal(TagObjectDescriptor) {
		s, err := children[idx].GetRestrictedString(KindGraphicString)
		if err != nil {
			return External{}, err
		}
		ext.DataValueDescriptor = s
		ext.HasDescriptor = true
		idx++
	}
	if idx >= len(children) {
		return External{}, newErr(KindValueSize, e.rule, 0, e.Tag(), "external missing encoding component")
	}
	enc := children[idx]
	if enc.Class != ClassContextSpecific {
		return External{}, newErr(KindMalformedTag, e.rule, 0, enc.Tag(), "external encoding requires a context-specific tag")
	}
	switch enc.TagNumber {
	case 0:
		if len(enc.children) != 1 {
			return External{}, newErr(KindValueSize, e.rule, 0, enc.Tag(), "single-asn1-type must wrap exactly one element")
		}
		ext.Encoding = EncodingSingleASN1Type
		inner := enc.children[0]
		ext.SingleType = &inner
	case 1:
		b, err := enc.GetOctetString()
		if err != nil {
			return External{}, err
		}
		ext.Encoding = EncodingOctetAligned
		ext.OctetAligned = b
	case 2:
		b, err := enc.GetBitString()
		if err != nil {
			return External{}, err
		}
		ext.Encoding = EncodingArbitraryBits
		ext.ArbitraryBits = b
	default:
		return External{}, newErr(KindMalformedTag, e.rule, 0, enc.Tag(), "unknown external encoding alternative")
	}
	return ext, nil
}

// EncodeExternal builds the constructed EXTERNAL element for ext under
// rule, always in the post-1994 wire shape: the identification CHOICE
// first, then the optional descriptor, then the encoding CHOICE.
func EncodeExternal(ext External, rule Rule) Element {
	e := Element{Class: ClassUniversal, Construction: Constructed, TagNumber: TagExternal, rule: rule}
	children := []Element{encodeIdentification(ext.Identification, rule)}
	if ext.HasDescriptor {
		desc := Element{Class: ClassUniversal, Construction: Primitive, TagNumber: TagObjectDescriptor, rule: rule}
		desc.SetRestrictedString(KindGraphicString, ext.DataValueDescriptor)
		children = append(children, desc)
	}
	switch ext.Encoding {
	case EncodingSingleASN1Type:
		wrap := Element{Class: ClassContextSpecific, Construction: Constructed, TagNumber: 0, rule: rule}
		if ext.SingleType != nil {
			wrap.children = []Element{*ext.SingleType}
		}
		children = append(children, wrap)
	case EncodingOctetAligned:
		wrap := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 1, rule: rule}
		wrap.SetOctetString(ext.OctetAligned)
		children = append(children, wrap)
	default:
		wrap := Element{Class: ClassContextSpecific, Construction: Primitive, TagNumber: 2, rule: rule}
		wrap.SetBitString(ext.ArbitraryBits)
		children = append(children, wrap)
	}
	e.children = children
	return e
}

// EmbeddedPDV is the decoded form of an X.690 EMBEDDED PDV value: an
// identification CHOICE, an optional data-value-descriptor, and a
// data-value octet string.
type EmbeddedPDV struct {
	Identification      Identification
	DataValueDescriptor string
	HasDescriptor       bool
	DataValue           []byte
}

func decodeContextSwitchingPair(e *Element, universalTag uint32) (Identification, string, bool, []byte, error) {
	if !e.Tag().IsUniversal(universalTag) || e.Construction != Constructed {
		return Identification{}, "", false, nil, newErr(KindConstructionMismatch, e.rule, 0, e.Tag(), "context-switching type requires a constructed element")
	}
	children := e.children
	if len(children) < 2 {
		return Identification{}, "", false, nil, newErr(KindValueSize, e.rule, 0, e.Tag(), "requires identification and data-value components")
	}
	id, err := decodeIdentification(&children[0], e.rule)
	if err != nil {
		return Identification{}, "", false, nil, err
	}
	idx := 1
	descriptor := ""
	has := false
	if idx < len(children) && children[idx].Tag().IsUniversal(TagObjectDescriptor) {
		s, err := children[idx].GetRestrictedString(KindGraphicString)
		if err != nil {
			return Identification{}, "", false, nil, err
		}
		descriptor, has = s, true
		idx++
	}
	if idx >= len(children) {
		return Identification{}, "", false, nil, newErr(KindValueSize, e.rule, 0, e.Tag(), "missing data-value component")
	}
	data, err := children[idx].GetOctetString()
	if err != nil {
		return Identification{}, "", false, nil, err
	}
	return id, descriptor, has, data, nil
}

func encodeContextSwitchingPair(id Identification, descriptor string, hasDescriptor bool, data []byte, universalTag uint32, rule Rule) Element {
	e := Element{Class: ClassUniversal, Construction: Constructed, TagNumber: universalTag, rule: rule}
	children := []Element{encodeIdentification(id, rule)}
	if hasDescriptor {
		desc := Element{Class: ClassUniversal, Construction: Primitive, TagNumber: TagObjectDescriptor, rule: rule}
		desc.SetRestrictedString(KindGraphicString, descriptor)
		children = append(children, desc)
	}
	dv := Element{Class: ClassUniversal, Construction: Primitive, TagNumber: TagOctetString, rule: rule}
	dv.SetOctetString(data)
	children = append(children, dv)
	e.children = children
	return e
}

// DecodeEmbeddedPDV interprets e (UNIVERSAL 11) as an EmbeddedPDV value.
func DecodeEmbeddedPDV(e *Element) (EmbeddedPDV, error) {
	id, desc, has, data, err := decodeContextSwitchingPair(e, TagEmbeddedPDV)
	if err != nil {
		return EmbeddedPDV{}, err
	}
	if (e.rule == CER || e.rule == DER) && forbiddenUnderCanonical(id.Kind) {
		return EmbeddedPDV{}, newErr(KindConstructionMismatch, e.rule, 0, e.Tag(), "embedded pdv forbids this identification alternative under cer/der")
	}
	return EmbeddedPDV{Identification: id, DataValueDescriptor: desc, HasDescriptor: has, DataValue: data}, nil
}

// EncodeEmbeddedPDV builds the constructed EMBEDDED PDV element for v.
func EncodeEmbeddedPDV(v EmbeddedPDV, rule Rule) Element {
	return encodeContextSwitchingPair(v.Identification, v.DataValueDescriptor, v.HasDescriptor, v.DataValue, TagEmbeddedPDV, rule)
}

// CharacterString is the decoded form of an X.690 CHARACTER STRING
// value: an identification CHOICE and a data-value octet string
// (unlike EMBEDDED PDV, it carries no data-value-descriptor).
type CharacterString struct {
	Identification Identification
	DataValue      []byte
}

// DecodeCharacterString interprets e (UNIVERSAL 29) as a CharacterString.
func DecodeCharacterString(e *Element) (CharacterString, error) {
	id, _, _, data, err := decodeContextSwitchingPair(e, TagCharacterString)
	if err != nil {
		return CharacterString{}, err
	}
	if (e.rule == CER || e.rule == DER) && forbiddenUnderCanonical(id.Kind) {
		return CharacterString{}, newErr(KindConstructionMismatch, e.rule, 0, e.Tag(), "character string forbids this identification alternative under cer/der")
	}
	return CharacterString{Identification: id, DataValue: data}, nil
}

// EncodeCharacterString builds the constructed CHARACTER STRING
// element for v.
func EncodeCharacterString(v CharacterString, rule Rule) Element {
	return encodeContextSwitchingPair(v.Identification, "", false, v.DataValue, TagCharacterString, rule)
}
