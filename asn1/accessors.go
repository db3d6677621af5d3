package asn1

import (
	"math/big"
	"time"
)

// This file defines the typed Get*/Set* accessor pairs shared by
// BERElement, CERElement and DERElement through struct embedding.
// Each pair validates construction (primitive vs constructed) and
// then defers to the concern-specific codec file (integer.go,
// oid.go, real.go, bitstring.go, strings.go, timeval.go) for the
// actual content parsing, applying e.rule's canonicalization along
// the way.

// GetBoolean decodes e as a BOOLEAN. Per X.690 §8.2, any non-zero
// octet is true under BER; CER/DER require the canonical 0xFF.
func (e *Element) GetBoolean() (bool, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return false, err
	}
	if len(e.Value) != 1 {
		return false, newErr(KindValueSize, e.rule, 0, e.Tag(), "boolean content must be exactly one octet")
	}
	b := e.Value[0]
	if b == 0x00 {
		return false, nil
	}
	if (e.rule == CER || e.rule == DER) && b != 0xFF {
		return false, newErr(KindValuePadding, e.rule, 0, e.Tag(), "boolean true must be encoded as 0xFF under cer/der")
	}
	return true, nil
}

// SetBoolean sets e to a primitive BOOLEAN value.
func (e *Element) SetBoolean(v bool) {
	e.Construction = Primitive
	e.children = nil
	if v {
		e.Value = []byte{0xFF}
		return
	}
	e.Value = []byte{0x00}
}

// GetBigInt decodes e as an arbitrary-precision INTEGER or ENUMERATED.
func (e *Element) GetBigInt() (*big.Int, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return nil, err
	}
	return decodeBigInt(e.Value, e.rule)
}

// SetBigInt sets e to a primitive INTEGER value.
func (e *Element) SetBigInt(v *big.Int) {
	e.Construction = Primitive
	e.children = nil
	e.Value = EncodeInteger(v)
}

// GetInt64 decodes e as a fixed-width signed INTEGER or ENUMERATED.
func (e *Element) GetInt64() (int64, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return 0, err
	}
	return IntegerValue[int64](e.Value, e.rule)
}

// SetInt64 sets e to a primitive INTEGER value.
func (e *Element) SetInt64(v int64) {
	e.Construction = Primitive
	e.children = nil
	e.Value = EncodeSignedInteger(v)
}

// GetUint64 decodes e as a fixed-width unsigned INTEGER (e.g. an
// ASN.1 Unsigned32-style value, still two's-complement on the wire).
func (e *Element) GetUint64() (uint64, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return 0, err
	}
	return UnsignedValue[uint64](e.Value, e.rule)
}

// SetUint64 sets e to a primitive INTEGER value.
func (e *Element) SetUint64(v uint64) {
	e.Construction = Primitive
	e.children = nil
	e.Value = EncodeUnsignedInteger(v)
}

// GetEnumerated decodes e as an ENUMERATED value (structurally an
// INTEGER with a distinct tag).
func (e *Element) GetEnumerated() (int64, error) {
	return e.GetInt64()
}

// SetEnumerated sets e to a primitive ENUMERATED value.
func (e *Element) SetEnumerated(v int64) {
	e.SetInt64(v)
}

// GetNull validates e as a NULL value: primitive, zero-length content.
func (e *Element) GetNull() error {
	if err := e.requireConstruction(Primitive); err != nil {
		return err
	}
	if len(e.Value) != 0 {
		return newErr(KindValueSize, e.rule, 0, e.Tag(), "null content must be empty")
	}
	return nil
}

// SetNull sets e to a primitive NULL value.
func (e *Element) SetNull() {
	e.Construction = Primitive
	e.children = nil
	e.Value = nil
}

// GetOID decodes e as an OBJECT IDENTIFIER.
func (e *Element) GetOID() (ObjectIdentifier, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return ObjectIdentifier{}, err
	}
	return decodeOID(e.Value, e.rule)
}

// SetOID sets e to a primitive OBJECT IDENTIFIER value.
func (e *Element) SetOID(o ObjectIdentifier) error {
	content, err := encodeOID(o)
	if err != nil {
		return err
	}
	e.Construction = Primitive
	e.children = nil
	e.Value = content
	return nil
}

// GetReal decodes e as a REAL value.
func (e *Element) GetReal() (float64, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return 0, err
	}
	return decodeReal(e.Value, e.rule)
}

// SetReal sets e to a primitive REAL value, using the binary
// sub-encoding.
func (e *Element) SetReal(v float64) {
	e.Construction = Primitive
	e.children = nil
	e.Value = encodeReal(v, e.rule)
}

// GetBitString decodes e as a BIT STRING. Constructed BIT STRING
// (CER's segmented form, or plain BER concatenation) is handled by
// the rule-specific element types; this primitive-only accessor
// covers the common case and the CER/DER primitive-under-1000-octet
// case directly.
func (e *Element) GetBitString() (BitString, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return BitString{}, err
	}
	return decodeBitStringPrimitive(e.Value, e.rule)
}

// SetBitString sets e to a primitive BIT STRING value.
func (e *Element) SetBitString(b BitString) {
	e.Construction = Primitive
	e.children = nil
	e.Value = encodeBitStringPrimitive(b)
}

// GetOctetString decodes e as a primitive OCTET STRING, returning its
// content octets directly.
func (e *Element) GetOctetString() ([]byte, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return nil, err
	}
	return append([]byte(nil), e.Value...), nil
}

// SetOctetString sets e to a primitive OCTET STRING value.
func (e *Element) SetOctetString(v []byte) {
	e.Construction = Primitive
	e.children = nil
	e.Value = append([]byte(nil), v...)
}

// GetRestrictedString decodes e's content as the given restricted
// character-string kind, returning the decoded text.
func (e *Element) GetRestrictedString(kind StringKind) (string, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return "", err
	}
	if err := ValidateRestrictedString(e.Value, kind); err != nil {
		return "", err
	}
	switch kind {
	case KindUniversalString:
		return decodeUniversalString(e.Value)
	case KindBMPString:
		return decodeBMPString(e.Value)
	default:
		return string(e.Value), nil
	}
}

// SetRestrictedString encodes s as the given restricted
// character-string kind and sets it as e's primitive content.
func (e *Element) SetRestrictedString(kind StringKind, s string) error {
	var content []byte
	var err error
	switch kind {
	case KindUniversalString:
		content, err = encodeUniversalString(s)
	case KindBMPString:
		content, err = encodeBMPString(s)
	default:
		content = []byte(s)
	}
	if err != nil {
		return err
	}
	if err := ValidateRestrictedString(content, kind); err != nil {
		return err
	}
	e.Construction = Primitive
	e.children = nil
	e.Value = content
	return nil
}

// GetUTCTime decodes e as a UTCTime value.
func (e *Element) GetUTCTime() (time.Time, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return time.Time{}, err
	}
	return decodeUTCTime(e.Value, e.rule)
}

// SetUTCTime sets e to a primitive UTCTime value.
func (e *Element) SetUTCTime(t time.Time) {
	e.Construction = Primitive
	e.children = nil
	e.Value = encodeUTCTime(t)
}

// GetGeneralizedTime decodes e as a GeneralizedTime value.
func (e *Element) GetGeneralizedTime() (time.Time, error) {
	if err := e.requireConstruction(Primitive); err != nil {
		return time.Time{}, err
	}
	return decodeGeneralizedTime(e.Value, e.rule)
}

// SetGeneralizedTime sets e to a primitive GeneralizedTime value,
// including fractionNanos nanoseconds of sub-second precision (0
// omits the fractional component entirely).
func (e *Element) SetGeneralizedTime(t time.Time, fractionNanos int64) {
	e.Construction = Primitive
	e.children = nil
	e.Value = encodeGeneralizedTime(t, fractionNanos)
}
