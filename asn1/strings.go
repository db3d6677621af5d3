package asn1

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// StringKind identifies which restricted ASN.1 character-string type
// a value's content octets must be validated and converted against.
type StringKind int

const (
	KindNumericString StringKind = iota
	KindPrintableString
	KindIA5String
	KindUTF8String
	KindUniversalString
	KindBMPString
	// The remaining types are "transparent bytes" types: any octet
	// value is legal content and no character-set validation applies
	// (X.680 §41, legacy teletex/videotex/ISO-2022 based types).
	KindTeletexString
	KindVideotexString
	KindGraphicString
	KindVisibleString
	KindGeneralString
)

func (k StringKind) transparent() bool {
	switch k {
	case KindTeletexString, KindVideotexString, KindGraphicString, KindVisibleString, KindGeneralString:
		return true
	default:
		return false
	}
}

// printableStringAllowed is the PrintableString alphabet: upper/lower
// letters, digits, space, and the symbols '()+,-./:=?
func printableStringAllowed(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func numericStringAllowed(b byte) bool {
	return (b >= '0' && b <= '9') || b == ' '
}

// ValidateRestrictedString checks content against the alphabet for
// kind, returning a ValueCharacters error at the first violation.
// UTF8String is checked for well-formedness rather than a fixed
// alphabet; UniversalString/BMPString are checked for correct
// UCS-4/UCS-2 framing via golang.org/x/text's UTF-32/UTF-16
// transformers.
func ValidateRestrictedString(content []byte, kind StringKind) error {
	if kind.transparent() {
		return nil
	}
	switch kind {
	case KindNumericString:
		for i, b := range content {
			if !numericStringAllowed(b) {
				return newErr(KindValueCharacters, 0, i, Tag{}, "character outside NumericString alphabet")
			}
		}
	case KindPrintableString:
		for i, b := range content {
			if !printableStringAllowed(b) {
				return newErr(KindValueCharacters, 0, i, Tag{}, "character outside PrintableString alphabet")
			}
		}
	case KindIA5String:
		for i, b := range content {
			if b > 0x7F {
				return newErr(KindValueCharacters, 0, i, Tag{}, "character outside IA5String (7-bit ASCII) alphabet")
			}
		}
	case KindUTF8String:
		if !utf8.Valid(content) {
			return newErr(KindValueCharacters, 0, 0, Tag{}, "invalid UTF-8 encoding")
		}
	case KindUniversalString:
		if _, err := decodeUniversalString(content); err != nil {
			return err
		}
	case KindBMPString:
		if _, err := decodeBMPString(content); err != nil {
			return err
		}
	}
	return nil
}

// decodeUniversalString decodes UniversalString content (UCS-4/UTF-32
// big-endian) into a Go string. Grounded on SPEC_FULL.md's domain-stack
// wiring of golang.org/x/text/encoding/unicode/utf32.
func decodeUniversalString(content []byte) (string, error) {
	if len(content)%4 != 0 {
		return "", newErr(KindValueSize, 0, 0, Tag{}, "universal string content length not a multiple of 4")
	}
	dec := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(content)
	if err != nil {
		return "", newErr(KindValueCharacters, 0, 0, Tag{}, "invalid UCS-4 sequence: "+err.Error())
	}
	return string(out), nil
}

// encodeUniversalString encodes s as UniversalString content octets.
func encodeUniversalString(s string) ([]byte, error) {
	enc := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, newErr(KindValueCharacters, 0, 0, Tag{}, "cannot encode as UCS-4: "+err.Error())
	}
	return out, nil
}

// decodeBMPString decodes BMPString content (UCS-2/UTF-16 big-endian,
// Basic Multilingual Plane only) into a Go string, rejecting any
// surrogate pair since BMPString has no representation for characters
// outside the BMP.
func decodeBMPString(content []byte) (string, error) {
	if len(content)%2 != 0 {
		return "", newErr(KindValueSize, 0, 0, Tag{}, "bmp string content length not a multiple of 2")
	}
	for i := 0; i < len(content); i += 2 {
		u := uint16(content[i])<<8 | uint16(content[i+1])
		if u >= 0xD800 && u <= 0xDFFF {
			return "", newErr(KindValueCharacters, 0, i, Tag{}, "bmp string must not contain surrogate code units")
		}
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(content)
	if err != nil {
		return "", newErr(KindValueCharacters, 0, 0, Tag{}, "invalid UCS-2 sequence: "+err.Error())
	}
	return string(out), nil
}

// encodeBMPString encodes s as BMPString content octets, failing if s
// contains any character outside the Basic Multilingual Plane.
func encodeBMPString(s string) ([]byte, error) {
	for _, r := range s {
		if r > 0xFFFF {
			return nil, newErr(KindValueCharacters, 0, 0, Tag{}, "character outside the Basic Multilingual Plane")
		}
	}
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, newErr(KindValueCharacters, 0, 0, Tag{}, "cannot encode as UCS-2: "+err.Error())
	}
	return out, nil
}
