package asn1

import (
	"fmt"
	"strconv"
	"strings"
)

// oidSecondArcCeiling is the upper bound for the second arc when the
// first arc is 2 (joint-iso-itu-t), per the X.660 allocation range
// this specification fixes as the resolution of the corresponding
// Open Question.
const oidSecondArcCeiling = 175

// ObjectIdentifier is an ordered sequence of two or more non-negative
// integer arcs. Arc[0] must be 0, 1 or 2; Arc[1] must be <= 39 when
// Arc[0] is 0 or 1, and <= 175 when Arc[0] is 2.
type ObjectIdentifier struct {
	Arcs []uint64
	// Descriptors holds an optional human-readable label per arc.
	// len(Descriptors) is either 0 or len(Arcs); entries may be empty.
	// Descriptors are display-only and never affect encoding.
	Descriptors []string
}

// Validate checks the structural invariants of o, independent of any
// particular wire encoding.
func (o ObjectIdentifier) Validate() error {
	if len(o.Arcs) < 2 {
		return newErr(KindInvalidOID, 0, -1, Tag{}, "object identifier requires at least two arcs")
	}
	switch o.Arcs[0] {
	case 0, 1:
		if o.Arcs[1] > 39 {
			return newErr(KindInvalidOID, 0, -1, Tag{}, "second arc exceeds 39 for first arc 0 or 1")
		}
	case 2:
		if o.Arcs[1] > oidSecondArcCeiling {
			return newErr(KindInvalidOID, 0, -1, Tag{}, "second arc exceeds 175 for first arc 2")
		}
	default:
		return newErr(KindInvalidOID, 0, -1, Tag{}, "first arc must be 0, 1 or 2")
	}
	if o.Descriptors != nil && len(o.Descriptors) != len(o.Arcs) {
		return newErr(KindInvalidOID, 0, -1, Tag{}, "descriptor count does not match arc count")
	}
	for _, d := range o.Descriptors {
		if !isGraphicASCII(d) {
			return newErr(KindValueCharacters, 0, -1, Tag{}, "oid descriptor must be graphical ASCII")
		}
	}
	return nil
}

func isGraphicASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// DisplayOptions controls ObjectIdentifier formatting. It replaces the
// source's process-wide mutable display flag (spec §9 Design Notes)
// with an explicit per-call choice.
type DisplayOptions struct {
	ShowOIDDescriptors bool
}

func (o ObjectIdentifier) String() string {
	return o.format(false)
}

// StringOpts formats o under the given DisplayOptions.
func (o ObjectIdentifier) StringOpts(opts DisplayOptions) string {
	return o.format(opts.ShowOIDDescriptors)
}

// StringWithDescriptors formats o including any per-arc descriptors in
// parentheses; a convenience shorthand for StringOpts(DisplayOptions{
// ShowOIDDescriptors: true}).
func (o ObjectIdentifier) StringWithDescriptors() string {
	return o.format(true)
}

func (o ObjectIdentifier) format(withDescriptors bool) string {
	parts := make([]string, len(o.Arcs))
	for i, a := range o.Arcs {
		s := strconv.FormatUint(a, 10)
		if withDescriptors && i < len(o.Descriptors) && o.Descriptors[i] != "" {
			s = o.Descriptors[i] + "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, ".")
}

// Equal reports whether o and other have identical arc sequences.
// Descriptors are display metadata and are not compared.
func (o ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	if len(o.Arcs) != len(other.Arcs) {
		return false
	}
	for i := range o.Arcs {
		if o.Arcs[i] != other.Arcs[i] {
			return false
		}
	}
	return true
}

// decodeOID decodes the content octets of an OBJECT IDENTIFIER value.
// Grounded on ber.DecodeOID's first/second-arc split, generalized to
// an unbounded arc count and uint64 arc width with explicit padding
// rejection (ber.DecodeOID silently tolerated it).
func decodeOID(content []byte, rule Rule) (ObjectIdentifier, error) {
	if len(content) == 0 {
		return ObjectIdentifier{}, newErr(KindValueSize, rule, 0, Tag{}, "object identifier has empty content")
	}

	arcs, err := decodeSubIdentifiers(content, rule)
	if err != nil {
		return ObjectIdentifier{}, err
	}
	if len(arcs) == 0 {
		return ObjectIdentifier{}, newErr(KindValueSize, rule, 0, Tag{}, "object identifier decoded no arcs")
	}

	first := arcs[0]
	var arc0, arc1 uint64
	switch {
	case first < 40:
		arc0, arc1 = 0, first
	case first < 80:
		arc0, arc1 = 1, first-40
	default:
		arc0, arc1 = 2, first-80
	}
	if arc0 == 2 && arc1 > oidSecondArcCeiling {
		return ObjectIdentifier{}, newErr(KindInvalidOID, rule, 0, Tag{}, "second arc exceeds 175 for first arc 2")
	}

	out := make([]uint64, 0, len(arcs)+1)
	out = append(out, arc0, arc1)
	out = append(out, arcs[1:]...)
	return ObjectIdentifier{Arcs: out}, nil
}

// decodeSubIdentifiers splits content into its base-128 subidentifiers,
// rejecting non-minimal (leading 0x80 continuation byte) encodings.
func decodeSubIdentifiers(content []byte, rule Rule) ([]uint64, error) {
	var arcs []uint64
	i := 0
	for i < len(content) {
		if content[i] == 0x80 {
			return nil, newErr(KindValuePadding, rule, i, Tag{}, "subidentifier has non-minimal leading 0x80 byte")
		}
		var v uint64
		start := i
		for {
			if i >= len(content) {
				return nil, newErr(KindTruncated, rule, start, Tag{}, "object identifier truncated mid-subidentifier")
			}
			b := content[i]
			i++
			v = (v << 7) | uint64(b&0x7F)
			if b&0x80 == 0 {
				break
			}
		}
		arcs = append(arcs, v)
	}
	return arcs, nil
}

// encodeOID encodes o's arcs as OBJECT IDENTIFIER content octets.
func encodeOID(o ObjectIdentifier) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	first := o.Arcs[0]*40 + o.Arcs[1]
	var out []byte
	out = append(out, encodeBase128(first)...)
	for _, a := range o.Arcs[2:] {
		out = append(out, encodeBase128(a)...)
	}
	return out, nil
}

// ParseOIDString parses a dotted-decimal OID string, e.g. "1.2.840.113549",
// into an ObjectIdentifier.
func ParseOIDString(s string) (ObjectIdentifier, error) {
	fields := strings.Split(s, ".")
	if len(fields) < 2 {
		return ObjectIdentifier{}, newErr(KindInvalidOID, 0, -1, Tag{}, "object identifier string requires at least two arcs")
	}
	arcs := make([]uint64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return ObjectIdentifier{}, newErr(KindInvalidOID, 0, -1, Tag{}, fmt.Sprintf("invalid arc %q: %s", f, err.Error()))
		}
		arcs[i] = v
	}
	o := ObjectIdentifier{Arcs: arcs}
	if err := o.Validate(); err != nil {
		return ObjectIdentifier{}, err
	}
	return o, nil
}
