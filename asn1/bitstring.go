package asn1

// BitString is an ordered sequence of bits. Bytes holds the bits
// packed big-endian eight-per-octet; Length is the number of
// significant bits (Length <= 8*len(Bytes), and Length may be less
// than that by up to 7 bits, the "unused bits" of X.690 §8.6).
type BitString struct {
	Bytes  []byte
	Length int
}

// Bit returns the value of the i'th bit (0-indexed from the most
// significant bit of Bytes[0]). i must be < Length.
func (b BitString) Bit(i int) bool {
	if i < 0 || i >= b.Length {
		return false
	}
	return b.Bytes[i/8]&(0x80>>uint(i%8)) != 0
}

// unusedBits returns the X.690 "number of unused bits" octet value
// for b: how many low-order bits of the final byte are padding.
func (b BitString) unusedBits() byte {
	if b.Length == 0 {
		return 0
	}
	rem := b.Length % 8
	if rem == 0 {
		return 0
	}
	return byte(8 - rem)
}

// byteLen returns the number of content bytes b's bits occupy.
func (b BitString) byteLen() int {
	return (b.Length + 7) / 8
}

// decodeBitStringPrimitive decodes the content octets of a primitive
// BIT STRING value: a leading "unused bits" count octet followed by
// the packed bits.
//
// CER/DER require any unused trailing bits to be zeroed; this is
// enforced here when rule is CER or DER.
func decodeBitStringPrimitive(content []byte, rule Rule) (BitString, error) {
	if len(content) == 0 {
		return BitString{}, newErr(KindValueSize, rule, 0, Tag{}, "bit string content is empty (missing unused-bits octet)")
	}
	unused := content[0]
	if unused > 7 {
		return BitString{}, newErr(KindValueSize, rule, 0, Tag{}, "unused-bits count exceeds 7")
	}
	data := content[1:]
	if len(data) == 0 && unused != 0 {
		return BitString{}, newErr(KindValueSize, rule, 0, Tag{}, "empty bit string must report zero unused bits")
	}
	if rule == CER || rule == DER {
		if err := checkUnusedBitsZero(data, unused); err != nil {
			return BitString{}, err
		}
	}
	return BitString{Bytes: data, Length: len(data)*8 - int(unused)}, nil
}

func checkUnusedBitsZero(data []byte, unused byte) error {
	if unused == 0 || len(data) == 0 {
		return nil
	}
	mask := byte(1<<unused) - 1
	if data[len(data)-1]&mask != 0 {
		return newErr(KindValuePadding, 0, 0, Tag{}, "unused bits of final octet must be zero")
	}
	return nil
}

// encodeBitStringPrimitive encodes b as a primitive BIT STRING's
// content octets (unused-bits octet followed by packed data),
// zeroing any unused trailing bits as CER/DER require (harmless under
// BER too, since BER leaves those bits unspecified).
func encodeBitStringPrimitive(b BitString) []byte {
	n := b.byteLen()
	out := make([]byte, 1+n)
	out[0] = b.unusedBits()
	copy(out[1:], b.Bytes[:n])
	if unused := out[0]; unused != 0 && n > 0 {
		mask := ^(byte(1<<unused) - 1)
		out[1+n-1] &= mask
	}
	return out
}
