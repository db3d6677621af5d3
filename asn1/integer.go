package asn1

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// validateIntegerPadding checks the minimum-encoding invariant shared
// by INTEGER and ENUMERATED: the content octets must not carry a
// redundant leading octet. Grounded on ber.CompressInteger's
// leading-zero/leading-0xFF scan, generalized to report the violation
// instead of silently compressing it away.
//
// BER tolerates the padding on decode (it merely wastes a byte); CER
// and DER reject it.
func validateIntegerPadding(content []byte, rule Rule) error {
	if len(content) < 2 {
		return nil
	}
	if content[0] == 0x00 && content[1]&0x80 == 0 {
		if rule == BER {
			return nil
		}
		return newErr(KindValuePadding, rule, 0, Tag{}, "redundant leading 0x00 octet")
	}
	if content[0] == 0xFF && content[1]&0x80 != 0 {
		if rule == BER {
			return nil
		}
		return newErr(KindValuePadding, rule, 0, Tag{}, "redundant leading 0xFF octet")
	}
	return nil
}

// decodeBigInt decodes two's-complement content octets into an
// arbitrary-precision integer.
func decodeBigInt(content []byte, rule Rule) (*big.Int, error) {
	if len(content) == 0 {
		return nil, newErr(KindValueSize, rule, 0, Tag{}, "integer has empty content")
	}
	if err := validateIntegerPadding(content, rule); err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(content)
	if content[0]&0x80 != 0 {
		// content holds the two's-complement magnitude interpreted as
		// unsigned; subtract 2^(8*len) to recover the negative value.
		bound := new(big.Int).Lsh(big.NewInt(1), uint(len(content))*8)
		v.Sub(v, bound)
	}
	return v, nil
}

// encodeBigInt encodes v as minimum-length two's-complement content
// octets.
func encodeBigInt(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}
	// Negative: find the smallest byte width n such that
	// -2^(8n-1) <= v < 2^(8n-1), then take the two's complement.
	n := 1
	for {
		lowBound := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(n*8-1)))
		if v.Cmp(lowBound) >= 0 {
			break
		}
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(n*8))
	twos := new(big.Int).Add(v, mod)
	b := twos.Bytes()
	for len(b) < n {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// IntegerValue decodes fixed-width signed INTEGER/ENUMERATED content
// octets into T, failing with ValueOverflow if the decoded value does
// not fit T's width. Parameterized over golang.org/x/exp/constraints
// so one implementation serves int8 through int64.
func IntegerValue[T constraints.Signed](content []byte, rule Rule) (T, error) {
	v, err := decodeBigInt(content, rule)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, newErr(KindValueOverflow, rule, 0, Tag{}, "integer does not fit requested width")
	}
	i64 := v.Int64()
	t := T(i64)
	if int64(t) != i64 {
		return 0, newErr(KindValueOverflow, rule, 0, Tag{}, "integer does not fit requested width")
	}
	return t, nil
}

// UnsignedValue decodes fixed-width INTEGER/ENUMERATED content octets
// (which are always two's-complement on the wire, even for
// conceptually unsigned ASN.1 values such as Unsigned32) into an
// unsigned T, failing ValueOverflow on negative values or values that
// do not fit T's width.
func UnsignedValue[T constraints.Unsigned](content []byte, rule Rule) (T, error) {
	v, err := decodeBigInt(content, rule)
	if err != nil {
		return 0, err
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, newErr(KindValueOverflow, rule, 0, Tag{}, "integer does not fit requested unsigned width")
	}
	u64 := v.Uint64()
	t := T(u64)
	if uint64(t) != u64 {
		return 0, newErr(KindValueOverflow, rule, 0, Tag{}, "integer does not fit requested unsigned width")
	}
	return t, nil
}

// EncodeInteger encodes a big.Int as minimum-length two's-complement
// content octets, suitable for all three rules (minimum encoding is
// always legal under BER and mandatory under CER/DER).
func EncodeInteger(v *big.Int) []byte {
	return encodeBigInt(v)
}

// EncodeSignedInteger encodes any signed fixed-width value as
// minimum-length two's-complement content octets.
func EncodeSignedInteger[T constraints.Signed](v T) []byte {
	return encodeBigInt(big.NewInt(int64(v)))
}

// EncodeUnsignedInteger encodes any unsigned fixed-width value as
// minimum-length two's-complement content octets (a leading 0x00 pad
// octet is added automatically when the top bit is set, since ASN.1
// INTEGER/ENUMERATED content is always two's-complement).
func EncodeUnsignedInteger[T constraints.Unsigned](v T) []byte {
	return encodeBigInt(new(big.Int).SetUint64(uint64(v)))
}
