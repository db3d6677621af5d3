package asn1

import "testing"

func TestDecodeBitStringPrimitive(t *testing.T) {
	// 0x06 unused bits, content 0xC0 -> bits "11" (length 2).
	got, err := decodeBitStringPrimitive([]byte{0x06, 0xC0}, BER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Length != 2 || !got.Bit(0) || !got.Bit(1) || got.Bit(2) {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeBitStringRejectsOutOfRangeUnusedBits(t *testing.T) {
	if _, err := decodeBitStringPrimitive([]byte{0x08, 0x00}, BER); err == nil {
		t.Fatalf("expected error for unused-bits count > 7")
	}
}

func TestDecodeBitStringUnusedBitsMustBeZeroUnderCanonicalRules(t *testing.T) {
	content := []byte{0x04, 0x1F} // low 4 bits set despite being marked unused
	if _, err := decodeBitStringPrimitive(content, DER); err == nil {
		t.Fatalf("expected der to reject non-zero unused bits")
	}
	if _, err := decodeBitStringPrimitive(content, BER); err != nil {
		t.Fatalf("ber should tolerate non-zero unused bits: %v", err)
	}
}

func TestEncodeBitStringPrimitiveRoundTrip(t *testing.T) {
	b := BitString{Bytes: []byte{0xB4}, Length: 5} // "10110" + 3 unused bits
	enc := encodeBitStringPrimitive(b)
	got, err := decodeBitStringPrimitive(enc, DER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Length != b.Length {
		t.Fatalf("got length %d want %d", got.Length, b.Length)
	}
	for i := 0; i < b.Length; i++ {
		if got.Bit(i) != b.Bit(i) {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}

func TestBitStringEmpty(t *testing.T) {
	got, err := decodeBitStringPrimitive([]byte{0x00}, DER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Length != 0 || len(got.Bytes) != 0 {
		t.Fatalf("got %+v", got)
	}
}
