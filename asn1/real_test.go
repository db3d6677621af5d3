package asn1

import (
	"math"
	"testing"
)

func TestRealSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want float64
	}{
		{"zero", nil, 0},
		{"positive infinity", []byte{realPositiveInfinity}, math.Inf(1)},
		{"negative infinity", []byte{realNegativeInfinity}, math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeReal(tt.in, BER)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}

	nan, err := decodeReal([]byte{realNotANumber}, BER)
	if err != nil || !math.IsNaN(nan) {
		t.Fatalf("got %v,%v want NaN,nil", nan, err)
	}

	negZero, err := decodeReal([]byte{realNegativeZero}, BER)
	if err != nil || !math.Signbit(negZero) || negZero != 0 {
		t.Fatalf("got %v,%v want -0,nil", negZero, err)
	}
}

func TestRealBinaryRoundTrip(t *testing.T) {
	values := []float64{1.0, -1.0, 0.5, 3.25, 1e10, -1e-10, 123456789.125}
	for _, v := range values {
		content := encodeReal(v, DER)
		got, err := decodeReal(content, DER)
		if err != nil {
			t.Fatalf("v=%v: unexpected error: %v", v, err)
		}
		if got != v {
			t.Fatalf("v=%v: got %v", v, got)
		}
	}
}

func TestRealBinaryCanonicalMantissaIsOdd(t *testing.T) {
	content := encodeReal(8.0, DER) // 8 = 1 * 2^3, canonical odd mantissa 1
	if len(content) == 0 {
		t.Fatalf("expected non-empty content for 8.0")
	}
	mantissa := content[len(content)-1]
	if mantissa&0x01 == 0 {
		t.Fatalf("expected odd mantissa octet, got %x", mantissa)
	}
}

func TestRealDecimalNR3Strict(t *testing.T) {
	// NR3 form: first octet 0x03 selects decimal encoding with NR3.
	good := append([]byte{0x03}, []byte("1.5E1")...)
	if _, err := decodeDecimalReal(good, DER); err != nil {
		t.Fatalf("unexpected error for canonical nr3 form: %v", err)
	}
}

func TestRealDecimalNR3RejectsNonCanonicalUnderDER(t *testing.T) {
	leadingZero := append([]byte{0x03}, []byte("01.5E1")...)
	if _, err := decodeDecimalReal(leadingZero, DER); err == nil {
		t.Fatalf("expected der to reject leading zero in nr3 integer part")
	}
	trailingZero := append([]byte{0x03}, []byte("1.50E1")...)
	if _, err := decodeDecimalReal(trailingZero, DER); err == nil {
		t.Fatalf("expected der to reject trailing zero in nr3 fractional part")
	}
	lowerE := append([]byte{0x03}, []byte("1.5e1")...)
	if _, err := decodeDecimalReal(lowerE, DER); err == nil {
		t.Fatalf("expected der to reject lowercase e")
	}
}
