package asn1

import (
	"testing"
	"time"
)

func TestDecodeUTCTimeBER(t *testing.T) {
	got, err := decodeUTCTime([]byte("910506234540Z"), BER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(1991, 5, 6, 23, 45, 40, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDecodeUTCTimeRequiresFullSecondsAndZUnderDER(t *testing.T) {
	if _, err := decodeUTCTime([]byte("9105062345Z"), DER); err == nil {
		t.Fatalf("expected der to require full seconds")
	}
	if _, err := decodeUTCTime([]byte("910506234540+0100"), DER); err == nil {
		t.Fatalf("expected der to require a Z suffix")
	}
	if _, err := decodeUTCTime([]byte("910506234540Z"), DER); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeUTCTimeZoneOffset(t *testing.T) {
	got, err := decodeUTCTime([]byte("910506234540+0130"), BER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(1991, 5, 6, 22, 15, 40, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestEncodeUTCTimeRoundTrip(t *testing.T) {
	want := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	enc := encodeUTCTime(want)
	got, err := decodeUTCTime(enc, DER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDecodeGeneralizedTimeFraction(t *testing.T) {
	got, err := decodeGeneralizedTime([]byte("20260730120000.5Z"), BER)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 7, 30, 12, 0, 0, 500000000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestGeneralizedTimeStrictFractionUnderCanonicalRules(t *testing.T) {
	if _, err := decodeGeneralizedTime([]byte("20260730120000.0Z"), DER); err == nil {
		t.Fatalf("expected der to reject an all-zero fractional component")
	}
	if _, err := decodeGeneralizedTime([]byte("20260730120000.50Z"), DER); err == nil {
		t.Fatalf("expected der to reject a trailing-zero fractional component")
	}
	if _, err := decodeGeneralizedTime([]byte("20260730120000.5Z"), DER); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := decodeGeneralizedTime([]byte("2026073012Z"), DER); err == nil {
		t.Fatalf("expected der to require full seconds")
	}
}

func TestEncodeGeneralizedTimeOmitsZeroFraction(t *testing.T) {
	t0 := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	enc := encodeGeneralizedTime(t0, 0)
	if string(enc) != "20260730120000Z" {
		t.Fatalf("got %q", enc)
	}
	enc = encodeGeneralizedTime(t0, 500000000)
	if string(enc) != "20260730120000.5Z" {
		t.Fatalf("got %q", enc)
	}
}
