package asn1

import (
	"strconv"
	"strings"
	"time"
)

// decodeUTCTime parses UTCTime content: YYMMDDhhmm[ss](Z|+hhmm|-hhmm).
// BER accepts any of the zone forms and optional seconds; CER/DER
// require the Z suffix and full seconds.
func decodeUTCTime(content []byte, rule Rule) (time.Time, error) {
	s := string(content)
	hasSeconds := false
	body := s
	var zone string
	switch {
	case strings.HasSuffix(s, "Z"):
		zone = "Z"
		body = s[:len(s)-1]
	case strings.ContainsAny(s, "+-"):
		idx := strings.IndexAny(s, "+-")
		zone = s[idx:]
		body = s[:idx]
	default:
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "utc time missing zone suffix")
	}
	switch len(body) {
	case 10: // YYMMDDhhmm
	case 12: // YYMMDDhhmmss
		hasSeconds = true
	default:
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "utc time has invalid length")
	}
	if (rule == CER || rule == DER) && (zone != "Z" || !hasSeconds) {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "cer/der utc time requires Z suffix and full seconds")
	}
	layout := "0601021504"
	if hasSeconds {
		layout = "060102150405"
	}
	t, err := time.Parse(layout, body)
	if err != nil {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "malformed utc time: "+err.Error())
	}
	return applyZone(t, zone, rule)
}

// encodeUTCTime encodes t as UTCTime content. It always writes an
// explicit "Z" (UTC) and full seconds: the form CER/DER require, and a
// valid BER form as well.
func encodeUTCTime(t time.Time) []byte {
	return []byte(t.UTC().Format("060102150405Z"))
}

// decodeGeneralizedTime parses GeneralizedTime content:
// YYYYMMDDhh[mm[ss[.f...]]] with an optional Z/+hhmm/-hhmm zone
// suffix (zone absent means local/unspecified time under BER only).
//
// CER/DER require: seconds present, Z suffix, no trailing fractional
// zeros, and no fractional component at all when its value is zero
// (the strict reading this specification fixes for the corresponding
// Open Question).
func decodeGeneralizedTime(content []byte, rule Rule) (time.Time, error) {
	s := string(content)
	zone := ""
	body := s
	switch {
	case strings.HasSuffix(s, "Z"):
		zone = "Z"
		body = s[:len(s)-1]
	case strings.ContainsAny(s, "+-"):
		idx := strings.LastIndexAny(s, "+-")
		zone = s[idx:]
		body = s[:idx]
	}
	if (rule == CER || rule == DER) && zone != "Z" {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "cer/der generalized time requires Z suffix")
	}

	frac := ""
	if dot := strings.IndexAny(body, ".,"); dot >= 0 {
		frac = body[dot+1:]
		body = body[:dot]
	}
	hasSeconds := len(body) == 14
	hasMinutes := len(body) == 12
	hasHoursOnly := len(body) == 10
	if !hasSeconds && !hasMinutes && !hasHoursOnly {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "generalized time has invalid length")
	}
	if rule == CER || rule == DER {
		if !hasSeconds {
			return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "cer/der generalized time requires full seconds")
		}
		if err := validateStrictFraction(frac, rule); err != nil {
			return time.Time{}, err
		}
	}
	if frac != "" {
		for _, c := range frac {
			if c < '0' || c > '9' {
				return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "non-digit in fractional seconds")
			}
		}
	}

	layout := "20060102"
	switch {
	case hasSeconds:
		layout += "150405"
	case hasMinutes:
		layout += "1504"
	default:
		layout += "15"
	}
	t, err := time.Parse(layout, body)
	if err != nil {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "malformed generalized time: "+err.Error())
	}
	if frac != "" {
		num, err := strconv.ParseFloat("0."+frac, 64)
		if err != nil {
			return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "malformed fractional seconds")
		}
		var unit time.Duration
		switch {
		case hasSeconds:
			unit = time.Second
		case hasMinutes:
			unit = time.Minute
		default:
			unit = time.Hour
		}
		t = t.Add(time.Duration(num * float64(unit)))
	}
	return applyZone(t, zone, rule)
}

// validateStrictFraction enforces the CER/DER fractional-seconds rule:
// no fractional component at all when the value is exactly zero, and
// no trailing zero digits otherwise.
func validateStrictFraction(frac string, rule Rule) error {
	if frac == "" {
		return nil
	}
	allZero := true
	for _, c := range frac {
		if c != '0' {
			allZero = false
			break
		}
	}
	if allZero {
		return newErr(KindValueCharacters, rule, 0, Tag{}, "fractional seconds component must be absent when zero")
	}
	if frac[len(frac)-1] == '0' {
		return newErr(KindValueCharacters, rule, 0, Tag{}, "fractional seconds must not have trailing zero digits")
	}
	return nil
}

func applyZone(t time.Time, zone string, rule Rule) (time.Time, error) {
	if zone == "" || zone == "Z" {
		return t.UTC(), nil
	}
	if rule != BER {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "time zone offsets not permitted under cer/der")
	}
	sign := 1
	if zone[0] == '-' {
		sign = -1
	}
	if len(zone) != 5 {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "malformed time zone offset")
	}
	hh, err1 := strconv.Atoi(zone[1:3])
	mm, err2 := strconv.Atoi(zone[3:5])
	if err1 != nil || err2 != nil {
		return time.Time{}, newErr(KindValueCharacters, rule, 0, Tag{}, "malformed time zone offset")
	}
	offset := sign * (hh*3600 + mm*60)
	return t.Add(-time.Duration(offset) * time.Second).UTC(), nil
}

// encodeGeneralizedTime encodes t as GeneralizedTime content. When
// fractionNanos is non-zero, fractional seconds are encoded
// without trailing zeros, matching CER/DER's canonical form.
func encodeGeneralizedTime(t time.Time, fractionNanos int64) []byte {
	t = t.UTC()
	s := t.Format("20060102150405")
	if fractionNanos != 0 {
		frac := strconv.FormatInt(fractionNanos, 10)
		for len(frac) < 9 {
			frac = "0" + frac
		}
		frac = strings.TrimRight(frac, "0")
		if frac != "" {
			s += "." + frac
		}
	}
	return []byte(s + "Z")
}
