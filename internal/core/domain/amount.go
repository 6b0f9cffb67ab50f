package domain

import (
	"fmt"
	"math"
	"strings"
)

// SatsPerBTC is the number of base units in one BTC.
const SatsPerBTC = 100_000_000

// ParseBTC converts a decimal BTC string ("0.0001") to satoshis exactly.
// It rejects anything that cannot be represented without loss: more than
// 8 fractional digits, negative values, or non-numeric input. Floats are
// deliberately never involved.
func ParseBTC(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative amount %q", s)
	}
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("malformed amount %q", s)
	}
	if len(fracPart) > 8 {
		return 0, fmt.Errorf("amount %q has sub-satoshi precision", s)
	}

	var sats int64
	for _, c := range intPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("malformed amount %q", s)
		}
		d := int64(c - '0')
		if sats > (1<<62)/10 {
			return 0, fmt.Errorf("amount %q overflows", s)
		}
		sats = sats*10 + d
	}
	if sats > math.MaxInt64/SatsPerBTC {
		return 0, fmt.Errorf("amount %q overflows", s)
	}
	sats *= SatsPerBTC

	// Pad the fractional part to 8 digits and add it in.
	frac := int64(0)
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("malformed amount %q", s)
		}
		frac = frac*10 + int64(c-'0')
	}
	for i := len(fracPart); i < 8; i++ {
		frac *= 10
	}
	if sats > math.MaxInt64-frac {
		return 0, fmt.Errorf("amount %q overflows", s)
	}
	return sats + frac, nil
}

// FormatBTC renders satoshis as a decimal BTC string with trailing zeros
// trimmed ("10000" -> "0.0001").
func FormatBTC(sats int64) string {
	neg := sats < 0
	if neg {
		sats = -sats
	}
	whole := sats / SatsPerBTC
	frac := sats % SatsPerBTC

	out := fmt.Sprintf("%d", whole)
	if frac > 0 {
		f := fmt.Sprintf("%08d", frac)
		f = strings.TrimRight(f, "0")
		out += "." + f
	}
	if neg {
		out = "-" + out
	}
	return out
}
