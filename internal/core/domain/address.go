package domain

import "strings"

// bech32Charset is the character set used by Ark addresses (bech32m data
// part). Full decoding, including checksum verification, belongs to the
// protocol client; this check only has to be cheap enough to run before
// any lock is taken.
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// ValidArkAddress reports whether s is syntactically plausible as an Ark
// offchain address: a known human-readable prefix followed by bech32
// characters of a sane length.
func ValidArkAddress(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))

	var data string
	switch {
	case strings.HasPrefix(s, "tark1"):
		data = s[len("tark1"):]
	case strings.HasPrefix(s, "ark1"):
		data = s[len("ark1"):]
	default:
		return false
	}

	// Ark addresses encode two x-only keys; the data part is long.
	if len(data) < 20 || len(data) > 120 {
		return false
	}
	for _, c := range data {
		if !strings.ContainsRune(bech32Charset, c) {
			return false
		}
	}
	return true
}
