package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchKey folds a name to lower case without diacritics so that
// substring searches match "Pérez" with "ere". Lower-casing runs first because it can
// introduce combining marks ("İ" lowers to "i" plus a dot above).
func SearchKey(s string) string {
	lowered := strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return folded
}
