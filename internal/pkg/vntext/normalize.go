// Package vntext provides normalization helpers for operator-authored
// Vietnamese text: spreadsheet headers and display names that arrive with
// inconsistent diacritics, casing and spacing.
package vntext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips diacritics, lowercases and collapses whitespace.
// "Mã SV " and "ma sv" normalize to the same string. The result is only
// used for matching, never displayed.
func Normalize(s string) string {
	// NFD splits base letters from combining marks so the marks can be dropped.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	// đ/Đ carry no combining mark and survive NFD untouched.
	out = strings.ReplaceAll(out, "đ", "d")
	out = strings.ReplaceAll(out, "Đ", "D")

	out = strings.ToLower(out)
	return strings.Join(strings.Fields(out), " ")
}

// ContainsNormalized reports whether the normalized form of s contains the
// normalized form of substr.
func ContainsNormalized(s, substr string) bool {
	return strings.Contains(Normalize(s), Normalize(substr))
}
