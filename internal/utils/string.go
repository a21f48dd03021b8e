package utils

import (
	"strings"
	"unicode"
)

// IsSeparator checks if a rune is a name separator character
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '/'
}

func isBoundary(r rune) bool {
	return IsSeparator(r) || unicode.IsSpace(r)
}

// SplitWords returns the lowercase word tokens of an icon name, split on
// hyphen/underscore/slash/whitespace boundaries. Empty tokens are dropped.
func SplitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), isBoundary)
}

// TitleWords capitalizes the first letter of each word token and joins
// them with single spaces: "message-square" -> "Message Square".
func TitleWords(s string) string {
	words := SplitWords(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// ToPascalCase converts an icon name to a PascalCase component name:
// "chevron-right" -> "ChevronRight".
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range SplitWords(s) {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}
