package nlu

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase capitalises each whitespace separated word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// normalize lowercases the message, turns punctuation other than
// apostrophes into spaces and collapses whitespace.
func normalize(message string) string {
	lowered := strings.ToLower(strings.TrimSpace(message))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r == '\'' || r == '’':
			b.WriteRune('\'')
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func trimWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
