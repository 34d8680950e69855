// Package textnorm canonicalizes emoji names and queries for comparison.
package textnorm

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and drops the combining diacritical marks block.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isCombiningMark)))

func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}

// Normalize lower-cases text, applies compatibility decomposition and strips
// combining diacritical marks: "Café" -> "cafe".
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	result, _, err := transform.String(stripMarks, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return result
}

// Tokenize normalizes text and splits it on every run of characters outside
// [a-z0-9]. Empty tokens are discarded.
func Tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !isTokenRune(r)
	})
}

func isTokenRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// Stem applies a minimal suffix-stripping heuristic. The first matching rule
// wins:
//
//	ies -> y, ing -> "", ed -> "", es -> "", s -> "" (only when len > 3)
//
// False stems are acceptable; the vocabulary is small and recall matters
// more than precision.
func Stem(token string) string {
	switch {
	case strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ing"):
		return token[:len(token)-3]
	case strings.HasSuffix(token, "ed"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "es"):
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && len(token) > 3:
		return token[:len(token)-1]
	default:
		return token
	}
}

// StemmedTokens tokenizes text and stems every token.
func StemmedTokens(text string) []string {
	tokens := Tokenize(text)
	for i, t := range tokens {
		tokens[i] = Stem(t)
	}
	return tokens
}
