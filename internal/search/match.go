package search

import (
	"strings"

	"github.com/nikbrunner/emj/internal/textnorm"
)

// FuzzyMatch reports whether every stemmed query token is a substring of at
// least one stemmed token of the candidate name. A query without tokens
// matches everything.
func FuzzyMatch(candidateNormalizedName, query string) bool {
	queryTokens := textnorm.StemmedTokens(query)
	if len(queryTokens) == 0 {
		return true
	}
	return matchTokens(textnorm.StemmedTokens(candidateNormalizedName), queryTokens)
}

func matchTokens(nameTokens, queryTokens []string) bool {
	for _, qt := range queryTokens {
		found := false
		for _, nt := range nameTokens {
			if strings.Contains(nt, qt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
