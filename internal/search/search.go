package search

import (
	"strings"

	"github.com/nikbrunner/emj/internal/model"
	"github.com/nikbrunner/emj/internal/textnorm"
	"github.com/sahilm/fuzzy"
)

// Filter returns the entries matching query, in catalog order.
// A blank query returns entries unchanged.
//
// An entry matches when its name fuzzy-matches the query, or when the
// normalized query is a raw substring of its code or internal identifier.
func Filter(entries []model.Entry, query string) []model.Entry {
	q := textnorm.Normalize(strings.TrimSpace(query))
	if q == "" {
		return entries
	}

	// Stem the query once instead of per entry.
	queryTokens := textnorm.StemmedTokens(q)

	result := make([]model.Entry, 0)
	for _, e := range entries {
		if matches(e, q, queryTokens) {
			result = append(result, e)
		}
	}
	return result
}

func matches(e model.Entry, q string, queryTokens []string) bool {
	if len(queryTokens) == 0 || matchTokens(textnorm.StemmedTokens(e.NormalizedName), queryTokens) {
		return true
	}
	return strings.Contains(e.Code, q) || strings.Contains(e.InternalID(), q)
}

// Highlight returns the byte indexes of name that the query picks out,
// for emphasis in the result list. It never affects which entries match.
func Highlight(name, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" || name == "" {
		return nil
	}

	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
