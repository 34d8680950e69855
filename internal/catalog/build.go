// Package catalog assembles the emoji catalog from the animation and name
// indexes.
package catalog

import (
	"strings"

	"github.com/nikbrunner/emj/internal/model"
)

const variationSelector = "_fe0f"

// Build merges the two feeds into catalog entries.
//
// The animation index decides membership and order; names are looked up by
// code. Every entry therefore has HasAnimation set.
func Build(animatedCodes []string, names map[string]string) []model.Entry {
	entries := make([]model.Entry, 0, len(animatedCodes))
	for _, code := range animatedCodes {
		entries = append(entries, model.NewEntry(model.NewEntryParams{
			Code:         code,
			HasAnimation: true,
			Name:         lookupName(names, code),
		}))
	}
	return entries
}

// lookupName finds the name for code, retrying without variation selectors
// since the two indexes disagree on whether to include them.
func lookupName(names map[string]string, code string) string {
	if name, ok := names[code]; ok {
		return name
	}
	if stripped := strings.ReplaceAll(code, variationSelector, ""); stripped != code {
		if name, ok := names[stripped]; ok {
			return name
		}
	}
	if name, ok := names[code+variationSelector]; ok {
		return name
	}
	return model.PlaceholderName(code)
}
