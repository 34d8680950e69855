package model

import "github.com/nikbrunner/emj/internal/textnorm"

// InternalPrefix is prepended to a code to form the font's glyph identifier.
const InternalPrefix = "emoji_u"

// Entry represents one emoji asset in the catalog.
type Entry struct {
	Code           string `json:"code"` // canonical lowercase hex, sequences joined by "_"
	HasAnimation   bool   `json:"hasAnimation"`
	Name           string `json:"name"`
	NormalizedName string `json:"-"` // always textnorm.Normalize(Name)
}

// NewEntryParams holds parameters for creating a new Entry.
type NewEntryParams struct {
	Code         string
	HasAnimation bool
	Name         string
}

// NewEntry creates an Entry with its normalized name cached.
func NewEntry(params NewEntryParams) Entry {
	return Entry{
		Code:           params.Code,
		HasAnimation:   params.HasAnimation,
		Name:           params.Name,
		NormalizedName: textnorm.Normalize(params.Name),
	}
}

// InternalID returns the glyph identifier form of the code, e.g. "emoji_u1f600".
func (e Entry) InternalID() string {
	return InternalPrefix + e.Code
}

// PlaceholderName synthesizes a display name for a code without one.
func PlaceholderName(code string) string {
	return "Emoji_u" + code
}
