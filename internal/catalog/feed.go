package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikbrunner/emj/internal/model"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrFeedUnavailable = errors.New("feed unavailable")
	ErrFeedMalformed   = errors.New("feed malformed")
)

// CanonicalCode lower-cases a codepoint string and joins sequence parts with
// "_", the separator used in asset paths: "1F469-200D-1F4BB" -> "1f469_200d_1f4bb".
func CanonicalCode(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	return strings.NewReplacer("-", "_", " ", "_").Replace(code)
}

// ParseAnimationFeed extracts the codes from the animation index, an object
// with an "icons" array. Records without a codepoint are dropped. Codes are
// returned once each, in first-seen order.
func ParseAnimationFeed(data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: animation index is not valid JSON", ErrFeedMalformed)
	}

	icons := gjson.GetBytes(data, "icons")
	if icons.Exists() && !icons.IsArray() {
		return nil, fmt.Errorf("%w: animation index icons is not an array", ErrFeedMalformed)
	}

	var codes []string
	seen := make(map[string]bool)
	icons.ForEach(func(_, icon gjson.Result) bool {
		code := CanonicalCode(icon.Get("codepoint").String())
		if code == "" || seen[code] {
			return true
		}
		seen[code] = true
		codes = append(codes, code)
		return true
	})
	return codes, nil
}

// ParseNameFeed builds a code -> display name map from the name index, an
// array of records. Records without a unified codepoint are dropped.
// The name prefers "name", then "short_name", then a placeholder, and is
// title-cased.
func ParseNameFeed(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: name index is not valid JSON", ErrFeedMalformed)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: name index is not an array", ErrFeedMalformed)
	}

	title := cases.Title(language.Und)
	names := make(map[string]string)
	root.ForEach(func(_, record gjson.Result) bool {
		code := CanonicalCode(record.Get("unified").String())
		if code == "" {
			return true
		}

		var name string
		switch {
		case record.Get("name").String() != "":
			name = title.String(record.Get("name").String())
		case record.Get("short_name").String() != "":
			name = title.String(record.Get("short_name").String())
		default:
			name = model.PlaceholderName(code)
		}
		names[code] = name
		return true
	})
	return names, nil
}
