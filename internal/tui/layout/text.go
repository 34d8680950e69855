package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleWidth returns the number of terminal cells s occupies, ignoring
// ANSI codes. Emoji and other wide runes count as two.
func VisibleWidth(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates plain text to maxWidth cells with an ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}
	if maxWidth <= ansi.StringWidth(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}
	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// TruncateANSIAware truncates styled text to maxWidth cells, keeping the
// escape codes of the part that survives. Used for rows whose matched
// characters are highlighted.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(styledText) <= maxWidth {
		return styledText
	}
	return ansi.Truncate(styledText, maxWidth, cfg.Ellipsis) + "\x1b[0m"
}

// HighlightMatches wraps the runes starting at the given byte indexes of text
// in bold+underline codes.
func HighlightMatches(text string, indexes []int) string {
	if len(indexes) == 0 {
		return text
	}

	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range text {
		if matched[i] {
			b.WriteString("\x1b[1;4m")
			b.WriteRune(r)
			b.WriteString("\x1b[22;24m")
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
