package tui

import "github.com/charmbracelet/lipgloss"

// Theme selects the color palette.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Code         lipgloss.Style
	URL          lipgloss.Style
	Badge        lipgloss.Style
	Fallback     lipgloss.Style
	Label        lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "y", "j/k")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "copy", "move")
	Modal        lipgloss.Style
}

type palette struct {
	primary lipgloss.Color // main text
	subtle  lipgloss.Color // secondary text
	accent  lipgloss.Color // desaturated teal
	border  lipgloss.Color // inactive borders
	warn    lipgloss.Color // fallback and errors
	inverse lipgloss.Color // text on accent
}

var palettes = map[Theme]palette{
	ThemeDark: {
		primary: "#A0A0A0",
		subtle:  "#606060",
		accent:  "#5F8787",
		border:  "#505050",
		warn:    "#B07050",
		inverse: "#1A1A1A",
	},
	ThemeLight: {
		primary: "#505050",
		subtle:  "#888888",
		accent:  "#4A7070",
		border:  "#888888",
		warn:    "#9A5030",
		inverse: "#F0F0F0",
	},
}

// DefaultStyles returns the dark theme styles.
func DefaultStyles() Styles {
	return ThemeStyles(ThemeDark)
}

// ThemeStyles returns the styles for theme.
// Industrial design: grayscale with single desaturated teal accent.
func ThemeStyles(theme Theme) Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[ThemeDark]
	}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.border),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Item: lipgloss.NewStyle().
			Foreground(p.primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(p.accent).
			Foreground(p.inverse),

		Code: lipgloss.NewStyle().
			Foreground(p.subtle),

		URL: lipgloss.NewStyle().
			Foreground(p.subtle).
			Italic(true),

		Badge: lipgloss.NewStyle().
			Foreground(p.accent),

		Fallback: lipgloss.NewStyle().
			Foreground(p.warn),

		Label: lipgloss.NewStyle().
			Foreground(p.subtle).
			Width(10),

		Status: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(p.warn).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(p.accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(p.subtle),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
	}
}
