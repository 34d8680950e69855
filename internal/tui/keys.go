package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Top           key.Binding
	Bottom        key.Binding
	PageDown      key.Binding
	PageUp        key.Binding
	Search        key.Binding
	Apply         key.Binding
	Cancel        key.Binding
	ClearSearch   key.Binding
	CycleSize     key.Binding
	CycleFormat   key.Binding
	CopyURL       key.Binding
	CopyMarkup    key.Binding
	CopyAllURLs   key.Binding
	CopyAllMarkup key.Binding
	Open          key.Binding
	Rebuild       key.Binding
	Theme         key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to last loaded"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "page up"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "apply search"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "leave search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear search"),
		),
		CycleSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle size"),
		),
		CycleFormat: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle format"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy URL"),
		),
		CopyMarkup: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "copy markup"),
		),
		CopyAllURLs: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy all URLs"),
		),
		CopyAllMarkup: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "copy all markup"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebuild"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpSections groups bindings for the help overlay.
func (k KeyMap) HelpSections() []HelpSection {
	return []HelpSection{
		{Title: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.PageDown, k.PageUp}},
		{Title: "Search", Bindings: []key.Binding{k.Search, k.Apply, k.Cancel, k.ClearSearch}},
		{Title: "Assets", Bindings: []key.Binding{k.CycleSize, k.CycleFormat, k.Rebuild}},
		{Title: "Copy", Bindings: []key.Binding{k.CopyURL, k.CopyMarkup, k.CopyAllURLs, k.CopyAllMarkup, k.Open}},
		{Title: "Other", Bindings: []key.Binding{k.Theme, k.Help, k.Quit}},
	}
}

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}
