package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Browser BrowserConfig
	Modal   ModalConfig
	Input   InputConfig
	Text    TextConfig
	Picker  PickerConfig
}

// BrowserConfig holds the list and preview pane dimensions.
type BrowserConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: title (1) + search box (1) + pane borders (2) + status (1) + hint bar (1) = 6
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// ListWidthPercent is the share of the width used by the list pane.
	ListWidthPercent int

	// MinListWidth is the narrowest the list pane may get.
	MinListWidth int

	// BorderWidth is the horizontal space taken by app padding (2) and the
	// borders of both panes (4).
	BorderWidth int

	// ContentPadding is subtracted from pane width for row rendering.
	ContentPadding int
}

// ModalConfig holds help overlay configuration.
type ModalConfig struct {
	// WidthPercent is the overlay width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum overlay width in characters.
	MinWidth int

	// MaxWidth is the maximum overlay width in characters.
	MaxWidth int

	// KeyColumnWidth is the width of the key column in the help overlay.
	KeyColumnWidth int

	// ColumnWidth is the width of one help overlay column.
	ColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	SearchWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// PickerConfig holds quick search picker configuration.
type PickerConfig struct {
	// HeaderLines accounts for the header, blank line and footer.
	HeaderLines int

	// RowHeight is the number of lines each result takes.
	RowHeight int
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Browser: BrowserConfig{
			HeightReduction:  6, // title (1) + search (1) + pane borders (2) + status (1) + hints (1)
			MinHeight:        5,
			ListWidthPercent: 55,
			MinListWidth:     24,
			BorderWidth:      6,
			ContentPadding:   2,
		},
		Modal: ModalConfig{
			WidthPercent:   70,
			MinWidth:       40,
			MaxWidth:       80,
			KeyColumnWidth: 10,
			ColumnWidth:    30,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
		Picker: PickerConfig{
			HeaderLines: 4,
			RowHeight:   2,
		},
	}
}
