package layout

// BrowserLayout holds calculated list and preview pane dimensions.
type BrowserLayout struct {
	ListWidth    int
	PreviewWidth int
	Height       int
}

// CalculateBrowserLayout splits the terminal into the list and preview panes.
// The preview pane is dropped (width 0) when the list alone needs all the room.
func CalculateBrowserLayout(terminalWidth, terminalHeight int, cfg BrowserConfig) BrowserLayout {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		height = cfg.MinHeight
	}

	usable := terminalWidth - cfg.BorderWidth
	listWidth := usable * cfg.ListWidthPercent / 100
	if listWidth < cfg.MinListWidth {
		listWidth = cfg.MinListWidth
	}

	previewWidth := usable - listWidth
	if previewWidth < cfg.MinListWidth/2 {
		listWidth = max(usable, 1)
		previewWidth = 0
	}

	return BrowserLayout{
		ListWidth:    listWidth,
		PreviewWidth: previewWidth,
		Height:       height,
	}
}

// CalculateRowWidth computes the width available for row content.
func CalculateRowWidth(paneWidth int, cfg BrowserConfig) int {
	width := paneWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected row visible, keeping it roughly centered.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	offset := min(max(selected-viewportHeight/2, 0), total-viewportHeight)
	return offset
}

// LastVisibleRow returns the index of the bottom row shown in the viewport.
// It is the position reported to the renderer's demand signal.
func LastVisibleRow(selected, total, viewportHeight int) int {
	if total == 0 {
		return 0
	}
	offset := CalculateViewportOffset(selected, total, viewportHeight)
	return min(offset+viewportHeight, total) - 1
}
