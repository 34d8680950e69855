package layout

// CalculateModalWidth computes the help overlay width as a percentage of the
// terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100
	width = max(width, cfg.MinWidth)
	width = min(width, cfg.MaxWidth)

	// Don't exceed terminal width
	width = min(width, terminalWidth-4)
	if width < 1 {
		return 1
	}
	return width
}

// CalculateVisibleListItems computes the window of a scrollable list that
// keeps selectedIdx in view. items[start:end] should be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = min(start+maxVisible, totalItems)
	return start, end
}

// CalculatePickerRows returns how many results fit in the picker.
func CalculatePickerRows(terminalHeight int, cfg PickerConfig) int {
	rows := (terminalHeight - cfg.HeaderLines) / max(cfg.RowHeight, 1)
	if rows < 1 {
		return 1
	}
	return rows
}
