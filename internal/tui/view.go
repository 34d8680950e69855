package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/emj/internal/search"
	"github.com/nikbrunner/emj/internal/session"
	"github.com/nikbrunner/emj/internal/tui/layout"
)

// View implements tea.Model.
func (a App) View() string {
	if a.mode == ModeHelp {
		return a.renderHelpOverlay()
	}
	return a.renderView()
}

// renderView creates the list and preview panes with header and status.
func (a App) renderView() string {
	l := layout.CalculateBrowserLayout(a.width, a.height, a.layoutConfig.Browser)

	panes := a.renderListPane(l.ListWidth, l.Height)
	if l.PreviewWidth > 0 {
		panes = lipgloss.JoinHorizontal(lipgloss.Top, panes, a.renderPreviewPane(l.PreviewWidth, l.Height))
	}

	content := a.styles.App.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderHeader(),
		a.search.View(),
		panes,
		a.renderStatusLine(),
		a.renderHints(a.getContextualHints()),
	))

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader shows the app name, match count and active selection.
func (a App) renderHeader() string {
	count := fmt.Sprintf("%d of %d", a.session.MatchCount(), a.session.Total())
	return a.styles.Title.Render("emj") + "  " +
		a.styles.Empty.Render(count) + "  " +
		a.styles.Badge.Render(a.selectionSummary())
}

func (a App) renderListPane(width, height int) string {
	var content strings.Builder

	rowWidth := layout.CalculateRowWidth(width, a.layoutConfig.Browser)
	cards := a.session.Cards()

	if len(cards) == 0 {
		content.WriteString(a.styles.Empty.Render("No matches"))
	} else {
		offset := layout.CalculateViewportOffset(a.cursor, len(cards), height)
		end := min(offset+height, len(cards))
		for i := offset; i < end; i++ {
			content.WriteString(a.renderRow(cards[i], i == a.cursor, rowWidth) + "\n")
		}
	}

	style := a.styles.Pane
	if a.mode == ModeBrowse {
		style = a.styles.PaneActive
	}
	return style.
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderRow renders one card as "Name  Badge" with matched characters
// emphasized.
func (a App) renderRow(card session.Card, selected bool, maxWidth int) string {
	badge := card.Variant.Badge()
	if card.Fallback {
		badge = "Fallback"
	}
	nameWidth := max(maxWidth-len(badge)-2, 1)

	var name string
	if selected {
		name, _ = layout.TruncateText(card.Entry.Name, nameWidth, a.layoutConfig.Text)
	} else {
		matches := search.Highlight(card.Entry.Name, a.session.Query())
		name = layout.TruncateANSIAware(layout.HighlightMatches(card.Entry.Name, matches), nameWidth, a.layoutConfig.Text)
	}

	// Pad name to a fixed column so badges line up
	if w := layout.VisibleWidth(name); w < nameWidth {
		name += strings.Repeat(" ", nameWidth-w)
	}

	if selected {
		return a.styles.ItemSelected.Width(maxWidth).Render(name + " " + badge)
	}

	badgeStyle := a.styles.Badge
	if card.Fallback {
		badgeStyle = a.styles.Fallback
	}
	return a.styles.Item.Render(name) + " " + badgeStyle.Render(badge)
}

func (a App) renderPreviewPane(width, height int) string {
	var content strings.Builder

	rowWidth := layout.CalculateRowWidth(width, a.layoutConfig.Browser)

	if card, ok := a.session.Card(a.cursor); ok {
		name, _ := layout.TruncateText(card.Entry.Name, rowWidth, a.layoutConfig.Text)
		content.WriteString(a.styles.Title.Render(name) + "\n\n")

		content.WriteString(a.renderField("Code", card.Entry.Code) + "\n")
		content.WriteString(a.renderField("Glyph", card.Entry.InternalID()) + "\n")

		variant := a.styles.Badge.Render(card.Variant.Badge())
		if card.Fallback {
			variant = a.styles.Fallback.Render("Static (fallback)")
		}
		content.WriteString(a.styles.Label.Render("Variant") + variant + "\n\n")

		url, _ := layout.TruncateText(card.URL, rowWidth, a.layoutConfig.Text)
		content.WriteString(a.styles.URL.Render(url) + "\n\n")

		markup := lipgloss.NewStyle().Width(rowWidth).Render(card.Markup)
		content.WriteString(a.styles.Code.Render(markup))
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		MaxHeight(height + 2).
		Render(strings.TrimRight(content.String(), "\n"))
}

func (a App) renderField(label, value string) string {
	return a.styles.Label.Render(label) + a.styles.Code.Render(value)
}

// renderStatusLine shows the flash message, or loading progress.
func (a App) renderStatusLine() string {
	if a.status != "" {
		if a.statusIsErr {
			return a.styles.Error.Render(a.status)
		}
		return a.styles.Status.Render(a.status)
	}

	progress := fmt.Sprintf("%d/%d loaded", a.session.Rendered(), a.session.MatchCount())
	if a.debouncer.Pending() {
		progress += " · filtering..."
	}
	return a.styles.Empty.Render(progress + " · theme " + a.theme.String())
}

func (a App) renderHelpOverlay() string {
	cfg := a.layoutConfig.Modal
	sections := a.keys.HelpSections()

	renderSections := func(sections []HelpSection) string {
		var b strings.Builder
		for i, section := range sections {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(a.styles.Title.Render(strings.ToLower(section.Title)) + "\n")
			for _, binding := range section.Bindings {
				h := binding.Help()
				b.WriteString(lipgloss.NewStyle().Width(cfg.KeyColumnWidth).Render(h.Key) + h.Desc + "\n")
			}
		}
		return strings.TrimRight(b.String(), "\n")
	}

	// Two columns when the overlay is wide enough, one otherwise
	var body string
	split := len(sections) / 2
	if layout.CalculateModalWidth(a.width, cfg) >= 2*cfg.ColumnWidth+2 {
		left := lipgloss.NewStyle().Width(cfg.ColumnWidth).Render(renderSections(sections[:split]))
		right := lipgloss.NewStyle().Width(cfg.ColumnWidth).Render(renderSections(sections[split:]))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	} else {
		body = renderSections(sections)
	}

	modal := a.styles.Modal.Render(body + "\n\n" + a.renderHints(a.getContextualHints()))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
