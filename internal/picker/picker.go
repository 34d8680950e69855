package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/emj/internal/history"
	"github.com/nikbrunner/emj/internal/search"
	"github.com/nikbrunner/emj/internal/session"
	"github.com/nikbrunner/emj/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("108"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Picker is a simple TUI for choosing one emoji from a session's matches.
type Picker struct {
	session   *session.Session
	cfg       layout.LayoutConfig
	cursor    int
	selected  bool
	kind      history.Kind
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker over the session's current matches.
func New(s *session.Session) Picker {
	return Picker{
		session: s,
		cfg:     layout.DefaultConfig(),
		cursor:  0,
		kind:    history.KindURL,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.requestMore()
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			return p.choose(history.KindURL)

		case tea.KeyDown:
			p.move(1)
			return p, nil

		case tea.KeyUp:
			p.move(-1)
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.move(1)
				return p, nil
			case "k":
				p.move(-1)
				return p, nil
			case "m":
				return p.choose(history.KindMarkup)
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p Picker) choose(kind history.Kind) (tea.Model, tea.Cmd) {
	if p.session.Rendered() == 0 {
		return p, nil
	}
	p.selected = true
	p.kind = kind
	return p, tea.Quit
}

// move shifts the cursor by delta within the loaded cards, loading the next
// batch when the visible window reaches the end.
func (p *Picker) move(delta int) {
	p.cursor = min(max(p.cursor+delta, 0), max(p.session.Rendered()-1, 0))
	p.requestMore()
}

// requestMore loads batches until the visible rows are covered with the
// prefetch margin to spare.
func (p *Picker) requestMore() {
	rows := layout.CalculatePickerRows(p.height, p.cfg.Picker)
	for {
		_, end := layout.CalculateVisibleListItems(rows, p.cursor, p.session.Rendered())
		res := p.session.Dispatch(session.ViewportNearEnd{Position: end - 1})
		if res.Added == 0 {
			break
		}
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.session.Query(), p.session.MatchCount())))
	b.WriteString("\n\n")

	cards := p.session.Cards()
	rows := layout.CalculatePickerRows(p.height, p.cfg.Picker)
	start, end := layout.CalculateVisibleListItems(rows, p.cursor, len(cards))
	nameWidth := max(p.width-12, 10)

	for i := start; i < end; i++ {
		card := cards[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		name := layout.HighlightMatches(card.Entry.Name, search.Highlight(card.Entry.Name, p.session.Query()))
		name = layout.TruncateANSIAware(name, nameWidth, p.cfg.Text)
		badge := badgeStyle.Render(card.Variant.Badge())
		url, _ := layout.TruncateText(card.URL, max(p.width-3, 10), p.cfg.Text)

		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, style.Render(name), badge))
		b.WriteString(fmt.Sprintf("   %s\n", urlStyle.Render(url)))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("j/k: move  Enter: copy URL  m: copy markup  q/Esc: cancel"))

	return b.String()
}

// Selected returns the chosen card, or nil if cancelled.
func (p Picker) Selected() *session.Card {
	if p.cancelled || !p.selected {
		return nil
	}
	card, ok := p.session.Card(p.cursor)
	if !ok {
		return nil
	}
	return &card
}

// SelectedKind returns what should be copied for the chosen card.
func (p Picker) SelectedKind() history.Kind {
	return p.kind
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
