package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/emj/internal/clip"
	"github.com/nikbrunner/emj/internal/debounce"
	"github.com/nikbrunner/emj/internal/history"
	"github.com/nikbrunner/emj/internal/logging"
	"github.com/nikbrunner/emj/internal/opener"
	"github.com/nikbrunner/emj/internal/probe"
	"github.com/nikbrunner/emj/internal/session"
	"github.com/nikbrunner/emj/internal/tui/layout"
)

// FlashDuration is how long a status message stays visible.
const FlashDuration = time.Second

// Mode is the current input mode.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeHelp
)

type (
	// searchTickMsg fires when a debounced search edit has gone quiet.
	searchTickMsg struct {
		token debounce.Token
	}

	// flashExpiredMsg clears the status message it belongs to.
	flashExpiredMsg struct {
		seq int
	}

	// probeResultMsg carries the failed assets of a checked batch.
	probeResultMsg struct {
		epoch    uint64
		failures []probe.Result
	}
)

// App is the main bubbletea model for the emoji browser.
type App struct {
	session      *session.Session
	keys         KeyMap
	styles       Styles
	theme        Theme
	layoutConfig layout.LayoutConfig

	mode      Mode
	search    textinput.Model
	debouncer *debounce.Debouncer
	cursor    int

	clipboard clip.Writer
	opener    opener.Opener
	history   history.Recorder // nil disables recording
	prober    *probe.Prober    // nil disables asset checks

	// Transient status line
	status      string
	statusIsErr bool
	statusSeq   int

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Session      *session.Session
	Keys         *KeyMap              // optional, uses default if nil
	Theme        Theme                // optional, defaults to dark
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Debounce     time.Duration        // optional, uses debounce.DefaultDelay
	Clipboard    clip.Writer          // optional, uses the system clipboard
	Opener       opener.Opener        // optional, uses the default browser
	History      history.Recorder     // optional
	Prober       *probe.Prober        // optional
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	var clipboard clip.Writer = clip.System{}
	if params.Clipboard != nil {
		clipboard = params.Clipboard
	}

	var browser opener.Opener = opener.Browser{}
	if params.Opener != nil {
		browser = params.Opener
	}

	input := textinput.New()
	input.Placeholder = "Search emoji by name or code..."
	input.Prompt = "/ "
	input.CharLimit = layoutCfg.Input.SearchCharLimit
	input.Width = layoutCfg.Input.SearchWidth
	input.SetValue(params.Session.Query())

	return App{
		session:      params.Session,
		keys:         keys,
		styles:       ThemeStyles(params.Theme),
		theme:        params.Theme,
		layoutConfig: layoutCfg,
		mode:         ModeBrowse,
		search:       input,
		debouncer:    debounce.New(params.Debounce),
		clipboard:    clipboard,
		opener:       browser,
		history:      params.History,
		prober:       params.Prober,
		width:        80,
		height:       24,
	}
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Cursor returns the selected row.
func (a App) Cursor() int {
	return a.cursor
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Session returns the browsing session.
func (a App) Session() *session.Session {
	return a.session
}

// Status returns the current status message.
func (a App) Status() string {
	return a.status
}

// Theme returns the active theme.
func (a App) Theme() Theme {
	return a.theme
}

// SearchValue returns the text in the search box.
func (a App) SearchValue() string {
	return a.search.Value()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.probeBatch(0, a.session.Rendered())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.requestMore()

	case searchTickMsg:
		if !a.debouncer.Fire(msg.token) {
			return a, nil
		}
		return a, a.applyQuery()

	case flashExpiredMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
			a.statusIsErr = false
		}
		return a, nil

	case probeResultMsg:
		for _, r := range msg.failures {
			if a.session.ApplyFallback(msg.epoch, r.Target.Index) {
				logging.Logger().Debug("asset fallback",
					"url", r.Target.URL, "status", r.Status.String(), "code", r.StatusCode)
			}
		}
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeHelp:
			return a.updateHelp(msg)
		default:
			return a.updateBrowse(msg)
		}
	}

	return a, nil
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.debouncer.Cancel()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		return a, a.moveCursor(1)

	case key.Matches(msg, a.keys.Up):
		return a, a.moveCursor(-1)

	case key.Matches(msg, a.keys.PageDown):
		return a, a.moveCursor(a.listHeight() / 2)

	case key.Matches(msg, a.keys.PageUp):
		return a, a.moveCursor(-a.listHeight() / 2)

	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
		return a, nil

	case key.Matches(msg, a.keys.Bottom):
		return a, a.moveCursor(a.session.Rendered())

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		return a, a.search.Focus()

	case key.Matches(msg, a.keys.ClearSearch):
		if a.search.Value() == "" {
			return a, nil
		}
		a.search.SetValue("")
		a.debouncer.Cancel()
		return a, a.applyQuery()

	case key.Matches(msg, a.keys.CycleSize):
		return a, a.dispatch(session.SizeChanged{Size: a.session.Size().Next()})

	case key.Matches(msg, a.keys.CycleFormat):
		return a, a.dispatch(session.FormatChanged{Format: a.session.Format().Next()})

	case key.Matches(msg, a.keys.Rebuild):
		return a, a.dispatch(session.Rebuild{})

	case key.Matches(msg, a.keys.CopyURL):
		card, ok := a.session.Card(a.cursor)
		if !ok {
			return a, nil
		}
		return a, a.copy(card.URL, history.NewRecordParams{
			Code: card.Entry.Code, Name: card.Entry.Name, Kind: history.KindURL,
		})

	case key.Matches(msg, a.keys.CopyMarkup):
		card, ok := a.session.Card(a.cursor)
		if !ok {
			return a, nil
		}
		return a, a.copy(card.Markup, history.NewRecordParams{
			Code: card.Entry.Code, Name: card.Entry.Name, Kind: history.KindMarkup,
		})

	case key.Matches(msg, a.keys.CopyAllURLs):
		if a.session.MatchCount() == 0 {
			return a, nil
		}
		return a, a.copy(a.session.AllURLs(), history.NewRecordParams{
			Name: fmt.Sprintf("%d URLs", a.session.MatchCount()), Kind: history.KindBulk,
		})

	case key.Matches(msg, a.keys.CopyAllMarkup):
		if a.session.MatchCount() == 0 {
			return a, nil
		}
		return a, a.copy(a.session.AllMarkup(), history.NewRecordParams{
			Name: fmt.Sprintf("%d markup tags", a.session.MatchCount()), Kind: history.KindBulk,
		})

	case key.Matches(msg, a.keys.Open):
		card, ok := a.session.Card(a.cursor)
		if !ok {
			return a, nil
		}
		if err := a.opener.Open(card.URL); err != nil {
			return a, a.flashError(fmt.Sprintf("Open failed: %v", err))
		}
		return a, nil

	case key.Matches(msg, a.keys.Theme):
		a.theme = a.theme.Toggle()
		a.styles = ThemeStyles(a.theme)
		return a, nil

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
		return a, nil
	}

	return a, nil
}

func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		a.debouncer.Cancel()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Apply):
		a.mode = ModeBrowse
		a.search.Blur()
		if !a.debouncer.Pending() {
			return a, nil
		}
		a.debouncer.Cancel()
		return a, a.applyQuery()

	case key.Matches(msg, a.keys.Cancel):
		// Leave the box; a pending edit still applies when its tick fires
		a.mode = ModeBrowse
		a.search.Blur()
		return a, nil

	case msg.Type == tea.KeyDown, msg.Type == tea.KeyCtrlN:
		return a, a.moveCursor(1)

	case msg.Type == tea.KeyUp, msg.Type == tea.KeyCtrlP:
		return a, a.moveCursor(-1)
	}

	before := a.search.Value()
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() == before {
		return a, cmd
	}

	token := a.debouncer.Schedule()
	tick := tea.Tick(a.debouncer.Delay(), func(time.Time) tea.Msg {
		return searchTickMsg{token: token}
	})
	return a, tea.Batch(cmd, tick)
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "q", "esc":
		a.mode = ModeBrowse
	case "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

// applyQuery filters against the current search text.
func (a *App) applyQuery() tea.Cmd {
	logging.Logger().Debug("filter", "query", a.search.Value())
	return a.dispatch(session.QueryChanged{Query: a.search.Value()})
}

// dispatch sends cmd to the session and schedules asset checks for any new
// cards. A replaced card list puts the cursor back on top.
func (a *App) dispatch(cmd session.Command) tea.Cmd {
	res := a.session.Dispatch(cmd)
	if res.Reset {
		a.cursor = 0
	}

	var cmds []tea.Cmd
	if res.Added > 0 {
		rendered := a.session.Rendered()
		cmds = append(cmds, a.probeBatch(rendered-res.Added, rendered))
	}
	if res.Reset {
		cmds = append(cmds, a.requestMore())
	}
	return tea.Batch(cmds...)
}

// moveCursor moves the selection by delta within the loaded cards and
// reports the new viewport position to the session.
func (a *App) moveCursor(delta int) tea.Cmd {
	last := max(a.session.Rendered()-1, 0)
	a.cursor = min(max(a.cursor+delta, 0), last)
	return a.requestMore()
}

// requestMore loads batches while the bottom of the viewport is within the
// prefetch margin of the last card.
func (a *App) requestMore() tea.Cmd {
	var cmds []tea.Cmd
	for {
		position := layout.LastVisibleRow(a.cursor, a.session.Rendered(), a.listHeight())
		res := a.session.Dispatch(session.ViewportNearEnd{Position: position})
		if res.Added == 0 {
			break
		}
		rendered := a.session.Rendered()
		cmds = append(cmds, a.probeBatch(rendered-res.Added, rendered))
	}
	return tea.Batch(cmds...)
}

// probeBatch checks the assets of cards [from, to) in the background.
func (a App) probeBatch(from, to int) tea.Cmd {
	if a.prober == nil || from >= to {
		return nil
	}

	epoch := a.session.Epoch()
	targets := make([]probe.Target, 0, to-from)
	for i := from; i < to; i++ {
		card, ok := a.session.Card(i)
		if !ok {
			break
		}
		targets = append(targets, probe.Target{Index: i, URL: card.URL})
	}

	prober := a.prober
	return func() tea.Msg {
		results := prober.Check(context.Background(), targets)
		return probeResultMsg{epoch: epoch, failures: probe.Failures(results)}
	}
}

// copy writes text to the clipboard and records it.
func (a *App) copy(text string, rec history.NewRecordParams) tea.Cmd {
	if err := a.clipboard.WriteAll(text); err != nil {
		logging.Logger().Warn("clipboard write failed", "err", err)
		return a.flashError(fmt.Sprintf("Copy failed: %v", err))
	}

	if a.history != nil {
		rec.Payload = text
		rec.Format = string(a.session.Format())
		if err := a.history.Add(history.NewRecord(rec)); err != nil {
			logging.Logger().Warn("history write failed", "err", err)
			return a.flashError("Copied, but history failed")
		}
	}

	return a.flash("Copied")
}

func (a *App) flash(msg string) tea.Cmd {
	a.statusSeq++
	a.status = msg
	a.statusIsErr = false
	seq := a.statusSeq
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

func (a *App) flashError(msg string) tea.Cmd {
	cmd := a.flash(msg)
	a.statusIsErr = true
	return cmd
}

// listHeight is the number of rows visible in the list pane.
func (a App) listHeight() int {
	l := layout.CalculateBrowserLayout(a.width, a.height, a.layoutConfig.Browser)
	return l.Height
}

// selectionSummary describes the active size and format.
func (a App) selectionSummary() string {
	return fmt.Sprintf("%spx · %s", a.session.Size(), a.session.Format())
}
