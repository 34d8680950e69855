package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/emj/internal/asset"
	"github.com/nikbrunner/emj/internal/catalog"
	"github.com/nikbrunner/emj/internal/clip"
	"github.com/nikbrunner/emj/internal/config"
	"github.com/nikbrunner/emj/internal/exporter"
	"github.com/nikbrunner/emj/internal/history"
	"github.com/nikbrunner/emj/internal/logging"
	"github.com/nikbrunner/emj/internal/model"
	"github.com/nikbrunner/emj/internal/picker"
	"github.com/nikbrunner/emj/internal/probe"
	"github.com/nikbrunner/emj/internal/session"
	"github.com/nikbrunner/emj/internal/tui"
)

const recentLimit = 20

// osExit is replaced in tests.
var osExit = os.Exit

// cleanups run in reverse order when the process exits through exit.
var cleanups []func()

// atExit registers fn to run before the process exits.
func atExit(fn func()) {
	cleanups = append(cleanups, fn)
}

// exit runs the registered cleanups, then exits with code. Every exit path
// goes through here so the history database and log file get closed.
func exit(code int) {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
	osExit(code)
}

func main() {
	setupLogging()
	dispatch()
	exit(0)
}

func dispatch() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "urls":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: emj urls <query>\n")
				exit(1)
			}
			runURLs(strings.Join(os.Args[2:], " "))
			return
		case "export":
			// Export with optional path and query
			var outputPath, query string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			if len(os.Args) >= 4 {
				query = strings.Join(os.Args[3:], " ")
			}
			runExport(outputPath, query)
			return
		case "recent":
			if len(os.Args) >= 3 && os.Args[2] == "clear" {
				runClearHistory()
				return
			}
			runRecent()
			return
		default:
			// Treat as search query (join all remaining args)
			runQuickSearch(strings.Join(os.Args[1:], " "))
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `emj - Noto emoji asset browser

Usage:
  emj                          Open interactive TUI
  emj <query>                  Quick search → select → copy URL
  emj urls <query>             Print the asset URL of every match
  emj export [path] [query]    Export matches as an HTML gallery
  emj recent                   Show recently copied items
  emj recent clear             Delete the copy history
  emj help                     Show this help

TUI Keybindings:
  Navigation:
    j/k         Move down/up
    g/G         Jump to top/last loaded
    /           Search by name or code

  Assets:
    s           Cycle size (32, 64, 128, 512)
    f           Cycle format (png, webp, gif, picture)
    r           Rebuild the list

  Copy:
    y / m       Copy URL / markup of the selected emoji
    Y / M       Copy URLs / markup of every match
    o           Open asset in browser

  Other:
    x           Clear search
    t           Toggle theme
    ?           Show help overlay
    q           Quit

Files:
  ~/.config/emj/config.toml    Configuration
  ~/.config/emj/history.db     Copy history

Set EMJ_LOG=<file> to write a debug log.
`
	fmt.Print(help)
}

// setupLogging sends debug logs to the file named by EMJ_LOG, if any.
func setupLogging() {
	path := os.Getenv("EMJ_LOG")
	if path == "" {
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return
	}
	logging.SetLogger(logging.NewTextLogger(f))
	atExit(func() { f.Close() })
}

func loadConfig() *config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		exit(1)
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		exit(1)
	}
	return cfg
}

// loadCatalog fetches both feeds. Without a catalog there is nothing to
// show, so any failure is fatal.
func loadCatalog(cfg *config.Config) *model.Catalog {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fetcher := catalog.NewFetcher(catalog.FetcherParams{
		AnimationURL: cfg.Feeds.AnimationURL,
		NamesURL:     cfg.Feeds.NamesURL,
	})

	c, err := fetcher.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		exit(1)
	}
	return c
}

func newSession(cfg *config.Config, c *model.Catalog, query string) *session.Session {
	return session.New(session.Params{
		Catalog:        c,
		Resolver:       asset.NewResolver(cfg.Assets.BaseURL, cfg.Assets.Version),
		Size:           cfg.AssetSize(),
		Format:         cfg.AssetFormat(),
		BatchSize:      cfg.BatchSize,
		PrefetchMargin: cfg.PrefetchMargin,
		Query:          query,
	})
}

// openHistory opens the copy history, or returns nil when it is disabled or
// unavailable. History is never required.
func openHistory(cfg *config.Config) *history.Store {
	if !cfg.History {
		return nil
	}

	path, err := history.DefaultPath()
	if err != nil {
		logging.Logger().Warn("history path", "err", err)
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		logging.Logger().Warn("open history", "path", path, "err", err)
		return nil
	}
	return store
}

// runTUI runs the full interactive TUI.
func runTUI() {
	cfg := loadConfig()
	c := loadCatalog(cfg)
	logging.Logger().Info("catalog loaded", "entries", c.Len())

	params := tui.AppParams{
		Session:  newSession(cfg, c, ""),
		Debounce: cfg.DebounceDelay(),
	}

	if store := openHistory(cfg); store != nil {
		atExit(func() { store.Close() })
		params.History = store
	}

	if cfg.ProbeAssets {
		params.Prober = probe.New(probe.Params{
			Concurrency: cfg.ProbeConcurrency,
			Timeout:     cfg.ProbeTimeout(),
		})
	}

	p := tea.NewProgram(tui.NewApp(params), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		exit(1)
	}
}

// runQuickSearch searches, lets the user pick one match and copies it.
func runQuickSearch(query string) {
	cfg := loadConfig()
	s := newSession(cfg, loadCatalog(cfg), query)

	if s.MatchCount() == 0 {
		fmt.Printf("No emoji found for '%s'\n", query)
		exit(0)
	}

	var card *session.Card
	kind := history.KindURL

	if s.MatchCount() == 1 {
		// Single result - select it directly
		only, _ := s.Card(0)
		card = &only
	} else {
		// Multiple results - show picker
		program := tea.NewProgram(picker.New(s))
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			exit(0)
		}
		card = finalPicker.Selected()
		kind = finalPicker.SelectedKind()
	}

	if card == nil {
		exit(0)
	}

	payload := card.URL
	if kind == history.KindMarkup {
		payload = card.Markup
	}

	if !clip.Available() {
		// Headless session, nothing to copy to
		fmt.Println(payload)
		return
	}

	if err := (clip.System{}).WriteAll(payload); err != nil {
		// No clipboard: print so the result is still usable
		fmt.Fprintf(os.Stderr, "Error copying to clipboard: %v\n", err)
		fmt.Println(payload)
		exit(1)
	}

	if store := openHistory(cfg); store != nil {
		rec := history.NewRecord(history.NewRecordParams{
			Code:    card.Entry.Code,
			Name:    card.Entry.Name,
			Kind:    kind,
			Format:  string(s.Format()),
			Payload: payload,
		})
		if err := store.Add(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving history: %v\n", err)
		}
		store.Close()
	}

	fmt.Printf("Copied %s: %s\n", card.Entry.Name, payload)
}

// runURLs prints the URL of every match, one per line.
func runURLs(query string) {
	cfg := loadConfig()
	s := newSession(cfg, loadCatalog(cfg), query)

	if s.MatchCount() == 0 {
		fmt.Fprintf(os.Stderr, "No emoji found for '%s'\n", query)
		exit(1)
	}
	fmt.Println(s.AllURLs())
}

// runExport handles the export subcommand.
func runExport(outputPath, query string) {
	// Determine output path
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			exit(1)
		}
	}

	cfg := loadConfig()
	s := newSession(cfg, loadCatalog(cfg), query)

	err := exporter.WriteGallery(outputPath, exporter.GalleryParams{
		Entries:  s.Filtered(),
		Resolver: s.Resolver(),
		Size:     s.Size(),
		Format:   s.Format(),
		Query:    query,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		exit(1)
	}

	fmt.Printf("Exported %d emoji to %s\n", s.MatchCount(), outputPath)
}

// mustOpenHistory opens the copy history at its default path or exits.
func mustOpenHistory() *history.Store {
	path, err := history.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting history path: %v\n", err)
		exit(1)
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		exit(1)
		return nil
	}
	atExit(func() { store.Close() })
	return store
}

// runClearHistory deletes every history record.
func runClearHistory() {
	store := mustOpenHistory()
	if err := store.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
		exit(1)
		return
	}
	fmt.Printf("Cleared copy history in %s\n", store.Path())
}

// runRecent lists the most recent copies.
func runRecent() {
	store := mustOpenHistory()

	records, err := store.Recent(recentLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		exit(1)
		return
	}

	if len(records) == 0 {
		fmt.Println("Nothing copied yet")
		return
	}

	for _, r := range records {
		payload := r.Payload
		if r.Kind == history.KindBulk {
			payload = fmt.Sprintf("(%d lines)", strings.Count(payload, "\n")+1)
		}
		fmt.Printf("%s  %-6s  %-28s  %s\n",
			r.CopiedAt.Local().Format("2006-01-02 15:04"), r.Kind, r.Name, payload)
	}
}
