// Package session owns the browsing state: the loaded catalog, the current
// query, the selected size and format, the filtered list and the renderer
// that materializes it into cards.
//
// All state changes go through Dispatch. Callers only ever receive copies.
package session

import (
	"strings"

	"github.com/nikbrunner/emj/internal/asset"
	"github.com/nikbrunner/emj/internal/model"
	"github.com/nikbrunner/emj/internal/render"
	"github.com/nikbrunner/emj/internal/search"
)

// DefaultPrefetchMargin is how many rows before the last card the next batch
// is requested.
const DefaultPrefetchMargin = 20

// Card is one materialized entry.
type Card struct {
	Entry    model.Entry
	URL      string
	Variant  asset.Variant
	Fallback bool
	Markup   string
}

// Session is the single owner of browsing state.
type Session struct {
	catalog  *model.Catalog
	resolver asset.Resolver
	margin   int

	query    string
	size     asset.Size
	format   asset.Format
	filtered []model.Entry
	renderer *render.Renderer[Card]
}

// Params holds parameters for creating a new Session.
type Params struct {
	Catalog        *model.Catalog
	Resolver       asset.Resolver
	Size           asset.Size   // optional, defaults to 128
	Format         asset.Format // optional, defaults to png
	BatchSize      int          // optional, defaults to render.DefaultBatchSize
	PrefetchMargin int          // optional, defaults to DefaultPrefetchMargin
	Query          string
}

// New creates a Session and materializes the first batch.
func New(params Params) *Session {
	size := params.Size
	if !size.Valid() {
		size = asset.DefaultSize
	}
	format := params.Format
	if !format.Valid() {
		format = asset.DefaultFormat
	}
	margin := params.PrefetchMargin
	if margin <= 0 {
		margin = DefaultPrefetchMargin
	}
	catalog := params.Catalog
	if catalog == nil {
		catalog = model.NewCatalog(nil)
	}

	s := &Session{
		catalog:  catalog,
		resolver: params.Resolver,
		margin:   margin,
		query:    params.Query,
		size:     size,
		format:   format,
	}
	s.renderer = render.New(params.BatchSize, s.buildCard)
	s.applyFilter()
	return s
}

func (s *Session) buildCard(_ int, e model.Entry) Card {
	url, variant := s.resolver.Resolve(e, s.format, s.size)
	return Card{
		Entry:   e,
		URL:     url,
		Variant: variant,
		Markup:  s.resolver.Markup(e, url, s.format, s.size),
	}
}

// applyFilter recomputes the filtered list from scratch and rebuilds.
func (s *Session) applyFilter() {
	s.filtered = search.Filter(s.catalog.Entries(), s.query)
	s.rebuild()
}

// rebuild restarts the renderer over the current filtered list.
func (s *Session) rebuild() {
	s.renderer.Reset(s.filtered)
	s.renderer.LoadNextBatch()
}

// Query returns the current query text.
func (s *Session) Query() string {
	return s.query
}

// Size returns the selected size.
func (s *Session) Size() asset.Size {
	return s.size
}

// Format returns the selected format.
func (s *Session) Format() asset.Format {
	return s.format
}

// Resolver returns the asset resolver.
func (s *Session) Resolver() asset.Resolver {
	return s.resolver
}

// Total returns the size of the catalog.
func (s *Session) Total() int {
	return s.catalog.Len()
}

// Filtered returns a copy of the filtered list.
func (s *Session) Filtered() []model.Entry {
	out := make([]model.Entry, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// MatchCount returns the length of the filtered list.
func (s *Session) MatchCount() int {
	return len(s.filtered)
}

// Cards returns a copy of the materialized cards.
func (s *Session) Cards() []Card {
	return s.renderer.Elements()
}

// Card returns the materialized card at i.
func (s *Session) Card(i int) (Card, bool) {
	return s.renderer.Element(i)
}

// Rendered returns the number of materialized cards.
func (s *Session) Rendered() int {
	return s.renderer.Cursor()
}

// Exhausted reports whether every filtered entry has a card.
func (s *Session) Exhausted() bool {
	return s.renderer.State() == render.Exhausted || s.renderer.Cursor() == len(s.filtered)
}

// Epoch identifies the current card list. It changes whenever the cards are
// rebuilt, so results computed against an older list can be recognized.
func (s *Session) Epoch() uint64 {
	return s.renderer.Epoch()
}

// ApplyFallback switches card i of epoch to the static fallback asset.
// It does nothing for a stale epoch or a card already on fallback, and
// reports whether the card changed.
func (s *Session) ApplyFallback(epoch uint64, i int) bool {
	if epoch != s.renderer.Epoch() {
		return false
	}

	changed := false
	s.renderer.Update(i, func(c *Card) {
		fallback := s.resolver.Fallback(c.Entry)
		if c.Fallback || c.URL == fallback {
			return
		}
		c.URL = fallback
		c.Variant = asset.Static
		c.Fallback = true
		c.Markup = asset.ImgTag(fallback, c.Entry.Name, s.size)
		changed = true
	})
	return changed
}

// AllURLs returns the resolved URL of every filtered entry, one per line.
// Entries without a card yet are included.
func (s *Session) AllURLs() string {
	lines := make([]string, len(s.filtered))
	for i, e := range s.filtered {
		lines[i], _ = s.resolver.Resolve(e, s.format, s.size)
	}
	return strings.Join(lines, "\n")
}

// AllMarkup returns the markup of every filtered entry, one per line.
func (s *Session) AllMarkup() string {
	lines := make([]string, len(s.filtered))
	for i, e := range s.filtered {
		url, _ := s.resolver.Resolve(e, s.format, s.size)
		lines[i] = s.resolver.Markup(e, url, s.format, s.size)
	}
	return strings.Join(lines, "\n")
}
