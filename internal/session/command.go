package session

import "github.com/nikbrunner/emj/internal/asset"

// Command is a discrete state change handled by Dispatch.
type Command interface {
	command()
}

// QueryChanged replaces the query and recomputes the filtered list.
type QueryChanged struct {
	Query string
}

// SizeChanged selects a new size and rebuilds the cards.
type SizeChanged struct {
	Size asset.Size
}

// FormatChanged selects a new format and rebuilds the cards.
type FormatChanged struct {
	Format asset.Format
}

// ViewportNearEnd reports the position of the viewport so the next batch can
// be loaded when it approaches the last card.
type ViewportNearEnd struct {
	Position int
}

// Rebuild restarts the renderer over the unchanged filtered list.
type Rebuild struct{}

func (QueryChanged) command()    {}
func (SizeChanged) command()     {}
func (FormatChanged) command()   {}
func (ViewportNearEnd) command() {}
func (Rebuild) command()         {}

// Result describes what a Dispatch changed.
type Result struct {
	// Reset is true when the card list was replaced.
	Reset bool
	// Added is the number of cards materialized by the command.
	Added int
}

// Dispatch applies cmd. Invalid sizes and formats are ignored.
func (s *Session) Dispatch(cmd Command) Result {
	before := s.renderer.Cursor()

	switch c := cmd.(type) {
	case QueryChanged:
		s.query = c.Query
		s.applyFilter()
		return Result{Reset: true, Added: s.renderer.Cursor()}

	case SizeChanged:
		if !c.Size.Valid() {
			return Result{}
		}
		s.size = c.Size
		s.rebuild()
		return Result{Reset: true, Added: s.renderer.Cursor()}

	case FormatChanged:
		if !c.Format.Valid() {
			return Result{}
		}
		s.format = c.Format
		s.rebuild()
		return Result{Reset: true, Added: s.renderer.Cursor()}

	case Rebuild:
		s.rebuild()
		return Result{Reset: true, Added: s.renderer.Cursor()}

	case ViewportNearEnd:
		if !s.renderer.NearEnd(c.Position, s.margin) {
			return Result{}
		}
		s.renderer.LoadNextBatch()
		return Result{Added: s.renderer.Cursor() - before}
	}

	return Result{}
}
