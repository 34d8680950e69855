package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestView_Browse(t *testing.T) {
	f := newFixture(testEntries(), testBase)

	view := ansi.Strip(f.app.View())

	assert.Check(t, is.Contains(view, "emj"))
	assert.Check(t, is.Contains(view, "4 of 4"))
	assert.Check(t, is.Contains(view, "128px · png"))
	assert.Check(t, is.Contains(view, "Grinning Face"))
	assert.Check(t, is.Contains(view, "Red Heart"))
	assert.Check(t, is.Contains(view, "emoji_u1f600"))
	assert.Check(t, is.Contains(view, "4/4 loaded"))
	assert.Check(t, is.Contains(view, "y:url"))
}

func TestView_FitsTerminal(t *testing.T) {
	f := newFixture(manyEntries(150), testBase)

	view := f.app.View()

	assert.Equal(t, len(strings.Split(view, "\n")), 24)
}

func TestView_NoMatches(t *testing.T) {
	f := newFixture(testEntries(), testBase)
	f.press("/", "z", "z", "z", "enter")

	view := ansi.Strip(f.app.View())

	assert.Check(t, is.Contains(view, "No matches"))
	assert.Check(t, is.Contains(view, "0 of 4"))
}

func TestView_StatusFlash(t *testing.T) {
	f := newFixture(testEntries(), testBase)
	f.press("y")

	view := ansi.Strip(f.app.View())

	assert.Check(t, is.Contains(view, "Copied"))
}

func TestView_FallbackBadge(t *testing.T) {
	f := newFixture(testEntries(), testBase)
	f.press("f")
	f.app.Session().ApplyFallback(f.app.Session().Epoch(), 0)

	view := ansi.Strip(f.app.View())

	assert.Check(t, is.Contains(view, "Static (fallback)"))
}

func TestView_SearchHints(t *testing.T) {
	f := newFixture(testEntries(), testBase)
	f.press("/")

	view := ansi.Strip(f.app.View())

	assert.Check(t, is.Contains(view, "Enter:apply"))
}
