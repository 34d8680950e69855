// Package clip writes text to the system clipboard.
package clip

import "github.com/atotto/clipboard"

// Writer accepts clipboard text.
type Writer interface {
	WriteAll(text string) error
}

// System is the OS clipboard.
type System struct{}

// WriteAll implements Writer.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a clipboard utility was found.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory is an in-process clipboard for tests and headless use.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

// WriteAll implements Writer.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}
