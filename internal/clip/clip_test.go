package clip

import (
	"errors"
	"testing"
)

func TestMemory_WriteAll(t *testing.T) {
	var m Memory

	if err := m.WriteAll("https://fonts.gstatic.com/s/e/notoemoji/latest/1f600/512.webp"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.WriteAll("second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Text != "second" {
		t.Errorf("Text = %q, want %q", m.Text, "second")
	}
	if m.Writes != 2 {
		t.Errorf("Writes = %d, want 2", m.Writes)
	}
}

func TestMemory_Error(t *testing.T) {
	boom := errors.New("no clipboard")
	m := Memory{Err: boom}

	if err := m.WriteAll("x"); !errors.Is(err, boom) {
		t.Errorf("expected %v, got %v", boom, err)
	}
	if m.Writes != 0 || m.Text != "" {
		t.Errorf("failed write should not be recorded: %+v", m)
	}
}

var (
	_ Writer = System{}
	_ Writer = (*Memory)(nil)
)
