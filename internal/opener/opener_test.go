package opener

import (
	"path/filepath"
	"testing"
)

func TestCommand(t *testing.T) {
	const url = "https://fonts.gstatic.com/s/e/notoemoji/latest/1f600/512.gif"

	tests := []struct {
		goos     string
		wantBin  string
		wantLast string
	}{
		{"darwin", "open", url},
		{"linux", "xdg-open", url},
		{"windows", "rundll32", url},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd := Command(tt.goos, url)
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if got := filepath.Base(cmd.Args[0]); got != tt.wantBin {
				t.Errorf("binary = %q, want %q", got, tt.wantBin)
			}
			if got := cmd.Args[len(cmd.Args)-1]; got != tt.wantLast {
				t.Errorf("last arg = %q, want %q", got, tt.wantLast)
			}
		})
	}
}

func TestCommand_Unsupported(t *testing.T) {
	if cmd := Command("plan9", "https://x"); cmd != nil {
		t.Errorf("expected nil command, got %v", cmd.Args)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_ = r.Open("a")
	_ = r.Open("b")
	if len(r.URLs) != 2 || r.URLs[1] != "b" {
		t.Errorf("URLs = %v", r.URLs)
	}
}

var (
	_ Opener = Browser{}
	_ Opener = (*Recorder)(nil)
)
