// Package opener hands URLs to the desktop's default handler.
package opener

import (
	"errors"
	"os/exec"
	"runtime"
)

var ErrUnsupportedPlatform = errors.New("no URL opener for this platform")

// Opener opens a URL outside the terminal.
type Opener interface {
	Open(url string) error
}

// Browser opens URLs with the platform's default browser.
type Browser struct{}

// Open implements Opener. It returns once the handler has started.
func (Browser) Open(url string) error {
	cmd := Command(runtime.GOOS, url)
	if cmd == nil {
		return ErrUnsupportedPlatform
	}
	return cmd.Start()
}

// Command builds the open command for goos, or nil if there is none.
func Command(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	return nil
}

// Recorder remembers opened URLs instead of opening them.
type Recorder struct {
	URLs []string
}

// Open implements Opener.
func (r *Recorder) Open(url string) error {
	r.URLs = append(r.URLs, url)
	return nil
}
