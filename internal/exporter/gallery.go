// Package exporter writes a filtered catalog as a standalone HTML gallery.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/nikbrunner/emj/internal/asset"
	"github.com/nikbrunner/emj/internal/model"
)

// GalleryParams holds parameters for ExportGallery.
type GalleryParams struct {
	Entries  []model.Entry
	Resolver asset.Resolver
	Size     asset.Size
	Format   asset.Format
	Query    string // shown in the heading when set
}

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/emoji-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("emoji-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportGallery renders every entry with the same URL and markup the
// browser would copy for it.
func ExportGallery(params GalleryParams) string {
	var b strings.Builder

	title := "Noto Emoji"
	if q := strings.TrimSpace(params.Query); q != "" {
		title = fmt.Sprintf("Noto Emoji: %s", q)
	}

	// Header
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n")
	b.WriteString("body{font-family:sans-serif}\n")
	b.WriteString(".grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(160px,1fr));gap:12px}\n")
	b.WriteString("figure{margin:0;padding:8px;border:1px solid #ccc;text-align:center}\n")
	b.WriteString("figcaption small{display:block;color:#777}\n")
	b.WriteString("</style>\n")
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<p>%d emoji, %s, %dpx</p>\n", len(params.Entries), params.Format, params.Size)
	b.WriteString("<div class=\"grid\">\n")

	for _, e := range params.Entries {
		url, variant := params.Resolver.Resolve(e, params.Format, params.Size)
		b.WriteString("  <figure>\n")
		fmt.Fprintf(&b, "    <a href=\"%s\">%s</a>\n",
			html.EscapeString(url),
			params.Resolver.Markup(e, url, params.Format, params.Size),
		)
		fmt.Fprintf(&b, "    <figcaption>%s<small>%s · %s</small></figcaption>\n",
			html.EscapeString(e.Name),
			html.EscapeString(e.Code),
			variant.Badge(),
		)
		b.WriteString("  </figure>\n")
	}

	// Footer
	b.WriteString("</div>\n</body>\n</html>\n")

	return b.String()
}

// WriteGallery renders the gallery to path, creating parent directories.
func WriteGallery(path string, params GalleryParams) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(ExportGallery(params)), 0644)
}
