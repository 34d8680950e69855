package asset

import (
	"strings"

	"github.com/nikbrunner/emj/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ImgTag renders an <img> element for src with the entry name as alt text.
func ImgTag(src, alt string, width Size) string {
	return renderNode(imgNode(src, alt, width))
}

// Markup renders the embeddable markup for e.
//
// In picture mode with an animated variant the result is a <picture> with
// the animated webp as source and the static png as the <img> fallback.
// Otherwise it is a single <img> pointing at src.
func (r Resolver) Markup(e model.Entry, src string, format Format, size Size) string {
	if format != FormatPicture || !e.HasAnimation {
		return ImgTag(src, e.Name, size)
	}

	picture := &html.Node{Type: html.ElementNode, Data: "picture"}
	source := &html.Node{
		Type:     html.ElementNode,
		Data:     "source",
		DataAtom: atom.Source,
		Attr: []html.Attribute{
			{Key: "srcset", Val: src},
			{Key: "type", Val: "image/webp"},
		},
	}
	picture.AppendChild(source)
	picture.AppendChild(imgNode(r.URL(e.Code, size, string(FormatPNG)), e.Name, size))
	return renderNode(picture)
}

func imgNode(src, alt string, width Size) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "img",
		DataAtom: atom.Img,
		Attr: []html.Attribute{
			{Key: "src", Val: src},
			{Key: "alt", Val: alt},
			{Key: "width", Val: width.String()},
		},
	}
}

func renderNode(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}
