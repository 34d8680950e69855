// Package asset resolves Noto emoji asset locations and embeddable markup.
package asset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nikbrunner/emj/internal/model"
)

const (
	DefaultBaseURL = "https://fonts.gstatic.com/s/e/notoemoji"
	DefaultVersion = "latest"

	// AnimatedSize is the only size animated variants are published at.
	AnimatedSize Size = 512
	// FallbackSize is the static size used when an asset fails to load.
	FallbackSize Size = 512

	DefaultSize   Size   = 128
	DefaultFormat Format = FormatPNG
)

var ErrInvalidFormat = errors.New("invalid format")

// Size is an asset edge length in pixels.
type Size int

// Sizes lists the selectable sizes in cycle order.
var Sizes = []Size{32, 64, 128, 512}

// Valid returns true if s is one of Sizes.
func (s Size) Valid() bool {
	for _, v := range Sizes {
		if v == s {
			return true
		}
	}
	return false
}

// Next returns the size after s in Sizes, wrapping around.
func (s Size) Next() Size {
	for i, v := range Sizes {
		if v == s {
			return Sizes[(i+1)%len(Sizes)]
		}
	}
	return Sizes[0]
}

func (s Size) String() string {
	return strconv.Itoa(int(s))
}

// Format is the user-chosen output format.
type Format string

const (
	FormatPNG     Format = "png"
	FormatWebP    Format = "webp"
	FormatGIF     Format = "gif"
	FormatPicture Format = "picture"
)

// Formats lists the selectable formats in cycle order.
var Formats = []Format{FormatPNG, FormatWebP, FormatGIF, FormatPicture}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return f, nil
}

// Valid returns true if f is one of Formats.
func (f Format) Valid() bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}

// Next returns the format after f in Formats, wrapping around.
func (f Format) Next() Format {
	for i, v := range Formats {
		if v == f {
			return Formats[(i+1)%len(Formats)]
		}
	}
	return Formats[0]
}

// Variant tells whether a resolved asset is the animated or static one.
type Variant int

const (
	Static Variant = iota
	Animated
)

// Badge returns the label shown next to an asset.
func (v Variant) Badge() string {
	if v == Animated {
		return "Animated"
	}
	return "Static"
}

// Resolver builds asset URLs against a base and version.
type Resolver struct {
	BaseURL string
	Version string
}

// NewResolver creates a Resolver, using defaults for empty fields.
func NewResolver(baseURL, version string) Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if version == "" {
		version = DefaultVersion
	}
	return Resolver{BaseURL: strings.TrimRight(baseURL, "/"), Version: version}
}

// URL returns the location of code at size with extension ext.
func (r Resolver) URL(code string, size Size, ext string) string {
	return fmt.Sprintf("%s/%s/%s/%d.%s", r.BaseURL, r.Version, code, size, ext)
}

// Resolve picks the asset for e under the chosen format and size.
//
// png is always static at size. webp and gif use the animated 512 variant
// when one exists; picture prefers the animated webp. Everything else falls
// back to the static png at size.
func (r Resolver) Resolve(e model.Entry, format Format, size Size) (string, Variant) {
	if e.HasAnimation {
		switch format {
		case FormatWebP, FormatGIF:
			return r.URL(e.Code, AnimatedSize, string(format)), Animated
		case FormatPicture:
			return r.URL(e.Code, AnimatedSize, string(FormatWebP)), Animated
		}
	}
	return r.URL(e.Code, size, string(FormatPNG)), Static
}

// Fallback returns the known-good static asset used when Resolve's asset fails.
func (r Resolver) Fallback(e model.Entry) string {
	return r.URL(e.Code, FallbackSize, string(FormatPNG))
}
