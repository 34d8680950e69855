package asset

import (
	"errors"
	"testing"

	"github.com/nikbrunner/emj/internal/model"
)

func animated(code, name string) model.Entry {
	return model.NewEntry(model.NewEntryParams{Code: code, HasAnimation: true, Name: name})
}

func static(code, name string) model.Entry {
	return model.NewEntry(model.NewEntryParams{Code: code, HasAnimation: false, Name: name})
}

func TestResolver_URL(t *testing.T) {
	r := NewResolver("", "")
	got := r.URL("1f600", 128, "png")
	want := "https://fonts.gstatic.com/s/e/notoemoji/latest/1f600/128.png"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestNewResolver_TrimsTrailingSlash(t *testing.T) {
	r := NewResolver("https://cdn.example.com/emoji/", "15.0")
	got := r.URL("2764", 64, "png")
	if got != "https://cdn.example.com/emoji/15.0/2764/64.png" {
		t.Errorf("URL() = %q", got)
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver("https://e.test", "v1")

	tests := []struct {
		name        string
		entry       model.Entry
		format      Format
		size        Size
		wantURL     string
		wantVariant Variant
	}{
		{"png is always static", animated("1f600", "Grinning Face"), FormatPNG, 128, "https://e.test/v1/1f600/128.png", Static},
		{"webp animated", animated("1f600", "Grinning Face"), FormatWebP, 128, "https://e.test/v1/1f600/512.webp", Animated},
		{"gif animated", animated("1f600", "Grinning Face"), FormatGIF, 32, "https://e.test/v1/1f600/512.gif", Animated},
		{"picture prefers webp", animated("1f600", "Grinning Face"), FormatPicture, 64, "https://e.test/v1/1f600/512.webp", Animated},
		{"webp without animation", static("1f600", "Grinning Face"), FormatWebP, 64, "https://e.test/v1/1f600/64.png", Static},
		{"picture without animation", static("1f600", "Grinning Face"), FormatPicture, 512, "https://e.test/v1/1f600/512.png", Static},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, variant := r.Resolve(tt.entry, tt.format, tt.size)
			if url != tt.wantURL {
				t.Errorf("url = %q, want %q", url, tt.wantURL)
			}
			if variant != tt.wantVariant {
				t.Errorf("variant = %v, want %v", variant, tt.wantVariant)
			}
		})
	}
}

func TestResolver_Fallback(t *testing.T) {
	r := NewResolver("https://e.test", "v1")
	if got := r.Fallback(animated("1f600", "Grinning Face")); got != "https://e.test/v1/1f600/512.png" {
		t.Errorf("Fallback() = %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("WebP")
	if err != nil || f != FormatWebP {
		t.Fatalf("ParseFormat(WebP) = %v, %v", f, err)
	}
	if _, err := ParseFormat("jpeg"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestSizeAndFormatNext_Wrap(t *testing.T) {
	if got := Size(512).Next(); got != 32 {
		t.Errorf("Size(512).Next() = %d, want 32", got)
	}
	if got := Size(32).Next(); got != 64 {
		t.Errorf("Size(32).Next() = %d, want 64", got)
	}
	if got := FormatPicture.Next(); got != FormatPNG {
		t.Errorf("FormatPicture.Next() = %q, want png", got)
	}
	if got := Format("bogus").Next(); got != FormatPNG {
		t.Errorf("unknown format should restart the cycle, got %q", got)
	}
}

func TestVariant_Badge(t *testing.T) {
	if Animated.Badge() != "Animated" || Static.Badge() != "Static" {
		t.Errorf("unexpected badges: %q %q", Animated.Badge(), Static.Badge())
	}
}

func TestImgTag(t *testing.T) {
	got := ImgTag("https://e.test/1f600/128.png", "Grinning Face", 128)
	want := `<img src="https://e.test/1f600/128.png" alt="Grinning Face" width="128"/>`
	if got != want {
		t.Errorf("ImgTag() = %q, want %q", got, want)
	}
}

func TestImgTag_EscapesAlt(t *testing.T) {
	got := ImgTag("u", `A "quoted" <name>`, 32)
	want := `<img src="u" alt="A &#34;quoted&#34; &lt;name&gt;" width="32"/>`
	if got != want {
		t.Errorf("ImgTag() = %q, want %q", got, want)
	}
}

func TestResolver_Markup_Picture(t *testing.T) {
	r := NewResolver("https://e.test", "v1")
	e := animated("1f600", "Grinning Face")
	src, _ := r.Resolve(e, FormatPicture, 128)

	got := r.Markup(e, src, FormatPicture, 128)
	want := `<picture><source srcset="https://e.test/v1/1f600/512.webp" type="image/webp"/>` +
		`<img src="https://e.test/v1/1f600/128.png" alt="Grinning Face" width="128"/></picture>`
	if got != want {
		t.Errorf("Markup() =\n%s\nwant\n%s", got, want)
	}
}

func TestResolver_Markup_PlainImg(t *testing.T) {
	r := NewResolver("https://e.test", "v1")
	e := animated("1f600", "Grinning Face")
	src, _ := r.Resolve(e, FormatGIF, 64)

	got := r.Markup(e, src, FormatGIF, 64)
	want := `<img src="https://e.test/v1/1f600/512.gif" alt="Grinning Face" width="64"/>`
	if got != want {
		t.Errorf("Markup() = %q, want %q", got, want)
	}
}
