package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nikbrunner/emj/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const animationFeed = `{
  "host": "fonts.gstatic.com",
  "icons": [
    {"name": "Grinning face", "codepoint": "1f600", "tags": [":grinning:"]},
    {"name": "no codepoint"},
    {"codepoint": "2764_FE0F"},
    {"codepoint": "1F469_200D_1F4BB"},
    {"codepoint": "1f600"},
    {"codepoint": "1fae8"}
  ]
}`

const nameFeed = `[
  {"unified": "1F600", "name": "GRINNING FACE", "short_name": "grinning"},
  {"unified": "2764", "name": "HEAVY BLACK HEART", "short_name": "heart"},
  {"unified": "1F469-200D-1F4BB", "name": null, "short_name": "technologist"},
  {"name": "MISSING CODE"},
  {"unified": "1F60A"}
]`

func TestCanonicalCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1F600", "1f600"},
		{" 1f600 ", "1f600"},
		{"1F469-200D-1F4BB", "1f469_200d_1f4bb"},
		{"1f469_200d_1f4bb", "1f469_200d_1f4bb"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, CanonicalCode(tt.in), tt.want)
	}
}

func TestParseAnimationFeed(t *testing.T) {
	codes, err := ParseAnimationFeed([]byte(animationFeed))
	assert.NilError(t, err)
	assert.DeepEqual(t, codes, []string{"1f600", "2764_fe0f", "1f469_200d_1f4bb", "1fae8"})
}

func TestParseAnimationFeed_MissingIcons(t *testing.T) {
	codes, err := ParseAnimationFeed([]byte(`{"host": "x"}`))
	assert.NilError(t, err)
	assert.Check(t, is.Len(codes, 0))
}

func TestParseAnimationFeed_Malformed(t *testing.T) {
	for _, data := range []string{`{"icons": [`, `not json`, `{"icons": 5}`} {
		_, err := ParseAnimationFeed([]byte(data))
		assert.Check(t, errors.Is(err, ErrFeedMalformed), "input %q: %v", data, err)
	}
}

func TestParseNameFeed(t *testing.T) {
	names, err := ParseNameFeed([]byte(nameFeed))
	assert.NilError(t, err)

	assert.DeepEqual(t, names, map[string]string{
		"1f600":            "Grinning Face",
		"2764":             "Heavy Black Heart",
		"1f469_200d_1f4bb": "Technologist",
		"1f60a":            "Emoji_u1f60a",
	})
}

func TestParseNameFeed_NotArray(t *testing.T) {
	_, err := ParseNameFeed([]byte(`{"unified": "1F600"}`))
	assert.Check(t, errors.Is(err, ErrFeedMalformed))
}

func TestBuild_AnimationIndexIsAuthoritative(t *testing.T) {
	animated := []string{"1f600", "2764_fe0f", "1fae8"}
	names := map[string]string{
		"1f600": "Grinning Face",
		"2764":  "Heavy Black Heart",
		"1f60a": "Smiling Face With Smiling Eyes", // not animated, never in the catalog
	}

	entries := Build(animated, names)

	assert.Assert(t, is.Len(entries, 3))
	want := []struct {
		code string
		name string
	}{
		{"1f600", "Grinning Face"},
		{"2764_fe0f", "Heavy Black Heart"}, // found without the variation selector
		{"1fae8", "Emoji_u1fae8"},
	}
	for i, w := range want {
		assert.Equal(t, entries[i].Code, w.code)
		assert.Equal(t, entries[i].Name, w.name)
		assert.Check(t, entries[i].HasAnimation)
		assert.Equal(t, entries[i].NormalizedName, model.NewEntry(model.NewEntryParams{Name: w.name}).NormalizedName)
	}
}

func TestBuild_AddsVariationSelectorOnLookup(t *testing.T) {
	entries := Build([]string{"263a"}, map[string]string{"263a_fe0f": "White Smiling Face"})
	assert.Equal(t, entries[0].Name, "White Smiling Face")
}

func feedServer(t *testing.T, animation, names http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api.json", animation)
	mux.HandleFunc("/emoji.json", names)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func serve(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestFetcher_Load(t *testing.T) {
	srv := feedServer(t, serve(animationFeed), serve(nameFeed))

	f := NewFetcher(FetcherParams{
		Client:       srv.Client(),
		AnimationURL: srv.URL + "/api.json",
		NamesURL:     srv.URL + "/emoji.json",
	})

	catalog, err := f.Load(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, catalog.Len(), 4)

	names := make(map[string]string)
	for _, e := range catalog.Entries() {
		names[e.Code] = e.Name
	}
	assert.Equal(t, names["1f600"], "Grinning Face")
	assert.Equal(t, names["1f469_200d_1f4bb"], "Technologist")
}

func TestFetcher_Load_FetchesBothFeeds(t *testing.T) {
	var hits atomic.Int32
	count := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			serve(body)(w, r)
		}
	}
	srv := feedServer(t, count(animationFeed), count(nameFeed))

	f := NewFetcher(FetcherParams{
		Client:       srv.Client(),
		AnimationURL: srv.URL + "/api.json",
		NamesURL:     srv.URL + "/emoji.json",
	})
	_, err := f.Load(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, hits.Load(), int32(2))
}

func TestFetcher_Load_FailsWhenEitherFeedFails(t *testing.T) {
	failing := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}

	tests := []struct {
		name      string
		animation http.HandlerFunc
		names     http.HandlerFunc
		wantErr   error
	}{
		{"animation feed down", failing, serve(nameFeed), ErrFeedUnavailable},
		{"name feed down", serve(animationFeed), failing, ErrFeedUnavailable},
		{"animation feed garbage", serve("{"), serve(nameFeed), ErrFeedMalformed},
		{"name feed garbage", serve(animationFeed), serve(`{"not": "an array"}`), ErrFeedMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := feedServer(t, tt.animation, tt.names)
			f := NewFetcher(FetcherParams{
				Client:       srv.Client(),
				AnimationURL: srv.URL + "/api.json",
				NamesURL:     srv.URL + "/emoji.json",
			})

			catalog, err := f.Load(context.Background())
			assert.Check(t, is.Nil(catalog))
			assert.Check(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewFetcher_Defaults(t *testing.T) {
	f := NewFetcher(FetcherParams{})
	assert.Equal(t, f.animationURL, DefaultAnimationURL)
	assert.Equal(t, f.namesURL, DefaultNamesURL)
	assert.Assert(t, f.client != nil)
}
