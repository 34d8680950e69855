package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nikbrunner/emj/internal/logging"
	"github.com/nikbrunner/emj/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAnimationURL = "https://googlefonts.github.io/noto-emoji-animation/data/api.json"
	DefaultNamesURL     = "https://cdn.jsdelivr.net/gh/iamcal/emoji-data@master/emoji.json"

	maxFeedSize = 64 << 20
)

// Fetcher downloads both feeds and builds the catalog.
type Fetcher struct {
	client       *http.Client
	animationURL string
	namesURL     string
}

// FetcherParams holds parameters for creating a Fetcher.
type FetcherParams struct {
	Client       *http.Client // optional, a 30s-timeout client if nil
	AnimationURL string       // optional, DefaultAnimationURL if empty
	NamesURL     string       // optional, DefaultNamesURL if empty
}

// NewFetcher creates a Fetcher with the given parameters.
func NewFetcher(params FetcherParams) *Fetcher {
	f := &Fetcher{
		client:       params.Client,
		animationURL: params.AnimationURL,
		namesURL:     params.NamesURL,
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: 30 * time.Second}
	}
	if f.animationURL == "" {
		f.animationURL = DefaultAnimationURL
	}
	if f.namesURL == "" {
		f.namesURL = DefaultNamesURL
	}
	return f
}

// Load fetches both feeds concurrently and builds the catalog once both are
// in. A failure of either feed fails the whole load; there is no partial
// catalog and no retry.
func (f *Fetcher) Load(ctx context.Context) (*model.Catalog, error) {
	var (
		animated []string
		names    map[string]string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := f.get(ctx, f.animationURL)
		if err != nil {
			return err
		}
		animated, err = ParseAnimationFeed(data)
		return err
	})
	g.Go(func() error {
		data, err := f.get(ctx, f.namesURL)
		if err != nil {
			return err
		}
		names, err = ParseNameFeed(data)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.Logger().Error("catalog load failed", "err", err)
		return nil, err
	}

	catalog := model.NewCatalog(Build(animated, names))
	logging.Logger().Info("catalog loaded",
		"entries", catalog.Len(), "animated", len(animated), "names", len(names))
	return catalog, nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFeedUnavailable, url, err)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFeedUnavailable, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFeedUnavailable, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", ErrFeedUnavailable, url, err)
	}

	logging.Logger().Debug("feed fetched", "url", url, "bytes", len(data), "took", time.Since(start))
	return data, nil
}
