// Package probe checks whether asset URLs are actually served.
package probe

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	DefaultConcurrency = 8
	DefaultTimeout     = 5 * time.Second
)

// Status represents the availability of an asset.
type Status int

const (
	Available   Status = iota // 2xx or 3xx response
	Missing                   // 404 or 410 Gone
	Unreachable               // timeout, DNS failure, server error, etc.
)

func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case Missing:
		return "missing"
	default:
		return "unreachable"
	}
}

// Target is one asset to check. Index is the caller's position for it.
type Target struct {
	Index int
	URL   string
}

// Result holds the check result for a single target.
type Result struct {
	Target     Target
	Status     Status
	StatusCode int    // HTTP status code (0 if connection failed)
	Error      string // Error message for unreachable assets
}

// Failed reports whether the asset should be replaced by its fallback.
func (r Result) Failed() bool {
	return r.Status != Available
}

// Prober checks asset URLs with a bounded worker pool.
type Prober struct {
	client      *http.Client
	concurrency int
}

// Params holds parameters for creating a new Prober.
type Params struct {
	Client      *http.Client  // optional, built from Timeout if nil
	Concurrency int           // optional, defaults to DefaultConcurrency
	Timeout     time.Duration // optional, defaults to DefaultTimeout
}

// New creates a Prober.
func New(params Params) *Prober {
	concurrency := params.Concurrency
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}
	}

	return &Prober{client: client, concurrency: concurrency}
}

// Check checks all targets concurrently. Results are in target order.
// Targets not yet checked when ctx is cancelled are reported unreachable.
func (p *Prober) Check(ctx context.Context, targets []Target) []Result {
	if len(targets) == 0 {
		return nil
	}

	results := make([]Result, len(targets))
	jobs := make(chan int, len(targets))
	var wg sync.WaitGroup

	for w := 0; w < min(p.concurrency, len(targets)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = p.check(ctx, targets[idx])
			}
		}()
	}

	for i := range targets {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// Failures returns only the results whose assets need a fallback.
func Failures(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Failed() {
			out = append(out, r)
		}
	}
	return out
}

func (p *Prober) check(ctx context.Context, target Target) Result {
	result := Result{Target: target}

	// HEAD first, GET for servers that reject it
	resp, err := p.do(ctx, http.MethodHead, target.URL)
	if err == nil && resp.StatusCode == http.StatusMethodNotAllowed {
		resp.Body.Close()
		resp, err = p.do(ctx, http.MethodGet, target.URL)
	}
	if err != nil {
		result.Status = Unreachable
		result.Error = normalizeError(err.Error())
		return result
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		result.Status = Available
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		result.Status = Missing
	default:
		result.Status = Unreachable
		result.Error = http.StatusText(resp.StatusCode)
	}

	return result
}

func (p *Prober) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return p.client.Do(req)
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "context canceled"):
		return "Cancelled"
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"), strings.Contains(lower, "tls:"):
		return "TLS error"
	default:
		return errStr
	}
}
