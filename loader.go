package lineage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// DefaultShowDeceased is the visibility used when the caller does not choose one.
const DefaultShowDeceased = true

// maxTreeBytes caps the response body read for one tree.
const maxTreeBytes = 32 << 20

// StatusError reports a non-2xx response from the tree API.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lineage: HTTP error! status: %d (%s)", e.Code, e.URL)
}

// LoaderConfig identifies the tree to fetch.
type LoaderConfig struct {
	// BaseURL is the backend origin, e.g. "http://localhost:8000".
	BaseURL  string
	FamilyID string
	RootID   string
	// Timeout bounds a single request. Zero leaves it to the transport.
	Timeout time.Duration
	// Client is used for requests; nil means http.DefaultClient.
	Client *http.Client
}

// FetchResult is delivered on Loader.Results once a fetch settles.
type FetchResult struct {
	Generation   uint64
	ShowDeceased bool
	Hierarchy    *Hierarchy
	Err          error
}

// Loader fetches hierarchies from the tree API. Fetch is fire-and-forget:
// results arrive on the Results channel and are consumed on the game loop.
type Loader struct {
	cfg     LoaderConfig
	client  *http.Client
	logger  *slog.Logger
	gen     atomic.Uint64
	results chan FetchResult
}

// NewLoader creates a loader for cfg.
func NewLoader(cfg LoaderConfig, logger *slog.Logger) *Loader {
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		cfg:     cfg,
		client:  client,
		logger:  logger,
		results: make(chan FetchResult, 8),
	}
}

// URL builds the request URL for the configured family and root.
func (l *Loader) URL(showDeceased bool) string {
	base := strings.TrimRight(l.cfg.BaseURL, "/")
	return fmt.Sprintf("%s/families/%s/tree/api/%s/?show_deceased=%s",
		base,
		url.PathEscape(l.cfg.FamilyID),
		url.PathEscape(l.cfg.RootID),
		strconv.FormatBool(showDeceased))
}

// Results returns the channel fetch outcomes are delivered on.
func (l *Loader) Results() <-chan FetchResult {
	return l.results
}

// Latest returns the generation of the most recently issued fetch.
func (l *Loader) Latest() uint64 {
	return l.gen.Load()
}

// FetchDefault is Fetch with DefaultShowDeceased.
func (l *Loader) FetchDefault(ctx context.Context) uint64 {
	return l.Fetch(ctx, DefaultShowDeceased)
}

// Fetch issues one request in the background and returns its generation.
// The outcome is sent on Results unless ctx is done first.
func (l *Loader) Fetch(ctx context.Context, showDeceased bool) uint64 {
	gen := l.gen.Add(1)
	go func() {
		h, err := l.Load(ctx, showDeceased)
		res := FetchResult{Generation: gen, ShowDeceased: showDeceased, Hierarchy: h, Err: err}
		select {
		case l.results <- res:
		case <-ctx.Done():
			l.logger.Debug("fetch result dropped", slog.Uint64("generation", gen), slog.Any("error", ctx.Err()))
		}
	}()
	return gen
}

// Load performs one synchronous request and decodes the response.
func (l *Loader) Load(ctx context.Context, showDeceased bool) (*Hierarchy, error) {
	if l.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.Timeout)
		defer cancel()
	}

	u := l.URL(showDeceased)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("lineage: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lineage: fetch tree: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{Code: resp.StatusCode, URL: u}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTreeBytes))
	if err != nil {
		return nil, fmt.Errorf("lineage: read tree: %w", err)
	}
	h, err := ParseHierarchy(body)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("tree fetched",
		slog.String("url", u),
		slog.Int("people", h.Len()),
		slog.Duration("elapsed", time.Since(start)))
	return h, nil
}
