package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/dmitrijs2005/laqtaha/internal/logging"
)

// Document paths relative to the data base URL.
const (
	DestinationsPath = "data/destinations.json"
	GuidesPath       = "data/guides.json"
	GovernoratesPath = "api/governorates"
)

// Retry and cache defaults.
const (
	DefaultMaxRetries      = 3
	DefaultInitialInterval = time.Second
	DefaultMaxInterval     = 30 * time.Second
	DefaultStaleTime       = 5 * time.Minute
)

var ErrNotFound = errors.New("not found")

type cacheEntry struct {
	body    []byte
	fetched time.Time
}

// Fetcher loads catalog documents. It is safe for concurrent use.
type Fetcher struct {
	baseURL         string
	http            *http.Client
	log             logging.Logger
	staleTime       time.Duration
	maxRetries      uint
	initialInterval time.Duration
	maxInterval     time.Duration
	now             func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type Option func(*Fetcher)

func WithHTTPClient(c *http.Client) Option { return func(f *Fetcher) { f.http = c } }
func WithLogger(l logging.Logger) Option   { return func(f *Fetcher) { f.log = l } }
func WithStaleTime(d time.Duration) Option { return func(f *Fetcher) { f.staleTime = d } }
func WithMaxRetries(n uint) Option         { return func(f *Fetcher) { f.maxRetries = n } }

// WithBackOff sets the first retry delay and its cap. Delays double in
// between.
func WithBackOff(initial, max time.Duration) Option {
	return func(f *Fetcher) {
		f.initialInterval, f.maxInterval = initial, max
	}
}

func NewFetcher(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:         strings.TrimRight(baseURL, "/"),
		http:            &http.Client{Timeout: 10 * time.Second},
		log:             logging.NopLogger{},
		staleTime:       DefaultStaleTime,
		maxRetries:      DefaultMaxRetries,
		initialInterval: DefaultInitialInterval,
		maxInterval:     DefaultMaxInterval,
		now:             time.Now,
		cache:           make(map[string]cacheEntry),
	}
	for _, o := range opts {
		o(f)
	}
	f.log = f.log.With("component", "catalog")
	return f
}

// Destinations returns the destination cards, or the built-in list when the
// document is unavailable or empty.
func (f *Fetcher) Destinations(ctx context.Context) []DestinationCard {
	var docs []Destination
	if err := f.getJSON(ctx, DestinationsPath, &docs); err != nil {
		f.log.Warn(ctx, "destinations unavailable, using built-in list", "error", err)
		return FallbackDestinations()
	}
	if len(docs) == 0 {
		return FallbackDestinations()
	}

	cards := make([]DestinationCard, 0, len(docs))
	for _, d := range docs {
		cards = append(cards, ToCard(d))
	}
	return cards
}

// DestinationBySlug returns the full record whose name slugs to slug. A
// document that cannot be loaded counts as not found.
func (f *Fetcher) DestinationBySlug(ctx context.Context, slug string) (*Destination, error) {
	var docs []Destination
	if err := f.getJSON(ctx, DestinationsPath, &docs); err != nil {
		return nil, fmt.Errorf("destination %q: %w: %w", slug, ErrNotFound, err)
	}
	for i := range docs {
		if MakeSlug(docs[i].Name) == slug {
			d := docs[i]
			if d.Details != nil {
				for j, g := range d.Details.Images.Gallery {
					d.Details.Images.Gallery[j] = NormalizeImagePath(g)
				}
			}
			return &d, nil
		}
	}
	return nil, fmt.Errorf("destination %q: %w", slug, ErrNotFound)
}

// Governorates returns the governorate tiles, or the built-in list when the
// endpoint is unavailable or returns nothing.
func (f *Fetcher) Governorates(ctx context.Context) []Governorate {
	var out []Governorate
	if err := f.getJSON(ctx, GovernoratesPath, &out); err != nil {
		f.log.Warn(ctx, "governorates unavailable, using built-in list", "error", err)
		return FallbackGovernorates()
	}
	if len(out) == 0 {
		return FallbackGovernorates()
	}
	return out
}

// Guides returns every local guide. On failure the list is empty.
func (f *Fetcher) Guides(ctx context.Context) []Guide {
	var out []Guide
	if err := f.getJSON(ctx, GuidesPath, &out); err != nil {
		f.log.Error(ctx, "guides unavailable", "error", err)
		return nil
	}
	return out
}

// Invalidate drops every cached document.
func (f *Fetcher) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.cache)
}

func (f *Fetcher) getJSON(ctx context.Context, path string, dst any) error {
	body, err := f.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// get returns a fresh cached body or fetches it with retries.
func (f *Fetcher) get(ctx context.Context, path string) ([]byte, error) {
	f.mu.Lock()
	e, ok := f.cache[path]
	f.mu.Unlock()
	if ok && f.now().Sub(e.fetched) < f.staleTime {
		return e.body, nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.initialInterval
	b.MaxInterval = f.maxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0

	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		return f.fetch(ctx, path)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(f.maxRetries+1),
		backoff.WithNotify(func(err error, next time.Duration) {
			f.log.Debug(ctx, "fetch failed, retrying", "path", path, "in", next, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.cache[path] = cacheEntry{body: body, fetched: f.now()}
	f.mu.Unlock()
	return body, nil
}

func (f *Fetcher) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/"+path, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	res, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		err := fmt.Errorf("get %s: %s", path, res.Status)
		if res.StatusCode >= 400 && res.StatusCode < 500 && res.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}
