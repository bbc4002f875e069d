package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/laqtaha/internal/client/catalog"
	"github.com/dmitrijs2005/laqtaha/internal/client/client"
	"github.com/dmitrijs2005/laqtaha/internal/client/config"
	"github.com/dmitrijs2005/laqtaha/internal/client/navigation"
	"github.com/dmitrijs2005/laqtaha/internal/client/services"
	"github.com/dmitrijs2005/laqtaha/internal/client/session"
	"github.com/dmitrijs2005/laqtaha/internal/client/storage"
	"github.com/dmitrijs2005/laqtaha/internal/logging"
)

const defaultRequestTimeout = 10 * time.Second

type App struct {
	config   *config.Config
	auth     services.AuthService
	sessions *session.Container
	store    *session.Store
	codes    verificationCodes
	catalog  *catalog.Fetcher
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	closers  []io.Closer

	mu    sync.Mutex
	route navigation.Route
}

// verificationCodes is implemented by the simulated endpoint, which has no
// mailbox to send codes to.
type verificationCodes interface {
	OTP(userID string) (string, bool)
}

// NewApp opens the session storage selected by c and wires the auth
// endpoint, the session container and the catalog fetcher.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NopLogger{}
	}

	repo, closer, err := storage.Open(ctx, c)
	if err != nil {
		log.Error(ctx, "error initializing storage", "backend", c.StorageBackend, "error", err)
		return nil, err
	}

	store := session.NewStore(repo, log)
	sessions := session.NewContainer(store, log)
	fetcher := catalog.NewFetcher(c.DataBaseURL,
		catalog.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}),
		catalog.WithStaleTime(c.CatalogStaleTime),
		catalog.WithLogger(log),
	)

	api := newAuthClient(c)
	codes, _ := api.(verificationCodes)

	return &App{
		config:   c,
		auth:     services.NewAuthService(api, sessions, store, log),
		sessions: sessions,
		store:    store,
		codes:    codes,
		catalog:  fetcher,
		log:      log.With("component", "cli"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closers:  []io.Closer{closer},
	}, nil
}

// newAuthClient returns the simulated endpoint when MockAuth is set and the
// HTTP one otherwise.
func newAuthClient(c *config.Config) client.Client {
	if c.MockAuth {
		return client.NewMockClient(c.MockDelay, c.MockSigningKey)
	}
	return client.NewHTTPClient(c.AuthEndpointAddr, c.RequestTimeout)
}

// Run restores the stored session, attaches the navigation gate and blocks
// in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	gate := navigation.Follow(a.sessions, func(r navigation.Route, _ session.Snapshot) {
		a.setRoute(r)
	})
	defer gate.Stop()

	fmt.Fprintln(a.out, "Welcome to Laqtaha (type 'help' for commands)")
	a.sessions.Initialize(ctx)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Close releases the endpoint client and the storage.
func (a *App) Close(ctx context.Context) {
	if err := a.auth.Close(ctx); err != nil {
		a.log.Warn(ctx, "closing auth client", "error", err)
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.log.Warn(ctx, "closing storage", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Snapshot().Authenticated()
}

// setRoute records the current destination and tells the user when it
// changes.
func (a *App) setRoute(r navigation.Route) {
	if r == navigation.RouteNone {
		return
	}
	a.mu.Lock()
	changed := a.route != r
	a.route = r
	a.mu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "Now at %s\n", r)
		a.log.Debug(context.Background(), "route changed", "route", string(r))
	}
}

func (a *App) currentRoute() navigation.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

func (a *App) requestTimeout() time.Duration {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return defaultRequestTimeout
	}
	return a.config.RequestTimeout
}
