package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
	"github.com/dmitrijs2005/laqtaha/internal/logging"
)

// Observer is notified after every state transition.
type Observer func(Snapshot)

type subscription struct {
	id int
	fn Observer
}

// Container holds the current Session and is its only writer.
//
// Writes are serialised; observers run synchronously on the writing
// goroutine, in subscription order, after the new state is visible to
// Snapshot. Observers must not call mutating methods of the same container.
type Container struct {
	store *Store
	log   logging.Logger

	// writeMu serialises transitions, including persistence and notification.
	writeMu sync.Mutex

	mu    sync.RWMutex
	state State
	token string
	user  *models.User

	subMu  sync.Mutex
	subs   []subscription
	nextID int
}

// NewContainer returns a container in StateLoading. Call Initialize to
// restore the stored session.
func NewContainer(store *Store, log logging.Logger) *Container {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Container{
		store: store,
		log:   log.With("component", "session"),
		state: StateLoading,
	}
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{State: c.state, Token: c.token, User: c.user.Clone()}
}

// Subscribe registers fn for future transitions and returns a function
// removing it.
func (c *Container) Subscribe(fn Observer) (cancel func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			defer c.subMu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Initialize restores the stored session. Only the first call while the
// container is loading does anything; later calls return the current state.
func (c *Container) Initialize(ctx context.Context) Snapshot {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.Snapshot().State != StateLoading {
		return c.Snapshot()
	}

	token, user := c.store.Load(ctx)
	switch {
	case token != "" && user != nil:
		c.set(StateAuthenticated, token, user)
		c.log.Info(ctx, "stored session restored", "email", user.Email, "profile_complete", user.ProfileComplete)
	case token != "" || user != nil:
		c.set(StateAnonymous, "", nil)
		c.log.Warn(ctx, "stored session is incomplete, starting anonymous",
			"has_token", token != "", "has_user", user != nil)
	default:
		c.set(StateAnonymous, "", nil)
		c.log.Debug(ctx, "no stored session")
	}
	return c.notify()
}

// SetAuth makes p the current session and persists it. It is the only way
// into StateAuthenticated.
func (c *Container) SetAuth(ctx context.Context, p AuthParams) (Snapshot, error) {
	if p.Token == "" || p.User == nil {
		return c.Snapshot(), ErrInvalidAuth
	}

	user := p.User.Clone()
	if p.IsRegister {
		user.ProfileComplete = false
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.set(StateAuthenticated, p.Token, user)
	c.store.Save(ctx, p.Token, user)
	c.log.Info(ctx, "signed in", "email", user.Email, "register", p.IsRegister)
	return c.notify(), nil
}

// CompleteOnboarding merges payload into the user's onboarding answers,
// marks the profile complete and persists the result. Keys already present
// are overwritten. Without a signed-in user it returns ErrNoSession and
// changes nothing.
func (c *Container) CompleteOnboarding(ctx context.Context, payload models.Onboarding) (Snapshot, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	cur := c.Snapshot()
	if cur.User == nil {
		return cur, fmt.Errorf("complete onboarding: %w", ErrNoSession)
	}

	user := cur.User
	user.Onboarding = user.Onboarding.Merge(payload)
	user.ProfileComplete = true

	c.set(StateAuthenticated, cur.Token, user)
	c.store.Save(ctx, cur.Token, user)
	c.log.Info(ctx, "onboarding completed", "email", user.Email)
	return c.notify(), nil
}

// Logout drops the session from memory and storage.
func (c *Container) Logout(ctx context.Context) Snapshot {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.set(StateAnonymous, "", nil)
	c.store.Clear(ctx)
	c.log.Info(ctx, "signed out")
	return c.notify()
}

func (c *Container) set(state State, token string, user *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state, c.token, c.user = state, token, user
}

// notify delivers the current snapshot to every observer and returns it.
// Callers hold writeMu.
func (c *Container) notify() Snapshot {
	c.subMu.Lock()
	subs := append([]subscription(nil), c.subs...)
	c.subMu.Unlock()

	for _, s := range subs {
		s.fn(c.Snapshot())
	}
	return c.Snapshot()
}
