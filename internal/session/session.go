// Package session owns the authentication state machine. The Controller
// is the only component that mutates session state; everything else reads
// snapshots or subscribes to changes.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/btechwala999/Ignitia-client/internal/api"
	"github.com/btechwala999/Ignitia-client/internal/logger"
	"github.com/btechwala999/Ignitia-client/internal/store"
)

// ErrSuperseded reports that a login or registration resolved after a
// logout had already discarded the session; its result was thrown away.
var ErrSuperseded = errors.New("session: superseded by logout")

// State is a point-in-time snapshot of the session.
type State struct {
	Token string
	User  *api.User

	// Authenticated is true iff a token is present and the last
	// verification or fetch accepted it.
	Authenticated bool

	// Loading is true until the initial Bootstrap resolves.
	Loading bool

	// Busy is true while a login or registration is in flight.
	Busy bool
}

// Controller orchestrates login, registration, logout and token
// verification against the backend. One Controller exists per process.
type Controller struct {
	client *api.Client
	store  store.Store

	mu    sync.Mutex
	state State

	// epoch is bumped by Logout. In-flight operations capture it when
	// they start and discard their results if it moved, so a stale
	// resolution can never resurrect a cleared session.
	epoch uint64

	subMu sync.Mutex
	subs  []func(State)
}

func New(client *api.Client, st store.Store) *Controller {
	return &Controller{
		client: client,
		store:  st,
		state:  State{Loading: true},
	}
}

// State returns a copy of the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	s := c.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Subscribe registers fn to run after every state change. Callbacks run
// on the mutating goroutine and must not block.
func (c *Controller) Subscribe(fn func(State)) {
	c.subMu.Lock()
	c.subs = append(c.subs, fn)
	c.subMu.Unlock()
}

func (c *Controller) notify(s State) {
	c.subMu.Lock()
	subs := make([]func(State), len(c.subs))
	copy(subs, c.subs)
	c.subMu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

// Bootstrap hydrates the session from the store on process start. It
// never fails: any rejection, transport error or malformed payload
// degrades to an unauthenticated session with the stored credential
// discarded, so the caller always gets a decidable state.
func (c *Controller) Bootstrap(ctx context.Context) State {
	token, ok := c.store.Token(ctx)
	if !ok {
		return c.commit(c.currentEpoch(), func(s *State) {
			s.Loading = false
			s.Authenticated = false
		})
	}

	c.client.SetAuthToken(token)
	epoch := c.currentEpoch()

	user, err := c.client.Me(ctx)
	if err != nil {
		c.client.SetAuthToken("")
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			logger.Warn("failed to clear rejected credentials", map[string]any{
				"error": clearErr.Error(),
			})
		}
		return c.commit(epoch, func(s *State) {
			*s = State{}
		})
	}

	c.mu.Lock()
	if epoch != c.epoch {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
	// Snapshot refresh keeps the stored pair current together.
	if err := c.store.SetUser(ctx, user); err != nil {
		logger.Warn("failed to cache profile snapshot", map[string]any{
			"error": err.Error(),
		})
	}
	c.state = State{Token: token, User: user, Authenticated: true}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return snap
}

// Login exchanges credentials for a session. On failure the prior session
// state is left untouched and the backend's message is in the returned
// error. A logout racing the request wins: the result is discarded and
// ErrSuperseded returned.
func (c *Controller) Login(ctx context.Context, email, password string) error {
	c.setBusy(true)
	defer c.setBusy(false)

	epoch := c.currentEpoch()

	res, err := c.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return c.establish(ctx, epoch, res)
}

// Register mirrors Login against the registration endpoint. An empty role
// registers a student.
func (c *Controller) Register(ctx context.Context, name, email, password, role string) error {
	c.setBusy(true)
	defer c.setBusy(false)

	epoch := c.currentEpoch()

	res, err := c.client.Register(ctx, name, email, password, role)
	if err != nil {
		return err
	}
	return c.establish(ctx, epoch, res)
}

// establish persists and publishes a freshly issued token. The login
// endpoint accepted the credentials, so a failed follow-up profile fetch
// leaves the token valid with no profile; a later Bootstrap or any
// authenticated call settles the gap.
func (c *Controller) establish(ctx context.Context, epoch uint64, res *api.AuthResult) error {
	c.client.SetAuthToken(res.Token)

	user := res.User
	if user == nil {
		fetched, err := c.client.Me(ctx)
		if err != nil {
			logger.Warn("profile fetch after login failed", map[string]any{
				"error": err.Error(),
			})
		} else {
			user = fetched
		}
	}

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		// A logout landed while the request was in flight; it stays
		// authoritative.
		c.client.SetAuthToken("")
		if err := c.store.Clear(ctx); err != nil {
			logger.Warn("failed to clear superseded credentials", map[string]any{
				"error": err.Error(),
			})
		}
		return ErrSuperseded
	}

	if err := c.store.SetToken(ctx, res.Token); err != nil {
		logger.Warn("failed to persist token", map[string]any{"error": err.Error()})
	}
	if err := c.store.SetUser(ctx, user); err != nil {
		logger.Warn("failed to persist profile snapshot", map[string]any{"error": err.Error()})
	}

	c.state.Token = res.Token
	c.state.User = user
	c.state.Authenticated = true
	c.state.Loading = false
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// Logout discards the session unconditionally and locally; no backend
// call is made and it cannot fail. Any in-flight resolution started
// before this point will observe the epoch bump and drop its result.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.epoch++
	c.state = State{}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.client.SetAuthToken("")
	if err := c.store.Clear(context.Background()); err != nil {
		logger.Warn("failed to clear stored credentials", map[string]any{
			"error": err.Error(),
		})
	}

	c.notify(snap)
}

// RefreshHeaders re-reads the stored token and re-applies it to the HTTP
// client. Idempotent; used defensively before requests that must not race
// a session update. Reports whether a token was found.
func (c *Controller) RefreshHeaders(ctx context.Context) bool {
	token, ok := c.store.Token(ctx)
	if !ok {
		return false
	}
	c.client.SetAuthToken(token)
	return true
}

// UpdateProfile renames the account and replaces the cached snapshot.
func (c *Controller) UpdateProfile(ctx context.Context, name string) error {
	epoch := c.currentEpoch()

	user, err := c.client.UpdateProfile(ctx, name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if epoch != c.epoch {
		c.mu.Unlock()
		return ErrSuperseded
	}
	if err := c.store.SetUser(ctx, user); err != nil {
		logger.Warn("failed to persist profile snapshot", map[string]any{"error": err.Error()})
	}
	c.state.User = user
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// ChangePassword swaps the password; the current token stays valid so no
// session state changes.
func (c *Controller) ChangePassword(ctx context.Context, current, next string) error {
	return c.client.ChangePassword(ctx, current, next)
}

func (c *Controller) currentEpoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// commit applies mutate under the epoch guard and notifies subscribers.
// A stale epoch leaves the state exactly as the logout set it.
func (c *Controller) commit(epoch uint64, mutate func(*State)) State {
	c.mu.Lock()
	if epoch != c.epoch {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
	mutate(&c.state)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return snap
}

func (c *Controller) setBusy(busy bool) {
	c.mu.Lock()
	c.state.Busy = busy
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}
