// Package session owns the runtime's notion of the currently authenticated
// user. The Manager hydrates the session from the durable store at startup,
// mediates login/register/logout/profile updates, keeps the in-memory user
// and the persisted session pointer in lockstep (write-through on every
// mutation), and publishes every state change to subscribers.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/identity"
	"github.com/adcreativex/adcreativex/internal/logging"
	"github.com/adcreativex/adcreativex/internal/models"
	"github.com/adcreativex/adcreativex/internal/store"
)

// Notifier is the user-facing notification side-channel. Every identity or
// session outcome produces exactly one Success or Failure call with text
// suitable for direct display.
type Notifier interface {
	Success(title, detail string)
	Failure(title, detail string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string, string) {}
func (NopNotifier) Failure(string, string) {}

// Subscriber receives the published user after every session change.
// A nil user means the session is anonymous. The callback must not invoke
// Manager operations synchronously.
type Subscriber func(user *models.User)

// Manager is the single owner of the in-memory session. All mutating
// operations are serialized by an internal mutex; overlapping calls from
// multiple goroutines queue rather than interleave.
type Manager struct {
	store    store.Store
	log      logging.Logger
	notifier Notifier
	latency  time.Duration

	mu          sync.Mutex
	current     *models.User
	loading     bool
	initialized bool

	subMu sync.Mutex
	subs  []Subscriber
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets the notification side-channel.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithSimulatedLatency makes every operation pause once before touching the
// store, modeling a backend round-trip. Zero disables the pause.
func WithSimulatedLatency(d time.Duration) Option {
	return func(m *Manager) { m.latency = d }
}

// NewManager returns a Manager in the pre-initialize state: anonymous, with
// the loading flag raised until Initialize completes.
func NewManager(s store.Store, log logging.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:    s,
		log:      log,
		notifier: NopNotifier{},
		loading:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Loading reports whether Initialize has yet to complete. It starts true
// and transitions to false exactly once per Manager lifetime.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// CurrentUser returns a copy of the authenticated user, or nil when the
// session is anonymous.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

// Subscribe registers fn to be called after every published session change.
func (m *Manager) Subscribe(fn Subscriber) {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	m.subs = append(m.subs, fn)
}

func (m *Manager) publish(user *models.User) {
	m.subMu.Lock()
	subs := make([]Subscriber, len(m.subs))
	copy(subs, m.subs)
	m.subMu.Unlock()

	for _, fn := range subs {
		fn(user.Clone())
	}
}

// simulateLatency pauses once for the configured delay, honoring ctx.
func (m *Manager) simulateLatency(ctx context.Context) error {
	if m.latency <= 0 {
		return nil
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Initialize hydrates the session from the persisted pointer. A malformed
// pointer is discarded silently and the session stays anonymous. Initialize
// always leaves the Manager ready: the loading flag drops exactly once,
// whatever the store returned, and repeated calls are no-ops.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return nil
	}

	user, ok, err := store.LoadJSON[*models.User](ctx, m.store, store.KeySession, m.log)
	if err != nil {
		m.log.Error(ctx, "failed to hydrate session", "error", err)
	} else if ok && user == nil {
		// a persisted JSON null decodes fine but carries no user
		m.log.Warn(ctx, "discarding empty session pointer")
	} else if ok {
		m.current = user
		m.log.Info(ctx, "session hydrated", "user_id", user.ID)
	}

	m.initialized = true
	m.loading = false
	current := m.current.Clone()
	m.mu.Unlock()

	if current != nil {
		m.publish(current)
	}
	return err
}

// Login authenticates against the directory and opens a session.
//
// Fails with common.ErrMissingInput on empty fields and with
// common.ErrInvalidCredentials for an unknown email or wrong password. On
// success the session pointer is written through before the new user is
// published and returned.
func (m *Manager) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	if email == "" || len(password) == 0 {
		m.notifier.Failure("Login failed", "Please provide email and password")
		return nil, common.ErrMissingInput
	}

	m.mu.Lock()
	user, err := m.login(ctx, email, password)
	m.mu.Unlock()

	if err != nil {
		m.notifier.Failure("Login failed", err.Error())
		return nil, err
	}

	m.publish(user)
	m.notifier.Success("Login successful", fmt.Sprintf("Welcome back, %s!", displayName(user)))
	return user.Clone(), nil
}

func (m *Manager) login(ctx context.Context, email string, password []byte) (*models.User, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	directory, _, err := store.LoadJSON[[]models.User](ctx, m.store, store.KeyDirectory, m.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory: %w", err)
	}

	user, found := identity.FindByEmail(directory, email)
	if !found {
		return nil, common.ErrInvalidCredentials
	}
	if err := identity.VerifyPassword(user, password); err != nil {
		return nil, err
	}

	if err := store.SaveJSON(ctx, m.store, store.KeySession, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.current = user
	m.log.Info(ctx, "user logged in", "user_id", user.ID)
	return user, nil
}

// Register creates a directory record and opens a session for it.
//
// Fails with common.ErrMissingInput when email, password, or role is empty,
// common.ErrEmailTaken on a duplicate email, and common.ErrValidation on a
// bad profile. On success both the updated directory and the new session
// pointer are written through.
func (m *Manager) Register(ctx context.Context, email string, password []byte, role models.Role, profile models.Profile) (*models.User, error) {
	if email == "" || len(password) == 0 || role == "" {
		m.notifier.Failure("Registration failed", "Please fill all required fields")
		return nil, common.ErrMissingInput
	}

	m.mu.Lock()
	user, err := m.register(ctx, email, password, role, profile)
	m.mu.Unlock()

	if err != nil {
		m.notifier.Failure("Registration failed", err.Error())
		return nil, err
	}

	m.publish(user)
	m.notifier.Success("Registration successful", "Your account has been created.")
	return user.Clone(), nil
}

func (m *Manager) register(ctx context.Context, email string, password []byte, role models.Role, profile models.Profile) (*models.User, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	directory, _, err := store.LoadJSON[[]models.User](ctx, m.store, store.KeyDirectory, m.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory: %w", err)
	}

	user, updated, err := identity.Create(directory, identity.CreateParams{
		Email:    email,
		Password: password,
		Role:     role,
		Profile:  profile,
	})
	if err != nil {
		return nil, err
	}

	// Directory first, then the session pointer, so a failed second write
	// cannot leave a session pointing at a record that was never stored.
	if err := store.SaveJSON(ctx, m.store, store.KeyDirectory, updated); err != nil {
		return nil, fmt.Errorf("failed to persist directory: %w", err)
	}
	if err := store.SaveJSON(ctx, m.store, store.KeySession, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.current = user
	m.log.Info(ctx, "user registered", "user_id", user.ID, "role", role)
	return user, nil
}

// Logout clears the in-memory user and the persisted session pointer. It is
// idempotent and never fails: a store error is logged, the in-memory session
// is cleared regardless.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	if err := m.store.Delete(ctx, store.KeySession); err != nil {
		m.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
	m.current = nil
	m.mu.Unlock()

	m.publish(nil)
	m.notifier.Success("Logged out", "You have been successfully logged out.")
}

// UpdateProfile merges patch into the current user's directory record and
// refreshes the session.
//
// Fails with common.ErrNotLoggedIn when the session is anonymous. If the
// backing record has vanished from the directory (mutated by another
// instance), the update surfaces common.ErrorNotFound and the in-memory
// session is left untouched; the record is not resurrected.
func (m *Manager) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error) {
	m.mu.Lock()
	user, err := m.updateProfile(ctx, patch)
	m.mu.Unlock()

	if err != nil {
		m.notifier.Failure("Update failed", err.Error())
		return nil, err
	}

	m.publish(user)
	m.notifier.Success("Profile updated", "Your profile has been updated.")
	return user.Clone(), nil
}

func (m *Manager) updateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error) {
	if m.current == nil {
		return nil, common.ErrNotLoggedIn
	}

	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	directory, _, err := store.LoadJSON[[]models.User](ctx, m.store, store.KeyDirectory, m.log)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory: %w", err)
	}

	user, updated, err := identity.Update(directory, m.current.ID, patch)
	if err != nil {
		return nil, err
	}

	if err := store.SaveJSON(ctx, m.store, store.KeyDirectory, updated); err != nil {
		return nil, fmt.Errorf("failed to persist directory: %w", err)
	}
	if err := store.SaveJSON(ctx, m.store, store.KeySession, user); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	m.current = user
	m.log.Info(ctx, "profile updated", "user_id", user.ID)
	return user, nil
}

func displayName(u *models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
