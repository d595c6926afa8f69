package session

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/logging"
	"github.com/adcreativex/adcreativex/internal/models"
	"github.com/adcreativex/adcreativex/internal/store"
)

// memStore is an in-memory Store with injectable failures.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	getErr error
	setErr error
	delErr error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.data, key)
	return nil
}

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

// recordingNotifier captures notification titles in order.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title)
}

func (n *recordingNotifier) Failure(title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, title)
}

func newManager(t *testing.T) (*Manager, *memStore, *recordingNotifier) {
	t.Helper()
	s := newMemStore()
	n := &recordingNotifier{}
	m := NewManager(s, logging.Nop{}, WithNotifier(n))
	return m, s, n
}

func registerBrand(t *testing.T, m *Manager, email string) *models.User {
	t.Helper()
	u, err := m.Register(context.Background(), email, []byte("pw"), models.RoleBrand,
		models.Profile{Name: "Acme"})
	require.NoError(t, err)
	return u
}

func directorySize(t *testing.T, s *memStore) int {
	t.Helper()
	raw, err := s.Get(context.Background(), store.KeyDirectory)
	require.NoError(t, err)
	if raw == nil {
		return 0
	}
	var dir []models.User
	require.NoError(t, json.Unmarshal(raw, &dir))
	return len(dir)
}

func TestInitialize_EmptyStore(t *testing.T) {
	m, _, _ := newManager(t)

	assert.True(t, m.Loading(), "loading starts true")
	require.NoError(t, m.Initialize(context.Background()))
	assert.False(t, m.Loading())
	assert.Nil(t, m.CurrentUser())
}

func TestInitialize_HydratesPersistedSession(t *testing.T) {
	m, s, _ := newManager(t)

	saved := &models.User{ID: "u1", Email: "a@b.com", Role: models.RoleBrand, Name: "Acme"}
	require.NoError(t, store.SaveJSON(context.Background(), s, store.KeySession, saved))

	var published *models.User
	m.Subscribe(func(u *models.User) { published = u })

	require.NoError(t, m.Initialize(context.Background()))
	require.NotNil(t, m.CurrentUser())
	assert.Equal(t, "u1", m.CurrentUser().ID)
	require.NotNil(t, published)
	assert.Equal(t, "u1", published.ID)
}

func TestInitialize_MalformedPointerDiscarded(t *testing.T) {
	m, s, _ := newManager(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, store.KeySession, []byte(`{"id": broken`)))

	require.NoError(t, m.Initialize(ctx), "corruption must not surface")
	assert.Nil(t, m.CurrentUser())
	assert.False(t, m.Loading())
	assert.False(t, s.has(store.KeySession), "corrupt pointer is removed")
}

func TestInitialize_NullPointerTreatedAsAbsent(t *testing.T) {
	m, s, _ := newManager(t)
	ctx := context.Background()

	// valid JSON, but it decodes to a nil user
	require.NoError(t, s.Set(ctx, store.KeySession, []byte(`null`)))

	var published bool
	m.Subscribe(func(*models.User) { published = true })

	require.NoError(t, m.Initialize(ctx))
	assert.Nil(t, m.CurrentUser())
	assert.False(t, m.Loading())
	assert.False(t, published, "anonymous session must not be published")
}

func TestInitialize_RunsOnlyOnce(t *testing.T) {
	m, s, _ := newManager(t)
	ctx := context.Background()

	require.NoError(t, m.Initialize(ctx))

	// A pointer appearing later must not be picked up by a second call.
	saved := &models.User{ID: "u2", Email: "x@y.com"}
	require.NoError(t, store.SaveJSON(ctx, s, store.KeySession, saved))
	require.NoError(t, m.Initialize(ctx))
	assert.Nil(t, m.CurrentUser())
}

func TestRegisterThenLogin_SameID(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	registered := registerBrand(t, m, "a@b.com")

	m.Logout(ctx)

	loggedIn, err := m.Login(ctx, "a@b.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	m, s, _ := newManager(t)
	ctx := context.Background()

	registerBrand(t, m, "a@b.com")
	require.Equal(t, 1, directorySize(t, s))

	_, err := m.Register(ctx, "a@b.com", []byte("other"), models.RoleCreator, models.Profile{})
	require.ErrorIs(t, err, common.ErrEmailTaken)
	assert.Equal(t, 1, directorySize(t, s), "failed attempt must not grow the directory")
}

func TestRegister_MissingInput(t *testing.T) {
	m, _, n := newManager(t)
	ctx := context.Background()

	_, err := m.Register(ctx, "", []byte("pw"), models.RoleBrand, models.Profile{})
	require.ErrorIs(t, err, common.ErrMissingInput)

	_, err = m.Register(ctx, "a@b.com", nil, models.RoleBrand, models.Profile{})
	require.ErrorIs(t, err, common.ErrMissingInput)

	_, err = m.Register(ctx, "a@b.com", []byte("pw"), "", models.Profile{})
	require.ErrorIs(t, err, common.ErrMissingInput)

	assert.Len(t, n.failures, 3)
}

func TestRegister_WritesThrough(t *testing.T) {
	m, s, _ := newManager(t)

	u := registerBrand(t, m, "a@b.com")

	assert.True(t, s.has(store.KeyDirectory))
	raw, err := s.Get(context.Background(), store.KeySession)
	require.NoError(t, err)
	var persisted models.User
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, u.ID, persisted.ID)
}

func TestLogin_MissingInput(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	_, err := m.Login(ctx, "", []byte("pw"))
	require.ErrorIs(t, err, common.ErrMissingInput)

	_, err = m.Login(ctx, "a@b.com", nil)
	require.ErrorIs(t, err, common.ErrMissingInput)
}

func TestLogin_UnknownEmail(t *testing.T) {
	m, _, n := newManager(t)

	_, err := m.Login(context.Background(), "nobody@b.com", []byte("pw"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, m.CurrentUser())
	assert.Contains(t, n.failures, "Login failed")
}

func TestLogin_WrongPassword(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	registerBrand(t, m, "a@b.com")
	m.Logout(ctx)

	_, err := m.Login(ctx, "a@b.com", []byte("wrong"))
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, m.CurrentUser())
}

func TestLogout_Idempotent(t *testing.T) {
	m, s, _ := newManager(t)
	ctx := context.Background()

	registerBrand(t, m, "a@b.com")

	m.Logout(ctx)
	assert.Nil(t, m.CurrentUser())
	assert.False(t, s.has(store.KeySession))

	m.Logout(ctx)
	assert.Nil(t, m.CurrentUser())
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	before := registerBrand(t, m, "a@b.com")

	bio := "x"
	updated, err := m.UpdateProfile(ctx, models.ProfilePatch{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "x", updated.Bio)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.Name, updated.Name)

	current := m.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "x", current.Bio)
}

func TestUpdateProfile_NotLoggedIn(t *testing.T) {
	m, _, n := newManager(t)

	bio := "x"
	_, err := m.UpdateProfile(context.Background(), models.ProfilePatch{Bio: &bio})
	require.ErrorIs(t, err, common.ErrNotLoggedIn)
	assert.Contains(t, n.failures, "Update failed")
}

func TestUpdateProfile_RecordDeletedElsewhere(t *testing.T) {
	m, s, _ := newManager(t)
	ctx := context.Background()

	registerBrand(t, m, "a@b.com")

	// Another instance wipes the directory out from under us.
	require.NoError(t, store.SaveJSON(ctx, s, store.KeyDirectory, []models.User{}))

	bio := "x"
	_, err := m.UpdateProfile(ctx, models.ProfilePatch{Bio: &bio})
	require.ErrorIs(t, err, common.ErrorNotFound)

	// Session stays as it was; the record is not resurrected.
	require.NotNil(t, m.CurrentUser())
	assert.Equal(t, 0, directorySize(t, s))
}

func TestSubscribers_SeeLifecycle(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	var events []string
	m.Subscribe(func(u *models.User) {
		if u == nil {
			events = append(events, "anonymous")
		} else {
			events = append(events, "user:"+u.Email)
		}
	})

	registerBrand(t, m, "a@b.com")
	m.Logout(ctx)

	assert.Equal(t, []string{"user:a@b.com", "anonymous"}, events)
}

func TestNotifications(t *testing.T) {
	m, _, n := newManager(t)
	ctx := context.Background()

	registerBrand(t, m, "a@b.com")
	m.Logout(ctx)
	_, _ = m.Login(ctx, "a@b.com", []byte("pw"))

	assert.Equal(t, []string{"Registration successful", "Logged out", "Login successful"}, n.successes)
	assert.Empty(t, n.failures)
}

func TestSimulatedLatency_HonorsContext(t *testing.T) {
	s := newMemStore()
	m := NewManager(s, logging.Nop{}, WithSimulatedLatency(time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Login(ctx, "a@b.com", []byte("pw"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestFullScenario(t *testing.T) {
	m, s, _ := newManager(t)
	ctx := context.Background()

	// Register a brand account.
	u, err := m.Register(ctx, "a@b.com", []byte("pw"), models.RoleBrand,
		models.Profile{Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, 1, directorySize(t, s))

	// Fresh login returns the same record.
	m.Logout(ctx)
	got, err := m.Login(ctx, "a@b.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	// Profile patch lands without disturbing other fields.
	industry := "retail"
	updated, err := m.UpdateProfile(ctx, models.ProfilePatch{Industry: &industry})
	require.NoError(t, err)
	assert.Equal(t, "retail", updated.Industry)
	assert.Equal(t, "a@b.com", updated.Email)

	// Logout clears memory and the persisted pointer.
	m.Logout(ctx)
	assert.Nil(t, m.CurrentUser())
	assert.False(t, s.has(store.KeySession))
}
