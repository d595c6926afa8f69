package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adcreativex/adcreativex/internal/logging"
	"github.com/adcreativex/adcreativex/internal/models"
)

func TestLoadJSON_Absent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	u, ok, err := LoadJSON[*models.User](context.Background(), s, KeySession, logging.Nop{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, u)
}

func TestLoadJSON_RoundTrip(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	in := &models.User{ID: "u1", Email: "a@b.com", Role: models.RoleBrand, Name: "Acme"}
	require.NoError(t, SaveJSON(ctx, s, KeySession, in))

	out, ok, err := LoadJSON[*models.User](ctx, s, KeySession, logging.Nop{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestLoadJSON_MalformedBlobIsDiscarded(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeySession, []byte(`{"id": truncated`)))

	u, ok, err := LoadJSON[*models.User](ctx, s, KeySession, logging.Nop{})
	require.NoError(t, err, "corruption must not surface as an error")
	assert.False(t, ok)
	assert.Nil(t, u)

	// The corrupt entry is gone.
	raw, err := s.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLoadJSON_DirectorySlice(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	dir := []models.User{
		{ID: "1", Email: "a@b.com", Role: models.RoleBrand, Name: "Acme"},
		{ID: "2", Email: "c@d.com", Role: models.RoleCreator, Name: "Jordan"},
	}
	require.NoError(t, SaveJSON(ctx, s, KeyDirectory, dir))

	got, ok, err := LoadJSON[[]models.User](ctx, s, KeyDirectory, logging.Nop{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, dir, got)
}

func TestSaveJSON_UnserializableValue(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	err := SaveJSON(context.Background(), s, "bad", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to serialize record[bad]")
}
