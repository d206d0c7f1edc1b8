package local

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokin/teachdesk/internal/model"
	"github.com/osokin/teachdesk/internal/testutil"
)

func makeUser(id, email string) model.User {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	return model.User{
		ID:               id,
		Email:            email,
		Name:             "Alice",
		CreatedDate:      now,
		LastModifiedDate: now,
	}
}

func TestUserRepository_CreateAndGetByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newFakeKV(), testutil.MakeNoopLogger())

	user := makeUser("u1", "a@x.com")
	_, err := repo.Create(ctx, user, "pw")
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	password, err := repo.GetPassword(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "pw", password)
}

func TestUserRepository_GetByEmail_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newFakeKV(), testutil.MakeNoopLogger())

	_, err := repo.Create(ctx, makeUser("u1", "a@x.com"), "pw")
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "A@X.COM")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetPassword_Missing(t *testing.T) {
	repo := NewUserRepository(newFakeKV(), testutil.MakeNoopLogger())

	_, err := repo.GetPassword(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Session(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newFakeKV(), testutil.MakeNoopLogger())

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, model.ErrNotFound)

	user := makeUser("u1", "a@x.com")
	require.NoError(t, repo.SetSession(ctx, user))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, repo.ClearSession(ctx))
	_, err = repo.GetSession(ctx)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// clearing twice stays fine
	require.NoError(t, repo.ClearSession(ctx))
}

func TestUserRepository_Session_CorruptSlot(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	kv.data[keySession] = `{"id":`

	repo := NewUserRepository(kv, testutil.MakeNoopLogger())

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
