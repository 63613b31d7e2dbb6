package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddam/donations/internal/testhelpers"
)

func TestRedisStore(t *testing.T) {
	client := testhelpers.Redis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	s := New()
	s.AddFlash("hello")
	token, err := store.Save(ctx, s, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, s.ID, token)

	loaded, err := store.Load(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, loaded.Flashes)

	ttl, err := client.TTL(ctx, redisKeyPrefix+token).Result()
	require.NoError(t, err)
	assert.True(t, ttl > 0 && ttl <= time.Minute)

	t.Run("login rotation drops the old key", func(t *testing.T) {
		uid := uuid.New()
		loaded.Login(uid)
		newToken, err := store.Save(ctx, loaded, time.Minute)
		require.NoError(t, err)
		assert.NotEqual(t, token, newToken)

		_, err = store.Load(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		again, err := store.Load(ctx, newToken)
		require.NoError(t, err)
		assert.Equal(t, uid, again.UserID)

		again.Logout()
		require.NoError(t, store.Destroy(ctx, again))
		_, err = store.Load(ctx, newToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage tokens are invalid", func(t *testing.T) {
		_, err := store.Load(ctx, "not-a-session")
		assert.ErrorIs(t, err, ErrInvalidToken)
		_, err = store.Load(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
