package auth

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oddam/donations/internal/models"
	"github.com/oddam/donations/internal/testhelpers"
)

func TestRepository(t *testing.T) {
	repo := NewRepository(testhelpers.Postgres(t))
	ctx := context.Background()

	hash, err := HashPassword("tajnehaslo1")
	require.NoError(t, err)
	u := &models.User{
		Username:  "ala",
		Email:     gofakeit.Email(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Password:  hash,
		IsActive:  true,
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := repo.GetByUsername(ctx, "ala")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.True(t, CheckPassword("tajnehaslo1", got.Password))

	dup := *u
	assert.ErrorIs(t, repo.Create(ctx, &dup), models.ErrUsernameTaken)

	inactive := &models.User{Username: "ola", Email: gofakeit.Email(), Password: hash}
	require.NoError(t, repo.Create(ctx, inactive))
	got, err = repo.GetByID(ctx, inactive.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
