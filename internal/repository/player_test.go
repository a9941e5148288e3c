package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/testing/suite"
)

func TestPlayerRepository_CreateOrUpdate(t *testing.T) {
	t.Run("Creates a profile", func(t *testing.T) {
		ctx, st := suite.NewSQL(t)

		playerRepo := NewPlayerRepository(st.SQL)

		// Given: a profile with ID and username
		profile := &entity.Profile{ID: "123", Username: "alice"}

		// When: CreateOrUpdate is called
		err := playerRepo.CreateOrUpdate(ctx, profile)

		// Then: the profile is stored
		require.NoError(t, err)

		stored, err := playerRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, "alice", stored.Username)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("Syncs the latest username", func(t *testing.T) {
		ctx, st := suite.NewSQL(t)

		playerRepo := NewPlayerRepository(st.SQL)
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Profile{ID: "123", Username: "alice"}))

		// When: the username changes, then arrives empty
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Profile{ID: "123", Username: "alice2"}))
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, &entity.Profile{ID: "123"}))

		// Then: the last known username is kept
		stored, err := playerRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, "alice2", stored.Username)
	})
}

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQL(t)

		playerRepo := NewPlayerRepository(st.SQL)

		// When: GetByID is called with non-existent ID
		profile, err := playerRepo.GetByID(ctx, "9999999")

		// Then: an ErrPlayerNotFound error should be returned
		require.ErrorIs(t, err, ErrPlayerNotFound)
		assert.Nil(t, profile)
	})
}
