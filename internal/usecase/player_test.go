package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-bot/mocks/usecase"
)

func TestPlayerUseCase_GetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Asks for the last ten games", func(t *testing.T) {
		// Given: a history service holding alice's games
		mockHistory := mockedUseCase.NewMockhistoryServiceDep(t)
		useCase := NewPlayerUseCase(mockHistory, mockedUseCase.NewMockstatsServiceDep(t))

		expected := &entity.History{Wins: 3, Losses: 1}
		mockHistory.EXPECT().GetHistory(mock.Anything, "alice", HistoryLimit).Return(expected, nil).Once()

		// When: GetHistory is called
		history, err := useCase.GetHistory(ctx, "alice")

		// Then: the service result is returned
		require.NoError(t, err)
		assert.Equal(t, expected, history)
	})

	t.Run("Wraps storage errors", func(t *testing.T) {
		mockHistory := mockedUseCase.NewMockhistoryServiceDep(t)
		useCase := NewPlayerUseCase(mockHistory, mockedUseCase.NewMockstatsServiceDep(t))

		mockHistory.EXPECT().
			GetHistory(mock.Anything, "alice", HistoryLimit).
			Return((*entity.History)(nil), errStorageIsBad).
			Once()

		history, err := useCase.GetHistory(ctx, "alice")

		require.ErrorIs(t, err, errStorageIsBad)
		assert.Nil(t, history)
	})
}

func TestPlayerUseCase_GetLeaderboard(t *testing.T) {
	ctx := context.Background()

	mockStats := mockedUseCase.NewMockstatsServiceDep(t)
	useCase := NewPlayerUseCase(mockedUseCase.NewMockhistoryServiceDep(t), mockStats)

	expected := []entity.LeaderboardEntry{{PlayerID: "alice", Username: "al", Wins: 5}}
	mockStats.EXPECT().GetLeaderboard(mock.Anything, LeaderboardLimit).Return(expected, nil).Once()

	entries, err := useCase.GetLeaderboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}
