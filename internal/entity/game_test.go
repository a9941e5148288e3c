package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game := NewGame("g1", ModeDuel, DifficultyNone, 3, 4)

	assert.Equal(t, StatusOpen, game.Status)
	assert.Equal(t, 0, game.Turn)
	assert.Len(t, game.Board.Cells, 12)
	assert.Equal(t, MarkX, game.Players[0].Side)
	assert.Equal(t, MarkO, game.Players[1].Side)
	assert.True(t, game.Players[0].IsUnbound())
	assert.True(t, game.Players[1].IsUnbound())
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a move and a vote
	game := NewGame("g1", ModeDuel, DifficultyNone, 3, 3)
	game.Board.Cells[0] = MarkX
	game.RematchVotes = []string{"alice"}

	// When: the clone is mutated
	clone := game.Clone()
	clone.Board.Cells[0] = MarkO
	clone.RematchVotes[0] = "bob"
	clone.Players[0].BindHuman(Identity{ID: "carol"})

	// Then: the source game is untouched
	assert.Equal(t, MarkX, game.Board.Cells[0])
	assert.Equal(t, []string{"alice"}, game.RematchVotes)
	assert.True(t, game.Players[0].IsUnbound())
}

func TestGame_Slots(t *testing.T) {
	game := NewGame("g1", ModeSolo, DifficultyEasy, 3, 3)
	game.Players[1].BindHuman(Identity{ID: "alice", Username: "al"})
	game.Players[0].BindEnvironment()

	t.Run("SlotOf finds humans only", func(t *testing.T) {
		index, ok := game.SlotOf("alice")
		require.True(t, ok)
		assert.Equal(t, 1, index)

		_, ok = game.SlotOf("")
		assert.False(t, ok)
	})

	t.Run("Humans skips the environment", func(t *testing.T) {
		humans := game.Humans()
		require.Len(t, humans, 1)
		assert.Equal(t, "alice", humans[0].ID)
		assert.Equal(t, 1, game.RematchQuorum())
	})

	t.Run("No free slot once both are bound", func(t *testing.T) {
		_, ok := game.FreeSlot()
		assert.False(t, ok)
	})
}

func TestGame_RematchQuorum(t *testing.T) {
	game := NewGame("g1", ModeDuel, DifficultyNone, 3, 3)
	game.Players[0].BindHuman(Identity{ID: "alice"})
	game.Players[1].BindHuman(Identity{ID: "bob"})

	assert.Equal(t, 2, game.RematchQuorum())
}

func TestNewGameRecord(t *testing.T) {
	// Given: a finished duel won by bob
	game := NewGame("g1", ModeDuel, DifficultyNone, 3, 3)
	game.Players[0].BindHuman(Identity{ID: "alice"})
	game.Players[1].BindHuman(Identity{ID: "bob"})
	game.Status = StatusWon
	game.Winner = MarkO
	game.WinnerID = "bob"

	// When: it is recorded
	record := NewGameRecord(game, time.Unix(100, 0))

	// Then: both players are listed with the winner flag
	require.Len(t, record.Players, 2)
	assert.False(t, record.Players[0].IsWinner)
	assert.True(t, record.Players[1].IsWinner)
	assert.Equal(t, OutcomeLoss, record.Outcome("alice"))
	assert.Equal(t, OutcomeWin, record.Outcome("bob"))

	opponent, ok := record.Opponent("alice")
	require.True(t, ok)
	assert.Equal(t, "bob", opponent.ID)
}

func TestHeadToHead_For(t *testing.T) {
	first, second := OrderedPair("zed", "amy")
	require.Equal(t, "amy", first)
	require.Equal(t, "zed", second)

	h2h := &HeadToHead{PlayerA: first, PlayerB: second, PlayerAWin: 3, PlayerBWin: 1, Draws: 2}

	wins, losses, draws := h2h.For("zed")
	assert.Equal(t, int64(1), wins)
	assert.Equal(t, int64(3), losses)
	assert.Equal(t, int64(2), draws)
}
