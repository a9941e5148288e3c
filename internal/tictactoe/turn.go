package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// IsActorsTurn reports whether the slot to move is bound to actorID.
func IsActorsTurn(game *entity.Game, actorID string) bool {
	if actorID == "" || game.Turn < 0 || game.Turn >= len(game.Players) {
		return false
	}

	player := game.Players[game.Turn]

	return player.IsHuman() && player.ID == actorID
}

// NextTurnIndex returns the next human-bound slot after the current one,
// wrapping around. Calling it on a game without humans is a programming error.
func NextTurnIndex(game *entity.Game) int {
	size := len(game.Players)
	for step := 1; step <= size; step++ {
		index := (game.Turn + step) % size
		if game.Players[index].IsHuman() {
			return index
		}
	}

	panic(fmt.Sprintf("game %s has no human-bound slot", game.ID))
}
