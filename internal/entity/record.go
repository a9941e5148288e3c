package entity

import "time"

// GameRecord is a finished two-human game as it is stored.
type GameRecord struct {
	ID          string         `json:"id"`
	Mode        Mode           `json:"mode"`
	Board       Board          `json:"board"`
	WinnerID    string         `json:"winner_id,omitempty"`
	Status      Status         `json:"status"`
	Players     []RecordPlayer `json:"players"`
	CompletedAt time.Time      `json:"completed_at"`
}

type RecordPlayer struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Side     Mark   `json:"side"`
	IsWinner bool   `json:"is_winner"`
}

// NewGameRecord snapshots a finished game.
func NewGameRecord(game *Game, completedAt time.Time) *GameRecord {
	record := &GameRecord{
		ID:          game.ID,
		Mode:        game.Mode,
		Board:       game.Board.Clone(),
		WinnerID:    game.WinnerID,
		Status:      game.Status,
		CompletedAt: completedAt,
	}

	for _, player := range game.Humans() {
		record.Players = append(record.Players, RecordPlayer{
			ID:       player.ID,
			Username: player.Username,
			Side:     player.Side,
			IsWinner: game.WinnerID != "" && game.WinnerID == player.ID,
		})
	}

	return record
}

// Outcome reports the result of the record from a player's point of view.
func (that *GameRecord) Outcome(playerID string) Outcome {
	switch {
	case that.Status == StatusDrawn || that.WinnerID == "":
		return OutcomeDraw
	case that.WinnerID == playerID:
		return OutcomeWin
	default:
		return OutcomeLoss
	}
}

// Opponent returns the other participant of the record.
func (that *GameRecord) Opponent(playerID string) (RecordPlayer, bool) {
	for _, player := range that.Players {
		if player.ID != playerID {
			return player, true
		}
	}

	return RecordPlayer{}, false
}

type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
	OutcomeDraw Outcome = "D"
)

type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// History is the recent games of a player with totals over all of them.
type History struct {
	Games  []*GameRecord `json:"games"`
	Wins   int           `json:"wins"`
	Losses int           `json:"losses"`
	Draws  int           `json:"draws"`
}

// HeadToHead is the record between two players, keyed by the ordered pair.
type HeadToHead struct {
	PlayerA    string `json:"player_a"`
	PlayerB    string `json:"player_b"`
	PlayerAWin int64  `json:"player_a_wins"`
	PlayerBWin int64  `json:"player_b_wins"`
	Draws      int64  `json:"draws"`
	Total      int64  `json:"total_games"`
}

// OrderedPair returns the two ids in lexicographic order.
func OrderedPair(first, second string) (string, string) {
	if first <= second {
		return first, second
	}
	return second, first
}

// For returns wins, losses and draws from the given player's side.
func (that *HeadToHead) For(playerID string) (int64, int64, int64) {
	if playerID == that.PlayerA {
		return that.PlayerAWin, that.PlayerBWin, that.Draws
	}
	return that.PlayerBWin, that.PlayerAWin, that.Draws
}

type LeaderboardEntry struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username,omitempty"`
	Wins     int64  `json:"wins"`
}
