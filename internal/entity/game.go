package entity

import "slices"

type Status string

const (
	StatusOpen   Status = "open"
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusDrawn  Status = "drawn"
)

type Mode string

const (
	ModeSolo Mode = "solo"
	ModeDuel Mode = "duel"
)

type Difficulty string

const (
	DifficultyNone Difficulty = ""
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// SlotSides is fixed: slot 0 plays X and moves first.
var SlotSides = [2]Mark{MarkX, MarkO}

type Game struct {
	ID           string     `json:"id"`
	Board        Board      `json:"board"`
	Turn         int        `json:"turn"`
	Status       Status     `json:"status"`
	Mode         Mode       `json:"mode"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	Winner       Mark       `json:"winner,omitempty"`
	WinnerID     string     `json:"winner_id,omitempty"`
	RematchVotes []string   `json:"rematch_votes,omitempty"`
	Players      [2]Player  `json:"players"`
}

func NewGame(id string, mode Mode, difficulty Difficulty, rows, cols int) *Game {
	game := &Game{
		ID:         id,
		Board:      NewBoard(rows, cols),
		Turn:       0,
		Status:     StatusOpen,
		Mode:       mode,
		Difficulty: difficulty,
	}

	for i := range game.Players {
		game.Players[i] = Player{Index: i, Side: SlotSides[i]}
	}

	return game
}

// Clone returns a deep copy safe to mutate.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()
	clone.RematchVotes = slices.Clone(that.RematchVotes)

	return &clone
}

func (that *Game) IsOpen() bool {
	return that.Status == StatusOpen
}

func (that *Game) IsActive() bool {
	return that.Status == StatusActive
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that *Game) IsSolo() bool {
	return that.Mode == ModeSolo
}

// SlotOf returns the slot index held by the human with the given id.
func (that *Game) SlotOf(playerID string) (int, bool) {
	if playerID == "" {
		return -1, false
	}

	for i, player := range that.Players {
		if player.IsHuman() && player.ID == playerID {
			return i, true
		}
	}

	return -1, false
}

func (that *Game) HasPlayer(playerID string) bool {
	_, ok := that.SlotOf(playerID)
	return ok
}

// Humans returns the human-bound slots in index order.
func (that *Game) Humans() []Player {
	humans := make([]Player, 0, len(that.Players))
	for _, player := range that.Players {
		if player.IsHuman() {
			humans = append(humans, player)
		}
	}

	return humans
}

// FreeSlot returns the first unbound slot index.
func (that *Game) FreeSlot() (int, bool) {
	for i, player := range that.Players {
		if player.IsUnbound() {
			return i, true
		}
	}

	return -1, false
}

// Opponent returns the slot facing the given one.
func (that *Game) Opponent(index int) *Player {
	return &that.Players[1-index]
}

func (that *Game) HasVoted(playerID string) bool {
	return slices.Contains(that.RematchVotes, playerID)
}

// RematchQuorum is a strict majority of the humans in the session.
func (that *Game) RematchQuorum() int {
	return len(that.Humans())/2 + 1
}
