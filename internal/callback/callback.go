// Package callback encodes and decodes the data carried by telegram buttons,
// deep links and inline queries.
package callback

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	PrefixJoin       = "join_"
	PrefixMove       = "move:"
	PrefixDifficulty = "difficulty:"
	PrefixRematch    = "rematch:"
	PrefixInvite     = "invite_"
)

// MaxDataLen is the telegram limit for callback data in bytes.
const MaxDataLen = 64

var (
	ErrUnknownAction = errors.New("unknown callback action")
	ErrMalformed     = errors.New("malformed callback data")
)

type Kind int

const (
	KindUnknown Kind = iota
	KindMove
	KindRematch
	KindDifficulty
)

// Action is decoded callback data.
type Action struct {
	Kind       Kind
	GameID     string
	Row        int
	Col        int
	Difficulty entity.Difficulty
}

func Move(gameID string, row, col int) string {
	return fmt.Sprintf("%s%s:%d:%d", PrefixMove, gameID, row, col)
}

func Rematch(gameID string) string {
	return PrefixRematch + gameID
}

func Difficulty(difficulty entity.Difficulty) string {
	return PrefixDifficulty + string(difficulty)
}

func Join(gameID string) string {
	return PrefixJoin + gameID
}

func Invite(gameID string) string {
	return PrefixInvite + gameID
}

// Parse decodes button data.
func Parse(data string) (Action, error) {
	switch {
	case strings.HasPrefix(data, PrefixMove):
		return parseMove(strings.TrimPrefix(data, PrefixMove))

	case strings.HasPrefix(data, PrefixRematch):
		gameID := strings.TrimPrefix(data, PrefixRematch)
		if gameID == "" {
			return Action{}, fmt.Errorf("%w: %q", ErrMalformed, data)
		}
		return Action{Kind: KindRematch, GameID: gameID}, nil

	case strings.HasPrefix(data, PrefixDifficulty):
		difficulty := entity.Difficulty(strings.TrimPrefix(data, PrefixDifficulty))
		if difficulty != entity.DifficultyEasy && difficulty != entity.DifficultyHard {
			return Action{}, fmt.Errorf("%w: %q", ErrMalformed, data)
		}
		return Action{Kind: KindDifficulty, Difficulty: difficulty}, nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
}

func parseMove(payload string) (Action, error) {
	parts := strings.Split(payload, ":")
	if len(parts) != 3 || parts[0] == "" {
		return Action{}, fmt.Errorf("%w: %q", ErrMalformed, payload)
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return Action{}, fmt.Errorf("%w: row: %w", ErrMalformed, err)
	}

	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return Action{}, fmt.Errorf("%w: col: %w", ErrMalformed, err)
	}

	return Action{Kind: KindMove, GameID: parts[0], Row: row, Col: col}, nil
}

// JoinGameID extracts the game id from a /start payload.
func JoinGameID(payload string) (string, bool) {
	return trimID(payload, PrefixJoin)
}

// InviteGameID extracts the game id from an inline query.
func InviteGameID(query string) (string, bool) {
	return trimID(query, PrefixInvite)
}

func trimID(s, prefix string) (string, bool) {
	id, ok := strings.CutPrefix(strings.TrimSpace(s), prefix)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
