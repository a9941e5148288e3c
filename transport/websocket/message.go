package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	ActionConnect   = "connect"
	ActionPlay      = "game:play"
	ActionChallenge = "game:challenge"
	ActionJoin      = "game:join"
	ActionTurn      = "game:turn"
	ActionRematch   = "game:rematch"
)

// Message is one frame in either direction.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Request struct {
	Player     *entity.Identity  `json:"player,omitempty"`
	GameID     string            `json:"game_id,omitempty"`
	Difficulty entity.Difficulty `json:"difficulty,omitempty"`
	Row        *int              `json:"row,omitempty"`
	Col        *int              `json:"col,omitempty"`
}

type Response struct {
	Player *entity.Identity `json:"player,omitempty"`
	Game   *entity.Game     `json:"game,omitempty"`
	Side   entity.Mark      `json:"side,omitempty"`
	Votes  int              `json:"votes,omitempty"`
	Needed int              `json:"needed,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func encode(action string, resp Response) ([]byte, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}

func decode(msg *Message) (*Request, error) {
	var req Request
	if len(msg.Payload) == 0 {
		return &req, nil
	}

	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &req, nil
}
