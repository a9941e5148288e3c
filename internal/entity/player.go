package entity

type OccupantKind string

const (
	OccupantUnbound     OccupantKind = ""
	OccupantHuman       OccupantKind = "human"
	OccupantEnvironment OccupantKind = "environment"
)

// MessageRef points at the chat message showing the board to a player.
type MessageRef struct {
	ChatID    int64 `json:"chat_id,omitempty"`
	MessageID int   `json:"message_id,omitempty"`
}

func (that MessageRef) IsZero() bool {
	return that.ChatID == 0 && that.MessageID == 0
}

// Identity is the caller as the transport knows it.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}

// Player is one of the two seats of a game.
type Player struct {
	Index    int          `json:"index"`
	Kind     OccupantKind `json:"kind,omitempty"`
	ID       string       `json:"id,omitempty"`
	Username string       `json:"username,omitempty"`
	Side     Mark         `json:"side"`
	Message  MessageRef   `json:"message,omitempty"`
}

func (that *Player) IsHuman() bool {
	return that.Kind == OccupantHuman
}

func (that *Player) IsEnvironment() bool {
	return that.Kind == OccupantEnvironment
}

func (that *Player) IsUnbound() bool {
	return that.Kind == OccupantUnbound
}

func (that *Player) BindHuman(identity Identity) {
	that.Kind = OccupantHuman
	that.ID = identity.ID
	that.Username = identity.Username
}

func (that *Player) BindEnvironment() {
	that.Kind = OccupantEnvironment
	that.ID = ""
	that.Username = ""
}
