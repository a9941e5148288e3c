package apperror

import "errors"

// Kind classifies a rejected request.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidState
	KindForbidden
	KindOccupied
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindForbidden:
		return "forbidden"
	case KindOccupied:
		return "occupied"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is a domain rejection. Reason is shown to the player as is.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

func newError(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

var (
	ErrGameNotFound = newError(KindNotFound, "Game not found")

	ErrGameInProgress = newError(KindInvalidState, "Game is already in progress")
	ErrGameFinished   = newError(KindInvalidState, "Game already ended!")
	ErrGameNotStarted = newError(KindInvalidState, "Game is not started")
	ErrGameFull       = newError(KindInvalidState, "Game is full")
	ErrGameNotOver    = newError(KindInvalidState, "Game is still in progress")

	ErrNotYourTurn  = newError(KindForbidden, "Not your turn!")
	ErrOwnGame      = newError(KindForbidden, "Can't join your own game")
	ErrNotInGame    = newError(KindForbidden, "You are not in this game")
	ErrAlreadyVoted = newError(KindForbidden, "Rematch already requested")

	ErrCellOccupied = newError(KindOccupied, "Cell already taken! Pick another empty cell")

	ErrInvalidCell        = newError(KindInvalidInput, "Cell is out of the board")
	ErrInvalidDimensions  = newError(KindInvalidInput, "Board dimensions must be positive")
	ErrDifficultyRequired = newError(KindInvalidInput, "Difficulty is required for a game against the Master")
	ErrDifficultyTooLarge = newError(KindInvalidInput, "Hard difficulty is only available on small boards")
	ErrInvalidMode        = newError(KindInvalidInput, "Unknown game mode")
	ErrInvalidPlayer      = newError(KindInvalidInput, "Could not identify user")
)

// KindOf reports the kind of the first domain rejection in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindUnknown
}

// Reason returns the player-facing reason, or fallback for non-domain errors.
func Reason(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Reason
	}

	return fallback
}
