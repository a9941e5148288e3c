package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

var ErrGameAlreadyExists = errors.New("game already exists")

// SessionRepository keeps live games in memory. Each game has its own lock,
// so changes to one game are serialized while different games proceed in
// parallel. Lock order is entry then map.
type SessionRepository struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	game    *entity.Game
	removed bool
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		entries: make(map[string]*sessionEntry),
	}
}

func (that *SessionRepository) Create(ctx context.Context, game *entity.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.entries[game.ID]; ok {
		return fmt.Errorf("%w: %s", ErrGameAlreadyExists, game.ID)
	}

	that.entries[game.ID] = &sessionEntry{game: game.Clone()}

	return nil
}

// GetByID returns a copy of the current snapshot.
func (that *SessionRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, ok := that.lookup(id)
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed {
		return nil, apperror.ErrGameNotFound
	}

	return entry.game.Clone(), nil
}

// Update runs fn on a private copy of the game and commits it when fn
// succeeds. Nothing is committed on error.
func (that *SessionRepository) Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	current, _, err := that.Replace(ctx, id, func(game *entity.Game) (*entity.Game, error) {
		return nil, fn(game)
	})

	return current, err
}

// Replace works like Update, but fn may return a successor game. The
// successor is registered and the old game removed in one step, so no reader
// sees both or neither.
func (that *SessionRepository) Replace(
	ctx context.Context,
	id string,
	fn func(game *entity.Game) (*entity.Game, error),
) (*entity.Game, *entity.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	entry, ok := that.lookup(id)
	if !ok {
		return nil, nil, apperror.ErrGameNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed {
		return nil, nil, apperror.ErrGameNotFound
	}

	working := entry.game.Clone()

	successor, err := fn(working)
	if err != nil {
		return nil, nil, err
	}

	if successor == nil {
		entry.game = working
		return working.Clone(), nil, nil
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.entries[successor.ID]; exists {
		return nil, nil, fmt.Errorf("%w: %s", ErrGameAlreadyExists, successor.ID)
	}

	that.entries[successor.ID] = &sessionEntry{game: successor.Clone()}
	delete(that.entries, id)

	entry.game = working
	entry.removed = true

	return working.Clone(), successor.Clone(), nil
}

func (that *SessionRepository) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, ok := that.lookup(id)
	if !ok {
		return apperror.ErrGameNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed {
		return apperror.ErrGameNotFound
	}

	that.mu.Lock()
	delete(that.entries, id)
	that.mu.Unlock()

	entry.removed = true

	return nil
}

// Len returns the number of live games.
func (that *SessionRepository) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.entries)
}

func (that *SessionRepository) lookup(id string) (*sessionEntry, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.entries[id]

	return entry, ok
}
