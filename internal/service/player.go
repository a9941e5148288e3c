package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type PlayerService interface {
	SyncProfile(ctx context.Context, identity entity.Identity) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}

type playerService struct {
	playerRepo playerRepo
}

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

// SyncProfile creates the profile on first sight and keeps the username fresh.
func (that *playerService) SyncProfile(ctx context.Context, identity entity.Identity) error {
	profile := &entity.Profile{ID: identity.ID, Username: identity.Username}
	if err := that.playerRepo.CreateOrUpdate(ctx, profile); err != nil {
		return fmt.Errorf("sync player %w", err)
	}

	return nil
}

func (that *playerService) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player by id %w", err)
	}

	return existingPlayer, nil
}
