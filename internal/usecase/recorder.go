package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type playerServiceDep interface {
	SyncProfile(ctx context.Context, identity entity.Identity) error
}

type historyServiceDep interface {
	SaveGame(ctx context.Context, record *entity.GameRecord) error
	GetHistory(ctx context.Context, playerID string, limit int) (*entity.History, error)
}

type statsServiceDep interface {
	RecordResult(ctx context.Context, game *entity.Game) error
	GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error)
	GetLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

// resultRecorder writes a finished two-human game to the profile, history
// and stats stores.
type resultRecorder struct {
	logger *slog.Logger
	now    func() time.Time

	playerService  playerServiceDep
	historyService historyServiceDep
	statsService   statsServiceDep
}

func newResultRecorder(
	logger *slog.Logger,
	playerService playerServiceDep,
	historyService historyServiceDep,
	statsService statsServiceDep,
) *resultRecorder {
	return &resultRecorder{
		logger:         logger,
		now:            time.Now,
		playerService:  playerService,
		historyService: historyService,
		statsService:   statsService,
	}
}

// Record runs the three writes side by side. A failed write is logged and
// never undone or retried.
func (that *resultRecorder) Record(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "Record", "gameID", game.ID)

	// the request may end before the writes do
	ctx = context.WithoutCancel(ctx)

	var (
		group errgroup.Group
		errs  [3]error
	)

	group.Go(func() error {
		for _, player := range game.Humans() {
			identity := entity.Identity{ID: player.ID, Username: player.Username}
			if err := that.playerService.SyncProfile(ctx, identity); err != nil {
				errs[0] = fmt.Errorf("failed to sync player %s: %w", player.ID, err)
				return errs[0]
			}
		}
		return nil
	})

	group.Go(func() error {
		errs[1] = that.historyService.SaveGame(ctx, entity.NewGameRecord(game, that.now()))
		return errs[1]
	})

	group.Go(func() error {
		errs[2] = that.statsService.RecordResult(ctx, game)
		return errs[2]
	})

	_ = group.Wait()

	if err := errors.Join(errs[:]...); err != nil {
		log.Error("failed to record finished game", "error", err)
		return
	}

	log.Info("finished game recorded", "status", game.Status, "winnerID", game.WinnerID)
}
