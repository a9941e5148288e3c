package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type Handlers interface {
	Ping(w http.ResponseWriter, _ *http.Request)

	Leaderboard(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	HeadToHead(w http.ResponseWriter, r *http.Request)
}

type playerUseCase interface {
	GetHistory(ctx context.Context, playerID string) (*entity.History, error)
	GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type gameUseCase interface {
	GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error)
}

type handlers struct {
	logger        *slog.Logger
	playerUseCase playerUseCase
	gameUseCase   gameUseCase
}

func NewHandlers(logger *slog.Logger, playerUseCase playerUseCase, gameUseCase gameUseCase) Handlers {
	return &handlers{
		logger:        logger,
		playerUseCase: playerUseCase,
		gameUseCase:   gameUseCase,
	}
}

func (that *handlers) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := that.playerUseCase.GetLeaderboard(r.Context())
	if err != nil {
		that.writeError(w, "Leaderboard", err)
		return
	}

	if entries == nil {
		entries = []entity.LeaderboardEntry{}
	}

	that.writeJSON(w, http.StatusOK, entries)
}

func (that *handlers) History(w http.ResponseWriter, r *http.Request) {
	history, err := that.playerUseCase.GetHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "History", err)
		return
	}

	that.writeJSON(w, http.StatusOK, history)
}

func (that *handlers) HeadToHead(w http.ResponseWriter, r *http.Request) {
	player, opponent := r.PathValue("id"), r.PathValue("opponent")
	if player == opponent {
		http.Error(w, "players must differ", http.StatusBadRequest)
		return
	}

	h2h, err := that.gameUseCase.GetHeadToHead(r.Context(), player, opponent)
	if err != nil {
		that.writeError(w, "HeadToHead", err)
		return
	}

	wins, losses, draws := h2h.For(player)
	that.writeJSON(w, http.StatusOK, map[string]any{
		"player":   player,
		"opponent": opponent,
		"wins":     wins,
		"losses":   losses,
		"draws":    draws,
		"total":    h2h.Total,
	})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
	}

	http.Error(w, apperror.Reason(err, http.StatusText(status)), status)
}

func statusOf(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindInvalidInput:
		return http.StatusBadRequest
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindInvalidState, apperror.KindOccupied:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
