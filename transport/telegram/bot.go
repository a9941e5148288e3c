package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

type gameUseCase interface {
	Play(ctx context.Context, player entity.Identity, difficulty entity.Difficulty) (*entity.Game, error)
	Challenge(ctx context.Context, player entity.Identity) (*entity.Game, error)
	Join(ctx context.Context, gameID string, player entity.Identity) (*entity.Game, entity.Mark, error)
	MakeTurn(ctx context.Context, gameID string, player entity.Identity, row, col int) (*entity.Game, error)
	Rematch(ctx context.Context, gameID string, player entity.Identity) (*service.RematchResult, error)
	AttachMessage(ctx context.Context, gameID, playerID string, ref entity.MessageRef) error
	GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error)
}

type playerUseCase interface {
	GetHistory(ctx context.Context, playerID string) (*entity.History, error)
	GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

// sender is the part of the bot api the handlers talk to.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	logger   *slog.Logger
	api      sender
	username string

	gameUseCase   gameUseCase
	playerUseCase playerUseCase
}

func New(logger *slog.Logger, api sender, username string, gameUseCase gameUseCase, playerUseCase playerUseCase) *Bot {
	return &Bot{
		logger:        logger.With("component", "telegram"),
		api:           api,
		username:      username,
		gameUseCase:   gameUseCase,
		playerUseCase: playerUseCase,
	}
}

// Connect authorizes the token against the bot api.
func Connect(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	return api, nil
}

// Start long-polls updates until ctx is done. Each update is handled on its own goroutine.
func Start(ctx context.Context, api *tgbotapi.BotAPI, timeout int, bot *Bot) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = timeout

	updates := api.GetUpdatesChan(cfg)
	defer api.StopReceivingUpdates()

	bot.logger.Info("telegram bot authorized", "username", api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go bot.HandleUpdate(ctx, update)
		}
	}
}

func (that *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			that.logger.Error("recovered from panic in update handler", "updateID", update.UpdateID, "panic", r)
		}
	}()

	switch {
	case update.Message != nil && update.Message.IsCommand():
		that.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		that.handleCallback(ctx, update.CallbackQuery)
	case update.InlineQuery != nil:
		that.handleInlineQuery(ctx, update.InlineQuery)
	}
}

func identityOf(user *tgbotapi.User) entity.Identity {
	return entity.Identity{
		ID:       strconv.FormatInt(user.ID, 10),
		Username: user.UserName,
	}
}

func (that *Bot) send(chatID int64, text string, markup any) (tgbotapi.Message, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	sent, err := that.api.Send(msg)
	if err != nil {
		return tgbotapi.Message{}, fmt.Errorf("failed to send message: %w", err)
	}

	return sent, nil
}

func (that *Bot) reply(chatID int64, text string) {
	if _, err := that.send(chatID, text, nil); err != nil {
		that.logger.Error("failed to reply", "chatID", chatID, "error", err)
	}
}

func (that *Bot) edit(ref entity.MessageRef, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	if ref.IsZero() {
		return nil
	}

	if _, err := that.api.Request(tgbotapi.NewEditMessageTextAndMarkup(ref.ChatID, ref.MessageID, text, markup)); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}

	return nil
}

func (that *Bot) editMarkup(ref entity.MessageRef, markup tgbotapi.InlineKeyboardMarkup) error {
	if ref.IsZero() {
		return nil
	}

	if _, err := that.api.Request(tgbotapi.NewEditMessageReplyMarkup(ref.ChatID, ref.MessageID, markup)); err != nil {
		return fmt.Errorf("failed to edit markup: %w", err)
	}

	return nil
}

func (that *Bot) answer(queryID, text string, alert bool) {
	cfg := tgbotapi.NewCallback(queryID, text)
	cfg.ShowAlert = alert

	if _, err := that.api.Request(cfg); err != nil {
		that.logger.Error("failed to answer callback", "error", err)
	}
}

// recordLine renders the head-to-head line or nothing when stats are unavailable.
func (that *Bot) recordLine(ctx context.Context, playerID, opponentID string) string {
	if playerID == "" || opponentID == "" {
		return ""
	}

	h2h, err := that.gameUseCase.GetHeadToHead(ctx, playerID, opponentID)
	if err != nil {
		that.logger.Warn("failed to get head-to-head", "playerID", playerID, "error", err)
		return ""
	}

	return recordText(h2h, playerID) + "\n\n"
}
