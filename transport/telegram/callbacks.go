package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/callback"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

func (that *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	log := that.logger.With("method", "handleCallback")

	if query.From == nil {
		that.answer(query.ID, msgUserNotIdentified, true)
		return
	}

	if query.Message == nil || query.Message.Chat == nil {
		that.answer(query.ID, msgChatNotFound, true)
		return
	}

	action, err := callback.Parse(query.Data)
	if err != nil {
		log.Warn("unexpected callback data", "data", query.Data, "error", err)
		that.answer(query.ID, msgUnexpectedError, true)
		return
	}

	player := identityOf(query.From)
	ref := entity.MessageRef{ChatID: query.Message.Chat.ID, MessageID: query.Message.MessageID}

	switch action.Kind {
	case callback.KindDifficulty:
		err = that.onDifficulty(ctx, query, player, action.Difficulty)
	case callback.KindMove:
		err = that.onMove(ctx, query, player, ref, action)
	case callback.KindRematch:
		err = that.onRematch(ctx, query, player, ref, action.GameID)
	}

	if err == nil {
		return
	}

	if apperror.KindOf(err) != apperror.KindUnknown {
		that.answer(query.ID, apperror.Reason(err, msgUnexpectedError), true)
		return
	}

	log.Error("failed to handle callback", "data", query.Data, "error", err)
	that.answer(query.ID, msgUnexpectedError, true)
}

func (that *Bot) onDifficulty(ctx context.Context, query *tgbotapi.CallbackQuery, player entity.Identity, difficulty entity.Difficulty) error {
	game, err := that.gameUseCase.Play(ctx, player, difficulty)
	if err != nil {
		return err
	}

	index, _ := game.SlotOf(player.ID)
	chatID := query.Message.Chat.ID

	sent, err := that.send(chatID, youAreText(game.Players[index].Side), boardKeyboard(game))
	if err != nil {
		return err
	}

	ref := entity.MessageRef{ChatID: chatID, MessageID: sent.MessageID}
	if err = that.gameUseCase.AttachMessage(ctx, game.ID, player.ID, ref); err != nil {
		that.logger.Error("failed to attach message", "gameID", game.ID, "error", err)
	}

	that.answer(query.ID, "", false)

	return nil
}

func (that *Bot) onMove(ctx context.Context, query *tgbotapi.CallbackQuery, player entity.Identity, ref entity.MessageRef, action callback.Action) error {
	game, err := that.gameUseCase.MakeTurn(ctx, action.GameID, player, action.Row, action.Col)
	if err != nil {
		return err
	}

	keyboard := gameKeyboard(game)

	if game.IsSolo() {
		index, _ := game.SlotOf(player.ID)
		if err = that.edit(ref, soloStatus(game, &game.Players[index]), keyboard); err != nil {
			return err
		}

		that.answer(query.ID, "", false)
		return nil
	}

	that.updateDuelBoards(ctx, game, duelStatus(game), keyboard)
	that.answer(query.ID, "", false)

	return nil
}

func (that *Bot) onRematch(ctx context.Context, query *tgbotapi.CallbackQuery, player entity.Identity, ref entity.MessageRef, gameID string) error {
	result, err := that.gameUseCase.Rematch(ctx, gameID, player)
	if err != nil {
		return err
	}

	if !result.Started {
		that.showVotes(result)
		that.answer(query.ID, msgRematchRequested, false)
		return nil
	}

	game := result.Game

	if game.IsSolo() {
		index, _ := game.SlotOf(player.ID)
		if err = that.edit(ref, rematchWithText(game.Players[index].Side), boardKeyboard(game)); err != nil {
			return err
		}

		if game.Players[index].Message.IsZero() {
			if err = that.gameUseCase.AttachMessage(ctx, game.ID, player.ID, ref); err != nil {
				that.logger.Error("failed to attach message", "gameID", game.ID, "error", err)
			}
		}

		that.answer(query.ID, "", false)
		return nil
	}

	keyboard := boardKeyboard(game)
	for _, p := range game.Humans() {
		opponent := game.Opponent(p.Index)
		text := that.recordLine(ctx, p.ID, opponent.ID) + rematchStartedText(opponent.Username, p.Side, game.Turn == p.Index)

		if err = that.edit(p.Message, text, keyboard); err != nil {
			that.logger.Error("failed to update rematch board", "gameID", game.ID, "playerID", p.ID, "error", err)
		}
	}

	that.answer(query.ID, msgRematchStarted, false)

	return nil
}

func (that *Bot) showVotes(result *service.RematchResult) {
	keyboard := finishedKeyboard(result.Previous, result.Votes, result.Needed)

	for _, p := range result.Previous.Humans() {
		if err := that.editMarkup(p.Message, keyboard); err != nil {
			that.logger.Error("failed to update rematch button", "gameID", result.Previous.ID, "playerID", p.ID, "error", err)
		}
	}
}

// updateDuelBoards edits the board of every human of the duel. A failed edit
// for one player does not stop the other.
func (that *Bot) updateDuelBoards(ctx context.Context, game *entity.Game, status string, keyboard tgbotapi.InlineKeyboardMarkup) {
	var errs []error

	for _, p := range game.Humans() {
		opponent := game.Opponent(p.Index)
		text := that.recordLine(ctx, p.ID, opponent.ID) + opponentLine("vs ", opponent.Username) + status

		if err := that.edit(p.Message, text, keyboard); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		that.logger.Error("failed to update board", "gameID", game.ID, "error", err)
	}
}

func (that *Bot) handleInlineQuery(_ context.Context, query *tgbotapi.InlineQuery) {
	gameID, ok := callback.InviteGameID(query.Query)
	if !ok {
		return
	}

	link := "https://t.me/" + that.username + "?start=" + callback.Join(gameID)
	article := tgbotapi.NewInlineQueryResultArticle(gameID, inviteArticleTitle, inviteText(link))

	cfg := tgbotapi.InlineConfig{
		InlineQueryID: query.ID,
		Results:       []any{article},
		IsPersonal:    true,
	}

	if _, err := that.api.Request(cfg); err != nil {
		that.logger.Error("failed to answer inline query", "error", err)
	}
}
