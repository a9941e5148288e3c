package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/callback"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

func (that *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		that.reply(msg.Chat.ID, msgUserNotIdentified)
		return
	}

	switch msg.Command() {
	case "start":
		that.handleStart(ctx, msg)
	case "play":
		if _, err := that.send(msg.Chat.ID, msgChooseDifficulty, difficultyKeyboard()); err != nil {
			that.logger.Error("failed to send difficulty picker", "error", err)
		}
	case "challenge":
		that.handleChallenge(ctx, msg)
	case "history":
		that.handleHistory(ctx, msg)
	case "leaderboard":
		that.handleLeaderboard(ctx, msg)
	}
}

func (that *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	log := that.logger.With("method", "handleStart")

	gameID, ok := callback.JoinGameID(msg.CommandArguments())
	if !ok {
		that.reply(msg.Chat.ID, msgWelcome)
		return
	}

	joiner := identityOf(msg.From)

	game, side, err := that.gameUseCase.Join(ctx, gameID, joiner)
	if err != nil {
		log.Info("join rejected", "gameID", gameID, "error", err)
		that.reply(msg.Chat.ID, apperror.Reason(err, msgUnexpectedError))
		return
	}

	index, _ := game.SlotOf(joiner.ID)
	opponent := game.Opponent(index)
	keyboard := boardKeyboard(game)

	text := that.recordLine(ctx, joiner.ID, opponent.ID) + gameJoinedText(opponent.Username, side, game.Turn == index)

	sent, err := that.send(msg.Chat.ID, text, keyboard)
	if err != nil {
		log.Error("failed to send joiner board", "gameID", gameID, "error", err)
		return
	}

	ref := entity.MessageRef{ChatID: msg.Chat.ID, MessageID: sent.MessageID}
	if err = that.gameUseCase.AttachMessage(ctx, game.ID, joiner.ID, ref); err != nil {
		log.Error("failed to attach joiner message", "gameID", gameID, "error", err)
	}

	creatorText := that.recordLine(ctx, opponent.ID, joiner.ID) +
		opponentJoinedText(joiner.Username, opponent.Side, game.Turn == opponent.Index)

	if !opponent.Message.IsZero() {
		if err = that.edit(opponent.Message, creatorText, keyboard); err != nil {
			log.Error("failed to update creator board", "gameID", gameID, "error", err)
		}
		return
	}

	// the invite was not attached yet, so the board goes to the creator's private chat
	chatID, err := strconv.ParseInt(opponent.ID, 10, 64)
	if err != nil {
		log.Error("failed to resolve creator chat", "gameID", gameID, "playerID", opponent.ID, "error", err)
		return
	}

	sent, err = that.send(chatID, creatorText, keyboard)
	if err != nil {
		log.Error("failed to send creator board", "gameID", gameID, "error", err)
		return
	}

	ref = entity.MessageRef{ChatID: chatID, MessageID: sent.MessageID}
	if err = that.gameUseCase.AttachMessage(ctx, game.ID, opponent.ID, ref); err != nil {
		log.Error("failed to attach creator message", "gameID", gameID, "error", err)
	}
}

func (that *Bot) handleChallenge(ctx context.Context, msg *tgbotapi.Message) {
	log := that.logger.With("method", "handleChallenge")

	creator := identityOf(msg.From)

	game, err := that.gameUseCase.Challenge(ctx, creator)
	if err != nil {
		log.Error("failed to create challenge", "error", err)
		that.reply(msg.Chat.ID, apperror.Reason(err, msgUnexpectedError))
		return
	}

	index, _ := game.SlotOf(creator.ID)

	sent, err := that.send(msg.Chat.ID, gameCreatedText(game.Players[index].Side), inviteKeyboard(game.ID))
	if err != nil {
		log.Error("failed to send invite", "gameID", game.ID, "error", err)
		return
	}

	ref := entity.MessageRef{ChatID: msg.Chat.ID, MessageID: sent.MessageID}
	if err = that.gameUseCase.AttachMessage(ctx, game.ID, creator.ID, ref); err != nil {
		log.Error("failed to attach creator message", "gameID", game.ID, "error", err)
	}
}

func (that *Bot) handleHistory(ctx context.Context, msg *tgbotapi.Message) {
	player := identityOf(msg.From)

	history, err := that.playerUseCase.GetHistory(ctx, player.ID)
	if err != nil {
		that.logger.Error("failed to fetch history", "playerID", player.ID, "error", err)
		that.reply(msg.Chat.ID, msgHistoryFailed)
		return
	}

	if len(history.Games) == 0 {
		that.reply(msg.Chat.ID, msgNoGames)
		return
	}

	that.replyMarkdown(msg.Chat.ID, historyText(history, player.ID))
}

func (that *Bot) handleLeaderboard(ctx context.Context, msg *tgbotapi.Message) {
	entries, err := that.playerUseCase.GetLeaderboard(ctx)
	if err != nil {
		that.logger.Error("failed to fetch leaderboard", "error", err)
		that.reply(msg.Chat.ID, msgLeadersFailed)
		return
	}

	if len(entries) == 0 {
		that.reply(msg.Chat.ID, msgNoLeaders)
		return
	}

	that.replyMarkdown(msg.Chat.ID, leaderboardText(entries))
}

func (that *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := that.api.Send(msg); err != nil {
		that.logger.Error("failed to reply", "chatID", chatID, "error", err)
	}
}
