package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rocketscienceinc/tictactoe-bot/internal/callback"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const emptyCell = "⬜"

func boardKeyboard(game *entity.Game) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, game.Board.Rows+1)

	for r := 0; r < game.Board.Rows; r++ {
		row := make([]tgbotapi.InlineKeyboardButton, 0, game.Board.Cols)
		for c := 0; c < game.Board.Cols; c++ {
			label := emptyCell
			if mark := game.Board.At(r, c); mark != entity.EmptyCell {
				label = symbol(mark)
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, callback.Move(game.ID, r, c)))
		}
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// finishedKeyboard is the final board with a rematch button showing the vote count.
func finishedKeyboard(game *entity.Game, votes, needed int) tgbotapi.InlineKeyboardMarkup {
	keyboard := boardKeyboard(game)

	label := "Rematch"
	if !game.IsSolo() {
		label = fmt.Sprintf("Rematch (%d/%d)", votes, needed)
	}

	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, callback.Rematch(game.ID))))

	return keyboard
}

func gameKeyboard(game *entity.Game) tgbotapi.InlineKeyboardMarkup {
	if game.IsFinished() {
		return finishedKeyboard(game, len(game.RematchVotes), game.RematchQuorum())
	}
	return boardKeyboard(game)
}

func difficultyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Easy 🟢", callback.Difficulty(entity.DifficultyEasy)),
		tgbotapi.NewInlineKeyboardButtonData("Hard 🔴", callback.Difficulty(entity.DifficultyHard)),
	))
}

func inviteKeyboard(gameID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonSwitch("Click to join!", callback.Invite(gameID)),
	))
}
