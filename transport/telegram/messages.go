package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	msgUserNotIdentified = "Could not identify user"
	msgChatNotFound      = "Not found"
	msgUnexpectedError   = "An unexpected error occurred. Please try again."

	msgWelcome = "You ready for a game of Tic-Tac_Toe?\n" +
		"Type /play to start a game against the Master.\n" +
		"Type /challenge to challenge your friends!"
	msgChooseDifficulty = "Choose difficulty:"

	msgYourTurn           = "Your turn!"
	msgWaitingForOpponent = "Waiting for opponent..."
	msgYouWin             = "You win!"
	msgMasterWins         = "The master wins!"
	msgDraw               = "It's a tie."

	msgRematchRequested = "Rematch requested! Waiting for opponent..."
	msgRematchStarted   = "Rematch started!"

	msgNoGames         = "You haven't played any games yet. Type /challenge to start one!"
	msgNoLeaders       = "No games have been won yet."
	msgHistoryFailed   = "Could not load your history. Please try again later."
	msgLeadersFailed   = "Could not load the leaderboard. Please try again later."
	inviteArticleTitle = "TicTacToe Invite"
)

var symbols = map[entity.Mark]string{
	entity.MarkX: "❌",
	entity.MarkO: "⭕",
}

var (
	outcomeEmoji = map[entity.Outcome]string{
		entity.OutcomeWin:  "✅",
		entity.OutcomeLoss: "❌",
		entity.OutcomeDraw: "➖",
	}
	medals = []string{"🥇", "🥈", "🥉"}
)

func symbol(mark entity.Mark) string {
	if s, ok := symbols[mark]; ok {
		return s
	}
	return string(mark)
}

func opponentLine(prefix, username string) string {
	if username == "" {
		return ""
	}
	return fmt.Sprintf("%s@%s\n", prefix, username)
}

func turnText(isTurn bool) string {
	if isTurn {
		return msgYourTurn
	}
	return msgWaitingForOpponent
}

func gameCreatedText(mark entity.Mark) string {
	return fmt.Sprintf("Game has been created. You are %s. Please share the invite link.", symbol(mark))
}

func gameJoinedText(opponent string, mark entity.Mark, isTurn bool) string {
	return fmt.Sprintf("%sGame joined! You are %s. %s", opponentLine("vs ", opponent), symbol(mark), turnText(isTurn))
}

func opponentJoinedText(opponent string, mark entity.Mark, isTurn bool) string {
	wait := "Waiting for opponent..."
	if isTurn {
		wait = "It's your turn!"
	}
	return fmt.Sprintf("%sYour opponent joined. You are %s. %s", opponentLine("Opponent: ", opponent), symbol(mark), wait)
}

func youAreText(mark entity.Mark) string {
	return "You are " + symbol(mark)
}

func yourTurnText(mark entity.Mark) string {
	return "Your turn! You are " + symbol(mark)
}

func waitingForText(mark entity.Mark) string {
	return "Waiting for " + symbol(mark)
}

func winsText(mark entity.Mark) string {
	return symbol(mark) + " wins!"
}

func rematchWithText(mark entity.Mark) string {
	return "Rematch! You are " + symbol(mark)
}

func rematchStartedText(opponent string, mark entity.Mark, isTurn bool) string {
	return fmt.Sprintf("%sRematch started! You are %s. %s", opponentLine("vs ", opponent), symbol(mark), turnText(isTurn))
}

func inviteText(link string) string {
	return fmt.Sprintf("Join my Tic Tac Toe game here: %s!", link)
}

func recordText(h2h *entity.HeadToHead, playerID string) string {
	if h2h == nil {
		return "Record: 0-0-0 (W-L-D)"
	}

	wins, losses, draws := h2h.For(playerID)

	return fmt.Sprintf("Record: %d-%d-%d (W-L-D)", wins, losses, draws)
}

// soloStatus describes a solo game from the human's side.
func soloStatus(game *entity.Game, human *entity.Player) string {
	switch {
	case game.Status == entity.StatusWon && game.Winner == human.Side:
		return msgYouWin
	case game.Status == entity.StatusWon:
		return msgMasterWins
	case game.Status == entity.StatusDrawn:
		return msgDraw
	default:
		return yourTurnText(human.Side)
	}
}

func duelStatus(game *entity.Game) string {
	switch game.Status {
	case entity.StatusWon:
		return winsText(game.Winner)
	case entity.StatusDrawn:
		return msgDraw
	default:
		return waitingForText(game.Players[game.Turn].Side)
	}
}

func historyText(history *entity.History, playerID string) string {
	var b strings.Builder

	b.WriteString("📊 *Your Game History*\n\n")
	fmt.Fprintf(&b, "Wins: %d | Losses: %d | Draws: %d\n\n", history.Wins, history.Losses, history.Draws)
	b.WriteString("*Recent games:*\n")

	for _, record := range history.Games {
		opponent := "unknown"
		if player, ok := record.Opponent(playerID); ok {
			opponent = player.ID
			if player.Username != "" {
				opponent = "@" + player.Username
			}
		}

		fmt.Fprintf(&b, "%s 👤 vs %s • %s\n",
			outcomeEmoji[record.Outcome(playerID)], escape(opponent), record.CompletedAt.UTC().Format(time.DateOnly))
	}

	return b.String()
}

func leaderboardText(entries []entity.LeaderboardEntry) string {
	var b strings.Builder

	b.WriteString("🏆 *Leaderboard*\n\n")

	for i, entry := range entries {
		place := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			place = medals[i]
		}

		name := entry.PlayerID
		if entry.Username != "" {
			name = "@" + entry.Username
		}

		fmt.Fprintf(&b, "%s %s: %d wins\n", place, escape(name), entry.Wins)
	}

	return b.String()
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
