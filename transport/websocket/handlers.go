package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/pkg"
)

const unexpectedError = "An unexpected error occurred. Please try again."

func (that *Server) handleConnect(_ context.Context, c *client, msg *Message) error {
	req, err := decode(msg)
	if err != nil {
		c.sendError(msg.Action, "Malformed payload")
		return err
	}

	player := entity.Identity{ID: pkg.GenerateNewSessionID()}
	if req.Player != nil && req.Player.ID != "" {
		player = *req.Player
	}

	if previous := c.identity(); previous.ID != "" && previous.ID != player.ID {
		that.unbind(c)
	}

	c.setIdentity(player)
	that.bind(player.ID, c)

	c.send(msg.Action, Response{Player: &player})

	that.logger.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handlePlay(ctx context.Context, c *client, msg *Message) error {
	req, err := decode(msg)
	if err != nil {
		c.sendError(msg.Action, "Malformed payload")
		return err
	}

	game, err := that.gameUseCase.Play(ctx, c.identity(), req.Difficulty)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	that.broadcast(game, msg.Action, gameView(game))

	return nil
}

func (that *Server) handleChallenge(ctx context.Context, c *client, msg *Message) error {
	game, err := that.gameUseCase.Challenge(ctx, c.identity())
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	that.broadcast(game, msg.Action, gameView(game))

	return nil
}

func (that *Server) handleJoin(ctx context.Context, c *client, msg *Message) error {
	req, err := decode(msg)
	if err != nil {
		c.sendError(msg.Action, "Malformed payload")
		return err
	}

	game, _, err := that.gameUseCase.Join(ctx, req.GameID, c.identity())
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	that.broadcast(game, msg.Action, gameView(game))

	return nil
}

func (that *Server) handleTurn(ctx context.Context, c *client, msg *Message) error {
	req, err := decode(msg)
	if err != nil {
		c.sendError(msg.Action, "Malformed payload")
		return err
	}

	if req.Row == nil || req.Col == nil {
		c.sendError(msg.Action, "Row and col are required")
		return nil
	}

	game, err := that.gameUseCase.MakeTurn(ctx, req.GameID, c.identity(), *req.Row, *req.Col)
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	that.broadcast(game, msg.Action, gameView(game))

	return nil
}

func (that *Server) handleRematch(ctx context.Context, c *client, msg *Message) error {
	req, err := decode(msg)
	if err != nil {
		c.sendError(msg.Action, "Malformed payload")
		return err
	}

	result, err := that.gameUseCase.Rematch(ctx, req.GameID, c.identity())
	if err != nil {
		return that.replyError(c, msg.Action, err)
	}

	if !result.Started {
		that.broadcast(result.Previous, msg.Action, func(entity.Player) Response {
			return Response{Game: result.Previous, Votes: result.Votes, Needed: result.Needed}
		})
		return nil
	}

	that.broadcast(result.Game, msg.Action, gameView(result.Game))

	return nil
}

// replyError reports domain rejections to the caller and returns anything else.
func (that *Server) replyError(c *client, action string, err error) error {
	if apperror.KindOf(err) != apperror.KindUnknown {
		c.sendError(action, apperror.Reason(err, unexpectedError))
		return nil
	}

	c.sendError(action, unexpectedError)

	return fmt.Errorf("failed to handle %s: %w", action, err)
}

func gameView(game *entity.Game) func(player entity.Player) Response {
	return func(player entity.Player) Response {
		return Response{Game: game, Side: player.Side}
	}
}
