package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

// games drives the real services without persistence.
type games struct {
	service.GameService
	service.GamePlayService
}

func (that *games) Play(ctx context.Context, player entity.Identity, difficulty entity.Difficulty) (*entity.Game, error) {
	return that.CreateGame(ctx, player, entity.ModeSolo, 3, 3, difficulty)
}

func (that *games) Challenge(ctx context.Context, player entity.Identity) (*entity.Game, error) {
	return that.CreateGame(ctx, player, entity.ModeDuel, 3, 3, entity.DifficultyNone)
}

func (that *games) Join(ctx context.Context, gameID string, player entity.Identity) (*entity.Game, entity.Mark, error) {
	return that.JoinGame(ctx, gameID, player)
}

func (that *games) MakeTurn(ctx context.Context, gameID string, player entity.Identity, row, col int) (*entity.Game, error) {
	return that.GamePlayService.MakeTurn(ctx, gameID, player.ID, row, col)
}

func (that *games) Rematch(ctx context.Context, gameID string, player entity.Identity) (*service.RematchResult, error) {
	return that.GamePlayService.Rematch(ctx, gameID, player.ID)
}

func startServer(t *testing.T) string {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := repository.NewSessionRepository()
	bot := service.NewBotService()

	server := New(logger, &games{
		GameService:     service.NewGameService(logger, sessions, bot),
		GamePlayService: service.NewGamePlayService(logger, sessions, bot),
	})

	ctx, cancel := context.WithCancel(context.Background())
	httpServer := httptest.NewServer(server.Handler(ctx))

	t.Cleanup(func() {
		cancel()
		httpServer.Close()
	})

	return "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
}

type testClient struct {
	t    *testing.T
	conn *websocket.Conn
}

func dial(t *testing.T, url, playerID string) *testClient {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	c := &testClient{t: t, conn: conn}
	c.write(ActionConnect, Request{Player: &entity.Identity{ID: playerID, Username: playerID}})

	resp := c.read(ActionConnect)
	require.Equal(t, playerID, resp.Player.ID)

	return c
}

func (that *testClient) write(action string, req Request) {
	that.t.Helper()

	payload, err := json.Marshal(req)
	require.NoError(that.t, err)
	require.NoError(that.t, that.conn.WriteJSON(Message{Action: action, Payload: payload}))
}

func (that *testClient) read(action string) Response {
	that.t.Helper()

	require.NoError(that.t, that.conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg Message
	require.NoError(that.t, that.conn.ReadJSON(&msg))
	require.Equal(that.t, action, msg.Action)

	var resp Response
	require.NoError(that.t, json.Unmarshal(msg.Payload, &resp))

	return resp
}

func intPtr(v int) *int {
	return &v
}

func TestServer_Duel(t *testing.T) {
	url := startServer(t)

	// Given: alice challenges and bob joins
	alice := dial(t, url, "alice")
	bob := dial(t, url, "bob")

	alice.write(ActionChallenge, Request{})
	created := alice.read(ActionChallenge)
	require.NotNil(t, created.Game)
	assert.Equal(t, entity.StatusOpen, created.Game.Status)

	bob.write(ActionJoin, Request{GameID: created.Game.ID})

	// Then: both players see the active game with their own side
	aliceView := alice.read(ActionJoin)
	bobView := bob.read(ActionJoin)
	assert.Equal(t, entity.StatusActive, aliceView.Game.Status)
	assert.Equal(t, aliceView.Side.Opponent(), bobView.Side)

	// When: the player to move takes the center
	first, second := alice, bob
	if aliceView.Game.Players[aliceView.Game.Turn].ID != "alice" {
		first, second = bob, alice
	}

	first.write(ActionTurn, Request{GameID: created.Game.ID, Row: intPtr(1), Col: intPtr(1)})

	// Then: both boards update
	for _, c := range []*testClient{first, second} {
		resp := c.read(ActionTurn)
		assert.Equal(t, entity.MarkX, resp.Game.Board.At(1, 1))
	}

	// And: moving out of turn is rejected only to the caller
	first.write(ActionTurn, Request{GameID: created.Game.ID, Row: intPtr(0), Col: intPtr(0)})
	assert.Equal(t, "Not your turn!", first.read(ActionTurn).Error)
}

func TestServer_Rejections(t *testing.T) {
	url := startServer(t)

	t.Run("Actions need a connection identity", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		require.NoError(t, err)
		defer conn.Close()

		c := &testClient{t: t, conn: conn}
		c.write(ActionChallenge, Request{})

		assert.Equal(t, "Connect first", c.read(ActionChallenge).Error)
	})

	t.Run("Unknown game", func(t *testing.T) {
		c := dial(t, url, "carol")
		c.write(ActionJoin, Request{GameID: "missing"})

		assert.Equal(t, "Game not found", c.read(ActionJoin).Error)
	})

	t.Run("Turn without a cell", func(t *testing.T) {
		c := dial(t, url, "dave")
		c.write(ActionTurn, Request{GameID: "missing"})

		assert.Equal(t, "Row and col are required", c.read(ActionTurn).Error)
	})

	t.Run("Unknown action", func(t *testing.T) {
		c := dial(t, url, "erin")
		c.write("game:resign", Request{})

		assert.Equal(t, "Unknown action", c.read("game:resign").Error)
	})
}

func TestServer_Solo(t *testing.T) {
	url := startServer(t)
	c := dial(t, url, "alice")

	c.write(ActionPlay, Request{Difficulty: entity.DifficultyEasy})
	resp := c.read(ActionPlay)

	require.NotNil(t, resp.Game)
	assert.Equal(t, entity.ModeSolo, resp.Game.Mode)
	assert.Equal(t, entity.StatusActive, resp.Game.Status)
	assert.Equal(t, "alice", resp.Game.Players[resp.Game.Turn].ID)
}
