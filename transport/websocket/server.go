package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	Play(ctx context.Context, player entity.Identity, difficulty entity.Difficulty) (*entity.Game, error)
	Challenge(ctx context.Context, player entity.Identity) (*entity.Game, error)
	Join(ctx context.Context, gameID string, player entity.Identity) (*entity.Game, entity.Mark, error)
	MakeTurn(ctx context.Context, gameID string, player entity.Identity, row, col int) (*entity.Game, error)
	Rematch(ctx context.Context, gameID string, player entity.Identity) (*service.RematchResult, error)
}

type handlerFunc func(ctx context.Context, c *client, msg *Message) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc

	connectionsMutex sync.RWMutex
	connections      map[string]*client
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		handlers:    make(map[string]handlerFunc),
		connections: make(map[string]*client),
	}

	server.handlers[ActionConnect] = server.handleConnect
	server.handlers[ActionPlay] = server.handlePlay
	server.handlers[ActionChallenge] = server.handleChallenge
	server.handlers[ActionJoin] = server.handleJoin
	server.handlers[ActionTurn] = server.handleTurn
	server.handlers[ActionRematch] = server.handleRematch

	return server
}

func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start serves websocket clients until ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(that, conn)

	log.Info("WebSocket connection established")

	go c.writePump()
	c.readPump(ctx)
}

func (that *Server) dispatch(ctx context.Context, c *client, msg *Message) {
	log := that.logger.With("method", "dispatch", "action", msg.Action)

	handler, ok := that.handlers[msg.Action]
	if !ok {
		c.sendError(msg.Action, "Unknown action")
		return
	}

	if msg.Action != ActionConnect && c.identity().ID == "" {
		c.sendError(msg.Action, "Connect first")
		return
	}

	if err := handler(ctx, c, msg); err != nil {
		log.Error("error processing message", "error", err)
	}
}

func (that *Server) bind(playerID string, c *client) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	that.connections[playerID] = c
}

func (that *Server) unbind(c *client) {
	that.connectionsMutex.Lock()
	defer that.connectionsMutex.Unlock()

	playerID := c.identity().ID
	if current, ok := that.connections[playerID]; ok && current == c {
		delete(that.connections, playerID)
	}
}

// broadcast sends the response to every connected human of the game.
func (that *Server) broadcast(game *entity.Game, action string, build func(player entity.Player) Response) {
	for _, player := range game.Humans() {
		that.connectionsMutex.RLock()
		c, ok := that.connections[player.ID]
		that.connectionsMutex.RUnlock()

		if !ok {
			that.logger.Debug("connection not found for player", "playerID", player.ID)
			continue
		}

		c.send(action, build(player))
	}
}
