package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-bot/internal/config"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
	"github.com/rocketscienceinc/tictactoe-bot/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-bot/transport/rest"
	"github.com/rocketscienceinc/tictactoe-bot/transport/telegram"
	"github.com/rocketscienceinc/tictactoe-bot/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqlStorage, err := storage.New(ctx, conf.Storage.Driver, conf.Storage.DSN)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = sqlStorage.Close(); err != nil {
			log.Error("could not close sql storage", "error", err)
		}
	}()

	sessions := repository.NewSessionRepository()
	playerRepo := repository.NewPlayerRepository(sqlStorage)
	gameRepo := repository.NewGameRepository(sqlStorage)
	statsRepo := repository.NewStatsRepository(redisStorage)

	botService := service.NewBotService()
	gameService := service.NewGameService(logger, sessions, botService)
	gamePlayService := service.NewGamePlayService(logger, sessions, botService)
	playerService := service.NewPlayerService(playerRepo)
	historyService := service.NewHistoryService(gameRepo)
	statsService := service.NewStatsService(statsRepo, playerService)

	gameUseCase := usecase.NewGameUseCase(
		logger,
		usecase.BoardSize{Rows: conf.Board.Rows, Cols: conf.Board.Cols},
		gameService,
		gamePlayService,
		playerService,
		historyService,
		statsService,
	)
	playerUseCase := usecase.NewPlayerUseCase(historyService, statsService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		handlers := rest.NewHandlers(logger, playerUseCase, gameUseCase)
		if httpErr := rest.Start(ctx, logger, conf.HTTPPort, handlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	// run Telegram bot
	tgErrCh := make(chan error, 1)
	if conf.Telegram.Token == "" {
		log.Warn("telegram token is empty, bot is disabled")
	} else {
		api, tgErr := telegram.Connect(conf.Telegram.Token)
		if tgErr != nil {
			return tgErr
		}

		username := conf.Telegram.Username
		if username == "" {
			username = api.Self.UserName
		}

		bot := telegram.New(logger, api, username, gameUseCase, playerUseCase)
		go func() {
			log.Info("Starting Telegram bot", "username", username)
			if tgErr := telegram.Start(ctx, api, conf.Telegram.PollTimeout, bot); tgErr != nil {
				log.Error("Telegram bot error", "error", tgErr)
				tgErrCh <- tgErr
			}
		}()
	}

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case err = <-tgErrCh:
		return fmt.Errorf("telegram bot error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
