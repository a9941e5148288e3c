package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
)

var ErrInvalidBoard = errors.New("board dimensions must be positive")

type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string   `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7777"`
	Telegram   Telegram `yaml:"telegram"`
	Redis      Redis    `yaml:"redis"`
	Storage    Storage  `yaml:"storage"`
	Board      Board    `yaml:"board"`
}

type Telegram struct {
	Token       string `yaml:"token" env:"BOT_TOKEN" env-default:""`
	Username    string `yaml:"username" env:"BOT_USERNAME" env-default:""`
	PollTimeout int    `yaml:"poll-timeout" env-default:"60"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	DSN    string `yaml:"dsn" env:"DATABASE_URL" env-default:"tictactoe.db"`
}

type Board struct {
	Rows int `yaml:"rows" env-default:"3"`
	Cols int `yaml:"cols" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.Storage.Driver {
	case storage.DriverSQLite, storage.DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownDriver, that.Storage.Driver)
	}

	if that.Board.Rows <= 0 || that.Board.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBoard, that.Board.Rows, that.Board.Cols)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
