package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file with only the storage section
		path := writeConfig(t, "storage:\n  driver: sqlite\n  dsn: \":memory:\"\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: defaults are filled in
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 3, conf.Board.Rows)
		assert.Equal(t, 3, conf.Board.Cols)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics on unknown driver", func(t *testing.T) {
		// Given: a config file with an unsupported driver
		path := writeConfig(t, "storage:\n  driver: mongo\n")

		// When / Then: loading panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Accepts the storage drivers", func(t *testing.T) {
		for _, driver := range []string{storage.DriverSQLite, storage.DriverPostgres} {
			conf := &Config{Storage: Storage{Driver: driver}, Board: Board{Rows: 3, Cols: 3}}

			require.NoError(t, conf.Validate(), driver)
		}
	})

	t.Run("Unknown driver", func(t *testing.T) {
		conf := &Config{Storage: Storage{Driver: "mongo"}, Board: Board{Rows: 3, Cols: 3}}

		require.ErrorIs(t, conf.Validate(), storage.ErrUnknownDriver)
	})

	t.Run("Invalid board", func(t *testing.T) {
		conf := &Config{
			Storage: Storage{Driver: storage.DriverPostgres},
			Board:   Board{Rows: 0, Cols: 3},
		}

		require.ErrorIs(t, conf.Validate(), ErrInvalidBoard)
	})
}
