package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"war/config"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	t.Run("writing to the log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "war.log")
		closer, err := Setup(config.Config{LogLevel: "info", LogFile: path, LogMaxSizeMB: 1})
		require.NoError(t, err)

		log.Info().Str("territory", "Brasil").Msg("attack resolved")
		log.Debug().Msg("hidden below info")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), `"territory":"Brasil"`)
		require.Contains(t, string(data), `"message":"attack resolved"`)
		require.NotContains(t, string(data), "hidden below info", "Debug events should be filtered at info level")
	})

	t.Run("disabling logs without a file", func(t *testing.T) {
		closer, err := Setup(config.Config{LogLevel: "info"})
		require.NoError(t, err)
		require.NoError(t, closer.Close())
		require.Equal(t, zerolog.Disabled, log.Logger.GetLevel())
	})

	t.Run("rejecting an invalid level", func(t *testing.T) {
		_, err := Setup(config.Config{LogLevel: "loud"})
		require.Error(t, err)
	})
}
