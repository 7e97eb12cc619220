package logging

import (
	"io"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"war/config"
)

// Setup points the global logger at the configured file and returns a closer for it.
// Without a log file the global logger is disabled.
func Setup(cfg config.Config) (io.Closer, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	if cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return io.NopCloser(nil), nil
	}

	sink := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    max(1, cfg.LogMaxSizeMB),
		MaxBackups: max(0, cfg.LogMaxBackups),
		MaxAge:     max(0, cfg.LogMaxAgeDays),
		Compress:   cfg.LogCompress,
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(sink).With().Timestamp().Logger()
	return sink, nil
}
