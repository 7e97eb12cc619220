package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"war/config"
	"war/engine"
	"war/game"
	"war/logging"

	"github.com/rs/zerolog/log"
)

// Exit statuses of the process.
const (
	exitOK = iota
	exitFailure
	exitRegistryAllocation
)

func main() {
	os.Exit(run())
}

// exitStatus maps the error that ended a session to the process exit status.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, game.ErrRegistryAllocation):
		return exitRegistryAllocation
	default:
		return exitFailure
	}
}

// run plays one session on the console and returns the process exit status.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return exitFailure
	}

	closer, err := logging.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return exitFailure
	}
	defer closer.Close()

	tag, _ := cfg.Tag() // Validated by config.Load
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Str("language", tag.String()).Msg("session starting")

	var session engine.Engine = engine.LocalEngine(os.Stdin, os.Stdout,
		engine.WithRandomizer(game.NewRandomizer(seed)),
		engine.WithLanguage(tag),
		engine.WithClearScreen(cfg.ClearScreen),
	)

	outcome, err := session.Run()
	if err != nil {
		log.Error().Err(err).Msg("session failed")
		if !errors.Is(err, game.ErrRegistryAllocation) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		return exitStatus(err)
	}

	log.Info().Str("reason", string(outcome.Reason)).Stringer("mission", outcome.Mission).Int("turns", outcome.Turns).Msg("session ended")
	return exitOK
}
