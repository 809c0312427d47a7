package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger konfiguriert den globalen zerolog-Logger. In "prod" wird JSON auf
// stdout geschrieben, sonst eine lesbare Konsolenausgabe mit Debug-Level.
func SetupLogger(state, service string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if state == "prod" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", service).Logger()
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Str("service", service).Logger()
}
