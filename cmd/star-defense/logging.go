package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "star-defense.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a disabled logger unless debug is set, then a JSON file logger under logs/
// An existing log over maxLogSize is rotated aside with a timestamp suffix
// Nothing is ever written to stdout or stderr, which belong to the terminal UI
func setupLogging(debug bool) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("star-defense-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil
	}

	zerolog.DurationFieldUnit = time.Millisecond
	log := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	log.Info().Str("path", logPath).Msg("debug logging enabled")
	return log, f
}
