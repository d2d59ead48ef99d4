package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
)

// NewZerolog builds a zerolog.Logger writing console-formatted records to w
// at the given level. The database layer logs through it.
func NewZerolog(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = consoleOut
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return zerolog.New(out).Level(zerologLevel(level)).With().Timestamp().Logger()
}

func zerologLevel(level string) zerolog.Level {
	switch parseLevel(level) {
	case slog.LevelDebug:
		return zerolog.DebugLevel
	case slog.LevelWarn:
		return zerolog.WarnLevel
	case slog.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
