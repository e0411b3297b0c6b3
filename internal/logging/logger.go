package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs a tint handler on stderr as the default slog logger.
// level is one of debug, info, warn or error; anything else means warn.
func InitLogger(level string) {
	slog.SetDefault(NewLogger(os.Stderr, level))
}

func NewLogger(w io.Writer, level string) *slog.Logger {
	logLevel := ParseLevel(level)

	handler := tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.Kitchen,
		AddSource:  logLevel == slog.LevelDebug,
	})

	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
