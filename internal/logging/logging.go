// SPDX-License-Identifier:Apache-2.0

package logging

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

// New builds the process logger and installs it as the slog default. The
// text format is meant for terminals, the json one for collection.
func New(level, format string) (*slog.Logger, error) {
	logLevel, err := levelToSlog(level)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		})
	case FormatText:
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
		})
	default:
		return nil, fmt.Errorf("invalid log format %s: possible values are [json, text]", format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}

func levelToSlog(level string) (slog.Level, error) {
	switch level {
	case LevelDebug:
		return slog.LevelDebug, nil
	case LevelInfo:
		return slog.LevelInfo, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelError:
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %s: possible values are [debug, info, warn, error]", level)
}
