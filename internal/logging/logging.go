package logging

import (
	"log/slog"
	"os"
)

// New initializes a new slog logger and sets it as the process default.
// The format comes from the LOG_FORMAT environment variable: "text" for
// development (with source locations), "json" for production log pipelines.
func New() {
	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	var handler slog.Handler
	switch logFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level(),
		})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     level(),
			AddSource: true,
		})
	}

	slog.SetDefault(slog.New(handler))
}

// level maps the LOG_LEVEL environment variable to a slog level,
// defaulting to info.
func level() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
