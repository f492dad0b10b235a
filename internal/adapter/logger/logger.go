package logger

import (
	"io"
	"log/slog"
	"os"
)

type LoggerAdapter struct {
	logger *slog.Logger
}

// NewLoggerAdapter writes JSON lines in production and readable text otherwise.
func NewLoggerAdapter(env string) *LoggerAdapter {
	return New(os.Stdout, env)
}

func New(w io.Writer, env string) *LoggerAdapter {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	}
	return &LoggerAdapter{logger: slog.New(handler)}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, attrs(fields)...)
}

func attrs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields))
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return args
}
