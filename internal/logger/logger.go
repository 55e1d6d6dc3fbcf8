// Package logger provides the gateway's structured logging facade.
// It keeps the call shape small (message + field map) and emits JSON
// via log/slog so log lines are machine-parseable from day one.
package logger

import (
	"context"
	"log/slog"
	"os"
)

var base *slog.Logger

func Init() {
	base = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(base)
	base.Info("logger initialized")
}

func logWith(level slog.Level, msg string, fields map[string]any) {
	l := base
	if l == nil {
		l = slog.Default()
	}
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	l.Log(context.Background(), level, msg, args...)
}

func Info(msg string, fields map[string]any) {
	logWith(slog.LevelInfo, msg, fields)
}

func Warn(msg string, fields map[string]any) {
	logWith(slog.LevelWarn, msg, fields)
}

func Error(msg string, fields map[string]any) {
	logWith(slog.LevelError, msg, fields)
}

func Fatal(msg string, fields map[string]any) {
	logWith(slog.LevelError, msg, fields)
	os.Exit(1)
}
