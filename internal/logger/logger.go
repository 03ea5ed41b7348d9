package logger

import (
	"context"
	"log/slog"
	"os"
)

var base = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	base = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(base)
	base.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	base.LogAttrs(context.Background(), slog.LevelInfo, msg, attrs(fields)...)
}

func Warn(msg string, fields map[string]any) {
	base.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs(fields)...)
}

func Error(msg string, fields map[string]any) {
	base.LogAttrs(context.Background(), slog.LevelError, msg, attrs(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	base.LogAttrs(context.Background(), slog.LevelError, msg, attrs(fields)...)
	os.Exit(1)
}

func attrs(fields map[string]any) []slog.Attr {
	out := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		out = append(out, slog.Any(k, v))
	}
	return out
}
