package logger

import (
	"context"
	"log/slog"
	"os"
)

type SlogLogger struct {
	logger *slog.Logger
}

type SlogEnvironment string

const (
	EnvLocal SlogEnvironment = "local"
	EnvDev   SlogEnvironment = "dev"
)

func NewSlogLogger(env SlogEnvironment) *SlogLogger {
	var slogger *slog.Logger

	switch env {
	case EnvDev:
		slogger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		slogger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return &SlogLogger{
		logger: slogger,
	}
}

// SetupLogger builds the process logger from the env section of the config.
func SetupLogger(env string) *SlogLogger {
	return NewSlogLogger(SlogEnvironment(env))
}

func (s *SlogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, slogArgs(fields)...)
}

func (s *SlogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, slogArgs(fields)...)
}

func (s *SlogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, slogArgs(fields)...)
}

func (s *SlogLogger) Error(msg string, fields ...any) {
	s.logger.Error(msg, slogArgs(fields)...)
}

func (s *SlogLogger) DebugContext(ctx context.Context, msg string, fields ...any) {
	s.logger.DebugContext(ctx, msg, slogArgs(fields)...)
}

func (s *SlogLogger) InfoContext(ctx context.Context, msg string, fields ...any) {
	s.logger.InfoContext(ctx, msg, slogArgs(fields)...)
}

func (s *SlogLogger) WarnContext(ctx context.Context, msg string, fields ...any) {
	s.logger.WarnContext(ctx, msg, slogArgs(fields)...)
}

func (s *SlogLogger) ErrorContext(ctx context.Context, msg string, fields ...any) {
	s.logger.ErrorContext(ctx, msg, slogArgs(fields)...)
}

func slogArgs(fields []any) []any {
	args := make([]any, 0, len(fields))
	for _, field := range fields {
		if attr, ok := field.(Attr); ok {
			args = append(args, slog.Any(attr.Key, attr.Value))
			continue
		}
		args = append(args, field)
	}
	return args
}
