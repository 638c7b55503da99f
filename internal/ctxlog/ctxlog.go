// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

var level slog.LevelVar

var setup = false

// Setup installs a stderr text handler as the default logger and returns a
// context carrying it. The default level hides routine progress; raise it
// with SetLevel for verbose runs.
func Setup(ctx context.Context) context.Context {
	if setup {
		return Store(ctx, slog.Default())
	}

	level.Set(slog.LevelWarn)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &level,
	}))
	slog.SetDefault(logger)

	setup = true

	return Store(ctx, logger)
}

func SetLevel(l slog.Level) {
	level.Set(l)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
