package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"caesar/internal/cli"
	"caesar/internal/ctxlog"
	"caesar/internal/rec"
)

func run(ctx context.Context) (err error) {
	defer rec.Error(&err)

	return cli.Execute(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = ctxlog.Setup(ctx)

	logger := ctxlog.Get(ctx)

	err := run(ctx)
	if err != nil {
		logger.Error("caesar failed", "error", err)
		os.Exit(1)
	}
}
