package main

import (
	"context"
	"coursework/internal/cli"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Cancelled on Ctrl-C / SIGTERM; servers shut down gracefully.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
