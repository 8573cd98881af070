package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, stopProfile := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	stopProfile()
	if err != nil {
		stop()
		os.Exit(1)
	}
}
