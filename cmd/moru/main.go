// Package main is the entry point for the moru CLI.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := Execute(ctx); err != nil {
		os.Exit(1)
	}
}
