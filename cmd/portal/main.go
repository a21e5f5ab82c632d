package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"loginportal/internal/cli"
	"loginportal/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "portal init error: %v\n", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
