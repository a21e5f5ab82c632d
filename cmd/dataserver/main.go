package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"loginportal/internal/logging"
	"loginportal/internal/server"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "listen address")
	dataDir := flag.String("data", "./data", "directory with users.json and products.json")
	flag.Parse()

	zl, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	log := logging.NewZapLogger(zl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	srv := server.New(*addr, *dataDir, log)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(ctx, "data server stopped", "error", err)
		_ = zl.Sync()
		os.Exit(1)
	}
	_ = zl.Sync()
}
