package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"supportdesk/internal/app"
	"supportdesk/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	cfg, err := config.Load(os.Getenv("SD_CONFIG"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New(os.Stderr, "supportdeskd ", log.LstdFlags)

	switch cmd {
	case "serve":
		runServe(ctx, cfg, logger)
	case "worker":
		runWorker(ctx, cfg, logger)
	default:
		usage()
	}
}

func runServe(ctx context.Context, cfg config.Config, logger *log.Logger) {
	instance, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("app init error: %v", err)
	}
	defer instance.Close()

	if err := instance.Serve(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("serve error: %v", err)
	}
}

func runWorker(ctx context.Context, cfg config.Config, logger *log.Logger) {
	instance, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("app init error: %v", err)
	}
	defer instance.Close()

	if err := instance.WorkerLoop(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("worker error: %v", err)
	}
}

func usage() {
	fmt.Println("usage: supportdeskd <serve|worker>")
	fmt.Println("  serve   run the HTTP API")
	fmt.Println("  worker  drain queued triage jobs (requires SD_REDIS_URL)")
}
