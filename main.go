package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Paxai/rebot/api"
	"github.com/Paxai/rebot/bot"
	"github.com/Paxai/rebot/config"
	"github.com/Paxai/rebot/handler/review"
)

func main() {
	logger := log.New(os.Stdout, "[rebot] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Error loading config: %v", err)
	}

	b, err := bot.New(cfg, logger)
	if err != nil {
		logger.Fatalf("Error creating Discord session: %v", err)
	}

	review.Register(review.NewReviewer(cfg, b.Session(), logger))

	if err := b.Open(); err != nil {
		logger.Fatalf("Error opening Discord connection: %v", err)
	}

	srv := api.New(cfg, b.Session(), logger)
	go func() {
		logger.Printf("HTTP API listening on %s", cfg.Addr())
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	logger.Printf("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("Error shutting down HTTP server: %v", err)
	}
	b.Close()
}
