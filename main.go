package main

import (
	"log"

	"github.com/joho/godotenv"

	"gomonte/internal"
	"gomonte/internal/config"
	"gomonte/ui"
)

func main() {
	// .env is optional; real environments set variables directly.
	if err := godotenv.Load(); err != nil {
		internal.DefaultLogger.Debug("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	server := ui.NewServer(cfg)
	if err := server.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
