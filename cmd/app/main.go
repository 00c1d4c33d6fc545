package main

import (
	"context"
	"log"

	"cinelog/internal/app"
	"cinelog/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer a.Close()

	if err := a.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}
}
