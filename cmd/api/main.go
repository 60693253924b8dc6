package main

import (
	"context"
	"log"

	"resume-portfolio/internal/bootstrap"
	"resume-portfolio/internal/shared/config"
	"resume-portfolio/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting portfolio API on %s (provider=%s model=%s)", addr, cfg.LLMProvider, cfg.LLMModel)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
