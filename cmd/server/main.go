package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"goalsmith/internal/ai"
	"goalsmith/internal/api"
	"goalsmith/internal/compiler"
	"goalsmith/internal/config"
	"goalsmith/internal/db"
	"goalsmith/internal/goalrepo"
	"goalsmith/internal/security"
	"goalsmith/internal/store"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	rdb := store.NewRedisClient(cfg)

	var gen compiler.Generator
	if cfg.AI.APIKey != "" {
		limiter := security.NewRateLimiter(
			cfg.AI.RateLimit.MaxRequests,
			time.Duration(cfg.AI.RateLimit.WindowSeconds)*time.Second,
		)
		client := ai.NewClient(cfg.AI.URL, cfg.AI.Model, cfg.AI.APIKey,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		gen = ai.NewGenerator(client, limiter, true)
		log.Printf("[Main] AI generation enabled (model %s)", cfg.AI.Model)
	} else {
		log.Printf("[Main] No AI credential configured; rule engine only")
	}

	deps := &api.Deps{
		Compiler: compiler.NewCompiler(gen),
		Repo:     goalrepo.NewRepository(db.DB),
		Store:    store.NewRedisStore(rdb, "progress:"),
		Hub:      api.NewEventHub(),
	}

	r := api.SetupRouter(cfg, rdb, deps)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
	if err := r.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
