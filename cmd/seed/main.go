package main

import (
	"context"
	"log"
	"os"

	"musclesaction-store/internal/config"
	"musclesaction-store/internal/db"
	"musclesaction-store/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	adminEmail := envOrDefault("ADMIN_EMAIL", "admin@musclesaction.local")
	adminPassword := envOrDefault("ADMIN_PASSWORD", "changeme")

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool, adminEmail, adminPassword); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
