package main

import (
	"context"
	"log"
	"os"

	"customerhub/internal/config"
	"customerhub/internal/db"
	"customerhub/internal/migrate"
)

func main() {
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("parse config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}

	logger.Println("migrations applied")
}
