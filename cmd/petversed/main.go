package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/app"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
