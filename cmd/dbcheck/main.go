// Command dbcheck verifies connectivity to Postgres and Redis using the
// same configuration the server loads. Useful when debugging deployments.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/config"
	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/internal/infrastructure/database"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres: %v\n", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "postgres ping: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("postgres: ok")

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "redis ping: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("redis: ok")
}
