package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"go-workout-tracker/internal/database"
	"go-workout-tracker/internal/logger"
)

func main() {
	direction := flag.String("direction", database.DirectionUp, "migration direction: up or down")
	flag.Parse()

	_ = godotenv.Load()
	slog.SetDefault(logger.New(os.Stdout, os.Getenv("LOG_FORMAT"), os.Getenv("LOG_LEVEL")))

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	if err := database.Migrate(databaseURL, *direction); err != nil {
		slog.Error("migration failed", "direction", *direction, "error", err)
		os.Exit(1)
	}

	slog.Info("migration complete", "direction", *direction)
}
