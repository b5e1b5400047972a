package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// loadConfig loads a .env file if one is present in the working directory
// and sets the default slog logger's level from TOKEX_LOG_LEVEL. Absence of
// a .env file is not an error; only present-but-unreadable is. Grounded on
// ollama-ollama/cmd/dotenv.go's LoadDotEnvFromOllamaFolder.
func loadConfig() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	level := slog.LevelWarn
	switch os.Getenv("TOKEX_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
