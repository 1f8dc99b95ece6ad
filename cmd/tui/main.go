package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"weatherscreen.app/internal/app"
	"weatherscreen.app/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "weather screen:", err)
		os.Exit(1)
	}
}

func run() error {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logPath := cfg.Log.TUIFilePath
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	// The terminal belongs to the program, so logs go to a file
	logFile, err := tea.LogToFile(logPath, "tui")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	application, err := app.NewApplicationFromConfig(cfg, app.Options{LogOutput: logFile})
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Warn("Error closing dependencies", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := application.NewTerminalModel(ctx)
	if err != nil {
		return fmt.Errorf("create terminal model: %w", err)
	}

	slog.Info("Starting terminal screen")
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run terminal screen: %w", err)
	}
	return nil
}
