package main

import (
	"log/slog"
	"os"
	"quick-notes/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quick-notes",
	Short: "Local note keeping: a free-text editor and a notes table",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		slog.SetDefault(setupLogger())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	switch config.AppConfig.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
