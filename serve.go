package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"quick-notes/app"
	"quick-notes/config"
	"quick-notes/config/setup"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Serve the free-text note editor",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := slog.Default()

		db, err := setup.InitDatabase(config.AppConfig.EditorDBPath, true, logger)
		if err != nil {
			fatal("Failed to open database", err)
		}
		defer setup.Shutdown(db, logger)

		application, err := setup.InitEditorApp(db, config.AppConfig.NotesDir, logger)
		if err != nil {
			fatal("Failed to initialize editor", err)
		}

		if err := serve(application, setup.RegisterEditorRoutes); err != nil {
			logger.Error("server failed", "error", err)
		}
	},
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Serve the notes table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := slog.Default()

		db, err := setup.InitDatabase(config.AppConfig.TableDBPath, false, logger)
		if err != nil {
			fatal("Failed to open database", err)
		}
		defer setup.Shutdown(db, logger)

		application := setup.InitTableApp(db, logger)

		if err := serve(application, setup.RegisterTableRoutes); err != nil {
			logger.Error("server failed", "error", err)
		}
	},
}

// serve runs the UI on localhost until SIGINT or SIGTERM
func serve(application *app.App, register func(*fiber.App, *app.App)) error {
	logger := application.Logger

	fiberApp := setup.NewFiberApp(logger)
	setup.ApplyMiddleware(fiberApp, logger)
	register(fiberApp, application)

	addr := "127.0.0.1:" + config.AppConfig.Port
	logger.Info("starting server", "addr", addr, "env", config.AppConfig.Env)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

func init() {
	rootCmd.AddCommand(editorCmd)
	rootCmd.AddCommand(tableCmd)
}
