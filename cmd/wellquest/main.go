package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellquest/internal/config"
	"wellquest/internal/feedback"
	"wellquest/internal/progress"
	"wellquest/internal/server"
	"wellquest/internal/storage/sqlite"
	"wellquest/internal/util"
)

func main() {
	cfg, err := config.Read()
	if err != nil {
		slog.Error("unable to read configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	addrFlag := flag.String("addr", cfg.Addr, "HTTP listen address")
	dbFlag := flag.String("db", cfg.DBPath, "Path to sqlite database file")
	staticFlag := flag.String("static", cfg.StaticDir, "Directory with the exported web client")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: util.ParseLevel(cfg.LogLevel),
	}))

	store, err := sqlite.Open(*dbFlag, logger)
	if err != nil {
		logger.Error("unable to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	engine := progress.New(store, feedback.Logged{Logger: logger}, logger)
	engine.Load(context.Background())
	logger.Info("progress engine loaded",
		slog.Int("tasks", len(engine.Tasks())),
		slog.Int("missions", len(engine.Missions())),
		slog.Int("level", engine.Profile().Level))

	srv := server.New(engine, store, logger, *staticFlag)

	httpServer := &http.Server{
		Addr:    *addrFlag,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("starting server", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown server", slog.String("error", err.Error()))
	}

	// Let in-flight persistence writes land before closing the store.
	engine.Flush()

	logger.Info("server stopped")
}
