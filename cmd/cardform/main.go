package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlenaMolokova/cardform/internal/card"
	"github.com/AlenaMolokova/cardform/internal/config"
	"github.com/AlenaMolokova/cardform/internal/logger"
	"github.com/AlenaMolokova/cardform/internal/router"
	"github.com/AlenaMolokova/cardform/internal/usecase"
	"github.com/AlenaMolokova/cardform/internal/validation"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	cardInputUC := usecase.NewCardInputUseCase(card.NewValidator(card.DefaultBrands()), cfg.IconBaseURL, zlog)
	r := router.SetupRoutes(cardInputUC, validation.NewStructValidator(), cfg.JWTSecret, zlog)

	srv := &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		zlog.Info("starting cardform server",
			zap.String("addr", cfg.RunAddr),
			zap.String("env", cfg.Env),
			zap.Bool("auth", cfg.AuthEnabled()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-stop
	zlog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
		return
	}
	zlog.Info("server exited")
}
