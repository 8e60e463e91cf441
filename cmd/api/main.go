package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/colis-timer-api/internal/config"
	"github.com/colis-timer-api/internal/infrastructure/postgres"
	"github.com/colis-timer-api/internal/pkg/logging"
	transporthttp "github.com/colis-timer-api/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	dotenvErr := godotenv.Load()

	cfg := config.Load()
	logging.Setup(os.Stdout, cfg.LogLevel, cfg.IsDevelopment())
	if dotenvErr != nil {
		logrus.Info("No .env file found, reading from environment")
	}

	db, err := postgres.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("postgres client")
	}
	store := postgres.NewStore(db)
	defer func() {
		if err := store.Close(); err != nil {
			logrus.WithError(err).Warn("closing postgres pool")
		}
	}()

	// Reachability is reported, not required: handlers answer 500 until the store comes back.
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		logrus.WithError(err).Warn("postgres not reachable at startup")
	}
	cancelPing()

	deps := &transporthttp.Deps{
		ClockRepo:       postgres.NewClockRepo(store),
		SessionRepo:     postgres.NewSessionRepo(store),
		SupermarketRepo: postgres.NewSupermarketRepo(store),
		EmployeeRepo:    postgres.NewEmployeeRepo(store),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.AppPort, "env": cfg.AppEnv}).Info("API Colis Timer listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("forced shutdown")
	}
	logrus.Info("Server stopped")
}
