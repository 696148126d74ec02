package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bidding-dashboard/internal/auth"
	bidding "bidding-dashboard/internal/biddingService"
	"bidding-dashboard/internal/broadcast"
	"bidding-dashboard/internal/config"
	"bidding-dashboard/internal/repository"
	"bidding-dashboard/internal/server"
	"bidding-dashboard/internal/simulation"
	"bidding-dashboard/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(envFile())
	if err != nil {
		utils.Fatal("cannot load config", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.LogLevel)

	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		utils.Fatal("cannot open repository", map[string]any{"driver": cfg.DatabaseDriver, "error": err.Error()})
	}

	maker, err := auth.NewJWTMaker(cfg.TokenSecretKey)
	if err != nil {
		utils.Fatal("cannot create token maker", map[string]any{"error": err.Error()})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := broadcast.NewHub()
	hubCtx, stopHub := context.WithCancel(context.Background())
	hubDone := make(chan struct{})
	go func() {
		hub.Run(hubCtx)
		close(hubDone)
	}()

	biddingSvc := bidding.NewBiddingService(repo, maker, hub, bidding.Options{
		SnapshotSize: cfg.EventSnapshotSize,
		SlotCount:    cfg.SlotCount,
		WriteTimeout: cfg.LedgerWriteTimeout,
	})
	session := bidding.NewSession(cfg.BiddingEnabled)

	bot, err := simulation.NewBot(hub)
	if err != nil {
		utils.Fatal("cannot create demo bot", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(server.Dependencies{
		Service:        biddingSvc,
		Session:        session,
		Hub:            hub,
		Bot:            bot,
		CookieName:     cfg.AuthCookieName,
		AllowedOrigins: cfg.AllowedOrigins,
		AdminKey:       cfg.AdminKey,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{
			"address":         cfg.ServerAddress,
			"driver":          cfg.DatabaseDriver,
			"bidding_enabled": cfg.BiddingEnabled,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}

	if err := bot.Shutdown(); err != nil {
		utils.Error("bot shutdown failed", map[string]any{"error": err.Error()})
	}
	biddingSvc.Close()
	stopHub()
	<-hubDone

	if err := closeRepo(); err != nil {
		utils.Error("repository close failed", map[string]any{"error": err.Error()})
	}
}

// openRepository builds the ledger backend chosen by DATABASE_DRIVER
func openRepository(cfg config.Config) (repository.AuctionDB, func() error, error) {
	if cfg.DatabaseDriver == config.DriverMemory {
		return repository.NewMemoryRepo(), func() error { return nil }, nil
	}

	repo, err := repository.OpenGormRepo(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return repo, repo.Close, nil
}

// envFile returns the optional env file path, "app.env" unless CONFIG_FILE is set
func envFile() string {
	if p, ok := os.LookupEnv("CONFIG_FILE"); ok {
		return p
	}
	return "app.env"
}
