package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"customerhub/internal/accounts"
	"customerhub/internal/config"
	"customerhub/internal/db"
	"customerhub/internal/facts"
	"customerhub/internal/httpserver"
	custrepo "customerhub/internal/repository/customer"
	factrepo "customerhub/internal/repository/fact"
	customersvc "customerhub/internal/service/customer"
)

func main() {
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("parse config: %v", err)
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	customerRepo := custrepo.NewPostgres(dbpool, logger)
	factRepo := factrepo.NewPostgres(dbpool, logger)

	bus := facts.NewBus()
	facts.NewRecorder(factRepo, logger).Attach(bus)

	accountClient := accounts.NewHTTP(cfg.AccountServiceURL, logger)
	customerService := customersvc.New(customerRepo, accountClient, factRepo, bus, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CustomerSvc: customerService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
