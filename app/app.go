// File: app/app.go
package app

import (
	"context"
	"go-ledger-api/config"
	"go-ledger-api/handler"
	"go-ledger-api/logger"
	"go-ledger-api/router"
	"go-ledger-api/service"
	"go-ledger-api/store"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	documentStore := store.NewJSONStore(config.AppConfig.Store.Path)

	// First run only: write the example document. An existing store is
	// never overwritten.
	if err := documentStore.InitIfAbsent(store.SeedDocument()); err != nil {
		logger.Log.Fatalf("Error initializing the ledger store: %v", err)
	}

	// --- Wiring All Layers Together ---
	// The ledger service owns all mutations; the query service serves the
	// read-only projections. Both share the same document store.
	ledgerService := service.NewLedgerService(documentStore)
	queryService := service.NewQueryService(documentStore)

	accountHandler := handler.NewAccountHandler(queryService)
	transactionHandler := handler.NewTransactionHandler(ledgerService, queryService)
	cardHandler := handler.NewCardHandler(queryService)
	summaryHandler := handler.NewSummaryHandler(queryService)

	r := router.NewRouter(accountHandler, transactionHandler, cardHandler, summaryHandler, config.AppConfig.Server.StaticDir)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
