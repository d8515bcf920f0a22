package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"roomreport/internal/config"
	"roomreport/internal/db"
	"roomreport/internal/handler"
	"roomreport/internal/service/ai"
	"roomreport/internal/service/llmlog"
	reportservice "roomreport/internal/service/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	dbConn, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer dbConn.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := dbConn.PingContext(pingCtx); err != nil {
		cancel()
		log.Fatalf("failed to ping database: %v", err)
	}
	cancel()

	if err := db.Migrate(ctx, dbConn); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	promptStore := db.NewPromptStore(dbConn)
	messageStore := db.NewMessageStore(dbConn)

	callLogger := llmlog.NewLogger(db.NewCallLogSink(dbConn), llmlog.Info{
		Provider: ai.Provider,
		Model:    cfg.AI.Model,
		Endpoint: ai.Endpoint,
	})
	defer callLogger.Close()

	var generator reportservice.Generator
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without report generation - check the ARK_* environment variables")
		} else {
			log.Println("AI service initialized successfully")
			generator = aiService
		}
	} else {
		log.Println("ark credentials not configured, report requests will be rejected")
	}

	reportSvc := reportservice.NewService(promptStore, messageStore, generator, callLogger)

	router := handler.NewRouter(reportSvc, messageStore, dbConn)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("room report service listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
