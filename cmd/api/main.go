package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/db"
	"storefront-gateway/internal/httpserver"
	sessionrepo "storefront-gateway/internal/repository/session"
	accountsvc "storefront-gateway/internal/service/account"
	"storefront-gateway/internal/storefront"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	sessions, cleanup, err := buildSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("init session store: %v", err)
	}
	defer cleanup()

	client := storefront.NewClient(nil, cfg.StorefrontAPIVersion, logger)
	accounts := accountsvc.New(client, sessions, logger)

	gin.SetMode(gin.ReleaseMode)
	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Accounts: accounts,
		Sessions: sessions,
	}, cfg.CORSAllowOrigins)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// buildSessionStore picks the session backend from configuration. Redis is the
// default; postgres shares the pool lifecycle with the returned cleanup.
func buildSessionStore(ctx context.Context, cfg config.Config, logger *log.Logger) (sessionrepo.Store, func(), error) {
	switch cfg.SessionBackend {
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		return sessionrepo.NewPostgres(pool, cfg.SessionTTL, logger), pool.Close, nil
	default:
		store, err := sessionrepo.NewRedis(sessionrepo.RedisConfig{
			Addr:     cfg.RedisAddr,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		}, cfg.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}
