// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/shopcore/backend/internal/adapters/httpapi"
	"github.com/shopcore/backend/internal/adapters/redis"
	"github.com/shopcore/backend/internal/adapters/repository"
	"github.com/shopcore/backend/internal/adapters/smtp"
	"github.com/shopcore/backend/internal/application"
	"github.com/shopcore/backend/internal/config"
	"github.com/shopcore/backend/pkg/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal("failed to connect to DB", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to ping DB", zap.Error(err))
	}
	initDB(db, logger)

	cache := redis.NewCache(cfg.Redis, cfg.CacheTTL)
	if err := cache.Ping(context.Background()); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer cache.Close()

	repo := repository.NewPostgresRepository(db)
	mailer := smtp.NewMailer(cfg.SMTP)
	tokens := auth.NewTokenManager(cfg.Admin.TokenSecret, cfg.Admin.TokenTTL)

	identity := application.NewIdentityService(repo, mailer, tokens, application.AdminCredentials{
		Username:       cfg.Admin.Username,
		PasswordDigest: cfg.Admin.PasswordDigest,
	}, logger)
	carts := application.NewCartService(repo)
	orders := application.NewOrderService(repo, repo, repo, cache, logger)
	catalog := application.NewCatalogService(repo)

	handler := httpapi.NewHandler(identity, carts, orders, catalog, cache, logger)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Routes(),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	logger.Info("shutting down http server")
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func initDB(db *sql.DB, logger *zap.Logger) {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			mail VARCHAR(255) UNIQUE NOT NULL,
			phone VARCHAR(20) NOT NULL DEFAULT '',
			password VARCHAR(255) NOT NULL,
			otp_code VARCHAR(6),
			otp_expires_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS cart_lines (
			account_id VARCHAR(36) NOT NULL REFERENCES accounts(id),
			product_id VARCHAR(36) NOT NULL,
			quantity BIGINT NOT NULL,
			added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (account_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist_lines (
			account_id VARCHAR(36) NOT NULL REFERENCES accounts(id),
			product_id VARCHAR(36) NOT NULL,
			added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (account_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			id VARCHAR(36) PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL REFERENCES accounts(id),
			name VARCHAR(255) NOT NULL,
			street TEXT NOT NULL,
			district VARCHAR(255) NOT NULL DEFAULT '',
			state VARCHAR(255) NOT NULL DEFAULT '',
			pincode VARCHAR(20) NOT NULL,
			contact_phone VARCHAR(20) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price NUMERIC(12,2) NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			photo VARCHAR(255) NOT NULL DEFAULT '',
			in_stock BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(36) PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL REFERENCES accounts(id),
			address JSONB NOT NULL,
			products JSONB NOT NULL,
			placed_at TIMESTAMPTZ NOT NULL,
			payment_method VARCHAR(50) NOT NULL,
			payment_status VARCHAR(20) NOT NULL,
			delivered BOOLEAN NOT NULL DEFAULT false,
			order_status VARCHAR(50) NOT NULL,
			total_price NUMERIC(12,2) NOT NULL
		)`,
	}
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			logger.Fatal("failed to init DB", zap.Error(err))
		}
	}
}
