package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mohanishp9/QKart-Backend/auth"
	"github.com/mohanishp9/QKart-Backend/config"
	orderControllers "github.com/mohanishp9/QKart-Backend/controllers/order"
	"github.com/mohanishp9/QKart-Backend/database"
	"github.com/mohanishp9/QKart-Backend/logger"
	"github.com/mohanishp9/QKart-Backend/repository"
	"github.com/mohanishp9/QKart-Backend/routes"
	"github.com/mohanishp9/QKart-Backend/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("auto-migrate failed", zap.Error(err))
	}
	log.Info("database ready", zap.String("driver", cfg.DBDriver))

	users := repository.NewUserRepository(db)
	carts := repository.NewCartRepository(db)
	products := repository.NewProductRepository(db)

	hub := orderControllers.NewHub(log.Named("checkouts"))
	accounts := services.NewAccountService(users, services.NewBcryptHasher(bcrypt.DefaultCost), log.Named("accounts"))
	cartService := services.NewCartService(carts, products, repository.NewTxRunner(db), log.Named("cart")).
		WithNotifier(hub)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.NewRouter(log, routes.Deps{
		Accounts:    accounts,
		Carts:       cartService,
		Products:    products,
		Tokens:      auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAccessTTL),
		Checkouts:   hub,
		AdminAPIKey: cfg.AdminAPIKey,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
