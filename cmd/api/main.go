// @title        Supply Chain Back Office API
// @version      1.0
// @description  Products, stocks, suppliers, sales and analytics behind token-based authentication.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/supplychain/backoffice/internal/api"
	"github.com/supplychain/backoffice/internal/core/service"
	"github.com/supplychain/backoffice/internal/core/token"
	"github.com/supplychain/backoffice/internal/infrastructure/config"
	mongodb "github.com/supplychain/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/supplychain/backoffice/internal/infrastructure/db/redis"
	"github.com/supplychain/backoffice/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	stockRepo := mongodb.NewStockRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	analyticsRepo := mongodb.NewAnalyticsRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":     userRepo.EnsureIndexes,
		"products":  productRepo.EnsureIndexes,
		"stocks":    stockRepo.EnsureIndexes,
		"sales":     saleRepo.EnsureIndexes,
		"suppliers": supplierRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Services ---
	tokens := token.NewProvider(cfg.JWTSecret, cfg.TokenTTL())
	cache := redisdb.NewCache(rdb, "backoffice")

	authService := service.NewAuthService(userRepo, tokens, logger.Named("auth"))
	adminService := service.NewAdminService(userRepo, logger.Named("admin"))
	productService := service.NewProductService(productRepo, logger.Named("products"))
	stockService := service.NewStockService(stockRepo, logger.Named("stocks"))
	saleService := service.NewSaleService(saleRepo, logger.Named("sales"))
	supplierService := service.NewSupplierService(supplierRepo, logger.Named("suppliers"))
	analyticsService := service.NewAnalyticsService(analyticsRepo, cache, logger.Named("analytics"))

	if err := service.EnsureAdmin(ctx, userRepo, cfg.AdminPassword, logger.Named("bootstrap")); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Tokens:    tokens,
		Users:     userRepo,
		Auth:      authService,
		Admin:     adminService,
		Products:  productService,
		Stocks:    stockService,
		Sales:     saleService,
		Suppliers: supplierService,
		Analytics: analyticsService,
		Mongo:     db,
		Redis:     rdb,
		Logger:    logger.Named("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
