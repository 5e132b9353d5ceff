// Package main initializes and starts the storefront API server,
// setting up configuration, logging, database connections, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/abdullahbaig-27688/yemi-seller/internal/config"
	"github.com/abdullahbaig-27688/yemi-seller/internal/db"
	"github.com/abdullahbaig-27688/yemi-seller/internal/logger"
	"github.com/abdullahbaig-27688/yemi-seller/internal/repository"
	"github.com/abdullahbaig-27688/yemi-seller/internal/server/handler/http"
	"github.com/abdullahbaig-27688/yemi-seller/internal/service"
	"github.com/abdullahbaig-27688/yemi-seller/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Purge soft-deleted products in the background.
	db.StartSoftDeleteCleaner(context.Background(), postgresDB,
		time.Hour,       // interval
		30*24*time.Hour, // retention: 30 days
		zapLogger,
	)

	// Initialize repositories.
	sellerRepo := repository.NewPostgresSellerRepository(postgresDB)
	catalogRepo := repository.NewPostgresCatalogRepository(postgresDB)
	orderRepo := repository.NewPostgresOrderRepository(postgresDB)
	chatRepo := repository.NewPostgresChatRepository(postgresDB)
	shippingRepo := repository.NewPostgresShippingRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(sellerRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	orderService := service.NewOrderService(orderRepo)
	chatService := service.NewChatService(chatRepo, orderRepo)
	shippingService := service.NewShippingService(shippingRepo)
	dashboardService := service.NewDashboardService(catalogRepo, orderRepo)

	// Initialize the bearer-token manager.
	tokens, err := token.NewManager(options.JWTSecret, time.Duration(options.TokenTTLHours)*time.Hour)
	if err != nil {
		zapLogger.Fatal("cannot init token manager", zap.Error(err))
	}

	// Create HTTP handlers for each resource.
	handlers := http.Handlers{
		Auth:      &http.AuthHandler{Auth: authService, Tokens: tokens},
		Seller:    &http.SellerHandler{Sellers: authService},
		Products:  &http.ProductHandler{Catalog: catalogService},
		Orders:    &http.OrderHandler{Orders: orderService},
		Chat:      &http.ChatHandler{Chat: chatService},
		Shipping:  &http.ShippingHandler{Shipping: shippingService},
		Dashboard: &http.DashboardHandler{Dashboard: dashboardService},
	}

	// Build the router with middleware and routes.
	router := http.NewRouter(handlers, tokens, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
