package main

import (
	"context"
	"log"

	"storefront-api/internal/core/cache"
	"storefront-api/internal/core/config"
	"storefront-api/internal/core/events"
	"storefront-api/internal/core/jumpseller"
	"storefront-api/internal/core/logger"
	"storefront-api/internal/core/server"
	catalogadapter "storefront-api/internal/features/catalog/adapters"
	cataloghandler "storefront-api/internal/features/catalog/handler"
	catalogservice "storefront-api/internal/features/catalog/service"
	checkoutadapter "storefront-api/internal/features/checkout/adapters"
	checkouthandler "storefront-api/internal/features/checkout/handler"
	checkoutservice "storefront-api/internal/features/checkout/service"
	customeradapter "storefront-api/internal/features/customers/adapters"
	customerhandler "storefront-api/internal/features/customers/handler"
	customerservice "storefront-api/internal/features/customers/service"
	locationadapter "storefront-api/internal/features/locations/adapters"
	locationhandler "storefront-api/internal/features/locations/handler"
	locationservice "storefront-api/internal/features/locations/service"
	orderadapter "storefront-api/internal/features/orders/adapters"
	orderhandler "storefront-api/internal/features/orders/handler"
	orderservice "storefront-api/internal/features/orders/service"
	shippingadapter "storefront-api/internal/features/shipping/adapters"
	shippinghandler "storefront-api/internal/features/shipping/handler"
	shippingservice "storefront-api/internal/features/shipping/service"
	trackingadapter "storefront-api/internal/features/tracking/adapters"
	trackinghandler "storefront-api/internal/features/tracking/handler"
	trackingservice "storefront-api/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Storefront API
// @version 1.0
// @description Checkout, catalog and shipment tracking backend for a Jumpseller store.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(context.Background()); err != nil {
		// Checkout fails closed without Redis; the health check reports it.
		l.Warn("Redis not reachable at startup", zap.Error(err))
	}

	store := jumpseller.NewClient(cfg.Jumpseller, cfg.HTTPClientTimeout)
	if err := store.HealthCheck(context.Background()); err != nil {
		l.Fatal("Jumpseller Health Check Failed", zap.Error(err))
	}
	l.Info("Jumpseller connection verified")

	publisher := events.NewPublisher(cfg.Kafka)
	defer publisher.Close()

	// Locations & Shipping
	locationSvc := locationservice.NewLocationService(locationadapter.NewJumpsellerAdapter(store), redisCache, cfg.Redis.LocationsTTL)
	shippingSvc := shippingservice.NewShippingService(shippingadapter.NewJumpsellerAdapter(store))

	// Customers & Catalog
	customerSvc := customerservice.NewCustomerService(customeradapter.NewJumpsellerAdapter(store), cfg.Jumpseller.TrackedShippingMethodID)
	catalogSvc := catalogservice.NewCatalogService(catalogadapter.NewJumpsellerAdapter(store), cfg.Checkout.LookupConcurrency)

	// Orders
	orderSvc := orderservice.NewOrderService(
		orderadapter.NewJumpsellerAdapter(store),
		customerSvc,
		catalogSvc,
		shippingSvc,
		orderadapter.NewRedisIdempotencyStore(redisCache, cfg.Checkout.PendingTTL, cfg.Checkout.IdempotencyTTL),
		publisher,
	)

	// Checkout sessions
	checkoutSvc := checkoutservice.NewCheckoutService(
		checkoutadapter.NewRedisSessionRepository(redisCache, cfg.Checkout.SessionTTL),
		shippingSvc,
		orderSvc,
	)

	// Tracking
	trackingSvc := trackingservice.NewTrackingService(trackingadapter.NewBlueExpressAdapter(cfg.BlueExpress, cfg.HTTPClientTimeout))

	srv := server.New(cfg)

	// Register Routes
	locationhandler.NewLocationHandler(locationSvc).Register(srv.App)
	shippinghandler.NewShippingHandler(shippingSvc).Register(srv.App)
	customerhandler.NewCustomerHandler(customerSvc).Register(srv.App)
	cataloghandler.NewCatalogHandler(catalogSvc).Register(srv.App)
	orderhandler.NewOrderHandler(orderSvc).Register(srv.App)
	checkouthandler.NewCheckoutHandler(checkoutSvc).Register(srv.App)
	trackinghandler.NewTrackingHandler(trackingSvc).Register(srv.App)

	srv.RegisterHealth(map[string]server.HealthCheck{
		"redis":      redisCache.Ping,
		"jumpseller": store.HealthCheck,
	})

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
