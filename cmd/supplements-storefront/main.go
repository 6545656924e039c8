package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/supplements-storefront/docs"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/cart"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/health"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/tracing"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/cartsync"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/sendgrid"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Supplements Storefront API
//	@version					1.0
//	@description				Cart, promo code, cart sync and catalog import endpoints for the supplements storefront.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
func main() {
	// .env is optional, real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("⚠️ Could not read .env file", slog.String("error", err.Error()))
	}

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := tracing.Init(context.Background(), &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, products, cartNotifications, promos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis backs the cart store and product cache; without it both stay in memory
	var (
		appCache     cache.Cache
		promoLimiter repository.RateLimitRepository
	)

	withRedis := false

	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Warn("⚠️ Redis unavailable, falling back to in-memory cache", slog.String("error", err.Error()))
		appCache = cache.NewMemoryCache(cfg.Cache.DefaultTTL)
	} else {
		appCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		promoLimiter = repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
		withRedis = true
	}

	defer func() {
		if err := appCache.Close(); err != nil {
			slog.Error("⚠️ Error closing cache", slog.String("error", err.Error()))
		}
	}()

	emailService := sendgrid.NewEmailService(cfg.SendGrid)
	notificationService := service.NewCartNotificationService(cartNotifications, emailService, service.StoreInfo{
		URL:  cfg.Store.URL,
		Name: cfg.Store.Name,
	})

	syncers := func(shopper models.Shopper) cart.Syncer {
		if cfg.Cart.SyncBaseURL == "" {
			return service.LocalSyncer{Service: notificationService, Claims: shopper.Claims}
		}

		return cartsync.NewClient(cfg.Cart.SyncBaseURL, shopper.Token, nil)
	}

	cartService := service.NewCartService(appCache, promos, products, syncers, service.CartOptions{
		TTL:          cfg.Cart.StorageTTL,
		SyncTimeout:  cfg.Cart.SyncTimeout,
		Shipping:     cfg.Cart.Shipping,
		Taxes:        cfg.Cart.Taxes,
		PromoLimiter: promoLimiter,
	})
	productService := service.NewProductService(products, appCache)
	importService := service.NewCatalogImportService(products, appCache)

	cartHandler := handlers.NewCartHandler(cartService)
	cartSyncHandler := handlers.NewCartSyncHandler(notificationService)
	productHandler := handlers.NewProductHandler(productService)
	importHandler := handlers.NewCatalogImportHandler(importService, cfg.Import.MaxUploadBytes)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg, withRedis)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.Bool("redis", withRedis))

	// Setup router
	routerMux := http.NewServeMux()
	route := func(pattern string, h http.Handler) {
		routerMux.Handle(pattern, metrics.Instrument(pattern, otelhttp.NewHandler(h, pattern)))
	}

	route("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	route("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.RemoveAll()))
	route("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	route("POST /api/v1/cart/items/batch", authMiddleware.Authenticate(cartHandler.AddItems()))
	route("PATCH /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.UpdateItemQuantity()))
	route("DELETE /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.RemoveItem()))
	route("POST /api/v1/cart/promo", authMiddleware.Authenticate(cartHandler.ApplyPromoCode()))
	route("DELETE /api/v1/cart/promo", authMiddleware.Authenticate(cartHandler.RemovePromoCode()))
	route("PATCH /api/v1/cart/checkout", authMiddleware.Authenticate(cartHandler.UpdateCheckout()))

	route("POST "+cartsync.SyncPath, authMiddleware.Authenticate(cartSyncHandler.Sync()))
	route("PATCH "+cartsync.EditPath, authMiddleware.Authenticate(cartSyncHandler.Edit()))
	route("POST /api/cart/abandoned", middleware.RequireAPIKey(cfg.Security.AdminAPIKey, cartSyncHandler.SendAbandoned()))

	route("POST /api/v1/admin/products/import/preview", authMiddleware.RequireAdmin(importHandler.Preview()))
	route("POST /api/v1/admin/products/import", authMiddleware.RequireAdmin(importHandler.Import()))
	route("DELETE /api/v1/admin/products", authMiddleware.RequireAdmin(importHandler.DeleteAll()))

	route("GET /api/v1/products", productHandler.ListProducts())
	route("GET /api/v1/products/{handle}", productHandler.GetProduct())

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	if cfg.Env != "production" {
		routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	// Let in-flight cart syncs finish before the stores they write to close
	cartService.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
