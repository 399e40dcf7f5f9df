package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/catalog-admin/docs"
	"github.com/aaravmahajanofficial/catalog-admin/internal/api/handlers"
	"github.com/aaravmahajanofficial/catalog-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/catalog-admin/internal/cache"
	"github.com/aaravmahajanofficial/catalog-admin/internal/config"
	"github.com/aaravmahajanofficial/catalog-admin/internal/health"
	"github.com/aaravmahajanofficial/catalog-admin/internal/metrics"
	repository "github.com/aaravmahajanofficial/catalog-admin/internal/repositories"
	service "github.com/aaravmahajanofficial/catalog-admin/internal/services"
	"github.com/aaravmahajanofficial/catalog-admin/internal/telemetry"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Catalog Admin API
//	@version					1.0
//	@description				Product catalog administration with cached listings and spreadsheet import/export.
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
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

	// Redis setup, shared by the import limiter and the redis cache backend
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	backend, err := cache.New(&cfg.Cache, redisClient)
	if err != nil {
		slog.Error("❌ Error creating the result cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer backend.Close()

	resultCache := cache.NewResultCache(backend, &cfg.Cache)
	importLimiter := repository.NewRateLimitRepo(redisClient, cfg)

	productService := service.NewProductService(repos.Product, resultCache)
	productHandler := handlers.NewProductHandler(productService)
	importService := service.NewImportExportService(repos.Product, resultCache, cfg.Import)
	importHandler := handlers.NewImportExportHandler(importService, cfg.Import.MaxUploadBytes)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	limitImports := middleware.LimitImports(importLimiter)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
		slog.String("cacheBackend", cfg.Cache.Backend))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products", authMiddleware.Authenticate(productHandler.ListProducts()))
	routerMux.HandleFunc("GET /api/v1/products/summary", authMiddleware.Authenticate(productHandler.Summary()))
	routerMux.HandleFunc("GET /api/v1/products/filter-options", authMiddleware.Authenticate(productHandler.FilterOptions()))
	routerMux.HandleFunc("DELETE /api/v1/products/cache", authMiddleware.Authenticate(productHandler.ClearCache()))
	routerMux.HandleFunc("PATCH /api/v1/products/bulk", authMiddleware.Authenticate(productHandler.BulkUpdate()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.GetProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("PUT /api/v1/products/{id}/channels", authMiddleware.Authenticate(productHandler.ReplaceChannels()))

	routerMux.HandleFunc("GET /api/v1/templates/{type}", importHandler.Template())
	routerMux.HandleFunc("GET /api/v1/export/{type}", authMiddleware.Authenticate(importHandler.Export()))
	routerMux.HandleFunc("POST /api/v1/import/{type}", authMiddleware.Authenticate(limitImports(importHandler.Import())))
	routerMux.HandleFunc("POST /api/v1/import/{type}/preview", authMiddleware.Authenticate(limitImports(importHandler.Preview())))
	routerMux.HandleFunc("POST /api/v1/import/{type}/confirm", authMiddleware.Authenticate(limitImports(importHandler.Confirm())))

	// Middleware chaining; metrics sits inside the logger so the mux pattern is set when it records
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown failed", slog.String("error", err.Error()))
	}
}
