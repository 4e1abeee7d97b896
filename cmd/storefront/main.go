package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixelcraft-studio/marketplace-api/pkg/httpx"
	"github.com/pixelcraft-studio/marketplace-api/pkg/logging"
	"github.com/pixelcraft-studio/marketplace-api/pkg/shutdown"
	"github.com/pixelcraft-studio/marketplace-api/pkg/tracing"

	catalogapp "github.com/pixelcraft-studio/marketplace-api/internal/catalog/application"
	cataloghttp "github.com/pixelcraft-studio/marketplace-api/internal/catalog/infrastructure/http"
	catalogmongo "github.com/pixelcraft-studio/marketplace-api/internal/catalog/infrastructure/mongo"
	orderapp "github.com/pixelcraft-studio/marketplace-api/internal/order/application"
	orderhttp "github.com/pixelcraft-studio/marketplace-api/internal/order/infrastructure/http"
	ordermongo "github.com/pixelcraft-studio/marketplace-api/internal/order/infrastructure/mongo"
)

func main() {
	log := logging.New(env("LOG_LEVEL", "info"))

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Configuration
	mongoURL := env("MONGO_URL", "mongodb://localhost:27017")
	dbName := env("DB_NAME", "marketplace")
	httpAddr := env("HTTP_ADDR", ":8080")
	corsOrigins := strings.Split(env("CORS_ORIGINS", "*"), ",")
	verifyPrices := env("VERIFY_PRICES", "") == "true"
	otlpEndpoint := env("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	tp, err := tracing.Init(ctx, "storefront", otlpEndpoint, log)
	if err != nil {
		log.Error("otel init failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = tp.Shutdown(context.Background()) }()

	// Mongo setup
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(dbName)

	// Catalog
	productRepo := catalogmongo.NewRepository(log, db)
	catalogSvc := catalogapp.NewService(log, productRepo)
	if err := catalogSvc.SeedIfEmpty(ctx); err != nil {
		log.Error("catalog seed failed", "err", err)
		os.Exit(1)
	}

	// Orders
	orderRepo := ordermongo.NewRepository(log, db)
	var orderOpts []orderapp.Option
	if verifyPrices {
		orderOpts = append(orderOpts, orderapp.WithPriceVerification(catalogSvc))
	}
	orderSvc := orderapp.NewService(log, orderRepo, orderOpts...)

	// HTTP server
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			httpx.JSON(w, http.StatusOK, map[string]string{"message": "Digital Products Marketplace API"})
		})
		cataloghttp.NewHandler(log, catalogSvc).Register(r)
		orderhttp.NewHandler(log, orderSvc).Register(r)
	})

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("storefront shutdown complete")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
