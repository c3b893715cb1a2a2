package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/amansinghakash/legacy-battery/internal/cart"
	"github.com/amansinghakash/legacy-battery/internal/catalog"
	"github.com/amansinghakash/legacy-battery/internal/checkout"
	"github.com/amansinghakash/legacy-battery/internal/contact"
	"github.com/amansinghakash/legacy-battery/internal/events"
	"github.com/amansinghakash/legacy-battery/internal/httpapi"
)

type config struct {
	addr           string
	catalogDBPath  string
	migrationsPath string
	mongoURI       string
	mongoDatabase  string
	redisAddr      string
	kafkaBrokers   []string
	cartClearDelay time.Duration
	requestTimeout time.Duration
}

func loadConfig() config {
	return config{
		addr:           getEnv("SERVER_ADDR", ":8080"),
		catalogDBPath:  getEnv("CATALOG_DB_PATH", ""),
		migrationsPath: getEnv("MIGRATIONS_PATH", "internal/catalog/migrations"),
		mongoURI:       getEnv("MONGO_URI", ""),
		mongoDatabase:  getEnv("MONGO_DATABASE", "legacy_battery"),
		redisAddr:      getEnv("REDIS_ADDR", ""),
		kafkaBrokers:   splitList(getEnv("KAFKA_BROKERS", "")),
		cartClearDelay: getDurationEnv("CART_CLEAR_DELAY", checkout.DefaultClearDelay),
		requestTimeout: getDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalogRepo, err := buildCatalogRepo(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up catalog", zap.Error(err))
	}
	defer catalogRepo.Close()

	cartRepo, err := buildCartRepo(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up cart storage", zap.Error(err))
	}

	cache := buildCartCache(ctx, cfg, logger)
	publisher := buildPublisher(cfg, logger)
	defer publisher.Close()

	carts := cart.NewService(cartRepo, cache, logger)
	checkoutSvc := checkout.NewService(carts, publisher, logger, cfg.cartClearDelay)
	defer checkoutSvc.Close()
	contactSvc := contact.NewService(logger)

	router := httpapi.NewRouter(
		httpapi.NewCatalogHandler(catalogRepo, cfg.requestTimeout),
		httpapi.NewCartHandler(carts, catalogRepo, cfg.requestTimeout),
		httpapi.NewCheckoutHandler(checkoutSvc, cfg.requestTimeout),
		httpapi.NewContactHandler(contactSvc, cfg.requestTimeout),
	)

	srv := &http.Server{
		Addr:              cfg.addr,
		Handler:           otelhttp.NewHandler(router, "legacy-battery"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildCatalogRepo picks sqlite when CATALOG_DB_PATH is set, otherwise the
// in-memory seed catalog. The sqlite path gets migrated and seeded on boot.
func buildCatalogRepo(ctx context.Context, cfg config, logger *zap.Logger) (catalog.ProductRepository, error) {
	if cfg.catalogDBPath == "" {
		logger.Info("using in-memory catalog")
		return catalog.NewMemoryRepository(), nil
	}

	repo, err := catalog.NewSQLiteRepository(cfg.catalogDBPath)
	if err != nil {
		return nil, err
	}
	if err := repo.RunMigrations(cfg.migrationsPath); err != nil {
		return nil, err
	}
	if err := repo.Seed(ctx, catalog.SeedProducts()); err != nil {
		return nil, err
	}
	logger.Info("using sqlite catalog", zap.String("path", cfg.catalogDBPath))
	return repo, nil
}

func buildCartRepo(ctx context.Context, cfg config, logger *zap.Logger) (cart.CartRepository, error) {
	if cfg.mongoURI == "" {
		logger.Info("using in-memory cart storage")
		return cart.NewMemoryRepository(), nil
	}

	db, err := cart.ConnectMongoDB(ctx, cfg.mongoURI, cfg.mongoDatabase)
	if err != nil {
		return nil, err
	}
	logger.Info("using mongodb cart storage", zap.String("database", cfg.mongoDatabase))
	return cart.NewMongoRepository(db), nil
}

func buildCartCache(ctx context.Context, cfg config, logger *zap.Logger) cart.CartCache {
	if cfg.redisAddr == "" {
		return cart.NewNoopCache()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.redisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, running without cart cache", zap.Error(err))
		return cart.NewNoopCache()
	}
	logger.Info("using redis cart cache", zap.String("addr", cfg.redisAddr))
	return cart.NewRedisCache(client)
}

func buildPublisher(cfg config, logger *zap.Logger) events.OrderPublisher {
	if len(cfg.kafkaBrokers) == 0 {
		return events.NewNoopPublisher()
	}
	logger.Info("publishing order events to kafka", zap.Strings("brokers", cfg.kafkaBrokers))
	return events.NewKafkaPublisher(cfg.kafkaBrokers...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
