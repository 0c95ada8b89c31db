package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ayoya/cmd"
	"ayoya/internal/adapters/out/postgres/courierrepo"
	"ayoya/internal/adapters/out/postgres/orderrepo"
	"ayoya/internal/adapters/out/redis"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	orderCache := mustConnectCache(configs)
	defer func() { _ = orderCache.Close() }()

	app := cmd.NewCompositionRoot(configs, gormDB, orderCache)

	jobManager := app.CreateJobManager(slog.Default())
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine in containers, where the environment is
	// already populated.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:         envOrDefault("HTTP_PORT", "8000"),
		DBHost:           envOrDefault("DB_HOST", "localhost"),
		DBPort:           envOrDefault("DB_PORT", "5432"),
		DBUser:           envOrDefault("DB_USER", "ayoya"),
		DBPassword:       envOrDefault("DB_PASSWORD", ""),
		DBName:           envOrDefault("DB_NAME", "ayoya"),
		DBSslMode:        envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:        envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    envOrDefault("REDIS_PASSWORD", ""),
		RedisDB:          envInt("REDIS_DB", 0),
		CacheTTL:         envDuration("CACHE_TTL", redis.DefaultTTL),
		StaleAfter:       envDuration("STALE_AFTER", 30*time.Minute),
		BottlePrice:      envInt("BOTTLE_PRICE", 0),
		CartonPrice:      envInt("CARTON_PRICE", 0),
		DeliveryFee:      envInt("DELIVERY_FEE", 0),
		BottlesPerCarton: envInt("BOTTLES_PER_CARTON", 0),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &courierrepo.CourierDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustConnectCache(configs cmd.Config) *redis.OrderCache {
	orderCache, err := redis.NewOrderCache(context.Background(),
		configs.RedisAddr, configs.RedisPassword, configs.RedisDB, configs.CacheTTL)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	return orderCache
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
