package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	_ "storefront/internal/generated/docs"
	"storefront/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	if configs.CatalogSeedFile != "" {
		seedCatalog(gormDB, configs.CatalogSeedFile, logger)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
	)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// The .env file is optional; real environment variables win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              envOr("HTTP_PORT", "8082"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             envOr("DB_SSLMODE", "disable"),
		OrderRequestTTL:       durationVariable("ORDER_REQUEST_TTL", 24*time.Hour),
		TransitionMaxAttempts: intVariable("TRANSITION_MAX_ATTEMPTS", 3),
		CatalogSeedFile:       os.Getenv("CATALOG_SEED_FILE"),
	}
	return config
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, value, err)
	}
	return d
}

func intVariable(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", key, value, err)
	}
	return n
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(postgres.Models()...); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func seedCatalog(gormDB *gorm.DB, path string, logger *slog.Logger) {
	seed, err := cmd.LoadCatalogSeed(path)
	if err != nil {
		log.Fatalf("Error loading catalog seed: %v", err)
	}
	added, err := postgres.SeedCatalog(context.Background(), gormDB, seed)
	if err != nil {
		log.Fatalf("Error seeding catalog: %v", err)
	}
	logger.Info("catalog seeded", "file", path, "added", added)
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpin.NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	openapiValidator, err := httpin.OpenAPIValidator(swagger)
	if err != nil {
		log.Fatalf("Error building request validator: %v", err)
	}
	e.Use(openapiValidator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, app.CreateHTTPServer())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
