package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusfood/cmd"
	httpadapter "campusfood/internal/adapters/in/http"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	gormDB, err := cmd.OpenStore(configs)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	loadDotEnv()
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT", "8080"),
		DBDriver:    goDotEnvVariable("DB_DRIVER", cmd.DriverPostgres),
		DBHost:      goDotEnvVariable("DB_HOST", ""),
		DBPort:      goDotEnvVariable("DB_PORT", "5432"),
		DBUser:      goDotEnvVariable("DB_USER", ""),
		DBPassword:  goDotEnvVariable("DB_PASSWORD", ""),
		DBName:      goDotEnvVariable("DB_NAME", ""),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE", "disable"),
		SQLitePath:  goDotEnvVariable("SQLITE_PATH", "campusfood.db"),
		JWTSecret:   goDotEnvVariable("JWT_SECRET", ""),
		LogLevel:    goDotEnvVariable("LOG_LEVEL", "info"),
		OverdueCron: goDotEnvVariable("OVERDUE_CRON", ""),
	}
	return config
}

// loadDotEnv reads .env when present. Deployments set the environment directly.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := httpadapter.NewEcho(logger)
	app.CreateServer().Register(e, []byte(configs.JWTSecret))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
}
