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

	"ordering/cmd"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	requestTimeout  = 15 * time.Second
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	gormDB := openDatabase(config)

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	startWebServer(app, config.HTTPPort, logger)

	if err := app.Close(); err != nil {
		logger.Error("failed to close notifier", "error", err)
	}
	closeDatabase(gormDB, logger)
}

func openDatabase(config cmd.Config) *gorm.DB {
	if config.Storage != cmd.StoragePostgres {
		return nil
	}

	gormDB, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error configuring database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB
}

func closeDatabase(gormDB *gorm.DB, logger *slog.Logger) {
	if gormDB == nil {
		return
	}
	sqlDB, err := gormDB.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		logger.Error("failed to close database", "error", err)
	}
}

// startWebServer serves HTTP and runs the background jobs until SIGINT or SIGTERM.
func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}
	e.Server.ReadTimeout = requestTimeout
	e.Server.WriteTimeout = requestTimeout

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", "error", err)
	}
	jobManager.StopAll()
}
