package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usersync/internal/usersync/client"
	"usersync/internal/usersync/config"
	"usersync/internal/usersync/handler"
	"usersync/internal/usersync/report"
	"usersync/internal/usersync/repository"
	"usersync/internal/usersync/router"
	"usersync/internal/usersync/service"
	"usersync/internal/usersync/util"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		util.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	util.InitLogger(cfg.LogLevel)
	logger := util.GetLogger()

	// 2. Run history store
	var runs repository.RunRepository
	var mongoClient *mongo.Client

	if cfg.UseMongo() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		cancel()
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}

		mongoRuns := repository.NewMongoRunRepository(mongoClient.Database(cfg.DBName), cfg.RunsCollection)
		if err := mongoRuns.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("Failed to ensure run history indexes", "error", err)
		}
		runs = mongoRuns
	} else {
		logger.Info("MONGO_URI not set, keeping run history in memory")
		runs = repository.NewMemoryRunRepository()
	}

	// 3. Init Layers
	userClient := client.NewUserClient(cfg.ExternalAPIBaseURL, cfg.ExternalAPITimeout)
	reports := report.NewFileWriter(cfg.ReportDir)
	svc := service.NewService(userClient, reports, runs)
	h := handler.NewUserHandler(svc)

	// 4. Init Echo & Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h)

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "remote_api", cfg.ExternalAPIBaseURL, "report_dir", cfg.ReportDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Error("Failed to disconnect DB", "error", err)
		}
	}

	logger.Info("Server exited properly")
}
