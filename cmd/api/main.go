package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"taskmanager/pkg/translator"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	httpadapter "taskmanager/internal/adapter/http"
	"taskmanager/internal/adapter/http/handlers"
	httpmiddleware "taskmanager/internal/adapter/http/middleware"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/config"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)

	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}

	ctx := context.Background()
	if err := dbadapter.EnsureSchema(ctx, db); err != nil {
		logger.Fatal("failed to create schema", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	if cfg.SeedTasks {
		if _, err := dbadapter.SeedTasks(ctx, taskRepository, dbadapter.DemoTasks()); err != nil {
			logger.Fatal("failed to seed tasks", zap.Error(err))
		}
	}

	taskService := appservice.NewTaskService(taskRepository, cfg.MaxTaskEntries)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.RequestIDMiddleware(), httpmiddleware.RequestLogger(logger, "/health", "/health/report"))
	healthHandler := handlers.NewHealthHandler(db, handlers.AppInfo{
		Name:           cfg.AppName,
		Version:        cfg.AppVersion,
		MaxTaskEntries: cfg.MaxTaskEntries,
	})
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", server.Addr),
			zap.String("driver", cfg.DbDriver),
			zap.Int("max_task_entries", cfg.MaxTaskEntries),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	// The HTTP server drains before the database closes.
	wait := gfshutdown.GracefulShutdown(context.Background(), shutdownTimeout, map[string]gfshutdown.Operation{
		"http-server": func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	exitCode := <-wait

	if err := db.Close(); err != nil {
		logger.Warn("failed to close database connection", zap.Error(err))
	}
	logger.Info("server stopped", zap.Int("exit_code", exitCode))
	_ = logger.Sync()
	os.Exit(exitCode)
}
