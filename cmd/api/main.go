package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mardika/inventory-service/config"
	"github.com/mardika/inventory-service/internal/auth"
	authhandler "github.com/mardika/inventory-service/internal/auth/handler"
	invoicehandler "github.com/mardika/inventory-service/internal/invoice/handler"
	invoicerepository "github.com/mardika/inventory-service/internal/invoice/repository"
	invoiceusecase "github.com/mardika/inventory-service/internal/invoice/usecase"
	invoiceitemhandler "github.com/mardika/inventory-service/internal/invoiceitem/handler"
	invoiceitemrepository "github.com/mardika/inventory-service/internal/invoiceitem/repository"
	invoiceitemusecase "github.com/mardika/inventory-service/internal/invoiceitem/usecase"
	itemhandler "github.com/mardika/inventory-service/internal/item/handler"
	itemrepository "github.com/mardika/inventory-service/internal/item/repository"
	itemusecase "github.com/mardika/inventory-service/internal/item/usecase"
	personhandler "github.com/mardika/inventory-service/internal/person/handler"
	personrepository "github.com/mardika/inventory-service/internal/person/repository"
	personusecase "github.com/mardika/inventory-service/internal/person/usecase"
	"github.com/mardika/inventory-service/internal/server"
	"github.com/mardika/inventory-service/migrations"
	"github.com/mardika/inventory-service/pkg/db"
	"github.com/mardika/inventory-service/pkg/logger"
)

func main() {
	// Absent .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.LoadEnv()
	isDevelopment := cfg.Server.AppEnv == "development"

	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     isDevelopment,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	if !isDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.NewPostgres(&db.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer database.Close()

	if err := db.RunMigrations(database, migrations.FS); err != nil {
		appLogger.Fatal("failed to run migrations", zap.Error(err))
	}

	tokenManager := auth.NewManager(cfg.JWT.SecretKey, time.Duration(cfg.JWT.TokenTTL)*time.Hour)

	itemRepo := itemrepository.NewPGRepository(database)
	personRepo := personrepository.NewPGRepository(database)
	invoiceRepo := invoicerepository.NewPGRepository(database)
	linkRepo := invoiceitemrepository.NewPGRepository(database)

	itemUC := itemusecase.NewItemUseCase(itemRepo, linkRepo, appLogger)
	personUC := personusecase.NewPersonUseCase(personRepo, appLogger)
	invoiceUC := invoiceusecase.NewInvoiceUseCase(invoiceRepo, linkRepo, appLogger)
	linkUC := invoiceitemusecase.NewInvoiceItemUseCase(linkRepo, appLogger)

	router := server.NewRouter(&server.RouterConfig{
		Logger:       appLogger,
		DB:           database,
		TokenManager: tokenManager,
		Auth:         authhandler.NewAuthHandler(tokenManager, &auth.StaticValidator{}, appLogger),
		Items:        itemhandler.NewItemHandler(itemUC, appLogger),
		Persons:      personhandler.NewPersonHandler(personUC, appLogger),
		Invoices:     invoicehandler.NewInvoiceHandler(invoiceUC, appLogger),
		InvoiceItems: invoiceitemhandler.NewInvoiceItemHandler(linkUC, appLogger),
	})

	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("http server listening", zap.String("addr", cfg.Server.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("http server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
