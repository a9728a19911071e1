package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ev-storefront/internal/api"
	"ev-storefront/internal/config"
	"ev-storefront/internal/database"
	"ev-storefront/internal/infrastructure/auth"
	"ev-storefront/internal/infrastructure/messaging"
	"ev-storefront/internal/repo"
	"ev-storefront/internal/service"
	"ev-storefront/internal/worker"
	"ev-storefront/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer lg.Sync()
	lg = lg.WithFields(logger.String("app", cfg.App.Name))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.DB)
	if err != nil {
		lg.Fatal("postgres connection failed", logger.Error(err))
	}
	dbService := database.New(db, cfg.DB.DBName)
	defer dbService.Close()

	if err := database.Migrate(ctx, db); err != nil {
		lg.Fatal("schema migration failed", logger.Error(err))
	}

	productRepo := repo.NewProductRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	userRepo := repo.NewUserRepo(db)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	catalogService := service.NewCatalogService(productRepo, lg)
	orderService := service.NewOrderService(tokens, productRepo, orderRepo, lg)
	authService := service.NewAuthService(userRepo, tokens, lg)

	if cfg.App.SeedCatalog {
		if err := catalogService.Seed(ctx, database.Catalog()); err != nil {
			lg.Fatal("seed catalog failed", logger.Error(err))
		}
	}

	if cfg.RelayEnabled() {
		publisher := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, lg)
		defer publisher.Close()

		relay := worker.NewOrderEventRelay(orderRepo, publisher, cfg.Kafka.OrderTopic, cfg.Relay.Interval, cfg.Relay.BatchSize, lg)
		go relay.Run(ctx)
	} else {
		lg.Info("kafka brokers not configured, order event relay disabled")
	}

	handler := api.NewHandler(catalogService, orderService, authService, dbService, lg)
	router := api.NewRouter(handler, lg, cfg.Server.AllowedOrigins)

	server := api.NewServer(cfg.Server, router, lg)
	if err := server.Run(ctx); err != nil {
		lg.Error("server stopped with error", logger.Error(err))
	}
}
