package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/cartstore"
	"ravio-storefront/internal/config"
	"ravio-storefront/internal/db"
	"ravio-storefront/internal/httpserver"
	newsletterrepo "ravio-storefront/internal/repository/newsletter"
	orderrepo "ravio-storefront/internal/repository/order"
	productrepo "ravio-storefront/internal/repository/product"
	catalogsvc "ravio-storefront/internal/service/catalog"
	checkoutsvc "ravio-storefront/internal/service/checkout"
	dropssvc "ravio-storefront/internal/service/drops"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	var snapshots cartstore.Store
	var redisStore *cartstore.RedisStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		redisStore = cartstore.NewRedisStore(client)
		snapshots = redisStore
		logger.Printf("cart snapshots in redis at %s", cfg.RedisAddr)
	} else {
		snapshots = cartstore.NewMemoryStore()
		logger.Printf("cart snapshots in process memory (REDIS_ADDR not set)")
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	newsletterRepo := newsletterrepo.NewPostgres(dbpool, logger)

	deps := httpserver.Deps{
		Carts:       cart.NewManager(snapshots, logger),
		CatalogSvc:  catalogsvc.New(productRepo),
		CheckoutSvc: checkoutsvc.New(orderRepo, logger),
		DropsSvc:    dropssvc.New(cfg.NextDropAt),
		Orders:      orderRepo,
		Newsletter:  newsletterRepo,
		AdminToken:  cfg.AdminToken,
		CORSOrigins: cfg.CORSOrigins,
	}
	if redisStore != nil {
		deps.Snapshots = redisStore
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
