package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"musclesaction-store/internal/config"
	"musclesaction-store/internal/db"
	"musclesaction-store/internal/httpserver"
	adminrepo "musclesaction-store/internal/repository/admin"
	cartrepo "musclesaction-store/internal/repository/cart"
	couponrepo "musclesaction-store/internal/repository/coupon"
	offerrepo "musclesaction-store/internal/repository/offer"
	orderrepo "musclesaction-store/internal/repository/order"
	productrepo "musclesaction-store/internal/repository/product"
	adminsvc "musclesaction-store/internal/service/admin"
	cartsvc "musclesaction-store/internal/service/cart"
	catalogsvc "musclesaction-store/internal/service/catalog"
	checkoutsvc "musclesaction-store/internal/service/checkout"
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

	productRepo := productrepo.NewPostgres(dbpool, logger)
	offerRepo := offerrepo.NewPostgres(dbpool, logger)
	couponRepo := couponrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool, logger)
	adminRepo := adminrepo.NewPostgres(dbpool, logger)

	catalogService := catalogsvc.New(productRepo, offerRepo)
	cartService := cartsvc.New(cartRepo, productRepo, logger)
	checkoutService := checkoutsvc.New(cartService, couponRepo, orderRepo, logger)
	adminService := adminsvc.New(adminRepo, productRepo, offerRepo, couponRepo, orderRepo, cfg.AdminTokenTTL, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  catalogService,
		Cart:     cartService,
		Checkout: checkoutService,
		Admin:    adminService,
	}, httpserver.Options{
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
	})

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
