package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accstore-be/internal/api"
	"accstore-be/internal/cart"
	"accstore-be/internal/category"
	"accstore-be/internal/checkout"
	"accstore-be/internal/config"
	"accstore-be/internal/db"
	"accstore-be/internal/item"
	"accstore-be/internal/logger"
	"accstore-be/internal/metrics"
	"accstore-be/internal/notification"
	"accstore-be/internal/order"
	"accstore-be/internal/page"
	"accstore-be/internal/storage"
	"accstore-be/internal/user"

	"go.uber.org/zap"
)

// Indirections so tests can swap the DB and the listener.
var (
	initDBFunc      = db.InitDB
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router, err := newServer(cfg, database)
	if err != nil {
		return err
	}

	logger.L().Info("server starting", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer wires every repository, service and handler off the injected
// DB handle.
func newServer(cfg *config.Config, database *sql.DB) (http.Handler, error) {
	images, err := newImageStore(cfg)
	if err != nil {
		return nil, err
	}

	carts := cart.NewManager(cart.NewFileStore(cfg.CartFile))

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	categorySvc := category.NewService(category.NewRepository(database), images)
	itemSvc := item.NewService(item.NewRepository(database), images)
	pageSvc := page.NewService(page.NewRepository(database))

	sink := notification.NewTelegramSink(cfg.BotToken, cfg.OrdersChatID)
	m := metrics.New()
	hub := api.NewHub()

	checkoutSvc := checkout.NewService(carts, userRepo, orderRepo, sink, hub, m, cfg.CheckoutTimeout)

	handler := api.NewHandler(api.Deps{
		Config:     cfg,
		Carts:      carts,
		Checkout:   checkoutSvc,
		Categories: categorySvc,
		Items:      itemSvc,
		Pages:      pageSvc,
		Orders:     orderSvc,
		Users:      userSvc,
		Images:     images,
		Metrics:    m,
		Hub:        hub,
	})

	return api.NewRouter(handler), nil
}

func newImageStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Store(cfg)
	}
	return storage.NewLocalStore(cfg.UploadDir)
}

// startServer runs until SIGINT/SIGTERM, then drains in-flight requests.
func startServer(addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.L().Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
