package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cart-widget/internal/catalog"
	"github.com/nikolayk812/cart-widget/internal/config"
	"github.com/nikolayk812/cart-widget/internal/logger"
	"github.com/nikolayk812/cart-widget/internal/notify"
	"github.com/nikolayk812/cart-widget/internal/port"
	"github.com/nikolayk812/cart-widget/internal/repository"
	"github.com/nikolayk812/cart-widget/internal/server"
	"github.com/nikolayk812/cart-widget/internal/widget"
	"go.uber.org/zap"
)

func main() {
	demo := flag.Bool("demo", false, "render the demo cart to stdout and exit")
	flag.Parse()

	if err := run(*demo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(demo bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	orders, closeOrders, err := openOrders(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeOrders()

	products, err := catalog.Default(cfg.Currency)
	if err != nil {
		return fmt.Errorf("catalog.Default: %w", err)
	}

	notifier := notify.NewLogger(log)
	cart := widget.New(cfg.Currency, notifier, orders,
		widget.WithLogger(log),
		widget.WithLocale(cfg.Locale),
	)

	if demo {
		return runDemo(ctx, os.Stdout, cart, products)
	}

	return serve(ctx, cfg, log, server.New(cart, products, orders, log))
}

func openOrders(ctx context.Context, cfg config.Config, log *zap.Logger) (port.OrderRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Info("no database configured, orders are kept in memory")
		return repository.NewMemoryOrders(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	orders, err := repository.NewOrders(pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("repository.NewOrders: %w", err)
	}

	return orders, pool.Close, nil
}

// runDemo adds one of each catalog product, prints the cart and places the
// order.
func runDemo(ctx context.Context, w io.Writer, cart *widget.Cart, products port.ProductCatalog) error {
	list, err := products.List(ctx)
	if err != nil {
		return fmt.Errorf("products.List: %w", err)
	}

	for _, p := range list {
		if err := cart.AddItem(p, 1); err != nil {
			return fmt.Errorf("cart.AddItem: %w", err)
		}
	}

	fragment, err := cart.HTML()
	if err != nil {
		return fmt.Errorf("cart.HTML: %w", err)
	}
	fmt.Fprintln(w, fragment)

	n, err := cart.PlaceOrder(ctx)
	if err != nil {
		return fmt.Errorf("cart.PlaceOrder: %w", err)
	}
	fmt.Fprintln(w, n.Message)

	return nil
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger, srv *server.Server) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpServer.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpServer.Shutdown: %w", err)
	}

	<-errCh
	log.Info("bye")
	return nil
}
