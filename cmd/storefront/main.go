package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/clients"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/events"
	httpapi "github.com/andreasstove999/ecommerce-system/storefront-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/session"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lmicroseconds)

	// Base HTTP client (shared)
	sharedHTTP := &http.Client{
		Timeout: cfg.UpstreamTimeout,
	}
	if cfg.Tracing {
		sharedHTTP.Transport = otelhttp.NewTransport(http.DefaultTransport)
	}

	// Upstream clients
	catalogBase := clients.NewClient("catalog-api", cfg.CatalogURL, sharedHTTP)
	orderBase := clients.NewClient("order-api", cfg.OrderURL, sharedHTTP)

	catalogClient := clients.NewCatalogClient(catalogBase)
	orderClient := clients.NewOrderClient(orderBase)

	healthProbes := []clients.HealthProbe{
		{Name: "catalog-api", Client: catalogBase, Path: "/health"},
		{Name: "order-api", Client: orderBase, Path: "/health"},
	}

	sessionDeps := session.Deps{
		Catalog:       catalogClient,
		Orders:        orderClient,
		Logger:        logger,
		PageSize:      cfg.ProductsPageSize,
		ToastLifetime: cfg.ToastLifetime,
		RedirectDelay: cfg.CheckoutRedirectDelay,
		IdleTimeout:   cfg.SessionIdleTimeout,
	}

	// Order events are optional; the storefront works without a broker.
	if cfg.RabbitURL != "" {
		conn, err := events.Dial(cfg.RabbitURL)
		if err != nil {
			logger.Fatalf("rabbit dial: %v", err)
		}
		defer conn.Close()

		seq := events.NewSequencer()
		publisher, err := events.NewPublisher(conn, seq, events.PublisherOptions{})
		if err != nil {
			logger.Fatalf("rabbit publisher: %v", err)
		}
		defer publisher.Close()

		sessionDeps.Events = publisher
		sessionDeps.OnEvict = seq.Forget
		logger.Printf("publishing order events to %s", events.EventsExchange)
	} else {
		logger.Printf("RABBITMQ_URL not set, order events disabled")
	}

	sessions := session.NewManager(sessionDeps)

	// Closed on srv.Shutdown so open toast streams do not hold it up.
	streamsDone := make(chan struct{})

	var handler http.Handler = httpapi.NewRouter(httpapi.Deps{
		Logger:       logger,
		Cfg:          cfg,
		Sessions:     sessions,
		Products:     catalogClient,
		Orders:       orderClient,
		HealthProbes: healthProbes,
		Shutdown:     streamsDone,
	})
	if cfg.Tracing {
		handler = otelhttp.NewHandler(handler, "storefront")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv.RegisterOnShutdown(func() { close(streamsDone) })

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sessions.Run(ctx)
	}()

	go func() {
		logger.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Printf("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
	<-sweeperDone
	logger.Printf("shutdown complete")
}
