package httpapi

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/clients"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/middleware"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/session"
)

type ProductFetcher interface {
	GetProduct(ctx context.Context, id int64) (*catalog.Product, error)
}

type OrderReader interface {
	ListOrders(ctx context.Context) ([]order.Order, error)
	GetOrder(ctx context.Context, id int64) (*order.Order, error)
}

type Deps struct {
	Logger *log.Logger
	Cfg    config.Config

	Sessions *session.Manager
	Products ProductFetcher
	Orders   OrderReader

	HealthProbes []clients.HealthProbe

	// Shutdown, when closed, ends open toast streams.
	Shutdown <-chan struct{}
}

type Handler struct {
	logger   *log.Logger
	sessions *session.Manager
	products ProductFetcher
	orders   OrderReader
	probes   []clients.HealthProbe
	shutdown <-chan struct{}
}

func NewRouter(d Deps) http.Handler {
	h := &Handler{
		logger:   d.Logger,
		sessions: d.Sessions,
		products: d.Products,
		orders:   d.Orders,
		probes:   d.HealthProbes,
		shutdown: d.Shutdown,
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(middleware.Recover(d.Logger))
	r.Use(middleware.CORS(d.Cfg.CORSAllowOrigins))

	r.Get("/health", h.Health)
	r.Get("/health/upstreams", h.Upstreams)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionID)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/{id}", h.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Delete("/", h.ClearCart)
			r.Post("/items", h.AddCartItem)
			r.Put("/items/{productId}", h.SetCartItemQuantity)
			r.Delete("/items/{productId}", h.RemoveCartItem)
		})

		r.Post("/checkout", h.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Get("/{id}", h.GetOrder)
		})

		r.Route("/toasts", func(r chi.Router) {
			r.Get("/", h.ListToasts)
			r.Get("/stream", h.StreamToasts)
			r.Delete("/{id}", h.DismissToast)
		})
	})

	return r
}

func (h *Handler) session(r *http.Request) *session.Session {
	return h.sessions.Resolve(middleware.GetSessionID(r.Context()))
}
