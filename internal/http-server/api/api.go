package api

import (
	"PackShop/internal/config"
	"PackShop/internal/http-server/handlers/banner"
	"PackShop/internal/http-server/handlers/cart"
	"PackShop/internal/http-server/handlers/errors"
	"PackShop/internal/http-server/handlers/health"
	"PackShop/internal/http-server/handlers/orders"
	"PackShop/internal/http-server/handlers/product"
	"PackShop/internal/http-server/handlers/user"
	"PackShop/internal/http-server/middleware/logging"
	"PackShop/internal/lib/sl"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	user.Core
	product.Core
	banner.Core
	cart.Core
	orders.Core
}

// NewRouter wires every route to its single store or provider call.
func NewRouter(log *slog.Logger, handler Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(logging.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/", health.Alive())

	router.Route("/users", func(r chi.Router) {
		r.Get("/", user.ListUsers(log, handler))
		r.Get("/{id}", user.GetUser(log, handler))
		r.Post("/", user.CreateUser(log, handler))
	})
	router.Delete("/firebase-users/{uid}", user.DeleteFirebaseUser(log, handler))
	router.Delete("/mongo-users/{id}", user.DeleteMongoUser(log, handler))

	router.Route("/products", func(r chi.Router) {
		r.Get("/", product.ListProducts(log, handler))
		r.Get("/{id}", product.GetProduct(log, handler))
		r.Post("/", product.CreateProduct(log, handler))
	})

	router.Route("/banner", func(r chi.Router) {
		r.Get("/", banner.ListBanners(log, handler))
		r.Post("/", banner.CreateBanner(log, handler))
	})

	router.Route("/add-to-cart", func(r chi.Router) {
		r.Get("/", cart.ListItems(log, handler))
		r.Get("/{id}", cart.GetItem(log, handler))
		r.Post("/", cart.AddItem(log, handler))
		r.Delete("/{id}", cart.RemoveItem(log, handler))
	})

	router.Route("/confirm-orders", func(r chi.Router) {
		r.Get("/", orders.ListConfirmed(log, handler))
		r.Post("/", orders.ConfirmOrder(log, handler))
	})

	router.Route("/cancel-orders", func(r chi.Router) {
		r.Get("/", orders.ListCancelled(log, handler))
		r.Post("/", orders.CancelOrder(log, handler))
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := NewRouter(log, handler)

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("package server is running", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
