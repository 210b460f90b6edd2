package handlers

import (
	"net/http"

	_ "github.com/flooring-crm/backend/docs"
	"github.com/flooring-crm/backend/internal/config"
	authhandlers "github.com/flooring-crm/backend/internal/handlers/auth"
	cataloghandlers "github.com/flooring-crm/backend/internal/handlers/catalog"
	healthhandlers "github.com/flooring-crm/backend/internal/handlers/health"
	paymenthandlers "github.com/flooring-crm/backend/internal/handlers/payments"
	"github.com/flooring-crm/backend/internal/service"
	"github.com/flooring-crm/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	ListMaterials(w http.ResponseWriter, r *http.Request)
	CreateMaterial(w http.ResponseWriter, r *http.Request)
	DeleteMaterial(w http.ResponseWriter, r *http.Request)
	ListServices(w http.ResponseWriter, r *http.Request)
	CreateService(w http.ResponseWriter, r *http.Request)
	DeleteService(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
	Root(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CatalogHandler CatalogHandler
	PaymentHandler PaymentHandler
	HealthHandler  HealthHandler

	authMW *auth.Middleware
}

func New(s *service.Services, authMW *auth.Middleware, db healthhandlers.Pinger, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CatalogHandler: cataloghandlers.New(s.CatalogService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		HealthHandler:  healthhandlers.New(db, cfg),
		authMW:         authMW,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", h.HealthHandler.Root)
	r.Get("/health", h.HealthHandler.Check)
	r.Get("/healthz", h.HealthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(h.authMW.Authenticate, auth.RequireActive)
				r.Get("/me", h.AuthHandler.Me)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(h.authMW.Authenticate, auth.RequireActive)
			r.Route("/materials", func(r chi.Router) {
				r.Get("/", h.CatalogHandler.ListMaterials)
				r.Post("/", h.CatalogHandler.CreateMaterial)
				r.Delete("/{id}", h.CatalogHandler.DeleteMaterial)
			})
			r.Route("/services", func(r chi.Router) {
				r.Get("/", h.CatalogHandler.ListServices)
				r.Post("/", h.CatalogHandler.CreateService)
				r.Delete("/{id}", h.CatalogHandler.DeleteService)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Post("/process", h.PaymentHandler.Process)
				r.Post("/verify", h.PaymentHandler.Verify)
				r.Get("/{payment_id}", h.PaymentHandler.GetStatus)
			})
		})
	})

	return r
}
