package service

import (
	"github.com/flooring-crm/backend/internal/config"
	"github.com/flooring-crm/backend/internal/handlers/auth"
	"github.com/flooring-crm/backend/internal/handlers/catalog"
	"github.com/flooring-crm/backend/internal/handlers/payments"

	pkgauth "github.com/flooring-crm/backend/pkg/auth"

	"github.com/flooring-crm/backend/internal/repo"
	authservice "github.com/flooring-crm/backend/internal/service/authservice"
	catalogservice "github.com/flooring-crm/backend/internal/service/catalogservice"
	paymentservice "github.com/flooring-crm/backend/internal/service/paymentservice"
)

type Services struct {
	AuthService    auth.Service
	CatalogService catalog.Service
	PaymentService *paymentservice.Service
}

// PaymentService stays concrete: the reconciler needs its Complete step, which
// sits outside the handler-facing interface.
var _ payments.Service = (*paymentservice.Service)(nil)

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface, cfg *config.Config) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL())
	catalogService := catalogservice.New(repo.MaterialRepo, repo.ServiceRepo)
	paymentService := paymentservice.New(repo.PaymentRepo)

	return &Services{
		AuthService:    authService,
		CatalogService: catalogService,
		PaymentService: paymentService,
	}
}
