package repo

import (
	"github.com/flooring-crm/backend/internal/pg"
	materialrepo "github.com/flooring-crm/backend/internal/repo/material-repo"
	paymentrepo "github.com/flooring-crm/backend/internal/repo/payment-repo"
	servicerepo "github.com/flooring-crm/backend/internal/repo/service-repo"
	userrepo "github.com/flooring-crm/backend/internal/repo/user-repo"
	"github.com/flooring-crm/backend/internal/service/authservice"
	"github.com/flooring-crm/backend/internal/service/catalogservice"
	"github.com/flooring-crm/backend/internal/service/paymentservice"
)

type Repositories struct {
	UserRepo     authservice.Repo
	MaterialRepo catalogservice.MaterialRepo
	ServiceRepo  catalogservice.ServiceRepo
	PaymentRepo  paymentservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn, txManager)
	materialRepo := materialrepo.New(conn)
	serviceRepo := servicerepo.New(conn)
	paymentRepo := paymentrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:     userRepo,
		MaterialRepo: materialRepo,
		ServiceRepo:  serviceRepo,
		PaymentRepo:  paymentRepo,
	}
}
