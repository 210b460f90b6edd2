package service

import (
	"testing"

	"github.com/flooring-crm/backend/internal/config"
	"github.com/flooring-crm/backend/internal/repo"
	"github.com/flooring-crm/backend/internal/service/authservice"
	"github.com/flooring-crm/backend/internal/service/catalogservice"
	"github.com/flooring-crm/backend/internal/service/paymentservice"
	pkgauth "github.com/flooring-crm/backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockMaterialRepo := catalogservice.NewMockMaterialRepo(ctrl)
	mockServiceRepo := catalogservice.NewMockServiceRepo(ctrl)
	mockPaymentRepo := paymentservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		UserRepo:     mockUserRepo,
		MaterialRepo: mockMaterialRepo,
		ServiceRepo:  mockServiceRepo,
		PaymentRepo:  mockPaymentRepo,
	}

	cfg := &config.Config{TokenTTLMinutes: 30}
	services := New(repos, pkgauth.NewMockJWTServiceInterface(ctrl), cfg)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.PaymentService)
}
