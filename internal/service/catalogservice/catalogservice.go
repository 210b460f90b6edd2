package catalogservice

import (
	"context"
	"errors"
	"strings"

	"github.com/flooring-crm/backend/internal/domain"
	materialrepo "github.com/flooring-crm/backend/internal/repo/material-repo"
	servicerepo "github.com/flooring-crm/backend/internal/repo/service-repo"
	"go.uber.org/zap"
)

type MaterialRepo interface {
	List(ctx context.Context, skip, limit int, search string) ([]domain.Material, error)
	FindByName(ctx context.Context, name string) (*domain.Material, error)
	Create(ctx context.Context, material *domain.Material) (*domain.Material, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceRepo interface {
	List(ctx context.Context, skip, limit int, search string) ([]domain.Service, error)
	FindByName(ctx context.Context, name string) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var (
	ErrMaterialNotFound = errors.New("Material not found")
	ErrServiceNotFound  = errors.New("Service not found")
)

// ValidationError aggregates every failed field check so the caller sees the
// full list at once.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Service struct {
	materials MaterialRepo
	services  ServiceRepo
}

func New(materials MaterialRepo, services ServiceRepo) *Service {
	return &Service{
		materials: materials,
		services:  services,
	}
}

func (s *Service) ListMaterials(ctx context.Context, skip, limit int, search string) ([]domain.Material, error) {
	materials, err := s.materials.List(ctx, skip, limit, search)
	if err != nil {
		zap.L().Error("can't list materials", zap.Error(err))
		return nil, err
	}
	return materials, nil
}

func (s *Service) CreateMaterial(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	var fieldErrors []string
	if material.PricePerUnit <= 0 {
		fieldErrors = append(fieldErrors, "Price per unit must be greater than 0")
	}
	if material.Stock < 0 {
		fieldErrors = append(fieldErrors, "Stock quantity cannot be negative")
	}
	if strings.TrimSpace(material.Name) == "" {
		fieldErrors = append(fieldErrors, "Material name is required")
	}
	if strings.TrimSpace(material.Description) == "" {
		fieldErrors = append(fieldErrors, "Material description is required")
	}
	if strings.TrimSpace(material.Unit) == "" {
		fieldErrors = append(fieldErrors, "Unit of measurement is required")
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Message: "Invalid material data", Errors: fieldErrors}
	}

	existing, err := s.materials.FindByName(ctx, material.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, duplicateMaterial()
	}

	created, err := s.materials.Create(ctx, material)
	if err != nil {
		if errors.Is(err, materialrepo.ErrNameExists) {
			return nil, duplicateMaterial()
		}
		zap.L().Error("can't create material", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) DeleteMaterial(ctx context.Context, id int) error {
	deleted, err := s.materials.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMaterialNotFound
	}
	return nil
}

func (s *Service) ListServices(ctx context.Context, skip, limit int, search string) ([]domain.Service, error) {
	services, err := s.services.List(ctx, skip, limit, search)
	if err != nil {
		zap.L().Error("can't list services", zap.Error(err))
		return nil, err
	}
	return services, nil
}

func (s *Service) CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	var fieldErrors []string
	if service.BasePrice <= 0 {
		fieldErrors = append(fieldErrors, "Base price must be greater than 0")
	}
	if strings.TrimSpace(service.Name) == "" {
		fieldErrors = append(fieldErrors, "Service name is required")
	}
	if strings.TrimSpace(service.Description) == "" {
		fieldErrors = append(fieldErrors, "Service description is required")
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Message: "Invalid service data", Errors: fieldErrors}
	}

	existing, err := s.services.FindByName(ctx, service.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, duplicateService()
	}

	created, err := s.services.Create(ctx, service)
	if err != nil {
		if errors.Is(err, servicerepo.ErrNameExists) {
			return nil, duplicateService()
		}
		zap.L().Error("can't create service", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) DeleteService(ctx context.Context, id int) error {
	deleted, err := s.services.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceNotFound
	}
	return nil
}

func duplicateMaterial() *ValidationError {
	return &ValidationError{
		Message: "Duplicate material",
		Errors:  []string{"A material with this name already exists. Please use a different name."},
	}
}

func duplicateService() *ValidationError {
	return &ValidationError{
		Message: "Duplicate service",
		Errors:  []string{"A service with this name already exists. Please use a different name."},
	}
}
