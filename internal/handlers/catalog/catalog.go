package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/dto"
	"github.com/flooring-crm/backend/internal/service/catalogservice"
	pkgauth "github.com/flooring-crm/backend/pkg/auth"
	"github.com/flooring-crm/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

const defaultPageLimit = 100

type Service interface {
	ListMaterials(ctx context.Context, skip, limit int, search string) ([]domain.Material, error)
	CreateMaterial(ctx context.Context, material *domain.Material) (*domain.Material, error)
	DeleteMaterial(ctx context.Context, id int) error
	ListServices(ctx context.Context, skip, limit int, search string) ([]domain.Service, error)
	CreateService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, id int) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListMaterials godoc
//
//	@Summary		List materials
//	@Description	List materials with pagination and optional substring search
//	@Tags			Catalog
//	@Produce		json
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Page size"	default(100)
//	@Param			search	query		string	false	"Case-insensitive name/description filter"
//	@Success		200		{array}		dto.MaterialResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/materials [get]
func (h *CatalogHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	skip, limit, search := pageParams(r)
	materials, err := h.catalogService.ListMaterials(r.Context(), skip, limit, search)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error listing materials")
		return
	}
	resp := make([]dto.MaterialResponseDTO, 0, len(materials))
	for _, m := range materials {
		resp = append(resp, toMaterialResponse(&m))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateMaterial godoc
//
//	@Summary		Create material
//	@Description	Create a new material, employee role only
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateMaterialRequestDTO	true	"Material"
//	@Success		200		{object}	dto.MaterialResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid material data"
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/materials [post]
func (h *CatalogHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if user.Role != domain.RoleEmployee {
		utils.RespondWithError(w, http.StatusForbidden, "Permission denied",
			"Only employees can create materials. Please contact your administrator for access.")
		return
	}
	var req dto.CreateMaterialRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	material, err := h.catalogService.CreateMaterial(r.Context(), &domain.Material{
		Name:         req.Name,
		Description:  req.Description,
		PricePerUnit: req.PricePerUnit,
		Unit:         req.Unit,
		Stock:        req.Stock,
	})
	if err != nil {
		var vErr *catalogservice.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(w, http.StatusBadRequest, vErr.Message, vErr.Errors...)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating material")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toMaterialResponse(material))
}

// DeleteMaterial godoc
//
//	@Summary		Delete material
//	@Description	Delete a material by id, employee role only
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path	int	true	"Material ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Permission denied"
//	@Failure		404	{object}	utils.Response	"Material not found"
//	@Security		BearerAuth
//	@Router			/api/materials/{id} [delete]
func (h *CatalogHandler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if user.Role != domain.RoleEmployee {
		utils.RespondWithError(w, http.StatusForbidden, "Only employees can delete materials")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Material not found")
		return
	}
	if err := h.catalogService.DeleteMaterial(r.Context(), id); err != nil {
		if errors.Is(err, catalogservice.ErrMaterialNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Material not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting material")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListServices godoc
//
//	@Summary		List services
//	@Description	List services with pagination and optional substring search
//	@Tags			Catalog
//	@Produce		json
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Page size"	default(100)
//	@Param			search	query		string	false	"Case-insensitive name/description filter"
//	@Success		200		{array}		dto.ServiceResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/services [get]
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	skip, limit, search := pageParams(r)
	services, err := h.catalogService.ListServices(r.Context(), skip, limit, search)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error listing services")
		return
	}
	resp := make([]dto.ServiceResponseDTO, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(&s))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateService godoc
//
//	@Summary		Create service
//	@Description	Create a new service, employee role only
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateServiceRequestDTO	true	"Service"
//	@Success		200		{object}	dto.ServiceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid service data"
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/services [post]
func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if user.Role != domain.RoleEmployee {
		utils.RespondWithError(w, http.StatusForbidden, "Permission denied",
			"Only employees can create services. Please contact your administrator for access.")
		return
	}
	var req dto.CreateServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	service, err := h.catalogService.CreateService(r.Context(), &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	})
	if err != nil {
		var vErr *catalogservice.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(w, http.StatusBadRequest, vErr.Message, vErr.Errors...)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating service")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toServiceResponse(service))
}

// DeleteService godoc
//
//	@Summary		Delete service
//	@Description	Delete a service by id, employee role only
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path	int	true	"Service ID"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Permission denied"
//	@Failure		404	{object}	utils.Response	"Service not found"
//	@Security		BearerAuth
//	@Router			/api/services/{id} [delete]
func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	if user.Role != domain.RoleEmployee {
		utils.RespondWithError(w, http.StatusForbidden, "Only employees can delete services")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		return
	}
	if err := h.catalogService.DeleteService(r.Context(), id); err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pageParams(r *http.Request) (skip, limit int, search string) {
	limit = defaultPageLimit
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			limit = n
		}
	}
	return skip, limit, r.URL.Query().Get("search")
}

func toMaterialResponse(m *domain.Material) dto.MaterialResponseDTO {
	return dto.MaterialResponseDTO{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		PricePerUnit: m.PricePerUnit,
		Unit:         m.Unit,
		Stock:        m.Stock,
	}
}

func toServiceResponse(s *domain.Service) dto.ServiceResponseDTO {
	return dto.ServiceResponseDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
	}
}
