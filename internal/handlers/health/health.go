package health

import (
	"context"
	"net/http"
	"time"

	"github.com/flooring-crm/backend/internal/config"
	"github.com/flooring-crm/backend/internal/dto"
	"github.com/flooring-crm/backend/pkg/utils"
	"go.uber.org/zap"
)

const version = "1.0.0"

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	cfg *config.Config
}

func New(db Pinger, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		db:  db,
		cfg: cfg,
	}
}

// Check godoc
//
//	@Summary		Health probe
//	@Description	Liveness and store connectivity. Always 200; orchestration must inspect the status field.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dto.HealthResponseDTO
//	@Router			/health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		zap.L().Error("health check failed", zap.Error(err))
		utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponseDTO{
			Status:    "degraded",
			Message:   "Service is experiencing issues",
			Timestamp: time.Now().UTC(),
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponseDTO{
		Status:      "healthy",
		Message:     "Service is operational",
		Version:     version,
		Environment: h.cfg.Environment,
		Timestamp:   time.Now().UTC(),
		Database: &dto.HealthDatabaseDTO{
			Status: "healthy",
			Type:   "postgresql",
			Pool: dto.HealthPoolDTO{
				Size:        h.cfg.PoolSize,
				MaxOverflow: h.cfg.PoolMaxOverflow,
				Timeout:     h.cfg.PoolTimeoutSeconds,
				Recycle:     h.cfg.PoolRecycleSeconds,
			},
		},
	})
}

// Root godoc
//
//	@Summary		API root
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dto.RootResponseDTO
//	@Router			/ [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.RootResponseDTO{
		Status:    "healthy",
		Message:   "Flooring CRM API is running",
		DocsURL:   "/swagger/index.html",
		Timestamp: time.Now().UTC(),
	})
}
