package servicerepo

import (
	"context"
	"errors"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var ErrNameExists = errors.New("a service with this name already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context, skip, limit int, search string) ([]domain.Service, error) {
	query := `
        SELECT id, name, description, base_price
        FROM services
        WHERE $3 = '' OR name ILIKE '%' || $3 || '%' OR description ILIKE '%' || $3 || '%'
        ORDER BY id
        OFFSET $1 LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, skip, limit, search)
	if err != nil {
		zap.L().Error("can't list services", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var services []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.BasePrice); err != nil {
			zap.L().Error("can't scan service row", zap.Error(err))
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Service, error) {
	query := `
        SELECT id, name, description, base_price
        FROM services
        WHERE name = $1
    `
	var s domain.Service
	err := r.db.QueryRow(ctx, query, name).Scan(&s.ID, &s.Name, &s.Description, &s.BasePrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find service", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	query := `
        INSERT INTO services (name, description, base_price)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, service.Name, service.Description, service.BasePrice).
		Scan(&service.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrNameExists
		}
		zap.L().Error("can't save service", zap.Error(err))
		return nil, err
	}
	return service, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete service", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
