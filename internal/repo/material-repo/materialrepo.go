package materialrepo

import (
	"context"
	"errors"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

var ErrNameExists = errors.New("a material with this name already exists")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// List returns a page of materials; a non-empty search narrows the result to
// rows whose name or description contains the term, case-insensitively.
func (r *Repository) List(ctx context.Context, skip, limit int, search string) ([]domain.Material, error) {
	query := `
        SELECT id, name, description, price_per_unit, unit, stock
        FROM materials
        WHERE $3 = '' OR name ILIKE '%' || $3 || '%' OR description ILIKE '%' || $3 || '%'
        ORDER BY id
        OFFSET $1 LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, skip, limit, search)
	if err != nil {
		zap.L().Error("can't list materials", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var materials []domain.Material
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.PricePerUnit, &m.Unit, &m.Stock); err != nil {
			zap.L().Error("can't scan material row", zap.Error(err))
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (r *Repository) FindByName(ctx context.Context, name string) (*domain.Material, error) {
	query := `
        SELECT id, name, description, price_per_unit, unit, stock
        FROM materials
        WHERE name = $1
    `
	var m domain.Material
	err := r.db.QueryRow(ctx, query, name).Scan(&m.ID, &m.Name, &m.Description, &m.PricePerUnit, &m.Unit, &m.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find material", zap.Error(err))
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Create(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	query := `
        INSERT INTO materials (name, description, price_per_unit, unit, stock)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		material.Name, material.Description, material.PricePerUnit, material.Unit, material.Stock).
		Scan(&material.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrNameExists
		}
		zap.L().Error("can't save material", zap.Error(err))
		return nil, err
	}
	return material, nil
}

// Delete reports whether a row was actually removed.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete material", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
