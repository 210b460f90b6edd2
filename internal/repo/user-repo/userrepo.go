package userrepo

import (
	"context"
	"errors"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Unique-constraint violations surfaced when two registrations race: the
// store rejects the second insert and the auth layer reports a conflict.
var (
	ErrUsernameExists = errors.New("username is already registered")
	ErrEmailExists    = errors.New("email is already registered")
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, phone, address, is_active
		FROM users
		WHERE username = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Phone, &user.Address, &user.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, phone, address, is_active
		FROM users
		WHERE email = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.Phone, &user.Address, &user.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, phone, address, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.Phone, user.Address, user.IsActive).
		Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_username_key":
				return nil, ErrUsernameExists
			case "users_email_key":
				return nil, ErrEmailExists
			}
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Delete removes a user and its payments in one transaction. Ownership is
// explicit: the cascade is performed here, not left to an object graph.
func (repo *Repository) Delete(ctx context.Context, userID int) error {
	return repo.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := repo.db.Exec(ctx, `DELETE FROM payments WHERE user_id = $1`, userID); err != nil {
			zap.L().Error("can't delete user payments", zap.Error(err))
			return err
		}
		if _, err := repo.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
			zap.L().Error("can't delete user", zap.Error(err))
			return err
		}
		return nil
	})
}
