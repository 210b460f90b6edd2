package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
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

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (payment_id, user_id, amount, currency, status, receipt_url, payment_data, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		payment.PaymentID, payment.UserID, payment.Amount, payment.Currency, payment.Status,
		payment.ReceiptURL, payment.Metadata, payment.CreatedAt, payment.UpdatedAt).
		Scan(&payment.ID)
	if err != nil {
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// FindByPaymentID is always scoped to the owner. A payment that belongs to
// another user is indistinguishable from one that does not exist.
func (r *Repository) FindByPaymentID(ctx context.Context, paymentID string, userID int) (*domain.Payment, error) {
	query := `
        SELECT id, payment_id, user_id, amount, currency, status, receipt_url, payment_data, created_at, updated_at
        FROM payments
        WHERE payment_id = $1 AND user_id = $2
    `
	row := r.db.QueryRow(ctx, query, paymentID, userID)

	var p domain.Payment
	err := row.Scan(&p.ID, &p.PaymentID, &p.UserID, &p.Amount, &p.Currency, &p.Status,
		&p.ReceiptURL, &p.Metadata, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(ctx context.Context, payment *domain.Payment) error {
	query := `
        UPDATE payments
        SET status = $1, receipt_url = $2, updated_at = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, payment.Status, payment.ReceiptURL, payment.UpdatedAt, payment.ID)
		if err != nil {
			zap.L().Error("can't update payment", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindPendingBefore returns payments still pending past the cutoff, oldest
// first. The reconciler uses it to settle rows the synchronous path left
// behind.
func (r *Repository) FindPendingBefore(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Payment, error) {
	query := `
        SELECT id, payment_id, user_id, amount, currency, status, receipt_url, payment_data, created_at, updated_at
        FROM payments
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, cutoff, int(limit))
	if err != nil {
		zap.L().Error("can't get pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.PaymentID, &p.UserID, &p.Amount, &p.Currency, &p.Status,
			&p.ReceiptURL, &p.Metadata, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
