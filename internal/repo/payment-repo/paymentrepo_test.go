package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, pg.NewTXManager(mockDB))
	defer mockDB.Close()

	return repo, mockDB
}

func paymentColumns() []string {
	return []string{"id", "payment_id", "user_id", "amount", "currency", "status", "receipt_url", "payment_data", "created_at", "updated_at"}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO payments (payment_id, user_id, amount, currency, status, receipt_url, payment_data, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `)

	now := time.Now().UTC()
	payment := &domain.Payment{
		PaymentID: "pay_1700000000_1_a1b2c3d4",
		UserID:    1,
		Amount:    199.99,
		Currency:  domain.CurrencyUSD,
		Status:    domain.PaymentStatusPending,
		Metadata:  map[string]any{"source_id": "src_123"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("Create successfully", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(payment.PaymentID, 1, 199.99, domain.CurrencyUSD, domain.PaymentStatusPending,
				"", payment.Metadata, now, now).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		created, err := repo.Create(context.Background(), payment)
		assert.NoError(t, err)
		assert.Equal(t, 1, created.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(payment.PaymentID, 1, 199.99, domain.CurrencyUSD, domain.PaymentStatusPending,
				"", payment.Metadata, now, now).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), payment)
		assert.Error(t, err)
	})
}

func TestRepository_FindByPaymentID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, payment_id, user_id, amount, currency, status, receipt_url, payment_data, created_at, updated_at
        FROM payments
        WHERE payment_id = $1 AND user_id = $2
    `)

	now := time.Now().UTC()

	t.Run("Payment found for its owner", func(t *testing.T) {
		rows := pgxmock.NewRows(paymentColumns()).
			AddRow(1, "pay_x", 1, 199.99, domain.CurrencyUSD, domain.PaymentStatusCompleted,
				"https://receipts.example.com/pay_x", map[string]any{"source_id": "src_123"}, now, now)
		mock.ExpectQuery(query).WithArgs("pay_x", 1).WillReturnRows(rows)

		payment, err := repo.FindByPaymentID(context.Background(), "pay_x", 1)
		assert.NoError(t, err)
		assert.Equal(t, "pay_x", payment.PaymentID)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	})

	t.Run("Another user's payment reads as absent", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("pay_x", 2).WillReturnError(pgx.ErrNoRows)

		payment, err := repo.FindByPaymentID(context.Background(), "pay_x", 2)
		assert.NoError(t, err)
		assert.Nil(t, payment)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE payments
        SET status = $1, receipt_url = $2, updated_at = $3
        WHERE id = $4
    `)

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:         1,
		Status:     domain.PaymentStatusCompleted,
		ReceiptURL: "https://receipts.example.com/pay_x",
		UpdatedAt:  now,
	}

	t.Run("Update inside a transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(domain.PaymentStatusCompleted, payment.ReceiptURL, now, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Update(context.Background(), payment))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(domain.PaymentStatusCompleted, payment.ReceiptURL, now, 1).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		assert.Error(t, repo.Update(context.Background(), payment))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindPendingBefore(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, payment_id, user_id, amount, currency, status, receipt_url, payment_data, created_at, updated_at
        FROM payments
        WHERE status = 'pending' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `)

	cutoff := time.Now().UTC().Add(-time.Minute)
	created := cutoff.Add(-time.Hour)

	rows := pgxmock.NewRows(paymentColumns()).
		AddRow(1, "pay_a", 1, 50.0, domain.CurrencyUSD, domain.PaymentStatusPending, "", map[string]any{}, created, created).
		AddRow(2, "pay_b", 2, 75.0, domain.CurrencyEUR, domain.PaymentStatusPending, "", map[string]any{}, created, created)
	mock.ExpectQuery(query).WithArgs(cutoff, 100).WillReturnRows(rows)

	payments, err := repo.FindPendingBefore(context.Background(), cutoff, 100)
	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, "pay_a", payments[0].PaymentID)

	mock.ExpectQuery(query).WithArgs(cutoff, 100).WillReturnError(errors.New("database error"))
	_, err = repo.FindPendingBefore(context.Background(), cutoff, 100)
	assert.Error(t, err)
}
