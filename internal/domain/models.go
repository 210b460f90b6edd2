package domain

import (
	"fmt"
	"time"
)

// Role is a closed set; every decision point switches on it exhaustively.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleEmployee:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyCAD:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

type User struct {
	ID           int    `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         Role   `db:"role"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	IsActive     bool   `db:"is_active"`
}

type Material struct {
	ID           int     `db:"id"`
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	PricePerUnit float64 `db:"price_per_unit"`
	Unit         string  `db:"unit"`
	Stock        int     `db:"stock"`
}

type Service struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	BasePrice   float64 `db:"base_price"`
}

type Payment struct {
	ID         int            `db:"id"`
	PaymentID  string         `db:"payment_id"`
	UserID     int            `db:"user_id"`
	Amount     float64        `db:"amount"`
	Currency   Currency       `db:"currency"`
	Status     PaymentStatus  `db:"status"`
	ReceiptURL string         `db:"receipt_url"`
	Metadata   map[string]any `db:"payment_data"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// NewPayment enforces the status invariant at construction: a payment never
// holds a status outside the pending/completed/failed set.
func NewPayment(paymentID string, userID int, amount float64, currency Currency, status PaymentStatus, metadata map[string]any) (*Payment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status must be one of: pending, completed, failed, got %q", status)
	}
	now := time.Now()
	return &Payment{
		PaymentID: paymentID,
		UserID:    userID,
		Amount:    amount,
		Currency:  currency,
		Status:    status,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
