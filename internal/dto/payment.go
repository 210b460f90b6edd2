package dto

import "time"

type ProcessPaymentRequestDTO struct {
	Amount              float64        `json:"amount" validate:"required,gt=0" example:"199.99"`
	Currency            string         `json:"currency" example:"USD"`
	SourceID            string         `json:"source_id" validate:"required"`
	VerificationToken   string         `json:"verification_token,omitempty"`
	CustomerID          string         `json:"customer_id,omitempty"`
	ReferenceID         string         `json:"reference_id,omitempty"`
	BillingContact      map[string]any `json:"billing_contact,omitempty"`
	VerificationDetails map[string]any `json:"verification_details,omitempty"`
}

type VerifyPaymentRequestDTO struct {
	PaymentID         string `json:"payment_id" validate:"required"`
	VerificationToken string `json:"verification_token" validate:"required"`
}

type PaymentResponseDTO struct {
	ID         int            `json:"id" example:"1"`
	PaymentID  string         `json:"payment_id" example:"pay_1700000000_1_a1b2c3d4"`
	Amount     float64        `json:"amount" example:"199.99"`
	Currency   string         `json:"currency" example:"USD"`
	Status     string         `json:"status" example:"completed"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	ReceiptURL string         `json:"receipt_url,omitempty"`
	Metadata   map[string]any `json:"payment_metadata,omitempty"`
}
