package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByPaymentID(ctx context.Context, paymentID string, userID int) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	FindPendingBefore(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Payment, error)
}

var ErrPaymentNotFound = errors.New("Payment not found")

type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ProcessInput struct {
	Amount              float64
	Currency            string
	SourceID            string
	VerificationToken   string
	CustomerID          string
	ReferenceID         string
	BillingContact      map[string]any
	VerificationDetails map[string]any
}

type Service struct {
	paymentRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		paymentRepo: repo,
	}
}

// Process records the payment as pending, then settles it. The two steps are
// separate so an asynchronous gateway callback could replace the second one
// without touching the intake path.
func (s *Service) Process(ctx context.Context, userID int, input ProcessInput) (*domain.Payment, error) {
	var fieldErrors []string
	if input.Amount <= 0 {
		fieldErrors = append(fieldErrors, "Payment amount must be greater than 0")
	}
	currency := domain.Currency(input.Currency)
	if !currency.Valid() {
		fieldErrors = append(fieldErrors, "Currency must be one of: USD, EUR, GBP, CAD")
	}
	if strings.TrimSpace(input.SourceID) == "" {
		fieldErrors = append(fieldErrors, "Payment source is required")
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Message: "Invalid payment data", Errors: fieldErrors}
	}

	metadata := map[string]any{
		"source_id": input.SourceID,
	}
	if input.VerificationToken != "" {
		metadata["verification_token"] = input.VerificationToken
	}
	if input.CustomerID != "" {
		metadata["customer_id"] = input.CustomerID
	}
	if input.ReferenceID != "" {
		metadata["reference_id"] = input.ReferenceID
	}
	if len(input.BillingContact) > 0 {
		metadata["billing_contact"] = input.BillingContact
	}
	if len(input.VerificationDetails) > 0 {
		metadata["verification_details"] = input.VerificationDetails
	}

	now := time.Now().UTC()
	paymentID := newPaymentID(now, userID)
	payment, err := domain.NewPayment(paymentID, userID, input.Amount, currency, domain.PaymentStatusPending, metadata)
	if err != nil {
		return nil, err
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	created, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		zap.L().Error("can't record payment", zap.Error(err))
		return nil, err
	}
	zap.L().Info("payment recorded",
		zap.String("payment_id", created.PaymentID),
		zap.Float64("amount", created.Amount))

	if err := s.Complete(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Complete marks the payment completed and attaches a receipt. The receipt URL
// is written once; a payment settled earlier keeps its original link.
func (s *Service) Complete(ctx context.Context, payment *domain.Payment) error {
	payment.Status = domain.PaymentStatusCompleted
	if payment.ReceiptURL == "" {
		payment.ReceiptURL = fmt.Sprintf("https://receipts.example.com/%s", payment.PaymentID)
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		zap.L().Error("can't complete payment", zap.Error(err))
		return err
	}
	zap.L().Info("payment completed", zap.String("payment_id", payment.PaymentID))
	return nil
}

func (s *Service) Get(ctx context.Context, paymentID string, userID int) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindByPaymentID(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// Verify re-settles the caller's own payment. Completing an already completed
// payment is a no-op apart from the timestamp.
func (s *Service) Verify(ctx context.Context, paymentID string, userID int) (*domain.Payment, error) {
	payment, err := s.Get(ctx, paymentID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Complete(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func newPaymentID(now time.Time, userID int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("pay_%d_%d_%s", now.Unix(), userID, suffix)
}
