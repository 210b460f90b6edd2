package paymentservice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)

	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestProcess(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name           string
		input          ProcessInput
		prepareMock    func()
		expectedErrMsg string
		expectedErrors []string
	}{
		{
			name: "Successful processing",
			input: ProcessInput{
				Amount:   199.99,
				Currency: "USD",
				SourceID: "src_123",
			},
			prepareMock: func() {
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
					assert.Equal(t, domain.PaymentStatusPending, p.Status)
					p.ID = 1
					return p, nil
				})
				repo.EXPECT().Update(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Payment) error {
					assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
					assert.Equal(t, "https://receipts.example.com/"+p.PaymentID, p.ReceiptURL)
					return nil
				})
			},
		},
		{
			name: "Validation aggregates every problem",
			input: ProcessInput{
				Amount:   0,
				Currency: "BTC",
				SourceID: " ",
			},
			prepareMock:    func() {},
			expectedErrMsg: "Invalid payment data",
			expectedErrors: []string{
				"Payment amount must be greater than 0",
				"Currency must be one of: USD, EUR, GBP, CAD",
				"Payment source is required",
			},
		},
		{
			name: "Negative amount rejected",
			input: ProcessInput{
				Amount:   -10,
				Currency: "EUR",
				SourceID: "src_123",
			},
			prepareMock:    func() {},
			expectedErrMsg: "Invalid payment data",
			expectedErrors: []string{"Payment amount must be greater than 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payment, err := service.Process(context.Background(), 1, tt.input)
			if tt.expectedErrMsg != "" {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.expectedErrMsg, vErr.Message)
				assert.Equal(t, tt.expectedErrors, vErr.Errors)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
				assert.True(t, strings.HasPrefix(payment.PaymentID, "pay_"))
				assert.Contains(t, payment.PaymentID, "_1_")
				assert.Equal(t, "src_123", payment.Metadata["source_id"])
			}
		})
	}
}

func TestProcess_OptionalMetadata(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
		assert.Equal(t, "cust_9", p.Metadata["customer_id"])
		assert.Equal(t, "ref_7", p.Metadata["reference_id"])
		assert.NotContains(t, p.Metadata, "verification_token")
		p.ID = 1
		return p, nil
	})
	repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)

	_, err := service.Process(context.Background(), 3, ProcessInput{
		Amount:      50,
		Currency:    "GBP",
		SourceID:    "src_1",
		CustomerID:  "cust_9",
		ReferenceID: "ref_7",
	})
	assert.NoError(t, err)
}

func TestProcess_RepoError(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("database error"))

	_, err := service.Process(context.Background(), 1, ProcessInput{
		Amount:   10,
		Currency: "USD",
		SourceID: "src_1",
	})
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	service, repo := NewMock(t)

	payment := &domain.Payment{
		ID:        1,
		PaymentID: "pay_1700000000_1_a1b2c3d4",
		Status:    domain.PaymentStatusPending,
	}
	repo.EXPECT().Update(context.Background(), payment).Return(nil)

	err := service.Complete(context.Background(), payment)
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, "https://receipts.example.com/pay_1700000000_1_a1b2c3d4", payment.ReceiptURL)
}

func TestComplete_KeepsExistingReceipt(t *testing.T) {
	service, repo := NewMock(t)

	payment := &domain.Payment{
		ID:         1,
		PaymentID:  "pay_1700000000_1_a1b2c3d4",
		Status:     domain.PaymentStatusCompleted,
		ReceiptURL: "https://receipts.example.com/original",
	}
	repo.EXPECT().Update(context.Background(), payment).Return(nil)

	err := service.Complete(context.Background(), payment)
	assert.NoError(t, err)
	assert.Equal(t, "https://receipts.example.com/original", payment.ReceiptURL)
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)

	expected := &domain.Payment{ID: 1, PaymentID: "pay_x", UserID: 1}
	repo.EXPECT().FindByPaymentID(context.Background(), "pay_x", 1).Return(expected, nil)

	payment, err := service.Get(context.Background(), "pay_x", 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, payment)
}

func TestGet_OtherUsersPaymentReadsAsAbsent(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByPaymentID(context.Background(), "pay_x", 2).Return(nil, nil)

	_, err := service.Get(context.Background(), "pay_x", 2)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestVerify(t *testing.T) {
	service, repo := NewMock(t)

	stored := &domain.Payment{
		ID:        1,
		PaymentID: "pay_x",
		UserID:    1,
		Status:    domain.PaymentStatusPending,
	}
	repo.EXPECT().FindByPaymentID(context.Background(), "pay_x", 1).Return(stored, nil)
	repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)

	payment, err := service.Verify(context.Background(), "pay_x", 1)
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)

	repo.EXPECT().FindByPaymentID(context.Background(), "pay_missing", 1).Return(nil, nil)
	_, err = service.Verify(context.Background(), "pay_missing", 1)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestNewPaymentID(t *testing.T) {
	now := time.Unix(1700000000, 0)
	id := newPaymentID(now, 7)

	parts := strings.Split(id, "_")
	assert.Len(t, parts, 4)
	assert.Equal(t, "pay", parts[0])
	assert.Equal(t, "1700000000", parts[1])
	assert.Equal(t, "7", parts[2])
	assert.Len(t, parts[3], 8)

	assert.NotEqual(t, id, newPaymentID(now, 7))
}
