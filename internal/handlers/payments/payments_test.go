package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/dto"
	"github.com/flooring-crm/backend/internal/service/paymentservice"
	pkgauth "github.com/flooring-crm/backend/pkg/auth"
	"github.com/flooring-crm/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMockHandler(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), pkgauth.UserKey, user))
}

func completedPayment() *domain.Payment {
	now := time.Now().UTC()
	return &domain.Payment{
		ID:         1,
		PaymentID:  "pay_1700000000_1_a1b2c3d4",
		UserID:     1,
		Amount:     199.99,
		Currency:   domain.CurrencyUSD,
		Status:     domain.PaymentStatusCompleted,
		ReceiptURL: "https://receipts.example.com/pay_1700000000_1_a1b2c3d4",
		Metadata:   map[string]any{"source_id": "src_123"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestProcessHandler(t *testing.T) {
	handler, service := NewMockHandler(t)
	user := &domain.User{ID: 1, Username: "john_doe", Role: domain.RoleCustomer, IsActive: true}

	tests := []struct {
		name          string
		body          string
		authenticated bool
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Payment processed",
			body:          `{"amount":199.99,"currency":"USD","source_id":"src_123"}`,
			authenticated: true,
			prepareMock: func() {
				service.EXPECT().Process(gomock.Any(), 1, paymentservice.ProcessInput{
					Amount:   199.99,
					Currency: "USD",
					SourceID: "src_123",
				}).Return(completedPayment(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing currency defaults to USD",
			body:          `{"amount":50,"source_id":"src_123"}`,
			authenticated: true,
			prepareMock: func() {
				service.EXPECT().Process(gomock.Any(), 1, paymentservice.ProcessInput{
					Amount:   50,
					Currency: "USD",
					SourceID: "src_123",
				}).Return(completedPayment(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Validation failure",
			body:          `{"amount":-5,"currency":"XYZ"}`,
			authenticated: true,
			prepareMock: func() {
				service.EXPECT().Process(gomock.Any(), 1, gomock.Any()).Return(nil, &paymentservice.ValidationError{
					Message: "Invalid payment data",
					Errors: []string{
						"Payment amount must be greater than 0",
						"Currency must be one of: USD, EUR, GBP, CAD",
						"Payment source is required",
					},
				})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid payment data",
		},
		{
			name:          "Settlement failure stays generic",
			body:          `{"amount":199.99,"currency":"USD","source_id":"src_123"}`,
			authenticated: true,
			prepareMock: func() {
				service.EXPECT().Process(gomock.Any(), 1, gomock.Any()).Return(nil, assert.AnError)
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "An error occurred while processing the payment. Please try again later.",
		},
		{
			name:          "Not authenticated",
			body:          `{"amount":199.99}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Not authenticated",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			authenticated: true,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/payments/process", bytes.NewReader([]byte(tt.body)))
			if tt.authenticated {
				req = asUser(req, user)
			}
			rr := httptest.NewRecorder()
			handler.Process(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.PaymentResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "completed", resp.Status)
				assert.NotEmpty(t, resp.ReceiptURL)
			}
		})
	}
}

func TestGetStatusHandler(t *testing.T) {
	handler, service := NewMockHandler(t)
	user := &domain.User{ID: 1, Username: "john_doe", Role: domain.RoleCustomer, IsActive: true}

	withPaymentID := func(req *http.Request, id string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("payment_id", id)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("Own payment returned", func(t *testing.T) {
		payment := completedPayment()
		service.EXPECT().Get(gomock.Any(), payment.PaymentID, 1).Return(payment, nil)

		req := asUser(httptest.NewRequest("GET", "/api/payments/"+payment.PaymentID, nil), user)
		req = withPaymentID(req, payment.PaymentID)
		rr := httptest.NewRecorder()
		handler.GetStatus(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PaymentResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, payment.PaymentID, resp.PaymentID)
	})

	t.Run("Unknown payment", func(t *testing.T) {
		service.EXPECT().Get(gomock.Any(), "pay_missing", 1).Return(nil, paymentservice.ErrPaymentNotFound)

		req := asUser(httptest.NewRequest("GET", "/api/payments/pay_missing", nil), user)
		req = withPaymentID(req, "pay_missing")
		rr := httptest.NewRecorder()
		handler.GetStatus(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Payment not found", resp.Message)
	})
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMockHandler(t)
	user := &domain.User{ID: 1, Username: "john_doe", Role: domain.RoleCustomer, IsActive: true}

	t.Run("Verified payment reported completed", func(t *testing.T) {
		payment := completedPayment()
		service.EXPECT().Verify(gomock.Any(), payment.PaymentID, 1).Return(payment, nil)

		body := `{"payment_id":"` + payment.PaymentID + `"}`
		req := asUser(httptest.NewRequest("POST", "/api/payments/verify", bytes.NewReader([]byte(body))), user)
		rr := httptest.NewRecorder()
		handler.Verify(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.PaymentResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("Unknown payment", func(t *testing.T) {
		service.EXPECT().Verify(gomock.Any(), "pay_missing", 1).Return(nil, paymentservice.ErrPaymentNotFound)

		body := `{"payment_id":"pay_missing"}`
		req := asUser(httptest.NewRequest("POST", "/api/payments/verify", bytes.NewReader([]byte(body))), user)
		rr := httptest.NewRecorder()
		handler.Verify(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
