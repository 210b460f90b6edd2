package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/dto"
	"github.com/flooring-crm/backend/internal/service/paymentservice"
	pkgauth "github.com/flooring-crm/backend/pkg/auth"
	"github.com/flooring-crm/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Process(ctx context.Context, userID int, input paymentservice.ProcessInput) (*domain.Payment, error)
	Get(ctx context.Context, paymentID string, userID int) (*domain.Payment, error)
	Verify(ctx context.Context, paymentID string, userID int) (*domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Process godoc
//
//	@Summary		Process a payment
//	@Description	Record a payment for the authenticated user and settle it
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProcessPaymentRequestDTO	true	"Payment request body"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payment data"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/payments/process [post]
func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	var req dto.ProcessPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
	payment, err := h.paymentService.Process(r.Context(), user.ID, paymentservice.ProcessInput{
		Amount:              req.Amount,
		Currency:            req.Currency,
		SourceID:            req.SourceID,
		VerificationToken:   req.VerificationToken,
		CustomerID:          req.CustomerID,
		ReferenceID:         req.ReferenceID,
		BillingContact:      req.BillingContact,
		VerificationDetails: req.VerificationDetails,
	})
	if err != nil {
		var vErr *paymentservice.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(w, http.StatusBadRequest, vErr.Message, vErr.Errors...)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError,
			"An error occurred while processing the payment. Please try again later.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// GetStatus godoc
//
//	@Summary		Payment status
//	@Description	Return the caller's payment; payments of other users read as absent
//	@Tags			Payments
//	@Produce		json
//	@Param			payment_id	path		string	true	"Payment ID"
//	@Success		200			{object}	dto.PaymentResponseDTO
//	@Failure		404			{object}	utils.Response	"Payment not found"
//	@Security		BearerAuth
//	@Router			/api/payments/{payment_id} [get]
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	paymentID := chi.URLParam(r, "payment_id")
	payment, err := h.paymentService.Get(r.Context(), paymentID, user.ID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// Verify godoc
//
//	@Summary		Verify a payment
//	@Description	Re-confirm the caller's payment as completed
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Verification request body"
//	@Success		200		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Payment not found"
//	@Security		BearerAuth
//	@Router			/api/payments/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.Verify(r.Context(), req.PaymentID, user.ID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Payment not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Error verifying payment")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentResponse(payment))
}

func toPaymentResponse(p *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:         p.ID,
		PaymentID:  p.PaymentID,
		Amount:     p.Amount,
		Currency:   string(p.Currency),
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		ReceiptURL: p.ReceiptURL,
		Metadata:   p.Metadata,
	}
}
