package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/internal/dto"
	"github.com/flooring-crm/backend/internal/service/authservice"
	pkgauth "github.com/flooring-crm/backend/pkg/auth"
	"github.com/flooring-crm/backend/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, input authservice.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(username string) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a new account and receive a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.TokenResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Register(r.Context(), authservice.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		var vErr *authservice.ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithError(w, http.StatusBadRequest, vErr.Message, vErr.Errors...)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError,
			"An unexpected error occurred during registration",
			"Please try again later. If the problem persists, contact support.")
		return
	}
	token, err := h.authService.GenerateToken(user.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password, form-encoded
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200			{object}	dto.TokenResponseDTO
//	@Failure		400			{object}	utils.Response	"Validation failed"
//	@Failure		401			{object}	utils.Response	"Invalid credentials"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if strings.TrimSpace(username) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Validation failed", "Username is required")
		return
	}
	if strings.TrimSpace(password) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Validation failed", "Password is required")
		return
	}
	user, err := h.authService.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError,
			"An unexpected error occurred during login",
			"Please try again later. If the problem persists, contact support.")
		return
	}
	token, err := h.authService.GenerateToken(user.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me godoc
//
//	@Summary		Current user
//	@Description	Return the account resolved from the bearer token
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.UserResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := pkgauth.UserFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UserResponseDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Phone:    user.Phone,
		Address:  user.Address,
		IsActive: user.IsActive,
	})
}
