package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func newMiddlewareMock(t *testing.T) (*Middleware, *MockJWTServiceInterface, *MockUserResolver) {
	ctrl := gomock.NewController(t)
	jwtService := NewMockJWTServiceInterface(ctrl)
	users := NewMockUserResolver(ctrl)
	return NewMiddleware(jwtService, users), jwtService, users
}

func TestAuthenticate(t *testing.T) {
	activeUser := &domain.User{ID: 1, Username: "alice", Role: domain.RoleCustomer, IsActive: true}
	claims := &Claims{StandardClaims: jwt.StandardClaims{Subject: "alice"}}

	tests := []struct {
		name            string
		header          string
		prepareMock     func(jwtService *MockJWTServiceInterface, users *MockUserResolver)
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "Missing header",
			header:          "",
			prepareMock:     func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid token format",
		},
		{
			name:            "Bearer with extra parts",
			header:          "Bearer abc def",
			prepareMock:     func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid token format",
		},
		{
			name:            "Bare token with embedded space",
			header:          "abc def",
			prepareMock:     func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid token format",
		},
		{
			name:   "Valid bearer token",
			header: "Bearer good-token",
			prepareMock: func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {
				jwtService.EXPECT().Validate("good-token").Return(claims, nil)
				users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(activeUser, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Valid bare token",
			header: "good-token",
			prepareMock: func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {
				jwtService.EXPECT().Validate("good-token").Return(claims, nil)
				users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(activeUser, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Expired token",
			header: "Bearer stale-token",
			prepareMock: func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {
				jwtService.EXPECT().Validate("stale-token").Return(nil, ErrTokenExpired)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Token has expired",
		},
		{
			name:   "Malformed token",
			header: "Bearer junk",
			prepareMock: func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {
				jwtService.EXPECT().Validate("junk").Return(nil, ErrTokenMalformed)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid token",
		},
		{
			name:   "Subject no longer exists",
			header: "Bearer good-token",
			prepareMock: func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {
				jwtService.EXPECT().Validate("good-token").Return(claims, nil)
				users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "User not found",
		},
		{
			name:   "Store failure",
			header: "Bearer good-token",
			prepareMock: func(jwtService *MockJWTServiceInterface, users *MockUserResolver) {
				jwtService.EXPECT().Validate("good-token").Return(claims, nil)
				users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, errors.New("database error"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware, jwtService, users := newMiddlewareMock(t)
			tt.prepareMock(jwtService, users)

			var resolved *domain.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				resolved, _ = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedMessage != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			} else {
				assert.Equal(t, activeUser, resolved)
			}
		})
	}
}

func TestRequireActive(t *testing.T) {
	tests := []struct {
		name         string
		user         *domain.User
		expectedCode int
	}{
		{
			name:         "Active user passes",
			user:         &domain.User{ID: 1, Username: "alice", IsActive: true},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Inactive user is forbidden",
			user:         &domain.User{ID: 1, Username: "alice", IsActive: false},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing user is unauthorized",
			user:         nil,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/materials", nil)
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), UserKey, tt.user))
			}
			rr := httptest.NewRecorder()

			RequireActive(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "abc", token: "abc", ok: true},
		{header: "", ok: false},
		{header: "Bearer ", ok: false},
		{header: "Bearer a b", ok: false},
		{header: "a b", ok: false},
		{header: "a\tb", ok: false},
	}

	for _, tt := range tests {
		token, ok := extractToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		if tt.ok {
			assert.Equal(t, tt.token, token, tt.header)
		}
	}
}
