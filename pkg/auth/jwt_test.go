package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const (
	testSecret = "test-secret"
	testIssuer = "flooring-crm"
)

func signClaims(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestGenerate(t *testing.T) {
	jwtService := NewJWTService(testSecret, testIssuer)

	tests := []struct {
		name    string
		subject string
		ttl     time.Duration
	}{
		{
			name:    "Explicit TTL",
			subject: "alice",
			ttl:     30 * time.Minute,
		},
		{
			name:    "Zero TTL falls back to default",
			subject: "alice",
			ttl:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.Generate(tt.subject, tt.ttl)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := jwtService.Validate(token)
			assert.NoError(t, err)
			assert.Equal(t, tt.subject, claims.Subject)
			assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
		})
	}
}

func TestValidate(t *testing.T) {
	jwtService := NewJWTService(testSecret, testIssuer)

	tests := []struct {
		name        string
		token       func() string
		expectedErr error
		subject     string
	}{
		{
			name: "Valid token",
			token: func() string {
				token, _ := jwtService.Generate("alice", time.Hour)
				return token
			},
			expectedErr: nil,
			subject:     "alice",
		},
		{
			name: "Expired token",
			token: func() string {
				return signClaims(t, testSecret, Claims{StandardClaims: jwt.StandardClaims{
					Subject:   "alice",
					ExpiresAt: time.Now().Add(-time.Hour).Unix(),
					Issuer:    testIssuer,
				}})
			},
			expectedErr: ErrTokenExpired,
		},
		{
			name: "Wrong signing key",
			token: func() string {
				return signClaims(t, "other-secret", Claims{StandardClaims: jwt.StandardClaims{
					Subject:   "alice",
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    testIssuer,
				}})
			},
			expectedErr: ErrTokenMalformed,
		},
		{
			name: "Expired and wrong key reports malformed",
			token: func() string {
				return signClaims(t, "other-secret", Claims{StandardClaims: jwt.StandardClaims{
					Subject:   "alice",
					ExpiresAt: time.Now().Add(-time.Hour).Unix(),
					Issuer:    testIssuer,
				}})
			},
			expectedErr: ErrTokenMalformed,
		},
		{
			name: "Missing subject",
			token: func() string {
				return signClaims(t, testSecret, Claims{StandardClaims: jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    testIssuer,
				}})
			},
			expectedErr: ErrTokenMalformed,
		},
		{
			name: "Wrong issuer",
			token: func() string {
				return signClaims(t, testSecret, Claims{StandardClaims: jwt.StandardClaims{
					Subject:   "alice",
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "someone-else",
				}})
			},
			expectedErr: ErrTokenMalformed,
		},
		{
			name: "Structurally unparseable",
			token: func() string {
				return "not.a.token"
			},
			expectedErr: ErrTokenMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.Validate(tt.token())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.subject, claims.Subject)
			}
		})
	}
}
