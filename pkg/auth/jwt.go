package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	Generate(subject string, ttl time.Duration) (string, error)
	Validate(tokenString string) (*Claims, error)
}

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("invalid token")
)

// fallbackTTL is the documented default applied when Generate receives a
// non-positive ttl. Every current call site passes the configured expiry
// explicitly, so the fallback stays unreached in practice.
const fallbackTTL = 15 * time.Minute

type Claims struct {
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
	issuer    string
}

// NewJWTService builds a token service around the process-wide signing key.
// The key comes from configuration loaded once at startup; it is never read
// from the environment inside request handling.
func NewJWTService(secretKey, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

func (s *JWTService) Generate(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = fallbackTTL
	}
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			ExpiresAt: time.Now().Add(ttl).Unix(),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Validate parses and verifies a token. It returns ErrTokenExpired once the
// embedded expiry has passed, and ErrTokenMalformed for everything else a
// caller must not trust: bad signature, wrong signing method, unparseable
// structure, or a missing/empty subject claim.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return s.secretKey, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) {
			// A bad signature outranks expiry: an unverifiable token must
			// never be reported as merely expired.
			if vErr.Errors&(jwt.ValidationErrorMalformed|jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0 {
				return nil, ErrTokenMalformed
			}
			if vErr.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrTokenExpired
			}
		}
		return nil, ErrTokenMalformed
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" || claims.Issuer != s.issuer {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
