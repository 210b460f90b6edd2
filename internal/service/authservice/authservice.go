package authservice

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/flooring-crm/backend/internal/domain"
	userrepo "github.com/flooring-crm/backend/internal/repo/user-repo"
	"github.com/flooring-crm/backend/pkg/auth"
	"github.com/flooring-crm/backend/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ErrInvalidCredentials is deliberately the same whether the username is
// unknown or the password is wrong.
var ErrInvalidCredentials = errors.New("Incorrect username or password")

// ValidationError carries the user-facing message and the field-level detail
// for a failed registration check.
type ValidationError struct {
	Message string
	Errors  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Phone    string
	Address  string
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

// Register validates the input in a fixed order, each failing check
// short-circuiting the rest; only the password check aggregates every
// violation. A registration that loses the uniqueness race at insert time is
// reported as the same conflict the pre-checks produce.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	role := domain.Role(input.Role)
	if !role.Valid() {
		return nil, &ValidationError{
			Message: "Invalid role",
			Errors:  []string{"Role must be either 'customer' or 'employee'"},
		}
	}

	if !strings.Contains(input.Email, "@") || !strings.Contains(input.Email, ".") {
		return nil, &ValidationError{
			Message: "Invalid email format",
			Errors:  []string{"Please enter a valid email address"},
		}
	}

	existing, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		zap.L().Error("can't check username", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("username already registered", zap.String("username", input.Username))
		return nil, usernameConflict()
	}

	existing, err = s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		zap.L().Error("can't check email", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", input.Email))
		return nil, emailConflict()
	}

	// Bounds are in characters, not bytes; the charset check below still keeps
	// accepted usernames ASCII, but length errors must win for multibyte input.
	if strings.TrimSpace(input.Username) == "" || utf8.RuneCountInString(input.Username) < 3 {
		return nil, &ValidationError{
			Message: "Invalid username",
			Errors:  []string{"Username must be at least 3 characters long"},
		}
	}
	if utf8.RuneCountInString(input.Username) > 50 {
		return nil, &ValidationError{
			Message: "Invalid username",
			Errors:  []string{"Username cannot be longer than 50 characters"},
		}
	}
	if !usernamePattern.MatchString(input.Username) {
		return nil, &ValidationError{
			Message: "Invalid username",
			Errors:  []string{"Username can only contain letters, numbers, and underscores"},
		}
	}

	if violations := validate.ValidatePassword(input.Password); len(violations) > 0 {
		return nil, &ValidationError{
			Message: "Password validation failed",
			Errors:  violations,
		}
	}

	hashedPassword, err := s.hashService.HashPassword(input.Password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Phone:        input.Phone,
		Address:      input.Address,
		IsActive:     true,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// Two concurrent registrations: the store rejected the second insert.
		if errors.Is(err, userrepo.ErrUsernameExists) {
			return nil, usernameConflict()
		}
		if errors.Is(err, userrepo.ErrEmailExists) {
			return nil, emailConflict()
		}
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", newUser.Username))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		zap.L().Info("login for unknown username", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("login with wrong password", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, nil
}

// GenerateToken issues a bearer token with the configured TTL.
func (s *Service) GenerateToken(username string) (string, error) {
	token, err := s.jwtService.Generate(username, s.tokenTTL)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func usernameConflict() *ValidationError {
	return &ValidationError{
		Message: "Registration failed",
		Errors:  []string{"Username is already registered. Please choose a different username."},
	}
}

func emailConflict() *ValidationError {
	return &ValidationError{
		Message: "Registration failed",
		Errors:  []string{"Email is already registered. Please use a different email or login to your existing account."},
	}
}
