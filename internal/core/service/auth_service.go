package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

const minPasswordLen = 6

// BootstrapAdmin is the seeded superuser credential pair. It lives in config,
// outside the user store, and is checked before any store lookup.
type BootstrapAdmin struct {
	Identifier string
	Password   string
	Name       string
}

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	bootstrap BootstrapAdmin
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, bootstrap BootstrapAdmin, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, bootstrap: bootstrap, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a regular user account. Role is always "user"; admin access
// exists only through the bootstrap pair.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || len(password) < minPasswordLen {
		return nil, domain.ErrInvalidCredentials
	}
	if strings.EqualFold(email, s.bootstrap.Identifier) {
		return nil, domain.ErrReservedIdentifier
	}
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Login authenticates the bootstrap admin pair or a stored user and returns a
// signed token. The bootstrap check runs first, so the pair yields an admin
// session regardless of store contents.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if identifier == s.bootstrap.Identifier && password == s.bootstrap.Password {
		admin := &domain.User{
			ID:        "admin-bootstrap",
			Name:      s.bootstrap.Name,
			Email:     s.bootstrap.Identifier,
			Role:      domain.RoleAdmin,
			CreatedAt: time.Now().UTC(),
		}
		token, err := s.generateToken(admin)
		if err != nil {
			return "", nil, err
		}
		return token, admin, nil
	}

	user, err := s.repo.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
