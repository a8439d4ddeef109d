package ports

import (
	"context"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a regular user account. The bootstrap admin identifier
	// is reserved and duplicate identifiers are rejected case-insensitively.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login checks the bootstrap admin pair first, then stored users, and
	// returns a signed token plus the authenticated user.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}
