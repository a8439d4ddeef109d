package ports

import (
	"context"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

// AuthRepository defines persistence for user accounts. Email lookups are
// case-insensitive; the repository owns that normalization.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
