package ports

import (
	"context"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

// InvitationRepository defines persistence for invitations.
type InvitationRepository interface {
	Insert(ctx context.Context, inv *domain.Invitation) error
	FindByID(ctx context.Context, id string) (*domain.Invitation, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Invitation, error)
	Delete(ctx context.Context, id string) error
}

// RSVPRepository defines persistence for guest responses.
type RSVPRepository interface {
	Insert(ctx context.Context, rsvp *domain.RSVP) error
	ListByInvitation(ctx context.Context, invitationID string) ([]*domain.RSVP, error)
	// DeleteByInvitation removes every RSVP of the given invitation and no others.
	DeleteByInvitation(ctx context.Context, invitationID string) error
}

// ActivityRepository persists the owner-facing RSVP activity feed.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.RSVPActivity) error
	ListByInvitation(ctx context.Context, invitationID string) ([]*domain.RSVPActivity, error)
}
