package ports

import (
	"context"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

// CreateInvitationInput carries all data needed to create a new invitation.
type CreateInvitationInput struct {
	UserID        string
	EventType     domain.EventType
	EventName     string
	OrganizerName string
	EventDate     string // YYYY-MM-DD
	EventTime     string // HH:MM
	EventLocation string
	EventMessage  string
	RSVPPhone     string
	Photos        []string
}

// Countdown is the remaining time until the event instant, clamped at zero.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// PublicInvitation is the guest-facing view of an invitation.
type PublicInvitation struct {
	Invitation domain.Invitation
	RSVPs      []domain.RSVP
	Countdown  Countdown
	// Expired is true once the event instant has passed.
	Expired bool
}

// SubmitRSVPInput carries a guest's attendance response.
type SubmitRSVPInput struct {
	InvitationID string
	GuestName    string
	GuestEmail   string
	Status       domain.RSVPStatus
	Message      string
}

// RSVPResult is returned after recording an RSVP. WhatsAppURL is a prefilled
// messaging deep link the guest opens to notify the organizer; whether the
// message is actually sent is outside this system.
type RSVPResult struct {
	RSVP        domain.RSVP
	WhatsAppURL string
}

// InvitationService defines use-case operations for invitations.
type InvitationService interface {
	Create(ctx context.Context, input CreateInvitationInput) (*domain.Invitation, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Invitation, error)
	// Get returns the invitation when the caller owns it or is an admin.
	Get(ctx context.Context, id, callerID, callerRole string) (*domain.Invitation, error)
	// Delete removes the invitation and cascades to its RSVPs.
	Delete(ctx context.Context, id, callerID, callerRole string) error
	PublicView(ctx context.Context, id string) (*PublicInvitation, error)
	SubmitRSVP(ctx context.Context, input SubmitRSVPInput) (*RSVPResult, error)
	Activity(ctx context.Context, id, callerID, callerRole string) ([]*domain.RSVPActivity, error)
}
