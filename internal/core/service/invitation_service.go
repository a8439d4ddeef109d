package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/matchfit/matchfit-api/internal/api/metrics"
	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

// defaultRSVPPhone receives guest confirmations when an invitation carries no
// contact number of its own.
const defaultRSVPPhone = "6285782559412"

// ActivityRecorder abstracts the async activity pipeline (queue.Dispatcher).
type ActivityRecorder interface {
	Enqueue(entry domain.RSVPActivity)
}

type invitationService struct {
	invitations ports.InvitationRepository
	rsvps       ports.RSVPRepository
	activity    ports.ActivityRepository
	recorder    ActivityRecorder
	log         zerolog.Logger
}

// NewInvitationService returns an InvitationService implementation.
func NewInvitationService(
	invitations ports.InvitationRepository,
	rsvps ports.RSVPRepository,
	activity ports.ActivityRepository,
	recorder ActivityRecorder,
	log zerolog.Logger,
) ports.InvitationService {
	return &invitationService{
		invitations: invitations,
		rsvps:       rsvps,
		activity:    activity,
		recorder:    recorder,
		log:         log,
	}
}

func (s *invitationService) Create(ctx context.Context, input ports.CreateInvitationInput) (*domain.Invitation, error) {
	inv := &domain.Invitation{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		EventType:     input.EventType,
		EventName:     input.EventName,
		OrganizerName: input.OrganizerName,
		EventDate:     input.EventDate,
		EventTime:     input.EventTime,
		EventLocation: input.EventLocation,
		EventMessage:  input.EventMessage,
		RSVPPhone:     input.RSVPPhone,
		Photos:        input.Photos,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.invitations.Insert(ctx, inv); err != nil {
		s.log.Error().Err(err).Msg("failed to create invitation")
		return nil, err
	}

	s.log.Info().
		Str("invitation_id", inv.ID).
		Str("user_id", inv.UserID).
		Str("event_type", string(inv.EventType)).
		Msg("invitation created")
	metrics.InvitationsCreatedTotal.WithLabelValues(string(inv.EventType)).Inc()

	return inv, nil
}

func (s *invitationService) ListByOwner(ctx context.Context, userID string) ([]*domain.Invitation, error) {
	return s.invitations.ListByOwner(ctx, userID)
}

func (s *invitationService) Get(ctx context.Context, id, callerID, callerRole string) (*domain.Invitation, error) {
	inv, err := s.invitations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.UserID != callerID && callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

// Delete removes the invitation and cascades to exactly its RSVPs. Only the
// owner or an admin may delete.
func (s *invitationService) Delete(ctx context.Context, id, callerID, callerRole string) error {
	inv, err := s.invitations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.UserID != callerID && callerRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.invitations.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}
	if err := s.rsvps.DeleteByInvitation(ctx, id); err != nil {
		// The invitation itself is gone; orphaned RSVPs are invisible to every
		// read path, so this is logged rather than surfaced.
		s.log.Warn().Err(err).Str("invitation_id", id).Msg("failed to cascade rsvp delete")
	}

	s.log.Info().Str("invitation_id", id).Msg("invitation deleted")
	return nil
}

func (s *invitationService) PublicView(ctx context.Context, id string) (*ports.PublicInvitation, error) {
	inv, err := s.invitations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rsvps, err := s.rsvps.ListByInvitation(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &ports.PublicInvitation{
		Invitation: *inv,
		RSVPs:      make([]domain.RSVP, 0, len(rsvps)),
	}
	for _, r := range rsvps {
		view.RSVPs = append(view.RSVPs, *r)
	}
	view.Countdown, view.Expired = countdownUntil(inv.EventAt(), time.Now())

	return view, nil
}

func (s *invitationService) SubmitRSVP(ctx context.Context, input ports.SubmitRSVPInput) (*ports.RSVPResult, error) {
	inv, err := s.invitations.FindByID(ctx, input.InvitationID)
	if err != nil {
		return nil, err
	}

	rsvp := &domain.RSVP{
		ID:           uuid.NewString(),
		InvitationID: inv.ID,
		GuestName:    input.GuestName,
		GuestEmail:   input.GuestEmail,
		Status:       input.Status,
		Message:      input.Message,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.rsvps.Insert(ctx, rsvp); err != nil {
		s.log.Error().Err(err).Str("invitation_id", inv.ID).Msg("failed to record rsvp")
		return nil, err
	}

	s.recorder.Enqueue(domain.RSVPActivity{
		InvitationID: inv.ID,
		GuestName:    rsvp.GuestName,
		Status:       rsvp.Status,
		Timestamp:    rsvp.CreatedAt,
	})

	s.log.Info().
		Str("invitation_id", inv.ID).
		Str("status", string(rsvp.Status)).
		Msg("rsvp recorded")
	metrics.RSVPsRecordedTotal.WithLabelValues(string(rsvp.Status)).Inc()

	return &ports.RSVPResult{
		RSVP:        *rsvp,
		WhatsAppURL: whatsappURL(inv, rsvp),
	}, nil
}

func (s *invitationService) Activity(ctx context.Context, id, callerID, callerRole string) ([]*domain.RSVPActivity, error) {
	inv, err := s.invitations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.UserID != callerID && callerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.activity.ListByInvitation(ctx, id)
}

// countdownUntil computes the remaining time to the event instant, clamped at
// zero once it has passed.
func countdownUntil(eventAt, now time.Time) (ports.Countdown, bool) {
	distance := eventAt.Sub(now)
	if distance <= 0 {
		return ports.Countdown{}, true
	}
	return ports.Countdown{
		Days:    int(distance / (24 * time.Hour)),
		Hours:   int(distance/time.Hour) % 24,
		Minutes: int(distance/time.Minute) % 60,
		Seconds: int(distance/time.Second) % 60,
	}, false
}

// whatsappURL builds the prefilled confirmation deep link for the organizer.
func whatsappURL(inv *domain.Invitation, rsvp *domain.RSVP) string {
	phone := inv.RSVPPhone
	if phone == "" {
		phone = defaultRSVPPhone
	}

	decision := "will be attending"
	if rsvp.Status == domain.RSVPDeclined {
		decision = "cannot attend"
	}
	message := rsvp.Message
	if message == "" {
		message = "-"
	}

	text := fmt.Sprintf("Hello, I am %s confirming that I %s the event %q.\nMessage: %s",
		rsvp.GuestName, decision, inv.EventName, message)

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}
