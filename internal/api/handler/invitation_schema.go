package handler

import (
	"time"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

type createInvitationRequest struct {
	EventType     string   `json:"event_type"     validate:"required,oneof=wedding birthday tahlilan costume"`
	EventName     string   `json:"event_name"     validate:"required"`
	OrganizerName string   `json:"organizer_name" validate:"required"`
	EventDate     string   `json:"event_date"     validate:"required,datetime=2006-01-02"`
	EventTime     string   `json:"event_time"     validate:"required,datetime=15:04"`
	EventLocation string   `json:"event_location" validate:"required"`
	EventMessage  string   `json:"event_message"`
	RSVPPhone     string   `json:"rsvp_phone"`
	Photos        []string `json:"photos"         validate:"max=3"`
}

func toCreateInvitationInput(req createInvitationRequest, userID string) ports.CreateInvitationInput {
	return ports.CreateInvitationInput{
		UserID:        userID,
		EventType:     domain.EventType(req.EventType),
		EventName:     req.EventName,
		OrganizerName: req.OrganizerName,
		EventDate:     req.EventDate,
		EventTime:     req.EventTime,
		EventLocation: req.EventLocation,
		EventMessage:  req.EventMessage,
		RSVPPhone:     req.RSVPPhone,
		Photos:        req.Photos,
	}
}

type countdownResponse struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// publicInvitationResponse is the guest-facing view: the invitation, its
// responses so far, and the live countdown clamped at zero.
type publicInvitationResponse struct {
	Invitation domain.Invitation `json:"invitation"`
	RSVPs      []domain.RSVP     `json:"rsvps"`
	Countdown  countdownResponse `json:"countdown"`
	Expired    bool              `json:"expired"`
}

func toPublicInvitationResponse(view *ports.PublicInvitation) publicInvitationResponse {
	rsvps := view.RSVPs
	if rsvps == nil {
		rsvps = []domain.RSVP{}
	}
	return publicInvitationResponse{
		Invitation: view.Invitation,
		RSVPs:      rsvps,
		Countdown: countdownResponse{
			Days:    view.Countdown.Days,
			Hours:   view.Countdown.Hours,
			Minutes: view.Countdown.Minutes,
			Seconds: view.Countdown.Seconds,
		},
		Expired: view.Expired,
	}
}

type submitRSVPRequest struct {
	GuestName  string `json:"guest_name"  validate:"required"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	Status     string `json:"status"      validate:"required,oneof=attending declined"`
	Message    string `json:"message"`
}

type rsvpResponse struct {
	RSVP        domain.RSVP `json:"rsvp"`
	WhatsAppURL string      `json:"whatsapp_url"`
}

type activityEntryResponse struct {
	GuestName string    `json:"guest_name"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
