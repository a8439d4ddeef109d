package domain

import (
	"errors"
	"time"
)

// EventType classifies an invitation's occasion.
type EventType string

const (
	EventWedding  EventType = "wedding"
	EventBirthday EventType = "birthday"
	EventTahlilan EventType = "tahlilan"
	EventCostume  EventType = "costume"
)

// RSVPStatus is a guest's binary attendance decision.
type RSVPStatus string

const (
	RSVPAttending RSVPStatus = "attending"
	RSVPDeclined  RSVPStatus = "declined"
)

var ErrInvitationNotFound = errors.New("invitation not found")

// Invitation is a digital invitation owned by exactly one user. The owner
// reference is app-enforced only; the store does not check it.
type Invitation struct {
	ID            string    `json:"id" bson:"_id"`
	UserID        string    `json:"user_id" bson:"user_id"`
	EventType     EventType `json:"event_type" bson:"event_type"`
	EventName     string    `json:"event_name" bson:"event_name"`
	OrganizerName string    `json:"organizer_name" bson:"organizer_name"`
	EventDate     string    `json:"event_date" bson:"event_date"` // YYYY-MM-DD
	EventTime     string    `json:"event_time" bson:"event_time"` // HH:MM
	EventLocation string    `json:"event_location" bson:"event_location"`
	EventMessage  string    `json:"event_message" bson:"event_message"`
	RSVPPhone     string    `json:"rsvp_phone" bson:"rsvp_phone"`
	Photos        []string  `json:"photos" bson:"photos"` // base64
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// EventAt resolves the event instant from the stored date and time fields.
// A missing or malformed time component defaults to midnight local time.
func (i Invitation) EventAt() time.Time {
	if t, err := time.ParseInLocation("2006-01-02T15:04", i.EventDate+"T"+i.EventTime, time.Local); err == nil {
		return t
	}
	t, err := time.ParseInLocation("2006-01-02", i.EventDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RSVP is a guest's recorded attendance response. Guests are not deduplicated;
// the same guest may respond multiple times.
type RSVP struct {
	ID           string     `json:"id" bson:"_id"`
	InvitationID string     `json:"invitation_id" bson:"invitation_id"`
	GuestName    string     `json:"guest_name" bson:"guest_name"`
	GuestEmail   string     `json:"guest_email" bson:"guest_email"`
	Status       RSVPStatus `json:"status" bson:"status"`
	Message      string     `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}

// RSVPActivity is an entry in the owner-facing activity feed, recorded
// asynchronously after each RSVP submission.
type RSVPActivity struct {
	InvitationID string
	GuestName    string
	Status       RSVPStatus
	Timestamp    time.Time
}
