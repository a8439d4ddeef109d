package ports

import (
	"context"

	"github.com/matchfit/matchfit-api/internal/core/domain"
)

// Measurements are the three body measurements accepted in place of a photo.
type Measurements struct {
	ShoulderCm float64
	WaistCm    float64
	HipCm      float64
}

// InvitationCopyInput describes the event the model writes copy for.
type InvitationCopyInput struct {
	EventType     domain.EventType
	EventName     string
	OrganizerName string
}

// FashionInput carries either a photo or body measurements (at least one).
type FashionInput struct {
	ImageData    string // base64, optional
	Measurements *Measurements
}

// FaceInput carries the mandatory photo plus self-reported skin context.
type FaceInput struct {
	ImageData string // base64
	SkinType  domain.SkinType
	Concerns  []string
}

// AdvisorService wraps the generative model behind three advisory operations.
// There is no retry, caching or rate limiting; each call is a single attempt.
type AdvisorService interface {
	// InvitationCopy returns generated invitation text, or a static fallback
	// sentence when the model is unreachable.
	InvitationCopy(ctx context.Context, input InvitationCopyInput) (string, error)
	AnalyzeFashion(ctx context.Context, input FashionInput) (*domain.FashionAnalysis, error)
	AnalyzeFace(ctx context.Context, input FaceInput) (*domain.FaceAnalysis, error)
}
