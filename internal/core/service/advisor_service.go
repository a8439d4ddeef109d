package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/matchfit/matchfit-api/internal/api/metrics"
	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

// fallbackInvitationCopy is returned when the model cannot be reached or
// replies with nothing usable.
const fallbackInvitationCopy = "Your presence is an honor to us."

type advisorService struct {
	client      ports.GenerativeClient
	textModel   string
	visionModel string
	log         zerolog.Logger
}

// NewAdvisorService returns an AdvisorService backed by the given generative
// client. textModel serves copy and fashion requests; visionModel serves the
// heavier face analysis.
func NewAdvisorService(client ports.GenerativeClient, textModel, visionModel string, log zerolog.Logger) ports.AdvisorService {
	return &advisorService{
		client:      client,
		textModel:   textModel,
		visionModel: visionModel,
		log:         log,
	}
}

// InvitationCopy generates invitation text. Model failures degrade to a static
// fallback sentence instead of an error; the caller always gets usable copy.
func (s *advisorService) InvitationCopy(ctx context.Context, input ports.InvitationCopyInput) (string, error) {
	timer := time.Now()
	defer func() {
		metrics.AdvisorRequestDuration.WithLabelValues("invitation_copy").Observe(time.Since(timer).Seconds())
	}()

	prompt := fmt.Sprintf(`Act as a professional invitation writer.
Write the text of a digital invitation for a %s event.
Event name: %s
Organizer: %s
Elegant tone, at most 120 words. No markdown.`,
		input.EventType, input.EventName, input.OrganizerName)

	text, err := s.client.GenerateText(ctx, s.textModel, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("invitation copy generation failed")
		metrics.AdvisorRequestsTotal.WithLabelValues("invitation_copy", "fallback").Inc()
		return fallbackInvitationCopy, nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.AdvisorRequestsTotal.WithLabelValues("invitation_copy", "fallback").Inc()
		return fallbackInvitationCopy, nil
	}
	metrics.AdvisorRequestsTotal.WithLabelValues("invitation_copy", "ok").Inc()
	return text, nil
}

func (s *advisorService) AnalyzeFashion(ctx context.Context, input ports.FashionInput) (*domain.FashionAnalysis, error) {
	if input.ImageData == "" && input.Measurements == nil {
		return nil, domain.ErrMissingAnalysisSubject
	}

	timer := time.Now()
	defer func() {
		metrics.AdvisorRequestDuration.WithLabelValues("fashion").Observe(time.Since(timer).Seconds())
	}()

	var b strings.Builder
	b.WriteString("Act as a senior fashion stylist and makeup consultant. ")
	if input.ImageData != "" {
		b.WriteString("Analyze this photo to determine the body shape (Apple, Pear, Hourglass, Rectangle, Inverted Triangle) and the skin undertone. ")
	} else {
		m := input.Measurements
		fmt.Fprintf(&b, "Based on these measurements: shoulders %.0fcm, waist %.0fcm, hips %.0fcm. Determine the body shape. ", m.ShoulderCm, m.WaistCm, m.HipCm)
	}
	b.WriteString(`
Return pure JSON in this format:
{
  "bodyShape": string,
  "undertone": string,
  "recommendations": string[],
  "powerColors": string[],
  "makeupPalette": [
    { "name": string, "hex": string }
  ],
  "outfits": [
    {
      "occasion": "Casual/Formal/Party",
      "items": string[],
      "reason": string
    }
  ]
}

Note: makeupPalette must contain 4-5 colors harmonizing with the undertone and the recommended fashion style.`)

	var analysis domain.FashionAnalysis
	if err := s.client.GenerateJSON(ctx, s.textModel, b.String(), input.ImageData, &analysis); err != nil {
		s.log.Error().Err(err).Msg("fashion analysis failed")
		metrics.AdvisorRequestsTotal.WithLabelValues("fashion", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}
	metrics.AdvisorRequestsTotal.WithLabelValues("fashion", "ok").Inc()
	return &analysis, nil
}

func (s *advisorService) AnalyzeFace(ctx context.Context, input ports.FaceInput) (*domain.FaceAnalysis, error) {
	if input.ImageData == "" {
		return nil, domain.ErrMissingAnalysisSubject
	}

	timer := time.Now()
	defer func() {
		metrics.AdvisorRequestDuration.WithLabelValues("face").Observe(time.Since(timer).Seconds())
	}()

	prompt := fmt.Sprintf(`Act as a senior dermatologist and makeup artist.
Analyze the face in the provided photo in detail.
Use this additional context from the user: skin type: %s, concerns: %s.

Cover in depth:
1. skinTone and skin undertone.
2. facialAge (estimated).
3. skinTexture and acneStatus.
4. faceShape and feature details (eyes, nose, mouth, eye-to-brow distance).

5. Complete makeup recommendations:
   - Foundation/Cushion: suitable texture (matte/dewy) and a HEX color palette.
   - Blush: placement (apple of the cheeks/high cheekbones) and a HEX palette.
   - Lipstick: application shape (ombre/full lips) and thickness guidance.
   - Eyeshadow: color combinations that flatter the eyes.
   - Eyeliner: the best-fitting shape (Winged, Puppy, Cat-eye, Classic) for the eye shape.
   - Eyebrows: the shape (Straight, Arched, S-Shaped) that balances the face.
   - Shading/Contour: specific placement points that add dimension.

IMPORTANT: give highly specific "applicationTips" for every category.

6. A skincare routine.
7. Dietary tips.

Return JSON following this schema:
{
  "skinTone": string,
  "undertone": string,
  "facialAge": number,
  "skinTexture": string,
  "acneStatus": string,
  "faceShape": string,
  "features": {
    "eyes": string,
    "nose": string,
    "mouth": string,
    "eyeToBrowDistance": string
  },
  "makeupRecommendations": [
    {
      "category": string,
      "suggestion": string,
      "palette": [{ "name": string, "hex": string }],
      "shape": string,
      "shadingTechnique": string,
      "applicationTips": string
    }
  ],
  "skincareRoutine": {
    "type": string,
    "recommendedIngredients": string[],
    "avoidIngredients": string[],
    "explanation": string
  },
  "dietaryTips": {
    "recommended": string[],
    "avoid": string[]
  }
}`, input.SkinType, strings.Join(input.Concerns, ", "))

	var analysis domain.FaceAnalysis
	if err := s.client.GenerateJSON(ctx, s.visionModel, prompt, input.ImageData, &analysis); err != nil {
		s.log.Error().Err(err).Msg("face analysis failed")
		metrics.AdvisorRequestsTotal.WithLabelValues("face", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}
	metrics.AdvisorRequestsTotal.WithLabelValues("face", "ok").Inc()
	return &analysis, nil
}
