package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

type invitationCopyRequest struct {
	EventType     string `json:"event_type"     validate:"required,oneof=wedding birthday tahlilan costume"`
	EventName     string `json:"event_name"     validate:"required"`
	OrganizerName string `json:"organizer_name" validate:"required"`
}

type invitationCopyResponse struct {
	Message string `json:"message"`
}

type measurementsRequest struct {
	ShoulderCm float64 `json:"shoulder_cm" validate:"gt=0"`
	WaistCm    float64 `json:"waist_cm"    validate:"gt=0"`
	HipCm      float64 `json:"hip_cm"      validate:"gt=0"`
}

type fashionRequest struct {
	Image        string               `json:"image"`
	Measurements *measurementsRequest `json:"measurements"`
}

type faceRequest struct {
	Image    string   `json:"image"     validate:"required"`
	SkinType string   `json:"skin_type" validate:"required,oneof=Dry Oily Combination Normal Sensitive"`
	Concerns []string `json:"concerns"`
}

// AdvisorHandler exposes the generative advisory endpoints.
type AdvisorHandler struct {
	service ports.AdvisorService
}

func NewAdvisorHandler(service ports.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{service: service}
}

// InvitationCopy handles POST /v1/advisor/invitation-copy. When the model is
// unreachable a static fallback sentence is returned instead of an error.
//
// @Summary      Generate invitation copy
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      invitationCopyRequest  true  "Event details"
// @Success      200   {object}  invitationCopyResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/advisor/invitation-copy [post]
func (h *AdvisorHandler) InvitationCopy(c echo.Context) error {
	var req invitationCopyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.service.InvitationCopy(c.Request().Context(), ports.InvitationCopyInput{
		EventType:     domain.EventType(req.EventType),
		EventName:     req.EventName,
		OrganizerName: req.OrganizerName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invitationCopyResponse{Message: message})
}

// Fashion handles POST /v1/advisor/fashion. At least one of the photo or the
// body measurements must be present.
//
// @Summary      Fashion analysis
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      fashionRequest  true  "Photo and/or measurements"
// @Success      200   {object}  domain.FashionAnalysis
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/advisor/fashion [post]
func (h *AdvisorHandler) Fashion(c echo.Context) error {
	var req fashionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.FashionInput{ImageData: req.Image}
	if req.Measurements != nil {
		input.Measurements = &ports.Measurements{
			ShoulderCm: req.Measurements.ShoulderCm,
			WaistCm:    req.Measurements.WaistCm,
			HipCm:      req.Measurements.HipCm,
		}
	}

	analysis, err := h.service.AnalyzeFashion(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analysis)
}

// Face handles POST /v1/advisor/face. The photo is mandatory.
//
// @Summary      Face analysis
// @Tags         advisor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      faceRequest  true  "Photo and skin context"
// @Success      200   {object}  domain.FaceAnalysis
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/advisor/face [post]
func (h *AdvisorHandler) Face(c echo.Context) error {
	var req faceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	analysis, err := h.service.AnalyzeFace(c.Request().Context(), ports.FaceInput{
		ImageData: req.Image,
		SkinType:  domain.SkinType(req.SkinType),
		Concerns:  req.Concerns,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analysis)
}
