package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

// InvitationHandler handles HTTP requests for invitations and RSVPs.
type InvitationHandler struct {
	service ports.InvitationService
}

func NewInvitationHandler(service ports.InvitationService) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// Create handles POST /v1/invitations.
//
// @Summary      Create an invitation
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvitationRequest  true  "Invitation details"
// @Success      201   {object}  domain.Invitation
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/invitations [post]
func (h *InvitationHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createInvitationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inv, err := h.service.Create(c.Request().Context(), toCreateInvitationInput(req, id.UserID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, inv)
}

// List handles GET /v1/invitations — the caller's own invitations.
//
// @Summary      List own invitations
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Invitation
// @Failure      401  {object}  errorResponse
// @Router       /v1/invitations [get]
func (h *InvitationHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	invitations, err := h.service.ListByOwner(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	if invitations == nil {
		invitations = []*domain.Invitation{}
	}
	return c.JSON(http.StatusOK, invitations)
}

// Get handles GET /v1/invitations/:id (owner or admin).
//
// @Summary      Get an invitation
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invitation id"
// @Success      200  {object}  domain.Invitation
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/invitations/{id} [get]
func (h *InvitationHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	inv, err := h.service.Get(c.Request().Context(), c.Param("id"), id.UserID, id.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inv)
}

// Delete handles DELETE /v1/invitations/:id — cascades to the invitation's RSVPs.
//
// @Summary      Delete an invitation and its RSVPs
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invitation id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/invitations/{id} [delete]
func (h *InvitationHandler) Delete(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), id.UserID, id.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "invitation deleted"})
}

// Activity handles GET /v1/invitations/:id/activity — the owner's RSVP feed.
//
// @Summary      RSVP activity feed
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invitation id"
// @Success      200  {array}   activityEntryResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/invitations/{id}/activity [get]
func (h *InvitationHandler) Activity(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.service.Activity(c.Request().Context(), c.Param("id"), id.UserID, id.Role)
	if err != nil {
		return err
	}

	out := make([]activityEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityEntryResponse{
			GuestName: e.GuestName,
			Status:    string(e.Status),
			Timestamp: e.Timestamp.UTC(),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// PublicView handles GET /v1/public/invitations/:id — no auth required.
//
// @Summary      Guest view of an invitation
// @Tags         public
// @Produce      json
// @Param        id   path      string  true  "Invitation id"
// @Success      200  {object}  publicInvitationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/public/invitations/{id} [get]
func (h *InvitationHandler) PublicView(c echo.Context) error {
	view, err := h.service.PublicView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPublicInvitationResponse(view))
}

// SubmitRSVP handles POST /v1/public/invitations/:id/rsvps — no auth required.
// The response carries a prefilled WhatsApp deep link for the guest to open.
//
// @Summary      Submit an RSVP
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Invitation id"
// @Param        body  body      submitRSVPRequest  true  "Guest response"
// @Success      201   {object}  rsvpResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/public/invitations/{id}/rsvps [post]
func (h *InvitationHandler) SubmitRSVP(c echo.Context) error {
	var req submitRSVPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.SubmitRSVP(c.Request().Context(), ports.SubmitRSVPInput{
		InvitationID: c.Param("id"),
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		Status:       domain.RSVPStatus(req.Status),
		Message:      req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, rsvpResponse{
		RSVP:        result.RSVP,
		WhatsAppURL: result.WhatsAppURL,
	})
}
