package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

// AdminHandler serves the user management part of the admin console.
type AdminHandler struct {
	service ports.ShopService
}

func NewAdminHandler(service ports.ShopService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List registered users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /v1/admin/users/:id. Admins cannot delete their
// own account.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if c.Param("id") == id.UserID {
		return domain.ErrForbidden
	}

	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
