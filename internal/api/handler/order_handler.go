package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

// OrderHandler serves checkout, the caller's order history and the admin
// order console.
type OrderHandler struct {
	service ports.ShopService
}

func NewOrderHandler(service ports.ShopService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Checkout handles POST /v1/checkout. Replaying the same Idempotency-Key
// returns the original order with status 200 instead of placing a new one.
//
// @Summary      Place an order from the cart
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Idempotency key"
// @Param        body             body      checkoutRequest  true   "Shipping and payment details"
// @Success      200              {object}  domain.Order  "replayed order"
// @Success      201              {object}  domain.Order
// @Failure      400              {object}  errorResponse
// @Router       /v1/checkout [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key := c.Request().Header.Get("Idempotency-Key")
	if key == "" {
		key = req.IdempotencyKey
	}

	result, err := h.service.Checkout(c.Request().Context(), ports.CheckoutInput{
		UserID:          id.UserID,
		UserName:        id.Name,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		IdempotencyKey:  key,
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, result.Order)
}

// List handles GET /v1/orders — the caller's own orders, newest first.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll handles GET /v1/admin/orders.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAllOrders(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus handles PATCH /v1/admin/orders/:id/status. Only forward
// transitions are allowed (pending -> shipped -> delivered).
//
// @Summary      Advance an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Order
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateOrderStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
