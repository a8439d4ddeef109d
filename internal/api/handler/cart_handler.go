package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/matchfit/matchfit-api/internal/core/ports"
)

// CartHandler serves the caller's shopping cart.
type CartHandler struct {
	service ports.ShopService
}

func NewCartHandler(service ports.ShopService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /v1/cart.
//
// @Summary      View the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.Cart(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(items))
}

// AddItem handles POST /v1/cart/items. Adding a product already in the cart
// bumps that line's quantity instead of creating a duplicate line.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToCartRequest  true  "Product to add"
// @Success      200   {object}  cartResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.service.AddToCart(c.Request().Context(), id.UserID, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(items))
}

// AdjustItem handles PATCH /v1/cart/items/:productId.
//
// @Summary      Adjust a line's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string                 true  "Product id"
// @Param        body       body      adjustQuantityRequest  true  "Quantity delta"
// @Success      200        {object}  cartResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/cart/items/{productId} [patch]
func (h *CartHandler) AdjustItem(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req adjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.service.AdjustQuantity(c.Request().Context(), id.UserID, c.Param("productId"), req.Delta)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(items))
}

// RemoveItem handles DELETE /v1/cart/items/:productId.
//
// @Summary      Remove a line from the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  cartResponse
// @Failure      401        {object}  errorResponse
// @Router       /v1/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.RemoveFromCart(c.Request().Context(), id.UserID, c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(items))
}

// Clear handles DELETE /v1/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Security     BearerAuth
// @Success      204  "cart emptied"
// @Failure      401  {object}  errorResponse
// @Router       /v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.ClearCart(c.Request().Context(), id.UserID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
