package handler

import (
	"github.com/matchfit/matchfit-api/internal/core/domain"
	"github.com/matchfit/matchfit-api/internal/core/ports"
)

type saveProductRequest struct {
	Name        string `json:"name"        validate:"required"`
	Price       int64  `json:"price"       validate:"required,gt=0"`
	Description string `json:"description"`
	Category    string `json:"category"    validate:"required,oneof=fashion accessories makeup skincare"`
	Image       string `json:"image"`
	Stock       int    `json:"stock"       validate:"gte=0"`
}

func (r saveProductRequest) toInput() ports.SaveProductInput {
	return ports.SaveProductInput{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Category:    domain.ProductCategory(r.Category),
		Image:       r.Image,
		Stock:       r.Stock,
	}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type adjustQuantityRequest struct {
	// Delta is added to the line quantity; the result is clamped at 1.
	Delta int `json:"delta" validate:"required"`
}

type cartResponse struct {
	Items []domain.CartItem `json:"items"`
	Total int64             `json:"total"`
}

func toCartResponse(items []domain.CartItem) cartResponse {
	if items == nil {
		items = []domain.CartItem{}
	}
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return cartResponse{Items: items, Total: total}
}

type checkoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	// PaymentMethod is a display label ("Credit Card", "Bank Transfer", ...);
	// no gateway is involved so any non-empty value is accepted.
	PaymentMethod  string `json:"payment_method"  validate:"required"`
	IdempotencyKey string `json:"idempotency_key"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending shipped delivered"`
}
