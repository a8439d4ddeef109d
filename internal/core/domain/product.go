package domain

import (
	"errors"
	"time"
)

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

const (
	CategoryFashion     ProductCategory = "fashion"
	CategoryAccessories ProductCategory = "accessories"
	CategoryMakeup      ProductCategory = "makeup"
	CategorySkincare    ProductCategory = "skincare"
)

var ErrProductNotFound = errors.New("product not found")
var ErrOutOfStock = errors.New("product out of stock")
var ErrCartEmpty = errors.New("cart is empty")

// Product is a catalog item. Prices are whole rupiah. Stock is floored at zero
// by checkout; SoldCount grows by the full ordered quantity regardless.
type Product struct {
	ID          string          `json:"id" bson:"_id"`
	Name        string          `json:"name" bson:"name"`
	Price       int64           `json:"price" bson:"price"`
	Description string          `json:"description" bson:"description"`
	Category    ProductCategory `json:"category" bson:"category"`
	Image       string          `json:"image" bson:"image"` // base64
	Stock       int             `json:"stock" bson:"stock"`
	SoldCount   int             `json:"sold_count" bson:"sold_count"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
}

// CartItem is a per-user cart line keyed by product id. Name, price and image
// are snapshots taken when the product was added; quantity is always >= 1.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}
