package domain

import (
	"context"
	"time"
)

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryMen         Category = "men"
	CategoryWomen       Category = "women"
	CategoryAccessories Category = "accessories"
	CategoryShoes       Category = "shoes"
	CategoryBags        Category = "bags"
	CategoryJewelry     Category = "jewelry"
)

// Categories lists every valid category, exported for the public enums API.
var Categories = []Category{
	CategoryMen,
	CategoryWomen,
	CategoryAccessories,
	CategoryShoes,
	CategoryBags,
	CategoryJewelry,
}

// ParseCategory returns the matching Category, or false when the value is
// not part of the enumerated set.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Brand       string    `json:"brand"`
	Category    Category  `json:"category"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// --- Interfaces ---

type ProductRepository interface {
	GetProductByID(ctx context.Context, id string) (*Product, error)

	// Admin Management
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, product *Product) error
	UpdateProductStatus(ctx context.Context, id string, isActive bool) error
	DeleteProduct(ctx context.Context, id string) error
}
