package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Category es el código externo de la categoría.
type CreateProductRequest struct {
	ProductID   string          `json:"product_id" validate:"required,max=64"`
	Name        string          `json:"product_name" validate:"required,min=1,max=200"`
	Description string          `json:"product_description" validate:"max=2000"`
	Price       decimal.Decimal `json:"product_price"`
	Quantity    int             `json:"product_quantity" validate:"min=0"`
	Category    string          `json:"product_category" validate:"required,max=64"`
}

// UpdateProductRequest entrada para actualizar un producto. La categoría no se cambia aquí.
type UpdateProductRequest struct {
	Name        *string          `json:"product_name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"product_description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"product_price"`
	Quantity    *int             `json:"product_quantity" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	Name           string          `json:"product_name"`
	Description    string          `json:"product_description"`
	Price          decimal.Decimal `json:"product_price"`
	Quantity       int             `json:"product_quantity"`
	Category       string          `json:"product_category"`
	CategoryName   string          `json:"category_name"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductsByCategoryResponse productos de una categoría y, opcionalmente, de sus descendientes.
type ProductsByCategoryResponse struct {
	CategoryID      string            `json:"category_id"`
	IncludeChildren bool              `json:"include_children"`
	Categories      []string          `json:"categories"`
	Items           []ProductResponse `json:"items"`
	Total           int               `json:"total"`
}
