package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. ParentCategory es el código externo del padre.
type CreateCategoryRequest struct {
	CategoryID     string `json:"category_id" validate:"required,max=64"`
	Name           string `json:"category_name" validate:"required,min=1,max=200"`
	Description    string `json:"category_description" validate:"max=1000"`
	ParentCategory string `json:"parent_category" validate:"omitempty,max=64"`
}

// UpdateCategoryRequest entrada para actualizar nombre y descripción (el padre no se mueve).
type UpdateCategoryRequest struct {
	Name        *string `json:"category_name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"category_description" validate:"omitempty,max=1000"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"category_id"`
	Name           string    `json:"category_name"`
	Description    string    `json:"category_description"`
	ParentCategory *string   `json:"parent_category"`
	Level          int       `json:"level"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// DescendantsResponse resultado del resolver de jerarquía.
type DescendantsResponse struct {
	CategoryID string             `json:"category_id"`
	MaxDepth   int                `json:"max_depth"`
	Inclusive  bool               `json:"inclusive"`
	Items      []CategoryResponse `json:"items"`
	Total      int                `json:"total"`
}

// CategoryTreeNode nodo del árbol de categorías. ChildrenCount cuenta todos los descendientes.
type CategoryTreeNode struct {
	ID                  string             `json:"id"`
	CategoryID          string             `json:"category_id"`
	CategoryName        string             `json:"category_name"`
	CategoryDescription string             `json:"category_description"`
	Level               int                `json:"level"`
	ChildrenCount       int                `json:"children_count"`
	Children            []CategoryTreeNode `json:"children"`
}

// CategoryTreeResponse bosque de categorías activas.
type CategoryTreeResponse struct {
	Roots       []CategoryTreeNode `json:"roots"`
	TotalRoots  int                `json:"total_roots"`
	GeneratedAt time.Time          `json:"generated_at"`
}
