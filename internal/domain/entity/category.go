package entity

import "time"

// Category representa una categoría del catálogo. Las categorías forman un bosque:
// ParentID vacío indica una raíz.
type Category struct {
	ID          string
	Code        string // identificador externo estable (ej. CAT001)
	Name        string
	Description string
	ParentID    string // vacío si es raíz
	Level       int    // 0 para raíces; nivel del padre + 1 al crear
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}
