package usecase

import (
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func toCategoryResponse(c *entity.Category, parentCode string) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	out := &dto.CategoryResponse{
		ID:          c.ID,
		CategoryID:  c.Code,
		Name:        c.Name,
		Description: c.Description,
		Level:       c.Level,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if parentCode != "" {
		out.ParentCategory = &parentCode
	}
	return out
}

func toProductResponse(p *entity.Product, category *entity.Category) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:             p.ID,
		ProductID:      p.Code,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Quantity:       p.Quantity,
		InventoryValue: p.InventoryValue().Round(2),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if category != nil {
		out.Category = category.Code
		out.CategoryName = category.Name
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		OrderID:      o.Code,
		Description:  o.Description,
		Value:        o.Value,
		ProductsDesc: o.ProductsDesc,
		UserID:       o.UserID,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// ToUserResponse convierte un usuario a su DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	hobbies := u.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}
	return &dto.UserResponse{
		ID:          u.ID,
		UserID:      u.UserCode,
		Email:       u.Email,
		Name:        u.Name,
		Age:         u.Age,
		Hobbies:     hobbies,
		IsAdmin:     u.IsAdmin,
		Role:        u.Role(),
		Description: u.Description,
		Address: dto.AddressDTO{
			Street: u.Address.Street,
			City:   u.Address.City,
			State:  u.Address.State,
			Zip:    u.Address.Zip,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
