package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ProductUseCase CRUD de productos y listado por categoría (con o sin descendientes).
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	resolver   *catalog.Resolver
	maxDepth   int
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, maxDepth int) *ProductUseCase {
	if maxDepth <= 0 {
		maxDepth = catalog.DefaultMaxDepth
	}
	return &ProductUseCase{
		products:   products,
		categories: categories,
		resolver:   catalog.NewResolver(categories),
		maxDepth:   maxDepth,
	}
}

// Create crea un producto. La categoría debe existir y estar activa.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !catalog.ValidCode(in.ProductID) {
		return nil, fmt.Errorf("código de producto %q: %w", in.ProductID, domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, fmt.Errorf("precio y cantidad no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	if !catalog.ValidCode(in.Category) {
		return nil, fmt.Errorf("código de categoría %q: %w", in.Category, domain.ErrInvalidInput)
	}
	category, err := uc.categories.GetByCode(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("categoría %s: %w", in.Category, domain.ErrNotFound)
	}
	existing, err := uc.products.GetByCode(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrDuplicate)
	}

	product := &entity.Product{
		Code:        in.ProductID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CategoryID:  category.ID,
		IsActive:    true,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info().Str("product_id", product.Code).Str("category_id", category.Code).Msg("producto creado")
	return toProductResponse(product, category), nil
}

// List devuelve los productos activos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.responses(ctx, list)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Get obtiene un producto activo por código externo.
func (uc *ProductUseCase) Get(ctx context.Context, code string) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	category, err := uc.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p, category), nil
}

// Update actualiza nombre, descripción, precio y cantidad.
func (uc *ProductUseCase) Update(ctx context.Context, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
		}
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("cantidad negativa: %w", domain.ErrInvalidInput)
		}
		p.Quantity = *in.Quantity
	}
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	category, err := uc.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p, category), nil
}

// Delete desactiva el producto.
func (uc *ProductUseCase) Delete(ctx context.Context, code string) error {
	p, err := uc.find(ctx, code)
	if err != nil {
		return err
	}
	return uc.products.SoftDelete(ctx, p.ID)
}

// ByCategory lista los productos activos de la categoría. Con includeChildren=true
// incluye los de todos sus descendientes hasta la profundidad configurada.
func (uc *ProductUseCase) ByCategory(ctx context.Context, code string, includeChildren bool) (*dto.ProductsByCategoryResponse, error) {
	depth := 1
	if includeChildren {
		depth = uc.maxDepth
	}
	cats, err := uc.resolver.Descendants(ctx, code, depth, true)
	if err != nil {
		return nil, err
	}
	if !includeChildren {
		cats = cats[:1]
	}
	ids := make([]string, 0, len(cats))
	codes := make([]string, 0, len(cats))
	byID := make(map[string]*entity.Category, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
		codes = append(codes, c.Code)
		byID[c.ID] = c
	}
	list, err := uc.products.ListActiveByCategories(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, byID[p.CategoryID]))
	}
	return &dto.ProductsByCategoryResponse{
		CategoryID:      code,
		IncludeChildren: includeChildren,
		Categories:      codes,
		Items:           items,
		Total:           len(items),
	}, nil
}

func (uc *ProductUseCase) find(ctx context.Context, code string) (*entity.Product, error) {
	if !catalog.ValidCode(code) {
		return nil, fmt.Errorf("código de producto %q: %w", code, domain.ErrInvalidInput)
	}
	p, err := uc.products.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %s: %w", code, domain.ErrNotFound)
	}
	return p, nil
}

// responses resuelve la categoría de cada producto con una sola lectura de categorías activas.
func (uc *ProductUseCase) responses(ctx context.Context, list []*entity.Product) ([]dto.ProductResponse, error) {
	cats, err := uc.categories.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Category, len(cats))
	for _, c := range cats {
		byID[c.ID] = c
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, byID[p.CategoryID]))
	}
	return items, nil
}
