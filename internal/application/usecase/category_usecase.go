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

// CategoryUseCase CRUD de categorías y consulta de descendientes contra el almacén.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	resolver *catalog.Resolver
	maxDepth int
}

// NewCategoryUseCase construye el caso de uso. maxDepth es la profundidad por defecto del resolver.
func NewCategoryUseCase(repo repository.CategoryRepository, maxDepth int) *CategoryUseCase {
	if maxDepth <= 0 {
		maxDepth = catalog.DefaultMaxDepth
	}
	return &CategoryUseCase{repo: repo, resolver: catalog.NewResolver(repo), maxDepth: maxDepth}
}

// DefaultMaxDepth profundidad usada cuando el cliente no la indica.
func (uc *CategoryUseCase) DefaultMaxDepth() int { return uc.maxDepth }

// Create crea una categoría. El nivel se deriva del padre (0 sin padre); el padre debe
// existir y estar activo.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !catalog.ValidCode(in.CategoryID) {
		return nil, fmt.Errorf("código de categoría %q: %w", in.CategoryID, domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCode(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("categoría %s: %w", in.CategoryID, domain.ErrDuplicate)
	}

	category := &entity.Category{
		Code:        in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
	}
	if in.ParentCategory != "" {
		if !catalog.ValidCode(in.ParentCategory) {
			return nil, fmt.Errorf("código de categoría padre %q: %w", in.ParentCategory, domain.ErrInvalidInput)
		}
		parent, err := uc.repo.GetByCode(ctx, in.ParentCategory)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("categoría padre %s: %w", in.ParentCategory, domain.ErrNotFound)
		}
		category.ParentID = parent.ID
		category.Level = parent.Level + 1
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info().Str("category_id", category.Code).Int("level", category.Level).Msg("categoría creada")
	return toCategoryResponse(category, in.ParentCategory), nil
}

// List devuelve las categorías activas ordenadas por nivel y nombre.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(list))
	for _, c := range list {
		codes[c.ID] = c.Code
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c, codes[c.ParentID]))
	}
	return &dto.CategoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Get obtiene una categoría activa por código externo.
func (uc *CategoryUseCase) Get(ctx context.Context, code string) (*dto.CategoryResponse, error) {
	c, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	parentCode, err := uc.parentCode(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c, parentCode), nil
}

// Update actualiza nombre y descripción. El padre y el nivel no cambian.
func (uc *CategoryUseCase) Update(ctx context.Context, code string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	parentCode, err := uc.parentCode(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c, parentCode), nil
}

// Delete desactiva la categoría. Sus descendientes quedan fuera de los recorridos.
func (uc *CategoryUseCase) Delete(ctx context.Context, code string) error {
	c, err := uc.find(ctx, code)
	if err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, c.ID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Str("category_id", code).Msg("categoría desactivada")
	return nil
}

// Descendants resuelve los descendientes de la categoría contra el almacén.
func (uc *CategoryUseCase) Descendants(ctx context.Context, code string, maxDepth int, inclusive bool) (*dto.DescendantsResponse, error) {
	list, err := uc.resolver.Descendants(ctx, code, maxDepth, inclusive)
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(list))
	for _, c := range list {
		codes[c.ID] = c.Code
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		parentCode := codes[c.ParentID]
		if parentCode == "" && c.ParentID != "" {
			if parentCode, err = uc.parentCode(ctx, c); err != nil {
				return nil, err
			}
		}
		items = append(items, *toCategoryResponse(c, parentCode))
	}
	return &dto.DescendantsResponse{
		CategoryID: code,
		MaxDepth:   maxDepth,
		Inclusive:  inclusive,
		Items:      items,
		Total:      len(items),
	}, nil
}

func (uc *CategoryUseCase) find(ctx context.Context, code string) (*entity.Category, error) {
	if !catalog.ValidCode(code) {
		return nil, fmt.Errorf("código de categoría %q: %w", code, domain.ErrInvalidInput)
	}
	c, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("categoría %s: %w", code, domain.ErrNotFound)
	}
	return c, nil
}

func (uc *CategoryUseCase) parentCode(ctx context.Context, c *entity.Category) (string, error) {
	if c.ParentID == "" {
		return "", nil
	}
	parent, err := uc.repo.GetByID(ctx, c.ParentID)
	if err != nil {
		return "", err
	}
	if parent == nil {
		return "", nil
	}
	return parent.Code, nil
}
