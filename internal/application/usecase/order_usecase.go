package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// OrderUseCase CRUD de pedidos y agregación por usuario.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create registra un pedido.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !catalog.ValidCode(in.OrderID) {
		return nil, fmt.Errorf("código de pedido %q: %w", in.OrderID, domain.ErrInvalidInput)
	}
	if in.Value.IsNegative() {
		return nil, fmt.Errorf("valor negativo: %w", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCode(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("pedido %s: %w", in.OrderID, domain.ErrDuplicate)
	}
	order := &entity.Order{
		Code:         in.OrderID,
		Description:  in.Description,
		Value:        in.Value,
		ProductsDesc: in.ProductsDesc,
		UserID:       in.UserID,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List devuelve todos los pedidos.
func (uc *OrderUseCase) List(ctx context.Context) (*dto.OrderListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderList(list), nil
}

// ListByUser devuelve los pedidos de un usuario.
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string) (*dto.OrderListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id vacío: %w", domain.ErrInvalidInput)
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderList(list), nil
}

// Get obtiene un pedido por código.
func (uc *OrderUseCase) Get(ctx context.Context, code string) (*dto.OrderResponse, error) {
	o, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Update modifica descripción, valor y detalle de productos.
func (uc *OrderUseCase) Update(ctx context.Context, code string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	o, err := uc.find(ctx, code)
	if err != nil {
		return nil, err
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.Value != nil {
		if in.Value.IsNegative() {
			return nil, fmt.Errorf("valor negativo: %w", domain.ErrInvalidInput)
		}
		o.Value = *in.Value
	}
	if in.ProductsDesc != nil {
		o.ProductsDesc = *in.ProductsDesc
	}
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOrderResponse(o), nil
}

// Delete elimina el pedido.
func (uc *OrderUseCase) Delete(ctx context.Context, code string) error {
	o, err := uc.find(ctx, code)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, o.ID)
}

// Aggregation agrupa los pedidos por usuario: número, total y media. Orden: total desc.
func (uc *OrderUseCase) Aggregation(ctx context.Context) (*dto.OrderAggregationResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	byUser := make(map[string]*dto.UserOrderAggregate)
	total := decimal.Zero
	for _, o := range list {
		agg, ok := byUser[o.UserID]
		if !ok {
			agg = &dto.UserOrderAggregate{UserID: o.UserID, TotalValue: decimal.Zero}
			byUser[o.UserID] = agg
		}
		agg.OrderCount++
		agg.TotalValue = agg.TotalValue.Add(o.Value)
		total = total.Add(o.Value)
	}
	users := make([]dto.UserOrderAggregate, 0, len(byUser))
	for _, agg := range byUser {
		agg.AvgValue = agg.TotalValue.Div(decimal.NewFromInt(int64(agg.OrderCount))).Round(2)
		agg.TotalValue = agg.TotalValue.Round(2)
		users = append(users, *agg)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].TotalValue.Equal(users[j].TotalValue) {
			return users[i].TotalValue.GreaterThan(users[j].TotalValue)
		}
		return users[i].UserID < users[j].UserID
	})
	return &dto.OrderAggregationResponse{
		Users:       users,
		TotalOrders: len(list),
		TotalValue:  total.Round(2),
	}, nil
}

func (uc *OrderUseCase) find(ctx context.Context, code string) (*entity.Order, error) {
	if !catalog.ValidCode(code) {
		return nil, fmt.Errorf("código de pedido %q: %w", code, domain.ErrInvalidInput)
	}
	o, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("pedido %s: %w", code, domain.ErrNotFound)
	}
	return o, nil
}

func toOrderList(list []*entity.Order) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}
}
