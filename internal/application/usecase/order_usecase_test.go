package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
)

func TestOrderAggregation_PorUsuario(t *testing.T) {
	uc := usecase.NewOrderUseCase(memory.NewStore().Orders())
	ctx := context.Background()

	orders := []dto.CreateOrderRequest{
		{OrderID: "O1", Value: decimal.NewFromInt(100), UserID: "u1"},
		{OrderID: "O2", Value: decimal.NewFromInt(50), UserID: "u1"},
		{OrderID: "O3", Value: decimal.NewFromInt(400), UserID: "u2"},
	}
	for _, o := range orders {
		_, err := uc.Create(ctx, o)
		require.NoError(t, err)
	}

	agg, err := uc.Aggregation(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, agg.TotalOrders)
	assert.Equal(t, "550", agg.TotalValue.String())
	require.Len(t, agg.Users, 2)
	assert.Equal(t, "u2", agg.Users[0].UserID)
	assert.Equal(t, 2, agg.Users[1].OrderCount)
	assert.Equal(t, "75", agg.Users[1].AvgValue.String())
}

func TestOrderCRUD(t *testing.T) {
	uc := usecase.NewOrderUseCase(memory.NewStore().Orders())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateOrderRequest{OrderID: "O1", Value: decimal.NewFromInt(10), UserID: "u1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateOrderRequest{OrderID: "O1", Value: decimal.NewFromInt(10), UserID: "u1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	desc := "actualizado"
	o, err := uc.Update(ctx, "O1", dto.UpdateOrderRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "actualizado", o.Description)

	byUser, err := uc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, byUser.Total)

	require.NoError(t, uc.Delete(ctx, "O1"))
	_, err = uc.Get(ctx, "O1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
