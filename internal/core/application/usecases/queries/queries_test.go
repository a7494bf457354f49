package queries_test

import (
	"context"
	"testing"
	"time"

	"rentalhub/internal/core/application/usecases/queries"
	"rentalhub/internal/core/domain/model/kernel"
	"rentalhub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Snapshot, error) {
	args := m.Called(ctx, id)
	if snap := args.Get(0); snap != nil {
		return snap.(*order.Snapshot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) UpdateFields(ctx context.Context, id kernel.UUID, patch order.Patch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *MockOrderRepository) InsertStatusHistory(ctx context.Context, record order.HistoryRecord) error {
	return m.Called(ctx, record).Error(0)
}

func TestGetOrderQuery(t *testing.T) {
	t.Run("valid id", func(t *testing.T) {
		id := kernel.NewUUID()
		q, err := queries.NewGetOrderQuery(id)
		require.NoError(t, err)
		assert.True(t, q.OrderID().IsEqual(id))
	})

	t.Run("zero id rejected", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("unconstructed query rejected by handler", func(t *testing.T) {
		repo := new(MockOrderRepository)
		h := queries.NewGetOrderQueryHandler(repo)
		_, err := h.Handle(t.Context(), queries.GetOrderQuery{})
		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestGetOrderQueryHandler_DelegatesToRepository(t *testing.T) {
	id := kernel.NewUUID()
	snap := &order.Snapshot{ID: id, OrderNumber: "ORD-9"}

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, id).Return(snap, nil).Once()

	h := queries.NewGetOrderQueryHandler(repo)
	q, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)

	got, err := h.Handle(t.Context(), q)
	require.NoError(t, err)
	assert.Equal(t, "ORD-9", got.OrderNumber)
	repo.AssertExpectations(t)
}

func TestGetOrdersQuery_CanonicalizesStatusFilter(t *testing.T) {
	status := order.Status("Shipped")
	q := queries.NewGetOrdersQuery(&status)

	require.NotNil(t, q.Status())
	assert.Equal(t, order.StatusShipped, *q.Status())

	unfiltered := queries.NewGetOrdersQuery(nil)
	assert.Nil(t, unfiltered.Status())
}

func TestGetOverdueRentalsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		now := time.Now()
		q, err := queries.NewGetOverdueRentalsQuery(now)
		require.NoError(t, err)
		assert.Equal(t, now, q.AsOf())
	})

	t.Run("zero time rejected", func(t *testing.T) {
		_, err := queries.NewGetOverdueRentalsQuery(time.Time{})
		require.Error(t, err)
	})
}
