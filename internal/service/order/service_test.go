package order

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftshop/admin-backend/internal/domain"
)

type mockOrderRepo struct {
	GetByIDFunc func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	ListFunc    func(ctx context.Context) ([]*domain.Order, error)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, orderID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockOrderRepo) List(ctx context.Context) ([]*domain.Order, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*domain.Order{}, nil
}

type mockCustomerRepo struct {
	GetByKeyFunc func(ctx context.Context, key string) (*domain.Customer, error)
}

func (m *mockCustomerRepo) GetByKey(ctx context.Context, key string) (*domain.Customer, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, domain.ErrNotFound
}

func newTestService(orders *mockOrderRepo, customers *mockCustomerRepo) *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), orders, customers)
}

func TestGetOrder_WithCustomer(t *testing.T) {
	t.Parallel()

	orderID := uuid.New()
	orders := &mockOrderRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
			return &domain.Order{ID: id, CustomerKey: "cust_42"}, nil
		},
	}
	customers := &mockCustomerRepo{
		GetByKeyFunc: func(ctx context.Context, key string) (*domain.Customer, error) {
			assert.Equal(t, "cust_42", key)
			return &domain.Customer{Key: key, Name: "Jo"}, nil
		},
	}

	details, err := newTestService(orders, customers).GetOrder(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, details.Order.ID)
	require.NotNil(t, details.Customer)
	assert.Equal(t, "Jo", details.Customer.Name)
}

func TestGetOrder_MissingCustomerIsTolerated(t *testing.T) {
	t.Parallel()

	orders := &mockOrderRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
			return &domain.Order{ID: id, CustomerKey: "cust_gone"}, nil
		},
	}

	details, err := newTestService(orders, &mockCustomerRepo{}).GetOrder(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Nil(t, details.Customer)
	assert.NotNil(t, details.Order)
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestService(&mockOrderRepo{}, &mockCustomerRepo{}).GetOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetOrder_CustomerStoreFailurePropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store down")
	orders := &mockOrderRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
			return &domain.Order{ID: id, CustomerKey: "cust_1"}, nil
		},
	}
	customers := &mockCustomerRepo{
		GetByKeyFunc: func(ctx context.Context, key string) (*domain.Customer, error) {
			return nil, storeErr
		},
	}

	_, err := newTestService(orders, customers).GetOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, storeErr)
}

func TestListOrders(t *testing.T) {
	t.Parallel()

	orders := &mockOrderRepo{
		ListFunc: func(ctx context.Context) ([]*domain.Order, error) {
			return []*domain.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}

	got, err := newTestService(orders, &mockCustomerRepo{}).ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
