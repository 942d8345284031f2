package rest

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/domain"
	"github.com/craftshop/admin-backend/internal/service/catalog"
	"github.com/craftshop/admin-backend/internal/service/order"
)

// Manual mocks (moq-style with func fields) shared by the handler tests.

type productServiceMock struct {
	CreateProductFunc  func(ctx context.Context, input catalog.ProductInput) (*domain.Product, error)
	UpdateProductFunc  func(ctx context.Context, productID uuid.UUID, input catalog.ProductInput) (*domain.Product, error)
	DeleteProductFunc  func(ctx context.Context, productID uuid.UUID) error
	GetProductFunc     func(ctx context.Context, productID uuid.UUID) (*domain.Product, error)
	ListProductsFunc   func(ctx context.Context) ([]*domain.Product, error)
	SearchProductsFunc func(ctx context.Context, query string) ([]*domain.Product, error)
}

func (m *productServiceMock) CreateProduct(ctx context.Context, input catalog.ProductInput) (*domain.Product, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, input)
	}
	return &domain.Product{ID: uuid.New()}, nil
}

func (m *productServiceMock) UpdateProduct(ctx context.Context, productID uuid.UUID, input catalog.ProductInput) (*domain.Product, error) {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, productID, input)
	}
	return &domain.Product{ID: productID}, nil
}

func (m *productServiceMock) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, productID)
	}
	return nil
}

func (m *productServiceMock) GetProduct(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, productID)
	}
	return nil, domain.ErrNotFound
}

func (m *productServiceMock) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return []*domain.Product{}, nil
}

func (m *productServiceMock) SearchProducts(ctx context.Context, query string) ([]*domain.Product, error) {
	if m.SearchProductsFunc != nil {
		return m.SearchProductsFunc(ctx, query)
	}
	return []*domain.Product{}, nil
}

type collectionServiceMock struct {
	CreateCollectionFunc func(ctx context.Context, input catalog.CollectionInput) (*domain.Collection, error)
	GetCollectionFunc    func(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	UpdateCollectionFunc func(ctx context.Context, collectionID uuid.UUID, input catalog.CollectionInput) (*domain.Collection, error)
	DeleteCollectionFunc func(ctx context.Context, collectionID uuid.UUID) error
	ListCollectionsFunc  func(ctx context.Context) ([]*domain.Collection, error)
}

func (m *collectionServiceMock) CreateCollection(ctx context.Context, input catalog.CollectionInput) (*domain.Collection, error) {
	if m.CreateCollectionFunc != nil {
		return m.CreateCollectionFunc(ctx, input)
	}
	return &domain.Collection{ID: uuid.New(), Title: input.Title}, nil
}

func (m *collectionServiceMock) GetCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	if m.GetCollectionFunc != nil {
		return m.GetCollectionFunc(ctx, collectionID)
	}
	return nil, domain.ErrNotFound
}

func (m *collectionServiceMock) UpdateCollection(ctx context.Context, collectionID uuid.UUID, input catalog.CollectionInput) (*domain.Collection, error) {
	if m.UpdateCollectionFunc != nil {
		return m.UpdateCollectionFunc(ctx, collectionID, input)
	}
	return &domain.Collection{ID: collectionID, Title: input.Title}, nil
}

func (m *collectionServiceMock) DeleteCollection(ctx context.Context, collectionID uuid.UUID) error {
	if m.DeleteCollectionFunc != nil {
		return m.DeleteCollectionFunc(ctx, collectionID)
	}
	return nil
}

func (m *collectionServiceMock) ListCollections(ctx context.Context) ([]*domain.Collection, error) {
	if m.ListCollectionsFunc != nil {
		return m.ListCollectionsFunc(ctx)
	}
	return []*domain.Collection{}, nil
}

type orderServiceMock struct {
	GetOrderFunc   func(ctx context.Context, orderID uuid.UUID) (*order.Details, error)
	ListOrdersFunc func(ctx context.Context) ([]*domain.Order, error)
}

func (m *orderServiceMock) GetOrder(ctx context.Context, orderID uuid.UUID) (*order.Details, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, orderID)
	}
	return nil, domain.ErrNotFound
}

func (m *orderServiceMock) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx)
	}
	return []*domain.Order{}, nil
}

type mediaStoreMock struct {
	SaveFunc func(ctx context.Context, filename string, r io.Reader) (string, error)
}

func (m *mediaStoreMock) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, r)
	}
	return "img_test", nil
}

type validatorMock struct {
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
}

func (m *validatorMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return uuid.New(), nil
}
