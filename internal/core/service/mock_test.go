package service_test

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) Products(ctx context.Context, first int) ([]domain.Product, error) {
	args := m.Called(ctx, first)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockCatalogReader) ProductByHandle(ctx context.Context, handle string) (domain.Product, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogReader) Collections(ctx context.Context, first int) ([]domain.Collection, error) {
	args := m.Called(ctx, first)
	cs, _ := args.Get(0).([]domain.Collection)
	return cs, args.Error(1)
}

func (m *MockCatalogReader) CollectionByHandle(
	ctx context.Context, handle string, first int,
) (domain.Collection, error) {
	args := m.Called(ctx, handle, first)
	return args.Get(0).(domain.Collection), args.Error(1)
}

func (m *MockCatalogReader) SearchProducts(
	ctx context.Context, query string, first int,
) ([]domain.Product, error) {
	args := m.Called(ctx, query, first)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

type MockCartGateway struct {
	mock.Mock
}

func (m *MockCartGateway) Cart(ctx context.Context, cartID string) (domain.Cart, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartGateway) CreateCart(
	ctx context.Context, lines []domain.CartLineInput,
) (domain.Cart, error) {
	args := m.Called(ctx, lines)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartGateway) AddLines(
	ctx context.Context, cartID string, lines []domain.CartLineInput,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, lines)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartGateway) UpdateLines(
	ctx context.Context, cartID string, lines []domain.CartLineUpdate,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, lines)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartGateway) RemoveLines(
	ctx context.Context, cartID string, lineIDs []string,
) (domain.Cart, error) {
	args := m.Called(ctx, cartID, lineIDs)
	return args.Get(0).(domain.Cart), args.Error(1)
}

type MockEventsProducer struct {
	mock.Mock
}

func (m *MockEventsProducer) ProduceEvents(ctx context.Context, es []domain.StorefrontEvent) error {
	args := m.Called(ctx, es)
	return args.Error(0)
}
