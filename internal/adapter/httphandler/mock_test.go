package httphandler_test

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Home(ctx context.Context) (domain.Home, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Home), args.Error(1)
}

func (m *MockCatalogService) ListProducts(
	ctx context.Context, params domain.ListingParams,
) (domain.Listing, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.Listing), args.Error(1)
}

func (m *MockCatalogService) Product(ctx context.Context, handle string) (domain.Product, error) {
	args := m.Called(ctx, handle)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogService) Collections(ctx context.Context) ([]domain.Collection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Collection), args.Error(1)
}

func (m *MockCatalogService) CollectionListing(
	ctx context.Context, handle string, params domain.ListingParams,
) (domain.CollectionListing, error) {
	args := m.Called(ctx, handle, params)
	return args.Get(0).(domain.CollectionListing), args.Error(1)
}

func (m *MockCatalogService) Search(
	ctx context.Context, query string, params domain.ListingParams,
) domain.SearchResult {
	args := m.Called(ctx, query, params)
	return args.Get(0).(domain.SearchResult)
}

type MockRevalidator struct {
	mock.Mock
}

func (m *MockRevalidator) Revalidate(tag string) int {
	args := m.Called(tag)
	return args.Int(0)
}

type MockCartFacade struct {
	mock.Mock
}

func (m *MockCartFacade) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	args := m.Called(ctx, cartID)
	cart, _ := args.Get(0).(*domain.Cart)
	return cart, args.Error(1)
}

func (m *MockCartFacade) Do(ctx context.Context, req domain.CartRequest) (domain.Cart, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Cart), args.Error(1)
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

type MockCartIDStore struct {
	mock.Mock
}

func (m *MockCartIDStore) LoadCartID(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockCartIDStore) SaveCartID(ctx context.Context, sessionID, cartID string) error {
	args := m.Called(ctx, sessionID, cartID)
	return args.Error(0)
}

func (m *MockCartIDStore) DeleteCartID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockSearchStatsReader struct {
	mock.Mock
}

func (m *MockSearchStatsReader) SearchCount(ctx context.Context, query string) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}
