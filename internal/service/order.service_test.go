package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ev-storefront/internal/database"
	"ev-storefront/internal/domain"
	"ev-storefront/pkg/logger"
)

type orderFixture struct {
	verifier *MockVerifier
	products *MockProductRepo
	orders   *MockOrderRepo
	svc      *orderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		verifier: new(MockVerifier),
		products: new(MockProductRepo),
		orders:   new(MockOrderRepo),
	}
	f.svc = NewOrderService(f.verifier, f.products, f.orders, logger.NewNop()).(*orderService)
	f.svc.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }
	return f
}

func model3(t *testing.T) *domain.Product {
	t.Helper()
	for _, p := range database.Catalog() {
		if p.Name == "Model 3" {
			return &p
		}
	}
	t.Fatal("Model 3 missing from catalog")
	return nil
}

func longRangeSelection() domain.Selection {
	return domain.Selection{
		domain.GroupVariant:  "Long Range",
		domain.GroupColor:    "Solid Black",
		domain.GroupWheels:   `18" Aero Wheels`,
		domain.GroupInterior: "All Black",
	}
}

var demoAddress = domain.ShippingAddress{
	Street:  "123 Demo St",
	City:    "Demo City",
	State:   "Demo State",
	ZipCode: "12345",
	Country: "Demo Country",
}

func TestPlaceOrder_Success(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	product := model3(t)
	identity := domain.Identity{UserID: uuid.New(), Email: "driver@example.com"}

	f.verifier.On("Verify", ctx, "good-token").Return(identity, nil)
	f.products.On("FindById", ctx, product.ID).Return(product, nil)
	f.orders.On("CreateOrder", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

	clientTotal := int64(1)
	order, err := f.svc.PlaceOrder(ctx, "good-token", PlaceOrderCommand{
		ProductID:       product.ID,
		Selection:       longRangeSelection(),
		ShippingAddress: demoAddress,
		ClientTotal:     &clientTotal,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, identity.UserID, order.UserID)
	assert.Equal(t, product.ID, order.ProductID)
	assert.Equal(t, int64(48990), order.TotalPrice, "client supplied total must be ignored")
	assert.Equal(t, domain.Configuration{
		Variant:  "Long Range",
		Color:    "Solid Black",
		Wheels:   `18" Aero Wheels`,
		Interior: "All Black",
	}, order.Configuration)
	assert.Equal(t, demoAddress, order.ShippingAddress)
	assert.Equal(t, time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC), order.CreatedAt)

	persisted := f.orders.Calls[0].Arguments.Get(1).(*domain.Order)
	assert.Same(t, order, persisted)
	f.verifier.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.orders.AssertExpectations(t)
}

func TestPlaceOrder_IdenticalSubmissionsCreateDistinctOrders(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	product := model3(t)

	f.verifier.On("Verify", ctx, "good-token").Return(domain.Identity{UserID: uuid.New()}, nil)
	f.products.On("FindById", ctx, product.ID).Return(product, nil)
	f.orders.On("CreateOrder", ctx, mock.Anything).Return(nil).Twice()

	cmd := PlaceOrderCommand{ProductID: product.ID, Selection: longRangeSelection(), ShippingAddress: demoAddress}
	first, err := f.svc.PlaceOrder(ctx, "good-token", cmd)
	require.NoError(t, err)
	second, err := f.svc.PlaceOrder(ctx, "good-token", cmd)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	f.orders.AssertNumberOfCalls(t, "CreateOrder", 2)
}

func TestPlaceOrder_NoCredential(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.PlaceOrder(context.Background(), "", PlaceOrderCommand{ProductID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Nil(t, order)
	f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	f.products.AssertNotCalled(t, "FindById", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_InvalidCredential(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	f.verifier.On("Verify", ctx, "expired").
		Return(domain.Identity{}, errors.Join(domain.ErrInvalidCredential, errors.New("token is expired")))

	order, err := f.svc.PlaceOrder(ctx, "expired", PlaceOrderCommand{ProductID: uuid.New()})

	require.ErrorIs(t, err, domain.ErrInvalidCredential)
	assert.Equal(t, domain.ErrInvalidCredential.Error(), err.Error(), "verification details must not leak")
	assert.Nil(t, order)
	f.products.AssertNotCalled(t, "FindById", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_ProductNotFound(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	id := uuid.New()
	f.verifier.On("Verify", ctx, "good-token").Return(domain.Identity{UserID: uuid.New()}, nil)
	f.products.On("FindById", ctx, id).Return(nil, nil)

	_, err := f.svc.PlaceOrder(ctx, "good-token", PlaceOrderCommand{ProductID: id, Selection: longRangeSelection()})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_CatalogFailure(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	id := uuid.New()
	f.verifier.On("Verify", ctx, "good-token").Return(domain.Identity{UserID: uuid.New()}, nil)
	f.products.On("FindById", ctx, id).Return(nil, errors.New("connection reset"))

	_, err := f.svc.PlaceOrder(ctx, "good-token", PlaceOrderCommand{ProductID: id, Selection: longRangeSelection()})

	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_MissingInterior(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	product := model3(t)
	f.verifier.On("Verify", ctx, "good-token").Return(domain.Identity{UserID: uuid.New()}, nil)
	f.products.On("FindById", ctx, product.ID).Return(product, nil)

	sel := longRangeSelection()
	delete(sel, domain.GroupInterior)
	_, err := f.svc.PlaceOrder(ctx, "good-token", PlaceOrderCommand{ProductID: product.ID, Selection: sel})

	var missing *domain.MissingSelectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.GroupInterior, missing.Group)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_UnknownOption(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	product := model3(t)
	f.verifier.On("Verify", ctx, "good-token").Return(domain.Identity{UserID: uuid.New()}, nil)
	f.products.On("FindById", ctx, product.ID).Return(product, nil)

	sel := longRangeSelection()
	sel[domain.GroupWheels] = `21" Arachnid Wheels`
	_, err := f.svc.PlaceOrder(ctx, "good-token", PlaceOrderCommand{ProductID: product.ID, Selection: sel})

	var unknown *domain.UnknownOptionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, domain.GroupWheels, unknown.Group)
	assert.Equal(t, `21" Arachnid Wheels`, unknown.Name)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_PersistenceError(t *testing.T) {
	f := newOrderFixture()
	ctx := context.Background()
	product := model3(t)
	f.verifier.On("Verify", ctx, "good-token").Return(domain.Identity{UserID: uuid.New()}, nil)
	f.products.On("FindById", ctx, product.ID).Return(product, nil)
	f.orders.On("CreateOrder", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	order, err := f.svc.PlaceOrder(ctx, "good-token", PlaceOrderCommand{ProductID: product.ID, Selection: longRangeSelection()})

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Nil(t, order)
	f.orders.AssertNumberOfCalls(t, "CreateOrder", 1)
}
