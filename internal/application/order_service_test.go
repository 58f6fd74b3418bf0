// internal/application/order_service_test.go
package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopcore/backend/internal/adapters/memory"
	"github.com/shopcore/backend/internal/domain"
)

// fakeCache is an in-process CachePort so listing tests can observe hits and
// invalidations without Redis.
type fakeCache struct {
	data map[string][]byte
	sets int
	gets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.gets++
	data, ok := c.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return data, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}) error {
	c.sets++
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	return nil
}

func (c *fakeCache) DeleteByPrefix(_ context.Context, prefix string) error {
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

func (c *fakeCache) Ping(context.Context) error { return nil }

type orderFixture struct {
	store *memory.Store
	cache *fakeCache
	svc   *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	store := memory.NewStore()
	cache := newFakeCache()
	svc := NewOrderService(store, store, store, cache, zap.NewNop())

	ctx := context.Background()
	seedAccount(t, store, "u1", "u1@example.com")
	require.NoError(t, store.AddAddress(ctx, &domain.Address{
		ID:        "a1",
		AccountID: "u1",
		Name:      "Home",
		Street:    "12 Main Rd",
		District:  "Dhaka",
		State:     "Dhaka",
		Pincode:   "1207",
	}))
	require.NoError(t, store.CreateProduct(ctx, &domain.Product{
		ID: "p1", Name: "Keyboard", Description: "Mechanical", Price: decimal.NewFromInt(80),
	}))
	require.NoError(t, store.CreateProduct(ctx, &domain.Product{
		ID: "p2", Name: "Mouse", Description: "Wireless", Price: decimal.NewFromInt(20),
	}))
	return &orderFixture{store: store, cache: cache, svc: svc}
}

func (f *orderFixture) place(t *testing.T, productIDs ...string) *domain.Order {
	t.Helper()
	order, err := f.svc.PlaceOrder(context.Background(), PlaceOrderRequest{
		AccountID:     "u1",
		AddressID:     "a1",
		ProductIDs:    productIDs,
		PaymentMethod: "cod",
		TotalPrice:    decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	return order
}

func TestOrderService_PlaceOrder(t *testing.T) {
	f := newOrderFixture(t)
	order := f.place(t, "p1", "p2")

	require.NotEmpty(t, order.ID)
	require.Equal(t, "u1", order.AccountID)
	require.Equal(t, domain.PaymentPending, order.PaymentStatus)
	require.Equal(t, domain.OrderStatusPending, order.OrderStatus)
	require.False(t, order.Delivered)
	require.Equal(t, "Home", order.Address.Name)

	// Snapshots arrive in request order regardless of resolution order.
	require.Len(t, order.Products, 2)
	require.Equal(t, "p1", order.Products[0].ID)
	require.Equal(t, "p2", order.Products[1].ID)
	require.True(t, order.Products[0].Price.Equal(decimal.NewFromInt(80)))
	require.True(t, order.TotalPrice.Equal(decimal.NewFromInt(100)))
}

func TestOrderService_PlaceOrderAllOrNothing(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.svc.PlaceOrder(ctx, PlaceOrderRequest{
		AccountID:     "u1",
		AddressID:     "a1",
		ProductIDs:    []string{"p1", "ghost", "p2"},
		PaymentMethod: "cod",
		TotalPrice:    decimal.NewFromInt(100),
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrNotFound))

	orders, err := f.store.ListOrders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders, "failed checkout must write nothing")
}

func TestOrderService_PlaceOrderValidation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	base := PlaceOrderRequest{
		AccountID:     "u1",
		AddressID:     "a1",
		ProductIDs:    []string{"p1"},
		PaymentMethod: "cod",
		TotalPrice:    decimal.NewFromInt(80),
	}

	tests := []struct {
		name   string
		mutate func(r *PlaceOrderRequest)
	}{
		{name: "missing account", mutate: func(r *PlaceOrderRequest) { r.AccountID = "" }},
		{name: "missing address", mutate: func(r *PlaceOrderRequest) { r.AddressID = "" }},
		{name: "empty products", mutate: func(r *PlaceOrderRequest) { r.ProductIDs = nil }},
		{name: "missing payment method", mutate: func(r *PlaceOrderRequest) { r.PaymentMethod = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := f.svc.PlaceOrder(ctx, req)
			require.True(t, domain.IsValidation(err), "got %v", err)
		})
	}

	// Address must belong to the ordering account.
	req := base
	req.AddressID = "not-theirs"
	_, err := f.svc.PlaceOrder(ctx, req)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestOrderService_SnapshotsStayFrozen(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.place(t, "p1")

	// Catalog and address book move on after checkout.
	require.NoError(t, f.store.UpdateProduct(ctx, domain.Product{
		ID: "p1", Name: "Keyboard v2", Description: "Refreshed", Price: decimal.NewFromInt(120),
	}))
	require.NoError(t, f.store.RemoveAddress(ctx, "u1", "a1"))

	reloaded, err := f.svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "Keyboard", reloaded.Products[0].Name)
	require.True(t, reloaded.Products[0].Price.Equal(decimal.NewFromInt(80)))
	require.Equal(t, "Home", reloaded.Address.Name)
	require.Equal(t, "12 Main Rd", reloaded.Address.Street)
}

func TestOrderService_CancelOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	t.Run("pending order cancels", func(t *testing.T) {
		order := f.place(t, "p1")
		require.NoError(t, f.svc.CancelOrder(ctx, "u1", order.ID))
		reloaded, err := f.svc.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusCancelled, reloaded.OrderStatus)
	})

	t.Run("paid order refuses", func(t *testing.T) {
		order := f.place(t, "p1")
		require.NoError(t, f.svc.MarkPaymentDone(ctx, order.ID))
		err := f.svc.CancelOrder(ctx, "u1", order.ID)
		require.True(t, errors.Is(err, domain.ErrOrderNotCancellable))
	})

	t.Run("delivered order refuses", func(t *testing.T) {
		order := f.place(t, "p1")
		require.NoError(t, f.svc.MarkDelivered(ctx, order.ID))
		err := f.svc.CancelOrder(ctx, "u1", order.ID)
		require.True(t, errors.Is(err, domain.ErrOrderNotCancellable))
	})

	t.Run("someone else's order is not found", func(t *testing.T) {
		order := f.place(t, "p1")
		err := f.svc.CancelOrder(ctx, "u2", order.ID)
		require.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("cancelling twice refuses", func(t *testing.T) {
		order := f.place(t, "p1")
		require.NoError(t, f.svc.CancelOrder(ctx, "u1", order.ID))
		err := f.svc.CancelOrder(ctx, "u1", order.ID)
		require.True(t, errors.Is(err, domain.ErrOrderNotCancellable))
	})
}

func TestOrderService_ListingsUseCache(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.place(t, "p1")

	first, err := f.svc.ListAccountOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, f.cache.sets)

	// Second read is served from the cache.
	second, err := f.svc.ListAccountOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, f.cache.sets)

	// Placing another order drops the cached listings.
	f.place(t, "p2")
	third, err := f.svc.ListAccountOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, third, 2)
	require.Equal(t, 2, f.cache.sets)
}
