// internal/application/cart_service_test.go
package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopcore/backend/internal/adapters/memory"
	"github.com/shopcore/backend/internal/domain"
)

func seedAccount(t *testing.T, store *memory.Store, id, mail string) {
	t.Helper()
	err := store.CreateAccount(context.Background(), &domain.Account{ID: id, Name: "Test", Mail: mail, Password: "digest"})
	require.NoError(t, err)
}

func TestCartService_AddMergesLines(t *testing.T) {
	store := memory.NewStore()
	seedAccount(t, store, "u1", "u1@example.com")
	svc := NewCartService(store)
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "u1", "p1", 2))
	require.NoError(t, svc.AddToCart(ctx, "u1", "p1", 3))

	lines, err := svc.Cart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "p1", lines[0].ProductID)
	require.Equal(t, int64(5), lines[0].Quantity)

	// Remove empties the cart; removing again stays a no-op.
	require.NoError(t, svc.RemoveFromCart(ctx, "u1", "p1"))
	lines, err = svc.Cart(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, lines)
	require.NoError(t, svc.RemoveFromCart(ctx, "u1", "p1"))
}

func TestCartService_ConcurrentAddsLoseNothing(t *testing.T) {
	store := memory.NewStore()
	seedAccount(t, store, "u1", "u1@example.com")
	svc := NewCartService(store)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = svc.AddToCart(ctx, "u1", "p1", 1)
		}()
	}
	wg.Wait()

	lines, err := svc.Cart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, int64(workers), lines[0].Quantity)
}

func TestCartService_Validation(t *testing.T) {
	store := memory.NewStore()
	seedAccount(t, store, "u1", "u1@example.com")
	svc := NewCartService(store)
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
	}{
		{name: "empty account", err: svc.AddToCart(ctx, "", "p1", 1)},
		{name: "empty product", err: svc.AddToCart(ctx, "u1", "", 1)},
		{name: "zero quantity", err: svc.AddToCart(ctx, "u1", "p1", 0)},
		{name: "negative quantity", err: svc.AddToCart(ctx, "u1", "p1", -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, domain.IsValidation(tt.err), "got %v", tt.err)
		})
	}

	err := svc.AddToCart(ctx, "ghost", "p1", 1)
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCartService_WishlistIdempotent(t *testing.T) {
	store := memory.NewStore()
	seedAccount(t, store, "u1", "u1@example.com")
	svc := NewCartService(store)
	ctx := context.Background()

	require.NoError(t, svc.AddToWishlist(ctx, "u1", "p1"))
	require.NoError(t, svc.AddToWishlist(ctx, "u1", "p1"))
	require.NoError(t, svc.AddToWishlist(ctx, "u1", "p2"))

	lines, err := svc.Wishlist(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.NoError(t, svc.RemoveFromWishlist(ctx, "u1", "p1"))
	lines, err = svc.Wishlist(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, "p2", lines[0].ProductID)

	// Absent line removal is not an error.
	require.NoError(t, svc.RemoveFromWishlist(ctx, "u1", "p1"))
}

func TestCartService_ClearCart(t *testing.T) {
	store := memory.NewStore()
	seedAccount(t, store, "u1", "u1@example.com")
	svc := NewCartService(store)
	ctx := context.Background()

	require.NoError(t, svc.AddToCart(ctx, "u1", "p1", 2))
	require.NoError(t, svc.AddToCart(ctx, "u1", "p2", 1))
	require.NoError(t, svc.ClearCart(ctx, "u1"))

	lines, err := svc.Cart(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, lines)
}
