// internal/application/cart_service.go
package application

import (
	"context"

	"github.com/shopcore/backend/internal/domain"
	"github.com/shopcore/backend/internal/ports"
)

// CartService reconciles line items inside an account's cart and wishlist.
// The merge itself happens as a single atomic upsert keyed by
// (account, product) at the storage layer, so two concurrent adds to the same
// account cannot lose an update.
type CartService struct {
	repo ports.AccountRepositoryPort
}

func NewCartService(repo ports.AccountRepositoryPort) *CartService {
	return &CartService{repo: repo}
}

// AddToCart inserts a new line or merges quantity into the existing one.
func (s *CartService) AddToCart(ctx context.Context, accountID, productID string, quantity int64) error {
	if err := validateLine(accountID, productID); err != nil {
		return err
	}
	if quantity < 1 {
		return domain.Validationf("quantity", "must be at least 1")
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	return s.repo.UpsertCartLine(ctx, accountID, productID, quantity)
}

// RemoveFromCart deletes the matching line. Removing an absent line is a
// no-op, not an error.
func (s *CartService) RemoveFromCart(ctx context.Context, accountID, productID string) error {
	if err := validateLine(accountID, productID); err != nil {
		return err
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	return s.repo.RemoveCartLine(ctx, accountID, productID)
}

// ClearCart empties the account's cart.
func (s *CartService) ClearCart(ctx context.Context, accountID string) error {
	if accountID == "" {
		return domain.Validationf("accountId", "required")
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	return s.repo.ClearCart(ctx, accountID)
}

// Cart returns the account's cart lines.
func (s *CartService) Cart(ctx context.Context, accountID string) ([]domain.CartLine, error) {
	if accountID == "" {
		return nil, domain.Validationf("accountId", "required")
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.CartLines(ctx, accountID)
}

// AddToWishlist saves a product reference. Repeat adds are idempotent.
func (s *CartService) AddToWishlist(ctx context.Context, accountID, productID string) error {
	if err := validateLine(accountID, productID); err != nil {
		return err
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	return s.repo.UpsertWishlistLine(ctx, accountID, productID)
}

// RemoveFromWishlist deletes the reference; absent lines are a no-op.
func (s *CartService) RemoveFromWishlist(ctx context.Context, accountID, productID string) error {
	if err := validateLine(accountID, productID); err != nil {
		return err
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	return s.repo.RemoveWishlistLine(ctx, accountID, productID)
}

// Wishlist returns the account's wishlist.
func (s *CartService) Wishlist(ctx context.Context, accountID string) ([]domain.WishlistLine, error) {
	if accountID == "" {
		return nil, domain.Validationf("accountId", "required")
	}
	if _, err := s.repo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.WishlistLines(ctx, accountID)
}

func validateLine(accountID, productID string) error {
	if accountID == "" {
		return domain.Validationf("accountId", "required")
	}
	if productID == "" {
		return domain.Validationf("productId", "required")
	}
	return nil
}
