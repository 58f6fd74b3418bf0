// internal/application/order_service.go
package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopcore/backend/internal/domain"
	"github.com/shopcore/backend/internal/ports"
)

const ordersCachePrefix = "orders:"

// PlaceOrderRequest is the checkout input.
type PlaceOrderRequest struct {
	AccountID     string
	AddressID     string
	ProductIDs    []string
	PaymentMethod string
	TotalPrice    decimal.Decimal
}

// OrderService validates a checkout request against the address book and the
// catalog and produces an immutable order record.
type OrderService struct {
	accounts ports.AccountRepositoryPort
	catalog  ports.CatalogPort
	orders   ports.OrderRepositoryPort
	cache    ports.CachePort
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrderService(accounts ports.AccountRepositoryPort, catalog ports.CatalogPort, orders ports.OrderRepositoryPort, cache ports.CachePort, logger *zap.Logger) *OrderService {
	return &OrderService{
		accounts: accounts,
		catalog:  catalog,
		orders:   orders,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// PlaceOrder resolves the address and every product, then persists an order
// embedding copies of both, so later catalog or address-book edits never
// change it. Product resolution is all-or-nothing: one unknown id fails the
// whole request and nothing is written.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*domain.Order, error) {
	switch {
	case req.AccountID == "":
		return nil, domain.Validationf("accountId", "required")
	case req.AddressID == "":
		return nil, domain.Validationf("addressId", "required")
	case len(req.ProductIDs) == 0:
		return nil, domain.Validationf("productIds", "at least one product is required")
	case req.PaymentMethod == "":
		return nil, domain.Validationf("paymentMethod", "required")
	}

	if _, err := s.accounts.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, err
	}
	address, err := s.accounts.FindAddress(ctx, req.AccountID, req.AddressID)
	if err != nil {
		return nil, err
	}

	// Products have no ordering dependency between each other, so resolve
	// them concurrently; the first failure cancels the rest of the batch.
	snapshots := make([]domain.ProductSnapshot, len(req.ProductIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range req.ProductIDs {
		g.Go(func() error {
			p, err := s.catalog.GetProduct(gctx, id)
			if err != nil {
				return errors.Wrapf(err, "resolve product %s", id)
			}
			snapshots[i] = domain.ProductSnapshot{
				ID:          p.ID,
				Name:        p.Name,
				Price:       p.Price,
				Description: p.Description,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		AccountID:     req.AccountID,
		Address:       *address,
		Products:      snapshots,
		PlacedAt:      s.now(),
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: domain.PaymentPending,
		Delivered:     false,
		OrderStatus:   domain.OrderStatusPending,
		TotalPrice:    req.TotalPrice,
	}

	// The caller-supplied total is stored as given; a divergence from the
	// snapshot sum is recorded for reconciliation.
	if snapshotTotal := order.SnapshotTotal(); !snapshotTotal.Equal(req.TotalPrice) {
		s.logger.Warn("order total differs from snapshot total",
			zap.String("orderId", order.ID),
			zap.String("accountId", order.AccountID),
			zap.String("supplied", req.TotalPrice.String()),
			zap.String("computed", snapshotTotal.String()),
		)
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	s.invalidateListings(ctx)
	return order, nil
}

// GetOrder returns a single order by id.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, domain.Validationf("orderId", "required")
	}
	return s.orders.GetOrder(ctx, id)
}

// ListOrders returns every order, admin-facing.
func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.listCached(ctx, ordersCachePrefix+"all", func(ctx context.Context) ([]*domain.Order, error) {
		return s.orders.ListOrders(ctx)
	})
}

// ListAccountOrders returns the orders one account has placed.
func (s *OrderService) ListAccountOrders(ctx context.Context, accountID string) ([]*domain.Order, error) {
	if accountID == "" {
		return nil, domain.Validationf("accountId", "required")
	}
	return s.listCached(ctx, ordersCachePrefix+"account:"+accountID, func(ctx context.Context) ([]*domain.Order, error) {
		return s.orders.ListAccountOrders(ctx, accountID)
	})
}

// CancelOrder cancels an order the account owns, provided it is still
// pending, unpaid and undelivered.
func (s *OrderService) CancelOrder(ctx context.Context, accountID, orderID string) error {
	if accountID == "" {
		return domain.Validationf("accountId", "required")
	}
	if orderID == "" {
		return domain.Validationf("orderId", "required")
	}
	if err := s.orders.CancelOrder(ctx, accountID, orderID); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// MarkPaymentDone records a completed payment. Entry point for the external
// payment collaborator.
func (s *OrderService) MarkPaymentDone(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.Validationf("orderId", "required")
	}
	if err := s.orders.SetPaymentStatus(ctx, orderID, domain.PaymentPaid); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

// MarkDelivered records delivery. Entry point for the external fulfillment
// collaborator.
func (s *OrderService) MarkDelivered(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.Validationf("orderId", "required")
	}
	if err := s.orders.SetDelivered(ctx, orderID); err != nil {
		return err
	}
	s.invalidateListings(ctx)
	return nil
}

func (s *OrderService) listCached(ctx context.Context, key string, load func(context.Context) ([]*domain.Order, error)) ([]*domain.Order, error) {
	if data, err := s.cache.Get(ctx, key); err == nil {
		var orders []*domain.Order
		if err := json.Unmarshal(data, &orders); err == nil {
			return orders, nil
		}
	}
	orders, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, orders); err != nil {
		s.logger.Warn("order listing cache set failed", zap.String("key", key), zap.Error(err))
	}
	return orders, nil
}

// Cache staleness is acceptable; a failed invalidation only delays freshness.
func (s *OrderService) invalidateListings(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx, ordersCachePrefix); err != nil {
		s.logger.Warn("order listing cache invalidation failed", zap.Error(err))
	}
}
