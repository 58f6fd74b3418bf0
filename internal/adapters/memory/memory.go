// internal/adapters/memory/memory.go
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopcore/backend/internal/domain"
)

// Store implements the account, order and catalog ports in memory. It backs
// service and handler tests; the per-store mutex gives it the same atomicity
// the SQL statements give the postgres adapter.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]*domain.Account
	mailIndex map[string]string
	carts     map[string][]domain.CartLine
	wishlists map[string][]domain.WishlistLine
	addresses map[string][]domain.Address
	orders    map[string]*domain.Order
	orderSeq  []string
	products  map[string]domain.Product
}

func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]*domain.Account),
		mailIndex: make(map[string]string),
		carts:     make(map[string][]domain.CartLine),
		wishlists: make(map[string][]domain.WishlistLine),
		addresses: make(map[string][]domain.Address),
		orders:    make(map[string]*domain.Order),
		products:  make(map[string]domain.Product),
	}
}

func (s *Store) CreateAccount(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.mailIndex[account.Mail]; exists {
		return domain.ErrDuplicateMail
	}
	clone := *account
	s.accounts[account.ID] = &clone
	s.mailIndex[account.Mail] = account.ID
	return nil
}

func (s *Store) FindAccountByID(_ context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *account
	return &clone, nil
}

func (s *Store) FindAccountByMail(_ context.Context, mail string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.mailIndex[mail]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *s.accounts[id]
	return &clone, nil
}

func (s *Store) ListAccounts(_ context.Context) ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (s *Store) UpdatePassword(_ context.Context, accountID, digest string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[accountID]
	if !ok {
		return domain.ErrNotFound
	}
	account.Password = digest
	return nil
}

func (s *Store) SetOTP(_ context.Context, mail, code string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.mailIndex[mail]
	if !ok {
		return domain.ErrNotFound
	}
	account := s.accounts[id]
	account.OTPCode = &code
	account.OTPExpiresAt = &expiresAt
	return nil
}

func (s *Store) ConsumeOTP(_ context.Context, mail, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.mailIndex[mail]
	if !ok {
		return domain.ErrNotFound
	}
	account := s.accounts[id]
	if account.OTPCode == nil || *account.OTPCode != code {
		return domain.ErrOTPMismatch
	}
	if account.OTPExpiresAt == nil || !account.OTPExpiresAt.After(now) {
		return domain.ErrOTPExpired
	}
	account.OTPCode = nil
	account.OTPExpiresAt = nil
	return nil
}

func (s *Store) UpsertCartLine(_ context.Context, accountID, productID string, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[accountID]
	for i, l := range lines {
		if l.ProductID == productID {
			lines[i].Quantity += quantity
			return nil
		}
	}
	s.carts[accountID] = append(lines, domain.CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

func (s *Store) RemoveCartLine(_ context.Context, accountID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[accountID]
	for i, l := range lines {
		if l.ProductID == productID {
			s.carts[accountID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) ClearCart(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, accountID)
	return nil
}

func (s *Store) CartLines(_ context.Context, accountID string) ([]domain.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartLine(nil), s.carts[accountID]...), nil
}

func (s *Store) UpsertWishlistLine(_ context.Context, accountID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.wishlists[accountID] {
		if l.ProductID == productID {
			return nil
		}
	}
	s.wishlists[accountID] = append(s.wishlists[accountID], domain.WishlistLine{ProductID: productID})
	return nil
}

func (s *Store) RemoveWishlistLine(_ context.Context, accountID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.wishlists[accountID]
	for i, l := range lines {
		if l.ProductID == productID {
			s.wishlists[accountID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) WishlistLines(_ context.Context, accountID string) ([]domain.WishlistLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WishlistLine(nil), s.wishlists[accountID]...), nil
}

func (s *Store) AddAddress(_ context.Context, address *domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[address.AccountID] = append(s.addresses[address.AccountID], *address)
	return nil
}

func (s *Store) FindAddress(_ context.Context, accountID, addressID string) (*domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.addresses[accountID] {
		if a.ID == addressID {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ListAddresses(_ context.Context, accountID string) ([]domain.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Address(nil), s.addresses[accountID]...), nil
}

func (s *Store) RemoveAddress(_ context.Context, accountID, addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	addresses := s.addresses[accountID]
	for i, a := range addresses {
		if a.ID == addressID {
			s.addresses[accountID] = append(addresses[:i], addresses[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *Store) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := cloneOrder(order)
	s.orders[order.ID] = clone
	s.orderSeq = append(s.orderSeq, order.ID)
	return nil
}

func (s *Store) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (s *Store) ListOrders(_ context.Context) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Order, 0, len(s.orderSeq))
	for _, id := range s.orderSeq {
		out = append(out, cloneOrder(s.orders[id]))
	}
	return out, nil
}

func (s *Store) ListAccountOrders(_ context.Context, accountID string) ([]*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*domain.Order
	for _, id := range s.orderSeq {
		if s.orders[id].AccountID == accountID {
			out = append(out, cloneOrder(s.orders[id]))
		}
	}
	return out, nil
}

func (s *Store) CancelOrder(_ context.Context, accountID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.AccountID != accountID {
		return domain.ErrNotFound
	}
	if !order.Cancellable() {
		return domain.ErrOrderNotCancellable
	}
	order.OrderStatus = domain.OrderStatusCancelled
	return nil
}

func (s *Store) SetPaymentStatus(_ context.Context, orderID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.PaymentStatus = status
	return nil
}

func (s *Store) SetDelivered(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	order.Delivered = true
	return nil
}

func (s *Store) CreateProduct(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	return nil
}

func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := p
	return &clone, nil
}

// UpdateProduct exists so tests can mutate the catalog after an order is
// placed and assert the snapshot did not follow.
func (s *Store) UpdateProduct(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	s.products[product.ID] = product
	return nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Products = append([]domain.ProductSnapshot(nil), order.Products...)
	return &clone
}
