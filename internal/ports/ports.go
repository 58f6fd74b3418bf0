// internal/ports/ports.go
package ports

import (
	"context"
	"time"

	"github.com/shopcore/backend/internal/domain"
)

// AccountRepositoryPort owns the account aggregate: credentials, OTP state,
// cart, wishlist and address book.
type AccountRepositoryPort interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	FindAccountByID(ctx context.Context, id string) (*domain.Account, error)
	FindAccountByMail(ctx context.Context, mail string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	UpdatePassword(ctx context.Context, accountID, digest string) error

	// SetOTP stores code and expiry as one atomic pair, replacing any
	// pending code. ConsumeOTP clears the pair in the same statement that
	// checks it, so a code can be redeemed at most once.
	SetOTP(ctx context.Context, mail, code string, expiresAt time.Time) error
	ConsumeOTP(ctx context.Context, mail, code string, now time.Time) error

	// UpsertCartLine merges quantity into an existing line or inserts a new
	// one as a single atomic statement keyed by (account, product).
	UpsertCartLine(ctx context.Context, accountID, productID string, quantity int64) error
	RemoveCartLine(ctx context.Context, accountID, productID string) error
	ClearCart(ctx context.Context, accountID string) error
	CartLines(ctx context.Context, accountID string) ([]domain.CartLine, error)

	UpsertWishlistLine(ctx context.Context, accountID, productID string) error
	RemoveWishlistLine(ctx context.Context, accountID, productID string) error
	WishlistLines(ctx context.Context, accountID string) ([]domain.WishlistLine, error)

	AddAddress(ctx context.Context, address *domain.Address) error
	FindAddress(ctx context.Context, accountID, addressID string) (*domain.Address, error)
	ListAddresses(ctx context.Context, accountID string) ([]domain.Address, error)
	RemoveAddress(ctx context.Context, accountID, addressID string) error
}

// OrderRepositoryPort persists immutable order records and their two
// lifecycle flags.
type OrderRepositoryPort interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListAccountOrders(ctx context.Context, accountID string) ([]*domain.Order, error)
	CancelOrder(ctx context.Context, accountID, orderID string) error
	SetPaymentStatus(ctx context.Context, orderID, status string) error
	SetDelivered(ctx context.Context, orderID string) error
}

// CatalogPort resolves product ids to their current sellable attributes.
type CatalogPort interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// NotifierPort delivers a generated OTP to an account's contact address.
type NotifierPort interface {
	SendOTP(ctx context.Context, to, code string) error
}

// CachePort is a byte-level cache with TTL semantics.
type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}
