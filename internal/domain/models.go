// internal/domain/models.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the identity aggregate. The cart, wishlist and address book
// belong to it but live in their own tables; they are loaded on demand.
type Account struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Mail         string     `json:"mail"`
	Phone        string     `json:"phone"`
	Password     string     `json:"-"`
	OTPCode      *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
}

// CartLine maps a product to a quantity inside one account's cart.
// A cart never holds two lines for the same product.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// WishlistLine is a saved product reference. Re-adding it is a no-op.
type WishlistLine struct {
	ProductID string `json:"productId"`
}

// Address is a shipping address owned by exactly one account.
type Address struct {
	ID           string `json:"id"`
	AccountID    string `json:"accountId,omitempty"`
	Name         string `json:"name"`
	Street       string `json:"street"`
	District     string `json:"district"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	ContactPhone string `json:"contactPhone"`
}

// Product is a catalog item as currently sellable.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Photo       string          `json:"photo,omitempty"`
	InStock     bool            `json:"inStock"`
}

// ProductSnapshot captures a product at order-placement time. Later catalog
// edits never change a placed order.
type ProductSnapshot struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// Payment status values for an order.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Order status values. OrderStatus stays free-form for fulfillment
// collaborators; these are the two values this core writes.
const (
	OrderStatusPending   = "pending"
	OrderStatusCancelled = "cancelled"
)

// Order is an immutable record of a placed order. Address and Products are
// embedded copies, not references.
type Order struct {
	ID            string            `json:"id"`
	AccountID     string            `json:"accountId"`
	Address       Address           `json:"address"`
	Products      []ProductSnapshot `json:"products"`
	PlacedAt      time.Time         `json:"placedAt"`
	PaymentMethod string            `json:"paymentMethod"`
	PaymentStatus string            `json:"paymentStatus"`
	Delivered     bool              `json:"delivered"`
	OrderStatus   string            `json:"orderStatus"`
	TotalPrice    decimal.Decimal   `json:"totalPrice"`
}

// Cancellable reports whether the order may still be cancelled by its owner.
func (o *Order) Cancellable() bool {
	return o.OrderStatus == OrderStatusPending && !o.Delivered && o.PaymentStatus == PaymentPending
}

// SnapshotTotal recomputes the order total from its product snapshots.
func (o *Order) SnapshotTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	return total
}
