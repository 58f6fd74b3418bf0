// internal/adapters/repository/order.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/shopcore/backend/internal/domain"
)

// Orders store the shipping address and product snapshots as JSON documents;
// they are copies frozen at placement time and never joined back to the live
// address book or catalog.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	addressJSON, err := json.Marshal(order.Address)
	if err != nil {
		return errors.Wrap(err, "marshal address snapshot")
	}
	productsJSON, err := json.Marshal(order.Products)
	if err != nil {
		return errors.Wrap(err, "marshal product snapshots")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO orders (id, account_id, address, products, placed_at, payment_method,
			payment_status, delivered, order_status, total_price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		order.ID, order.AccountID, addressJSON, productsJSON, order.PlacedAt,
		order.PaymentMethod, order.PaymentStatus, order.Delivered, order.OrderStatus, order.TotalPrice)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	return nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, orderSelect+` WHERE id = $1`, id)
	order, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.queryOrders(ctx, orderSelect+` ORDER BY placed_at DESC`)
}

func (r *PostgresRepository) ListAccountOrders(ctx context.Context, accountID string) ([]*domain.Order, error) {
	return r.queryOrders(ctx, orderSelect+` WHERE account_id = $1 ORDER BY placed_at DESC`, accountID)
}

// CancelOrder flips the status in a single guarded update; when nothing
// matches, a follow-up read tells a missing order apart from one past the
// point of cancellation.
func (r *PostgresRepository) CancelOrder(ctx context.Context, accountID, orderID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET order_status = $3
		 WHERE id = $1 AND account_id = $2 AND order_status = $4
		 AND delivered = false AND payment_status = $5`,
		orderID, accountID, domain.OrderStatusCancelled, domain.OrderStatusPending, domain.PaymentPending)
	if err != nil {
		return errors.Wrap(err, "cancel order")
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}

	var exists bool
	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1 AND account_id = $2)`, orderID, accountID).Scan(&exists)
	if err != nil {
		return errors.Wrap(err, "classify cancel failure")
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrOrderNotCancellable
}

func (r *PostgresRepository) SetPaymentStatus(ctx context.Context, orderID, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET payment_status = $2 WHERE id = $1`, orderID, status)
	if err != nil {
		return errors.Wrap(err, "set payment status")
	}
	return requireRow(res)
}

func (r *PostgresRepository) SetDelivered(ctx context.Context, orderID string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET delivered = true WHERE id = $1`, orderID)
	if err != nil {
		return errors.Wrap(err, "set delivered")
	}
	return requireRow(res)
}

const orderSelect = `SELECT id, account_id, address, products, placed_at, payment_method,
	payment_status, delivered, order_status, total_price FROM orders`

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query orders")
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func scanOrder(scan func(...any) error) (*domain.Order, error) {
	o := &domain.Order{}
	var addressJSON, productsJSON []byte
	err := scan(&o.ID, &o.AccountID, &addressJSON, &productsJSON, &o.PlacedAt,
		&o.PaymentMethod, &o.PaymentStatus, &o.Delivered, &o.OrderStatus, &o.TotalPrice)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, errors.Wrap(err, "scan order")
	}
	if err := json.Unmarshal(addressJSON, &o.Address); err != nil {
		return nil, errors.Wrap(err, "unmarshal address snapshot")
	}
	if err := json.Unmarshal(productsJSON, &o.Products); err != nil {
		return nil, errors.Wrap(err, "unmarshal product snapshots")
	}
	return o, nil
}
