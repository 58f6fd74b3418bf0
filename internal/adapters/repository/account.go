// internal/adapters/repository/account.go
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-faster/errors"

	"github.com/shopcore/backend/internal/domain"
)

func (r *PostgresRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, mail, phone, password) VALUES ($1, $2, $3, $4, $5)`,
		account.ID, account.Name, account.Mail, account.Phone, account.Password,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateMail
		}
		return errors.Wrap(err, "insert account")
	}
	return nil
}

func (r *PostgresRepository) FindAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.scanAccount(r.db.QueryRowContext(ctx,
		`SELECT id, name, mail, phone, password, otp_code, otp_expires_at FROM accounts WHERE id = $1`, id))
}

func (r *PostgresRepository) FindAccountByMail(ctx context.Context, mail string) (*domain.Account, error) {
	return r.scanAccount(r.db.QueryRowContext(ctx,
		`SELECT id, name, mail, phone, password, otp_code, otp_expires_at FROM accounts WHERE mail = $1`, mail))
}

func (r *PostgresRepository) scanAccount(row *sql.Row) (*domain.Account, error) {
	a := &domain.Account{}
	var otpCode sql.NullString
	var otpExpires sql.NullTime
	err := row.Scan(&a.ID, &a.Name, &a.Mail, &a.Phone, &a.Password, &otpCode, &otpExpires)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan account")
	}
	if otpCode.Valid {
		a.OTPCode = &otpCode.String
	}
	if otpExpires.Valid {
		a.OTPExpiresAt = &otpExpires.Time
	}
	return a, nil
}

func (r *PostgresRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, mail, phone FROM accounts ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		a := &domain.Account{}
		if err := rows.Scan(&a.ID, &a.Name, &a.Mail, &a.Phone); err != nil {
			return nil, errors.Wrap(err, "scan account")
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, accountID, digest string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET password = $2 WHERE id = $1`, accountID, digest)
	if err != nil {
		return errors.Wrap(err, "update password")
	}
	return requireRow(res)
}

// SetOTP writes code and expiry in one statement, replacing any pending code.
func (r *PostgresRepository) SetOTP(ctx context.Context, mail, code string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET otp_code = $2, otp_expires_at = $3 WHERE mail = $1`, mail, code, expiresAt)
	if err != nil {
		return errors.Wrap(err, "set otp")
	}
	return requireRow(res)
}

// ConsumeOTP clears the code in the same statement that checks it, so two
// concurrent verifications can never both succeed. When the guarded update
// matches nothing, a follow-up read classifies the failure.
func (r *PostgresRepository) ConsumeOTP(ctx context.Context, mail, code string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET otp_code = NULL, otp_expires_at = NULL
		 WHERE mail = $1 AND otp_code = $2 AND otp_expires_at > $3`, mail, code, now)
	if err != nil {
		return errors.Wrap(err, "consume otp")
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}

	var storedCode sql.NullString
	var expiresAt sql.NullTime
	err = r.db.QueryRowContext(ctx,
		`SELECT otp_code, otp_expires_at FROM accounts WHERE mail = $1`, mail).Scan(&storedCode, &expiresAt)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "classify otp failure")
	}
	if storedCode.Valid && storedCode.String == code {
		return domain.ErrOTPExpired
	}
	return domain.ErrOTPMismatch
}

// UpsertCartLine merges or inserts in one atomic statement keyed by
// (account, product). No read-modify-write cycle exists to race.
func (r *PostgresRepository) UpsertCartLine(ctx context.Context, accountID, productID string, quantity int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_lines (account_id, product_id, quantity) VALUES ($1, $2, $3)
		 ON CONFLICT (account_id, product_id)
		 DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity`,
		accountID, productID, quantity)
	if err != nil {
		return errors.Wrap(err, "upsert cart line")
	}
	return nil
}

func (r *PostgresRepository) RemoveCartLine(ctx context.Context, accountID, productID string) error {
	// Deleting an absent line is a no-op.
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_lines WHERE account_id = $1 AND product_id = $2`, accountID, productID)
	if err != nil {
		return errors.Wrap(err, "remove cart line")
	}
	return nil
}

func (r *PostgresRepository) ClearCart(ctx context.Context, accountID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_lines WHERE account_id = $1`, accountID)
	if err != nil {
		return errors.Wrap(err, "clear cart")
	}
	return nil
}

func (r *PostgresRepository) CartLines(ctx context.Context, accountID string) ([]domain.CartLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, quantity FROM cart_lines WHERE account_id = $1 ORDER BY added_at`, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "list cart lines")
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(&l.ProductID, &l.Quantity); err != nil {
			return nil, errors.Wrap(err, "scan cart line")
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) UpsertWishlistLine(ctx context.Context, accountID, productID string) error {
	// Repeat adds are idempotent.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wishlist_lines (account_id, product_id) VALUES ($1, $2)
		 ON CONFLICT (account_id, product_id) DO NOTHING`, accountID, productID)
	if err != nil {
		return errors.Wrap(err, "upsert wishlist line")
	}
	return nil
}

func (r *PostgresRepository) RemoveWishlistLine(ctx context.Context, accountID, productID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_lines WHERE account_id = $1 AND product_id = $2`, accountID, productID)
	if err != nil {
		return errors.Wrap(err, "remove wishlist line")
	}
	return nil
}

func (r *PostgresRepository) WishlistLines(ctx context.Context, accountID string) ([]domain.WishlistLine, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM wishlist_lines WHERE account_id = $1 ORDER BY added_at`, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "list wishlist lines")
	}
	defer rows.Close()

	var lines []domain.WishlistLine
	for rows.Next() {
		var l domain.WishlistLine
		if err := rows.Scan(&l.ProductID); err != nil {
			return nil, errors.Wrap(err, "scan wishlist line")
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) AddAddress(ctx context.Context, address *domain.Address) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO addresses (id, account_id, name, street, district, state, pincode, contact_phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		address.ID, address.AccountID, address.Name, address.Street,
		address.District, address.State, address.Pincode, address.ContactPhone)
	if err != nil {
		return errors.Wrap(err, "insert address")
	}
	return nil
}

func (r *PostgresRepository) FindAddress(ctx context.Context, accountID, addressID string) (*domain.Address, error) {
	a := &domain.Address{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, account_id, name, street, district, state, pincode, contact_phone
		 FROM addresses WHERE id = $1 AND account_id = $2`, addressID, accountID).
		Scan(&a.ID, &a.AccountID, &a.Name, &a.Street, &a.District, &a.State, &a.Pincode, &a.ContactPhone)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "scan address")
	}
	return a, nil
}

func (r *PostgresRepository) ListAddresses(ctx context.Context, accountID string) ([]domain.Address, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, account_id, name, street, district, state, pincode, contact_phone
		 FROM addresses WHERE account_id = $1 ORDER BY created_at`, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "list addresses")
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.AccountID, &a.Name, &a.Street, &a.District, &a.State, &a.Pincode, &a.ContactPhone); err != nil {
			return nil, errors.Wrap(err, "scan address")
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *PostgresRepository) RemoveAddress(ctx context.Context, accountID, addressID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND account_id = $2`, addressID, accountID)
	if err != nil {
		return errors.Wrap(err, "remove address")
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
