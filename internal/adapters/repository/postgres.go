// internal/adapters/repository/postgres.go
package repository

import (
	"database/sql"

	"github.com/lib/pq"
)

// PostgresRepository implements the account, order and catalog ports on a
// single database/sql handle.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// uniqueViolation is the postgres error code for a unique index conflict.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == uniqueViolation
}
