package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/junhobyun/customer-admin/internal/core/domain"
)

// AccountRepository persists login principals. The API only ever reads
// accounts; Create exists for out-of-band provisioning (seed tooling).
type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.GetContext(ctx, &account,
		`SELECT id, username, password, role FROM account WHERE username = $1`,
		username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	err := r.db.GetContext(ctx, &account.ID,
		`INSERT INTO account (username, password, role) VALUES ($1, $2, $3) RETURNING id`,
		account.Username, account.PasswordHash, string(account.Role))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return account, nil
}

// isUniqueViolation reports whether err is Postgres error 23505
// (unique_violation).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
