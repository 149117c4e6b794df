package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/junhobyun/customer-admin/internal/core/domain"
)

// CustomerRepository persists customer records in the customer table.
type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Insert(ctx context.Context, customer *domain.Customer) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id,
		`INSERT INTO customer (id, name, job) VALUES ($1, $2, $3) RETURNING id`,
		customer.ID, customer.Name, customer.Job)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrCustomerExists
		}
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return id, nil
}

// Search returns records whose id, name, or job contains keyword as a
// substring, ordered ascending by id. An empty keyword returns every record.
func (r *CustomerRepository) Search(ctx context.Context, keyword string) ([]domain.Customer, error) {
	var customers []domain.Customer

	query := `SELECT id, name, job FROM customer`
	args := []any{}
	if keyword != "" {
		// id is numeric; cast to text so the keyword matches it like the
		// string columns.
		query += ` WHERE id::text LIKE $1 OR name LIKE $2 OR job LIKE $3`
		pattern := "%" + keyword + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY id ASC`

	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, name, job string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE customer SET name = $1, job = $2 WHERE id = $3`,
		name, job, id)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customer WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
