package ports

import (
	"context"

	"github.com/junhobyun/customer-admin/internal/core/domain"
)

// CustomerRepository defines persistence for customer records. All
// implementations must bind caller-supplied values as query parameters.
type CustomerRepository interface {
	Insert(ctx context.Context, customer *domain.Customer) (int64, error)
	Search(ctx context.Context, keyword string) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, name, job string) error
	Delete(ctx context.Context, id int64) error
}

// CustomerService orchestrates record operations for the handlers.
type CustomerService interface {
	Create(ctx context.Context, customer domain.Customer) (int64, error)
	Search(ctx context.Context, keyword string) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, name, job string) error
	Delete(ctx context.Context, id int64) error
}
