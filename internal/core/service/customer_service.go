package service

import (
	"context"

	"github.com/junhobyun/customer-admin/internal/core/domain"
	"github.com/junhobyun/customer-admin/internal/core/ports"
)

// CustomerService executes record operations against the repository. The
// authorization gate runs before any of these methods; the service itself
// performs no role checks.
type CustomerService struct {
	repo ports.CustomerRepository
}

func NewCustomerService(repo ports.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, customer domain.Customer) (int64, error) {
	return s.repo.Insert(ctx, &customer)
}

// Search returns all records ordered by id when keyword is empty, otherwise
// the records whose id, name, or job contains the keyword as a substring.
func (s *CustomerService) Search(ctx context.Context, keyword string) ([]domain.Customer, error) {
	customers, err := s.repo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, name, job string) error {
	return s.repo.Update(ctx, id, name, job)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
