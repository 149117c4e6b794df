package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/junhobyun/customer-admin/internal/core/domain"
)

type stubCustomerRepo struct {
	records map[int64]domain.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{records: make(map[int64]domain.Customer)}
}

func (r *stubCustomerRepo) Insert(_ context.Context, customer *domain.Customer) (int64, error) {
	if _, exists := r.records[customer.ID]; exists {
		return 0, domain.ErrCustomerExists
	}
	r.records[customer.ID] = *customer
	return customer.ID, nil
}

func (r *stubCustomerRepo) Search(_ context.Context, keyword string) ([]domain.Customer, error) {
	var out []domain.Customer
	for _, c := range r.records {
		if keyword == "" ||
			strings.Contains(strconv.FormatInt(c.ID, 10), keyword) ||
			strings.Contains(c.Name, keyword) ||
			strings.Contains(c.Job, keyword) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, id int64, name, job string) error {
	c, ok := r.records[id]
	if !ok {
		return domain.ErrCustomerNotFound
	}
	c.Name, c.Job = name, job
	r.records[id] = c
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrCustomerNotFound
	}
	delete(r.records, id)
	return nil
}

func TestCustomerService_CreateThenSearchRoundTrip(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	ctx := context.Background()

	id, err := svc.Create(ctx, domain.Customer{ID: 7, Name: "Ada", Job: "engineer"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}

	got, err := svc.Search(ctx, "7")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 1 || got[0] != (domain.Customer{ID: 7, Name: "Ada", Job: "engineer"}) {
		t.Fatalf("unexpected search result: %+v", got)
	}
}

func TestCustomerService_CreateDuplicate(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.Customer{ID: 1, Name: "A", Job: "B"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(ctx, domain.Customer{ID: 1, Name: "X", Job: "Y"}); err != domain.ErrCustomerExists {
		t.Fatalf("expected ErrCustomerExists, got %v", err)
	}
	if existing := repo.records[1]; existing.Name != "A" || existing.Job != "B" {
		t.Fatalf("duplicate insert altered existing record: %+v", existing)
	}
}

func TestCustomerService_SearchEmptyStoreReturnsEmptySlice(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	got, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}

func TestCustomerService_SearchIsOrderedAndRepeatable(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	ctx := context.Background()

	for _, c := range []domain.Customer{
		{ID: 3, Name: "Carol", Job: "ops"},
		{ID: 1, Name: "Ada", Job: "engineer"},
		{ID: 2, Name: "Bob", Job: "designer"},
	} {
		if _, err := svc.Create(ctx, c); err != nil {
			t.Fatalf("create %d failed: %v", c.ID, err)
		}
	}

	first, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].ID >= first[i].ID {
			t.Fatalf("results not ascending by id: %+v", first)
		}
	}

	second, err := svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("repeat search changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeat search not identical at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestCustomerService_UpdateAndDeleteNotFound(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	ctx := context.Background()

	if err := svc.Update(ctx, 42, "X", "Y"); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound from update, got %v", err)
	}
	if err := svc.Delete(ctx, 42); err != domain.ErrCustomerNotFound {
		t.Fatalf("expected ErrCustomerNotFound from delete, got %v", err)
	}
}
