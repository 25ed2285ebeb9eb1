package inventory_test

import (
	"context"
	"sync"
	"time"

	"github.com/seu-usuario/estoque-api/internal/application/inventory"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes em memória fiéis à disciplina transacional do runner real:
// o mutex faz as vezes do SELECT FOR UPDATE (serializa transações) e o
// snapshot faz as vezes do Rollback (erro em fn desfaz toda escrita).
// ─────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.Movement
}

func newFakeStore(products ...*entity.Product) *fakeStore {
	s := &fakeStore{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

func (s *fakeStore) stockOf(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

func (s *fakeStore) movementsOf(id string) []*entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Movement
	for _, m := range s.movements {
		if m.ProductID == id {
			out = append(out, m)
		}
	}
	return out
}

type fakeTxRunner struct {
	store *fakeStore
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Snapshot para rollback
	productsBackup := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		cp := *p
		productsBackup[id] = &cp
	}
	movementsBackup := append([]*entity.Movement(nil), s.movements...)

	if err := fn(&fakeMovementRepo{s}, &fakeProductRepo{s}); err != nil {
		s.products = productsBackup
		s.movements = movementsBackup
		return err
	}
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetActiveForUpdate(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || !p.IsActive() {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	r.s.products[id].Stock = stock
	r.s.products[id].UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.IsActive() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListActiveWithSupplier() ([]repository.ProductWithSupplier, error) {
	products, _ := r.ListActive()
	out := make([]repository.ProductWithSupplier, 0, len(products))
	for _, p := range products {
		out = append(out, repository.ProductWithSupplier{Product: *p})
	}
	return out, nil
}

func (r *fakeProductRepo) GetActiveWithSupplier(id string) (*repository.ProductWithSupplier, error) {
	p, err := r.GetActiveForUpdate(id)
	if err != nil || p == nil {
		return nil, err
	}
	return &repository.ProductWithSupplier{Product: *p}, nil
}

type fakeMovementRepo struct{ s *fakeStore }

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(movement *entity.Movement) error {
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit int) ([]repository.MovementWithProduct, error) {
	var out []repository.MovementWithProduct
	for i := len(r.s.movements) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.s.movements[i]
		if productID == "" || m.ProductID == productID {
			out = append(out, repository.MovementWithProduct{Movement: *m})
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByDateRange(from, to time.Time, productID string) ([]repository.MovementWithProduct, error) {
	var out []repository.MovementWithProduct
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.CreatedAt.Before(from) || m.CreatedAt.After(to) {
			continue
		}
		if productID == "" || m.ProductID == productID {
			out = append(out, repository.MovementWithProduct{Movement: *m})
		}
	}
	return out, nil
}
