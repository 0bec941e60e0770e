// Package memory implementa el almacenamiento de clientes en proceso.
// Se usa con STORE_DRIVER=memory (desarrollo local sin PostgreSQL) y en los tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/customer-api/internal/application/customer"
	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerStore)(nil)
	_ customer.TxRunner             = (*CustomerStore)(nil)
)

// CustomerStore guarda los clientes en memoria en orden de alta.
// Implementa CustomerRepository y TxRunner: una transacción trabaja sobre una copia
// del estado que reemplaza al vigente sólo si fn termina sin error.
type CustomerStore struct {
	writeMu sync.Mutex // serializa escrituras y transacciones
	mu      sync.RWMutex
	state   *customerState
}

// NewCustomerStore construye un almacén vacío.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{state: newCustomerState()}
}

// RunCustomer ejecuta fn con un repositorio atado a una copia del estado y la confirma al final.
func (s *CustomerStore) RunCustomer(ctx context.Context, fn func(repo repository.CustomerRepository) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	snapshot := s.state.clone()
	s.mu.RUnlock()

	if err := fn(&txRepo{state: snapshot}); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = snapshot
	s.mu.Unlock()
	return nil
}

func (s *CustomerStore) write(fn func(st *customerState)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Create persiste un nuevo cliente.
func (s *CustomerStore) Create(ctx context.Context, c *entity.Customer) error {
	s.write(func(st *customerState) { st.create(c) })
	return nil
}

// GetByID obtiene un cliente por ID.
func (s *CustomerStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.get(id), nil
}

// Update actualiza nombre, dirección y fecha de modificación.
func (s *CustomerStore) Update(ctx context.Context, c *entity.Customer) error {
	s.write(func(st *customerState) { st.update(c) })
	return nil
}

// Delete elimina un cliente por ID.
func (s *CustomerStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.write(func(st *customerState) { st.delete(id) })
	return nil
}

// List lista clientes en orden de alta.
func (s *CustomerStore) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.list("", limit, offset), nil
}

// Count total de clientes.
func (s *CustomerStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.order), nil
}

// SearchByName lista clientes cuyo nombre contiene term (sin distinguir mayúsculas).
func (s *CustomerStore) SearchByName(ctx context.Context, term string, limit, offset int) ([]*entity.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.list(term, limit, offset), nil
}

// CountByName total de clientes cuyo nombre contiene term.
func (s *CustomerStore) CountByName(ctx context.Context, term string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.count(term), nil
}

// txRepo opera sobre la copia privada de una transacción; no necesita locks.
type txRepo struct {
	state *customerState
}

func (r *txRepo) Create(ctx context.Context, c *entity.Customer) error {
	r.state.create(c)
	return nil
}

func (r *txRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.state.get(id), nil
}

func (r *txRepo) Update(ctx context.Context, c *entity.Customer) error {
	r.state.update(c)
	return nil
}

func (r *txRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.state.delete(id)
	return nil
}

func (r *txRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	return r.state.list("", limit, offset), nil
}

func (r *txRepo) Count(ctx context.Context) (int, error) {
	return len(r.state.order), nil
}

func (r *txRepo) SearchByName(ctx context.Context, term string, limit, offset int) ([]*entity.Customer, error) {
	return r.state.list(term, limit, offset), nil
}

func (r *txRepo) CountByName(ctx context.Context, term string) (int, error) {
	return r.state.count(term), nil
}

type customerState struct {
	order []uuid.UUID
	byID  map[uuid.UUID]entity.Customer
}

func newCustomerState() *customerState {
	return &customerState{byID: make(map[uuid.UUID]entity.Customer)}
}

func (st *customerState) clone() *customerState {
	cp := &customerState{
		order: make([]uuid.UUID, len(st.order)),
		byID:  make(map[uuid.UUID]entity.Customer, len(st.byID)),
	}
	copy(cp.order, st.order)
	for id, c := range st.byID {
		cp.byID[id] = c
	}
	return cp
}

func (st *customerState) create(c *entity.Customer) {
	if _, ok := st.byID[c.ID]; !ok {
		st.order = append(st.order, c.ID)
	}
	st.byID[c.ID] = *c
}

func (st *customerState) get(id uuid.UUID) *entity.Customer {
	c, ok := st.byID[id]
	if !ok {
		return nil
	}
	return &c
}

func (st *customerState) update(c *entity.Customer) {
	stored, ok := st.byID[c.ID]
	if !ok {
		return
	}
	stored.Name = c.Name
	stored.Address = c.Address
	stored.UpdatedAt = c.UpdatedAt
	st.byID[c.ID] = stored
}

func (st *customerState) delete(id uuid.UUID) {
	if _, ok := st.byID[id]; !ok {
		return
	}
	delete(st.byID, id)
	for i, v := range st.order {
		if v == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
}

func (st *customerState) matches(term string) func(c entity.Customer) bool {
	if term == "" {
		return func(entity.Customer) bool { return true }
	}
	// Minúsculas simples, igual que ILIKE en PostgreSQL: "ß" no equivale a "ss".
	lower := cases.Lower(language.Und)
	needle := lower.String(term)
	return func(c entity.Customer) bool {
		return strings.Contains(lower.String(c.Name), needle)
	}
}

func (st *customerState) count(term string) int {
	match := st.matches(term)
	n := 0
	for _, id := range st.order {
		if match(st.byID[id]) {
			n++
		}
	}
	return n
}

func (st *customerState) list(term string, limit, offset int) []*entity.Customer {
	if limit <= 0 || offset < 0 || offset >= len(st.order) {
		return []*entity.Customer{}
	}
	match := st.matches(term)
	out := make([]*entity.Customer, 0, limit)
	skipped := 0
	for _, id := range st.order {
		if len(out) >= limit {
			break
		}
		c := st.byID[id]
		if !match(c) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, &c)
	}
	return out
}
