// Package mocks contiene dobles de prueba basados en testify/mock.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*MockCustomerRepository)(nil)

// MockCustomerRepository doble de repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository crea el mock y registra AssertExpectations al final del test.
func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	args := m.Called(ctx, limit, offset)
	list, _ := args.Get(0).([]*entity.Customer)
	return list, args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCustomerRepository) SearchByName(ctx context.Context, term string, limit, offset int) ([]*entity.Customer, error) {
	args := m.Called(ctx, term, limit, offset)
	list, _ := args.Get(0).([]*entity.Customer)
	return list, args.Error(1)
}

func (m *MockCustomerRepository) CountByName(ctx context.Context, term string) (int, error) {
	args := m.Called(ctx, term)
	return args.Int(0), args.Error(1)
}

// TxRunner ejecuta fn directamente contra Repo, sin transacción real.
// Si Err no es nil se devuelve sin invocar fn (simula fallo al abrir la tx).
type TxRunner struct {
	Repo  repository.CustomerRepository
	Err   error
	Calls int
}

func (r *TxRunner) RunCustomer(ctx context.Context, fn func(repo repository.CustomerRepository) error) error {
	r.Calls++
	if r.Err != nil {
		return r.Err
	}
	return fn(r.Repo)
}
