package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/customer-api/internal/domain"
	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

// CustomerUseCase reglas de negocio de clientes: alta, modificación, baja y consultas paginadas.
// Las escrituras van siempre dentro de una transacción (TxRunner); las lecturas usan el repo directo.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   TxRunner
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx, now: time.Now}
}

// Create crea un cliente con un UUID nuevo. No se valida unicidad del nombre.
func (uc *CustomerUseCase) Create(ctx context.Context, name string, address entity.Address) (*entity.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name")
	}
	now := uc.now().UTC()
	customer := &entity.Customer{
		ID:        uuid.New(),
		Name:      name,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.tx.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		return repo.Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Update reemplaza nombre y dirección. Retorna domain.ErrNotFound si el cliente no existe.
func (uc *CustomerUseCase) Update(ctx context.Context, id uuid.UUID, name string, address entity.Address) (*entity.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name")
	}
	var updated *entity.Customer
	err := uc.tx.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		customer, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
		}
		customer.Name = name
		customer.Address = address
		customer.UpdatedAt = uc.now().UTC()
		if err := repo.Update(ctx, customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete elimina el cliente. Si no existe no hace nada.
func (uc *CustomerUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.tx.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		return repo.Delete(ctx, id)
	})
}

// FindByID obtiene un cliente. Retorna domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return customer, nil
}

// FindAll devuelve una página de todos los clientes en orden de alta.
func (uc *CustomerUseCase) FindAll(ctx context.Context, page entity.PageRequest) (*entity.CustomerPage, error) {
	page = page.Normalize()
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.List(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return &entity.CustomerPage{Items: items, Page: page.Page, Size: page.Size, Total: total}, nil
}

// FindSuggestions devuelve una página de clientes cuyo nombre contiene term,
// sin distinguir mayúsculas/minúsculas.
func (uc *CustomerUseCase) FindSuggestions(ctx context.Context, term string, page entity.PageRequest) (*entity.CustomerPage, error) {
	page = page.Normalize()
	term = strings.TrimSpace(term)
	total, err := uc.repo.CountByName(ctx, term)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.SearchByName(ctx, term, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	return &entity.CustomerPage{Items: items, Page: page.Page, Size: page.Size, Total: total}, nil
}
