package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/customer-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) si el cliente no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	Count(ctx context.Context) (int, error)
	SearchByName(ctx context.Context, term string, limit, offset int) ([]*entity.Customer, error)
	CountByName(ctx context.Context, term string) (int, error)
}
