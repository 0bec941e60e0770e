package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, street, house_number, postal_code, city, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, street, house_number, postal_code, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Address.Street, c.Address.HouseNumber, c.Address.PostalCode, c.Address.City,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert customer: uuid %s duplicado: %w", c.ID, err)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Update reemplaza nombre y dirección.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, street = $3, house_number = $4, postal_code = $5, city = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Address.Street, c.Address.HouseNumber, c.Address.PostalCode, c.Address.City, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Borrar un ID inexistente no es error.
func (r *CustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// List lista clientes en orden de alta.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY seq LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return collectCustomers(rows)
}

// Count total de clientes.
func (r *CustomerRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// SearchByName lista clientes cuyo nombre contiene term, sin distinguir mayúsculas (ILIKE).
func (r *CustomerRepo) SearchByName(ctx context.Context, term string, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY seq LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, escapeLike(term), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return collectCustomers(rows)
}

// CountByName total de clientes cuyo nombre contiene term.
func (r *CustomerRepo) CountByName(ctx context.Context, term string) (int, error) {
	query := `SELECT COUNT(*) FROM customers WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'`
	var n int
	if err := r.q.QueryRow(ctx, query, escapeLike(term)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers by name: %w", err)
	}
	return n, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name,
		&c.Address.Street, &c.Address.HouseNumber, &c.Address.PostalCode, &c.Address.City,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return list, nil
}
