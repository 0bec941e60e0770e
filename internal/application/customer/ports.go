package customer

import (
	"context"

	"github.com/jhoicas/customer-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con un repositorio de clientes atado a esa tx.
// Si fn retorna error (o entra en pánico) la transacción se revierte; si no, se confirma.
type TxRunner interface {
	RunCustomer(ctx context.Context, fn func(repo repository.CustomerRepository) error) error
}
