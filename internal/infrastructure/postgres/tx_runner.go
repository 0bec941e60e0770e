package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/customer-api/internal/application/customer"
	"github.com/jhoicas/customer-api/internal/domain/repository"
)

var _ customer.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// RunCustomer inicia una transacción, ejecuta fn con un CustomerRepo atado a la tx y hace Commit.
// Cualquier error o pánico en fn provoca Rollback.
func (r *TxRunner) RunCustomer(ctx context.Context, fn func(repo repository.CustomerRepository) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := fn(NewCustomerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}
