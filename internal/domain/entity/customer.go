package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer representa un cliente con su dirección postal.
// El ID se asigna al crear y no cambia durante la vida del cliente.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Address   Address
	CreatedAt time.Time
	UpdatedAt time.Time
}
