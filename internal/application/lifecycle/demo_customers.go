// Package lifecycle contiene tareas que corren una sola vez al arrancar el proceso.
package lifecycle

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/pkg/logger"
)

// CustomerCreator es la parte del caso de uso de clientes que necesita el seeder.
type CustomerCreator interface {
	Create(ctx context.Context, name string, address entity.Address) (*entity.Customer, error)
	FindAll(ctx context.Context, page entity.PageRequest) (*entity.CustomerPage, error)
}

type demoCustomer struct {
	name    string
	address entity.Address
}

var demoCustomers = []demoCustomer{
	{"Apple", entity.Address{Street: "Apple Street", HouseNumber: "1", PostalCode: "12345", City: "Silicon Valley"}},
	{"Bayer AG", entity.Address{Street: "Kaiser-Wilhelm-Allee", HouseNumber: "1", PostalCode: "51373", City: "Leverkusen"}},
	{"Tesa Hamburg", entity.Address{Street: "Heykenaukamp", HouseNumber: "10", PostalCode: "21147", City: "Hamburg"}},
	{"NovaTec Consulting GmbH", entity.Address{Street: "Dieselstrasse", HouseNumber: "18/1", PostalCode: "70771", City: "Leinfelden-Echterdingen"}},
	{"Daimler AG (Standort Möhringen)", entity.Address{Street: "Epplestraße", HouseNumber: "225", PostalCode: "70567", City: "Stuttgart"}},
	{"Continental AG", entity.Address{Street: "Vahrenwalder Str.", HouseNumber: "9", PostalCode: "30165", City: "Hannover"}},
}

// DemoCustomerSeeder crea los clientes demo al arrancar si no existe ningún cliente.
//
// Dos procesos arrancando a la vez contra la misma base vacía pueden sembrar ambos;
// se aceptan filas demo duplicadas en ese caso.
type DemoCustomerSeeder struct {
	customers CustomerCreator
	log       *logger.Logger
	running   atomic.Bool
}

// NewDemoCustomerSeeder construye el seeder.
func NewDemoCustomerSeeder(customers CustomerCreator, log *logger.Logger) *DemoCustomerSeeder {
	return &DemoCustomerSeeder{customers: customers, log: log}
}

// Start marca el seeder como activo y siembra los datos demo si el almacén está vacío.
// Si falla alguna creación se retorna el error; lo ya creado no se revierte.
func (s *DemoCustomerSeeder) Start(ctx context.Context) error {
	s.running.Store(true)

	page, err := s.customers.FindAll(ctx, entity.PageRequest{Page: 0, Size: 1})
	if err != nil {
		return fmt.Errorf("consultar clientes existentes: %w", err)
	}
	if page.HasContent() {
		s.log.Debug().Msg("ya existen clientes, no se crean clientes demo")
		return nil
	}

	s.log.Info().Int("count", len(demoCustomers)).Msg("creando clientes demo")
	for _, d := range demoCustomers {
		if _, err := s.customers.Create(ctx, d.name, d.address); err != nil {
			return fmt.Errorf("crear cliente demo %q: %w", d.name, err)
		}
	}
	return nil
}

// Stop marca el seeder como detenido. No tiene otros efectos.
func (s *DemoCustomerSeeder) Stop() {
	s.running.Store(false)
}

// IsRunning indica si Start fue invocado y Stop aún no.
func (s *DemoCustomerSeeder) IsRunning() bool {
	return s.running.Load()
}
