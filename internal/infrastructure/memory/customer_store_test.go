package memory_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-api/internal/domain/entity"
	"github.com/jhoicas/customer-api/internal/domain/repository"
	"github.com/jhoicas/customer-api/internal/infrastructure/memory"
)

func newCustomer(name string) *entity.Customer {
	now := time.Now().UTC()
	return &entity.Customer{
		ID:        uuid.New(),
		Name:      name,
		Address:   entity.Address{Street: "Calle", HouseNumber: "1", PostalCode: "00000", City: "X"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCustomerStore_CrudBasico(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomerStore()

	c := newCustomer("Apple")
	require.NoError(t, store.Create(ctx, c))

	got, err := store.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *c, *got)

	// La copia devuelta no debe alterar el almacén.
	got.Name = "modificado"
	again, _ := store.GetByID(ctx, c.ID)
	assert.Equal(t, "Apple", again.Name)

	c.Name = "Apple Inc."
	require.NoError(t, store.Update(ctx, c))
	again, _ = store.GetByID(ctx, c.ID)
	assert.Equal(t, "Apple Inc.", again.Name)

	require.NoError(t, store.Delete(ctx, c.ID))
	gone, err := store.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Borrar un ID inexistente no falla.
	assert.NoError(t, store.Delete(ctx, uuid.New()))
}

func TestCustomerStore_ListaEnOrdenDeAlta(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomerStore()
	names := []string{"uno", "dos", "tres", "cuatro", "cinco"}
	for _, n := range names {
		require.NoError(t, store.Create(ctx, newCustomer(n)))
	}

	total, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	first, err := store.List(ctx, 2, 0)
	require.NoError(t, err)
	second, err := store.List(ctx, 2, 2)
	require.NoError(t, err)
	third, err := store.List(ctx, 2, 4)
	require.NoError(t, err)

	var got []string
	for _, page := range [][]*entity.Customer{first, second, third} {
		for _, c := range page {
			got = append(got, c.Name)
		}
	}
	assert.Equal(t, names, got)
}

func TestCustomerStore_BusquedaSinDistinguirMayusculas(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomerStore()
	for _, n := range []string{"Tesa Hamburg", "Bayer AG", "Daimler AG (Standort Möhringen)"} {
		require.NoError(t, store.Create(ctx, newCustomer(n)))
	}

	found, err := store.SearchByName(ctx, "tesa", 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Tesa Hamburg", found[0].Name)

	found, err = store.SearchByName(ctx, "MÖHRINGEN", 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)

	n, err := store.CountByName(ctx, "ag")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	none, err := store.SearchByName(ctx, "siemens", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCustomerStore_BusquedaSoloMinusculasSimples(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomerStore()
	require.NoError(t, store.Create(ctx, newCustomer("Epplestraße Büro")))

	// Igual que ILIKE: sin plegado completo, "ß" no equivale a "ss".
	n, err := store.CountByName(ctx, "strasse")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = store.CountByName(ctx, "STRAßE")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.CountByName(ctx, "BÜRO")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCustomerStore_OffsetFueraDeRango(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomerStore()
	for _, n := range []string{"Apple", "Bayer AG"} {
		require.NoError(t, store.Create(ctx, newCustomer(n)))
	}

	for _, offset := range []int{-16, 2, math.MaxInt} {
		list, err := store.List(ctx, 20, offset)
		require.NoError(t, err)
		assert.Empty(t, list, "offset %d", offset)

		found, err := store.SearchByName(ctx, "a", 20, offset)
		require.NoError(t, err)
		assert.Empty(t, found, "offset %d", offset)
	}
}

func TestCustomerStore_TransaccionConfirmaORevierte(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomerStore()
	kept := newCustomer("confirmado")

	err := store.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		return repo.Create(ctx, kept)
	})
	require.NoError(t, err)

	errBoom := errors.New("boom")
	err = store.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		require.NoError(t, repo.Create(ctx, newCustomer("revertido")))
		require.NoError(t, repo.Delete(ctx, kept.ID))
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	total, _ := store.Count(ctx)
	assert.Equal(t, 1, total, "la transacción fallida no debe dejar cambios")
	got, _ := store.GetByID(ctx, kept.ID)
	assert.NotNil(t, got)
}

func TestCustomerStore_TransaccionConPanicNoConfirma(t *testing.T) {
	ctx := context.Background()
	store := memory.NewCustomerStore()

	assert.Panics(t, func() {
		_ = store.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
			_ = repo.Create(ctx, newCustomer("fantasma"))
			panic("fallo inesperado")
		})
	})

	total, _ := store.Count(ctx)
	assert.Zero(t, total)

	// El almacén sigue usable después del pánico.
	require.NoError(t, store.Create(ctx, newCustomer("después")))
}
