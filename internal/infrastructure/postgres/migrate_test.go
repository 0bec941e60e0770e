package postgres

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_AplicaPendientes(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("001_create_customers").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS customers").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("001_create_customers").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	applied, err := Migrate(context.Background(), mock)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_customers"}, applied)
}

func TestMigrate_OmiteAplicadas(t *testing.T) {
	mock := newMockPool(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("001_create_customers").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	applied, err := Migrate(context.Background(), mock)
	require.NoError(t, err)
	assert.Empty(t, applied)
}
