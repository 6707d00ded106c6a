package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardika/inventory-service/internal/invoice/dto"
	"github.com/mardika/inventory-service/internal/model"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewPGRepository(sqlx.NewDb(mockDB, "postgres")), mock
}

func invoiceColumns() []string {
	return []string{"id", "alt_id", "created_by", "created_at", "last_update", "last_changed_by", "total", "paid", "user_id"}
}

func invoiceRow(id int64, altID, total string, paid bool, userID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(invoiceColumns()).
		AddRow(id, altID, "system", now, now, "system", total, paid, userID)
}

func TestFindByUserID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM invoices WHERE user_id = \$1 ORDER BY id`).
		WithArgs(model.AltID("person-1")).
		WillReturnRows(invoiceRow(1, "inv-1", "100.00", false, "person-1").
			AddRow(2, "inv-2", "system", time.Now(), time.Now(), "system", "50.00", true, "person-1"))

	invoices, err := repo.FindByUserID(context.Background(), "person-1")
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, 100.0, invoices[0].Total.Float64())
	assert.Equal(t, model.AltID("person-1"), invoices[1].UserID)
}

func TestFindByUserIDEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM invoices WHERE user_id = \$1`).
		WithArgs(model.AltID("nobody")).
		WillReturnRows(sqlmock.NewRows(invoiceColumns()))

	invoices, err := repo.FindByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestCreateBindsUserID(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Bind order follows the query text:
	// alt_id, total, paid, user_id, created_by.
	mock.ExpectQuery(`INSERT INTO invoices`).
		WithArgs(sqlmock.AnyArg(), 100.0, false, model.AltID("person-1"), model.SystemActor).
		WillReturnRows(invoiceRow(1, "generated", "100.00", false, "person-1"))

	inv, err := repo.Create(context.Background(), &dto.CreateInvoiceInput{
		Total:  100,
		UserID: "person-1",
	})
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, model.AltID("person-1"), inv.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePaidOnly(t *testing.T) {
	repo, mock := newMockRepo(t)

	paid := true
	mock.ExpectQuery(`UPDATE invoices SET last_update = now\(\), last_changed_by = \$1, paid = \$2 WHERE id = \$3`).
		WithArgs(model.SystemActor, paid, int64(1)).
		WillReturnRows(invoiceRow(1, "inv-1", "100.00", true, "person-1"))

	inv, err := repo.Update(context.Background(), 1, &dto.UpdateInvoiceInput{Paid: &paid})
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.True(t, inv.Paid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReturnsNilWhenAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE invoices SET`).
		WillReturnRows(sqlmock.NewRows(invoiceColumns()))

	inv, err := repo.Update(context.Background(), 42, &dto.UpdateInvoiceInput{})
	require.NoError(t, err)
	assert.Nil(t, inv)
}
