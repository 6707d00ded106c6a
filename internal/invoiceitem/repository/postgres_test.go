package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mardika/inventory-service/internal/model"
	"github.com/mardika/inventory-service/pkg/db"
)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewPGRepository(sqlx.NewDb(mockDB, "postgres")), mock
}

func linkColumns() []string {
	return []string{"invoice_id", "item_id"}
}

func TestFindByInvoiceID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM invoices_items WHERE invoice_id = \$1`).
		WithArgs(model.AltID("inv-1")).
		WillReturnRows(sqlmock.NewRows(linkColumns()).
			AddRow("inv-1", "item-1").
			AddRow("inv-1", "item-2"))

	links, err := repo.FindByInvoiceID(context.Background(), "inv-1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, model.AltID("item-2"), links[1].ItemID)
}

func TestFindOneReturnsNilWhenAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM invoices_items WHERE invoice_id = \$1 AND item_id = \$2`).
		WithArgs(model.AltID("inv-1"), model.AltID("item-9")).
		WillReturnRows(sqlmock.NewRows(linkColumns()))

	link, err := repo.FindOne(context.Background(), "inv-1", "item-9")
	require.NoError(t, err)
	assert.Nil(t, link)
}

func TestCreateReturnsPair(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO invoices_items`).
		WithArgs(model.AltID("inv-1"), model.AltID("item-1")).
		WillReturnRows(sqlmock.NewRows(linkColumns()).AddRow("inv-1", "item-1"))

	link, err := repo.Create(context.Background(), &model.InvoiceItem{
		InvoiceID: "inv-1",
		ItemID:    "item-1",
	})
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, model.AltID("inv-1"), link.InvoiceID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuplicatePairFailsOnPrimaryKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO invoices_items`).
		WithArgs(model.AltID("inv-1"), model.AltID("item-1")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &model.InvoiceItem{
		InvoiceID: "inv-1",
		ItemID:    "item-1",
	})
	assert.True(t, db.IsUniqueViolation(err))
}

func TestCreateDanglingIdentifierFailsOnForeignKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO invoices_items`).
		WithArgs(model.AltID("no-such-invoice"), model.AltID("item-1")).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Create(context.Background(), &model.InvoiceItem{
		InvoiceID: "no-such-invoice",
		ItemID:    "item-1",
	})
	assert.True(t, db.IsForeignKeyViolation(err))
}

func TestRemoveByInvoiceIDScopesToOneInvoice(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM invoices_items WHERE invoice_id = \$1`).
		WithArgs(model.AltID("inv-1")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.RemoveByInvoiceID(context.Background(), "inv-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveIsIdempotent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM invoices_items WHERE invoice_id = \$1 AND item_id = \$2`).
		WithArgs(model.AltID("inv-1"), model.AltID("item-9")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Remove(context.Background(), "inv-1", "item-9"))
}
