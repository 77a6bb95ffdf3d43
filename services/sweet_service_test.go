package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetshop-api/dto"
)

func TestSweetService_ListAvailable(t *testing.T) {
	mock := setupMockDB(t)
	svc := NewSweetService()

	mock.ExpectQuery(`SELECT \* FROM "sweets" WHERE is_available = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_available"}).
			AddRow(uuid.NewString(), "Chocolate Truffle", 3.50, true).
			AddRow(uuid.NewString(), "Strawberry Macaron", 2.75, true))

	sweets, err := svc.ListAvailable("")

	require.NoError(t, err)
	assert.Len(t, sweets, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweetService_ListAvailable_CategoryFilter(t *testing.T) {
	mock := setupMockDB(t)
	svc := NewSweetService()

	mock.ExpectQuery(`SELECT \* FROM "sweets" WHERE is_available = \$1 AND category = \$2`).
		WithArgs(true, "chocolate").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category"}).
			AddRow(uuid.NewString(), "Chocolate Truffle", "chocolate"))

	sweets, err := svc.ListAvailable("chocolate")

	require.NoError(t, err)
	require.Len(t, sweets, 1)
	assert.Equal(t, "chocolate", sweets[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweetService_CreateSweet_DefaultsToAvailable(t *testing.T) {
	mock := setupMockDB(t)
	svc := NewSweetService()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "sweets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	sweet, err := svc.CreateSweet(dto.CreateSweetRequest{
		Name:          "Pistachio Baklava",
		Price:         6.50,
		StockQuantity: 40,
		Category:      "pastry",
	})

	require.NoError(t, err)
	assert.True(t, sweet.IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweetService_UpdateSweet_PartialFields(t *testing.T) {
	mock := setupMockDB(t)
	svc := NewSweetService()

	sweetID := uuid.NewString()
	price := 4.25

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "sweets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "sweets" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(sweetID, "Salted Caramel Fudge", price))

	sweet, err := svc.UpdateSweet(sweetID, dto.UpdateSweetRequest{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, price, sweet.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweetService_UpdateSweet_NoFieldsIsNoop(t *testing.T) {
	mock := setupMockDB(t)
	svc := NewSweetService()

	sweetID := uuid.NewString()

	mock.ExpectQuery(`SELECT \* FROM "sweets" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(sweetID, "Salted Caramel Fudge"))

	_, err := svc.UpdateSweet(sweetID, dto.UpdateSweetRequest{})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
