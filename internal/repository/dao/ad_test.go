package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return sqlDB, db, mock
}

func TestAdDAO_Insert(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "ads"`)).
		WithArgs("Higher Math", "book", "exchange", "Dhaka", "01711223344", "", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	d := NewAdDAO(db)
	created, err := d.Insert(context.Background(), Ad{
		ItemName:  "Higher Math",
		Category:  "book",
		Type:      "exchange",
		Location:  "Dhaka",
		Phone:     "01711223344",
		IsPremium: true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdDAO_FindAll(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	rows := sqlmock.NewRows([]string{"id", "item_name", "category", "type", "location", "phone", "image", "is_premium"}).
		AddRow(1, "Higher Math", "book", "exchange", "Dhaka", "01711223344", "", true).
		AddRow(2, "Physics", "book", "exchange", "Chittagong", "01811223344", "", false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ads"`)).WillReturnRows(rows)

	d := NewAdDAO(db)
	ads, err := d.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "Dhaka", ads[0].Location)
	assert.Equal(t, "Chittagong", ads[1].Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdDAO_Count(t *testing.T) {
	sqlDB, db, mock := dbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "ads"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	d := NewAdDAO(db)
	count, err := d.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassifyError(t *testing.T) {
	t.Run("connection failure maps to ErrStoreUnavailable", func(t *testing.T) {
		err := fmt.Errorf("gorm -> %w", &pgconn.PgError{Code: "08006"})

		assert.ErrorIs(t, classifyError(err), ErrStoreUnavailable)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		err := errors.New("syntax error")

		assert.Equal(t, err, classifyError(err))
	})
}
