package repo_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/repo"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "company", "delivery_type", "tariff_type", "cargo_type", "weight", "size",
	"town_from", "town_to", "price", "delivery_time", "is_price_restored",
	"is_time_restored", "source_url", "is_completed", "created_at",
}

func newRepo(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

func testOrder(t *testing.T) entities.Order {
	t.Helper()
	order, err := entities.NewOrder("Москва", "Казань", 2.5, entities.Tariff{
		Company:         "СДЭК",
		CargoType:       "Экспресс",
		TariffType:      entities.TariffTypeLabel1,
		Price:           decimal.RequireFromString("1250.50"),
		Days:            3,
		IsPriceRestored: true,
		SourceURL:       "https://cdek.ru/tariff",
	})
	require.NoError(t, err)
	return order
}

func TestPostgresRepo_InsertOrder(t *testing.T) {
	db, mock := newRepo(t)
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	order := testOrder(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deliveries (company,delivery_type,tariff_type")).
		WithArgs(
			"СДЭК", entities.DeliveryTypeEconomy, entities.TariffTypeLabel1, "Экспресс", 2.5, "M",
			"Москва", "Казань", sqlmock.AnyArg(), 3, true, false, "https://cdek.ru/tariff", false,
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), createdAt))

	got, err := repo.NewPostgresRepo(db).InsertOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.Equal(t, order.Tariff, got.Tariff)
}

func TestPostgresRepo_InsertOrder_Error(t *testing.T) {
	db, mock := newRepo(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO deliveries")).WillReturnError(dbErr)

	_, err := repo.NewPostgresRepo(db).InsertOrder(context.Background(), testOrder(t))
	assert.ErrorIs(t, err, dbErr)
}

func TestPostgresRepo_AllOrders(t *testing.T) {
	db, mock := newRepo(t)
	newer := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).
		AddRow(int64(2), "Boxberry", entities.DeliveryTypeEconomy, entities.TariffTypeLabel2, "Сборный груз",
			1.0, "S", "Москва", "Омск", "700.00", 6, false, true, "", false, newer).
		AddRow(int64(1), "СДЭК", entities.DeliveryTypeExpress, entities.TariffTypeLabel1, "Экспресс",
			0.4, "XS", "Москва", "Сочи", "1250.5", 2, false, false, "https://cdek.ru", true, older)

	mock.ExpectQuery(regexp.QuoteMeta("FROM deliveries ORDER BY created_at DESC, id DESC")).WillReturnRows(rows)

	orders, err := repo.NewPostgresRepo(db).AllOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, entities.OrderStateActive, orders[0].State)
	assert.Equal(t, "Омск", orders[0].City)
	assert.Equal(t, entities.TariffTypeLabel2, orders[0].Tariff.TariffType)
	assert.True(t, orders[0].Tariff.IsTimeRestored)

	assert.Equal(t, entities.OrderStateFinished, orders[1].State)
	assert.True(t, decimal.RequireFromString("1250.5").Equal(orders[1].Tariff.Price))
	assert.Equal(t, older, orders[1].CreatedAt)
}

func TestPostgresRepo_LockOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM deliveries WHERE id = $1 FOR UPDATE")).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				int64(5), "КИТ", entities.DeliveryTypeEconomy, entities.TariffTypeLabel3, "Дверь-Дверь",
				3.0, "M", "Москва", "Тула", "880", 4, false, false, "", false, time.Now()))

		order, err := repo.NewPostgresRepo(db).LockOrder(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), order.ID)
		assert.False(t, order.IsFinished())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.NewPostgresRepo(db).LockOrder(context.Background(), 404)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestPostgresRepo_MarkCompleted(t *testing.T) {
	testCases := []struct {
		name    string
		result  func(m sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "updated",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE deliveries SET is_completed = $1 WHERE id = $2")).
					WithArgs(true, int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing row",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE deliveries")).
					WithArgs(true, int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newRepo(t)
			tc.result(mock)

			err := repo.NewPostgresRepo(db).MarkCompleted(context.Background(), 7)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostgresRepo_Messages(t *testing.T) {
	db, mock := newRepo(t)
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO feedback_messages (text,sender,ts) VALUES ($1,$2,$3) RETURNING id")).
		WithArgs("Где посылка?", "user", ts).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, text, sender, ts FROM feedback_messages ORDER BY ts ASC, id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "sender", "ts"}).
			AddRow(int64(11), "Где посылка?", "user", ts).
			AddRow(int64(12), "Уже в пути", "operator", ts.Add(time.Minute)))

	r := repo.NewPostgresRepo(db)

	saved, err := r.SaveMessage(context.Background(), entities.Message{
		Text: "Где посылка?", From: entities.SenderUser, Timestamp: ts,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.ID)

	messages, err := r.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, entities.SenderOperator, messages[1].From)
}
