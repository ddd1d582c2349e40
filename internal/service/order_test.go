package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/service"
	mocks "github.com/SergeyBogomolovv/delivio/internal/service/mocks"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	txMocks "github.com/SergeyBogomolovv/delivio/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newOrder(t *testing.T, city string, price int64, days int) entities.Order {
	t.Helper()
	o, err := entities.NewOrder("Москва", city, 1.2, entities.Tariff{
		Company:    "СДЭК",
		CargoType:  "Посылка",
		TariffType: entities.TariffTypeLabel1,
		Price:      decimal.NewFromInt(price),
		Days:       days,
	})
	require.NoError(t, err)
	return o
}

func stored(o entities.Order, id int64, state entities.OrderState) entities.Order {
	o.ID = id
	o.State = state
	o.CreatedAt = time.Date(2025, 3, 1, 0, 0, int(id), 0, time.UTC)
	return o
}

func runInTx(txManager *txMocks.MockManager) {
	txManager.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func loadedStore(t *testing.T, repo *mocks.MockOrderRepo, txManager *txMocks.MockManager, orders ...entities.Order) *service.OrderStore {
	t.Helper()
	repo.EXPECT().AllOrders(mock.Anything).Return(orders, nil).Once()
	store := service.NewOrderStore(discard, txManager, repo)
	require.NoError(t, store.Start(context.Background()))
	return store
}

func TestOrderStore_Append(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockOrderRepo)
		wantErr      error
		wantActive   int
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return stored(o, 10, o.State), nil
					})
			},
			wantActive: 2,
		},
		{
			name: "insert fails",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, dbError)
			},
			wantErr:    entities.ErrPersistence,
			wantActive: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			store := loadedStore(t, repo, txMocks.NewMockManager(t), stored(newOrder(t, "Тула", 300, 3), 1, entities.OrderStateActive))
			tc.mockBehavior(repo)

			got, err := store.Append(context.Background(), newOrder(t, "Казань", 500, 2))

			active := store.ActiveOrders()
			assert.Len(t, active, tc.wantActive)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, dbError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), got.ID)
			assert.Equal(t, got, active[0])
		})
	}
}

func TestOrderStore_Append_InvalidState(t *testing.T) {
	store := service.NewOrderStore(discard, txMocks.NewMockManager(t), mocks.NewMockOrderRepo(t))

	_, err := store.Append(context.Background(), entities.Order{City: "Казань", State: "lost"})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestOrderStore_Complete(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		id           int64
		mockBehavior func(repo *mocks.MockOrderRepo, txManager *txMocks.MockManager)
		wantErr      error
		wantFinished bool
	}{
		{
			name: "OK",
			id:   1,
			mockBehavior: func(repo *mocks.MockOrderRepo, txManager *txMocks.MockManager) {
				runInTx(txManager)
				repo.EXPECT().LockOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, State: entities.OrderStateActive}, nil)
				repo.EXPECT().MarkCompleted(mock.Anything, int64(1)).Return(nil)
			},
			wantFinished: true,
		},
		{
			name:         "unknown id",
			id:           99,
			mockBehavior: func(*mocks.MockOrderRepo, *txMocks.MockManager) {},
			wantErr:      entities.ErrOrderNotFound,
		},
		{
			name:         "already finished in memory",
			id:           2,
			mockBehavior: func(*mocks.MockOrderRepo, *txMocks.MockManager) {},
			wantErr:      entities.ErrOrderAlreadyFinished,
			wantFinished: true,
		},
		{
			name: "already finished in storage",
			id:   1,
			mockBehavior: func(repo *mocks.MockOrderRepo, txManager *txMocks.MockManager) {
				runInTx(txManager)
				repo.EXPECT().LockOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, State: entities.OrderStateFinished}, nil)
			},
			wantErr:      entities.ErrOrderAlreadyFinished,
			wantFinished: true,
		},
		{
			name: "update fails",
			id:   1,
			mockBehavior: func(repo *mocks.MockOrderRepo, txManager *txMocks.MockManager) {
				runInTx(txManager)
				repo.EXPECT().LockOrder(mock.Anything, int64(1)).
					Return(entities.Order{ID: 1, State: entities.OrderStateActive}, nil)
				repo.EXPECT().MarkCompleted(mock.Anything, int64(1)).Return(dbError)
			},
			wantErr: entities.ErrPersistence,
		},
		{
			name: "transaction fails",
			id:   1,
			mockBehavior: func(_ *mocks.MockOrderRepo, txManager *txMocks.MockManager) {
				txManager.EXPECT().Do(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: entities.ErrPersistence,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			txManager := txMocks.NewMockManager(t)
			store := loadedStore(t, repo, txManager,
				stored(newOrder(t, "Казань", 500, 2), 1, entities.OrderStateActive),
				stored(newOrder(t, "Тула", 300, 3), 2, entities.OrderStateFinished),
			)
			tc.mockBehavior(repo, txManager)

			got, err := store.Complete(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.True(t, got.IsFinished())
			}

			if tc.id == 99 {
				return
			}
			order, err := store.Get(tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.wantFinished, order.IsFinished())
		})
	}
}

func TestOrderStore_CompleteTwice(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	txManager := txMocks.NewMockManager(t)
	store := loadedStore(t, repo, txManager, stored(newOrder(t, "Казань", 500, 2), 1, entities.OrderStateActive))

	runInTx(txManager)
	repo.EXPECT().LockOrder(mock.Anything, int64(1)).
		Return(entities.Order{ID: 1, State: entities.OrderStateActive}, nil).Once()
	repo.EXPECT().MarkCompleted(mock.Anything, int64(1)).Return(nil).Once()

	_, err := store.Complete(context.Background(), 1)
	require.NoError(t, err)

	_, err = store.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, entities.ErrOrderAlreadyFinished)

	order, err := store.Get(1)
	require.NoError(t, err)
	assert.True(t, order.IsFinished())
	assert.Empty(t, store.ActiveOrders())
}

func TestOrderStore_AppendReload(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	store := service.NewOrderStore(discard, txMocks.NewMockManager(t), repo)

	var rows []entities.Order
	repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			o = stored(o, int64(len(rows)+1), o.State)
			rows = append([]entities.Order{o}, rows...)
			return o, nil
		})
	repo.EXPECT().AllOrders(mock.Anything).
		RunAndReturn(func(context.Context) ([]entities.Order, error) {
			return append([]entities.Order(nil), rows...), nil
		})

	appended, err := store.Append(context.Background(), newOrder(t, "Казань", 500, 2))
	require.NoError(t, err)

	require.NoError(t, store.Reload(context.Background()))

	active := store.ActiveOrders()
	require.Len(t, active, 1)
	assert.Equal(t, appended, active[0])
}

func TestOrderStore_Reload_KeepsMirrorOnError(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	store := loadedStore(t, repo, txMocks.NewMockManager(t), stored(newOrder(t, "Казань", 500, 2), 1, entities.OrderStateActive))

	repo.EXPECT().AllOrders(mock.Anything).Return(nil, errors.New("db down")).Once()

	err := store.Reload(context.Background())
	assert.ErrorIs(t, err, entities.ErrPersistence)
	assert.Len(t, store.ActiveOrders(), 1)
}

func TestOrderStore_Partitions(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	store := loadedStore(t, repo, txMocks.NewMockManager(t),
		stored(newOrder(t, "Омск", 900, 5), 5, entities.OrderStateFinished),
		stored(newOrder(t, "Сочи", 400, 4), 4, entities.OrderStateActive),
		stored(newOrder(t, "Тула", 100, 7), 3, entities.OrderStateFinished),
		stored(newOrder(t, "Казань", 500, 2), 2, entities.OrderStateActive),
		stored(newOrder(t, "Пермь", 300, 1), 1, entities.OrderStateFinished),
	)

	active := store.ActiveOrders()
	require.Len(t, active, 2)
	for _, o := range active {
		assert.False(t, o.IsFinished())
	}

	for _, st := range strategy.All() {
		for _, o := range store.FinishedOrders(st) {
			assert.True(t, o.IsFinished(), "strategy %s", st)
		}
	}

	assert.Equal(t, []int64{5, 3, 1}, ids(store.FinishedOrders(strategy.None)))
	assert.Equal(t, []int64{3, 1, 5}, ids(store.FinishedOrders(strategy.Cheapest)))
	assert.Equal(t, []int64{1, 5, 3}, ids(store.FinishedOrders(strategy.Fastest)))
	assert.Empty(t, store.FinishedOrders(strategy.Type2))

	current, ok := store.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, int64(4), current.ID)

	_, err := store.Get(42)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderStore_CurrentOrder_Empty(t *testing.T) {
	store := service.NewOrderStore(discard, txMocks.NewMockManager(t), mocks.NewMockOrderRepo(t))

	_, ok := store.CurrentOrder()
	assert.False(t, ok)
	assert.Empty(t, store.ActiveOrders())
	assert.Empty(t, store.FinishedOrders(strategy.Balanced))
}

func ids(orders []entities.Order) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestOrderStore_AppendDuringReload(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	store := service.NewOrderStore(discard, txMocks.NewMockManager(t), repo)

	entered := make(chan struct{})
	release := make(chan struct{})

	// снимок хранилища сделан до вставки нового заказа
	repo.EXPECT().AllOrders(mock.Anything).
		RunAndReturn(func(context.Context) ([]entities.Order, error) {
			close(entered)
			<-release
			return []entities.Order{}, nil
		}).Once()
	repo.EXPECT().InsertOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			return stored(o, 1, o.State), nil
		}).Once()

	reloaded := make(chan error, 1)
	go func() { reloaded <- store.Reload(context.Background()) }()
	<-entered

	type result struct {
		order entities.Order
		err   error
	}
	appended := make(chan result, 1)
	go func() {
		o, err := store.Append(context.Background(), newOrder(t, "Казань", 500, 2))
		appended <- result{o, err}
	}()

	select {
	case <-appended:
		t.Fatal("append finished while reload was in progress")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-reloaded)
	res := <-appended
	require.NoError(t, res.err)

	got, err := store.Get(res.order.ID)
	require.NoError(t, err)
	assert.Equal(t, res.order, got)
	assert.Len(t, store.ActiveOrders(), 1)
}
