package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/catalog"
	"github.com/SergeyBogomolovv/delivio/internal/catalog/mocks"
	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/SergeyBogomolovv/delivio/pkg/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestService_Search(t *testing.T) {
	type MockBehavior func(f *mocks.MockFetcher)

	testCases := []struct {
		name         string
		query        catalog.Query
		mockBehavior MockBehavior
		wantErr      error
		wantOrder    []string
	}{
		{
			name:  "OK",
			query: catalog.Query{City: "Казань", Weight: 2000, Unit: catalog.UnitGram, Strategy: strategy.Cheapest},
			mockBehavior: func(f *mocks.MockFetcher) {
				f.EXPECT().Fetch(mock.Anything, mock.MatchedBy(func(q catalog.Query) bool {
					return q.WeightKg() == 2 && q.FromCity == catalog.DefaultFromCity
				})).Return(sampleTariffs(), nil)
			},
			wantOrder: []string{"B", "C", "A"},
		},
		{
			name:         "validation fails before fetch",
			query:        catalog.Query{City: " ", Weight: 1},
			mockBehavior: func(f *mocks.MockFetcher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "transport error",
			query: catalog.Query{City: "Казань", Weight: 1},
			mockBehavior: func(f *mocks.MockFetcher) {
				f.EXPECT().Fetch(mock.Anything, mock.Anything).
					Return(nil, entities.ErrTransport).Once()
			},
			wantErr: entities.ErrTransport,
		},
		{
			name:  "format error",
			query: catalog.Query{City: "Казань", Weight: 1},
			mockBehavior: func(f *mocks.MockFetcher) {
				f.EXPECT().Fetch(mock.Anything, mock.Anything).
					Return(nil, errors.Join(entities.ErrFormat, errors.New("bad json"))).Once()
			},
			wantErr: entities.ErrFormat,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockFetcher(t)
			tc.mockBehavior(fetcher)
			sessions := cache.NewLRU(10, time.Minute)

			svc := catalog.NewService(discard, fetcher, sessions)
			view, err := svc.Search(context.Background(), tc.query)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, sessions.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, companies(view.Tariffs))
			assert.Equal(t, 1, sessions.Len())

			stored, err := svc.Get(view.CatalogID)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, companies(stored.Tariffs))
		})
	}
}

func TestService_View(t *testing.T) {
	fetcher := mocks.NewMockFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return(sampleTariffs(), nil).Once()

	svc := catalog.NewService(discard, fetcher, cache.NewLRU(10, time.Minute))
	first, err := svc.Search(context.Background(), catalog.Query{City: "Казань", Weight: 1})
	require.NoError(t, err)
	assert.Equal(t, strategy.None, first.Strategy)

	view, err := svc.View(first.CatalogID, strategy.Type2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, companies(view.Tariffs))

	_, err = svc.View(uuid.New(), strategy.None)
	assert.ErrorIs(t, err, entities.ErrCatalogNotFound)
}

func TestService_Request(t *testing.T) {
	fetcher := mocks.NewMockFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return(sampleTariffs(), nil).Once()

	svc := catalog.NewService(discard, fetcher, cache.NewLRU(10, time.Minute))
	results := svc.Request(context.Background(), catalog.Query{City: "Казань", Weight: 1, Strategy: strategy.Fastest})

	select {
	case res := <-results:
		require.NoError(t, res.Err)
		assert.Equal(t, []string{"A", "C", "B"}, companies(res.View.Tariffs))
	case <-time.After(time.Second):
		t.Fatal("no result")
	}

	_, open := <-results
	assert.False(t, open)
}
