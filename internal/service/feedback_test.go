package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/service"
	mocks "github.com/SergeyBogomolovv/delivio/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_Send(t *testing.T) {
	type MockBehavior func(repo *mocks.MockMessageRepo, publisher *mocks.MockPublisher)

	testCases := []struct {
		name         string
		text         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			text: "  Где моя посылка?  ",
			mockBehavior: func(repo *mocks.MockMessageRepo, publisher *mocks.MockPublisher) {
				repo.EXPECT().SaveMessage(mock.Anything, mock.MatchedBy(func(m entities.Message) bool {
					return m.Text == "Где моя посылка?" && m.From == entities.SenderUser && !m.Timestamp.IsZero()
				})).RunAndReturn(func(_ context.Context, m entities.Message) (entities.Message, error) {
					m.ID = 1
					return m, nil
				})
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(m entities.Message) bool {
					return m.ID == 1
				})).Return(nil)
			},
		},
		{
			name:         "blank text",
			text:         "   ",
			mockBehavior: func(*mocks.MockMessageRepo, *mocks.MockPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:         "too long",
			text:         strings.Repeat("я", 2001),
			mockBehavior: func(*mocks.MockMessageRepo, *mocks.MockPublisher) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "save fails",
			text: "привет",
			mockBehavior: func(repo *mocks.MockMessageRepo, _ *mocks.MockPublisher) {
				repo.EXPECT().SaveMessage(mock.Anything, mock.Anything).
					Return(entities.Message{}, errors.New("db error"))
			},
			wantErr: entities.ErrPersistence,
		},
		{
			name: "publish fails",
			text: "привет",
			mockBehavior: func(repo *mocks.MockMessageRepo, publisher *mocks.MockPublisher) {
				repo.EXPECT().SaveMessage(mock.Anything, mock.Anything).
					Return(entities.Message{ID: 2, Text: "привет", From: entities.SenderUser}, nil)
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("broker unavailable"))
			},
			wantErr: entities.ErrTransport,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockMessageRepo(t)
			publisher := mocks.NewMockPublisher(t)
			tc.mockBehavior(repo, publisher)

			svc := service.NewFeedbackService(discard, repo, publisher)
			_, err := svc.Send(context.Background(), tc.text)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFeedbackService_Receive(t *testing.T) {
	repo := mocks.NewMockMessageRepo(t)
	svc := service.NewFeedbackService(discard, repo, mocks.NewMockPublisher(t))

	repo.EXPECT().SaveMessage(mock.Anything, mock.MatchedBy(func(m entities.Message) bool {
		return m.From == entities.SenderOperator && !m.Timestamp.IsZero()
	})).Return(entities.Message{ID: 3}, nil).Once()

	require.NoError(t, svc.Receive(context.Background(), entities.Message{Text: "Заказ в пути", From: entities.SenderOperator}))

	err := svc.Receive(context.Background(), entities.Message{Text: "Заказ в пути", From: "bot"})
	assert.ErrorIs(t, err, entities.ErrValidation)

	err = svc.Receive(context.Background(), entities.Message{Text: "", From: entities.SenderOperator})
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestFeedbackService_Messages(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := mocks.NewMockMessageRepo(t)
	repo.EXPECT().ListMessages(mock.Anything).Return([]entities.Message{
		{ID: 3, Text: "ответ", From: entities.SenderOperator, Timestamp: ts},
		{ID: 1, Text: "вопрос", From: entities.SenderUser, Timestamp: ts.Add(-time.Minute)},
		{ID: 2, Text: "уточнение", From: entities.SenderUser, Timestamp: ts},
	}, nil)

	svc := service.NewFeedbackService(discard, repo, mocks.NewMockPublisher(t))
	messages, err := svc.Messages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, messageIDs(messages))
}

func TestSortMessages(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	input := []entities.Message{
		{ID: 1, From: entities.SenderOperator, Timestamp: ts},
		{ID: 2, From: entities.SenderOperator, Timestamp: ts},
		{ID: 3, From: entities.SenderUser, Timestamp: ts},
		{ID: 4, From: entities.SenderUser, Timestamp: ts.Add(-time.Second)},
	}

	got := service.SortMessages(input)

	assert.Equal(t, []int64{4, 3, 1, 2}, messageIDs(got))
	assert.Equal(t, []int64{1, 2, 3, 4}, messageIDs(input))
	assert.NotNil(t, service.SortMessages(nil))
}

func messageIDs(messages []entities.Message) []int64 {
	out := make([]int64, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.ID)
	}
	return out
}
