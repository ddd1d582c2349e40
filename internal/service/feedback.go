package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
)

const maxMessageLength = 2000

type MessageRepo interface {
	SaveMessage(ctx context.Context, m entities.Message) (entities.Message, error)
	ListMessages(ctx context.Context) ([]entities.Message, error)
}

// Publisher доставляет сообщения пользователя операторам
type Publisher interface {
	Publish(ctx context.Context, m entities.Message) error
}

type FeedbackService struct {
	logger    *slog.Logger
	repo      MessageRepo
	publisher Publisher
	now       func() time.Time
}

func NewFeedbackService(logger *slog.Logger, repo MessageRepo, publisher Publisher) *FeedbackService {
	return &FeedbackService{
		logger:    logger.With(slog.String("service", "feedback")),
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Send сохраняет сообщение пользователя и отправляет его операторам.
func (s *FeedbackService) Send(ctx context.Context, text string) (entities.Message, error) {
	text = strings.TrimSpace(text)
	if err := validateText(text); err != nil {
		return entities.Message{}, err
	}

	saved, err := s.repo.SaveMessage(ctx, entities.Message{
		Text:      text,
		From:      entities.SenderUser,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("failed to save message", slog.Any("error", err))
		return entities.Message{}, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}

	if err := s.publisher.Publish(ctx, saved); err != nil {
		s.logger.Error("failed to publish message", slog.Int64("id", saved.ID), slog.Any("error", err))
		return saved, fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	return saved, nil
}

// Receive сохраняет входящий ответ оператора.
func (s *FeedbackService) Receive(ctx context.Context, m entities.Message) error {
	if !m.From.Valid() {
		return fmt.Errorf("%w: unknown sender %q", entities.ErrValidation, m.From)
	}
	m.Text = strings.TrimSpace(m.Text)
	if err := validateText(m.Text); err != nil {
		return err
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = s.now().UTC()
	}

	if _, err := s.repo.SaveMessage(ctx, m); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}
	return nil
}

// Messages журнал переписки в порядке отображения.
func (s *FeedbackService) Messages(ctx context.Context) ([]entities.Message, error) {
	messages, err := s.repo.ListMessages(ctx)
	if err != nil {
		s.logger.Error("failed to list messages", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}
	return SortMessages(messages), nil
}

// SortMessages упорядочивает по времени, при равном времени сообщение пользователя идёт раньше.
func SortMessages(messages []entities.Message) []entities.Message {
	out := slices.Clone(messages)
	if out == nil {
		out = []entities.Message{}
	}
	slices.SortStableFunc(out, func(a, b entities.Message) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(senderRank(a.From), senderRank(b.From))
	})
	return out
}

func senderRank(s entities.Sender) int {
	if s == entities.SenderUser {
		return 0
	}
	return 1
}

func validateText(text string) error {
	if text == "" {
		return fmt.Errorf("%w: message text is required", entities.ErrValidation)
	}
	if utf8.RuneCountInString(text) > maxMessageLength {
		return fmt.Errorf("%w: message is longer than %d characters", entities.ErrValidation, maxMessageLength)
	}
	return nil
}
