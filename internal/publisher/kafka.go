// Package publisher delivers user feedback messages to the operator topic.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/config"
	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/segmentio/kafka-go"
)

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	From      string    `json:"from"`
	Timestamp time.Time `json:"timestamp"`
}

type KafkaPublisher struct {
	writer Writer
}

func NewKafkaPublisher(cfg config.Kafka) *KafkaPublisher {
	return NewWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.MessagesTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func NewWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, m entities.Message) error {
	value, err := json.Marshal(message{
		ID:        m.ID,
		Text:      m.Text,
		From:      string(m.From),
		Timestamp: m.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(m.ID, 10)),
		Value: value,
		Time:  m.Timestamp,
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop используется, когда Kafka отключена: сообщения остаются только в журнале.
type Noop struct {
	logger *slog.Logger
}

func NewNoop(logger *slog.Logger) *Noop {
	return &Noop{logger: logger.With(slog.String("service", "publisher"))}
}

func (n *Noop) Publish(_ context.Context, m entities.Message) error {
	n.logger.Debug("kafka disabled, message not published", slog.Int64("id", m.ID))
	return nil
}

func (n *Noop) Close() error {
	return nil
}
