package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	From      string    `json:"from"`
	Timestamp time.Time `json:"timestamp"`
}

var answers = []string{
	"Здравствуйте! Уточняем статус вашей посылки.",
	"Заказ передан перевозчику, ожидайте трек-номер.",
	"Спасибо за обращение, оператор скоро ответит подробнее.",
	"Срок доставки может увеличиться на 1-2 дня.",
}

// Отвечает на каждое сообщение пользователя, иногда присылает битый ответ для проверки DLQ.
func main() {
	addr := kafka.TCP("localhost:9092")

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{"localhost:9092"},
		GroupID: "operator-replier",
		Topic:   "feedback-messages",
	})
	defer reader.Close()

	writer := &kafka.Writer{
		Addr:                   addr,
		Topic:                  "feedback-replies",
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("failed to read message:", err)
			continue
		}

		var in message
		if err := json.Unmarshal(m.Value, &in); err != nil {
			log.Println("skip malformed message:", err)
			continue
		}

		data := []byte(`{"from":"bot"}`)
		if rand.Intn(10) > 0 {
			data, _ = json.Marshal(message{
				Text:      answers[rand.Intn(len(answers))],
				From:      "operator",
				Timestamp: time.Now().UTC(),
			})
		}

		if err := writer.WriteMessages(ctx, kafka.Message{Key: m.Key, Value: data}); err != nil {
			log.Println("failed to write reply:", err)
			continue
		}
		log.Println("replied to message", in.ID)
	}
}
