package entities

import "time"

// Sender автор сообщения обратной связи
type Sender string

const (
	SenderUser     Sender = "user"
	SenderOperator Sender = "operator"
)

func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderOperator
}

type Message struct {
	ID        int64
	Text      string
	From      Sender
	Timestamp time.Time
}
