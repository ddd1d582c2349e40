package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var (
	// Ошибки сетевого уровня при обращении к бэкенду тарифов
	ErrTransport = errors.New("transport error")
	// Ответ бэкенда не удалось разобрать
	ErrFormat = errors.New("format error")
	// Ошибка чтения/записи локального хранилища
	ErrPersistence = errors.New("persistence error")
	// Некорректный пользовательский ввод
	ErrValidation = errors.New("validation error")

	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderAlreadyFinished = errors.New("order already finished")
	ErrCatalogNotFound      = errors.New("catalog not found")
	ErrTariffNotFound       = errors.New("tariff not found")
)

func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte, v any) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}

func init() {
	gob.Register(Tariff{})
	gob.Register(Order{})
	gob.Register(Message{})
}
