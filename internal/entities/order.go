package entities

import (
	"fmt"
	"strings"
	"time"
)

// OrderState состояние жизненного цикла заказа. Переход только Active -> Finished.
type OrderState string

const (
	OrderStateActive   OrderState = "active"
	OrderStateFinished OrderState = "finished"
)

func (s OrderState) Valid() bool {
	switch s {
	case OrderStateActive, OrderStateFinished:
		return true
	default:
		return false
	}
}

type Order struct {
	ID       int64
	FromCity string
	City     string
	WeightKg float64
	Size     string

	// тариф фиксируется при создании заказа и больше не меняется
	Tariff Tariff

	State     OrderState
	CreatedAt time.Time
}

// NewOrder создаёт активный заказ по выбранному тарифу.
func NewOrder(fromCity, city string, weightKg float64, tariff Tariff) (Order, error) {
	if strings.TrimSpace(city) == "" {
		return Order{}, fmt.Errorf("%w: destination city is required", ErrValidation)
	}
	if weightKg <= 0 {
		return Order{}, fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	if err := tariff.Validate(); err != nil {
		return Order{}, err
	}

	return Order{
		FromCity: fromCity,
		City:     city,
		WeightKg: weightKg,
		Size:     SizeByWeight(weightKg),
		Tariff:   tariff,
		State:    OrderStateActive,
	}, nil
}

func (o Order) IsFinished() bool {
	return o.State == OrderStateFinished
}

// Finish переводит заказ в историю.
func (o *Order) Finish() error {
	if o.State == OrderStateFinished {
		return ErrOrderAlreadyFinished
	}
	o.State = OrderStateFinished
	return nil
}

// SizeByWeight размерная группа посылки по весу в килограммах
func SizeByWeight(weightKg float64) string {
	switch {
	case weightKg <= 0.5:
		return "XS"
	case weightKg <= 2:
		return "S"
	case weightKg <= 5:
		return "M"
	case weightKg <= 10:
		return "L"
	case weightKg <= 20:
		return "XL"
	default:
		return "XXL"
	}
}
