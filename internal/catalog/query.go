package catalog

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/go-playground/validator/v10"
)

// DefaultFromCity город отправления, если пользователь его не указал
const DefaultFromCity = "Москва"

type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
)

var validate = validator.New()

// Query параметры поиска тарифов.
type Query struct {
	FromCity string  `validate:"max=100"`
	City     string  `validate:"required,max=100"`
	Weight   float64 `validate:"gt=0"`
	Unit     Unit    `validate:"omitempty,oneof=g kg"`
	Strategy strategy.Strategy
}

// Normalize приводит вес к килограммам и убирает лишние пробелы.
func (q Query) Normalize() Query {
	q.FromCity = strings.TrimSpace(q.FromCity)
	if q.FromCity == "" {
		q.FromCity = DefaultFromCity
	}
	q.City = strings.TrimSpace(q.City)
	if q.Unit == UnitGram {
		q.Weight /= 1000
	}
	q.Unit = UnitKilogram
	if q.Strategy == "" {
		q.Strategy = strategy.None
	}
	return q
}

// WeightKg вес в килограммах с учётом единицы измерения.
func (q Query) WeightKg() float64 {
	if q.Unit == UnitGram {
		return q.Weight / 1000
	}
	return q.Weight
}

func (q Query) Validate() error {
	if strings.TrimSpace(q.City) == "" {
		return fmt.Errorf("%w: destination city is required", entities.ErrValidation)
	}
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrValidation, err)
	}
	if q.Strategy != "" && !q.Strategy.Valid() {
		return fmt.Errorf("%w: unknown strategy %q", entities.ErrValidation, q.Strategy)
	}
	return nil
}
