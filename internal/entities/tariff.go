package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Метки типов тарифов, по которым работают фильтры TYPE1..TYPE3
const (
	TariffTypeLabel1 = "Тип тарифа 1"
	TariffTypeLabel2 = "Тип тарифа 2"
	TariffTypeLabel3 = "Тип тарифа 3"
)

// Категории доставки, которые допускает таблица deliveries
const (
	DeliveryTypeExpress = "экспресс лайт"
	DeliveryTypeEconomy = "посылочка (Эконом)"
	DeliveryTypeEMS     = "EMS отправление"
)

// Tariff предложение перевозчика. Значение неизменяемое.
type Tariff struct {
	Company    string
	CargoType  string
	TariffType string
	Price      decimal.Decimal
	Days       int

	// true, если цифра спрогнозирована, а не получена от перевозчика
	IsPriceRestored bool
	IsTimeRestored  bool

	SourceURL string
}

func (t Tariff) Validate() error {
	if t.Price.IsNegative() {
		return fmt.Errorf("%w: tariff price must be non-negative", ErrValidation)
	}
	if t.Days <= 0 {
		return fmt.Errorf("%w: tariff days must be positive", ErrValidation)
	}
	return nil
}

func (t Tariff) IsRestored() bool {
	return t.IsPriceRestored || t.IsTimeRestored
}

// NormalizeDeliveryType приводит название тарифа к одной из трёх категорий хранилища.
func NormalizeDeliveryType(tariffType string) string {
	lower := strings.ToLower(tariffType)
	switch {
	case strings.Contains(lower, "экспресс"):
		return DeliveryTypeExpress
	case strings.Contains(lower, "эконом"), strings.Contains(lower, "стандарт"):
		return DeliveryTypeEconomy
	case strings.Contains(lower, "ems"):
		return DeliveryTypeEMS
	default:
		return DeliveryTypeEconomy
	}
}
