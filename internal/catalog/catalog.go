// Package catalog retrieves tariff offers for a route and keeps the
// retrieved snapshots so that strategies can be re-applied and a tariff
// picked for a new order.
package catalog

import (
	"fmt"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TariffCatalog снимок тарифов, полученных на один запрос. После создания не меняется.
type TariffCatalog struct {
	ID        uuid.UUID
	Query     Query
	Tariffs   []entities.Tariff
	CreatedAt time.Time
}

// View каталог после применения стратегии.
type View struct {
	CatalogID uuid.UUID
	Query     Query
	Strategy  strategy.Strategy
	AvgPrice  decimal.Decimal
	AvgDays   float64
	Tariffs   []entities.Tariff
}

func New(q Query, tariffs []entities.Tariff, createdAt time.Time) TariffCatalog {
	if tariffs == nil {
		tariffs = []entities.Tariff{}
	}
	return TariffCatalog{
		ID:        uuid.New(),
		Query:     q,
		Tariffs:   slices.Clone(tariffs),
		CreatedAt: createdAt,
	}
}

// Apply применяет стратегию, средние пересчитываются по показанному списку.
func (c TariffCatalog) Apply(s strategy.Strategy) View {
	tariffs := strategy.Tariffs(c.Tariffs, s)
	avgPrice, avgDays := strategy.Averages(tariffs)
	return View{
		CatalogID: c.ID,
		Query:     c.Query,
		Strategy:  s,
		AvgPrice:  avgPrice,
		AvgDays:   avgDays,
		Tariffs:   tariffs,
	}
}

// Tariff возвращает тариф по индексу в исходном порядке каталога.
func (c TariffCatalog) Tariff(i int) (entities.Tariff, error) {
	if i < 0 || i >= len(c.Tariffs) {
		return entities.Tariff{}, fmt.Errorf("%w: index %d of %d", entities.ErrTariffNotFound, i, len(c.Tariffs))
	}
	return c.Tariffs[i], nil
}

func (c TariffCatalog) Marshal() ([]byte, error) {
	return entities.Marshal(c)
}

func (c *TariffCatalog) Unmarshal(data []byte) error {
	return entities.Unmarshal(data, c)
}

// Tariff возвращает тариф по индексу в отображённом порядке.
func (v View) Tariff(i int) (entities.Tariff, error) {
	if i < 0 || i >= len(v.Tariffs) {
		return entities.Tariff{}, fmt.Errorf("%w: index %d of %d", entities.ErrTariffNotFound, i, len(v.Tariffs))
	}
	return v.Tariffs[i], nil
}
