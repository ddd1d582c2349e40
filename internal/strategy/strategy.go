// Package strategy implements the filter/sort policies shared by tariff
// catalogs and order history.
package strategy

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/shopspring/decimal"
)

type Strategy string

const (
	None     Strategy = "none"
	Cheapest Strategy = "cheapest"
	Fastest  Strategy = "fastest"
	Balanced Strategy = "balanced"
	Type1    Strategy = "type1"
	Type2    Strategy = "type2"
	Type3    Strategy = "type3"
)

var all = []Strategy{None, Cheapest, Fastest, Balanced, Type1, Type2, Type3}

var labels = map[Strategy]string{
	None:     "Без фильтра",
	Cheapest: "Самая дешёвая",
	Fastest:  "Самая быстрая",
	Balanced: "Сбалансированная",
	Type1:    "Тип тарифа 1",
	Type2:    "Тип тарифа 2",
	Type3:    "Тип тарифа 3",
}

var typeLabels = map[Strategy]string{
	Type1: entities.TariffTypeLabel1,
	Type2: entities.TariffTypeLabel2,
	Type3: entities.TariffTypeLabel3,
}

// All возвращает стратегии в порядке NONE, CHEAPEST, FASTEST, BALANCED, TYPE1..TYPE3.
func All() []Strategy {
	return slices.Clone(all)
}

// Parse разбирает тег стратегии без учёта регистра. Пустая строка означает None.
func Parse(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	st := Strategy(s)
	if !st.Valid() {
		return None, fmt.Errorf("%w: unknown strategy %q", entities.ErrValidation, s)
	}
	return st, nil
}

func (s Strategy) Valid() bool {
	_, ok := labels[s]
	return ok
}

func (s Strategy) Label() string {
	return labels[s]
}

// Compare сравнивает стратегии по их порядку в All.
func (s Strategy) Compare(other Strategy) int {
	return cmp.Compare(slices.Index(all, s), slices.Index(all, other))
}

// Apply применяет стратегию к списку предложений. Вход не изменяется,
// результат всегда новый срез. Неизвестная стратегия ведёт себя как None.
func Apply[T any](items []T, s Strategy, tariffOf func(T) entities.Tariff) []T {
	out := make([]T, 0, len(items))

	if label, ok := typeLabels[s]; ok {
		for _, it := range items {
			if tariffOf(it).TariffType == label {
				out = append(out, it)
			}
		}
		return out
	}

	out = append(out, items...)
	if len(out) == 0 {
		return out
	}

	switch s {
	case Cheapest:
		slices.SortStableFunc(out, func(a, b T) int {
			return tariffOf(a).Price.Cmp(tariffOf(b).Price)
		})
	case Fastest:
		slices.SortStableFunc(out, func(a, b T) int {
			return cmp.Compare(tariffOf(a).Days, tariffOf(b).Days)
		})
	case Balanced:
		sortBalanced(out, tariffOf)
	}
	return out
}

// Tariffs применяет стратегию к тарифам.
func Tariffs(tariffs []entities.Tariff, s Strategy) []entities.Tariff {
	return Apply(tariffs, s, func(t entities.Tariff) entities.Tariff { return t })
}

// Orders применяет стратегию к заказам через их тариф.
func Orders(orders []entities.Order, s Strategy) []entities.Order {
	return Apply(orders, s, func(o entities.Order) entities.Tariff { return o.Tariff })
}

// sortBalanced сортирует по price/maxPrice + days/maxDays, максимумы берутся по текущему списку.
func sortBalanced[T any](items []T, tariffOf func(T) entities.Tariff) {
	maxPrice := decimal.Zero
	maxDays := 0
	for _, it := range items {
		t := tariffOf(it)
		maxPrice = decimal.Max(maxPrice, t.Price)
		maxDays = max(maxDays, t.Days)
	}

	scores := make([]decimal.Decimal, len(items))
	idx := make([]int, len(items))
	for i, it := range items {
		idx[i] = i
		scores[i] = balancedScore(tariffOf(it), maxPrice, maxDays)
	}

	slices.SortStableFunc(idx, func(a, b int) int {
		return scores[a].Cmp(scores[b])
	})

	sorted := make([]T, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}

func balancedScore(t entities.Tariff, maxPrice decimal.Decimal, maxDays int) decimal.Decimal {
	score := decimal.Zero
	if maxPrice.IsPositive() {
		score = score.Add(t.Price.Div(maxPrice))
	}
	if maxDays > 0 {
		score = score.Add(decimal.NewFromInt(int64(t.Days)).Div(decimal.NewFromInt(int64(maxDays))))
	}
	return score
}

// Averages средняя цена и средний срок по списку тарифов.
func Averages(tariffs []entities.Tariff) (decimal.Decimal, float64) {
	if len(tariffs) == 0 {
		return decimal.Zero, 0
	}

	sum := decimal.Zero
	days := 0
	for _, t := range tariffs {
		sum = sum.Add(t.Price)
		days += t.Days
	}

	n := len(tariffs)
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2), float64(days) / float64(n)
}
