package handler

import (
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/catalog"
	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/shopspring/decimal"
)

// SearchRequest параметры поиска тарифов
type SearchRequest struct {
	FromCity string  `json:"from_city" validate:"max=100"`
	City     string  `json:"city" validate:"required,max=100"`
	Weight   float64 `json:"weight" validate:"gt=0"`
	Unit     string  `json:"unit" validate:"omitempty,oneof=g kg" enums:"g,kg"`
	Strategy string  `json:"strategy"`
}

// CreateOrderRequest выбор тарифа из полученного каталога
type CreateOrderRequest struct {
	CatalogID   string `json:"catalog_id" validate:"required,uuid"`
	Strategy    string `json:"strategy"`
	TariffIndex *int   `json:"tariff_index" validate:"required,gte=0"`
}

// SendMessageRequest сообщение пользователя в поддержку
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// Reply ответ оператора из Kafka
type Reply struct {
	Text      string    `json:"text" validate:"required,max=2000"`
	From      string    `json:"from" validate:"required,eq=operator"`
	Timestamp time.Time `json:"timestamp"`
}

// Tariff предложение перевозчика
type Tariff struct {
	Company         string          `json:"company"`
	CargoType       string          `json:"cargo_type"`
	TariffType      string          `json:"tariff_type"`
	Price           decimal.Decimal `json:"price" swaggertype:"string" example:"990.50"`
	Days            int             `json:"days"`
	IsPriceRestored bool            `json:"is_price_restored"`
	IsTimeRestored  bool            `json:"is_time_restored"`
	SourceURL       string          `json:"source_url,omitempty"`
}

// CatalogView каталог тарифов после применения стратегии
type CatalogView struct {
	CatalogID string          `json:"catalog_id"`
	FromCity  string          `json:"from_city"`
	City      string          `json:"city"`
	WeightKg  float64         `json:"weight_kg"`
	Strategy  string          `json:"strategy"`
	AvgPrice  decimal.Decimal `json:"avg_price" swaggertype:"string" example:"845.25"`
	AvgDays   float64         `json:"avg_days"`
	Tariffs   []Tariff        `json:"tariffs"`
}

// Order заказ пользователя
type Order struct {
	ID        int64     `json:"id"`
	FromCity  string    `json:"from_city"`
	City      string    `json:"city"`
	WeightKg  float64   `json:"weight_kg"`
	Size      string    `json:"size"`
	State     string    `json:"state" enums:"active,finished"`
	Tariff    Tariff    `json:"tariff"`
	CreatedAt time.Time `json:"created_at"`
}

// Message сообщение переписки с поддержкой
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	From      string    `json:"from" enums:"user,operator"`
	Timestamp time.Time `json:"timestamp"`
}

// StrategyInfo доступная стратегия сортировки
type StrategyInfo struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

func TariffEntityToJSON(t entities.Tariff) Tariff {
	return Tariff{
		Company:         t.Company,
		CargoType:       t.CargoType,
		TariffType:      t.TariffType,
		Price:           t.Price,
		Days:            t.Days,
		IsPriceRestored: t.IsPriceRestored,
		IsTimeRestored:  t.IsTimeRestored,
		SourceURL:       t.SourceURL,
	}
}

func TariffsEntityToJSON(tariffs []entities.Tariff) []Tariff {
	out := make([]Tariff, 0, len(tariffs))
	for _, t := range tariffs {
		out = append(out, TariffEntityToJSON(t))
	}
	return out
}

func ViewToJSON(v catalog.View) CatalogView {
	return CatalogView{
		CatalogID: v.CatalogID.String(),
		FromCity:  v.Query.FromCity,
		City:      v.Query.City,
		WeightKg:  v.Query.WeightKg(),
		Strategy:  string(v.Strategy),
		AvgPrice:  v.AvgPrice,
		AvgDays:   v.AvgDays,
		Tariffs:   TariffsEntityToJSON(v.Tariffs),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:        o.ID,
		FromCity:  o.FromCity,
		City:      o.City,
		WeightKg:  o.WeightKg,
		Size:      o.Size,
		State:     string(o.State),
		Tariff:    TariffEntityToJSON(o.Tariff),
		CreatedAt: o.CreatedAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

func MessageEntityToJSON(m entities.Message) Message {
	return Message{
		ID:        m.ID,
		Text:      m.Text,
		From:      string(m.From),
		Timestamp: m.Timestamp,
	}
}

func MessagesEntityToJSON(messages []entities.Message) []Message {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, MessageEntityToJSON(m))
	}
	return out
}

func ReplyJSONToEntity(r Reply) entities.Message {
	return entities.Message{
		Text:      r.Text,
		From:      entities.SenderOperator,
		Timestamp: r.Timestamp,
	}
}

func SearchJSONToQuery(r SearchRequest, st strategy.Strategy) catalog.Query {
	return catalog.Query{
		FromCity: r.FromCity,
		City:     r.City,
		Weight:   r.Weight,
		Unit:     catalog.Unit(r.Unit),
		Strategy: st,
	}
}

func StrategiesToJSON(all []strategy.Strategy) []StrategyInfo {
	out := make([]StrategyInfo, 0, len(all))
	for _, s := range all {
		out = append(out, StrategyInfo{Tag: string(s), Label: s.Label()})
	}
	return out
}
