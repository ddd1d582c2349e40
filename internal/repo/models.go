package repo

import (
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/shopspring/decimal"
)

var deliveryColumns = []string{
	"id", "company", "delivery_type", "tariff_type", "cargo_type", "weight", "size",
	"town_from", "town_to", "price", "delivery_time", "is_price_restored",
	"is_time_restored", "source_url", "is_completed", "created_at",
}

type Delivery struct {
	ID              int64           `db:"id"`
	Company         string          `db:"company"`
	DeliveryType    string          `db:"delivery_type"`
	TariffType      string          `db:"tariff_type"`
	CargoType       string          `db:"cargo_type"`
	Weight          float64         `db:"weight"`
	Size            string          `db:"size"`
	TownFrom        string          `db:"town_from"`
	TownTo          string          `db:"town_to"`
	Price           decimal.Decimal `db:"price"`
	DeliveryTime    int             `db:"delivery_time"`
	IsPriceRestored bool            `db:"is_price_restored"`
	IsTimeRestored  bool            `db:"is_time_restored"`
	SourceURL       string          `db:"source_url"`
	IsCompleted     bool            `db:"is_completed"`
	CreatedAt       time.Time       `db:"created_at"`
}

type inserted struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type FeedbackMessage struct {
	ID     int64     `db:"id"`
	Text   string    `db:"text"`
	Sender string    `db:"sender"`
	TS     time.Time `db:"ts"`
}

func DeliveryToEntity(d Delivery) entities.Order {
	state := entities.OrderStateActive
	if d.IsCompleted {
		state = entities.OrderStateFinished
	}

	return entities.Order{
		ID:       d.ID,
		FromCity: d.TownFrom,
		City:     d.TownTo,
		WeightKg: d.Weight,
		Size:     d.Size,
		Tariff: entities.Tariff{
			Company:         d.Company,
			CargoType:       d.CargoType,
			TariffType:      d.TariffType,
			Price:           d.Price,
			Days:            d.DeliveryTime,
			IsPriceRestored: d.IsPriceRestored,
			IsTimeRestored:  d.IsTimeRestored,
			SourceURL:       d.SourceURL,
		},
		State:     state,
		CreatedAt: d.CreatedAt,
	}
}

func MessageToEntity(m FeedbackMessage) entities.Message {
	return entities.Message{
		ID:        m.ID,
		Text:      m.Text,
		From:      entities.Sender(m.Sender),
		Timestamp: m.TS,
	}
}
