package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// InsertOrder сохраняет заказ и возвращает его с присвоенными id и created_at.
func (r *postgresRepo) InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("deliveries").
		Columns(
			"company", "delivery_type", "tariff_type", "cargo_type", "weight", "size",
			"town_from", "town_to", "price", "delivery_time", "is_price_restored",
			"is_time_restored", "source_url", "is_completed",
		).
		Values(
			o.Tariff.Company, entities.NormalizeDeliveryType(o.Tariff.TariffType), o.Tariff.TariffType,
			o.Tariff.CargoType, o.WeightKg, o.Size, o.FromCity, o.City, o.Tariff.Price, o.Tariff.Days,
			o.Tariff.IsPriceRestored, o.Tariff.IsTimeRestored, o.Tariff.SourceURL, o.IsFinished(),
		).
		Suffix("RETURNING id, created_at").
		MustSql()

	var row inserted
	if err := sqlx.GetContext(ctx, r.conn(ctx), &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	o.ID = row.ID
	o.CreatedAt = row.CreatedAt
	return o, nil
}

// AllOrders возвращает все заказы, новые первыми.
func (r *postgresRepo) AllOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(deliveryColumns...).
		From("deliveries").
		OrderBy("created_at DESC", "id DESC").
		MustSql()

	var rows []Delivery
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, DeliveryToEntity(row))
	}
	return orders, nil
}

// LockOrder блокирует строку заказа до конца транзакции и возвращает её.
func (r *postgresRepo) LockOrder(ctx context.Context, id int64) (entities.Order, error) {
	query, args := r.qb.Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var row Delivery
	err := sqlx.GetContext(ctx, r.conn(ctx), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}
	return DeliveryToEntity(row), nil
}

// MarkCompleted переводит заказ в историю по его id.
func (r *postgresRepo) MarkCompleted(ctx context.Context, id int64) error {
	query, args := r.qb.Update("deliveries").
		Set("is_completed", true).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark order completed: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) SaveMessage(ctx context.Context, m entities.Message) (entities.Message, error) {
	query, args := r.qb.Insert("feedback_messages").
		Columns("text", "sender", "ts").
		Values(m.Text, string(m.From), m.Timestamp).
		Suffix("RETURNING id").
		MustSql()

	if err := sqlx.GetContext(ctx, r.conn(ctx), &m.ID, query, args...); err != nil {
		return entities.Message{}, fmt.Errorf("failed to save message: %w", err)
	}
	return m, nil
}

func (r *postgresRepo) ListMessages(ctx context.Context) ([]entities.Message, error) {
	query, args := r.qb.Select("id", "text", "sender", "ts").
		From("feedback_messages").
		OrderBy("ts ASC", "id ASC").
		MustSql()

	var rows []FeedbackMessage
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select messages: %w", err)
	}

	messages := make([]entities.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, MessageToEntity(row))
	}
	return messages, nil
}

func (r *postgresRepo) conn(ctx context.Context) sqlx.ExtContext {
	return trm.Conn(ctx, r.db)
}
