package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/SergeyBogomolovv/delivio/pkg/trm"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	AllOrders(ctx context.Context) ([]entities.Order, error)

	// LockOrder должен вызываться внутри транзакции
	LockOrder(ctx context.Context, id int64) (entities.Order, error)
	MarkCompleted(ctx context.Context, id int64) error
}

// OrderStore единственный владелец списка заказов в памяти.
// Список отражает хранилище: новые заказы первыми.
type OrderStore struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo

	mu     sync.RWMutex
	orders []entities.Order
}

func NewOrderStore(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *OrderStore {
	return &OrderStore{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		orders:    []entities.Order{},
	}
}

// Start загружает заказы из хранилища при старте приложения.
func (s *OrderStore) Start(ctx context.Context) error {
	return s.Reload(ctx)
}

// Append сохраняет заказ и только после этого показывает его в списке.
func (s *OrderStore) Append(ctx context.Context, order entities.Order) (entities.Order, error) {
	if !order.State.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown order state %q", entities.ErrValidation, order.State)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.repo.InsertOrder(ctx, order)
	if err != nil {
		s.logger.Error("failed to insert order", slog.String("city", order.City), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}

	s.orders = slices.Insert(s.orders, 0, saved)
	s.logger.Debug("order appended", slog.Int64("id", saved.ID))
	return saved, nil
}

// Complete переводит активный заказ в историю. Запись выполняется до изменения списка.
func (s *OrderStore) Complete(ctx context.Context, id int64) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if s.orders[idx].IsFinished() {
		return entities.Order{}, entities.ErrOrderAlreadyFinished
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		stored, err := s.repo.LockOrder(ctx, id)
		if err != nil {
			return err
		}
		if stored.IsFinished() {
			return entities.ErrOrderAlreadyFinished
		}
		return s.repo.MarkCompleted(ctx, id)
	})

	switch {
	case errors.Is(err, entities.ErrOrderAlreadyFinished):
		// хранилище уже содержит завершённый заказ, выравниваем список
		s.orders[idx].State = entities.OrderStateFinished
		return entities.Order{}, err
	case errors.Is(err, entities.ErrOrderNotFound):
		return entities.Order{}, err
	case err != nil:
		s.logger.Error("failed to complete order", slog.Int64("id", id), slog.Any("error", err))
		return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}

	if err := s.orders[idx].Finish(); err != nil {
		return entities.Order{}, err
	}
	s.logger.Debug("order completed", slog.Int64("id", id))
	return s.orders[idx], nil
}

// ActiveOrders активные заказы, новые первыми.
func (s *OrderStore) ActiveOrders() []entities.Order {
	return s.filter(func(o entities.Order) bool { return !o.IsFinished() })
}

// FinishedOrders история заказов с применённой стратегией.
func (s *OrderStore) FinishedOrders(st strategy.Strategy) []entities.Order {
	return strategy.Orders(s.filter(entities.Order.IsFinished), st)
}

// CurrentOrder последний созданный активный заказ.
func (s *OrderStore) CurrentOrder() (entities.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if !o.IsFinished() {
			return o, true
		}
	}
	return entities.Order{}, false
}

func (s *OrderStore) Get(id int64) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return s.orders[idx], nil
}

// Reload полностью заменяет список содержимым хранилища.
// При ошибке список остаётся прежним.
// Чтение и замена выполняются под одной блокировкой, чтобы не потерять
// параллельные Append и Complete.
func (s *OrderStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.repo.AllOrders(ctx)
	if err != nil {
		s.logger.Error("failed to reload orders", slog.Any("error", err))
		return fmt.Errorf("%w: %w", entities.ErrPersistence, err)
	}
	s.orders = orders

	s.logger.Info("orders reloaded", slog.Int("count", len(orders)))
	return nil
}

func (s *OrderStore) filter(keep func(entities.Order) bool) []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s *OrderStore) indexOf(id int64) int {
	return slices.IndexFunc(s.orders, func(o entities.Order) bool { return o.ID == id })
}
