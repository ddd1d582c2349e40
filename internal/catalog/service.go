package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/google/uuid"
)

type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]entities.Tariff, error)
}

// Sessions хранит полученные каталоги между запросами клиента
type Sessions interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Result завершение асинхронного запроса каталога
type Result struct {
	View View
	Err  error
}

type Service struct {
	logger   *slog.Logger
	fetcher  Fetcher
	sessions Sessions
	now      func() time.Time
}

func NewService(logger *slog.Logger, fetcher Fetcher, sessions Sessions) *Service {
	return &Service{
		logger:   logger.With(slog.String("service", "catalog")),
		fetcher:  fetcher,
		sessions: sessions,
		now:      time.Now,
	}
}

// Search проверяет запрос, получает тарифы и сохраняет каталог в сессии.
func (s *Service) Search(ctx context.Context, q Query) (View, error) {
	if err := q.Validate(); err != nil {
		return View{}, err
	}
	q = q.Normalize()

	tariffs, err := s.fetcher.Fetch(ctx, q)
	if err != nil {
		s.logger.Error("failed to fetch tariffs", slog.String("city", q.City), slog.Any("error", err))
		return View{}, err
	}

	c := New(q, tariffs, s.now())
	data, err := c.Marshal()
	if err != nil {
		return View{}, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	s.sessions.Set(c.ID.String(), data)

	s.logger.Debug("catalog stored", slog.String("catalog_id", c.ID.String()), slog.Int("tariffs", len(c.Tariffs)))
	return c.Apply(q.Strategy), nil
}

// Request асинхронный вариант Search. Канал получает ровно один результат.
func (s *Service) Request(ctx context.Context, q Query) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		view, err := s.Search(ctx, q)
		out <- Result{View: view, Err: err}
	}()
	return out
}

func (s *Service) Get(id uuid.UUID) (TariffCatalog, error) {
	data, ok := s.sessions.Get(id.String())
	if !ok {
		return TariffCatalog{}, entities.ErrCatalogNotFound
	}

	var c TariffCatalog
	if err := c.Unmarshal(data); err != nil {
		s.logger.Error("failed to unmarshal catalog", slog.String("catalog_id", id.String()), slog.Any("error", err))
		return TariffCatalog{}, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return c, nil
}

// View повторно применяет стратегию к сохранённому каталогу.
func (s *Service) View(id uuid.UUID, st strategy.Strategy) (View, error) {
	c, err := s.Get(id)
	if err != nil {
		return View{}, err
	}
	return c.Apply(st), nil
}
