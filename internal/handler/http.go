package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/delivio/internal/catalog"
	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/SergeyBogomolovv/delivio/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CatalogService interface {
	Search(ctx context.Context, q catalog.Query) (catalog.View, error)
	View(id uuid.UUID, st strategy.Strategy) (catalog.View, error)
}

type OrderStore interface {
	Append(ctx context.Context, order entities.Order) (entities.Order, error)
	Complete(ctx context.Context, id int64) (entities.Order, error)
	ActiveOrders() []entities.Order
	FinishedOrders(st strategy.Strategy) []entities.Order
	CurrentOrder() (entities.Order, bool)
	Get(id int64) (entities.Order, error)
	Reload(ctx context.Context) error
}

type FeedbackService interface {
	Send(ctx context.Context, text string) (entities.Message, error)
	Messages(ctx context.Context) ([]entities.Message, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalogs CatalogService
	orders   OrderStore
	feedback FeedbackService
}

func NewHTTPHandler(logger *slog.Logger, catalogs CatalogService, orders OrderStore, feedback FeedbackService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		catalogs: catalogs,
		orders:   orders,
		feedback: feedback,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/strategies", h.ListStrategies)

	r.Route("/tariffs", func(r chi.Router) {
		r.Post("/search", h.SearchTariffs)
		r.Get("/{catalog_id}", h.GetCatalog)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/active", h.ActiveOrders)
		r.Get("/current", h.CurrentOrder)
		r.Get("/history", h.OrderHistory)
		r.Post("/reload", h.ReloadOrders)
		r.Get("/{id}", h.GetOrder)
		r.Post("/{id}/complete", h.CompleteOrder)
	})

	r.Route("/feedback", func(r chi.Router) {
		r.Get("/messages", h.ListMessages)
		r.Post("/messages", h.SendMessage)
	})
}

// ListStrategies возвращает доступные стратегии.
// @Summary      Список стратегий
// @Tags         strategies
// @Success      200  {array}  StrategyInfo
// @Router       /strategies [get]
func (h *HTTPHandler) ListStrategies(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, StrategiesToJSON(strategy.All()), http.StatusOK)
}

// SearchTariffs запрашивает тарифы у бэкенда и сохраняет каталог.
// @Summary      Поиск тарифов
// @Description  Получает тарифы для маршрута и веса, применяет стратегию
// @Tags         tariffs
// @Accept       json
// @Param        request  body      SearchRequest  true  "Параметры поиска"
// @Success      200  {object}  CatalogView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502  {object}  utils.ErrorResponse "Бэкенд тарифов недоступен"
// @Router       /tariffs/search [post]
func (h *HTTPHandler) SearchTariffs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SearchRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	st, err := strategy.Parse(req.Strategy)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.catalogs.Search(ctx, SearchJSONToQuery(req, st))
	tariffSearches.WithLabelValues(searchResult(err)).Inc()
	if err != nil {
		h.writeError(ctx, w, err, "failed to search tariffs")
		return
	}

	utils.WriteJSON(w, ViewToJSON(view), http.StatusOK)
}

// GetCatalog повторно применяет стратегию к полученному каталогу.
// @Summary      Каталог тарифов
// @Tags         tariffs
// @Param        catalog_id  path   string  true   "Идентификатор каталога"
// @Param        strategy    query  string  false  "Стратегия"
// @Success      200  {object}  CatalogView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Каталог не найден или устарел"
// @Router       /tariffs/{catalog_id} [get]
func (h *HTTPHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "catalog_id"))
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	st, err := strategy.Parse(r.URL.Query().Get("strategy"))
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.catalogs.View(id, st)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to get catalog")
		return
	}

	utils.WriteJSON(w, ViewToJSON(view), http.StatusOK)
}

// CreateOrder оформляет заказ по тарифу из каталога.
// @Summary      Создать заказ
// @Description  Индекс тарифа относится к списку после применения стратегии
// @Tags         orders
// @Accept       json
// @Param        request  body      CreateOrderRequest  true  "Выбранный тариф"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Каталог или тариф не найден"
// @Failure      500  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	st, err := strategy.Parse(req.Strategy)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.catalogs.View(uuid.MustParse(req.CatalogID), st)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get catalog")
		return
	}
	tariff, err := view.Tariff(*req.TariffIndex)
	if err != nil {
		h.writeError(ctx, w, err, "failed to pick tariff")
		return
	}

	order, err := entities.NewOrder(view.Query.FromCity, view.Query.City, view.Query.WeightKg(), tariff)
	if err != nil {
		h.writeError(ctx, w, err, "failed to build order")
		return
	}

	order, err = h.orders.Append(ctx, order)
	if err != nil {
		h.writeError(ctx, w, err, "failed to append order")
		return
	}
	ordersCreated.Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ActiveOrders возвращает активные заказы.
// @Summary      Активные заказы
// @Tags         orders
// @Success      200  {array}  Order
// @Router       /orders/active [get]
func (h *HTTPHandler) ActiveOrders(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, OrdersEntityToJSON(h.orders.ActiveOrders()), http.StatusOK)
}

// CurrentOrder возвращает последний оформленный активный заказ.
// @Summary      Текущий заказ
// @Tags         orders
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Активных заказов нет"
// @Router       /orders/current [get]
func (h *HTTPHandler) CurrentOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.orders.CurrentOrder()
	if !ok {
		utils.WriteError(w, "no active orders", http.StatusNotFound)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// OrderHistory возвращает завершённые заказы.
// @Summary      История заказов
// @Tags         orders
// @Param        strategy  query  string  false  "Стратегия"
// @Success      200  {array}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /orders/history [get]
func (h *HTTPHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	st, err := strategy.Parse(r.URL.Query().Get("strategy"))
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(h.orders.FinishedOrders(st)), http.StatusOK)
}

// GetOrder возвращает заказ по id.
// @Summary      Получить заказ
// @Tags         orders
// @Param        id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Get(id)
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to get order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CompleteOrder переводит заказ в историю.
// @Summary      Завершить заказ
// @Tags         orders
// @Param        id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже завершён"
// @Failure      500  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/{id}/complete [post]
func (h *HTTPHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := orderID(r)
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Complete(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "failed to complete order")
		return
	}
	ordersCompleted.Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ReloadOrders перечитывает заказы из хранилища.
// @Summary      Перечитать заказы
// @Tags         orders
// @Success      200  {array}  Order
// @Failure      500  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /orders/reload [post]
func (h *HTTPHandler) ReloadOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Reload(r.Context()); err != nil {
		h.writeError(r.Context(), w, err, "failed to reload orders")
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(h.orders.ActiveOrders()), http.StatusOK)
}

// ListMessages возвращает переписку с поддержкой.
// @Summary      Сообщения поддержки
// @Tags         feedback
// @Success      200  {array}  Message
// @Failure      500  {object}  utils.ErrorResponse "Ошибка хранилища"
// @Router       /feedback/messages [get]
func (h *HTTPHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.feedback.Messages(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err, "failed to list messages")
		return
	}
	utils.WriteJSON(w, MessagesEntityToJSON(messages), http.StatusOK)
}

// SendMessage отправляет сообщение в поддержку.
// @Summary      Написать в поддержку
// @Tags         feedback
// @Accept       json
// @Param        request  body      SendMessageRequest  true  "Сообщение"
// @Success      201  {object}  Message
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      502  {object}  utils.ErrorResponse "Сообщение сохранено, но не доставлено"
// @Router       /feedback/messages [post]
func (h *HTTPHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SendMessageRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	msg, err := h.feedback.Send(ctx, req.Text)
	if err != nil {
		h.writeError(ctx, w, err, "failed to send message")
		return
	}
	utils.WriteJSON(w, MessageEntityToJSON(msg), http.StatusCreated)
}

// writeError отвечает одноразовым уведомлением об ошибке. Повторов нет.
func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrValidation):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrCatalogNotFound),
		errors.Is(err, entities.ErrTariffNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderAlreadyFinished):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrTransport):
		utils.WriteError(w, "upstream service is unavailable", http.StatusBadGateway)
	case errors.Is(err, entities.ErrFormat):
		utils.WriteError(w, "upstream service returned malformed response", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func orderID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: order id must be a positive integer", entities.ErrValidation)
	}
	return id, nil
}

func searchResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrValidation):
		return "invalid"
	case errors.Is(err, entities.ErrTransport):
		return "transport_error"
	case errors.Is(err, entities.ErrFormat):
		return "format_error"
	default:
		return "error"
	}
}
