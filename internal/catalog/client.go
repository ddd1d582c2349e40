package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/entities"
	"github.com/SergeyBogomolovv/delivio/internal/strategy"
	"github.com/shopspring/decimal"
)

const maxResponseSize = 4 << 20

type tariffsRequest struct {
	City     string  `json:"city"`
	Weight   float64 `json:"weight"`
	Strategy string  `json:"strategy"`
}

type tariffDTO struct {
	Company         string          `json:"company"`
	CargoType       string          `json:"cargo_type"`
	TariffType      string          `json:"tariff_type"`
	Price           decimal.Decimal `json:"price"`
	Days            int             `json:"days"`
	IsPriceRestored bool            `json:"is_price_restored"`
	IsTimeRestored  bool            `json:"is_time_restored"`
	SourceURL       string          `json:"source_url"`
}

type tariffsResponse struct {
	City     string          `json:"city"`
	WeightKg float64         `json:"weight_kg"`
	Strategy string          `json:"strategy"`
	AvgPrice decimal.Decimal `json:"avg_price"`
	AvgDays  float64         `json:"avg_days"`
	Tariffs  []tariffDTO     `json:"tariffs"`
}

// Client обращается к бэкенду тарифов. Запрос выполняется один раз, без повторов.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch запрашивает тарифы для маршрута. Сортировка и фильтрация выполняются локально,
// поэтому бэкенд всегда получает стратегию none.
func (c *Client) Fetch(ctx context.Context, q Query) ([]entities.Tariff, error) {
	body, err := json.Marshal(tariffsRequest{
		City:     q.City,
		Weight:   q.WeightKg(),
		Strategy: string(strategy.None),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tariffs", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", entities.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", entities.ErrTransport, res.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %w", entities.ErrTransport, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty response body", entities.ErrTransport)
	}

	var resp tariffsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrFormat, err)
	}

	tariffs := make([]entities.Tariff, 0, len(resp.Tariffs))
	for i, dto := range resp.Tariffs {
		t := entities.Tariff{
			Company:         dto.Company,
			CargoType:       dto.CargoType,
			TariffType:      dto.TariffType,
			Price:           dto.Price,
			Days:            dto.Days,
			IsPriceRestored: dto.IsPriceRestored,
			IsTimeRestored:  dto.IsTimeRestored,
			SourceURL:       dto.SourceURL,
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%w: tariff %d: %v", entities.ErrFormat, i, err)
		}
		tariffs = append(tariffs, t)
	}
	return tariffs, nil
}
