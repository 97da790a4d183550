package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"traderdash/internal/domain"
)

// MarketDataRepository wraps the dashboard's market-data origin: ticker
// search, company overviews, and historical candles.
type MarketDataRepository interface {
	Search(query string) ([]domain.SearchResult, error)
	CompanyOverview(symbol string) (*domain.CompanyProfile, error)
	HistoricalPrices(symbol string, timeframe string) ([]domain.Candle, error)
}

type marketDataRepositoryHandler struct {
	BaseURL    string
	HttpClient *http.Client
}

func NewMarketDataRepository(baseURL string) MarketDataRepository {
	return &marketDataRepositoryHandler{
		BaseURL:    baseURL,
		HttpClient: http.DefaultClient,
	}
}

func (h *marketDataRepositoryHandler) get(path string, params url.Values, out interface{}) error {
	fullURL := fmt.Sprintf("%s%s?%s", h.BaseURL, path, params.Encode())
	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	response, err := h.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("market data request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return fmt.Errorf("market data request to %s failed with status code %d: %s", path, response.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse market data response from %s: %w", path, err)
	}

	return nil
}

func (h *marketDataRepositoryHandler) Search(query string) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	results := []domain.SearchResult{}
	if err := h.get("/api/stocks/search", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (h *marketDataRepositoryHandler) CompanyOverview(symbol string) (*domain.CompanyProfile, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	profile := domain.CompanyProfile{}
	if err := h.get("/api/company-overview", params, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (h *marketDataRepositoryHandler) HistoricalPrices(symbol string, timeframe string) ([]domain.Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("timeframe", timeframe)

	candles := []domain.Candle{}
	if err := h.get("/api/historical-price", params, &candles); err != nil {
		return nil, err
	}
	return candles, nil
}
