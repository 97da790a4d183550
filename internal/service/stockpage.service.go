package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"traderdash/internal/domain"
	"traderdash/internal/logger"
	"traderdash/internal/repository"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// chartTimeframe is the historical window the detail page charts.
const chartTimeframe = "1Y"

// StockPage is everything the detail page renders for one symbol.
type StockPage struct {
	Symbol  string                `json:"symbol"`
	Quote   *domain.Quote         `json:"quote"`
	Profile domain.CompanyProfile `json:"profile"`
	Candles []domain.CandlePoint  `json:"candles"`
	Volumes []domain.VolumePoint  `json:"volumes"`
	Summary *SeriesSummary        `json:"summary,omitempty"`
}

// SeriesSummary aggregates the charted window.
type SeriesSummary struct {
	RangeHigh     float64 `json:"rangeHigh"`
	RangeLow      float64 `json:"rangeLow"`
	AverageVolume float64 `json:"averageVolume"`
	TradingDays   int     `json:"tradingDays"`
}

type StockPageService interface {
	Assemble(ctx context.Context, symbol string) (*StockPage, error)
}

type stockPageServiceHandler struct {
	QuoteRepository      repository.QuoteRepository
	MarketDataRepository repository.MarketDataRepository
}

func NewStockPageService(
	quoteRepository repository.QuoteRepository,
	marketDataRepository repository.MarketDataRepository,
) StockPageService {
	return &stockPageServiceHandler{
		QuoteRepository:      quoteRepository,
		MarketDataRepository: marketDataRepository,
	}
}

// Assemble runs the three fetches concurrently. The profile and history
// fetches degrade to placeholders on failure; a quote failure fails the
// whole page.
func (h *stockPageServiceHandler) Assemble(ctx context.Context, symbol string) (*StockPage, error) {
	symbol = strings.ToUpper(symbol)
	log := logger.FromContext(ctx)

	var (
		quote   *domain.Quote
		profile domain.CompanyProfile
		candles []domain.Candle
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := h.QuoteRepository.Get(symbol)
		if err != nil {
			return fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
		}
		quote = q
		return nil
	})
	g.Go(func() error {
		p, err := h.MarketDataRepository.CompanyOverview(symbol)
		if err != nil {
			log.Warnf("company profile fetch failed for %s, using placeholder: %v", symbol, err)
			profile = domain.FallbackProfile(symbol)
			return nil
		}
		profile = *p
		return nil
	})
	g.Go(func() error {
		c, err := h.MarketDataRepository.HistoricalPrices(symbol, chartTimeframe)
		if err != nil {
			log.Warnf("historical price fetch failed for %s, chart will be empty: %v", symbol, err)
			candles = []domain.Candle{}
			return nil
		}
		candles = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &StockPage{
		Symbol:  symbol,
		Quote:   quote,
		Profile: profile,
		Candles: make([]domain.CandlePoint, 0, len(candles)),
		Volumes: make([]domain.VolumePoint, 0, len(candles)),
	}

	for _, candle := range candles {
		day := normalizeChartDate(ctx, candle.Day())

		page.Candles = append(page.Candles, domain.CandlePoint{
			Time:  day,
			Open:  candle.Open,
			High:  candle.High,
			Low:   candle.Low,
			Close: candle.Close,
		})

		color := domain.VolumeDownColor
		if candle.Close >= candle.Open {
			color = domain.VolumeUpColor
		}
		page.Volumes = append(page.Volumes, domain.VolumePoint{
			Time:  day,
			Value: candle.Volume,
			Color: color,
		})
	}

	page.Summary = summarizeSeries(candles)

	return page, nil
}

// chartDateLayouts are the formats the market-data origin has been seen
// emitting.
var chartDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05.999Z07:00",
	"2006-01-02 15:04:05",
}

// normalizeChartDate reformats a date value to YYYY-MM-DD. A value that
// does not parse is passed through unchanged - logged, never fatal.
func normalizeChartDate(ctx context.Context, value string) string {
	for _, layout := range chartDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	logger.FromContext(ctx).Warnf("invalid chart date %q, passing through unchanged", value)
	return value
}

func summarizeSeries(candles []domain.Candle) *SeriesSummary {
	if len(candles) == 0 {
		return nil
	}

	closes := make([]float64, 0, len(candles))
	volumes := make([]float64, 0, len(candles))
	for _, c := range candles {
		closes = append(closes, c.Close)
		volumes = append(volumes, c.Volume)
	}

	high, err := stats.Max(closes)
	if err != nil {
		return nil
	}
	low, err := stats.Min(closes)
	if err != nil {
		return nil
	}
	avgVolume, err := stats.Mean(volumes)
	if err != nil {
		return nil
	}

	return &SeriesSummary{
		RangeHigh:     high,
		RangeLow:      low,
		AverageVolume: avgVolume,
		TradingDays:   len(candles),
	}
}
