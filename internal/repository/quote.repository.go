package repository

import (
	"fmt"

	"traderdash/internal/domain"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
)

// QuoteRepository fetches a realtime quote for one symbol. A failure here
// is fatal to the stock page - there is no placeholder quote.
type QuoteRepository interface {
	Get(symbol string) (*domain.Quote, error)
}

type yahooQuoteRepositoryHandler struct{}

func NewQuoteRepository() QuoteRepository {
	return yahooQuoteRepositoryHandler{}
}

func (h yahooQuoteRepositoryHandler) Get(symbol string) (*domain.Quote, error) {
	// equity carries market cap on top of the base quote fields
	q, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote found for %s", symbol)
	}

	return mapQuote(q), nil
}

func mapQuote(q *finance.Equity) *domain.Quote {
	return &domain.Quote{
		Symbol:           q.Symbol,
		ShortName:        q.ShortName,
		Currency:         q.CurrencyID,
		Price:            decimal.NewFromFloat(q.RegularMarketPrice),
		PreviousClose:    decimal.NewFromFloat(q.RegularMarketPreviousClose),
		Open:             decimal.NewFromFloat(q.RegularMarketOpen),
		DayHigh:          decimal.NewFromFloat(q.RegularMarketDayHigh),
		DayLow:           decimal.NewFromFloat(q.RegularMarketDayLow),
		FiftyTwoWeekHigh: decimal.NewFromFloat(q.FiftyTwoWeekHigh),
		FiftyTwoWeekLow:  decimal.NewFromFloat(q.FiftyTwoWeekLow),
		Volume:           int64(q.RegularMarketVolume),
		MarketCap:        q.MarketCap,
	}
}
