package domain

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// MarketBasket is a named, fixed list of ticker symbols. The "custom"
// basket is a sentinel - its tickers come from user input, never from here.
type MarketBasket struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Tickers     []string `json:"tickers"`
}

const CustomBasketID = "custom"

// NIFTY 50 constituents (as of 2024)
var nifty50Stocks = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
	"HINDUNILVR.NS", "ITC.NS", "SBIN.NS", "BHARTIARTL.NS", "KOTAKBANK.NS",
	"LT.NS", "AXISBANK.NS", "ASIANPAINT.NS", "MARUTI.NS", "TITAN.NS",
	"SUNPHARMA.NS", "BAJFINANCE.NS", "WIPRO.NS", "ULTRACEMCO.NS", "ONGC.NS",
	"NTPC.NS", "NESTLEIND.NS", "TATAMOTORS.NS", "M&M.NS", "HCLTECH.NS",
	"POWERGRID.NS", "ADANIENT.NS", "TATASTEEL.NS", "ADANIPORTS.NS",
	"BAJAJFINSV.NS", "COALINDIA.NS", "JSWSTEEL.NS", "TECHM.NS", "HDFCLIFE.NS",
	"GRASIM.NS", "INDUSINDBK.NS", "DIVISLAB.NS", "DRREDDY.NS", "CIPLA.NS",
	"BPCL.NS", "SBILIFE.NS", "BRITANNIA.NS", "EICHERMOT.NS", "APOLLOHOSP.NS",
	"TATACONSUM.NS", "HEROMOTOCO.NS", "BAJAJ-AUTO.NS", "UPL.NS",
	"HINDALCO.NS", "LTIM.NS",
}

var sensex30Stocks = []string{
	"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
	"HINDUNILVR.NS", "ITC.NS", "SBIN.NS", "BHARTIARTL.NS", "KOTAKBANK.NS",
	"LT.NS", "AXISBANK.NS", "ASIANPAINT.NS", "MARUTI.NS", "TITAN.NS",
	"SUNPHARMA.NS", "BAJFINANCE.NS", "WIPRO.NS", "ULTRACEMCO.NS", "NTPC.NS",
	"NESTLEIND.NS", "TATAMOTORS.NS", "M&M.NS", "HCLTECH.NS", "POWERGRID.NS",
	"TECHM.NS", "INDUSINDBK.NS", "TATASTEEL.NS", "JSWSTEEL.NS",
	"BAJAJFINSV.NS",
}

var MarketBaskets = []MarketBasket{
	{
		ID:          "nifty50",
		Label:       "NIFTY 50",
		Description: "Top 50 Indian companies by market cap",
		Icon:        "🇮🇳",
		Tickers:     nifty50Stocks,
	},
	{
		ID:          "sensex",
		Label:       "SENSEX 30",
		Description: "BSE 30 index companies",
		Icon:        "📊",
		Tickers:     sensex30Stocks,
	},
	{
		ID:          "top10",
		Label:       "Top 10 Stocks",
		Description: "India's largest companies",
		Icon:        "🏆",
		Tickers: []string{
			"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS",
			"HINDUNILVR.NS", "ITC.NS", "SBIN.NS", "BHARTIARTL.NS",
			"KOTAKBANK.NS",
		},
	},
	{
		ID:          "it_sector",
		Label:       "IT Sector",
		Description: "Major IT companies",
		Icon:        "💻",
		Tickers: []string{
			"TCS.NS", "INFY.NS", "WIPRO.NS", "HCLTECH.NS", "TECHM.NS",
			"LTIM.NS", "PERSISTENT.NS", "COFORGE.NS",
		},
	},
	{
		ID:          "banking",
		Label:       "Banking",
		Description: "Top banking stocks",
		Icon:        "🏦",
		Tickers: []string{
			"HDFCBANK.NS", "ICICIBANK.NS", "SBIN.NS", "KOTAKBANK.NS",
			"AXISBANK.NS", "INDUSINDBK.NS", "BANKBARODA.NS", "PNB.NS",
		},
	},
	{
		ID:          "pharma",
		Label:       "Pharma",
		Description: "Healthcare & Pharma stocks",
		Icon:        "💊",
		Tickers: []string{
			"SUNPHARMA.NS", "DRREDDY.NS", "CIPLA.NS", "DIVISLAB.NS",
			"APOLLOHOSP.NS", "BIOCON.NS", "LUPIN.NS",
		},
	},
	{
		ID:          "auto",
		Label:       "Auto",
		Description: "Automobile sector",
		Icon:        "🚗",
		Tickers: []string{
			"TATAMOTORS.NS", "M&M.NS", "MARUTI.NS", "BAJAJ-AUTO.NS",
			"HEROMOTOCO.NS", "EICHERMOT.NS", "TVSMOTOR.NS",
		},
	},
	{
		ID:          CustomBasketID,
		Label:       "Custom Selection",
		Description: "Choose your own stocks",
		Icon:        "✏️",
		Tickers:     []string{},
	},
}

func FindBasket(baskets []MarketBasket, id string) (MarketBasket, bool) {
	for _, b := range baskets {
		if b.ID == id {
			return b, true
		}
	}
	return MarketBasket{}, false
}

type basketCSVRow struct {
	BasketID    string `csv:"basket_id"`
	Label       string `csv:"label"`
	Description string `csv:"description"`
	Symbol      string `csv:"symbol"`
}

// LoadBasketsCSV reads extra baskets from a CSV with one row per
// (basket, symbol) pair. Rows sharing a basket_id are merged in file order.
func LoadBasketsCSV(path string) ([]MarketBasket, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open baskets csv: %w", err)
	}
	defer f.Close()

	rows := []basketCSVRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("could not parse baskets csv: %w", err)
	}

	byID := map[string]int{}
	out := []MarketBasket{}
	for _, row := range rows {
		if row.BasketID == "" || row.Symbol == "" {
			return nil, fmt.Errorf("baskets csv row missing basket_id or symbol")
		}
		idx, ok := byID[row.BasketID]
		if !ok {
			out = append(out, MarketBasket{
				ID:          row.BasketID,
				Label:       row.Label,
				Description: row.Description,
			})
			idx = len(out) - 1
			byID[row.BasketID] = idx
		}
		out[idx].Tickers = append(out[idx].Tickers, row.Symbol)
	}

	return out, nil
}
