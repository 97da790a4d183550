package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFindBasket(t *testing.T) {
	t.Run("every built-in id resolves", func(t *testing.T) {
		for _, id := range []string{"nifty50", "sensex", "top10", "it_sector", "banking", "pharma", "auto", "custom"} {
			b, ok := FindBasket(MarketBaskets, id)
			require.True(t, ok, "missing basket %s", id)
			require.Equal(t, id, b.ID)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, ok := FindBasket(MarketBaskets, "ftse100")
		require.False(t, ok)
	})

	t.Run("custom basket carries no fixed tickers", func(t *testing.T) {
		b, ok := FindBasket(MarketBaskets, CustomBasketID)
		require.True(t, ok)
		require.Empty(t, b.Tickers)
	})

	t.Run("nifty50 has 50 constituents", func(t *testing.T) {
		b, _ := FindBasket(MarketBaskets, "nifty50")
		require.Len(t, b.Tickers, 50)
	})
}

func TestLoadBasketsCSV(t *testing.T) {
	writeCSV := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "baskets.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("groups rows by basket id", func(t *testing.T) {
		path := writeCSV(t, `basket_id,label,description,symbol
energy,Energy,Oil & gas majors,ONGC.NS
energy,Energy,Oil & gas majors,BPCL.NS
fmcg,FMCG,Consumer staples,ITC.NS
`)

		baskets, err := LoadBasketsCSV(path)
		require.NoError(t, err)

		expected := []MarketBasket{
			{
				ID:          "energy",
				Label:       "Energy",
				Description: "Oil & gas majors",
				Tickers:     []string{"ONGC.NS", "BPCL.NS"},
			},
			{
				ID:          "fmcg",
				Label:       "FMCG",
				Description: "Consumer staples",
				Tickers:     []string{"ITC.NS"},
			},
		}
		require.Equal(t, "", cmp.Diff(expected, baskets))
	})

	t.Run("missing symbol fails", func(t *testing.T) {
		path := writeCSV(t, `basket_id,label,description,symbol
energy,Energy,Oil & gas majors,
`)
		_, err := LoadBasketsCSV(path)
		require.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadBasketsCSV(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}
