package api

import (
	"strings"

	"traderdash/internal/domain"
	"traderdash/internal/logger"

	"github.com/gin-gonic/gin"
)

// searchStocks proxies the ticker lookup. Already-selected symbols can be
// filtered out via ?exclude=A,B. A failing upstream is not an error to the
// widget - it just sees an empty result list.
func (m ApiHandler) searchStocks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(200, []domain.SearchResult{})
		return
	}

	results, err := m.MarketDataRepository.Search(query)
	if err != nil {
		logger.FromContext(c).Warnf("ticker search for %q failed: %v", query, err)
		c.JSON(200, []domain.SearchResult{})
		return
	}

	exclude := map[string]bool{}
	if raw := c.Query("exclude"); raw != "" {
		for _, symbol := range strings.Split(raw, ",") {
			exclude[strings.TrimSpace(symbol)] = true
		}
	}

	filtered := []domain.SearchResult{}
	for _, r := range results {
		if !exclude[r.Symbol] {
			filtered = append(filtered, r)
		}
	}

	c.JSON(200, filtered)
}
