package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// stockPage assembles the detail page payload for one symbol. Only a quote
// failure is fatal; the service degrades the other fetches internally.
func (m ApiHandler) stockPage(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	page, err := m.StockPageService.Assemble(c, symbol)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to load stock page for %s: %w", symbol, err), c, 404)
		return
	}

	c.JSON(200, page)
}
