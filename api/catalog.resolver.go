package api

import (
	"traderdash/internal/domain"

	"github.com/gin-gonic/gin"
)

// listBaskets serves the form's picker data: the basket catalog plus the
// time frame and capital preset lists.
func (m ApiHandler) listBaskets(c *gin.Context) {
	c.JSON(200, gin.H{
		"baskets":        m.baskets(),
		"timeFrames":     domain.TimeFrames,
		"capitalPresets": domain.CapitalPresets,
	})
}

func (m ApiHandler) listRiskProfiles(c *gin.Context) {
	c.JSON(200, gin.H{
		"riskProfiles":      domain.RiskProfiles,
		"defaultStopLoss":   domain.DefaultStopLossPct,
		"defaultTakeProfit": domain.DefaultTakeProfitPct,
	})
}
