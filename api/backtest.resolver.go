package api

import (
	"fmt"

	"traderdash/internal/backtest"
	"traderdash/internal/logger"

	"github.com/gin-gonic/gin"
)

// backtest validates a dashboard submission, re-shapes it to the engine's
// wire schema, and relays whatever the engine says. The engine's response
// body is opaque here - it is never parsed beyond error extraction.
func (m ApiHandler) backtest(c *gin.Context) {
	var input backtest.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		returnErrorJson(fmt.Errorf("failed to parse request body: %w", err), c)
		return
	}

	req, violations := backtest.Validate(input)
	if violations != nil {
		logger.FromContext(c).Infow("backtest request rejected",
			"fieldErrors", violations.FieldErrors,
		)
		c.AbortWithStatusJSON(422, gin.H{"error": violations})
		return
	}

	result, err := m.BacktestEngineRepository.Run(req.ToEngineRequest())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to reach backtest engine: %w", err), c)
		return
	}

	if !result.OK() {
		// relay the engine's status and message as-is
		logger.FromContext(c).Warnf("backtest engine returned %d: %s", result.StatusCode, result.ErrorMessage)
		c.AbortWithStatusJSON(result.StatusCode, gin.H{"error": result.ErrorMessage})
		return
	}

	c.Data(result.StatusCode, "application/json", result.Body)
}
