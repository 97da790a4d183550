package api

import (
	"fmt"
	"time"

	"traderdash/internal/appconfig"
	"traderdash/internal/domain"
	"traderdash/internal/logger"
	"traderdash/internal/repository"
	"traderdash/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Config                   appconfig.Config
	BacktestEngineRepository repository.BacktestEngineRepository
	MarketDataRepository     repository.MarketDataRepository
	QuoteRepository          repository.QuoteRepository
	WizardSessionRepository  repository.WizardSessionRepository
	StockPageService         service.StockPageService
	Baskets                  []domain.MarketBasket
}

func (m ApiHandler) StartApi(port int) error {
	return m.buildRouter().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to traderdash"})
	})

	router.POST("/api/backtest", m.backtest)
	router.GET("/api/stocks/search", m.searchStocks)
	router.GET("/api/stocks/:symbol", m.stockPage)
	router.GET("/api/baskets", m.listBaskets)
	router.GET("/api/risk-profiles", m.listRiskProfiles)

	router.POST("/api/wizard", m.createWizard)
	router.GET("/api/wizard/:id", m.getWizard)
	router.PATCH("/api/wizard/:id", m.patchWizard)
	router.POST("/api/wizard/:id/next", m.wizardNext)
	router.POST("/api/wizard/:id/back", m.wizardBack)
	router.POST("/api/wizard/:id/submit", m.wizardSubmit)
	router.POST("/api/wizard/:id/results", m.wizardResults)
	router.POST("/api/wizard/:id/reset", m.wizardReset)

	return router
}

// baskets is the configured catalog, falling back to the built-in one.
func (m ApiHandler) baskets() []domain.MarketBasket {
	if len(m.Baskets) > 0 {
		return m.Baskets
	}
	return domain.MarketBaskets
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware attaches a request-scoped logger to the context and
// records route, status, and latency after the resolver runs.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.NewString()
	log := zap.S().With("requestId", requestID)
	ctx.Set(logger.ContextKey, log)
	ctx.Header("X-Request-Id", requestID)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("request completed",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"statusCode", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
