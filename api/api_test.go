package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"traderdash/internal/repository"
	"traderdash/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestApi(t *testing.T, deps ApiHandler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if deps.WizardSessionRepository == nil {
		deps.WizardSessionRepository = repository.NewInMemoryWizardSessionRepository(deps.Baskets)
	}
	if deps.StockPageService == nil && deps.QuoteRepository != nil {
		deps.StockPageService = service.NewStockPageService(deps.QuoteRepository, deps.MarketDataRepository)
	}

	return deps.buildRouter()
}

func performRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	return performRequest(router, http.MethodPost, path, []byte(body))
}
