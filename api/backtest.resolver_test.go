package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"traderdash/internal/domain"
	"traderdash/internal/repository"
	mock_repository "traderdash/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validBacktestBody = `{
	"entryStrategy": "Buy when RSI < 30",
	"exitStrategy": "Sell when RSI > 70",
	"stocks": ["TCS.NS", "INFY.NS"],
	"capital": 100000,
	"period": "5y"
}`

func Test_backtest(t *testing.T) {
	t.Run("relays a successful engine response untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_repository.NewMockBacktestEngineRepository(ctrl)

		engineBody := `{"portfolio_metrics":{"portfolio_return_pct":12.5,"avg_win_rate_pct":60}}`
		var captured domain.EngineRequest
		engine.EXPECT().Run(gomock.Any()).DoAndReturn(func(req domain.EngineRequest) (*repository.EngineResult, error) {
			captured = req
			return &repository.EngineResult{StatusCode: 200, Body: json.RawMessage(engineBody)}, nil
		})

		router := newTestApi(t, ApiHandler{BacktestEngineRepository: engine})
		w := postJSON(router, "/api/backtest", validBacktestBody)

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, engineBody, w.Body.String())

		expected := domain.EngineRequest{
			Query:   "Entry: Buy when RSI < 30. Exit: Sell when RSI > 70",
			Tickers: []string{"TCS.NS", "INFY.NS"},
			Period:  "5y",
			Capital: 100000,
		}
		require.Equal(t, "", cmp.Diff(expected, captured))
	})

	t.Run("fills defaults for omitted capital and period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_repository.NewMockBacktestEngineRepository(ctrl)

		var captured domain.EngineRequest
		engine.EXPECT().Run(gomock.Any()).DoAndReturn(func(req domain.EngineRequest) (*repository.EngineResult, error) {
			captured = req
			return &repository.EngineResult{StatusCode: 200, Body: json.RawMessage(`{}`)}, nil
		})

		router := newTestApi(t, ApiHandler{BacktestEngineRepository: engine})
		w := postJSON(router, "/api/backtest", `{
			"entryStrategy": "Buy the dip",
			"exitStrategy": "Sell the rip",
			"stocks": ["TCS.NS"]
		}`)

		require.Equal(t, 200, w.Code)
		require.Equal(t, float64(50000), captured.Capital)
		require.Equal(t, "2y", captured.Period)
	})

	t.Run("rejects an invalid submission with 422 before reaching the engine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_repository.NewMockBacktestEngineRepository(ctrl)
		// no Run expectation - a call would fail the test

		router := newTestApi(t, ApiHandler{BacktestEngineRepository: engine})
		w := postJSON(router, "/api/backtest", `{
			"entryStrategy": "Buy when RSI < 30",
			"exitStrategy": "Sell when RSI > 70",
			"stocks": []
		}`)

		require.Equal(t, 422, w.Code)

		response := struct {
			Error struct {
				FormErrors  []string            `json:"formErrors"`
				FieldErrors map[string][]string `json:"fieldErrors"`
			} `json:"error"`
		}{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Contains(t, response.Error.FieldErrors, "stocks")
	})

	t.Run("relays an engine error status and message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_repository.NewMockBacktestEngineRepository(ctrl)
		engine.EXPECT().Run(gomock.Any()).Return(&repository.EngineResult{
			StatusCode:   503,
			Body:         json.RawMessage(`{"error":"engine overloaded"}`),
			ErrorMessage: "engine overloaded",
		}, nil)

		router := newTestApi(t, ApiHandler{BacktestEngineRepository: engine})
		w := postJSON(router, "/api/backtest", validBacktestBody)

		require.Equal(t, 503, w.Code)
		require.JSONEq(t, `{"error":"engine overloaded"}`, w.Body.String())
	})

	t.Run("returns 500 when the engine is unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_repository.NewMockBacktestEngineRepository(ctrl)
		engine.EXPECT().Run(gomock.Any()).Return(nil, fmt.Errorf("connection refused"))

		router := newTestApi(t, ApiHandler{BacktestEngineRepository: engine})
		w := postJSON(router, "/api/backtest", validBacktestBody)

		require.Equal(t, 500, w.Code)
	})

	t.Run("returns 500 on a malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		engine := mock_repository.NewMockBacktestEngineRepository(ctrl)

		router := newTestApi(t, ApiHandler{BacktestEngineRepository: engine})
		w := performRequest(router, http.MethodPost, "/api/backtest", []byte(`not json`))

		require.Equal(t, 500, w.Code)
	})
}
