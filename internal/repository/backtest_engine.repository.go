package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"traderdash/internal/domain"
)

// BacktestEngineRepository talks to the external backtest engine. The
// engine is opaque - its response body is relayed to callers untouched.
type BacktestEngineRepository interface {
	Run(req domain.EngineRequest) (*EngineResult, error)
}

// EngineResult carries the engine's verdict. A non-2xx status is an
// expected operational outcome, reported here rather than as a Go error;
// transport failures come back as errors instead.
type EngineResult struct {
	StatusCode   int
	Body         json.RawMessage
	ErrorMessage string
}

func (r EngineResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

const engineFallbackError = "Backend request failed"

type backtestEngineRepositoryHandler struct {
	BaseURL    string
	HttpClient *http.Client
}

func NewBacktestEngineRepository(baseURL string) BacktestEngineRepository {
	return &backtestEngineRepositoryHandler{
		BaseURL:    baseURL,
		HttpClient: http.DefaultClient,
	}
}

func (h *backtestEngineRepositoryHandler) Run(req domain.EngineRequest) (*EngineResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal engine request: %w", err)
	}

	url := h.BaseURL + "/backtest"
	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build engine request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	response, err := h.HttpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("engine request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	result := &EngineResult{
		StatusCode: response.StatusCode,
		Body:       body,
	}

	if !result.OK() {
		// relay whatever the engine reported, or a generic message
		errBody := struct {
			Error string `json:"error"`
		}{}
		if err := json.Unmarshal(body, &errBody); err != nil || errBody.Error == "" {
			result.ErrorMessage = engineFallbackError
		} else {
			result.ErrorMessage = errBody.Error
		}
	}

	return result, nil
}
