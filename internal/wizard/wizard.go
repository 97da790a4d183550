package wizard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"traderdash/internal/backtest"
	"traderdash/internal/domain"
)

// Step is one screen of the backtest wizard.
type Step string

const (
	StepTimeFrame Step = "timeframe"
	StepStocks    Step = "stocks"
	StepCapital   Step = "capital"
	StepStrategy  Step = "strategy"
	StepRisk      Step = "risk"
	StepReview    Step = "review"
)

// Steps in presentation order.
var Steps = []Step{
	StepTimeFrame,
	StepStocks,
	StepCapital,
	StepStrategy,
	StepRisk,
	StepReview,
}

// transitions enumerates the legal moves. Anything not listed here is an
// illegal transition regardless of the step's completion predicate.
var transitions = map[Step][]Step{
	StepTimeFrame: {StepStocks},
	StepStocks:    {StepTimeFrame, StepCapital},
	StepCapital:   {StepStocks, StepStrategy},
	StepStrategy:  {StepCapital, StepRisk},
	StepRisk:      {StepStrategy, StepReview},
	StepReview:    {StepRisk},
}

var (
	ErrIncompleteStep      = fmt.Errorf("current step is incomplete")
	ErrIllegalTransition   = fmt.Errorf("illegal step transition")
	ErrNotAtReview         = fmt.Errorf("submission is only allowed at the review step")
	ErrSubmissionInFlight  = fmt.Errorf("a submission is already in flight")
	ErrNoSubmissionPending = fmt.Errorf("no submission in flight")
)

// State is the full wizard session: current step, accumulated answers, and
// the submission handshake flags. It marshals to JSON for session storage
// and for the API's state view.
type State struct {
	Step Step `json:"step"`

	TimeFrame        string   `json:"timeFrame"`
	Basket           string   `json:"basket"`
	CustomStocks     []string `json:"customStocks"`
	Capital          float64  `json:"capital"`
	EntryStrategy    string   `json:"entryStrategy"`
	ExitStrategy     string   `json:"exitStrategy"`
	RiskProfile      string   `json:"riskProfile"`
	CustomStopLoss   float64  `json:"customStopLoss"`
	CustomTakeProfit float64  `json:"customTakeProfit"`

	// Submission handshake. Submitting guards the single in-flight
	// request; ResultReady and PendingResult say the data arrived but
	// has not been shown yet; Result is what the results view renders.
	Submitting    bool            `json:"submitting"`
	ResultReady   bool            `json:"resultReady"`
	PendingResult json.RawMessage `json:"pendingResult,omitempty"`
	Result        json.RawMessage `json:"result,omitempty"`

	Baskets []domain.MarketBasket `json:"-"`
}

// NewState starts a session at the time frame step with the same defaults
// the dashboard form ships with.
func NewState(baskets []domain.MarketBasket) *State {
	return &State{
		Step:             StepTimeFrame,
		TimeFrame:        "2y",
		Basket:           "nifty50",
		CustomStocks:     []string{},
		Capital:          100000,
		RiskProfile:      "moderate",
		CustomStopLoss:   domain.DefaultStopLossPct,
		CustomTakeProfit: domain.DefaultTakeProfitPct,
		Baskets:          baskets,
	}
}

func (s *State) basketCatalog() []domain.MarketBasket {
	if len(s.Baskets) > 0 {
		return s.Baskets
	}
	return domain.MarketBaskets
}

// Stocks derives the resolved ticker list: the custom list when the custom
// basket is selected, otherwise the chosen basket's fixed list. Always
// recomputed from current state.
func (s *State) Stocks() []string {
	if s.Basket == domain.CustomBasketID {
		return s.CustomStocks
	}
	b, ok := domain.FindBasket(s.basketCatalog(), s.Basket)
	if !ok {
		return []string{}
	}
	return b.Tickers
}

// StopLoss derives the effective stop-loss percentage.
func (s *State) StopLoss() float64 {
	if s.RiskProfile == domain.CustomRiskProfileID {
		return s.CustomStopLoss
	}
	r, ok := domain.FindRiskProfile(s.RiskProfile)
	if !ok || r.StopLoss == 0 {
		return domain.DefaultStopLossPct
	}
	return r.StopLoss
}

// TakeProfit derives the effective take-profit percentage.
func (s *State) TakeProfit() float64 {
	if s.RiskProfile == domain.CustomRiskProfileID {
		return s.CustomTakeProfit
	}
	r, ok := domain.FindRiskProfile(s.RiskProfile)
	if !ok || r.TakeProfit == 0 {
		return domain.DefaultTakeProfitPct
	}
	return r.TakeProfit
}

// CanProceed is the current step's completion predicate.
func (s *State) CanProceed() bool {
	switch s.Step {
	case StepTimeFrame:
		return s.TimeFrame != ""
	case StepStocks:
		return len(s.Stocks()) > 0
	case StepCapital:
		return s.Capital > 0
	case StepStrategy:
		return strings.TrimSpace(s.EntryStrategy) != "" && strings.TrimSpace(s.ExitStrategy) != ""
	case StepRisk:
		return s.RiskProfile != ""
	case StepReview:
		return true
	}
	return false
}

func (s *State) stepIndex() int {
	for i, step := range Steps {
		if step == s.Step {
			return i
		}
	}
	return 0
}

func (s *State) transitionTo(target Step) error {
	if !s.CanProceed() {
		return ErrIncompleteStep
	}
	for _, allowed := range transitions[s.Step] {
		if allowed == target {
			s.Step = target
			return nil
		}
	}
	return ErrIllegalTransition
}

// Next advances one step, gated on the completion predicate.
func (s *State) Next() error {
	i := s.stepIndex()
	if i >= len(Steps)-1 {
		return ErrIllegalTransition
	}
	return s.transitionTo(Steps[i+1])
}

// Back returns one step, gated the same way.
func (s *State) Back() error {
	i := s.stepIndex()
	if i == 0 {
		return ErrIllegalTransition
	}
	return s.transitionTo(Steps[i-1])
}

// CanSubmit reports whether a submission may start now.
func (s *State) CanSubmit() bool {
	return s.Step == StepReview && !s.Submitting
}

// BuildInput assembles the request payload. The resolved risk thresholds
// are appended to the entry text - the engine reads them from prose, there
// is no structured field on its side.
func (s *State) BuildInput() backtest.Input {
	stopLoss := s.StopLoss()
	takeProfit := s.TakeProfit()
	entry := fmt.Sprintf(
		"%s. Use stop loss at %s%% and take profit at %s%%.",
		s.EntryStrategy,
		formatPct(stopLoss),
		formatPct(takeProfit),
	)

	capital := s.Capital
	period := s.TimeFrame
	return backtest.Input{
		EntryStrategy: entry,
		ExitStrategy:  s.ExitStrategy,
		Stocks:        s.Stocks(),
		Capital:       &capital,
		Period:        &period,
		RiskProfile: &backtest.RiskInput{
			StopLoss:   &stopLoss,
			TakeProfit: &takeProfit,
		},
	}
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BeginSubmit marks the single in-flight submission.
func (s *State) BeginSubmit() error {
	if s.Step != StepReview {
		return ErrNotAtReview
	}
	if s.Submitting {
		return ErrSubmissionInFlight
	}
	s.Submitting = true
	s.ResultReady = false
	s.PendingResult = nil
	return nil
}

// CompleteSubmit holds the engine's payload as pending and raises the
// ready flag. The loading view decides when to actually show it.
func (s *State) CompleteSubmit(body json.RawMessage) {
	s.Submitting = false
	s.PendingResult = body
	s.ResultReady = true
}

// FailSubmit dismisses the loading state; the wizard stays at review with
// every answer intact.
func (s *State) FailSubmit() {
	s.Submitting = false
	s.ResultReady = false
	s.PendingResult = nil
	s.Step = StepReview
}

// ViewResults promotes the pending payload to the rendered result.
func (s *State) ViewResults() error {
	if s.PendingResult == nil {
		return ErrNoSubmissionPending
	}
	s.Result = s.PendingResult
	s.PendingResult = nil
	s.ResultReady = false
	s.Submitting = false
	return nil
}

// Reset starts over: back to the time frame step with the answers cleared.
func (s *State) Reset() {
	baskets := s.Baskets
	*s = *NewState(baskets)
}
