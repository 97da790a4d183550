package wizard

import (
	"encoding/json"
	"testing"

	"traderdash/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func completedState() *State {
	s := NewState(nil)
	s.EntryStrategy = "Buy when RSI < 30"
	s.ExitStrategy = "Sell at RSI > 70"
	return s
}

// walk a fully answered state to the given step
func walkTo(t *testing.T, s *State, target Step) {
	t.Helper()
	for s.Step != target {
		require.NoError(t, s.Next())
	}
}

func TestDerivedStocks(t *testing.T) {
	t.Run("every fixed basket resolves to its ticker list", func(t *testing.T) {
		for _, b := range domain.MarketBaskets {
			if b.ID == domain.CustomBasketID {
				continue
			}
			s := NewState(nil)
			s.Basket = b.ID
			require.Equal(t, "", cmp.Diff(b.Tickers, s.Stocks()), "basket %s", b.ID)
		}
	})

	t.Run("custom basket resolves to the custom list", func(t *testing.T) {
		s := NewState(nil)
		s.Basket = domain.CustomBasketID
		s.CustomStocks = []string{"TCS.NS", "INFY.NS"}
		require.Equal(t, []string{"TCS.NS", "INFY.NS"}, s.Stocks())
	})

	t.Run("unknown basket resolves empty", func(t *testing.T) {
		s := NewState(nil)
		s.Basket = "ftse100"
		require.Empty(t, s.Stocks())
	})

	t.Run("injected catalog wins over built-ins", func(t *testing.T) {
		catalog := []domain.MarketBasket{
			{ID: "energy", Tickers: []string{"ONGC.NS"}},
		}
		s := NewState(catalog)
		s.Basket = "energy"
		require.Equal(t, []string{"ONGC.NS"}, s.Stocks())
	})
}

func TestDerivedRiskThresholds(t *testing.T) {
	t.Run("fixed profiles", func(t *testing.T) {
		cases := []struct {
			profile    string
			stopLoss   float64
			takeProfit float64
		}{
			{"conservative", 3, 6},
			{"moderate", 5, 10},
			{"aggressive", 8, 15},
		}
		for _, tc := range cases {
			t.Run(tc.profile, func(t *testing.T) {
				s := NewState(nil)
				s.RiskProfile = tc.profile
				require.Equal(t, tc.stopLoss, s.StopLoss())
				require.Equal(t, tc.takeProfit, s.TakeProfit())
			})
		}
	})

	t.Run("custom profile uses user-entered values", func(t *testing.T) {
		s := NewState(nil)
		s.RiskProfile = domain.CustomRiskProfileID
		s.CustomStopLoss = 12
		s.CustomTakeProfit = 33
		require.Equal(t, float64(12), s.StopLoss())
		require.Equal(t, float64(33), s.TakeProfit())
	})

	t.Run("unknown profile falls back to 5/10", func(t *testing.T) {
		s := NewState(nil)
		s.RiskProfile = "yolo"
		require.Equal(t, float64(5), s.StopLoss())
		require.Equal(t, float64(10), s.TakeProfit())
	})
}

func TestNavigation(t *testing.T) {
	t.Run("happy walk to review", func(t *testing.T) {
		s := completedState()
		for _, expected := range []Step{StepStocks, StepCapital, StepStrategy, StepRisk, StepReview} {
			require.NoError(t, s.Next())
			require.Equal(t, expected, s.Step)
		}
		require.ErrorIs(t, s.Next(), ErrIllegalTransition)
	})

	t.Run("next blocked on incomplete step", func(t *testing.T) {
		s := NewState(nil)
		s.TimeFrame = ""
		require.ErrorIs(t, s.Next(), ErrIncompleteStep)
		require.Equal(t, StepTimeFrame, s.Step)
	})

	t.Run("empty strategy text blocks the strategy step", func(t *testing.T) {
		s := NewState(nil)
		s.EntryStrategy = "   "
		s.ExitStrategy = "Sell at RSI > 70"
		walkTo(t, s, StepStrategy)
		require.ErrorIs(t, s.Next(), ErrIncompleteStep)
	})

	t.Run("back from the first step is illegal", func(t *testing.T) {
		s := NewState(nil)
		require.ErrorIs(t, s.Back(), ErrIllegalTransition)
	})

	t.Run("back and forth between adjacent steps is idempotent", func(t *testing.T) {
		s := completedState()
		walkTo(t, s, StepCapital)

		before := *s
		require.NoError(t, s.Back())
		require.NoError(t, s.Next())
		require.Equal(t, "", cmp.Diff(before, *s, cmp.AllowUnexported(State{})))
	})
}

func TestSubmissionLifecycle(t *testing.T) {
	t.Run("submit only at review", func(t *testing.T) {
		s := completedState()
		require.False(t, s.CanSubmit())
		require.ErrorIs(t, s.BeginSubmit(), ErrNotAtReview)

		walkTo(t, s, StepReview)
		require.True(t, s.CanSubmit())
	})

	t.Run("single in-flight submission", func(t *testing.T) {
		s := completedState()
		walkTo(t, s, StepReview)

		require.NoError(t, s.BeginSubmit())
		require.False(t, s.CanSubmit())
		require.ErrorIs(t, s.BeginSubmit(), ErrSubmissionInFlight)
	})

	t.Run("result arrival is decoupled from result display", func(t *testing.T) {
		s := completedState()
		walkTo(t, s, StepReview)
		require.NoError(t, s.BeginSubmit())

		body := json.RawMessage(`{"portfolio_metrics":{"portfolio_return_pct":12.5}}`)
		s.CompleteSubmit(body)

		// data arrived but the user has not been shown it yet
		require.True(t, s.ResultReady)
		require.False(t, s.Submitting)
		require.Nil(t, s.Result)
		require.JSONEq(t, string(body), string(s.PendingResult))

		require.NoError(t, s.ViewResults())
		require.False(t, s.ResultReady)
		require.Nil(t, s.PendingResult)
		require.JSONEq(t, string(body), string(s.Result))
	})

	t.Run("view without pending result fails", func(t *testing.T) {
		s := completedState()
		require.ErrorIs(t, s.ViewResults(), ErrNoSubmissionPending)
	})

	t.Run("failed submission reverts to review with answers intact", func(t *testing.T) {
		s := completedState()
		walkTo(t, s, StepReview)
		require.NoError(t, s.BeginSubmit())

		s.FailSubmit()
		require.Equal(t, StepReview, s.Step)
		require.False(t, s.Submitting)
		require.False(t, s.ResultReady)
		require.Equal(t, "Buy when RSI < 30", s.EntryStrategy)
		require.True(t, s.CanSubmit())
	})

	t.Run("reset returns to the first step with answers cleared", func(t *testing.T) {
		s := completedState()
		walkTo(t, s, StepReview)
		require.NoError(t, s.BeginSubmit())
		s.CompleteSubmit(json.RawMessage(`{}`))
		require.NoError(t, s.ViewResults())

		s.Reset()
		require.Equal(t, StepTimeFrame, s.Step)
		require.Empty(t, s.EntryStrategy)
		require.Nil(t, s.Result)
		require.Equal(t, "2y", s.TimeFrame)
	})
}

func TestBuildInput(t *testing.T) {
	t.Run("risk thresholds are appended to the entry text", func(t *testing.T) {
		s := completedState()
		s.RiskProfile = "aggressive"

		in := s.BuildInput()
		require.Equal(t, "Buy when RSI < 30. Use stop loss at 8% and take profit at 15%.", in.EntryStrategy)
		require.Equal(t, "Sell at RSI > 70", in.ExitStrategy)
		require.NotNil(t, in.Capital)
		require.Equal(t, float64(100000), *in.Capital)
		require.NotNil(t, in.Period)
		require.Equal(t, "2y", *in.Period)
		require.NotNil(t, in.RiskProfile)
		require.Equal(t, float64(8), *in.RiskProfile.StopLoss)
		require.Equal(t, float64(15), *in.RiskProfile.TakeProfit)
	})

	t.Run("fractional thresholds print without padding", func(t *testing.T) {
		s := completedState()
		s.RiskProfile = domain.CustomRiskProfileID
		s.CustomStopLoss = 2.5
		s.CustomTakeProfit = 7.25

		in := s.BuildInput()
		require.Contains(t, in.EntryStrategy, "stop loss at 2.5% and take profit at 7.25%")
	})

	t.Run("stocks come from the selected basket", func(t *testing.T) {
		s := completedState()
		s.Basket = "top10"
		in := s.BuildInput()
		require.Len(t, in.Stocks, 10)
		require.Contains(t, in.Stocks, "RELIANCE.NS")
	})
}
