package api

import (
	"errors"
	"fmt"

	"traderdash/internal/backtest"
	"traderdash/internal/domain"
	"traderdash/internal/logger"
	"traderdash/internal/repository"
	"traderdash/internal/wizard"

	"github.com/gin-gonic/gin"
)

// wizardView is the API's rendering of a session: the raw state plus the
// derived values the client would otherwise recompute.
type wizardView struct {
	SessionID string `json:"sessionId"`
	*wizard.State
	Stocks           []string      `json:"stocks"`
	StopLoss         float64       `json:"stopLoss"`
	TakeProfit       float64       `json:"takeProfit"`
	CanProceed       bool          `json:"canProceed"`
	CanSubmit        bool          `json:"canSubmit"`
	Steps            []wizard.Step `json:"steps"`
	EntrySuggestions []string      `json:"entrySuggestions"`
	ExitSuggestions  []string      `json:"exitSuggestions"`
}

func newWizardView(id string, state *wizard.State) wizardView {
	return wizardView{
		SessionID:        id,
		State:            state,
		Stocks:           state.Stocks(),
		StopLoss:         state.StopLoss(),
		TakeProfit:       state.TakeProfit(),
		CanProceed:       state.CanProceed(),
		CanSubmit:        state.CanSubmit(),
		Steps:            wizard.Steps,
		EntrySuggestions: domain.EntrySuggestions,
		ExitSuggestions:  domain.ExitSuggestions,
	}
}

func wizardErrorCode(err error) int {
	switch {
	case errors.Is(err, wizard.ErrIncompleteStep):
		return 422
	case errors.Is(err, wizard.ErrIllegalTransition),
		errors.Is(err, wizard.ErrNotAtReview),
		errors.Is(err, wizard.ErrSubmissionInFlight),
		errors.Is(err, wizard.ErrNoSubmissionPending):
		return 409
	}
	return 500
}

func (m ApiHandler) loadWizard(c *gin.Context) (string, *wizard.State, bool) {
	id := c.Param("id")
	state, err := m.WizardSessionRepository.Get(c, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			returnErrorJsonCode(err, c, 404)
		} else {
			returnErrorJson(err, c)
		}
		return "", nil, false
	}
	return id, state, true
}

func (m ApiHandler) saveAndRender(c *gin.Context, id string, state *wizard.State) {
	if err := m.WizardSessionRepository.Save(c, id, state); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, newWizardView(id, state))
}

func (m ApiHandler) createWizard(c *gin.Context) {
	state := wizard.NewState(m.baskets())
	id, err := m.WizardSessionRepository.Create(c, state)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to create wizard session: %w", err), c)
		return
	}
	c.JSON(200, newWizardView(id, state))
}

func (m ApiHandler) getWizard(c *gin.Context) {
	id, state, ok := m.loadWizard(c)
	if !ok {
		return
	}
	c.JSON(200, newWizardView(id, state))
}

// wizardPatch carries partial answer updates. Pointer fields so an omitted
// answer is left untouched; customStocks replaces the whole list.
type wizardPatch struct {
	TimeFrame        *string   `json:"timeFrame"`
	Basket           *string   `json:"basket"`
	CustomStocks     *[]string `json:"customStocks"`
	Capital          *float64  `json:"capital"`
	EntryStrategy    *string   `json:"entryStrategy"`
	ExitStrategy     *string   `json:"exitStrategy"`
	RiskProfile      *string   `json:"riskProfile"`
	CustomStopLoss   *float64  `json:"customStopLoss"`
	CustomTakeProfit *float64  `json:"customTakeProfit"`
}

func (m ApiHandler) patchWizard(c *gin.Context) {
	id, state, ok := m.loadWizard(c)
	if !ok {
		return
	}
	if state.Submitting {
		returnErrorJsonCode(wizard.ErrSubmissionInFlight, c, 409)
		return
	}

	var patch wizardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	if patch.TimeFrame != nil {
		state.TimeFrame = *patch.TimeFrame
	}
	if patch.Basket != nil {
		state.Basket = *patch.Basket
	}
	if patch.CustomStocks != nil {
		state.CustomStocks = *patch.CustomStocks
	}
	if patch.Capital != nil {
		state.Capital = *patch.Capital
	}
	if patch.EntryStrategy != nil {
		state.EntryStrategy = *patch.EntryStrategy
	}
	if patch.ExitStrategy != nil {
		state.ExitStrategy = *patch.ExitStrategy
	}
	if patch.RiskProfile != nil {
		state.RiskProfile = *patch.RiskProfile
	}
	if patch.CustomStopLoss != nil {
		state.CustomStopLoss = *patch.CustomStopLoss
	}
	if patch.CustomTakeProfit != nil {
		state.CustomTakeProfit = *patch.CustomTakeProfit
	}

	m.saveAndRender(c, id, state)
}

func (m ApiHandler) wizardNext(c *gin.Context) {
	m.wizardStep(c, (*wizard.State).Next)
}

func (m ApiHandler) wizardBack(c *gin.Context) {
	m.wizardStep(c, (*wizard.State).Back)
}

func (m ApiHandler) wizardStep(c *gin.Context, move func(*wizard.State) error) {
	id, state, ok := m.loadWizard(c)
	if !ok {
		return
	}
	if state.Submitting {
		returnErrorJsonCode(wizard.ErrSubmissionInFlight, c, 409)
		return
	}
	if err := move(state); err != nil {
		returnErrorJsonCode(err, c, wizardErrorCode(err))
		return
	}
	m.saveAndRender(c, id, state)
}

// wizardSubmit runs the whole submission inside one request: mark the
// session submitting, validate the built request, forward it, and stash the
// engine's payload as pending. Any failure reverts to review with the
// answers intact.
func (m ApiHandler) wizardSubmit(c *gin.Context) {
	id, state, ok := m.loadWizard(c)
	if !ok {
		return
	}

	if err := state.BeginSubmit(); err != nil {
		returnErrorJsonCode(err, c, wizardErrorCode(err))
		return
	}
	// persist the in-flight flag before touching the engine so a second
	// submit (or any mutation) on this session is rejected meanwhile
	if err := m.WizardSessionRepository.Save(c, id, state); err != nil {
		returnErrorJson(err, c)
		return
	}

	req, violations := backtest.Validate(state.BuildInput())
	if violations != nil {
		state.FailSubmit()
		if err := m.WizardSessionRepository.Save(c, id, state); err != nil {
			returnErrorJson(err, c)
			return
		}
		c.AbortWithStatusJSON(422, gin.H{"error": violations})
		return
	}

	result, err := m.BacktestEngineRepository.Run(req.ToEngineRequest())
	if err != nil {
		state.FailSubmit()
		if saveErr := m.WizardSessionRepository.Save(c, id, state); saveErr != nil {
			logger.FromContext(c).Errorf("failed to save wizard session after submit error: %v", saveErr)
		}
		returnErrorJson(fmt.Errorf("failed to reach backtest engine: %w", err), c)
		return
	}
	if !result.OK() {
		state.FailSubmit()
		if saveErr := m.WizardSessionRepository.Save(c, id, state); saveErr != nil {
			logger.FromContext(c).Errorf("failed to save wizard session after engine error: %v", saveErr)
		}
		c.AbortWithStatusJSON(result.StatusCode, gin.H{"error": result.ErrorMessage})
		return
	}

	state.CompleteSubmit(result.Body)
	m.saveAndRender(c, id, state)
}

func (m ApiHandler) wizardResults(c *gin.Context) {
	id, state, ok := m.loadWizard(c)
	if !ok {
		return
	}
	if err := state.ViewResults(); err != nil {
		returnErrorJsonCode(err, c, wizardErrorCode(err))
		return
	}
	m.saveAndRender(c, id, state)
}

func (m ApiHandler) wizardReset(c *gin.Context) {
	id, state, ok := m.loadWizard(c)
	if !ok {
		return
	}
	state.Reset()
	m.saveAndRender(c, id, state)
}
