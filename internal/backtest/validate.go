package backtest

import (
	"fmt"
	"reflect"
	"strings"

	"traderdash/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Input is the raw, untrusted shape of a backtest submission. Optional
// fields are pointers so an omitted field is distinguishable from a zero.
type Input struct {
	EntryStrategy string     `json:"entryStrategy"`
	ExitStrategy  string     `json:"exitStrategy"`
	Stocks        []string   `json:"stocks"`
	Capital       *float64   `json:"capital"`
	Period        *string    `json:"period"`
	RiskProfile   *RiskInput `json:"riskProfile"`
}

type RiskInput struct {
	StopLoss   *float64 `json:"stopLoss"`
	TakeProfit *float64 `json:"takeProfit"`
}

// Defaults applied for omitted optional fields.
const (
	DefaultCapital = float64(50000)
	DefaultPeriod  = "2y"
)

// normalized mirrors domain.BacktestRequest with the constraint tags.
// Validation runs after defaults so a literal zero is caught rather than
// skipped as "empty".
type normalized struct {
	EntryStrategy string          `json:"entryStrategy" validate:"min=3"`
	ExitStrategy  string          `json:"exitStrategy" validate:"min=3"`
	Stocks        []string        `json:"stocks" validate:"required,min=1,dive,required"`
	Capital       float64         `json:"capital" validate:"gt=0"`
	Period        string          `json:"period" validate:"required"`
	RiskProfile   *normalizedRisk `json:"riskProfile"`
}

type normalizedRisk struct {
	StopLoss   float64 `json:"stopLoss" validate:"min=1,max=50"`
	TakeProfit float64 `json:"takeProfit" validate:"min=1,max=100"`
}

// ValidationErrors reports every violated constraint, keyed by the json
// field path, plus any payload-level problems.
type ValidationErrors struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

func (v ValidationErrors) Error() string {
	parts := []string{}
	for field, msgs := range v.FieldErrors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	parts = append(parts, v.FormErrors...)
	return strings.Join(parts, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report violations against json names, not Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate normalizes the input (filling defaults for omitted optionals)
// and either returns the request or every field violation. Nothing reaches
// the engine without passing through here.
func Validate(in Input) (*domain.BacktestRequest, *ValidationErrors) {
	norm := normalized{
		EntryStrategy: in.EntryStrategy,
		ExitStrategy:  in.ExitStrategy,
		Stocks:        in.Stocks,
		Capital:       DefaultCapital,
		Period:        DefaultPeriod,
	}
	if in.Capital != nil {
		norm.Capital = *in.Capital
	}
	if in.Period != nil {
		norm.Period = *in.Period
	}
	if in.RiskProfile != nil {
		rp := normalizedRisk{
			StopLoss:   domain.DefaultStopLossPct,
			TakeProfit: domain.DefaultTakeProfitPct,
		}
		if in.RiskProfile.StopLoss != nil {
			rp.StopLoss = *in.RiskProfile.StopLoss
		}
		if in.RiskProfile.TakeProfit != nil {
			rp.TakeProfit = *in.RiskProfile.TakeProfit
		}
		norm.RiskProfile = &rp
	}

	if err := validate.Struct(norm); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, &ValidationErrors{
				FormErrors:  []string{err.Error()},
				FieldErrors: map[string][]string{},
			}
		}

		out := &ValidationErrors{
			FormErrors:  []string{},
			FieldErrors: map[string][]string{},
		}
		for _, fe := range fieldErrs {
			field := fieldPath(fe)
			out.FieldErrors[field] = append(out.FieldErrors[field], violationMessage(fe))
		}
		return nil, out
	}

	req := domain.BacktestRequest{
		EntryStrategy: norm.EntryStrategy,
		ExitStrategy:  norm.ExitStrategy,
		Stocks:        norm.Stocks,
		Capital:       norm.Capital,
		Period:        norm.Period,
	}
	if norm.RiskProfile != nil {
		req.RiskProfile = &domain.RiskThresholds{
			StopLoss:   norm.RiskProfile.StopLoss,
			TakeProfit: norm.RiskProfile.TakeProfit,
		}
	}
	return &req, nil
}

func fieldPath(fe validator.FieldError) string {
	// Namespace looks like "normalized.riskProfile.stopLoss" - drop the root
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
