package handler

import (
	"ecrc42/internal/evaluator"
	dErrors "ecrc42/pkg/domain-errors"
)

// EvaluateRequest is the body for POST /evaluate.
type EvaluateRequest struct {
	Answers evaluator.AnswerSet `json:"answers"`
}

// Validate implements httputil's preparable contract. Any answer set can be
// evaluated, so only a nil body is rejected.
func (r *EvaluateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// WizardRequest is the body for POST /wizard/next and /wizard/back.
type WizardRequest struct {
	Step    string              `json:"step" validate:"required"`
	Answers evaluator.AnswerSet `json:"answers"`

	parsedStep evaluator.Step
}

func (r *WizardRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	step := evaluator.Step(r.Step)
	if step.Number() == 0 {
		return dErrors.New(dErrors.CodeValidation, "unknown step "+r.Step)
	}
	r.parsedStep = step
	return nil
}

// State returns the wizard state described by the request.
func (r *WizardRequest) State() evaluator.WizardState {
	return evaluator.WizardState{Step: r.parsedStep, Answers: r.Answers}
}
