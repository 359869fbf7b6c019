package handler

import (
	"ecrc42/internal/evaluator"
	dErrors "ecrc42/pkg/domain-errors"
)

// CreateCheckRequest is the body for POST /checks. Finalize defaults to true:
// a wizard run that reached the result is stored as completed.
type CreateCheckRequest struct {
	Answers  evaluator.AnswerSet `json:"answers"`
	Finalize *bool               `json:"finalize,omitempty"`
}

func (r *CreateCheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

func (r *CreateCheckRequest) ShouldFinalize() bool {
	return r.Finalize == nil || *r.Finalize
}

// UpdateCheckRequest is the body for PUT /checks/{id}.
type UpdateCheckRequest struct {
	Answers evaluator.AnswerSet `json:"answers"`
}

func (r *UpdateCheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}
