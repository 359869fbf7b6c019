package handler

import (
	dErrors "ecrc42/pkg/domain-errors"
)

// CreateCaseRequest is the body for POST /cases.
type CreateCaseRequest struct {
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"required,max=4000"`
	Category    string `json:"category" validate:"max=60"`
}

func (r *CreateCaseRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

type ReactionRequest struct {
	Emoji string `json:"emoji" validate:"required"`
}

func (r *ReactionRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

type TagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

func (r *TagRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

type AdminCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

func (r *AdminCommentRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}
