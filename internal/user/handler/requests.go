package handler

import (
	"strings"

	dErrors "ecrc42/pkg/domain-errors"
)

type RegisterRequest struct {
	Lernname string `json:"lernname" validate:"required,max=50"`
}

func (r *RegisterRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Lernname = strings.TrimSpace(r.Lernname)
	if r.Lernname == "" {
		return dErrors.New(dErrors.CodeValidation, "lernname is required")
	}
	return nil
}

type CodeLoginRequest struct {
	Code string `json:"code" validate:"required"`
}

func (r *CodeLoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *AdminLoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return nil
}
