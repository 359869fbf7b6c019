package handler

import (
	"ecrc42/internal/evaluator"
	"ecrc42/internal/license/models"
	dErrors "ecrc42/pkg/domain-errors"
)

// GenerateLicenseRequest is the body for POST /licenses.
type GenerateLicenseRequest struct {
	Title                      string              `json:"title" validate:"required,max=200"`
	MediaType                  evaluator.MediaType `json:"media_type,omitempty"`
	AuthorName                 string              `json:"author_name" validate:"required,max=120"`
	Description                string              `json:"description,omitempty" validate:"max=2000"`
	WorkLink                   string              `json:"work_link,omitempty" validate:"omitempty,url"`
	CreativeWorkReasons        []string            `json:"creative_work_reasons,omitempty"`
	CreativeWorkCustom         string              `json:"creative_work_custom,omitempty" validate:"max=2000"`
	IndividualCharacterReasons []string            `json:"individual_character_reasons,omitempty"`
	IndividualCharacterCustom  string              `json:"individual_character_custom,omitempty" validate:"max=2000"`
	ExpressionForms            []string            `json:"expression_forms,omitempty"`
	ExpressionCustom           string              `json:"expression_custom,omitempty" validate:"max=2000"`
	SelectedLicense            evaluator.CCVariant `json:"selected_license"`
}

func (r *GenerateLicenseRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.SelectedLicense == "" {
		return dErrors.New(dErrors.CodeValidation, "selected_license is required")
	}
	return nil
}

func (r *GenerateLicenseRequest) Draft() models.Draft {
	return models.Draft{
		Title:                      r.Title,
		MediaType:                  r.MediaType,
		AuthorName:                 r.AuthorName,
		Description:                r.Description,
		WorkLink:                   r.WorkLink,
		CreativeWorkReasons:        r.CreativeWorkReasons,
		CreativeWorkCustom:         r.CreativeWorkCustom,
		IndividualCharacterReasons: r.IndividualCharacterReasons,
		IndividualCharacterCustom:  r.IndividualCharacterCustom,
		ExpressionForms:            r.ExpressionForms,
		ExpressionCustom:           r.ExpressionCustom,
		SelectedLicense:            r.SelectedLicense,
	}
}
