package handler

import (
	"time"

	"ecrc42/internal/evaluator"
	"ecrc42/internal/license/models"
)

type LicenseResponse struct {
	ID                         string    `json:"id"`
	Title                      string    `json:"title"`
	MediaType                  string    `json:"media_type,omitempty"`
	AuthorName                 string    `json:"author_name"`
	Description                string    `json:"description,omitempty"`
	WorkLink                   string    `json:"work_link,omitempty"`
	CreativeWorkReasons        []string  `json:"creative_work_reasons"`
	CreativeWorkCustom         string    `json:"creative_work_custom,omitempty"`
	IndividualCharacterReasons []string  `json:"individual_character_reasons"`
	IndividualCharacterCustom  string    `json:"individual_character_custom,omitempty"`
	ExpressionForms            []string  `json:"expression_forms"`
	ExpressionCustom           string    `json:"expression_custom,omitempty"`
	SelectedLicense            string    `json:"selected_license"`
	LicenseDescription         string    `json:"license_description"`
	DeedURL                    string    `json:"deed_url"`
	CreatedAt                  time.Time `json:"created_at"`
}

type LicenseListResponse struct {
	Licenses []LicenseResponse `json:"licenses"`
	Total    int               `json:"total"`
}

type VariantOption struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	DeedURL     string `json:"deed_url"`
}

// OptionsResponse feeds the license generator form.
type OptionsResponse struct {
	CreativeWorkReasons        []string        `json:"creative_work_reasons"`
	IndividualCharacterReasons []string        `json:"individual_character_reasons"`
	ExpressionForms            []string        `json:"expression_forms"`
	Licenses                   []VariantOption `json:"licenses"`
}

func FromLicense(l *models.License) LicenseResponse {
	return LicenseResponse{
		ID:                         l.ID.String(),
		Title:                      l.Title,
		MediaType:                  string(l.MediaType),
		AuthorName:                 l.AuthorName,
		Description:                l.Description,
		WorkLink:                   l.WorkLink,
		CreativeWorkReasons:        nonNil(l.CreativeWorkReasons),
		CreativeWorkCustom:         l.CreativeWorkCustom,
		IndividualCharacterReasons: nonNil(l.IndividualCharacterReasons),
		IndividualCharacterCustom:  l.IndividualCharacterCustom,
		ExpressionForms:            nonNil(l.ExpressionForms),
		ExpressionCustom:           l.ExpressionCustom,
		SelectedLicense:            string(l.SelectedLicense),
		LicenseDescription:         l.SelectedLicense.Description(),
		DeedURL:                    l.SelectedLicense.DeedURL(),
		CreatedAt:                  l.CreatedAt,
	}
}

func FromLicenses(ls []*models.License) LicenseListResponse {
	resp := LicenseListResponse{Licenses: make([]LicenseResponse, 0, len(ls)), Total: len(ls)}
	for _, l := range ls {
		resp.Licenses = append(resp.Licenses, FromLicense(l))
	}
	return resp
}

func Options() OptionsResponse {
	resp := OptionsResponse{
		CreativeWorkReasons:        models.CreativeWorkReasons,
		IndividualCharacterReasons: models.IndividualCharacterReasons,
		ExpressionForms:            models.ExpressionForms,
	}
	for _, v := range evaluator.CCVariants() {
		resp.Licenses = append(resp.Licenses, VariantOption{
			Code:        string(v),
			Description: v.Description(),
			DeedURL:     v.DeedURL(),
		})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
