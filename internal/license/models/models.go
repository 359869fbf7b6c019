// Package models holds generated Creative Commons license declarations.
package models

import (
	"net/url"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"ecrc42/internal/evaluator"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	textutil "ecrc42/pkg/platform/strings"
)

var CreativeWorkReasons = []string{
	"Ich habe es selbst geschaffen",
	"Es zeigt meine persönliche Kreativität",
	"Es ist das Ergebnis meiner intellektuellen Arbeit",
	"Es erforderte kreative Entscheidungen",
}

var IndividualCharacterReasons = []string{
	"Es unterscheidet sich von anderen Werken",
	"Es trägt meine persönliche Handschrift",
	"Es hat eine einzigartige Gestaltung",
	"Es zeigt meinen individuellen Stil",
}

var ExpressionForms = []string{
	"Digitales Werk (online verfügbar)",
	"Gedrucktes Werk",
	"Audio-/Videoaufnahme",
	"Physisches Objekt",
}

const (
	MaxTitleLength = 200
	MaxTextLength  = 2000
)

// License is one generated declaration in the generated_licenses collection.
type License struct {
	ID                         id.LicenseID        `json:"id"`
	UserID                     id.UserID           `json:"userId"`
	Title                      string              `json:"title"`
	MediaType                  evaluator.MediaType `json:"mediaType,omitempty"`
	AuthorName                 string              `json:"authorName"`
	Description                string              `json:"description,omitempty"`
	WorkLink                   string              `json:"workLink,omitempty"`
	CreativeWorkReasons        []string            `json:"creativeWorkReasons"`
	CreativeWorkCustom         string              `json:"creativeWorkCustom,omitempty"`
	IndividualCharacterReasons []string            `json:"individualCharacterReasons"`
	IndividualCharacterCustom  string              `json:"individualCharacterCustom,omitempty"`
	ExpressionForms            []string            `json:"expressionForms"`
	ExpressionCustom           string              `json:"expressionCustom,omitempty"`
	SelectedLicense            evaluator.CCVariant `json:"selectedLicense"`
	CreatedAt                  time.Time           `json:"createdAt"`
}

// Draft is the user input for a new license.
type Draft struct {
	Title                      string
	MediaType                  evaluator.MediaType
	AuthorName                 string
	Description                string
	WorkLink                   string
	CreativeWorkReasons        []string
	CreativeWorkCustom         string
	IndividualCharacterReasons []string
	IndividualCharacterCustom  string
	ExpressionForms            []string
	ExpressionCustom           string
	SelectedLicense            evaluator.CCVariant
}

// NewLicense validates d. Each of the three protection sections needs at
// least one predefined reason or a custom text.
func NewLicense(licenseID id.LicenseID, owner id.UserID, d Draft, now time.Time) (*License, error) {
	l := &License{
		ID:                         licenseID,
		UserID:                     owner,
		Title:                      strings.TrimSpace(d.Title),
		MediaType:                  d.MediaType,
		AuthorName:                 strings.TrimSpace(d.AuthorName),
		Description:                strings.TrimSpace(d.Description),
		WorkLink:                   strings.TrimSpace(d.WorkLink),
		CreativeWorkReasons:        textutil.CleanList(d.CreativeWorkReasons),
		CreativeWorkCustom:         strings.TrimSpace(d.CreativeWorkCustom),
		IndividualCharacterReasons: textutil.CleanList(d.IndividualCharacterReasons),
		IndividualCharacterCustom:  strings.TrimSpace(d.IndividualCharacterCustom),
		ExpressionForms:            textutil.CleanList(d.ExpressionForms),
		ExpressionCustom:           strings.TrimSpace(d.ExpressionCustom),
		SelectedLicense:            d.SelectedLicense,
		CreatedAt:                  now,
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *License) validate() error {
	invalid := func(msg string) error { return dErrors.New(dErrors.CodeValidation, msg) }
	switch {
	case l.Title == "":
		return invalid("title is required")
	case utf8.RuneCountInString(l.Title) > MaxTitleLength:
		return invalid("title is too long")
	case l.AuthorName == "":
		return invalid("author name is required")
	case !l.SelectedLicense.Valid():
		return invalid("a valid Creative Commons license is required")
	case utf8.RuneCountInString(l.Description) > MaxTextLength:
		return invalid("description is too long")
	}
	if l.WorkLink != "" {
		u, err := url.Parse(l.WorkLink)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return invalid("work link must be an http(s) URL")
		}
	}

	sections := []struct {
		name    string
		chosen  []string
		allowed []string
		custom  string
	}{
		{"creative work", l.CreativeWorkReasons, CreativeWorkReasons, l.CreativeWorkCustom},
		{"individual character", l.IndividualCharacterReasons, IndividualCharacterReasons, l.IndividualCharacterCustom},
		{"expression form", l.ExpressionForms, ExpressionForms, l.ExpressionCustom},
	}
	for _, sec := range sections {
		for _, r := range sec.chosen {
			if !slices.Contains(sec.allowed, r) {
				return invalid("unknown " + sec.name + " reason " + r)
			}
		}
		if len(sec.chosen) == 0 && sec.custom == "" {
			return invalid("at least one " + sec.name + " reason is required")
		}
		if utf8.RuneCountInString(sec.custom) > MaxTextLength {
			return invalid(sec.name + " text is too long")
		}
	}
	return nil
}

// CreativeWork lists the chosen reasons followed by the custom text.
func (l *License) CreativeWork() []string {
	return textutil.WithCustom(l.CreativeWorkReasons, l.CreativeWorkCustom)
}

func (l *License) IndividualCharacter() []string {
	return textutil.WithCustom(l.IndividualCharacterReasons, l.IndividualCharacterCustom)
}

func (l *License) Expressions() []string {
	return textutil.WithCustom(l.ExpressionForms, l.ExpressionCustom)
}

