package handler

import (
	"time"

	"ecrc42/internal/check/models"
	"ecrc42/internal/evaluator"
)

type CheckResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Answers     evaluator.AnswerSet `json:"answers"`
	Outcome     evaluator.Outcome   `json:"outcome"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
}

type CheckListResponse struct {
	Checks []CheckResponse `json:"checks"`
	Total  int             `json:"total"`
}

func FromCheck(c *models.Check) CheckResponse {
	return CheckResponse{
		ID:          c.ID.String(),
		Status:      string(c.Status),
		Answers:     c.Answers,
		Outcome:     c.Outcome,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		CompletedAt: c.CompletedAt,
	}
}

func FromChecks(checks []*models.Check) CheckListResponse {
	resp := CheckListResponse{Checks: make([]CheckResponse, 0, len(checks)), Total: len(checks)}
	for _, c := range checks {
		resp.Checks = append(resp.Checks, FromCheck(c))
	}
	return resp
}
