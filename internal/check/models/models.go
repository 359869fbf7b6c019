// Package models holds the persisted check record.
package models

import (
	"time"

	"ecrc42/internal/evaluator"
	id "ecrc42/pkg/domain"
)

// Status is the lifecycle state of a check.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// Check is one wizard run stored in the checked_products collection.
type Check struct {
	ID          id.CheckID          `json:"id"`
	UserID      id.UserID           `json:"userId"`
	Status      Status              `json:"status"`
	Answers     evaluator.AnswerSet `json:"answers"`
	Outcome     evaluator.Outcome   `json:"outcome"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
}

// NewCheck builds a record for a fresh wizard run.
func NewCheck(checkID id.CheckID, userID id.UserID, answers evaluator.AnswerSet, outcome evaluator.Outcome, finalize bool, now time.Time) *Check {
	c := &Check{
		ID:        checkID,
		UserID:    userID,
		Status:    StatusDraft,
		Answers:   answers,
		Outcome:   outcome,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if finalize {
		c.markCompleted(now)
	}
	return c
}

func (c *Check) IsCompleted() bool { return c.Status == StatusCompleted }

func (c *Check) OwnedBy(userID id.UserID) bool { return c.UserID == userID }

// Revise replaces the answers and outcome. The status is kept.
func (c *Check) Revise(answers evaluator.AnswerSet, outcome evaluator.Outcome, now time.Time) {
	c.Answers = answers
	c.Outcome = outcome
	c.UpdatedAt = now
}

// Complete moves a draft to completed. It reports false when the check was
// already completed.
func (c *Check) Complete(now time.Time) bool {
	if c.IsCompleted() {
		return false
	}
	c.markCompleted(now)
	return true
}

func (c *Check) markCompleted(now time.Time) {
	c.Status = StatusCompleted
	c.CompletedAt = &now
	c.UpdatedAt = now
}
