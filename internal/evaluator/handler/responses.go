package handler

import (
	"ecrc42/internal/evaluator"
)

// EvaluateResponse is the response for POST /evaluate.
type EvaluateResponse struct {
	Outcome evaluator.Outcome `json:"outcome"`
}

// WizardResponse describes the wizard state after a transition.
type WizardResponse struct {
	Step       evaluator.Step      `json:"step"`
	StepNumber int                 `json:"step_number"`
	TotalSteps int                 `json:"total_steps"`
	Answers    evaluator.AnswerSet `json:"answers"`
	Contexts   []string            `json:"contexts,omitempty"`
	Outcome    *evaluator.Outcome  `json:"outcome,omitempty"`
}

// FromState converts a wizard state. Usage contexts are listed on the details step.
func FromState(st evaluator.WizardState, o *evaluator.Outcome) *WizardResponse {
	resp := &WizardResponse{
		Step:       st.Step,
		StepNumber: st.Step.Number(),
		TotalSteps: evaluator.TotalSteps,
		Answers:    st.Answers,
		Outcome:    o,
	}
	if st.Step == evaluator.StepUsageDetails {
		for _, c := range evaluator.ContextsFor(st.Answers.UsageType) {
			resp.Contexts = append(resp.Contexts, string(c))
		}
	}
	return resp
}
