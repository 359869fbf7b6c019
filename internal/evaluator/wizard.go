package evaluator

import (
	"fmt"
	"strings"

	dErrors "ecrc42/pkg/domain-errors"
)

// Step is a wizard page.
type Step string

const (
	StepMediaType    Step = "media_type"
	StepAICheck      Step = "ai_check"
	StepSource       Step = "source"
	StepPublicDomain Step = "public_domain"
	StepCCLicense    Step = "cc_license"
	StepCCVariant    Step = "cc_variant"
	StepUsageType    Step = "usage_type"
	StepUsageDetails Step = "usage_details"
	StepResult       Step = "result"
)

var stepOrder = []Step{
	StepMediaType, StepAICheck, StepSource, StepPublicDomain, StepCCLicense,
	StepCCVariant, StepUsageType, StepUsageDetails, StepResult,
}

// Number is the 1-based position shown in the progress bar; 0 for unknown steps.
func (s Step) Number() int {
	for i, st := range stepOrder {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// TotalSteps excludes the result page.
const TotalSteps = 8

// WizardState is an immutable snapshot of a wizard run.
// Transitions return a new state and never modify the receiver.
type WizardState struct {
	Step    Step      `json:"step"`
	Answers AnswerSet `json:"answers"`
}

// NewWizard starts a run at the first step.
func NewWizard() WizardState {
	return WizardState{Step: StepMediaType}
}

// WithAnswers returns a copy of s carrying a.
func (s WizardState) WithAnswers(a AnswerSet) WizardState {
	s.Answers = a
	return s
}

// Next validates the current step and advances, applying the branch rules:
// public domain skips the license questions, and "no CC license" marks the
// work as protected unless it is pure AI output.
func (s WizardState) Next() (WizardState, error) {
	a := s.Answers
	switch s.Step {
	case StepMediaType:
		if a.MediaType == "" {
			return s, stepError("mediaType")
		}
		return s.to(StepAICheck), nil

	case StepAICheck:
		if a.AICreated.IsUnknown() {
			return s, stepError("aiCreated")
		}
		if a.AICreated.IsYes() && a.HumanCreativity.IsUnknown() {
			return s, stepError("humanCreativity")
		}
		return s.to(StepSource), nil

	case StepSource:
		if a.SourceType == "" {
			return s, stepError("sourceType")
		}
		return s.to(StepPublicDomain), nil

	case StepPublicDomain:
		if a.PublicDomain.IsUnknown() {
			return s, stepError("publicDomain")
		}
		if a.PublicDomain.IsYes() {
			return s.to(StepUsageType), nil
		}
		return s.to(StepCCLicense), nil

	case StepCCLicense:
		if a.HasCCLicense.IsUnknown() {
			return s, stepError("hasCCLicense")
		}
		if a.HasCCLicense.IsYes() {
			return s.to(StepCCVariant), nil
		}
		next := s.to(StepUsageType)
		next.Answers.IsProtected = TriOf(!pureAIOutput(a))
		return next, nil

	case StepCCVariant:
		if !a.CCLicense.Valid() {
			return s, stepError("ccLicense")
		}
		return s.to(StepUsageType), nil

	case StepUsageType:
		if a.UsageType == "" {
			return s, stepError("usageType")
		}
		return s.to(StepUsageDetails), nil

	case StepUsageDetails:
		return s.to(StepResult), nil

	case StepResult:
		return s, dErrors.New(dErrors.CodeBadRequest, "wizard is already complete")
	}
	return s, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown wizard step %q", s.Step))
}

// Back returns to the step that led to the current one.
func (s WizardState) Back() (WizardState, error) {
	a := s.Answers
	switch s.Step {
	case StepMediaType:
		return s, dErrors.New(dErrors.CodeBadRequest, "already at the first step")
	case StepAICheck:
		return s.to(StepMediaType), nil
	case StepSource:
		return s.to(StepMediaType), nil
	case StepPublicDomain:
		return s.to(StepSource), nil
	case StepCCLicense:
		return s.to(StepPublicDomain), nil
	case StepCCVariant:
		return s.to(StepCCLicense), nil
	case StepUsageType:
		switch {
		case a.HasCCLicense.IsYes():
			return s.to(StepCCLicense), nil
		case a.PublicDomain.IsYes():
			return s.to(StepSource), nil
		default:
			return s.to(StepPublicDomain), nil
		}
	case StepUsageDetails:
		return s.to(StepUsageType), nil
	case StepResult:
		return s.to(StepUsageDetails), nil
	}
	return s, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown wizard step %q", s.Step))
}

// Result evaluates the answers. Only meaningful once Step is StepResult.
func (s WizardState) Result() Outcome {
	return Evaluate(s.Answers)
}

func (s WizardState) to(step Step) WizardState {
	s.Step = step
	return s
}

func pureAIOutput(a AnswerSet) bool {
	return a.AICreated.IsYes() && a.HumanCreativity.IsNo()
}

func stepError(field string) error {
	return dErrors.New(dErrors.CodeValidation, field+" is required")
}

// Missing lists the answers a completed wizard run must contain, by JSON name.
func Missing(a AnswerSet) []string {
	var missing []string
	if a.MediaType == "" {
		missing = append(missing, "mediaType")
	}
	if a.AICreated.IsUnknown() {
		missing = append(missing, "aiCreated")
	} else if a.AICreated.IsYes() && a.HumanCreativity.IsUnknown() {
		missing = append(missing, "humanCreativity")
	}
	if a.SourceType == "" {
		missing = append(missing, "sourceType")
	}
	if a.PublicDomain.IsUnknown() {
		missing = append(missing, "publicDomain")
	} else if a.PublicDomain.IsNo() {
		if a.HasCCLicense.IsUnknown() {
			missing = append(missing, "hasCCLicense")
		} else if a.HasCCLicense.IsYes() && !a.CCLicense.Valid() {
			missing = append(missing, "ccLicense")
		}
	}
	if a.UsageType == "" {
		missing = append(missing, "usageType")
	}
	return missing
}

// ValidateComplete gates persistence: it fails with a validation error naming
// every missing answer.
func ValidateComplete(a AnswerSet) error {
	missing := Missing(a)
	if len(missing) == 0 {
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, "incomplete answers: missing "+strings.Join(missing, ", "))
}
