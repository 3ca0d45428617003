package validation

import (
	"career-compass/internal/domain"
	"strings"
)

const maxLearnerNameLength = 100

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEvaluateRequest validates the shape of an evaluate request. Answer
// content is validated against the questionnaire catalog by the domain; this
// only rejects requests that are structurally unusable.
func (v *Validator) ValidateEvaluateRequest(learnerName string, responses map[string]string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(learnerName)
	if trimmed == "" {
		errors = append(errors, domain.NewRequiredFieldError("learner_name"))
	} else if len(trimmed) > maxLearnerNameLength {
		errors = append(errors, domain.NewOutOfRangeError("learner_name", len(trimmed), 1, maxLearnerNameLength))
	}

	if len(responses) == 0 {
		errors = append(errors, domain.NewRequiredFieldError("responses"))
	}

	return errors
}
