package validation

import (
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

const maxQuestionLength = 2000

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuestionRequest checks the four required creation fields
// before the service is invoked.
func (v *Validator) ValidateCreateQuestionRequest(req *dto.CreateQuestionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if len(req.Question) > maxQuestionLength {
		errors = append(errors, domain.NewOutOfRangeError("question", len(req.Question), 1, maxQuestionLength))
	}

	if strings.TrimSpace(req.Answer) == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	}

	if req.Category <= 0 {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}

	if req.Difficulty <= 0 {
		errors = append(errors, domain.NewMissingFieldError("difficulty"))
	}

	return errors
}

// ValidateQuizRequest checks the quiz draw scope. The exclusion set may
// be empty; the scope must be present.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.QuizCategory == nil {
		errors = append(errors, domain.NewMissingFieldError("quiz_category"))
	}

	for _, id := range req.PreviousQuestions {
		if id <= 0 {
			errors = append(errors, domain.NewInvalidFormatError("previous_questions", id))
			break
		}
	}

	return errors
}
