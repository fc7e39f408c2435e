package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Shaolin23/adence-ai/internal/types"
)

var validate = validator.New()

// inputConstraints mirrors AssessmentInput with validation tags. Content
// length bounds are measured in characters.
type inputConstraints struct {
	Content         string `validate:"required,min=50,max=50000"`
	SubjectType     string `validate:"required,oneof=individual business"`
	ExperienceLevel string `validate:"omitempty,oneof=entry mid senior"`
}

// ValidateInput checks an assessment input against the boundary contract.
// Returns a *FieldError naming the first offending field, or nil.
func ValidateInput(input types.AssessmentInput) error {
	constraints := inputConstraints{
		Content:         input.Content,
		SubjectType:     string(input.SubjectType),
		ExperienceLevel: string(input.ExperienceLevel),
	}

	err := validate.Struct(constraints)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &FieldError{Field: "input", Message: err.Error()}
	}
	return fieldError(errs[0])
}

func fieldError(fe validator.FieldError) *FieldError {
	switch fe.Field() {
	case "Content":
		switch fe.Tag() {
		case "required":
			return &FieldError{Field: "content", Message: "content is required"}
		case "min":
			return &FieldError{Field: "content", Message: fmt.Sprintf("content must be at least %d characters", types.MinContentLength)}
		case "max":
			return &FieldError{Field: "content", Message: fmt.Sprintf("content must not exceed %d characters", types.MaxContentLength)}
		}
	case "SubjectType":
		if fe.Tag() == "required" {
			return &FieldError{Field: "subject_type", Message: "subject_type is required"}
		}
		return &FieldError{Field: "subject_type", Message: `subject_type must be "individual" or "business"`}
	case "ExperienceLevel":
		return &FieldError{Field: "experience_level", Message: `experience_level must be "entry", "mid", or "senior"`}
	}
	return &FieldError{Field: fe.Field(), Message: "invalid value"}
}
