package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/ats-checker/internal/types"
)

// DecodeRequest parses a JSON analysis request. A missing or non-string text field is
// reported as an InputError.
func DecodeRequest(data []byte) (types.AnalyzeRequest, error) {
	var req types.AnalyzeRequest

	if err := json.Unmarshal(data, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return req, &InputError{Field: typeErr.Field, Message: "must be a string", Cause: err}
		}
		return req, &InputError{Message: "malformed request JSON", Cause: err}
	}

	if err := req.Validate(); err != nil {
		return req, validationInputError(err)
	}
	return req, nil
}

// AnalyzeRequest validates req at the boundary and analyzes it.
func (a *Analyzer) AnalyzeRequest(req types.AnalyzeRequest) (types.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return types.AnalysisResult{}, validationInputError(err)
	}

	if err := a.ValidateText("resume_text", *req.ResumeText); err != nil {
		return types.AnalysisResult{}, err
	}
	if err := a.ValidateText("job_description_text", *req.JobDescriptionText); err != nil {
		return types.AnalysisResult{}, err
	}

	return a.Analyze(*req.ResumeText, *req.JobDescriptionText), nil
}

// ValidateText reports an InputError when text exceeds the configured size limit.
func (a *Analyzer) ValidateText(field, text string) error {
	validate := validator.New()
	if err := validate.Var(len(text), fmt.Sprintf("max=%d", a.maxBytes)); err != nil {
		return &InputError{Field: field, Message: fmt.Sprintf("exceeds %d bytes", a.maxBytes), Cause: err}
	}
	return nil
}

func validationInputError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &InputError{Field: jsonFieldName(fieldErrs[0].Field()), Message: "is required", Cause: err}
	}
	return &InputError{Message: "request validation failed", Cause: err}
}

func jsonFieldName(structField string) string {
	switch structField {
	case "ResumeText":
		return "resume_text"
	case "JobDescriptionText":
		return "job_description_text"
	default:
		return structField
	}
}
