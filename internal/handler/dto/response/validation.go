package response

import "dealdesk/internal/domain/deal"

// ValidationErrorResponse carries the field-keyed error map of a rejected
// edit or submission. Keys are wire field names.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

func FromValidationResult(result deal.ValidationResult) ValidationErrorResponse {
	errors := make(map[string]string, len(result))
	for field, msg := range result {
		errors[field.String()] = msg
	}
	return ValidationErrorResponse{Errors: errors}
}
