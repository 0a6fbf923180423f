package response

import (
	"dealdesk/internal/domain/deal"
	"dealdesk/internal/usecase/queries"
)

// DraftEditResponse pairs the post-edit draft snapshot with any per-field
// errors from the same batch. Accepted values are applied even when other
// fields in the batch are rejected.
type DraftEditResponse struct {
	Draft  *queries.DraftView `json:"draft"`
	Errors map[string]string  `json:"errors,omitempty"`
}

func NewDraftEditResponse(view *queries.DraftView, result deal.ValidationResult) DraftEditResponse {
	resp := DraftEditResponse{Draft: view}
	if len(result) > 0 {
		resp.Errors = FromValidationResult(result).Errors
	}
	return resp
}
