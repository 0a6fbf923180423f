package request

// SetFieldsRequest carries a batch of raw field edits keyed by wire field
// name. Values stay untyped here; coercion happens in the domain layer.
type SetFieldsRequest struct {
	Fields map[string]any `json:"fields" binding:"required"`
}

type SetTierValueRequest struct {
	Value string `json:"value"`
}

type SetTieredPricingRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type AddImageRequest struct {
	Ref string `json:"ref" binding:"required"`
}
