package request

type OwnerSearchRequest struct {
	Query string `json:"query"`
}

type OwnerSelectRequest struct {
	CandidateID string `json:"candidateId" binding:"required"`
}
