package owner

import "context"

// Candidate is one deal-owner search hit from the directory.
type Candidate struct {
	ID          string
	Name        string
	Email       *string
	ActiveDeals *int
}

// Directory is the external lookup collaborator. Matching policy
// (case-insensitive substring over name and contact) belongs to the
// implementation, not the binder.
type Directory interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}
