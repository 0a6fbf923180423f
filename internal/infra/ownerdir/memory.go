package ownerdir

import (
	"context"
	"sort"
	"strings"

	"dealdesk/internal/domain/owner"
)

// MemoryDirectory serves a fixed candidate set from memory. It backs local
// development and tests where no owners table exists.
type MemoryDirectory struct {
	candidates []owner.Candidate
}

func NewMemoryDirectory(candidates []owner.Candidate) *MemoryDirectory {
	sorted := append([]owner.Candidate(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &MemoryDirectory{candidates: sorted}
}

func (d *MemoryDirectory) Search(_ context.Context, query string) ([]owner.Candidate, error) {
	needle := strings.ToLower(query)
	matched := make([]owner.Candidate, 0)
	for _, c := range d.candidates {
		if matchesCandidate(c, needle) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func matchesCandidate(c owner.Candidate, needle string) bool {
	if strings.Contains(strings.ToLower(c.Name), needle) {
		return true
	}
	return c.Email != nil && strings.Contains(strings.ToLower(*c.Email), needle)
}
