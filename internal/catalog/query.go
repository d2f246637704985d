package catalog

import (
	"strings"

	"github.com/priyanshu/opportunity-board/internal/models"
)

// Query filters records by kind and free-text search, preserving the input
// order. Both filters are conjunctive. It is a pure function: no hidden
// state, no mutation of the input slice, identical inputs give identical
// output.
func Query(records []models.Opportunity, kind models.Kind, search string) []models.Opportunity {
	filtered := records

	if kind != models.KindAll && kind != "" {
		keep := make([]models.Opportunity, 0, len(filtered))
		for _, rec := range filtered {
			if rec.Kind == kind {
				keep = append(keep, rec)
			}
		}
		filtered = keep
	}

	if needle := strings.ToLower(strings.TrimSpace(search)); needle != "" {
		keep := make([]models.Opportunity, 0, len(filtered))
		for _, rec := range filtered {
			if matchesSearch(rec, needle) {
				keep = append(keep, rec)
			}
		}
		filtered = keep
	}

	return filtered
}

func matchesSearch(rec models.Opportunity, needle string) bool {
	return strings.Contains(strings.ToLower(rec.Title), needle) ||
		strings.Contains(strings.ToLower(rec.Organization), needle) ||
		strings.Contains(strings.ToLower(rec.Description), needle)
}
