package catalog

import (
	"time"

	"loginportal/internal/models"
)

// Criteria is the current filter selection: category membership plus an
// inclusive date range. Either date bound may be nil.
type Criteria struct {
	Categories map[string]struct{}
	Start      *time.Time
	End        *time.Time
}

// Apply filters products by c. Category selection uses OR semantics within
// the set; the date bounds and the category predicate compose by AND. The
// result preserves the relative order of the input and is always a fresh
// slice, never a view into it.
func Apply(products []models.Product, c Criteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if len(c.Categories) > 0 {
			if _, ok := c.Categories[p.Category]; !ok {
				continue
			}
		}
		if c.Start != nil && p.DateCreated.Before(*c.Start) {
			continue
		}
		if c.End != nil && p.DateCreated.After(*c.End) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
