// Package catalog owns the product list and the filtered view derived from
// it. The view is never mutated on its own: every change to the filter
// criteria recomputes it from the full list, so it is always a subset of the
// products in their original order.
package catalog

import (
	"context"
	"sort"
	"time"

	"loginportal/internal/logging"
	"loginportal/internal/models"
	"loginportal/internal/provider"
)

// Store holds the catalog and its current filter criteria. Like the session
// Manager, it assumes a single UI context and is not safe for concurrent use.
type Store struct {
	provider provider.Catalog
	log      logging.Logger

	products   []models.Product
	filtered   []models.Product
	categories []string
	criteria   Criteria
}

func NewStore(p provider.Catalog, log logging.Logger) *Store {
	return &Store{
		provider: p,
		log:      log,
		criteria: Criteria{Categories: make(map[string]struct{})},
	}
}

// Fetch loads the catalog from the provider. On failure the previous list is
// left as-is, stale or empty, and the error is returned after logging; there
// is no automatic retry.
func (s *Store) Fetch(ctx context.Context) error {
	products, err := s.provider.FetchProducts(ctx)
	if err != nil {
		s.log.Error(ctx, "catalog fetch failed", "error", err)
		return err
	}
	s.InitProducts(products)
	return nil
}

// InitProducts replaces the product list, derives the distinct category list
// (sorted, so enumeration is deterministic) and resets the filtered view to
// the full list. Existing criteria values are kept but not reapplied until
// the next criteria mutation.
func (s *Store) InitProducts(products []models.Product) {
	s.products = append([]models.Product(nil), products...)
	s.filtered = append([]models.Product(nil), products...)

	seen := make(map[string]struct{})
	s.categories = s.categories[:0]
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		s.categories = append(s.categories, p.Category)
	}
	sort.Strings(s.categories)
}

// ToggleCategory adds the category to the selection if absent and removes it
// if present, then recomputes the view. Toggling twice restores both the
// selection and the view.
func (s *Store) ToggleCategory(category string) {
	if _, ok := s.criteria.Categories[category]; ok {
		delete(s.criteria.Categories, category)
	} else {
		s.criteria.Categories[category] = struct{}{}
	}
	s.applyFilters()
}

// SetDateRange replaces both bounds at once, then recomputes the view.
// Either bound may be nil; both bounds are inclusive.
func (s *Store) SetDateRange(start, end *time.Time) {
	s.criteria.Start = start
	s.criteria.End = end
	s.applyFilters()
}

// ClearFilters empties the category selection and the date bounds and
// restores the unfiltered full list.
func (s *Store) ClearFilters() {
	s.criteria = Criteria{Categories: make(map[string]struct{})}
	s.applyFilters()
}

func (s *Store) applyFilters() {
	s.filtered = Apply(s.products, s.criteria)
}

// Products returns the full product list.
func (s *Store) Products() []models.Product { return s.products }

// Filtered returns the current filtered view.
func (s *Store) Filtered() []models.Product { return s.filtered }

// Categories returns the distinct category list, sorted ascending.
func (s *Store) Categories() []string { return s.categories }

// SelectedCategories returns the current selection, sorted ascending.
func (s *Store) SelectedCategories() []string {
	selected := make([]string, 0, len(s.criteria.Categories))
	for c := range s.criteria.Categories {
		selected = append(selected, c)
	}
	sort.Strings(selected)
	return selected
}

// DateRange returns the current date bounds; either may be nil.
func (s *Store) DateRange() (start, end *time.Time) {
	return s.criteria.Start, s.criteria.End
}
