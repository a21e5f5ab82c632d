package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginportal/internal/logging"
	"loginportal/internal/models"
)

// fakeCatalog реализует provider.Catalog для юнит-тестов Store.
type fakeCatalog struct {
	Products []models.Product
	Err      error
}

func (f *fakeCatalog) FetchProducts(ctx context.Context) ([]models.Product, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Products, nil
}

func newStore(t *testing.T, p *fakeCatalog) *Store {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewStore(p, log)
}

func TestStore_FetchInitializesState(t *testing.T) {
	s := newStore(t, &fakeCatalog{Products: sampleProducts(t)})

	require.NoError(t, s.Fetch(context.Background()))

	assert.Len(t, s.Products(), 4)
	assert.Equal(t, s.Products(), s.Filtered())
	assert.Equal(t, []string{"A", "B", "C"}, s.Categories())
	assert.Empty(t, s.SelectedCategories())
}

func TestStore_FetchFailureLeavesPriorList(t *testing.T) {
	fake := &fakeCatalog{Products: sampleProducts(t)}
	s := newStore(t, fake)
	require.NoError(t, s.Fetch(context.Background()))

	fake.Err = errors.New("catalog unavailable")
	err := s.Fetch(context.Background())
	require.Error(t, err)

	// список остаётся прежним, не очищается
	assert.Len(t, s.Products(), 4)
	assert.Len(t, s.Filtered(), 4)
	assert.Equal(t, []string{"A", "B", "C"}, s.Categories())
}

func TestStore_FirstFetchFailureLeavesEmptyList(t *testing.T) {
	s := newStore(t, &fakeCatalog{Err: errors.New("catalog unavailable")})

	require.Error(t, s.Fetch(context.Background()))
	assert.Empty(t, s.Products())
	assert.Empty(t, s.Filtered())
}

func TestStore_ToggleCategoryFiltersAndIsInvolutive(t *testing.T) {
	s := newStore(t, nil)
	s.InitProducts(sampleProducts(t))

	s.ToggleCategory("A")
	assert.Equal(t, []int{1, 3}, ids(s.Filtered()))
	assert.Equal(t, []string{"A"}, s.SelectedCategories())

	// повторное переключение возвращает прежний вид
	s.ToggleCategory("A")
	assert.Equal(t, []int{1, 2, 3, 4}, ids(s.Filtered()))
	assert.Empty(t, s.SelectedCategories())
}

func TestStore_SetDateRangeReplacesBothBounds(t *testing.T) {
	s := newStore(t, nil)
	s.InitProducts(sampleProducts(t))

	start := date(t, "2024-01-01")
	end := date(t, "2024-02-01")
	s.SetDateRange(&start, &end)
	assert.Equal(t, []int{1, 2}, ids(s.Filtered()))

	onlyStart := date(t, "2024-03-01")
	s.SetDateRange(&onlyStart, nil)

	gotStart, gotEnd := s.DateRange()
	require.NotNil(t, gotStart)
	assert.Nil(t, gotEnd, "prior end bound must not survive SetDateRange")
	assert.Equal(t, []int{3, 4}, ids(s.Filtered()))
}

func TestStore_ClearFiltersRestoresFullList(t *testing.T) {
	s := newStore(t, nil)
	s.InitProducts(sampleProducts(t))

	start := date(t, "2024-02-01")
	s.ToggleCategory("A")
	s.ToggleCategory("B")
	s.SetDateRange(&start, nil)
	require.NotEqual(t, len(s.Products()), len(s.Filtered()))

	s.ClearFilters()

	assert.Equal(t, []int{1, 2, 3, 4}, ids(s.Filtered()))
	assert.Empty(t, s.SelectedCategories())
	gotStart, gotEnd := s.DateRange()
	assert.Nil(t, gotStart)
	assert.Nil(t, gotEnd)
}

func TestStore_CategoryThenDateRangeScenario(t *testing.T) {
	s := newStore(t, nil)
	s.InitProducts([]models.Product{
		product(t, 1, "A", "2024-01-01"),
		product(t, 2, "B", "2024-02-01"),
	})

	s.ToggleCategory("A")
	assert.Equal(t, []int{1}, ids(s.Filtered()))

	start := date(t, "2024-02-01")
	s.SetDateRange(&start, nil)
	assert.Empty(t, s.Filtered(), "category A has no products on or after the start date")
}

func TestStore_InitProductsResetsViewButKeepsCriteria(t *testing.T) {
	s := newStore(t, nil)
	s.InitProducts(sampleProducts(t))
	s.ToggleCategory("A")
	require.Equal(t, []int{1, 3}, ids(s.Filtered()))

	// повторная загрузка: вид сбрасывается на полный список,
	// критерии не применяются до следующего изменения
	s.InitProducts(sampleProducts(t))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(s.Filtered()))
	assert.Equal(t, []string{"A"}, s.SelectedCategories())

	s.ToggleCategory("B")
	assert.Equal(t, []int{1, 2, 3}, ids(s.Filtered()))
}

func TestStore_CategoriesAreDistinctAndSorted(t *testing.T) {
	s := newStore(t, nil)
	s.InitProducts([]models.Product{
		product(t, 1, "C", "2024-01-01"),
		product(t, 2, "A", "2024-01-02"),
		product(t, 3, "C", "2024-01-03"),
		product(t, 4, "B", "2024-01-04"),
	})

	assert.Equal(t, []string{"A", "B", "C"}, s.Categories())
}
