package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venues-server/models"
)

func TestQueryVenues_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		spec models.FilterSpec
		want []string
	}{
		{
			name: "tennis by rating",
			spec: models.FilterSpec{SelectedSports: []string{"Tennis"}, PriceRange: models.PriceAny, SortKey: models.SortByRating},
			want: []string{"3", "1"},
		},
		{
			name: "cheap venues by lowest price",
			spec: models.FilterSpec{PriceRange: models.PriceUpTo25, SortKey: models.SortByPriceLow},
			want: []string{"3", "1"},
		},
		{
			name: "search arena",
			spec: models.FilterSpec{SearchQuery: "arena"},
			want: []string{"2"},
		},
		{
			name: "nobody offers swimming",
			spec: models.FilterSpec{SelectedSports: []string{"Swimming"}},
			want: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ids(QueryVenues(sampleCatalog(), test.spec)))
		})
	}
}

func TestQueryVenues_DefaultSpecReturnsAllByRating(t *testing.T) {
	got := QueryVenues(sampleCatalog(), models.DefaultFilterSpec())
	assert.Equal(t, []string{"3", "1", "6", "4", "2", "5"}, ids(got))
}

func TestQueryVenues_ClearAllAfterEmptyResult(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.ToggleSport("Swimming")
	spec.SetSortKey(models.SortByName)
	assert.Empty(t, QueryVenues(sampleCatalog(), spec))

	spec.ClearAll()

	assert.Equal(t, []string{"3", "1", "6", "4", "2", "5"}, ids(QueryVenues(sampleCatalog(), spec)))
}

func TestQueryVenues_Idempotent(t *testing.T) {
	specs := []models.FilterSpec{
		{},
		{SelectedSports: []string{"Basketball"}, SortKey: models.SortByName},
		{PriceRange: models.Price25To50, SortKey: models.SortByPriceHigh},
		{SearchQuery: "s", SortKey: models.SortByReviews},
	}

	for _, spec := range specs {
		once := QueryVenues(sampleCatalog(), spec)
		twice := QueryVenues(once, spec)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestQueryVenues_Deterministic(t *testing.T) {
	spec := models.FilterSpec{SearchQuery: "side", SortKey: models.SortByRating}
	assert.Equal(t, QueryVenues(sampleCatalog(), spec), QueryVenues(sampleCatalog(), spec))
}

func TestPage(t *testing.T) {
	result := QueryVenues(sampleCatalog(), models.FilterSpec{})

	first, more := Page(result, 0, 4)
	assert.Equal(t, []string{"3", "1", "6", "4"}, ids(first))
	assert.True(t, more)

	second, more := Page(result, 1, 4)
	assert.Equal(t, []string{"2", "5"}, ids(second))
	assert.False(t, more)

	beyond, more := Page(result, 5, 4)
	assert.Empty(t, beyond)
	assert.False(t, more)

	exact, more := Page(result, 0, 6)
	assert.Len(t, exact, 6)
	assert.False(t, more)
}
