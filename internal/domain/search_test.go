package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, ok := ParseCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := ParseCategory("electronics")
	assert.False(t, ok)
	_, ok = ParseCategory("Men")
	assert.False(t, ok)
	_, ok = ParseCategory("")
	assert.False(t, ok)
}

func TestParseSortMode(t *testing.T) {
	for _, m := range SortModes {
		got, ok := ParseSortMode(string(m))
		assert.True(t, ok)
		assert.Equal(t, m, got)
	}

	_, ok := ParseSortMode("popularity")
	assert.False(t, ok)
}

func TestResolveOrdering(t *testing.T) {
	tests := []struct {
		name    string
		mode    SortMode
		hasText bool
		want    Ordering
	}{
		{"price ascending", SortPriceAsc, false, Ordering{Field: OrderByPrice}},
		{"price descending", SortPriceDesc, false, Ordering{Field: OrderByPrice, Desc: true}},
		{"rating descending", SortRating, false, Ordering{Field: OrderByRating, Desc: true}},
		{"newest first", SortNewest, false, Ordering{Field: OrderByCreatedAt, Desc: true}},
		{"name ascending", SortName, false, Ordering{Field: OrderByName}},
		{"relevance with text uses store score", SortRelevance, true, Ordering{ByTextScore: true}},
		{"relevance without text falls back to newest", SortRelevance, false, Ordering{Field: OrderByCreatedAt, Desc: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOrdering(tt.mode, tt.hasText))
		})
	}
}

func TestBuildFilter(t *testing.T) {
	cat := CategoryShoes
	min, max := 50.0, 100.0

	filter := BuildFilter(SearchQuery{
		Text:     "boots",
		Category: &cat,
		MinPrice: &min,
		MaxPrice: &max,
	})

	assert.Equal(t, "boots", filter.Text)
	assert.Equal(t, &cat, filter.Category)
	assert.Equal(t, &min, filter.MinPrice)
	assert.Equal(t, &max, filter.MaxPrice)
}

func TestBuildFilterPreservesInvertedRange(t *testing.T) {
	min, max := 100.0, 50.0

	filter := BuildFilter(SearchQuery{MinPrice: &min, MaxPrice: &max})

	// The inverted range is passed through uncorrected; it simply
	// matches nothing at the store.
	assert.Equal(t, 100.0, *filter.MinPrice)
	assert.Equal(t, 50.0, *filter.MaxPrice)
}
