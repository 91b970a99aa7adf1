package usecase

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora-backend/internal/domain"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	m := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		m[f.Field] = f.Message
	}
	return m
}

func TestParseSearchQueryDefaults(t *testing.T) {
	query, err := ParseSearchQuery(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, "", query.Text)
	assert.Nil(t, query.Category)
	assert.Nil(t, query.MinPrice)
	assert.Nil(t, query.MaxPrice)
	assert.Equal(t, domain.SortRelevance, query.Sort)
	assert.Equal(t, DefaultSearchLimit, query.Limit)
	assert.Equal(t, 1, query.Page)
}

func TestParseSearchQueryFull(t *testing.T) {
	query, err := ParseSearchQuery(url.Values{
		"q":        {"  shirt  "},
		"category": {"men"},
		"minPrice": {"10"},
		"maxPrice": {"200"},
		"sort":     {"price_desc"},
		"limit":    {"2"},
		"page":     {"1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "shirt", query.Text)
	require.NotNil(t, query.Category)
	assert.Equal(t, domain.CategoryMen, *query.Category)
	assert.Equal(t, 10.0, *query.MinPrice)
	assert.Equal(t, 200.0, *query.MaxPrice)
	assert.Equal(t, domain.SortPriceDesc, query.Sort)
	assert.Equal(t, 2, query.Limit)
	assert.Equal(t, 1, query.Page)
}

func TestParseSearchQueryLimitBounds(t *testing.T) {
	for _, v := range []string{"1", "100"} {
		_, err := ParseSearchQuery(url.Values{"limit": {v}})
		assert.NoError(t, err, "limit=%s should be accepted", v)
	}
	for _, v := range []string{"0", "101", "-3"} {
		_, err := ParseSearchQuery(url.Values{"limit": {v}})
		fields := fieldsOf(t, err)
		assert.Contains(t, fields, "limit", "limit=%s should be rejected", v)
	}
}

func TestParseSearchQueryInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		field  string
	}{
		{"unknown category", url.Values{"category": {"electronics"}}, "category"},
		{"category is case sensitive", url.Values{"category": {"Men"}}, "category"},
		{"unknown sort", url.Values{"sort": {"popularity"}}, "sort"},
		{"negative min price", url.Values{"minPrice": {"-5"}}, "minPrice"},
		{"negative max price", url.Values{"maxPrice": {"-0.01"}}, "maxPrice"},
		{"non-numeric min price", url.Values{"minPrice": {"abc"}}, "minPrice"},
		{"non-numeric max price", url.Values{"maxPrice": {"12,50"}}, "maxPrice"},
		{"non-integer limit", url.Values{"limit": {"ten"}}, "limit"},
		{"page below one", url.Values{"page": {"0"}}, "page"},
		{"non-integer page", url.Values{"page": {"first"}}, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSearchQuery(tt.values)
			fields := fieldsOf(t, err)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestParseSearchQueryCollectsAllViolations(t *testing.T) {
	_, err := ParseSearchQuery(url.Values{
		"category": {"electronics"},
		"sort":     {"popularity"},
		"minPrice": {"abc"},
		"limit":    {"500"},
		"page":     {"0"},
	})

	fields := fieldsOf(t, err)
	assert.Len(t, fields, 5)
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "sort")
	assert.Contains(t, fields, "minPrice")
	assert.Contains(t, fields, "limit")
	assert.Contains(t, fields, "page")
}

func TestParseSearchQueryAllowsInvertedPriceRange(t *testing.T) {
	query, err := ParseSearchQuery(url.Values{
		"minPrice": {"100"},
		"maxPrice": {"50"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, *query.MinPrice)
	assert.Equal(t, 50.0, *query.MaxPrice)
}

func TestParseSearchQueryBlankTextIsAbsent(t *testing.T) {
	query, err := ParseSearchQuery(url.Values{"q": {"   "}})
	require.NoError(t, err)
	assert.Equal(t, "", query.Text)
}

func TestParseSuggestionQuery(t *testing.T) {
	query, err := ParseSuggestionQuery(url.Values{"q": {" jack "}})
	require.NoError(t, err)
	assert.Equal(t, "jack", query.Text)
	assert.Equal(t, DefaultSuggestionLimit, query.Limit)

	query, err = ParseSuggestionQuery(url.Values{"q": {"jack"}, "limit": {"10"}})
	require.NoError(t, err)
	assert.Equal(t, 10, query.Limit)
}

func TestParseSuggestionQueryInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		field  string
	}{
		{"missing text", url.Values{}, "q"},
		{"blank text", url.Values{"q": {"   "}}, "q"},
		{"limit above ten", url.Values{"q": {"jack"}, "limit": {"11"}}, "limit"},
		{"limit below one", url.Values{"q": {"jack"}, "limit": {"0"}}, "limit"},
		{"non-integer limit", url.Values{"q": {"jack"}, "limit": {"many"}}, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSuggestionQuery(tt.values)
			fields := fieldsOf(t, err)
			assert.Contains(t, fields, tt.field)
		})
	}
}
