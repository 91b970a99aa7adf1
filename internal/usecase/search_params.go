package usecase

import (
	"net/url"
	"strconv"
	"strings"

	"velora-backend/internal/domain"
	"velora-backend/internal/validation"
)

// Defaults and bounds for the two query surfaces.
const (
	DefaultSearchLimit     = 20
	DefaultSuggestionLimit = 5
)

// rawSearchParams is the typed shape the range and enum rules run
// against after the raw strings have been parsed.
type rawSearchParams struct {
	Category string   `param:"category" validate:"omitempty,oneof=men women accessories shoes bags jewelry"`
	Sort     string   `param:"sort" validate:"omitempty,oneof=relevance price_asc price_desc rating newest name"`
	MinPrice *float64 `param:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `param:"maxPrice" validate:"omitempty,gte=0"`
	Limit    int      `param:"limit" validate:"gte=1,lte=100"`
	Page     int      `param:"page" validate:"gte=1"`
}

type rawSuggestionParams struct {
	Text  string `param:"q" validate:"required"`
	Limit int    `param:"limit" validate:"gte=1,lte=10"`
}

// ParseSearchQuery validates and normalizes raw search parameters into a
// typed query. Every violation is collected; the returned error is a
// *domain.ValidationError listing all of them. No store access happens
// here, the transform is pure.
func ParseSearchQuery(values url.Values) (domain.SearchQuery, error) {
	verr := &domain.ValidationError{}

	raw := rawSearchParams{
		Category: values.Get("category"),
		Sort:     values.Get("sort"),
		Limit:    DefaultSearchLimit,
		Page:     1,
	}

	raw.MinPrice = parsePrice(values, "minPrice", verr)
	raw.MaxPrice = parsePrice(values, "maxPrice", verr)

	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err != nil {
			verr.Add("limit", "must be an integer")
		} else {
			raw.Limit = n
		}
	}
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err != nil {
			verr.Add("page", "must be an integer")
		} else {
			raw.Page = n
		}
	}

	verr.Fields = append(verr.Fields, validation.Struct(raw)...)
	if verr.HasErrors() {
		return domain.SearchQuery{}, verr
	}

	query := domain.SearchQuery{
		Text:     strings.TrimSpace(values.Get("q")),
		MinPrice: raw.MinPrice,
		MaxPrice: raw.MaxPrice,
		Sort:     domain.SortRelevance,
		Limit:    raw.Limit,
		Page:     raw.Page,
	}
	if raw.Category != "" {
		c, _ := domain.ParseCategory(raw.Category)
		query.Category = &c
	}
	if raw.Sort != "" {
		query.Sort, _ = domain.ParseSortMode(raw.Sort)
	}

	// Deliberately no minPrice <= maxPrice check: an inverted range is
	// passed through and matches nothing.
	return query, nil
}

// ParseSuggestionQuery validates the lighter autocomplete surface: the
// search text is mandatory and the window is capped at 10.
func ParseSuggestionQuery(values url.Values) (domain.SuggestionQuery, error) {
	verr := &domain.ValidationError{}

	raw := rawSuggestionParams{
		Text:  strings.TrimSpace(values.Get("q")),
		Limit: DefaultSuggestionLimit,
	}

	if v := values.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err != nil {
			verr.Add("limit", "must be an integer")
		} else {
			raw.Limit = n
		}
	}

	verr.Fields = append(verr.Fields, validation.Struct(raw)...)
	if verr.HasErrors() {
		return domain.SuggestionQuery{}, verr
	}

	return domain.SuggestionQuery{Text: raw.Text, Limit: raw.Limit}, nil
}

func parsePrice(values url.Values, key string, verr *domain.ValidationError) *float64 {
	v := values.Get(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		verr.Add(key, "must be a number")
		return nil
	}
	return &f
}
