package domain

import "context"

// SortMode is the closed set of sort keys accepted by the search API.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortRating    SortMode = "rating"
	SortNewest    SortMode = "newest"
	SortName      SortMode = "name"
)

var SortModes = []SortMode{
	SortRelevance,
	SortPriceAsc,
	SortPriceDesc,
	SortRating,
	SortNewest,
	SortName,
}

// ParseSortMode returns the matching SortMode, or false for unknown values.
func ParseSortMode(s string) (SortMode, bool) {
	for _, m := range SortModes {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// SearchQuery is a fully validated search request. Zero-value optional
// fields mean "not supplied".
type SearchQuery struct {
	Text     string
	Category *Category
	MinPrice *float64
	MaxPrice *float64
	Sort     SortMode
	Limit    int
	Page     int
}

// SuggestionQuery is a validated autocomplete request.
type SuggestionQuery struct {
	Text  string
	Limit int
}

// Filter is the store-agnostic conjunction of search criteria. Every
// filter constrains to active products; the store adapter translates the
// remaining optional criteria into its native query language.
type Filter struct {
	Text     string
	Category *Category
	MinPrice *float64
	MaxPrice *float64
}

// BuildFilter maps a validated query onto the filter the store evaluates.
// An inverted price range (min > max) is passed through untouched and
// simply matches nothing.
func BuildFilter(q SearchQuery) Filter {
	return Filter{
		Text:     q.Text,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}
}

// OrderField names a sortable product column.
type OrderField string

const (
	OrderByPrice     OrderField = "price"
	OrderByRating    OrderField = "rating"
	OrderByCreatedAt OrderField = "created_at"
	OrderByName      OrderField = "name"
)

// Ordering is the resolved sort rule. When ByTextScore is set, the store
// orders by its own text-relevance score (descending); the engine never
// interprets the score itself. Ties are stable but store-defined, no
// secondary key is added.
type Ordering struct {
	ByTextScore bool
	Field       OrderField
	Desc        bool
}

// ResolveOrdering maps a sort mode to an ordering rule. Relevance without
// a search term has no signal to rank by and falls back to newest-first.
func ResolveOrdering(mode SortMode, hasText bool) Ordering {
	switch mode {
	case SortPriceAsc:
		return Ordering{Field: OrderByPrice}
	case SortPriceDesc:
		return Ordering{Field: OrderByPrice, Desc: true}
	case SortRating:
		return Ordering{Field: OrderByRating, Desc: true}
	case SortNewest:
		return Ordering{Field: OrderByCreatedAt, Desc: true}
	case SortName:
		return Ordering{Field: OrderByName}
	default: // SortRelevance
		if hasText {
			return Ordering{ByTextScore: true}
		}
		return Ordering{Field: OrderByCreatedAt, Desc: true}
	}
}

// SearchFilters echoes the resolved filters back in the response.
type SearchFilters struct {
	Query    string   `json:"query,omitempty"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Sort     SortMode `json:"sort"`
}

// SearchResult is one page of matches plus pagination metadata.
type SearchResult struct {
	Products   []Product
	Pagination Pagination
	Filters    SearchFilters
}

const (
	SuggestionTypeProduct = "product"
	SuggestionTypeBrand   = "brand"
)

// Suggestion is a lightweight autocomplete entry, computed fresh per
// request and never persisted.
type Suggestion struct {
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Category Category `json:"category,omitempty"`
}

// ProductHint is the projection the suggestion query retrieves.
type ProductHint struct {
	Name     string
	Brand    string
	Category Category
}

// --- Interfaces ---

type SearchRepository interface {
	// SearchProducts returns the window of active products matching the
	// filter, ordered per the resolved ordering.
	SearchProducts(ctx context.Context, filter Filter, order Ordering, limit, offset int) ([]Product, error)

	// CountProducts returns the total number of matches ignoring the
	// window. It runs independently of SearchProducts; no snapshot
	// consistency between the two is guaranteed.
	CountProducts(ctx context.Context, filter Filter) (int64, error)

	// SuggestProducts returns at most limit active products whose name or
	// brand contains text (case-insensitive).
	SuggestProducts(ctx context.Context, text string, limit int) ([]ProductHint, error)
}

type SearchUsecase interface {
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)
	Suggest(ctx context.Context, query SuggestionQuery) ([]Suggestion, error)
}
