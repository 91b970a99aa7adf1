package usecase

import (
	"context"
	"fmt"
	"time"

	"velora-backend/internal/domain"
)

const maxBrandSuggestions = 3

type searchUsecase struct {
	searchRepo domain.SearchRepository
	timeout    time.Duration
}

func NewSearchUsecase(searchRepo domain.SearchRepository, timeout time.Duration) domain.SearchUsecase {
	return &searchUsecase{
		searchRepo: searchRepo,
		timeout:    timeout,
	}
}

// Search turns a validated query into one result page: filter and
// ordering are resolved once, the store returns the window and the total
// count, and the pagination metadata is derived from both. The count and
// the page are separate store reads; under concurrent writes they may
// observe different states, no snapshot guarantee is made.
func (u *searchUsecase) Search(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	filter := domain.BuildFilter(query)
	order := domain.ResolveOrdering(query.Sort, query.Text != "")
	offset := domain.Offset(query.Page, query.Limit)

	total, err := u.searchRepo.CountProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	products := []domain.Product{}
	if total > 0 {
		products, err = u.searchRepo.SearchProducts(ctx, filter, order, query.Limit, offset)
		if err != nil {
			return nil, fmt.Errorf("search products: %w", err)
		}
	}

	return &domain.SearchResult{
		Products:   products,
		Pagination: domain.NewPagination(query.Page, query.Limit, total),
		Filters:    echoFilters(query),
	}, nil
}

// Suggest builds autocomplete entries from a single lightweight store
// query: one product suggestion per match in store order, then up to
// three distinct brands drawn from the same matched set. No separate
// brand query is issued, and nothing is cached.
func (u *searchUsecase) Suggest(ctx context.Context, query domain.SuggestionQuery) ([]domain.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	hints, err := u.searchRepo.SuggestProducts(ctx, query.Text, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("suggest products: %w", err)
	}

	suggestions := make([]domain.Suggestion, 0, len(hints)+maxBrandSuggestions)
	for _, h := range hints {
		suggestions = append(suggestions, domain.Suggestion{
			Text:     h.Name,
			Type:     domain.SuggestionTypeProduct,
			Category: h.Category,
		})
	}

	seen := make(map[string]struct{}, maxBrandSuggestions)
	for _, h := range hints {
		if h.Brand == "" {
			continue
		}
		if _, ok := seen[h.Brand]; ok {
			continue
		}
		seen[h.Brand] = struct{}{}
		suggestions = append(suggestions, domain.Suggestion{
			Text: h.Brand,
			Type: domain.SuggestionTypeBrand,
		})
		if len(seen) == maxBrandSuggestions {
			break
		}
	}

	if len(suggestions) > query.Limit {
		suggestions = suggestions[:query.Limit]
	}
	return suggestions, nil
}

func echoFilters(query domain.SearchQuery) domain.SearchFilters {
	filters := domain.SearchFilters{
		Query:    query.Text,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Sort:     query.Sort,
	}
	if query.Category != nil {
		filters.Category = string(*query.Category)
	}
	return filters
}
