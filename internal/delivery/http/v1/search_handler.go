package v1

import (
	"errors"
	"net/http"

	"velora-backend/internal/domain"
	"velora-backend/internal/usecase"
	"velora-backend/pkg/logger"
	"velora-backend/pkg/utils"
)

type SearchHandler struct {
	searchUC domain.SearchUsecase
}

func NewSearchHandler(searchUC domain.SearchUsecase) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
	}
}

// Search handles GET /api/v1/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, err := usecase.ParseSearchQuery(r.URL.Query())
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	result, err := h.searchUC.Search(r.Context(), query)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success:    true,
		Data:       result.Products,
		Pagination: result.Pagination,
		Filters:    result.Filters,
	})
}

// Suggestions handles GET /api/v1/search/suggestions
func (h *SearchHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	query, err := usecase.ParseSuggestionQuery(r.URL.Query())
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	suggestions, err := h.searchUC.Suggest(r.Context(), query)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    suggestions,
	})
}

// writeQueryError maps validation failures to a 400 carrying every field
// violation, and anything else to an opaque 500. Infrastructure detail is
// logged server-side only, never sent to the caller.
func writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		utils.WriteFieldErrors(w, verr.Fields)
		return
	}

	logger.WithContext(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("query", r.URL.RawQuery).
		Msg("search request failed")
	utils.WriteError(w, http.StatusInternalServerError, "Server error")
}
