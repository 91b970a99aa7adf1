package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora-backend/internal/domain"
	"velora-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("test", "error")
	os.Exit(m.Run())
}

type stubSearchUC struct {
	result      *domain.SearchResult
	suggestions []domain.Suggestion
	err         error
	gotQuery    domain.SearchQuery
}

func (s *stubSearchUC) Search(_ context.Context, query domain.SearchQuery) (*domain.SearchResult, error) {
	s.gotQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubSearchUC) Suggest(_ context.Context, _ domain.SuggestionQuery) ([]domain.Suggestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.suggestions, nil
}

func doSearch(t *testing.T, uc domain.SearchUsecase, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewSearchHandler(uc)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)
	return rec
}

func TestSearchHandlerOK(t *testing.T) {
	stub := &stubSearchUC{result: &domain.SearchResult{
		Products: []domain.Product{
			{ID: "1", Name: "Dress Shirt", Category: domain.CategoryMen, Price: 150, IsActive: true},
		},
		Pagination: domain.NewPagination(1, 2, 4),
		Filters:    domain.SearchFilters{Query: "shirt", Sort: domain.SortPriceDesc},
	}}

	rec := doSearch(t, stub, "/api/v1/search?q=shirt&sort=price_desc&limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Success    bool              `json:"success"`
		Data       []domain.Product  `json:"data"`
		Pagination domain.Pagination `json:"pagination"`
		Filters    struct {
			Query string `json:"query"`
			Sort  string `json:"sort"`
		} `json:"filters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Dress Shirt", body.Data[0].Name)
	assert.Equal(t, int64(4), body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.True(t, body.Pagination.HasNextPage)
	assert.Equal(t, "shirt", body.Filters.Query)
	assert.Equal(t, "price_desc", body.Filters.Sort)

	assert.Equal(t, "shirt", stub.gotQuery.Text)
	assert.Equal(t, 2, stub.gotQuery.Limit)
}

func TestSearchHandlerMissingTextIsAccepted(t *testing.T) {
	stub := &stubSearchUC{result: &domain.SearchResult{
		Products:   []domain.Product{},
		Pagination: domain.NewPagination(1, 20, 0),
	}}

	rec := doSearch(t, stub, "/api/v1/search")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", stub.gotQuery.Text)
	assert.Equal(t, domain.SortRelevance, stub.gotQuery.Sort)
}

func TestSearchHandlerValidationFailure(t *testing.T) {
	stub := &stubSearchUC{}

	rec := doSearch(t, stub, "/api/v1/search?limit=101&category=electronics")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []domain.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["limit"])
	assert.True(t, fields["category"])
}

func TestSearchHandlerInfrastructureFailure(t *testing.T) {
	stub := &stubSearchUC{err: errors.New("pool exhausted: pg timeout")}

	rec := doSearch(t, stub, "/api/v1/search?q=shirt")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Internal detail never leaks to the caller.
	assert.Equal(t, "Server error", body["error"])
	assert.NotContains(t, rec.Body.String(), "pg timeout")
}

func TestSuggestionsHandlerOK(t *testing.T) {
	stub := &stubSearchUC{suggestions: []domain.Suggestion{
		{Text: "Jacket Classic", Type: "product", Category: domain.CategoryMen},
		{Text: "Jackson & Co", Type: "brand"},
	}}
	handler := NewSearchHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/suggestions?q=jack", nil)
	rec := httptest.NewRecorder()
	handler.Suggestions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Data    []domain.Suggestion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "product", body.Data[0].Type)
	assert.Equal(t, "brand", body.Data[1].Type)
}

func TestSuggestionsHandlerRequiresText(t *testing.T) {
	handler := NewSearchHandler(&stubSearchUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/suggestions", nil)
	rec := httptest.NewRecorder()
	handler.Suggestions(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors []domain.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "q", body.Errors[0].Field)
}
