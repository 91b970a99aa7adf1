package v1

import (
	"errors"
	"net/http"

	"velora-backend/internal/domain"
	"velora-backend/internal/usecase"
	"velora-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// GetCategories returns the fixed category set.
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    domain.Categories,
	})
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	product, err := h.catalogUC.GetProductByID(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    product,
	})
}
