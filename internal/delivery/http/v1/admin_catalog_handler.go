package v1

import (
	"errors"
	"net/http"

	"velora-backend/internal/domain"
	"velora-backend/internal/usecase"
	"velora-backend/pkg/logger"
	"velora-backend/pkg/utils"

	"github.com/goccy/go-json"
)

// AdminCatalogHandler exposes the product write path. Authentication is
// handled upstream by the gateway, not by this service.
type AdminCatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewAdminCatalogHandler(uc *usecase.CatalogUsecase) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalogUC: uc}
}

func (h *AdminCatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.catalogUC.CreateProduct(r.Context(), &product); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, domain.Response{
		Success: true,
		Data:    product,
	})
}

func (h *AdminCatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	product.ID = r.PathValue("id")

	if err := h.catalogUC.UpdateProduct(r.Context(), &product); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    product,
	})
}

func (h *AdminCatalogHandler) UpdateProductStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IsActive bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.catalogUC.UpdateProductStatus(r.Context(), r.PathValue("id"), body.IsActive); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Status updated",
	})
}

func (h *AdminCatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Product deleted",
	})
}

func (h *AdminCatalogHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		utils.WriteFieldErrors(w, verr.Fields)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	logger.WithContext(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg("admin catalog request failed")
	utils.WriteError(w, http.StatusInternalServerError, "Server error")
}
