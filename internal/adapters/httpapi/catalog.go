// internal/adapters/httpapi/catalog.go
package httpapi

import (
	"net/http"

	"github.com/shopcore/backend/internal/domain"
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.Product
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := h.catalog.CreateProduct(r.Context(), req)
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}
