// internal/adapters/httpapi/cart.go
package httpapi

import (
	"net/http"
)

type lineRequest struct {
	AccountID string `json:"accountId"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.carts.AddToCart(r.Context(), req.AccountID, req.ProductID, req.Quantity); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "product added to cart"})
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.carts.RemoveFromCart(r.Context(), req.AccountID, req.ProductID); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "product removed from cart"})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.carts.ClearCart(r.Context(), req.AccountID); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}

func (h *Handler) cart(w http.ResponseWriter, r *http.Request) {
	lines, err := h.carts.Cart(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lines)
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.carts.AddToWishlist(r.Context(), req.AccountID, req.ProductID); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "product added to wishlist"})
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.carts.RemoveFromWishlist(r.Context(), req.AccountID, req.ProductID); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "product removed from wishlist"})
}

func (h *Handler) wishlist(w http.ResponseWriter, r *http.Request) {
	lines, err := h.carts.Wishlist(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lines)
}
