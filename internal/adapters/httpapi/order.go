// internal/adapters/httpapi/order.go
package httpapi

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shopcore/backend/internal/application"
)

type placeOrderRequest struct {
	AddressID     string          `json:"addressId"`
	ProductIDs    []string        `json:"productIds"`
	PaymentMethod string          `json:"paymentMethod"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.orders.PlaceOrder(r.Context(), application.PlaceOrderRequest{
		AccountID:     r.PathValue("id"),
		AddressID:     req.AddressID,
		ProductIDs:    req.ProductIDs,
		PaymentMethod: req.PaymentMethod,
		TotalPrice:    req.TotalPrice,
	})
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) listAccountOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAccountOrders(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccountID string `json:"accountId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.orders.CancelOrder(r.Context(), req.AccountID, r.PathValue("id")); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "order cancelled"})
}

func (h *Handler) markPaymentDone(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.MarkPaymentDone(r.Context(), r.PathValue("id")); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "payment recorded"})
}

func (h *Handler) markDelivered(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.MarkDelivered(r.Context(), r.PathValue("id")); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "delivery recorded"})
}
