// internal/adapters/httpapi/handler.go
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopcore/backend/internal/application"
	"github.com/shopcore/backend/internal/ports"
)

// Handler exposes the application services over HTTP/JSON. Framing only: it
// decodes requests, calls a service and maps the error taxonomy onto status
// codes.
type Handler struct {
	identity *application.IdentityService
	carts    *application.CartService
	orders   *application.OrderService
	catalog  *application.CatalogService
	cache    ports.CachePort
	logger   *zap.Logger
}

func NewHandler(identity *application.IdentityService, carts *application.CartService, orders *application.OrderService, catalog *application.CatalogService, cache ports.CachePort, logger *zap.Logger) *Handler {
	return &Handler{
		identity: identity,
		carts:    carts,
		orders:   orders,
		catalog:  catalog,
		cache:    cache,
		logger:   logger,
	}
}

// Routes wires every endpoint. Admin-only routes sit behind the token
// middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", h.health)

	mux.HandleFunc("POST /users", h.register)
	mux.HandleFunc("POST /users/federated", h.registerFederated)
	mux.Handle("GET /users", h.adminOnly(h.listAccounts))
	// Lookup routes live under /users/lookup so they cannot overlap the
	// /users/{id}/... wildcard patterns below.
	mux.HandleFunc("GET /users/lookup/id/{id}", h.lookupByID)
	mux.HandleFunc("GET /users/lookup/mail/{mail}", h.lookupByMail)
	mux.HandleFunc("PUT /users/{id}/password", h.changePassword)

	mux.HandleFunc("POST /users/{id}/addresses", h.addAddress)
	mux.HandleFunc("GET /users/{id}/addresses", h.listAddresses)
	mux.HandleFunc("DELETE /users/{id}/addresses/{addressId}", h.removeAddress)

	mux.HandleFunc("POST /otp/issue", h.issueOTP)
	mux.HandleFunc("POST /otp/verify", h.verifyOTP)

	mux.HandleFunc("POST /cart", h.addToCart)
	mux.HandleFunc("DELETE /cart", h.removeFromCart)
	mux.HandleFunc("POST /cart/clear", h.clearCart)
	mux.HandleFunc("GET /cart/{id}", h.cart)

	mux.HandleFunc("POST /wishlist", h.addToWishlist)
	mux.HandleFunc("DELETE /wishlist", h.removeFromWishlist)
	mux.HandleFunc("GET /wishlist/{id}", h.wishlist)

	mux.HandleFunc("POST /orders/{id}", h.placeOrder)
	mux.Handle("GET /orders", h.adminOnly(h.listOrders))
	mux.HandleFunc("GET /orders/user/{id}", h.listAccountOrders)
	mux.HandleFunc("GET /orders/{id}", h.getOrder)
	mux.HandleFunc("POST /orders/{id}/cancel", h.cancelOrder)
	mux.Handle("POST /orders/{id}/payment-done", h.adminOnly(h.markPaymentDone))
	mux.Handle("POST /orders/{id}/delivered", h.adminOnly(h.markDelivered))

	mux.HandleFunc("GET /products", h.listProducts)
	mux.HandleFunc("GET /products/{id}", h.getProduct)
	mux.Handle("POST /products", h.adminOnly(h.createProduct))

	mux.HandleFunc("POST /admin/login", h.adminLogin)
	mux.HandleFunc("GET /admin/verify/{token}", h.verifyAdminToken)

	return h.requestLogging(mux)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		h.logger.Error("health probe failed", zap.Error(err))
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// adminOnly verifies the bearer token and that its subject is the fixed
// administrator identity.
func (h *Handler) adminOnly(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondError(w, http.StatusUnauthorized, "missing authorization")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if _, err := h.identity.VerifyAdminToken(token); err != nil {
			h.respondFromError(w, err)
			return
		}
		next(w, r)
	})
}

func (h *Handler) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
