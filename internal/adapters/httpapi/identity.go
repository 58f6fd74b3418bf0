// internal/adapters/httpapi/identity.go
package httpapi

import (
	"net/http"

	"github.com/shopcore/backend/internal/application"
	"github.com/shopcore/backend/internal/domain"
)

type registerRequest struct {
	Name     string `json:"name"`
	Mail     string `json:"mail"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	account, err := h.identity.Register(r.Context(), req.Name, req.Mail, req.Phone, req.Password)
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

func (h *Handler) registerFederated(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	account, err := h.identity.RegisterFederated(r.Context(), req.Name, req.Mail)
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, account)
}

func (h *Handler) lookupByID(w http.ResponseWriter, r *http.Request) {
	account, err := h.identity.Lookup(r.Context(), application.LookupByID, r.PathValue("id"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

func (h *Handler) lookupByMail(w http.ResponseWriter, r *http.Request) {
	account, err := h.identity.Lookup(r.Context(), application.LookupByMail, r.PathValue("mail"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, account)
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.identity.ListAccounts(r.Context())
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"count": len(accounts), "data": accounts})
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.identity.ChangePassword(r.Context(), r.PathValue("id"), req.Password); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (h *Handler) issueOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mail string `json:"mail"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.identity.IssueOTP(r.Context(), req.Mail); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "otp dispatched"})
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mail string `json:"mail"`
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.identity.VerifyOTP(r.Context(), req.Mail, req.Code); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "otp verified"})
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	var req domain.Address
	if !decodeJSON(w, r, &req) {
		return
	}
	address, err := h.identity.AddAddress(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, address)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.identity.ListAddresses(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, addresses)
}

func (h *Handler) removeAddress(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.RemoveAddress(r.Context(), r.PathValue("id"), r.PathValue("addressId")); err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "address removed"})
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	token, err := h.identity.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) verifyAdminToken(w http.ResponseWriter, r *http.Request) {
	subject, err := h.identity.VerifyAdminToken(r.PathValue("token"))
	if err != nil {
		h.respondFromError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"valid": true, "subject": subject})
}
