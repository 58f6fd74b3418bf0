// internal/adapters/httpapi/handler_test.go
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopcore/backend/internal/adapters/memory"
	"github.com/shopcore/backend/internal/application"
	"github.com/shopcore/backend/pkg/auth"
)

type stubCache struct {
	data map[string][]byte
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, error) {
	data, ok := c.data[key]
	if !ok {
		return nil, fmt.Errorf("miss: %s", key)
	}
	return data, nil
}

func (c *stubCache) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	return nil
}

func (c *stubCache) DeleteByPrefix(_ context.Context, prefix string) error {
	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

func (c *stubCache) Ping(context.Context) error { return nil }

type recordingNotifier struct {
	codes []string
}

func (n *recordingNotifier) SendOTP(_ context.Context, _, code string) error {
	n.codes = append(n.codes, code)
	return nil
}

type testAPI struct {
	server   *httptest.Server
	store    *memory.Store
	notifier *recordingNotifier
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	notifier := &recordingNotifier{}
	cache := &stubCache{data: make(map[string][]byte)}
	logger := zap.NewNop()

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	digest, err := bcrypt.GenerateFromPassword([]byte("admin@123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := application.AdminCredentials{Username: "admin", PasswordDigest: string(digest)}

	identity := application.NewIdentityService(store, notifier, tokens, admin, logger)
	carts := application.NewCartService(store)
	orders := application.NewOrderService(store, store, store, cache, logger)
	catalog := application.NewCatalogService(store)

	handler := NewHandler(identity, carts, orders, catalog, cache, logger)
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return &testAPI{server: server, store: store, notifier: notifier}
}

func (a *testAPI) do(t *testing.T, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func (a *testAPI) register(t *testing.T, mail string) string {
	t.Helper()
	resp, body := a.do(t, http.MethodPost, "/users", map[string]string{
		"name": "Jane Doe", "mail": mail, "phone": "0171234567", "password": "securepass",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return body["id"].(string)
}

func (a *testAPI) adminToken(t *testing.T) string {
	t.Helper()
	resp, body := a.do(t, http.MethodPost, "/admin/login", map[string]string{
		"username": "admin", "password": "admin@123",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return body["token"].(string)
}

func TestHandler_Registration(t *testing.T) {
	api := newTestAPI(t)

	resp, body := api.do(t, http.MethodPost, "/users", map[string]string{
		"name": "Jane Doe", "mail": "jane@example.com", "phone": "0171234567", "password": "securepass",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "jane@example.com", body["mail"])
	require.NotContains(t, body, "password")
	require.NotContains(t, body, "otpCode")

	// Same mail again conflicts.
	resp, _ = api.do(t, http.MethodPost, "/users", map[string]string{
		"name": "Jane Doe", "mail": "jane@example.com", "phone": "0171234567", "password": "securepass",
	}, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = api.do(t, http.MethodPost, "/users", map[string]string{
		"name": "Jane Doe", "mail": "not-a-mail", "phone": "0171234567", "password": "securepass",
	}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = api.do(t, http.MethodPost, "/users/federated", map[string]string{
		"name": "Fed User", "mail": "fed@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotContains(t, body, "password")
}

func TestHandler_Lookup(t *testing.T) {
	api := newTestAPI(t)
	id := api.register(t, "jane@example.com")

	resp, body := api.do(t, http.MethodGet, "/users/lookup/id/"+id, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "jane@example.com", body["mail"])

	resp, body = api.do(t, http.MethodGet, "/users/lookup/mail/jane@example.com", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, id, body["id"])

	resp, _ = api.do(t, http.MethodGet, "/users/lookup/id/unknown", nil, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Lookup and the address book share the /users prefix; both route families
// must stay servable for the same account.
func TestHandler_LookupAndAddressBookCoexist(t *testing.T) {
	api := newTestAPI(t)
	id := api.register(t, "jane@example.com")

	resp, address := api.do(t, http.MethodPost, "/users/"+id+"/addresses", map[string]string{
		"name": "Home", "street": "12 Main Rd", "district": "Dhaka", "state": "Dhaka", "pincode": "1207",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := api.do(t, http.MethodGet, "/users/lookup/id/"+id, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, id, body["id"])

	req, err := http.NewRequest(http.MethodGet, api.server.URL+"/users/"+id+"/addresses", nil)
	require.NoError(t, err)
	rawResp, err := api.server.Client().Do(req)
	require.NoError(t, err)
	defer rawResp.Body.Close()
	var addresses []map[string]any
	require.NoError(t, json.NewDecoder(rawResp.Body).Decode(&addresses))
	require.Len(t, addresses, 1)
	require.Equal(t, address["id"], addresses[0]["id"])

	resp, _ = api.do(t, http.MethodDelete, "/users/"+id+"/addresses/"+address["id"].(string), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_OTPFlow(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "jane@example.com")

	resp, _ := api.do(t, http.MethodPost, "/otp/issue", map[string]string{"mail": "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, api.notifier.codes, 1)
	code := api.notifier.codes[0]

	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}
	resp, _ = api.do(t, http.MethodPost, "/otp/verify", map[string]string{"mail": "jane@example.com", "code": wrong}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = api.do(t, http.MethodPost, "/otp/verify", map[string]string{"mail": "jane@example.com", "code": code}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Consumed codes do not verify a second time.
	resp, _ = api.do(t, http.MethodPost, "/otp/verify", map[string]string{"mail": "jane@example.com", "code": code}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = api.do(t, http.MethodPost, "/otp/issue", map[string]string{"mail": "stranger@example.com"}, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_CartFlow(t *testing.T) {
	api := newTestAPI(t)
	id := api.register(t, "jane@example.com")

	add := map[string]any{"accountId": id, "productId": "p1", "quantity": 2}
	resp, _ := api.do(t, http.MethodPost, "/cart", add, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	add["quantity"] = 3
	resp, _ = api.do(t, http.MethodPost, "/cart", add, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, api.server.URL+"/cart/"+id, nil)
	require.NoError(t, err)
	rawResp, err := api.server.Client().Do(req)
	require.NoError(t, err)
	defer rawResp.Body.Close()
	var lines []map[string]any
	require.NoError(t, json.NewDecoder(rawResp.Body).Decode(&lines))
	require.Len(t, lines, 1)
	require.Equal(t, float64(5), lines[0]["quantity"])

	resp, _ = api.do(t, http.MethodPost, "/cart", map[string]any{"accountId": "ghost", "productId": "p1", "quantity": 1}, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(t, http.MethodPost, "/cart", map[string]any{"accountId": id, "productId": "p1", "quantity": 0}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_OrderFlow(t *testing.T) {
	api := newTestAPI(t)
	id := api.register(t, "jane@example.com")
	token := api.adminToken(t)

	resp, product := api.do(t, http.MethodPost, "/products", map[string]any{
		"name": "Keyboard", "description": "Mechanical", "price": "80",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	productID := product["id"].(string)

	resp, address := api.do(t, http.MethodPost, "/users/"+id+"/addresses", map[string]string{
		"name": "Home", "street": "12 Main Rd", "district": "Dhaka", "state": "Dhaka", "pincode": "1207",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	addressID := address["id"].(string)

	resp, order := api.do(t, http.MethodPost, "/orders/"+id, map[string]any{
		"addressId": addressID, "productIds": []string{productID}, "paymentMethod": "cod", "totalPrice": "80",
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	orderID := order["id"].(string)
	require.Equal(t, "pending", order["paymentStatus"])

	// Unknown product fails the whole checkout.
	resp, _ = api.do(t, http.MethodPost, "/orders/"+id, map[string]any{
		"addressId": addressID, "productIds": []string{productID, "ghost"}, "paymentMethod": "cod", "totalPrice": "80",
	}, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(t, http.MethodPost, "/orders/"+orderID+"/payment-done", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Paid orders refuse cancellation.
	resp, _ = api.do(t, http.MethodPost, "/orders/"+orderID+"/cancel", map[string]string{"accountId": id}, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_AdminGate(t *testing.T) {
	api := newTestAPI(t)
	api.register(t, "jane@example.com")

	resp, _ := api.do(t, http.MethodGet, "/orders", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/orders", nil, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := api.adminToken(t)
	resp, _ = api.do(t, http.MethodGet, "/users", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = api.do(t, http.MethodPost, "/admin/login", map[string]string{
		"username": "admin", "password": "wrong",
	}, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := api.do(t, http.MethodGet, "/admin/verify/"+token, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["valid"])
}

func TestHandler_Health(t *testing.T) {
	api := newTestAPI(t)
	resp, body := api.do(t, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body["status"])
}
