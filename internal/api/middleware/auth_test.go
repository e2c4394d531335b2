package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func buildTestRouter(apiKey string) *mux.Router {
	r := mux.NewRouter()
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(Auth(apiKey))
	admin.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestAuth(t *testing.T) {
	router := buildTestRouter("secreto")

	// No key -> 401
	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Wrong key -> 401
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Key", "otro")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Correct key -> 200
	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Key", "secreto")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAuth_EmptyConfiguredKeyRejectsEverything(t *testing.T) {
	// An unset key must not open the admin routes
	router := buildTestRouter("")

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("X-Admin-Key", "")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
