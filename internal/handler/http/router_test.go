package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestaorh/portal-backend-go/internal/fixtures"
	"github.com/gestaorh/portal-backend-go/internal/pkg/jwt"
	"github.com/gestaorh/portal-backend-go/internal/repository/memory"
	authService "github.com/gestaorh/portal-backend-go/internal/service/auth"
	profileService "github.com/gestaorh/portal-backend-go/internal/service/profile"
	rosterService "github.com/gestaorh/portal-backend-go/internal/service/roster"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	routerTestSecret    = "test-secret-key-for-jwt"
	routerTestAccessExp = "1h"
)

func newTestRouter() *chi.Mux {
	directory := memory.NewDirectory(fixtures.Companies(), fixtures.Admins(), fixtures.Employees())
	employeeRepo := memory.NewEmployeeRepository(directory)
	companyRepo := memory.NewCompanyRepository(directory)
	adminRepo := memory.NewAdminRepository(directory)

	jwtSvc := jwt.NewJWTService(routerTestSecret, routerTestAccessExp)
	authSvc := authService.NewAuthService(employeeRepo, adminRepo, jwtSvc)
	profileSvc := profileService.NewProfileService(employeeRepo, adminRepo)
	rosterSvc := rosterService.NewRosterService(employeeRepo, companyRepo, adminRepo)

	return NewRouter(
		jwtSvc,
		NewAuthHandler(authSvc),
		NewCompanyHandler(rosterSvc),
		NewEmployeeHandler(profileSvc),
		"test",
		"http://localhost:3000",
	)
}

func doJSON(t *testing.T, router *chi.Mux, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}
	return w, resp
}

func loginEmployee(t *testing.T, router *chi.Mux, code, password string) string {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login/employee", "", map[string]string{
		"code":     code,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]interface{})
	token := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func loginAdmin(t *testing.T, router *chi.Mux) string {
	t.Helper()
	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login/admin", "", map[string]string{
		"username": "admin",
		"password": "123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := resp["data"].(map[string]interface{})
	return data["access_token"].(string)
}

// Seed employee 1001 logs in, adds one experience, touches nothing
// else: the record gains exactly one entry with a fresh id.
func TestEndToEnd_EmployeeAddsExperience(t *testing.T) {
	router := newTestRouter()
	token := loginEmployee(t, router, "1001", "123")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/employees/e1/experiences", token, map[string]string{
		"company": "Acme",
		"role":    "Eng",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp["success"].(bool))

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/employees/e1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	experiences := data["experiences"].([]interface{})
	require.Len(t, experiences, 3)

	seen := make(map[string]bool)
	for _, raw := range experiences {
		exp := raw.(map[string]interface{})
		id := exp["id"].(string)
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate experience id %s", id)
		seen[id] = true
	}

	added := experiences[2].(map[string]interface{})
	assert.Equal(t, "Acme", added["company"])
	assert.Equal(t, "Eng", added["role"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newTestRouter()

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/login/employee", "", map[string]string{
		"code":     "1001",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp["success"].(bool))
}

func TestLogout_TokenRevoked(t *testing.T) {
	router := newTestRouter()
	token := loginEmployee(t, router, "1001", "123")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/employees/e1", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmployee_CannotReadOtherEmployee(t *testing.T) {
	router := newTestRouter()
	token := loginEmployee(t, router, "1001", "123")

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/employees/e2", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestEmployee_CannotListCompanies(t *testing.T) {
	router := newTestRouter()
	token := loginEmployee(t, router, "1001", "123")

	w, _ := doJSON(t, router, http.MethodGet, "/api/v1/companies", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdmin_RosterFilter(t *testing.T) {
	router := newTestRouter()
	token := loginAdmin(t, router)

	w, resp := doJSON(t, router, http.MethodGet, "/api/v1/companies", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	companies := resp["data"].([]interface{})
	require.Len(t, companies, 2)

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/companies/c1/employees?full_name=ana", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := resp["data"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "Ana Maria Oliveira", entry["full_name"])
	assert.Equal(t, "Master", entry["education_level"])

	// No terms: the whole company roster in seed order.
	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/companies/c1/employees", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries = resp["data"].([]interface{})
	require.Len(t, entries, 2)
	assert.Equal(t, "1001", entries[0].(map[string]interface{})["code"])
	assert.Equal(t, "1002", entries[1].(map[string]interface{})["code"])
}

func TestAdmin_DraftCommitFlow(t *testing.T) {
	router := newTestRouter()
	token := loginAdmin(t, router)

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/employees/e1/draft", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPatch, "/api/v1/employees/e1/draft", token, map[string]string{
		"field": "full_name",
		"value": "Carlos E. Silva",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/employees/e1/draft/commit", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Carlos E. Silva", data["full_name"])

	w, resp = doJSON(t, router, http.MethodGet, "/api/v1/employees/e1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "Carlos E. Silva", data["full_name"])
}

func TestEmployee_CommitForbidden(t *testing.T) {
	router := newTestRouter()
	token := loginEmployee(t, router, "1001", "123")

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/employees/e1/draft", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/employees/e1/draft/commit", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddCourse_ValidationRejected(t *testing.T) {
	router := newTestRouter()
	token := loginEmployee(t, router, "1001", "123")

	w, resp := doJSON(t, router, http.MethodPost, "/api/v1/employees/e1/courses", token, map[string]string{
		"name":        "",
		"institution": "Alura",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, resp["success"].(bool))
}
